package model

import "time"

// UserProfile 用户档案与游戏化状态，随用户创建，不单独删除
type UserProfile struct {
	UserID               uint64     `gorm:"primaryKey" json:"userId"`
	Bio                  *string    `gorm:"type:varchar(500)" json:"bio"`
	AvatarURL            string     `gorm:"type:varchar(512);column:avatar_url;default:'default_avatar.png'" json:"avatarUrl"`
	TotalPoints          int        `gorm:"type:int;not null;default:0" json:"totalPoints"`
	Level                int        `gorm:"type:int;not null;default:1" json:"level"`
	TotalCO2Saved        float64    `gorm:"column:total_co2_saved;not null;default:0" json:"totalCo2Saved"`
	StreakDays           int        `gorm:"type:int;not null;default:0" json:"streakDays"`
	LastActivityDate     *time.Time `gorm:"type:date" json:"lastActivityDate"`
	DailyCO2Goal         float64    `gorm:"column:daily_co2_goal;not null;default:8" json:"dailyCo2Goal"`
	NotificationsEnabled bool       `gorm:"type:tinyint(1);default:1" json:"notificationsEnabled"`
	CreatedAt            time.Time  `json:"createdAt"`
	UpdatedAt            time.Time  `json:"updatedAt"`
}

func (UserProfile) TableName() string {
	return "user_profiles"
}
