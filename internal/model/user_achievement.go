package model

import "time"

// UserAchievement 用户与成就的关联，解锁后不可回退
type UserAchievement struct {
	ID            uint64     `gorm:"primaryKey" json:"id"`
	UserID        uint64     `gorm:"not null;uniqueIndex:idx_user_achievement,priority:1" json:"userId"`
	AchievementID uint64     `gorm:"not null;uniqueIndex:idx_user_achievement,priority:2" json:"achievementId"`
	Progress      int        `gorm:"type:int;not null;default:0" json:"progress"`
	IsUnlocked    bool       `gorm:"type:tinyint(1);default:0" json:"isUnlocked"`
	UnlockedAt    *time.Time `json:"unlockedAt"`
	CreatedAt     time.Time  `json:"createdAt"`
	UpdatedAt     time.Time  `json:"updatedAt"`

	Achievement Achievement `gorm:"foreignKey:AchievementID;references:ID" json:"achievement"`
}

func (UserAchievement) TableName() string {
	return "user_achievements"
}
