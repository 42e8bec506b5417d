package dto

import "time"

// ProfileDTO 用户档案与游戏化状态
type ProfileDTO struct {
	UserID               uint64     `json:"user_id"`
	Bio                  *string    `json:"bio,omitempty"`
	AvatarURL            string     `json:"avatar_url"`
	TotalPoints          int        `json:"total_points"`
	Level                int        `json:"level"`
	PointsToNextLevel    int        `json:"points_to_next_level"`
	TotalCO2Saved        float64    `json:"total_co2_saved"`
	StreakDays           int        `json:"streak_days"`
	LastActivityDate     *time.Time `json:"last_activity_date,omitempty"`
	DailyCO2Goal         float64    `json:"daily_co2_goal"`
	NotificationsEnabled bool       `json:"notifications_enabled"`
}

// UpdateProfileDTO 更新档案设置
type UpdateProfileDTO struct {
	Bio                  *string  `json:"bio,omitempty" validate:"omitempty,max=500"`
	DailyCO2Goal         *float64 `json:"daily_co2_goal,omitempty" validate:"omitempty,gt=0,lte=100"`
	NotificationsEnabled *bool    `json:"notifications_enabled,omitempty"`
}
