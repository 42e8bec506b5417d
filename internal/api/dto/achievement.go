package dto

import "time"

// AchievementDTO 成就
type AchievementDTO struct {
	ID               uint64 `json:"id"`
	Name             string `json:"name"`
	Description      string `json:"description"`
	Category         string `json:"category"`
	RequirementType  string `json:"requirement_type"`
	RequirementValue int    `json:"requirement_value"`
	Points           int    `json:"points"`
}

// UserAchievementDTO 用户成就进度
type UserAchievementDTO struct {
	Achievement AchievementDTO `json:"achievement"`
	Progress    int            `json:"progress"`
	IsUnlocked  bool           `json:"is_unlocked"`
	UnlockedAt  *time.Time     `json:"unlocked_at,omitempty"`
}
