package model

import "time"

// Achievement 成就目录，由管理端维护，线上只读
type Achievement struct {
	ID               uint64    `gorm:"primaryKey" json:"id"`
	Name             string    `gorm:"type:varchar(100);not null" json:"name"`
	Description      string    `gorm:"type:varchar(500);not null" json:"description"`
	Category         string    `gorm:"type:varchar(20);not null" json:"category"`
	RequirementType  string    `gorm:"type:varchar(30);not null" json:"requirementType"`
	RequirementValue int       `gorm:"type:int;not null" json:"requirementValue"`
	Points           int       `gorm:"type:int;not null;default:100" json:"points"`
	IsActive         bool      `gorm:"type:tinyint(1);default:1" json:"isActive"`
	CreatedAt        time.Time `json:"createdAt"`
}

func (Achievement) TableName() string {
	return "achievements"
}

// 成就条件类型
const (
	RequirementMealCount           = "meal_count"
	RequirementVeganMealCount      = "vegan_meal_count"
	RequirementVegetarianMealCount = "vegetarian_meal_count"
	RequirementTransportCount      = "transport_count"
	RequirementEcoTransportCount   = "eco_transport_count"
	RequirementCO2Saved            = "co2_saved"
	RequirementDailyStreak         = "daily_streak"
	RequirementFriendCount         = "friend_count"
	RequirementLevelReached        = "level_reached"
)
