package model

import "time"

// EcoTip 环保小贴士，由管理端维护
type EcoTip struct {
	ID          uint64    `gorm:"primaryKey" json:"id"`
	Title       string    `gorm:"type:varchar(100);not null" json:"title"`
	Description string    `gorm:"type:varchar(500);not null" json:"description"`
	Category    string    `gorm:"type:varchar(20);not null;default:'general'" json:"category"`
	Icon        string    `gorm:"type:varchar(50);default:'leaf'" json:"icon"`
	IsActive    bool      `gorm:"type:tinyint(1);default:1" json:"isActive"`
	CreatedAt   time.Time `json:"createdAt"`
}

func (EcoTip) TableName() string {
	return "eco_tips"
}
