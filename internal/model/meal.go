package model

import "time"

// Meal 一次用餐记录，total_co2 在创建时计算一次后不再变更
type Meal struct {
	ID           uint64        `gorm:"primaryKey" json:"id"`
	UserID       uint64        `gorm:"not null;index:idx_user_meal_date,priority:1" json:"userId"`
	MealType     string        `gorm:"type:varchar(20);not null" json:"mealType"`
	Description  string        `gorm:"type:varchar(255)" json:"description"`
	Ingredients  IngredientMap `gorm:"type:json;not null" json:"ingredients"`
	TotalCO2     float64       `gorm:"column:total_co2;not null" json:"totalCo2"`
	MealDate     time.Time     `gorm:"type:date;not null;index:idx_user_meal_date,priority:2" json:"mealDate"`
	IsVegetarian bool          `gorm:"type:tinyint(1);default:0" json:"isVegetarian"`
	IsVegan      bool          `gorm:"type:tinyint(1);default:0" json:"isVegan"`
	IsActive     bool          `gorm:"type:tinyint(1);default:1" json:"isActive"`
	CreatedAt    time.Time     `json:"createdAt"`
	UpdatedAt    time.Time     `json:"updatedAt"`
}

func (Meal) TableName() string {
	return "meals"
}

const (
	MealTypeBreakfast = "breakfast"
	MealTypeLunch     = "lunch"
	MealTypeDinner    = "dinner"
	MealTypeSnack     = "snack"
)
