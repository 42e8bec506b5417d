package dto

// CreateMealDTO 记录一餐
type CreateMealDTO struct {
	MealType    string             `json:"meal_type" binding:"required" validate:"required"`
	Description string             `json:"description" validate:"omitempty,max=255"`
	Ingredients map[string]float64 `json:"ingredients" binding:"required" validate:"required,min=1"`
	MealDate    Date               `json:"meal_date" binding:"required"`
}

// UpdateMealDTO 修改一餐
type UpdateMealDTO struct {
	MealType    *string            `json:"meal_type,omitempty"`
	Description *string            `json:"description,omitempty" validate:"omitempty,max=255"`
	Ingredients map[string]float64 `json:"ingredients,omitempty"`
}

// MealDTO 用餐记录
type MealDTO struct {
	ID           uint64             `json:"id"`
	MealType     string             `json:"meal_type"`
	Description  string             `json:"description,omitempty"`
	Ingredients  map[string]float64 `json:"ingredients"`
	TotalCO2     float64            `json:"total_co2"`
	MealDate     Date               `json:"meal_date"`
	IsVegetarian bool               `json:"is_vegetarian"`
	IsVegan      bool               `json:"is_vegan"`

	// 创建时返回的奖励信息
	PointsEarned    int               `json:"points_earned,omitempty"`
	CO2Saved        float64           `json:"co2_saved,omitempty"`
	NewAchievements []*AchievementDTO `json:"new_achievements,omitempty"`
}
