package dto

// DashboardSummaryDTO 今日与近期排放总览
type DashboardSummaryDTO struct {
	TodayCO2       float64 `json:"today_co2"`
	TodayMeals     float64 `json:"today_meals"`
	TodayTransport float64 `json:"today_transport"`
	WeekCO2        float64 `json:"week_co2"`
	MonthCO2       float64 `json:"month_co2"`
	DailyCO2Goal   float64 `json:"daily_co2_goal"`
	GoalMet        bool    `json:"goal_met"`
	Rating         string  `json:"rating"`
	RatingMessage  string  `json:"rating_message"`
	TotalPoints    int     `json:"total_points"`
	Level          int     `json:"level"`
	StreakDays     int     `json:"streak_days"`
	TotalCO2Saved  float64 `json:"total_co2_saved"`

	TotalCO2             float64 `json:"total_co2"`
	TotalMeals           int64   `json:"total_meals"`
	TotalTransports      int64   `json:"total_transports"`
	VeganMeals           int64   `json:"vegan_meals"`
	VegetarianMeals      int64   `json:"vegetarian_meals"`
	AchievementsUnlocked int64   `json:"achievements_unlocked"`
	TotalDistanceKm      float64 `json:"total_distance_km"`
}

// DailyEmissionDTO 单日排放
type DailyEmissionDTO struct {
	Date         string  `json:"date"`
	MealsCO2     float64 `json:"meals_co2"`
	TransportCO2 float64 `json:"transport_co2"`
	TotalCO2     float64 `json:"total_co2"`
}

// CategoryStatDTO 分类统计
type CategoryStatDTO struct {
	Category string  `json:"category"`
	Count    int64   `json:"count"`
	CO2      float64 `json:"co2"`
}

// DashboardStatsDTO 排放统计序列与占比
type DashboardStatsDTO struct {
	Days               int                 `json:"days"`
	Series             []*DailyEmissionDTO `json:"series"`
	MealBreakdown      []*CategoryStatDTO  `json:"meal_breakdown"`
	DietBreakdown      []*CategoryStatDTO  `json:"diet_breakdown"`
	TransportBreakdown []*CategoryStatDTO  `json:"transport_breakdown"`
	TotalCO2           float64             `json:"total_co2"`
	DailyAverage       float64             `json:"daily_average"`
}

// EcoTipDTO 环保贴士
type EcoTipDTO struct {
	ID          uint64 `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Category    string `json:"category"`
	Icon        string `json:"icon"`
}

// EcoTipsDTO 建议集合：针对性建议 + 随机贴士
type EcoTipsDTO struct {
	Personalized []string     `json:"personalized"`
	Catalog      []*EcoTipDTO `json:"catalog"`
}
