package dto

// CreateTransportDTO 记录一次出行
type CreateTransportDTO struct {
	TransportType string  `json:"transport_type" binding:"required" validate:"required"`
	DistanceKm    float64 `json:"distance_km" binding:"required" validate:"required,gt=0,lte=20000"`
	Origin        string  `json:"origin" validate:"omitempty,max=255"`
	Destination   string  `json:"destination" validate:"omitempty,max=255"`
	TripDate      Date    `json:"trip_date" binding:"required"`
}

// UpdateTransportDTO 修改一次出行
type UpdateTransportDTO struct {
	TransportType *string  `json:"transport_type,omitempty"`
	DistanceKm    *float64 `json:"distance_km,omitempty" validate:"omitempty,gt=0,lte=20000"`
	Origin        *string  `json:"origin,omitempty" validate:"omitempty,max=255"`
	Destination   *string  `json:"destination,omitempty" validate:"omitempty,max=255"`
}

// TransportDTO 出行记录
type TransportDTO struct {
	ID            uint64  `json:"id"`
	TransportType string  `json:"transport_type"`
	DistanceKm    float64 `json:"distance_km"`
	Origin        string  `json:"origin,omitempty"`
	Destination   string  `json:"destination,omitempty"`
	TotalCO2      float64 `json:"total_co2"`
	TripDate      Date    `json:"trip_date"`
	IsEco         bool    `json:"is_eco"`

	// 创建时返回的奖励信息
	PointsEarned    int               `json:"points_earned,omitempty"`
	CO2Saved        float64           `json:"co2_saved,omitempty"`
	NewAchievements []*AchievementDTO `json:"new_achievements,omitempty"`
}
