package model

import "time"

// Transport 一次出行记录，total_co2 在创建时计算一次后不再变更
type Transport struct {
	ID            uint64    `gorm:"primaryKey" json:"id"`
	UserID        uint64    `gorm:"not null;index:idx_user_trip_date,priority:1" json:"userId"`
	TransportType string    `gorm:"type:varchar(20);not null" json:"transportType"`
	DistanceKm    float64   `gorm:"column:distance_km;not null" json:"distanceKm"`
	Origin        string    `gorm:"type:varchar(255)" json:"origin"`
	Destination   string    `gorm:"type:varchar(255)" json:"destination"`
	TotalCO2      float64   `gorm:"column:total_co2;not null" json:"totalCo2"`
	TripDate      time.Time `gorm:"type:date;not null;index:idx_user_trip_date,priority:2" json:"tripDate"`
	IsActive      bool      `gorm:"type:tinyint(1);default:1" json:"isActive"`
	CreatedAt     time.Time `json:"createdAt"`
	UpdatedAt     time.Time `json:"updatedAt"`
}

func (Transport) TableName() string {
	return "transports"
}
