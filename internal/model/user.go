package model

import (
	"time"
)

type User struct {
	ID        uint64  `gorm:"primaryKey"`
	Username  *string `gorm:"type:varchar(50);uniqueIndex:idx_username"`
	Email     *string `gorm:"type:varchar(100);uniqueIndex:idx_email"`
	Password  *string `gorm:"type:varchar(255)"`
	IsDelete  bool    `gorm:"type:tinyint(1);default:0"`
	CreatedAt time.Time
	UpdatedAt time.Time

	Profile UserProfile `gorm:"foreignKey:UserID;references:ID"`
}

func (User) TableName() string {
	return "users"
}
