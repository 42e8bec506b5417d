package dto

import "time"

// UserDTO 用户
type UserDTO struct {
	UserID        *uint64    `json:"user_id,omitempty"`
	Username      *string    `json:"username,omitempty"`
	Email         *string    `json:"email,omitempty"`
	Bio           *string    `json:"bio,omitempty"`
	AvatarURL     *string    `json:"avatar_url,omitempty"`
	TotalPoints   int        `json:"total_points"`
	Level         int        `json:"level"`
	TotalCO2Saved float64    `json:"total_co2_saved"`
	StreakDays    int        `json:"streak_days"`
	CreatedAt     *time.Time `json:"created_at,omitempty"`
}

// RegisterDTO 注册
type RegisterDTO struct {
	Username *string `json:"username" binding:"required" validate:"required,min=3,max=20"`
	Email    *string `json:"email" binding:"required" validate:"required,email"`
	Password *string `json:"password" binding:"required" validate:"required,min=6,max=20"`
}

// CredentialDTO 登录凭证
type CredentialDTO struct {
	Username *string `json:"username,omitempty"`
	Email    *string `json:"email,omitempty"`
	Password *string `json:"password,omitempty"`
}

// ChangeUsernameDTO 修改用户名
type ChangeUsernameDTO struct {
	Username *string `json:"username" binding:"required" validate:"min=3,max=20"`
}

// ChangePasswordDTO 修改密码
type ChangePasswordDTO struct {
	OldPassword *string `json:"old_password" binding:"required" validate:"min=6,max=20"`
	NewPassword *string `json:"new_password" binding:"required" validate:"min=6,max=20"`
}

// SearchUserDTO 搜索用户
type SearchUserDTO struct {
	Keyword string `json:"keyword" form:"keyword" validate:"required,min=1,max=20"`
	Limit   int    `json:"limit" form:"limit"`
	Offset  int    `json:"offset" form:"offset"`
}
