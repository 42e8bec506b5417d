package dto

import "time"

// SendFriendRequestDTO 发起好友请求
type SendFriendRequestDTO struct {
	ToUserID uint64 `json:"to_user_id" binding:"required" validate:"required"`
}

// FriendshipDTO 好友请求
type FriendshipDTO struct {
	ID         uint64     `json:"id"`
	FromUserID uint64     `json:"from_user_id"`
	ToUserID   uint64     `json:"to_user_id"`
	Status     string     `json:"status"`
	AcceptedAt *time.Time `json:"accepted_at,omitempty"`
	CreatedAt  time.Time  `json:"created_at"`
}

// FriendDTO 好友及其游戏化状态
type FriendDTO struct {
	UserID        uint64  `json:"user_id"`
	Username      string  `json:"username"`
	AvatarURL     string  `json:"avatar_url"`
	TotalPoints   int     `json:"total_points"`
	Level         int     `json:"level"`
	TotalCO2Saved float64 `json:"total_co2_saved"`
	StreakDays    int     `json:"streak_days"`
}
