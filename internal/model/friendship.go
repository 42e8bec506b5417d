package model

import "time"

// Friendship 好友请求，(from_user_id, to_user_id) 唯一
type Friendship struct {
	ID         uint64     `gorm:"primaryKey" json:"id"`
	FromUserID uint64     `gorm:"not null;uniqueIndex:idx_from_to,priority:1" json:"fromUserId"`
	ToUserID   uint64     `gorm:"not null;uniqueIndex:idx_from_to,priority:2;index:idx_to_user" json:"toUserId"`
	Status     string     `gorm:"type:varchar(10);not null;default:'pending'" json:"status"`
	AcceptedAt *time.Time `json:"acceptedAt"`
	CreatedAt  time.Time  `json:"createdAt"`
	UpdatedAt  time.Time  `json:"updatedAt"`
}

func (Friendship) TableName() string {
	return "friendships"
}

const (
	FriendshipPending  = "pending"
	FriendshipAccepted = "accepted"
	FriendshipRejected = "rejected"
)
