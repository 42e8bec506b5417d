package repository

import (
	"Ecotrace/internal/model"
	"context"
	"errors"

	"gorm.io/gorm"
)

type FriendshipRepo interface {
	GetFriendshipBetween(ctx context.Context, userA, userB uint64) (*model.Friendship, error)
	GetFriendshipById(ctx context.Context, id uint64) (*model.Friendship, error)
	GetPendingRequests(ctx context.Context, toUserID uint64, limit, offset int) ([]*model.Friendship, error)
	GetSentRequests(ctx context.Context, fromUserID uint64, limit, offset int) ([]*model.Friendship, error)
	GetAcceptedFriendships(ctx context.Context, userID uint64) ([]*model.Friendship, error)
	CreateFriendship(ctx context.Context, friendship *model.Friendship) error
	UpdateFriendship(ctx context.Context, friendship *model.Friendship) error
	DeleteFriendship(ctx context.Context, id uint64) error
	CountFriends(ctx context.Context, userID uint64) (int64, error)
	CountPendingRequests(ctx context.Context, toUserID uint64) (int64, error)
}

type FriendshipRepoImpl struct {
	db *gorm.DB
}

func NewFriendshipRepo(db *gorm.DB) FriendshipRepo {
	return &FriendshipRepoImpl{db: db}
}

// GetFriendshipBetween 查询两个用户之间任一方向的关系
func (s *FriendshipRepoImpl) GetFriendshipBetween(ctx context.Context, userA, userB uint64) (*model.Friendship, error) {
	var friendship model.Friendship
	result := s.db.WithContext(ctx).
		Where("(from_user_id = ? AND to_user_id = ?) OR (from_user_id = ? AND to_user_id = ?)",
			userA, userB, userB, userA).
		First(&friendship)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, result.Error
	}
	return &friendship, nil
}

func (s *FriendshipRepoImpl) GetFriendshipById(ctx context.Context, id uint64) (*model.Friendship, error) {
	var friendship model.Friendship
	result := s.db.WithContext(ctx).First(&friendship, id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, result.Error
	}
	return &friendship, nil
}

func (s *FriendshipRepoImpl) GetPendingRequests(ctx context.Context, toUserID uint64, limit, offset int) ([]*model.Friendship, error) {
	friendships := make([]*model.Friendship, 0)
	result := s.db.WithContext(ctx).
		Where("to_user_id = ? AND status = ?", toUserID, model.FriendshipPending).
		Order("created_at desc").
		Limit(limit).
		Offset(offset).
		Find(&friendships)
	if result.Error != nil {
		return nil, result.Error
	}
	return friendships, nil
}

func (s *FriendshipRepoImpl) GetSentRequests(ctx context.Context, fromUserID uint64, limit, offset int) ([]*model.Friendship, error) {
	friendships := make([]*model.Friendship, 0)
	result := s.db.WithContext(ctx).
		Where("from_user_id = ? AND status = ?", fromUserID, model.FriendshipPending).
		Order("created_at desc").
		Limit(limit).
		Offset(offset).
		Find(&friendships)
	if result.Error != nil {
		return nil, result.Error
	}
	return friendships, nil
}

func (s *FriendshipRepoImpl) GetAcceptedFriendships(ctx context.Context, userID uint64) ([]*model.Friendship, error) {
	friendships := make([]*model.Friendship, 0)
	result := s.db.WithContext(ctx).
		Where("(from_user_id = ? OR to_user_id = ?) AND status = ?", userID, userID, model.FriendshipAccepted).
		Find(&friendships)
	if result.Error != nil {
		return nil, result.Error
	}
	return friendships, nil
}

func (s *FriendshipRepoImpl) CreateFriendship(ctx context.Context, friendship *model.Friendship) error {
	return s.db.WithContext(ctx).Create(friendship).Error
}

// UpdateFriendship 连同方向列一起落库：被拒后重新发起会复用原纪录并交换收发双方
func (s *FriendshipRepoImpl) UpdateFriendship(ctx context.Context, friendship *model.Friendship) error {
	result := s.db.WithContext(ctx).
		Model(&model.Friendship{}).
		Where("id = ?", friendship.ID).
		Updates(map[string]interface{}{
			"from_user_id": friendship.FromUserID,
			"to_user_id":   friendship.ToUserID,
			"status":       friendship.Status,
			"accepted_at":  friendship.AcceptedAt,
		})
	return result.Error
}

func (s *FriendshipRepoImpl) DeleteFriendship(ctx context.Context, id uint64) error {
	return s.db.WithContext(ctx).Delete(&model.Friendship{}, id).Error
}

func (s *FriendshipRepoImpl) CountFriends(ctx context.Context, userID uint64) (int64, error) {
	var count int64
	result := s.db.WithContext(ctx).
		Model(&model.Friendship{}).
		Where("(from_user_id = ? OR to_user_id = ?) AND status = ?", userID, userID, model.FriendshipAccepted).
		Count(&count)
	return count, result.Error
}

func (s *FriendshipRepoImpl) CountPendingRequests(ctx context.Context, toUserID uint64) (int64, error) {
	var count int64
	result := s.db.WithContext(ctx).
		Model(&model.Friendship{}).
		Where("to_user_id = ? AND status = ?", toUserID, model.FriendshipPending).
		Count(&count)
	return count, result.Error
}
