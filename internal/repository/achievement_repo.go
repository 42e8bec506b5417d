package repository

import (
	"Ecotrace/internal/model"
	"context"
	"errors"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type AchievementRepo interface {
	GetActiveAchievements(ctx context.Context) ([]*model.Achievement, error)
	GetUserAchievements(ctx context.Context, userID uint64) ([]*model.UserAchievement, error)
	GetUserAchievement(ctx context.Context, userID, achievementID uint64) (*model.UserAchievement, error)
	UpsertUserAchievement(ctx context.Context, ua *model.UserAchievement) error
	UpdateProgress(ctx context.Context, userID, achievementID uint64, progress int) error
	Unlock(ctx context.Context, userID, achievementID uint64, at time.Time) (int64, error)
	CountUnlockedByUserId(ctx context.Context, userID uint64) (int64, error)
}

type AchievementRepoImpl struct {
	db *gorm.DB
}

func NewAchievementRepo(db *gorm.DB) AchievementRepo {
	return &AchievementRepoImpl{db: db}
}

func (s *AchievementRepoImpl) GetActiveAchievements(ctx context.Context) ([]*model.Achievement, error) {
	achievements := make([]*model.Achievement, 0)
	result := s.db.WithContext(ctx).
		Where("is_active = 1").
		Order("id asc").
		Find(&achievements)
	if result.Error != nil {
		return nil, result.Error
	}
	return achievements, nil
}

func (s *AchievementRepoImpl) GetUserAchievements(ctx context.Context, userID uint64) ([]*model.UserAchievement, error) {
	records := make([]*model.UserAchievement, 0)
	result := s.db.WithContext(ctx).
		Preload("Achievement").
		Where("user_id = ?", userID).
		Order("achievement_id asc").
		Find(&records)
	if result.Error != nil {
		return nil, result.Error
	}
	return records, nil
}

func (s *AchievementRepoImpl) GetUserAchievement(ctx context.Context, userID, achievementID uint64) (*model.UserAchievement, error) {
	record := &model.UserAchievement{}
	result := s.db.WithContext(ctx).
		Where("user_id = ? AND achievement_id = ?", userID, achievementID).
		First(record)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, result.Error
	}
	return record, nil
}

// UpsertUserAchievement 创建进度记录，已存在则忽略
func (s *AchievementRepoImpl) UpsertUserAchievement(ctx context.Context, ua *model.UserAchievement) error {
	return s.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			DoNothing: true,
		}).
		Create(ua).Error
}

func (s *AchievementRepoImpl) UpdateProgress(ctx context.Context, userID, achievementID uint64, progress int) error {
	result := s.db.WithContext(ctx).
		Model(&model.UserAchievement{}).
		Where("user_id = ? AND achievement_id = ? AND is_unlocked = 0", userID, achievementID).
		Update("progress", progress)
	return result.Error
}

// Unlock 解锁成就，条件带 is_unlocked = 0 保证并发下只成功一次
func (s *AchievementRepoImpl) Unlock(ctx context.Context, userID, achievementID uint64, at time.Time) (int64, error) {
	result := s.db.WithContext(ctx).
		Model(&model.UserAchievement{}).
		Where("user_id = ? AND achievement_id = ? AND is_unlocked = 0", userID, achievementID).
		Updates(map[string]interface{}{
			"is_unlocked": true,
			"progress":    100,
			"unlocked_at": at,
		})
	return result.RowsAffected, result.Error
}

func (s *AchievementRepoImpl) CountUnlockedByUserId(ctx context.Context, userID uint64) (int64, error) {
	var count int64
	result := s.db.WithContext(ctx).
		Model(&model.UserAchievement{}).
		Where("user_id = ? AND is_unlocked = 1", userID).
		Count(&count)
	return count, result.Error
}
