package repository

import (
	"Ecotrace/internal/model"
	"context"
	"errors"
	"time"

	"gorm.io/gorm"
)

type ProfileRepo interface {
	GetProfileByUserId(ctx context.Context, userID uint64) (*model.UserProfile, error)
	GetProfilesByUserIds(ctx context.Context, userIDs []uint64) ([]*model.UserProfile, error)
	UpdateProfile(ctx context.Context, userID uint64, fields map[string]interface{}) error
	AddPoints(ctx context.Context, userID uint64, points int) error
	AddCO2Saved(ctx context.Context, userID uint64, co2Saved float64) error
	UpdateStreak(ctx context.Context, userID uint64, streakDays int, activityDate time.Time) error
	ResetBrokenStreaks(ctx context.Context, today time.Time) (int64, error)
	GetTopProfiles(ctx context.Context, limit int) ([]*model.UserProfile, error)
}

type ProfileRepoImpl struct {
	db *gorm.DB
}

func NewProfileRepo(db *gorm.DB) ProfileRepo {
	return &ProfileRepoImpl{db: db}
}

func (s *ProfileRepoImpl) GetProfileByUserId(ctx context.Context, userID uint64) (*model.UserProfile, error) {
	profile := &model.UserProfile{}
	result := s.db.WithContext(ctx).
		Where("user_id = ?", userID).
		First(profile)

	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, result.Error
	}

	return profile, nil
}

func (s *ProfileRepoImpl) GetProfilesByUserIds(ctx context.Context, userIDs []uint64) ([]*model.UserProfile, error) {
	profiles := make([]*model.UserProfile, 0)
	result := s.db.WithContext(ctx).
		Where("user_id IN ?", userIDs).
		Find(&profiles)
	if result.Error != nil {
		return nil, result.Error
	}
	return profiles, nil
}

func (s *ProfileRepoImpl) UpdateProfile(ctx context.Context, userID uint64, fields map[string]interface{}) error {
	result := s.db.WithContext(ctx).
		Model(&model.UserProfile{}).
		Where("user_id = ?", userID).
		Updates(fields)
	return result.Error
}

// AddPoints 原子累加积分并同步等级，等级只升不降
func (s *ProfileRepoImpl) AddPoints(ctx context.Context, userID uint64, points int) error {
	result := s.db.WithContext(ctx).
		Model(&model.UserProfile{}).
		Where("user_id = ?", userID).
		Updates(map[string]interface{}{
			"total_points": gorm.Expr("total_points + ?", points),
			"level":        gorm.Expr("GREATEST(level, FLOOR((total_points + ?) / 1000) + 1)", points),
		})
	return result.Error
}

// AddCO2Saved 原子累加减排量
func (s *ProfileRepoImpl) AddCO2Saved(ctx context.Context, userID uint64, co2Saved float64) error {
	result := s.db.WithContext(ctx).
		Model(&model.UserProfile{}).
		Where("user_id = ?", userID).
		Update("total_co2_saved", gorm.Expr("total_co2_saved + ?", co2Saved))
	return result.Error
}

func (s *ProfileRepoImpl) UpdateStreak(ctx context.Context, userID uint64, streakDays int, activityDate time.Time) error {
	result := s.db.WithContext(ctx).
		Model(&model.UserProfile{}).
		Where("user_id = ?", userID).
		Updates(map[string]interface{}{
			"streak_days":        streakDays,
			"last_activity_date": activityDate,
		})
	return result.Error
}

// ResetBrokenStreaks 清零昨天之前就没有活动的用户连击
func (s *ProfileRepoImpl) ResetBrokenStreaks(ctx context.Context, today time.Time) (int64, error) {
	yesterday := today.AddDate(0, 0, -1)
	result := s.db.WithContext(ctx).
		Model(&model.UserProfile{}).
		Where("streak_days > 0 AND (last_activity_date IS NULL OR last_activity_date < ?)", yesterday).
		Update("streak_days", 0)
	return result.RowsAffected, result.Error
}

func (s *ProfileRepoImpl) GetTopProfiles(ctx context.Context, limit int) ([]*model.UserProfile, error) {
	profiles := make([]*model.UserProfile, 0)
	result := s.db.WithContext(ctx).
		Order("total_points desc, level desc, total_co2_saved desc, user_id asc").
		Limit(limit).
		Find(&profiles)
	if result.Error != nil {
		return nil, result.Error
	}
	return profiles, nil
}
