package service

import (
	"Ecotrace/internal/api/dto"
	"Ecotrace/internal/pkg/minio"
	"Ecotrace/internal/pkg/util"
	"Ecotrace/internal/repository"
	"context"

	"github.com/jinzhu/copier"
)

// PointsPerLevel 每升一级需要的积分
const PointsPerLevel = 1000

type ProfileService interface {
	GetProfile(ctx context.Context, userID uint64) (*dto.ProfileDTO, error)
	UpdateProfile(ctx context.Context, userID uint64, updateDTO *dto.UpdateProfileDTO) error
	UpdateAvatar(ctx context.Context, userID uint64, objectName string) error
	AwardPoints(ctx context.Context, userID uint64, points int) error
	AddCO2Saved(ctx context.Context, userID uint64, co2Saved float64) error
	RecordActivity(ctx context.Context, userID uint64, activityDate dto.Date) error
}

type ProfileServiceImpl struct {
	profileRepo repository.ProfileRepo
}

func NewProfileService(profileRepo repository.ProfileRepo) ProfileService {
	return &ProfileServiceImpl{profileRepo: profileRepo}
}

func (s *ProfileServiceImpl) GetProfile(ctx context.Context, userID uint64) (*dto.ProfileDTO, error) {
	profile, err := s.profileRepo.GetProfileByUserId(ctx, userID)
	if err != nil {
		return nil, err
	}
	if profile == nil {
		return nil, ErrUserNotFound
	}

	profileDTO := &dto.ProfileDTO{}
	if err = copier.Copy(profileDTO, profile); err != nil {
		return nil, err
	}
	url := minio.GetPublicURL(profile.AvatarURL)
	profileDTO.AvatarURL = url
	profileDTO.PointsToNextLevel = profile.Level*PointsPerLevel - profile.TotalPoints
	return profileDTO, nil
}

func (s *ProfileServiceImpl) UpdateProfile(ctx context.Context, userID uint64, updateDTO *dto.UpdateProfileDTO) error {
	profile, err := s.profileRepo.GetProfileByUserId(ctx, userID)
	if err != nil {
		return err
	}
	if profile == nil {
		return ErrUserNotFound
	}

	fields := map[string]interface{}{}
	if updateDTO.Bio != nil {
		fields["bio"] = *updateDTO.Bio
	}
	if updateDTO.DailyCO2Goal != nil {
		fields["daily_co2_goal"] = *updateDTO.DailyCO2Goal
	}
	if updateDTO.NotificationsEnabled != nil {
		fields["notifications_enabled"] = *updateDTO.NotificationsEnabled
	}
	if len(fields) == 0 {
		return nil
	}
	return s.profileRepo.UpdateProfile(ctx, userID, fields)
}

func (s *ProfileServiceImpl) UpdateAvatar(ctx context.Context, userID uint64, objectName string) error {
	profile, err := s.profileRepo.GetProfileByUserId(ctx, userID)
	if err != nil {
		return err
	}
	if profile == nil {
		return ErrUserNotFound
	}
	return s.profileRepo.UpdateProfile(ctx, userID, map[string]interface{}{
		"avatar_url": objectName,
	})
}

// AwardPoints 加分并按积分同步等级，等级只升不降
func (s *ProfileServiceImpl) AwardPoints(ctx context.Context, userID uint64, points int) error {
	if points <= 0 {
		return nil
	}
	return s.profileRepo.AddPoints(ctx, userID, points)
}

func (s *ProfileServiceImpl) AddCO2Saved(ctx context.Context, userID uint64, co2Saved float64) error {
	if co2Saved <= 0 {
		return nil
	}
	return s.profileRepo.AddCO2Saved(ctx, userID, co2Saved)
}

// RecordActivity 按活动日期维护连击天数。
// 同一天重复记录与补录历史日期都不影响连击，last_activity_date 只前进不后退。
func (s *ProfileServiceImpl) RecordActivity(ctx context.Context, userID uint64, activityDate dto.Date) error {
	profile, err := s.profileRepo.GetProfileByUserId(ctx, userID)
	if err != nil {
		return err
	}
	if profile == nil {
		return ErrUserNotFound
	}

	day := util.DateOnly(activityDate.Time())

	if profile.LastActivityDate != nil {
		last := util.DateOnly(*profile.LastActivityDate)
		if !day.After(last) {
			return nil
		}
		if day.Equal(last.AddDate(0, 0, 1)) {
			return s.profileRepo.UpdateStreak(ctx, userID, profile.StreakDays+1, day)
		}
	}

	return s.profileRepo.UpdateStreak(ctx, userID, 1, day)
}

// LevelForPoints 积分对应的等级
func LevelForPoints(totalPoints int) int {
	if totalPoints < 0 {
		return 1
	}
	return totalPoints/PointsPerLevel + 1
}
