package service

import (
	"Ecotrace/internal/api/dto"
	"Ecotrace/internal/model"
	"Ecotrace/internal/pkg/carbon"
	"Ecotrace/internal/pkg/consts"
	"Ecotrace/internal/pkg/redis"
	"Ecotrace/internal/repository"
	"context"
	"strconv"
	"time"

	"github.com/goccy/go-json"
	"github.com/jinzhu/copier"
)

type AchievementService interface {
	GetAchievements(ctx context.Context) ([]*dto.AchievementDTO, error)
	GetUserAchievements(ctx context.Context, userID uint64) ([]*dto.UserAchievementDTO, error)
	CheckAndUnlock(ctx context.Context, userID uint64) ([]*dto.AchievementDTO, error)
}

type AchievementServiceImpl struct {
	achievementRepo repository.AchievementRepo
	mealRepo        repository.MealRepo
	transportRepo   repository.TransportRepo
	friendshipRepo  repository.FriendshipRepo
	profileRepo     repository.ProfileRepo
}

func NewAchievementService(
	achievementRepo repository.AchievementRepo,
	mealRepo repository.MealRepo,
	transportRepo repository.TransportRepo,
	friendshipRepo repository.FriendshipRepo,
	profileRepo repository.ProfileRepo,
) AchievementService {
	return &AchievementServiceImpl{
		achievementRepo: achievementRepo,
		mealRepo:        mealRepo,
		transportRepo:   transportRepo,
		friendshipRepo:  friendshipRepo,
		profileRepo:     profileRepo,
	}
}

func (s *AchievementServiceImpl) GetAchievements(ctx context.Context) ([]*dto.AchievementDTO, error) {
	achievements, err := s.achievementRepo.GetActiveAchievements(ctx)
	if err != nil {
		return nil, err
	}
	achievementDTOs := make([]*dto.AchievementDTO, 0, len(achievements))
	for _, achievement := range achievements {
		achievementDTO := &dto.AchievementDTO{}
		if err = copier.Copy(achievementDTO, achievement); err != nil {
			return nil, err
		}
		achievementDTOs = append(achievementDTOs, achievementDTO)
	}
	return achievementDTOs, nil
}

func (s *AchievementServiceImpl) GetUserAchievements(ctx context.Context, userID uint64) ([]*dto.UserAchievementDTO, error) {
	key := consts.UserAchievementsKey + strconv.FormatUint(userID, 10)
	value, err := redis.GetValue(ctx, key)
	if err == nil && value != "" {
		var cached []*dto.UserAchievementDTO
		if err = json.Unmarshal([]byte(value), &cached); err == nil {
			return cached, nil
		}
	}

	records, err := s.achievementRepo.GetUserAchievements(ctx, userID)
	if err != nil {
		return nil, err
	}

	result := make([]*dto.UserAchievementDTO, 0, len(records))
	for _, record := range records {
		uaDTO := &dto.UserAchievementDTO{}
		if err = copier.Copy(uaDTO, record); err != nil {
			return nil, err
		}
		if err = copier.Copy(&uaDTO.Achievement, &record.Achievement); err != nil {
			return nil, err
		}
		result = append(result, uaDTO)
	}

	if jsonStr, err := json.Marshal(result); err == nil {
		_ = redis.SetWithExpiration(ctx, key, string(jsonStr), time.Minute*10)
	}
	return result, nil
}

// CheckAndUnlock 重算用户在所有启用成就上的进度，返回本次新解锁的成就。
// 解锁由带条件的 UPDATE 保证幂等，并发重复调用不会重复发奖。
func (s *AchievementServiceImpl) CheckAndUnlock(ctx context.Context, userID uint64) ([]*dto.AchievementDTO, error) {
	achievements, err := s.achievementRepo.GetActiveAchievements(ctx)
	if err != nil {
		return nil, err
	}

	stats, err := s.collectStats(ctx, userID)
	if err != nil {
		return nil, err
	}

	newlyUnlocked := make([]*dto.AchievementDTO, 0)
	totalBonus := 0

	for _, achievement := range achievements {
		current, ok := stats[achievement.RequirementType]
		if !ok {
			continue
		}

		record, err := s.achievementRepo.GetUserAchievement(ctx, userID, achievement.ID)
		if err != nil {
			return nil, err
		}
		if record != nil && record.IsUnlocked {
			continue
		}
		if record == nil {
			record = &model.UserAchievement{
				UserID:        userID,
				AchievementID: achievement.ID,
			}
			if err = s.achievementRepo.UpsertUserAchievement(ctx, record); err != nil {
				return nil, err
			}
		}

		progress := progressPercent(current, achievement.RequirementValue)

		if current >= int64(achievement.RequirementValue) {
			rows, err := s.achievementRepo.Unlock(ctx, userID, achievement.ID, time.Now())
			if err != nil {
				return nil, err
			}
			if rows == 0 {
				continue
			}
			totalBonus += achievement.Points

			achievementDTO := &dto.AchievementDTO{}
			if err = copier.Copy(achievementDTO, achievement); err != nil {
				return nil, err
			}
			newlyUnlocked = append(newlyUnlocked, achievementDTO)
			continue
		}

		if record.Progress != progress {
			if err = s.achievementRepo.UpdateProgress(ctx, userID, achievement.ID, progress); err != nil {
				return nil, err
			}
		}
	}

	if totalBonus > 0 {
		if err = s.profileRepo.AddPoints(ctx, userID, totalBonus); err != nil {
			return nil, err
		}
	}
	if len(newlyUnlocked) > 0 || totalBonus > 0 {
		_ = redis.DeleteKey(ctx, consts.UserAchievementsKey+strconv.FormatUint(userID, 10))
	}

	return newlyUnlocked, nil
}

// collectStats 汇总一次所有条件类型对应的当前值，避免每个成就单独查库
func (s *AchievementServiceImpl) collectStats(ctx context.Context, userID uint64) (map[string]int64, error) {
	stats := make(map[string]int64)

	mealCount, err := s.mealRepo.CountByUserId(ctx, userID)
	if err != nil {
		return nil, err
	}
	stats[model.RequirementMealCount] = mealCount

	veganCount, err := s.mealRepo.CountVeganByUserId(ctx, userID)
	if err != nil {
		return nil, err
	}
	stats[model.RequirementVeganMealCount] = veganCount

	vegetarianCount, err := s.mealRepo.CountVegetarianByUserId(ctx, userID)
	if err != nil {
		return nil, err
	}
	stats[model.RequirementVegetarianMealCount] = vegetarianCount

	transportCount, err := s.transportRepo.CountByUserId(ctx, userID)
	if err != nil {
		return nil, err
	}
	stats[model.RequirementTransportCount] = transportCount

	ecoTypes := make([]string, 0, len(carbon.EcoTransportTypes))
	for t := range carbon.EcoTransportTypes {
		ecoTypes = append(ecoTypes, t)
	}
	ecoCount, err := s.transportRepo.CountEcoByUserId(ctx, userID, ecoTypes)
	if err != nil {
		return nil, err
	}
	stats[model.RequirementEcoTransportCount] = ecoCount

	friendCount, err := s.friendshipRepo.CountFriends(ctx, userID)
	if err != nil {
		return nil, err
	}
	stats[model.RequirementFriendCount] = friendCount

	profile, err := s.profileRepo.GetProfileByUserId(ctx, userID)
	if err != nil {
		return nil, err
	}
	if profile != nil {
		stats[model.RequirementCO2Saved] = int64(profile.TotalCO2Saved)
		stats[model.RequirementDailyStreak] = int64(profile.StreakDays)
		stats[model.RequirementLevelReached] = int64(profile.Level)
	}

	return stats, nil
}

func progressPercent(current int64, required int) int {
	if required <= 0 {
		return 100
	}
	percent := int(current * 100 / int64(required))
	if percent > 100 {
		percent = 100
	}
	return percent
}
