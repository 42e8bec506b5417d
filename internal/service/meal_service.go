package service

import (
	"Ecotrace/internal/api/dto"
	"Ecotrace/internal/model"
	"Ecotrace/internal/pkg/carbon"
	"Ecotrace/internal/pkg/util"
	"Ecotrace/internal/repository"
	"context"
	log "log/slog"
	"time"

	"github.com/jinzhu/copier"
)

type MealService interface {
	CreateMeal(ctx context.Context, userID uint64, createDTO *dto.CreateMealDTO) (*dto.MealDTO, error)
	GetMeal(ctx context.Context, userID, mealID uint64) (*dto.MealDTO, error)
	GetMeals(ctx context.Context, userID uint64, limit, offset int) ([]*dto.MealDTO, error)
	UpdateMeal(ctx context.Context, userID, mealID uint64, updateDTO *dto.UpdateMealDTO) (*dto.MealDTO, error)
	DeleteMeal(ctx context.Context, userID, mealID uint64) error
}

type MealServiceImpl struct {
	mealRepo           repository.MealRepo
	profileService     ProfileService
	achievementService AchievementService
}

func NewMealService(
	mealRepo repository.MealRepo,
	profileService ProfileService,
	achievementService AchievementService,
) MealService {
	return &MealServiceImpl{
		mealRepo:           mealRepo,
		profileService:     profileService,
		achievementService: achievementService,
	}
}

var validMealTypes = map[string]struct{}{
	model.MealTypeBreakfast: {},
	model.MealTypeLunch:     {},
	model.MealTypeDinner:    {},
	model.MealTypeSnack:     {},
}

func (s *MealServiceImpl) CreateMeal(ctx context.Context, userID uint64, createDTO *dto.CreateMealDTO) (*dto.MealDTO, error) {
	if _, ok := validMealTypes[createDTO.MealType]; !ok {
		return nil, ErrMealTypeInvalid
	}
	if len(createDTO.Ingredients) == 0 {
		return nil, ErrIngredientsEmpty
	}
	for _, amount := range createDTO.Ingredients {
		if amount <= 0 {
			return nil, ErrParamInvalid
		}
	}

	mealDate := util.DateOnly(createDTO.MealDate.Time())
	if mealDate.After(util.DateOnly(time.Now())) {
		return nil, ErrDateInFuture
	}

	totalCO2 := carbon.CalculateMealEmissions(createDTO.Ingredients)
	isVegan, isVegetarian := carbon.Classify(createDTO.Ingredients)

	meal := &model.Meal{
		UserID:       userID,
		MealType:     createDTO.MealType,
		Description:  createDTO.Description,
		Ingredients:  createDTO.Ingredients,
		TotalCO2:     totalCO2,
		MealDate:     mealDate,
		IsVegetarian: isVegetarian,
		IsVegan:      isVegan,
		IsActive:     true,
	}

	if err := s.mealRepo.CreateMeal(ctx, meal); err != nil {
		return nil, err
	}
	invalidateStatsCache(ctx, userID)

	co2Saved := carbon.CalculateMealSavings(createDTO.Ingredients)
	action := carbon.ActionLogMeal
	if isVegan {
		action = carbon.ActionVeganMeal
	} else if isVegetarian {
		action = carbon.ActionVegetarianMeal
	}
	points := carbon.CalculatePointsForAction(action, co2Saved)

	// 记录已落库，积分连击等附加动作失败只告警不回滚
	if err := s.profileService.AwardPoints(ctx, userID, points); err != nil {
		log.WarnContext(ctx, "用餐积分发放失败", "userId", userID, "err", err)
	}
	if err := s.profileService.AddCO2Saved(ctx, userID, co2Saved); err != nil {
		log.WarnContext(ctx, "减排量累计失败", "userId", userID, "err", err)
	}
	if err := s.profileService.RecordActivity(ctx, userID, createDTO.MealDate); err != nil {
		log.WarnContext(ctx, "连击更新失败", "userId", userID, "err", err)
	}

	unlocked, err := s.achievementService.CheckAndUnlock(ctx, userID)
	if err != nil {
		log.WarnContext(ctx, "成就检查失败", "userId", userID, "err", err)
		unlocked = nil
	}

	mealDTO, err := s.toMealDTO(meal)
	if err != nil {
		return nil, err
	}
	mealDTO.PointsEarned = points
	mealDTO.CO2Saved = co2Saved
	mealDTO.NewAchievements = unlocked
	return mealDTO, nil
}

func (s *MealServiceImpl) GetMeal(ctx context.Context, userID, mealID uint64) (*dto.MealDTO, error) {
	meal, err := s.mealRepo.GetMealById(ctx, mealID)
	if err != nil {
		return nil, err
	}
	if meal == nil || meal.UserID != userID {
		return nil, ErrMealNotFound
	}
	return s.toMealDTO(meal)
}

func (s *MealServiceImpl) GetMeals(ctx context.Context, userID uint64, limit, offset int) ([]*dto.MealDTO, error) {
	meals, err := s.mealRepo.GetMealsByUserId(ctx, userID, limit, offset)
	if err != nil {
		return nil, err
	}
	mealDTOs := make([]*dto.MealDTO, 0, len(meals))
	for _, meal := range meals {
		mealDTO, err := s.toMealDTO(meal)
		if err != nil {
			return nil, err
		}
		mealDTOs = append(mealDTOs, mealDTO)
	}
	return mealDTOs, nil
}

// UpdateMeal 重新计算排放与膳食分类，但不追加积分，避免刷分
func (s *MealServiceImpl) UpdateMeal(ctx context.Context, userID, mealID uint64, updateDTO *dto.UpdateMealDTO) (*dto.MealDTO, error) {
	meal, err := s.mealRepo.GetMealById(ctx, mealID)
	if err != nil {
		return nil, err
	}
	if meal == nil || meal.UserID != userID {
		return nil, ErrMealNotFound
	}

	if updateDTO.MealType != nil {
		if _, ok := validMealTypes[*updateDTO.MealType]; !ok {
			return nil, ErrMealTypeInvalid
		}
		meal.MealType = *updateDTO.MealType
	}
	if updateDTO.Description != nil {
		meal.Description = *updateDTO.Description
	}
	if updateDTO.Ingredients != nil {
		if len(updateDTO.Ingredients) == 0 {
			return nil, ErrIngredientsEmpty
		}
		meal.Ingredients = updateDTO.Ingredients
		meal.TotalCO2 = carbon.CalculateMealEmissions(updateDTO.Ingredients)
		meal.IsVegan, meal.IsVegetarian = carbon.Classify(updateDTO.Ingredients)
	}

	if err = s.mealRepo.UpdateMeal(ctx, meal); err != nil {
		return nil, err
	}
	invalidateStatsCache(ctx, userID)
	return s.toMealDTO(meal)
}

func (s *MealServiceImpl) DeleteMeal(ctx context.Context, userID, mealID uint64) error {
	meal, err := s.mealRepo.GetMealById(ctx, mealID)
	if err != nil {
		return err
	}
	if meal == nil || meal.UserID != userID {
		return ErrMealNotFound
	}
	if err = s.mealRepo.DeleteMeal(ctx, mealID); err != nil {
		return err
	}
	invalidateStatsCache(ctx, userID)
	return nil
}

func (s *MealServiceImpl) toMealDTO(meal *model.Meal) (*dto.MealDTO, error) {
	mealDTO := &dto.MealDTO{}
	if err := copier.Copy(mealDTO, meal); err != nil {
		return nil, err
	}
	mealDTO.MealDate = dto.NewDate(meal.MealDate)
	return mealDTO, nil
}
