package repository

import (
	"Ecotrace/internal/model"
	"context"
	"errors"
	"time"

	"gorm.io/gorm"
)

// TypeCount 按类型聚合的计数行
type TypeCount struct {
	Type  string  `gorm:"column:type"`
	Count int64   `gorm:"column:count"`
	CO2   float64 `gorm:"column:co2"`
}

type MealRepo interface {
	GetMealById(ctx context.Context, id uint64) (*model.Meal, error)
	GetMealsByUserId(ctx context.Context, userID uint64, limit, offset int) ([]*model.Meal, error)
	GetMealsByDateRange(ctx context.Context, userID uint64, start, end time.Time) ([]*model.Meal, error)
	CreateMeal(ctx context.Context, meal *model.Meal) error
	UpdateMeal(ctx context.Context, meal *model.Meal) error
	DeleteMeal(ctx context.Context, id uint64) error
	CountByUserId(ctx context.Context, userID uint64) (int64, error)
	CountVeganByUserId(ctx context.Context, userID uint64) (int64, error)
	CountVegetarianByUserId(ctx context.Context, userID uint64) (int64, error)
	SumCO2InRange(ctx context.Context, userID uint64, start, end time.Time) (float64, error)
	SumCO2ByUserId(ctx context.Context, userID uint64) (float64, error)
	CountByMealType(ctx context.Context, userID uint64, start, end time.Time) ([]TypeCount, error)
}

type MealRepoImpl struct {
	db *gorm.DB
}

func NewMealRepo(db *gorm.DB) MealRepo {
	return &MealRepoImpl{db: db}
}

func (s *MealRepoImpl) GetMealById(ctx context.Context, id uint64) (*model.Meal, error) {
	meal := &model.Meal{}
	result := s.db.WithContext(ctx).
		Where("id = ? AND is_active = 1", id).
		First(meal)

	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, result.Error
	}

	return meal, nil
}

func (s *MealRepoImpl) GetMealsByUserId(ctx context.Context, userID uint64, limit, offset int) ([]*model.Meal, error) {
	meals := make([]*model.Meal, 0)
	result := s.db.WithContext(ctx).
		Where("user_id = ? AND is_active = 1", userID).
		Order("meal_date desc, id desc").
		Limit(limit).
		Offset(offset).
		Find(&meals)

	if result.Error != nil {
		return nil, result.Error
	}
	return meals, nil
}

func (s *MealRepoImpl) GetMealsByDateRange(ctx context.Context, userID uint64, start, end time.Time) ([]*model.Meal, error) {
	meals := make([]*model.Meal, 0)
	result := s.db.WithContext(ctx).
		Where("user_id = ? AND is_active = 1 AND meal_date BETWEEN ? AND ?", userID, start, end).
		Order("meal_date asc").
		Find(&meals)

	if result.Error != nil {
		return nil, result.Error
	}
	return meals, nil
}

func (s *MealRepoImpl) CreateMeal(ctx context.Context, meal *model.Meal) error {
	return s.db.WithContext(ctx).Create(meal).Error
}

// UpdateMeal 显式列出可写列，保证零值（如分类标记翻回 false）也会落库
func (s *MealRepoImpl) UpdateMeal(ctx context.Context, meal *model.Meal) error {
	result := s.db.WithContext(ctx).
		Model(&model.Meal{}).
		Where("id = ?", meal.ID).
		Updates(map[string]interface{}{
			"meal_type":     meal.MealType,
			"description":   meal.Description,
			"ingredients":   meal.Ingredients,
			"total_co2":     meal.TotalCO2,
			"is_vegetarian": meal.IsVegetarian,
			"is_vegan":      meal.IsVegan,
		})
	return result.Error
}

// DeleteMeal 软删除，统计口径随之排除
func (s *MealRepoImpl) DeleteMeal(ctx context.Context, id uint64) error {
	result := s.db.WithContext(ctx).
		Model(&model.Meal{}).
		Where("id = ?", id).
		Update("is_active", false)
	return result.Error
}

func (s *MealRepoImpl) CountByUserId(ctx context.Context, userID uint64) (int64, error) {
	var count int64
	result := s.db.WithContext(ctx).
		Model(&model.Meal{}).
		Where("user_id = ? AND is_active = 1", userID).
		Count(&count)
	return count, result.Error
}

func (s *MealRepoImpl) CountVeganByUserId(ctx context.Context, userID uint64) (int64, error) {
	var count int64
	result := s.db.WithContext(ctx).
		Model(&model.Meal{}).
		Where("user_id = ? AND is_active = 1 AND is_vegan = 1", userID).
		Count(&count)
	return count, result.Error
}

func (s *MealRepoImpl) CountVegetarianByUserId(ctx context.Context, userID uint64) (int64, error) {
	var count int64
	result := s.db.WithContext(ctx).
		Model(&model.Meal{}).
		Where("user_id = ? AND is_active = 1 AND is_vegetarian = 1", userID).
		Count(&count)
	return count, result.Error
}

func (s *MealRepoImpl) SumCO2InRange(ctx context.Context, userID uint64, start, end time.Time) (float64, error) {
	var total float64
	result := s.db.WithContext(ctx).
		Model(&model.Meal{}).
		Select("COALESCE(SUM(total_co2), 0)").
		Where("user_id = ? AND is_active = 1 AND meal_date BETWEEN ? AND ?", userID, start, end).
		Scan(&total)
	return total, result.Error
}

func (s *MealRepoImpl) SumCO2ByUserId(ctx context.Context, userID uint64) (float64, error) {
	var total float64
	result := s.db.WithContext(ctx).
		Model(&model.Meal{}).
		Select("COALESCE(SUM(total_co2), 0)").
		Where("user_id = ? AND is_active = 1", userID).
		Scan(&total)
	return total, result.Error
}

func (s *MealRepoImpl) CountByMealType(ctx context.Context, userID uint64, start, end time.Time) ([]TypeCount, error) {
	rows := make([]TypeCount, 0)
	result := s.db.WithContext(ctx).
		Model(&model.Meal{}).
		Select("meal_type AS type, COUNT(*) AS count, COALESCE(SUM(total_co2), 0) AS co2").
		Where("user_id = ? AND is_active = 1 AND meal_date BETWEEN ? AND ?", userID, start, end).
		Group("meal_type").
		Scan(&rows)
	if result.Error != nil {
		return nil, result.Error
	}
	return rows, nil
}
