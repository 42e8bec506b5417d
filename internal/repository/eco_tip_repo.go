package repository

import (
	"Ecotrace/internal/model"
	"context"

	"gorm.io/gorm"
)

type EcoTipRepo interface {
	GetActiveTips(ctx context.Context, category string) ([]*model.EcoTip, error)
	GetRandomTips(ctx context.Context, limit int) ([]*model.EcoTip, error)
}

type EcoTipRepoImpl struct {
	db *gorm.DB
}

func NewEcoTipRepo(db *gorm.DB) EcoTipRepo {
	return &EcoTipRepoImpl{db: db}
}

func (s *EcoTipRepoImpl) GetActiveTips(ctx context.Context, category string) ([]*model.EcoTip, error) {
	tips := make([]*model.EcoTip, 0)
	query := s.db.WithContext(ctx).Where("is_active = 1")
	if category != "" {
		query = query.Where("category = ?", category)
	}
	result := query.Order("id asc").Find(&tips)
	if result.Error != nil {
		return nil, result.Error
	}
	return tips, nil
}

func (s *EcoTipRepoImpl) GetRandomTips(ctx context.Context, limit int) ([]*model.EcoTip, error) {
	tips := make([]*model.EcoTip, 0)
	result := s.db.WithContext(ctx).
		Where("is_active = 1").
		Order("RAND()").
		Limit(limit).
		Find(&tips)
	if result.Error != nil {
		return nil, result.Error
	}
	return tips, nil
}
