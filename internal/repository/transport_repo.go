package repository

import (
	"Ecotrace/internal/model"
	"context"
	"errors"
	"time"

	"gorm.io/gorm"
)

type TransportRepo interface {
	GetTransportById(ctx context.Context, id uint64) (*model.Transport, error)
	GetTransportsByUserId(ctx context.Context, userID uint64, limit, offset int) ([]*model.Transport, error)
	GetTransportsByDateRange(ctx context.Context, userID uint64, start, end time.Time) ([]*model.Transport, error)
	CreateTransport(ctx context.Context, transport *model.Transport) error
	UpdateTransport(ctx context.Context, transport *model.Transport) error
	DeleteTransport(ctx context.Context, id uint64) error
	CountByUserId(ctx context.Context, userID uint64) (int64, error)
	CountEcoByUserId(ctx context.Context, userID uint64, ecoTypes []string) (int64, error)
	SumCO2InRange(ctx context.Context, userID uint64, start, end time.Time) (float64, error)
	SumCO2ByUserId(ctx context.Context, userID uint64) (float64, error)
	SumDistanceByUserId(ctx context.Context, userID uint64) (float64, error)
	CountByTransportType(ctx context.Context, userID uint64, start, end time.Time) ([]TypeCount, error)
}

type TransportRepoImpl struct {
	db *gorm.DB
}

func NewTransportRepo(db *gorm.DB) TransportRepo {
	return &TransportRepoImpl{db: db}
}

func (s *TransportRepoImpl) GetTransportById(ctx context.Context, id uint64) (*model.Transport, error) {
	transport := &model.Transport{}
	result := s.db.WithContext(ctx).
		Where("id = ? AND is_active = 1", id).
		First(transport)

	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, result.Error
	}

	return transport, nil
}

func (s *TransportRepoImpl) GetTransportsByUserId(ctx context.Context, userID uint64, limit, offset int) ([]*model.Transport, error) {
	transports := make([]*model.Transport, 0)
	result := s.db.WithContext(ctx).
		Where("user_id = ? AND is_active = 1", userID).
		Order("trip_date desc, id desc").
		Limit(limit).
		Offset(offset).
		Find(&transports)

	if result.Error != nil {
		return nil, result.Error
	}
	return transports, nil
}

func (s *TransportRepoImpl) GetTransportsByDateRange(ctx context.Context, userID uint64, start, end time.Time) ([]*model.Transport, error) {
	transports := make([]*model.Transport, 0)
	result := s.db.WithContext(ctx).
		Where("user_id = ? AND is_active = 1 AND trip_date BETWEEN ? AND ?", userID, start, end).
		Order("trip_date asc").
		Find(&transports)

	if result.Error != nil {
		return nil, result.Error
	}
	return transports, nil
}

func (s *TransportRepoImpl) CreateTransport(ctx context.Context, transport *model.Transport) error {
	return s.db.WithContext(ctx).Create(transport).Error
}

// UpdateTransport 显式列出可写列，保证零值（如骑行的 total_co2 = 0）也会落库
func (s *TransportRepoImpl) UpdateTransport(ctx context.Context, transport *model.Transport) error {
	result := s.db.WithContext(ctx).
		Model(&model.Transport{}).
		Where("id = ?", transport.ID).
		Updates(map[string]interface{}{
			"transport_type": transport.TransportType,
			"distance_km":    transport.DistanceKm,
			"origin":         transport.Origin,
			"destination":    transport.Destination,
			"total_co2":      transport.TotalCO2,
		})
	return result.Error
}

// DeleteTransport 软删除，统计口径随之排除
func (s *TransportRepoImpl) DeleteTransport(ctx context.Context, id uint64) error {
	result := s.db.WithContext(ctx).
		Model(&model.Transport{}).
		Where("id = ?", id).
		Update("is_active", false)
	return result.Error
}

func (s *TransportRepoImpl) CountByUserId(ctx context.Context, userID uint64) (int64, error) {
	var count int64
	result := s.db.WithContext(ctx).
		Model(&model.Transport{}).
		Where("user_id = ? AND is_active = 1", userID).
		Count(&count)
	return count, result.Error
}

func (s *TransportRepoImpl) CountEcoByUserId(ctx context.Context, userID uint64, ecoTypes []string) (int64, error) {
	var count int64
	result := s.db.WithContext(ctx).
		Model(&model.Transport{}).
		Where("user_id = ? AND is_active = 1 AND transport_type IN ?", userID, ecoTypes).
		Count(&count)
	return count, result.Error
}

func (s *TransportRepoImpl) SumCO2InRange(ctx context.Context, userID uint64, start, end time.Time) (float64, error) {
	var total float64
	result := s.db.WithContext(ctx).
		Model(&model.Transport{}).
		Select("COALESCE(SUM(total_co2), 0)").
		Where("user_id = ? AND is_active = 1 AND trip_date BETWEEN ? AND ?", userID, start, end).
		Scan(&total)
	return total, result.Error
}

func (s *TransportRepoImpl) SumCO2ByUserId(ctx context.Context, userID uint64) (float64, error) {
	var total float64
	result := s.db.WithContext(ctx).
		Model(&model.Transport{}).
		Select("COALESCE(SUM(total_co2), 0)").
		Where("user_id = ? AND is_active = 1", userID).
		Scan(&total)
	return total, result.Error
}

func (s *TransportRepoImpl) SumDistanceByUserId(ctx context.Context, userID uint64) (float64, error) {
	var total float64
	result := s.db.WithContext(ctx).
		Model(&model.Transport{}).
		Select("COALESCE(SUM(distance_km), 0)").
		Where("user_id = ? AND is_active = 1", userID).
		Scan(&total)
	return total, result.Error
}

func (s *TransportRepoImpl) CountByTransportType(ctx context.Context, userID uint64, start, end time.Time) ([]TypeCount, error) {
	rows := make([]TypeCount, 0)
	result := s.db.WithContext(ctx).
		Model(&model.Transport{}).
		Select("transport_type AS type, COUNT(*) AS count, COALESCE(SUM(total_co2), 0) AS co2").
		Where("user_id = ? AND is_active = 1 AND trip_date BETWEEN ? AND ?", userID, start, end).
		Group("transport_type").
		Scan(&rows)
	if result.Error != nil {
		return nil, result.Error
	}
	return rows, nil
}
