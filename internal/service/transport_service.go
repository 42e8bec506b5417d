package service

import (
	"Ecotrace/internal/api/dto"
	"Ecotrace/internal/model"
	"Ecotrace/internal/pkg/carbon"
	"Ecotrace/internal/pkg/util"
	"Ecotrace/internal/repository"
	"context"
	log "log/slog"
	"strings"
	"time"

	"github.com/jinzhu/copier"
)

type TransportService interface {
	CreateTransport(ctx context.Context, userID uint64, createDTO *dto.CreateTransportDTO) (*dto.TransportDTO, error)
	GetTransport(ctx context.Context, userID, transportID uint64) (*dto.TransportDTO, error)
	GetTransports(ctx context.Context, userID uint64, limit, offset int) ([]*dto.TransportDTO, error)
	UpdateTransport(ctx context.Context, userID, transportID uint64, updateDTO *dto.UpdateTransportDTO) (*dto.TransportDTO, error)
	DeleteTransport(ctx context.Context, userID, transportID uint64) error
}

type TransportServiceImpl struct {
	transportRepo      repository.TransportRepo
	profileService     ProfileService
	achievementService AchievementService
}

func NewTransportService(
	transportRepo repository.TransportRepo,
	profileService ProfileService,
	achievementService AchievementService,
) TransportService {
	return &TransportServiceImpl{
		transportRepo:      transportRepo,
		profileService:     profileService,
		achievementService: achievementService,
	}
}

func (s *TransportServiceImpl) CreateTransport(ctx context.Context, userID uint64, createDTO *dto.CreateTransportDTO) (*dto.TransportDTO, error) {
	if createDTO.DistanceKm <= 0 {
		return nil, ErrDistanceInvalid
	}

	tripDate := util.DateOnly(createDTO.TripDate.Time())
	if tripDate.After(util.DateOnly(time.Now())) {
		return nil, ErrDateInFuture
	}

	transportType := strings.ToLower(createDTO.TransportType)
	totalCO2 := carbon.CalculateTransportEmissions(transportType, createDTO.DistanceKm)

	transport := &model.Transport{
		UserID:        userID,
		TransportType: transportType,
		DistanceKm:    createDTO.DistanceKm,
		Origin:        createDTO.Origin,
		Destination:   createDTO.Destination,
		TotalCO2:      totalCO2,
		TripDate:      tripDate,
		IsActive:      true,
	}

	if err := s.transportRepo.CreateTransport(ctx, transport); err != nil {
		return nil, err
	}
	invalidateStatsCache(ctx, userID)

	co2Saved := carbon.CalculateTransportSavings(transportType, createDTO.DistanceKm)
	action := carbon.ActionLogTransport
	switch transportType {
	case "bike":
		action = carbon.ActionBikeUsed
	case "walk":
		action = carbon.ActionWalkUsed
	}
	points := carbon.CalculatePointsForAction(action, co2Saved)

	// 记录已落库，积分连击等附加动作失败只告警不回滚
	if err := s.profileService.AwardPoints(ctx, userID, points); err != nil {
		log.WarnContext(ctx, "出行积分发放失败", "userId", userID, "err", err)
	}
	if err := s.profileService.AddCO2Saved(ctx, userID, co2Saved); err != nil {
		log.WarnContext(ctx, "减排量累计失败", "userId", userID, "err", err)
	}
	if err := s.profileService.RecordActivity(ctx, userID, createDTO.TripDate); err != nil {
		log.WarnContext(ctx, "连击更新失败", "userId", userID, "err", err)
	}

	unlocked, err := s.achievementService.CheckAndUnlock(ctx, userID)
	if err != nil {
		log.WarnContext(ctx, "成就检查失败", "userId", userID, "err", err)
		unlocked = nil
	}

	transportDTO, err := s.toTransportDTO(transport)
	if err != nil {
		return nil, err
	}
	transportDTO.PointsEarned = points
	transportDTO.CO2Saved = co2Saved
	transportDTO.NewAchievements = unlocked
	return transportDTO, nil
}

func (s *TransportServiceImpl) GetTransport(ctx context.Context, userID, transportID uint64) (*dto.TransportDTO, error) {
	transport, err := s.transportRepo.GetTransportById(ctx, transportID)
	if err != nil {
		return nil, err
	}
	if transport == nil || transport.UserID != userID {
		return nil, ErrTransportNotFound
	}
	return s.toTransportDTO(transport)
}

func (s *TransportServiceImpl) GetTransports(ctx context.Context, userID uint64, limit, offset int) ([]*dto.TransportDTO, error) {
	transports, err := s.transportRepo.GetTransportsByUserId(ctx, userID, limit, offset)
	if err != nil {
		return nil, err
	}
	transportDTOs := make([]*dto.TransportDTO, 0, len(transports))
	for _, transport := range transports {
		transportDTO, err := s.toTransportDTO(transport)
		if err != nil {
			return nil, err
		}
		transportDTOs = append(transportDTOs, transportDTO)
	}
	return transportDTOs, nil
}

// UpdateTransport 重新计算排放，但不追加积分，避免刷分
func (s *TransportServiceImpl) UpdateTransport(ctx context.Context, userID, transportID uint64, updateDTO *dto.UpdateTransportDTO) (*dto.TransportDTO, error) {
	transport, err := s.transportRepo.GetTransportById(ctx, transportID)
	if err != nil {
		return nil, err
	}
	if transport == nil || transport.UserID != userID {
		return nil, ErrTransportNotFound
	}

	if updateDTO.TransportType != nil {
		transport.TransportType = strings.ToLower(*updateDTO.TransportType)
	}
	if updateDTO.DistanceKm != nil {
		if *updateDTO.DistanceKm <= 0 {
			return nil, ErrDistanceInvalid
		}
		transport.DistanceKm = *updateDTO.DistanceKm
	}
	if updateDTO.Origin != nil {
		transport.Origin = *updateDTO.Origin
	}
	if updateDTO.Destination != nil {
		transport.Destination = *updateDTO.Destination
	}
	transport.TotalCO2 = carbon.CalculateTransportEmissions(transport.TransportType, transport.DistanceKm)

	if err = s.transportRepo.UpdateTransport(ctx, transport); err != nil {
		return nil, err
	}
	invalidateStatsCache(ctx, userID)
	return s.toTransportDTO(transport)
}

func (s *TransportServiceImpl) DeleteTransport(ctx context.Context, userID, transportID uint64) error {
	transport, err := s.transportRepo.GetTransportById(ctx, transportID)
	if err != nil {
		return err
	}
	if transport == nil || transport.UserID != userID {
		return ErrTransportNotFound
	}
	if err = s.transportRepo.DeleteTransport(ctx, transportID); err != nil {
		return err
	}
	invalidateStatsCache(ctx, userID)
	return nil
}

func (s *TransportServiceImpl) toTransportDTO(transport *model.Transport) (*dto.TransportDTO, error) {
	transportDTO := &dto.TransportDTO{}
	if err := copier.Copy(transportDTO, transport); err != nil {
		return nil, err
	}
	transportDTO.TripDate = dto.NewDate(transport.TripDate)
	transportDTO.IsEco = carbon.IsEcoTransport(transport.TransportType)
	return transportDTO, nil
}
