package service

import (
	"Ecotrace/internal/api/dto"
	"Ecotrace/internal/model"
	"context"
	"testing"
	"time"
)

type transportServiceFixture struct {
	svc           TransportService
	transportRepo *fakeTransportRepo
	profileRepo   *fakeProfileRepo
}

func newTransportServiceFixture() *transportServiceFixture {
	mealRepo := newFakeMealRepo()
	transportRepo := newFakeTransportRepo()
	friendshipRepo := newFakeFriendshipRepo()
	profileRepo := newFakeProfileRepo()
	profileRepo.profiles[1] = &model.UserProfile{UserID: 1, Level: 1}

	profileSvc := NewProfileService(profileRepo)
	achievementSvc := NewAchievementService(
		newFakeAchievementRepo(), mealRepo, transportRepo, friendshipRepo, profileRepo)

	return &transportServiceFixture{
		svc:           NewTransportService(transportRepo, profileSvc, achievementSvc),
		transportRepo: transportRepo,
		profileRepo:   profileRepo,
	}
}

func TestCreateTransportValidation(t *testing.T) {
	fixture := newTransportServiceFixture()

	_, err := fixture.svc.CreateTransport(context.Background(), 1, &dto.CreateTransportDTO{
		TransportType: "car", DistanceKm: 0, TripDate: dto.NewDate(time.Now()),
	})
	if err != ErrDistanceInvalid {
		t.Fatalf("expected ErrDistanceInvalid, got %v", err)
	}

	_, err = fixture.svc.CreateTransport(context.Background(), 1, &dto.CreateTransportDTO{
		TransportType: "car", DistanceKm: 5, TripDate: dto.NewDate(time.Now().AddDate(0, 0, 2)),
	})
	if err != ErrDateInFuture {
		t.Fatalf("expected ErrDateInFuture, got %v", err)
	}
}

func TestCreateBikeTripRewards(t *testing.T) {
	fixture := newTransportServiceFixture()

	trip, err := fixture.svc.CreateTransport(context.Background(), 1, &dto.CreateTransportDTO{
		TransportType: "Bike",
		DistanceKm:    10,
		TripDate:      dto.NewDate(time.Now()),
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if trip.TransportType != "bike" {
		t.Fatalf("transport type should be normalized to lowercase, got %q", trip.TransportType)
	}
	if !trip.IsEco {
		t.Fatalf("bike should count as eco transport")
	}
	if trip.TotalCO2 != 0 {
		t.Fatalf("bike trip should emit nothing, got %v", trip.TotalCO2)
	}
	// 相对开车 0.192*10 的避免排放
	if trip.CO2Saved != 1.92 {
		t.Fatalf("expected 1.92 kg saved, got %v", trip.CO2Saved)
	}
	// bike_used 基础 30 分 + 节省奖励 3 分
	if trip.PointsEarned != 33 {
		t.Fatalf("expected 33 points, got %d", trip.PointsEarned)
	}
	if fixture.profileRepo.profiles[1].TotalPoints != 33 {
		t.Fatalf("points not credited to profile, got %d", fixture.profileRepo.profiles[1].TotalPoints)
	}
}

func TestCreateCarTripNoSavings(t *testing.T) {
	fixture := newTransportServiceFixture()

	trip, err := fixture.svc.CreateTransport(context.Background(), 1, &dto.CreateTransportDTO{
		TransportType: "car",
		DistanceKm:    10,
		TripDate:      dto.NewDate(time.Now()),
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if trip.IsEco {
		t.Fatalf("car should not count as eco transport")
	}
	if trip.TotalCO2 != 1.92 {
		t.Fatalf("expected 1.92 kg CO2, got %v", trip.TotalCO2)
	}
	if trip.CO2Saved != 0 {
		t.Fatalf("driving saves nothing against the car baseline, got %v", trip.CO2Saved)
	}
	if trip.PointsEarned != 10 {
		t.Fatalf("expected base 10 points for log_transport, got %d", trip.PointsEarned)
	}
}

func TestUpdateTransportRecalculates(t *testing.T) {
	fixture := newTransportServiceFixture()

	created, err := fixture.svc.CreateTransport(context.Background(), 1, &dto.CreateTransportDTO{
		TransportType: "car",
		DistanceKm:    10,
		TripDate:      dto.NewDate(time.Now()),
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	pointsAfterCreate := fixture.profileRepo.profiles[1].TotalPoints

	busType := "bus"
	updated, err := fixture.svc.UpdateTransport(context.Background(), 1, created.ID, &dto.UpdateTransportDTO{
		TransportType: &busType,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if updated.TotalCO2 != 0.89 {
		t.Fatalf("expected recalculated CO2 0.89 for 10km by bus, got %v", updated.TotalCO2)
	}
	if fixture.profileRepo.profiles[1].TotalPoints != pointsAfterCreate {
		t.Fatalf("update must not award points")
	}
}

func TestUpdateTransportPersistsZeroEmission(t *testing.T) {
	fixture := newTransportServiceFixture()

	created, err := fixture.svc.CreateTransport(context.Background(), 1, &dto.CreateTransportDTO{
		TransportType: "car",
		DistanceKm:    10,
		TripDate:      dto.NewDate(time.Now()),
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	bikeType := "bike"
	updated, err := fixture.svc.UpdateTransport(context.Background(), 1, created.ID, &dto.UpdateTransportDTO{
		TransportType: &bikeType,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !updated.IsEco {
		t.Fatalf("bike trip should be marked eco")
	}

	// 零排放也要写回，否则旧的 1.92 会留在库里
	stored := fixture.transportRepo.transports[0]
	if stored.TransportType != "bike" || stored.TotalCO2 != 0 {
		t.Fatalf("expected stored bike trip with zero CO2, got type=%q co2=%v", stored.TransportType, stored.TotalCO2)
	}
}

func TestGetTransportOwnership(t *testing.T) {
	fixture := newTransportServiceFixture()
	fixture.transportRepo.transports = append(fixture.transportRepo.transports, &model.Transport{
		ID: 9, UserID: 2, TransportType: "car", IsActive: true,
	})

	_, err := fixture.svc.GetTransport(context.Background(), 1, 9)
	if err != ErrTransportNotFound {
		t.Fatalf("expected ErrTransportNotFound for another user's trip, got %v", err)
	}
}
