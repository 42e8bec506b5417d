package service

import (
	"Ecotrace/internal/api/dto"
	"Ecotrace/internal/model"
	"context"
	"testing"
	"time"
)

func dateOf(value string) time.Time {
	t, err := time.Parse(time.DateOnly, value)
	if err != nil {
		panic(err)
	}
	return t
}

func TestRecordActivityStreaks(t *testing.T) {
	day1 := dateOf("2026-03-01")
	day2 := dateOf("2026-03-02")

	tests := []struct {
		name         string
		lastActivity *time.Time
		streakDays   int
		activityDate time.Time
		wantStreak   int
		wantUpdate   bool
	}{
		{name: "first activity starts streak", lastActivity: nil, streakDays: 0, activityDate: day1, wantStreak: 1, wantUpdate: true},
		{name: "consecutive day increments", lastActivity: &day1, streakDays: 3, activityDate: day2, wantStreak: 4, wantUpdate: true},
		{name: "same day is a no-op", lastActivity: &day2, streakDays: 4, activityDate: day2, wantStreak: 4, wantUpdate: false},
		{name: "backdated entry is a no-op", lastActivity: &day2, streakDays: 4, activityDate: day1, wantStreak: 4, wantUpdate: false},
		{name: "gap resets to one", lastActivity: &day1, streakDays: 9, activityDate: dateOf("2026-03-05"), wantStreak: 1, wantUpdate: true},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			profileRepo := newFakeProfileRepo()
			profileRepo.profiles[1] = &model.UserProfile{
				UserID:           1,
				StreakDays:       testCase.streakDays,
				LastActivityDate: testCase.lastActivity,
			}
			svc := NewProfileService(profileRepo)

			err := svc.RecordActivity(context.Background(), 1, dto.NewDate(testCase.activityDate))
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}

			if profileRepo.profiles[1].StreakDays != testCase.wantStreak {
				t.Fatalf("expected streak %d, got %d", testCase.wantStreak, profileRepo.profiles[1].StreakDays)
			}
			if testCase.wantUpdate && profileRepo.streakCalls != 1 {
				t.Fatalf("expected one streak update, got %d", profileRepo.streakCalls)
			}
			if !testCase.wantUpdate && profileRepo.streakCalls != 0 {
				t.Fatalf("expected no streak update, got %d", profileRepo.streakCalls)
			}
		})
	}
}

func TestRecordActivityUnknownUser(t *testing.T) {
	svc := NewProfileService(newFakeProfileRepo())
	err := svc.RecordActivity(context.Background(), 42, dto.NewDate(dateOf("2026-03-01")))
	if err != ErrUserNotFound {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}
}

func TestAwardPointsSkipsNonPositive(t *testing.T) {
	profileRepo := newFakeProfileRepo()
	profileRepo.profiles[1] = &model.UserProfile{UserID: 1, TotalPoints: 100, Level: 1}
	svc := NewProfileService(profileRepo)

	if err := svc.AwardPoints(context.Background(), 1, 0); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := svc.AwardPoints(context.Background(), 1, -5); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if profileRepo.profiles[1].TotalPoints != 100 {
		t.Fatalf("expected points untouched, got %d", profileRepo.profiles[1].TotalPoints)
	}

	if err := svc.AwardPoints(context.Background(), 1, 950); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if profileRepo.profiles[1].TotalPoints != 1050 {
		t.Fatalf("expected 1050 points, got %d", profileRepo.profiles[1].TotalPoints)
	}
	if profileRepo.profiles[1].Level != 2 {
		t.Fatalf("expected level 2 after crossing 1000 points, got %d", profileRepo.profiles[1].Level)
	}
}

func TestGetProfilePointsToNextLevel(t *testing.T) {
	profileRepo := newFakeProfileRepo()
	profileRepo.profiles[1] = &model.UserProfile{UserID: 1, TotalPoints: 1350, Level: 2}
	svc := NewProfileService(profileRepo)

	profile, err := svc.GetProfile(context.Background(), 1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if profile.PointsToNextLevel != 650 {
		t.Fatalf("expected 650 points to next level, got %d", profile.PointsToNextLevel)
	}
}

func TestLevelForPoints(t *testing.T) {
	tests := []struct {
		points int
		want   int
	}{
		{points: -10, want: 1},
		{points: 0, want: 1},
		{points: 999, want: 1},
		{points: 1000, want: 2},
		{points: 4500, want: 5},
	}
	for _, testCase := range tests {
		if got := LevelForPoints(testCase.points); got != testCase.want {
			t.Fatalf("LevelForPoints(%d) = %d, want %d", testCase.points, got, testCase.want)
		}
	}
}
