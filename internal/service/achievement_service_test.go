package service

import (
	"Ecotrace/internal/model"
	"context"
	"testing"
)

func newAchievementFixture(achievements ...*model.Achievement) (AchievementService, *fakeAchievementRepo, *fakeMealRepo, *fakeProfileRepo) {
	achievementRepo := newFakeAchievementRepo(achievements...)
	mealRepo := newFakeMealRepo()
	transportRepo := newFakeTransportRepo()
	friendshipRepo := newFakeFriendshipRepo()
	profileRepo := newFakeProfileRepo()
	profileRepo.profiles[1] = &model.UserProfile{UserID: 1, Level: 1}

	svc := NewAchievementService(achievementRepo, mealRepo, transportRepo, friendshipRepo, profileRepo)
	return svc, achievementRepo, mealRepo, profileRepo
}

func TestCheckAndUnlockAwardsOnce(t *testing.T) {
	svc, achievementRepo, mealRepo, profileRepo := newAchievementFixture(&model.Achievement{
		ID:               1,
		Name:             "First Bite",
		RequirementType:  model.RequirementMealCount,
		RequirementValue: 1,
		Points:           100,
		IsActive:         true,
	})
	mealRepo.meals = append(mealRepo.meals, &model.Meal{ID: 1, UserID: 1, IsActive: true})

	unlocked, err := svc.CheckAndUnlock(context.Background(), 1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(unlocked) != 1 || unlocked[0].ID != 1 {
		t.Fatalf("expected achievement 1 unlocked, got %v", unlocked)
	}
	if profileRepo.profiles[1].TotalPoints != 100 {
		t.Fatalf("expected 100 bonus points, got %d", profileRepo.profiles[1].TotalPoints)
	}

	record, _ := achievementRepo.GetUserAchievement(context.Background(), 1, 1)
	if record == nil || !record.IsUnlocked || record.UnlockedAt == nil {
		t.Fatalf("unlock state not persisted: %+v", record)
	}

	// 再次检查不得重复发奖
	unlocked, err = svc.CheckAndUnlock(context.Background(), 1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(unlocked) != 0 {
		t.Fatalf("already unlocked achievement returned again: %v", unlocked)
	}
	if profileRepo.profiles[1].TotalPoints != 100 {
		t.Fatalf("bonus awarded twice, got %d points", profileRepo.profiles[1].TotalPoints)
	}
}

func TestCheckAndUnlockTracksProgress(t *testing.T) {
	svc, achievementRepo, mealRepo, profileRepo := newAchievementFixture(&model.Achievement{
		ID:               2,
		Name:             "Meal Marathon",
		RequirementType:  model.RequirementMealCount,
		RequirementValue: 10,
		Points:           200,
		IsActive:         true,
	})
	for i := 0; i < 3; i++ {
		mealRepo.meals = append(mealRepo.meals, &model.Meal{ID: uint64(i + 1), UserID: 1, IsActive: true})
	}

	unlocked, err := svc.CheckAndUnlock(context.Background(), 1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(unlocked) != 0 {
		t.Fatalf("requirement not met, nothing should unlock: %v", unlocked)
	}

	record, _ := achievementRepo.GetUserAchievement(context.Background(), 1, 2)
	if record == nil || record.Progress != 30 {
		t.Fatalf("expected 30%% progress, got %+v", record)
	}
	if record.IsUnlocked {
		t.Fatalf("achievement should stay locked at 3/10")
	}
	if profileRepo.profiles[1].TotalPoints != 0 {
		t.Fatalf("no points should be awarded, got %d", profileRepo.profiles[1].TotalPoints)
	}
}

func TestCheckAndUnlockProfileBasedRequirements(t *testing.T) {
	svc, _, _, profileRepo := newAchievementFixture(
		&model.Achievement{
			ID:               3,
			Name:             "Week Streak",
			RequirementType:  model.RequirementDailyStreak,
			RequirementValue: 7,
			Points:           150,
			IsActive:         true,
		},
		&model.Achievement{
			ID:               4,
			Name:             "Level 5",
			RequirementType:  model.RequirementLevelReached,
			RequirementValue: 5,
			Points:           250,
			IsActive:         true,
		},
	)
	profileRepo.profiles[1].StreakDays = 8
	profileRepo.profiles[1].Level = 3

	unlocked, err := svc.CheckAndUnlock(context.Background(), 1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(unlocked) != 1 || unlocked[0].ID != 3 {
		t.Fatalf("expected only the streak achievement, got %v", unlocked)
	}
}

func TestProgressPercentBounds(t *testing.T) {
	tests := []struct {
		current  int64
		required int
		want     int
	}{
		{current: 0, required: 10, want: 0},
		{current: 3, required: 10, want: 30},
		{current: 25, required: 10, want: 100},
		{current: 1, required: 0, want: 100},
	}
	for _, testCase := range tests {
		if got := progressPercent(testCase.current, testCase.required); got != testCase.want {
			t.Fatalf("progressPercent(%d, %d) = %d, want %d", testCase.current, testCase.required, got, testCase.want)
		}
	}
}
