package service

import (
	"Ecotrace/internal/model"
	"context"
	"testing"
)

func newFriendshipFixture() (FriendshipService, *fakeFriendshipRepo, *fakeUserRepo) {
	friendshipRepo := newFakeFriendshipRepo()
	userRepo := newFakeUserRepo()
	for id := uint64(1); id <= 3; id++ {
		name := "user" + string(rune('0'+id))
		userRepo.users[id] = &model.User{
			ID:       id,
			Username: &name,
			Profile:  model.UserProfile{UserID: id, Level: 1},
		}
	}
	achievementSvc := NewAchievementService(
		newFakeAchievementRepo(), newFakeMealRepo(), newFakeTransportRepo(), friendshipRepo, newFakeProfileRepo())
	return NewFriendshipService(friendshipRepo, userRepo, achievementSvc), friendshipRepo, userRepo
}

func TestAcceptRequestChecksAchievementsForBothSides(t *testing.T) {
	friendshipRepo := newFakeFriendshipRepo()
	userRepo := newFakeUserRepo()
	achievementRepo := newFakeAchievementRepo(&model.Achievement{
		ID:               1,
		Name:             "Social Butterfly",
		RequirementType:  model.RequirementFriendCount,
		RequirementValue: 1,
		Points:           50,
		IsActive:         true,
	})
	profileRepo := newFakeProfileRepo()
	for id := uint64(1); id <= 2; id++ {
		name := "user" + string(rune('0'+id))
		userRepo.users[id] = &model.User{ID: id, Username: &name, Profile: model.UserProfile{UserID: id, Level: 1}}
		profileRepo.profiles[id] = &model.UserProfile{UserID: id, Level: 1}
	}
	achievementSvc := NewAchievementService(
		achievementRepo, newFakeMealRepo(), newFakeTransportRepo(), friendshipRepo, profileRepo)
	svc := NewFriendshipService(friendshipRepo, userRepo, achievementSvc)

	request, err := svc.SendRequest(context.Background(), 1, 2)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err = svc.AcceptRequest(context.Background(), 2, request.ID); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	for _, id := range []uint64{1, 2} {
		record, _ := achievementRepo.GetUserAchievement(context.Background(), id, 1)
		if record == nil || !record.IsUnlocked {
			t.Fatalf("user %d should have unlocked the friend achievement: %+v", id, record)
		}
		if profileRepo.profiles[id].TotalPoints != 50 {
			t.Fatalf("user %d should have 50 bonus points, got %d", id, profileRepo.profiles[id].TotalPoints)
		}
	}
}

func TestSendRequestRejectsSelfAndUnknown(t *testing.T) {
	svc, _, userRepo := newFriendshipFixture()

	if _, err := svc.SendRequest(context.Background(), 1, 1); err != ErrFriendSelf {
		t.Fatalf("expected ErrFriendSelf, got %v", err)
	}
	if _, err := svc.SendRequest(context.Background(), 1, 99); err != ErrUserNotFound {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}

	userRepo.users[2].IsDelete = true
	if _, err := svc.SendRequest(context.Background(), 1, 2); err != ErrUserNotFound {
		t.Fatalf("expected ErrUserNotFound for cancelled user, got %v", err)
	}
}

func TestSendRequestDuplicates(t *testing.T) {
	svc, friendshipRepo, _ := newFriendshipFixture()

	request, err := svc.SendRequest(context.Background(), 1, 2)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if request.Status != model.FriendshipPending {
		t.Fatalf("new request should be pending, got %q", request.Status)
	}

	if _, err = svc.SendRequest(context.Background(), 1, 2); err != ErrFriendRequestExist {
		t.Fatalf("expected ErrFriendRequestExist, got %v", err)
	}
	// 反向发送同样算重复
	if _, err = svc.SendRequest(context.Background(), 2, 1); err != ErrFriendRequestExist {
		t.Fatalf("expected ErrFriendRequestExist for reverse direction, got %v", err)
	}

	if err = svc.AcceptRequest(context.Background(), 2, request.ID); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err = svc.SendRequest(context.Background(), 1, 2); err != ErrFriendExist {
		t.Fatalf("expected ErrFriendExist after acceptance, got %v", err)
	}

	if len(friendshipRepo.friendships) != 1 {
		t.Fatalf("expected a single friendship row, got %d", len(friendshipRepo.friendships))
	}
}

func TestSendRequestReusesRejectedRow(t *testing.T) {
	svc, friendshipRepo, _ := newFriendshipFixture()

	request, err := svc.SendRequest(context.Background(), 1, 2)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err = svc.RejectRequest(context.Background(), 2, request.ID); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// 被拒的一方换成对方重新发起，复用同一行并反转方向
	renewed, err := svc.SendRequest(context.Background(), 2, 1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if renewed.ID != request.ID {
		t.Fatalf("expected reused row %d, got %d", request.ID, renewed.ID)
	}
	if renewed.FromUserID != 2 || renewed.ToUserID != 1 {
		t.Fatalf("direction should follow the new requester, got %d -> %d", renewed.FromUserID, renewed.ToUserID)
	}
	if renewed.Status != model.FriendshipPending || renewed.AcceptedAt != nil {
		t.Fatalf("renewed request should be a clean pending row: %+v", renewed)
	}
	if len(friendshipRepo.friendships) != 1 {
		t.Fatalf("expected a single friendship row, got %d", len(friendshipRepo.friendships))
	}
}

func TestRenewedRequestReachesNewRecipient(t *testing.T) {
	svc, friendshipRepo, _ := newFriendshipFixture()

	request, err := svc.SendRequest(context.Background(), 1, 2)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err = svc.RejectRequest(context.Background(), 2, request.ID); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	renewed, err := svc.SendRequest(context.Background(), 2, 1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// 方向必须落库，否则新请求会留在发起者自己的收件箱里
	stored := friendshipRepo.friendships[0]
	if stored.FromUserID != 2 || stored.ToUserID != 1 {
		t.Fatalf("stored direction should be 2 -> 1, got %d -> %d", stored.FromUserID, stored.ToUserID)
	}

	inbox, err := svc.GetPendingRequests(context.Background(), 1, 10, 0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(inbox) != 1 || inbox[0].ID != renewed.ID {
		t.Fatalf("renewed request should land in user 1's inbox, got %d requests", len(inbox))
	}

	if err = svc.AcceptRequest(context.Background(), 2, renewed.ID); err != ErrNotRequestRecipient {
		t.Fatalf("new sender must not accept own request, got %v", err)
	}
	if err = svc.AcceptRequest(context.Background(), 1, renewed.ID); err != nil {
		t.Fatalf("new recipient should be able to accept: %v", err)
	}
}

func TestAcceptRequestOnlyByRecipient(t *testing.T) {
	svc, _, _ := newFriendshipFixture()

	request, err := svc.SendRequest(context.Background(), 1, 2)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if err = svc.AcceptRequest(context.Background(), 1, request.ID); err != ErrNotRequestRecipient {
		t.Fatalf("sender must not accept own request, got %v", err)
	}
	if err = svc.AcceptRequest(context.Background(), 2, 999); err != ErrFriendRequestNotFound {
		t.Fatalf("expected ErrFriendRequestNotFound, got %v", err)
	}

	if err = svc.AcceptRequest(context.Background(), 2, request.ID); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// 已处理的请求不能再次接受
	if err = svc.AcceptRequest(context.Background(), 2, request.ID); err != ErrFriendRequestNotFound {
		t.Fatalf("expected ErrFriendRequestNotFound for settled request, got %v", err)
	}

	count, err := svc.GetFriendCount(context.Background(), 2)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if count != 1 {
		t.Fatalf("expected 1 friend, got %d", count)
	}
}

func TestRemoveFriend(t *testing.T) {
	svc, _, _ := newFriendshipFixture()

	request, err := svc.SendRequest(context.Background(), 1, 2)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// 未接受前不能删除好友
	if err = svc.RemoveFriend(context.Background(), 1, 2); err != ErrFriendshipNotFound {
		t.Fatalf("expected ErrFriendshipNotFound, got %v", err)
	}

	if err = svc.AcceptRequest(context.Background(), 2, request.ID); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	// 任意一方都可以删除
	if err = svc.RemoveFriend(context.Background(), 2, 1); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	ids, err := svc.GetFriendIds(context.Background(), 1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(ids) != 0 {
		t.Fatalf("expected no friends left, got %v", ids)
	}
}

func TestGetFriendIdsBothDirections(t *testing.T) {
	svc, _, _ := newFriendshipFixture()

	first, _ := svc.SendRequest(context.Background(), 1, 2)
	second, _ := svc.SendRequest(context.Background(), 3, 2)
	if err := svc.AcceptRequest(context.Background(), 2, first.ID); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := svc.AcceptRequest(context.Background(), 2, second.ID); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	ids, err := svc.GetFriendIds(context.Background(), 2)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(ids) != 2 {
		t.Fatalf("expected friends on both directions, got %v", ids)
	}
}
