package service

import (
	"Ecotrace/internal/model"
	"Ecotrace/internal/repository"
	"context"
	"sort"
	"time"
)

// 进程内仓储替身，行为对齐 MySQL 实现的语义，供各服务单测共用。

type fakeProfileRepo struct {
	profiles    map[uint64]*model.UserProfile
	streakCalls int
}

func newFakeProfileRepo() *fakeProfileRepo {
	return &fakeProfileRepo{profiles: make(map[uint64]*model.UserProfile)}
}

func (f *fakeProfileRepo) GetProfileByUserId(_ context.Context, userID uint64) (*model.UserProfile, error) {
	profile, ok := f.profiles[userID]
	if !ok {
		return nil, nil
	}
	clone := *profile
	return &clone, nil
}

func (f *fakeProfileRepo) GetProfilesByUserIds(_ context.Context, userIDs []uint64) ([]*model.UserProfile, error) {
	result := make([]*model.UserProfile, 0, len(userIDs))
	for _, id := range userIDs {
		if profile, ok := f.profiles[id]; ok {
			clone := *profile
			result = append(result, &clone)
		}
	}
	return result, nil
}

func (f *fakeProfileRepo) UpdateProfile(_ context.Context, userID uint64, fields map[string]interface{}) error {
	profile, ok := f.profiles[userID]
	if !ok {
		return nil
	}
	if v, ok := fields["bio"]; ok {
		bio := v.(string)
		profile.Bio = &bio
	}
	if v, ok := fields["daily_co2_goal"]; ok {
		profile.DailyCO2Goal = v.(float64)
	}
	if v, ok := fields["notifications_enabled"]; ok {
		profile.NotificationsEnabled = v.(bool)
	}
	if v, ok := fields["avatar_url"]; ok {
		profile.AvatarURL = v.(string)
	}
	return nil
}

func (f *fakeProfileRepo) AddPoints(_ context.Context, userID uint64, points int) error {
	profile, ok := f.profiles[userID]
	if !ok {
		return nil
	}
	profile.TotalPoints += points
	if level := profile.TotalPoints/1000 + 1; level > profile.Level {
		profile.Level = level
	}
	return nil
}

func (f *fakeProfileRepo) AddCO2Saved(_ context.Context, userID uint64, co2Saved float64) error {
	if profile, ok := f.profiles[userID]; ok {
		profile.TotalCO2Saved += co2Saved
	}
	return nil
}

func (f *fakeProfileRepo) UpdateStreak(_ context.Context, userID uint64, streakDays int, activityDate time.Time) error {
	f.streakCalls++
	if profile, ok := f.profiles[userID]; ok {
		profile.StreakDays = streakDays
		profile.LastActivityDate = &activityDate
	}
	return nil
}

func (f *fakeProfileRepo) ResetBrokenStreaks(_ context.Context, today time.Time) (int64, error) {
	yesterday := today.AddDate(0, 0, -1)
	var affected int64
	for _, profile := range f.profiles {
		if profile.StreakDays > 0 && (profile.LastActivityDate == nil || profile.LastActivityDate.Before(yesterday)) {
			profile.StreakDays = 0
			affected++
		}
	}
	return affected, nil
}

func (f *fakeProfileRepo) GetTopProfiles(_ context.Context, limit int) ([]*model.UserProfile, error) {
	result := make([]*model.UserProfile, 0, len(f.profiles))
	for _, profile := range f.profiles {
		clone := *profile
		result = append(result, &clone)
	}
	sort.SliceStable(result, func(i, j int) bool {
		if result[i].TotalPoints != result[j].TotalPoints {
			return result[i].TotalPoints > result[j].TotalPoints
		}
		return result[i].UserID < result[j].UserID
	})
	if len(result) > limit {
		result = result[:limit]
	}
	return result, nil
}

type fakeUserRepo struct {
	users map[uint64]*model.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: make(map[uint64]*model.User)}
}

func (f *fakeUserRepo) GetUserById(_ context.Context, id uint64) (*model.User, error) {
	user, ok := f.users[id]
	if !ok {
		return nil, nil
	}
	return user, nil
}

func (f *fakeUserRepo) GetUserByIds(_ context.Context, ids []uint64) ([]*model.User, error) {
	result := make([]*model.User, 0, len(ids))
	for _, id := range ids {
		if user, ok := f.users[id]; ok {
			result = append(result, user)
		}
	}
	return result, nil
}

func (f *fakeUserRepo) GetUserByUsername(_ context.Context, username string) (*model.User, error) {
	for _, user := range f.users {
		if user.Username != nil && *user.Username == username {
			return user, nil
		}
	}
	return nil, nil
}

func (f *fakeUserRepo) GetUserByEmail(_ context.Context, email string) (*model.User, error) {
	for _, user := range f.users {
		if user.Email != nil && *user.Email == email {
			return user, nil
		}
	}
	return nil, nil
}

func (f *fakeUserRepo) SearchUsersByUsername(_ context.Context, keyword string, limit, offset int) ([]*model.User, error) {
	return nil, nil
}

func (f *fakeUserRepo) CountUsers(_ context.Context) (int64, error) {
	var count int64
	for _, user := range f.users {
		if !user.IsDelete {
			count++
		}
	}
	return count, nil
}

func (f *fakeUserRepo) CreateUser(_ context.Context, user *model.User, profile *model.UserProfile) error {
	user.ID = uint64(len(f.users) + 1)
	profile.UserID = user.ID
	user.Profile = *profile
	f.users[user.ID] = user
	return nil
}

func (f *fakeUserRepo) UpdateUser(_ context.Context, user *model.User) error {
	f.users[user.ID] = user
	return nil
}

func (f *fakeUserRepo) DeleteUser(_ context.Context, id uint64) error {
	if user, ok := f.users[id]; ok {
		user.IsDelete = true
	}
	return nil
}

type fakeMealRepo struct {
	meals  []*model.Meal
	nextID uint64
}

func newFakeMealRepo() *fakeMealRepo {
	return &fakeMealRepo{nextID: 1}
}

func (f *fakeMealRepo) GetMealById(_ context.Context, id uint64) (*model.Meal, error) {
	for _, meal := range f.meals {
		if meal.ID == id && meal.IsActive {
			return meal, nil
		}
	}
	return nil, nil
}

func (f *fakeMealRepo) GetMealsByUserId(_ context.Context, userID uint64, limit, offset int) ([]*model.Meal, error) {
	result := make([]*model.Meal, 0)
	for _, meal := range f.meals {
		if meal.UserID == userID && meal.IsActive {
			result = append(result, meal)
		}
	}
	return result, nil
}

func (f *fakeMealRepo) GetMealsByDateRange(_ context.Context, userID uint64, start, end time.Time) ([]*model.Meal, error) {
	result := make([]*model.Meal, 0)
	for _, meal := range f.meals {
		if meal.UserID == userID && meal.IsActive && !meal.MealDate.Before(start) && !meal.MealDate.After(end) {
			result = append(result, meal)
		}
	}
	return result, nil
}

func (f *fakeMealRepo) CreateMeal(_ context.Context, meal *model.Meal) error {
	meal.ID = f.nextID
	f.nextID++
	f.meals = append(f.meals, meal)
	return nil
}

// UpdateMeal 与真实仓储一致，只写入固定的可变列（含零值）
func (f *fakeMealRepo) UpdateMeal(_ context.Context, meal *model.Meal) error {
	for _, existing := range f.meals {
		if existing.ID == meal.ID {
			existing.MealType = meal.MealType
			existing.Description = meal.Description
			existing.Ingredients = meal.Ingredients
			existing.TotalCO2 = meal.TotalCO2
			existing.IsVegetarian = meal.IsVegetarian
			existing.IsVegan = meal.IsVegan
		}
	}
	return nil
}

func (f *fakeMealRepo) DeleteMeal(_ context.Context, id uint64) error {
	for _, meal := range f.meals {
		if meal.ID == id {
			meal.IsActive = false
		}
	}
	return nil
}

func (f *fakeMealRepo) CountByUserId(_ context.Context, userID uint64) (int64, error) {
	var count int64
	for _, meal := range f.meals {
		if meal.UserID == userID && meal.IsActive {
			count++
		}
	}
	return count, nil
}

func (f *fakeMealRepo) CountVeganByUserId(_ context.Context, userID uint64) (int64, error) {
	var count int64
	for _, meal := range f.meals {
		if meal.UserID == userID && meal.IsActive && meal.IsVegan {
			count++
		}
	}
	return count, nil
}

func (f *fakeMealRepo) CountVegetarianByUserId(_ context.Context, userID uint64) (int64, error) {
	var count int64
	for _, meal := range f.meals {
		if meal.UserID == userID && meal.IsActive && meal.IsVegetarian {
			count++
		}
	}
	return count, nil
}

func (f *fakeMealRepo) SumCO2InRange(_ context.Context, userID uint64, start, end time.Time) (float64, error) {
	var total float64
	for _, meal := range f.meals {
		if meal.UserID == userID && meal.IsActive && !meal.MealDate.Before(start) && !meal.MealDate.After(end) {
			total += meal.TotalCO2
		}
	}
	return total, nil
}

func (f *fakeMealRepo) SumCO2ByUserId(_ context.Context, userID uint64) (float64, error) {
	var total float64
	for _, meal := range f.meals {
		if meal.UserID == userID && meal.IsActive {
			total += meal.TotalCO2
		}
	}
	return total, nil
}

func (f *fakeMealRepo) CountByMealType(ctx context.Context, userID uint64, start, end time.Time) ([]repository.TypeCount, error) {
	grouped := make(map[string]*repository.TypeCount)
	order := make([]string, 0)
	meals, _ := f.GetMealsByDateRange(ctx, userID, start, end)
	for _, meal := range meals {
		row, ok := grouped[meal.MealType]
		if !ok {
			row = &repository.TypeCount{Type: meal.MealType}
			grouped[meal.MealType] = row
			order = append(order, meal.MealType)
		}
		row.Count++
		row.CO2 += meal.TotalCO2
	}
	result := make([]repository.TypeCount, 0, len(order))
	for _, t := range order {
		result = append(result, *grouped[t])
	}
	return result, nil
}

type fakeTransportRepo struct {
	transports []*model.Transport
	nextID     uint64
}

func newFakeTransportRepo() *fakeTransportRepo {
	return &fakeTransportRepo{nextID: 1}
}

func (f *fakeTransportRepo) GetTransportById(_ context.Context, id uint64) (*model.Transport, error) {
	for _, transport := range f.transports {
		if transport.ID == id && transport.IsActive {
			return transport, nil
		}
	}
	return nil, nil
}

func (f *fakeTransportRepo) GetTransportsByUserId(_ context.Context, userID uint64, limit, offset int) ([]*model.Transport, error) {
	result := make([]*model.Transport, 0)
	for _, transport := range f.transports {
		if transport.UserID == userID && transport.IsActive {
			result = append(result, transport)
		}
	}
	return result, nil
}

func (f *fakeTransportRepo) GetTransportsByDateRange(_ context.Context, userID uint64, start, end time.Time) ([]*model.Transport, error) {
	result := make([]*model.Transport, 0)
	for _, transport := range f.transports {
		if transport.UserID == userID && transport.IsActive && !transport.TripDate.Before(start) && !transport.TripDate.After(end) {
			result = append(result, transport)
		}
	}
	return result, nil
}

func (f *fakeTransportRepo) CreateTransport(_ context.Context, transport *model.Transport) error {
	transport.ID = f.nextID
	f.nextID++
	f.transports = append(f.transports, transport)
	return nil
}

// UpdateTransport 与真实仓储一致，只写入固定的可变列（含零值）
func (f *fakeTransportRepo) UpdateTransport(_ context.Context, transport *model.Transport) error {
	for _, existing := range f.transports {
		if existing.ID == transport.ID {
			existing.TransportType = transport.TransportType
			existing.DistanceKm = transport.DistanceKm
			existing.Origin = transport.Origin
			existing.Destination = transport.Destination
			existing.TotalCO2 = transport.TotalCO2
		}
	}
	return nil
}

func (f *fakeTransportRepo) DeleteTransport(_ context.Context, id uint64) error {
	for _, transport := range f.transports {
		if transport.ID == id {
			transport.IsActive = false
		}
	}
	return nil
}

func (f *fakeTransportRepo) CountByUserId(_ context.Context, userID uint64) (int64, error) {
	var count int64
	for _, transport := range f.transports {
		if transport.UserID == userID && transport.IsActive {
			count++
		}
	}
	return count, nil
}

func (f *fakeTransportRepo) CountEcoByUserId(_ context.Context, userID uint64, ecoTypes []string) (int64, error) {
	ecoSet := make(map[string]struct{}, len(ecoTypes))
	for _, t := range ecoTypes {
		ecoSet[t] = struct{}{}
	}
	var count int64
	for _, transport := range f.transports {
		if transport.UserID != userID || !transport.IsActive {
			continue
		}
		if _, ok := ecoSet[transport.TransportType]; ok {
			count++
		}
	}
	return count, nil
}

func (f *fakeTransportRepo) SumCO2InRange(_ context.Context, userID uint64, start, end time.Time) (float64, error) {
	var total float64
	for _, transport := range f.transports {
		if transport.UserID == userID && transport.IsActive && !transport.TripDate.Before(start) && !transport.TripDate.After(end) {
			total += transport.TotalCO2
		}
	}
	return total, nil
}

func (f *fakeTransportRepo) SumCO2ByUserId(_ context.Context, userID uint64) (float64, error) {
	var total float64
	for _, transport := range f.transports {
		if transport.UserID == userID && transport.IsActive {
			total += transport.TotalCO2
		}
	}
	return total, nil
}

func (f *fakeTransportRepo) SumDistanceByUserId(_ context.Context, userID uint64) (float64, error) {
	var total float64
	for _, transport := range f.transports {
		if transport.UserID == userID && transport.IsActive {
			total += transport.DistanceKm
		}
	}
	return total, nil
}

func (f *fakeTransportRepo) CountByTransportType(ctx context.Context, userID uint64, start, end time.Time) ([]repository.TypeCount, error) {
	grouped := make(map[string]*repository.TypeCount)
	order := make([]string, 0)
	transports, _ := f.GetTransportsByDateRange(ctx, userID, start, end)
	for _, transport := range transports {
		row, ok := grouped[transport.TransportType]
		if !ok {
			row = &repository.TypeCount{Type: transport.TransportType}
			grouped[transport.TransportType] = row
			order = append(order, transport.TransportType)
		}
		row.Count++
		row.CO2 += transport.TotalCO2
	}
	result := make([]repository.TypeCount, 0, len(order))
	for _, t := range order {
		result = append(result, *grouped[t])
	}
	return result, nil
}

type fakeAchievementRepo struct {
	achievements []*model.Achievement
	records      map[[2]uint64]*model.UserAchievement
}

func newFakeAchievementRepo(achievements ...*model.Achievement) *fakeAchievementRepo {
	return &fakeAchievementRepo{
		achievements: achievements,
		records:      make(map[[2]uint64]*model.UserAchievement),
	}
}

func (f *fakeAchievementRepo) GetActiveAchievements(_ context.Context) ([]*model.Achievement, error) {
	result := make([]*model.Achievement, 0, len(f.achievements))
	for _, achievement := range f.achievements {
		if achievement.IsActive {
			result = append(result, achievement)
		}
	}
	return result, nil
}

func (f *fakeAchievementRepo) GetUserAchievements(_ context.Context, userID uint64) ([]*model.UserAchievement, error) {
	result := make([]*model.UserAchievement, 0)
	for _, record := range f.records {
		if record.UserID == userID {
			result = append(result, record)
		}
	}
	return result, nil
}

func (f *fakeAchievementRepo) GetUserAchievement(_ context.Context, userID, achievementID uint64) (*model.UserAchievement, error) {
	record, ok := f.records[[2]uint64{userID, achievementID}]
	if !ok {
		return nil, nil
	}
	return record, nil
}

func (f *fakeAchievementRepo) UpsertUserAchievement(_ context.Context, ua *model.UserAchievement) error {
	key := [2]uint64{ua.UserID, ua.AchievementID}
	if _, ok := f.records[key]; !ok {
		f.records[key] = ua
	}
	return nil
}

func (f *fakeAchievementRepo) UpdateProgress(_ context.Context, userID, achievementID uint64, progress int) error {
	if record, ok := f.records[[2]uint64{userID, achievementID}]; ok && !record.IsUnlocked {
		record.Progress = progress
	}
	return nil
}

func (f *fakeAchievementRepo) Unlock(_ context.Context, userID, achievementID uint64, at time.Time) (int64, error) {
	record, ok := f.records[[2]uint64{userID, achievementID}]
	if !ok || record.IsUnlocked {
		return 0, nil
	}
	record.IsUnlocked = true
	record.Progress = 100
	record.UnlockedAt = &at
	return 1, nil
}

func (f *fakeAchievementRepo) CountUnlockedByUserId(_ context.Context, userID uint64) (int64, error) {
	var count int64
	for _, record := range f.records {
		if record.UserID == userID && record.IsUnlocked {
			count++
		}
	}
	return count, nil
}

type fakeFriendshipRepo struct {
	friendships []*model.Friendship
	nextID      uint64
}

func newFakeFriendshipRepo() *fakeFriendshipRepo {
	return &fakeFriendshipRepo{nextID: 1}
}

func (f *fakeFriendshipRepo) GetFriendshipBetween(_ context.Context, userA, userB uint64) (*model.Friendship, error) {
	for _, friendship := range f.friendships {
		if (friendship.FromUserID == userA && friendship.ToUserID == userB) ||
			(friendship.FromUserID == userB && friendship.ToUserID == userA) {
			return friendship, nil
		}
	}
	return nil, nil
}

func (f *fakeFriendshipRepo) GetFriendshipById(_ context.Context, id uint64) (*model.Friendship, error) {
	for _, friendship := range f.friendships {
		if friendship.ID == id {
			return friendship, nil
		}
	}
	return nil, nil
}

func (f *fakeFriendshipRepo) GetPendingRequests(_ context.Context, toUserID uint64, limit, offset int) ([]*model.Friendship, error) {
	result := make([]*model.Friendship, 0)
	for _, friendship := range f.friendships {
		if friendship.ToUserID == toUserID && friendship.Status == model.FriendshipPending {
			result = append(result, friendship)
		}
	}
	return result, nil
}

func (f *fakeFriendshipRepo) GetSentRequests(_ context.Context, fromUserID uint64, limit, offset int) ([]*model.Friendship, error) {
	result := make([]*model.Friendship, 0)
	for _, friendship := range f.friendships {
		if friendship.FromUserID == fromUserID && friendship.Status == model.FriendshipPending {
			result = append(result, friendship)
		}
	}
	return result, nil
}

func (f *fakeFriendshipRepo) GetAcceptedFriendships(_ context.Context, userID uint64) ([]*model.Friendship, error) {
	result := make([]*model.Friendship, 0)
	for _, friendship := range f.friendships {
		if friendship.Status != model.FriendshipAccepted {
			continue
		}
		if friendship.FromUserID == userID || friendship.ToUserID == userID {
			result = append(result, friendship)
		}
	}
	return result, nil
}

func (f *fakeFriendshipRepo) CreateFriendship(_ context.Context, friendship *model.Friendship) error {
	friendship.ID = f.nextID
	f.nextID++
	f.friendships = append(f.friendships, friendship)
	return nil
}

// UpdateFriendship 与真实仓储一致，方向列随状态一起写入
func (f *fakeFriendshipRepo) UpdateFriendship(_ context.Context, friendship *model.Friendship) error {
	for _, existing := range f.friendships {
		if existing.ID == friendship.ID {
			existing.FromUserID = friendship.FromUserID
			existing.ToUserID = friendship.ToUserID
			existing.Status = friendship.Status
			existing.AcceptedAt = friendship.AcceptedAt
		}
	}
	return nil
}

func (f *fakeFriendshipRepo) DeleteFriendship(_ context.Context, id uint64) error {
	remaining := f.friendships[:0]
	for _, friendship := range f.friendships {
		if friendship.ID != id {
			remaining = append(remaining, friendship)
		}
	}
	f.friendships = remaining
	return nil
}

func (f *fakeFriendshipRepo) CountFriends(_ context.Context, userID uint64) (int64, error) {
	accepted, _ := f.GetAcceptedFriendships(context.Background(), userID)
	return int64(len(accepted)), nil
}

func (f *fakeFriendshipRepo) CountPendingRequests(_ context.Context, toUserID uint64) (int64, error) {
	pending, _ := f.GetPendingRequests(context.Background(), toUserID, 0, 0)
	return int64(len(pending)), nil
}

type fakeEcoTipRepo struct {
	tips []*model.EcoTip
}

func (f *fakeEcoTipRepo) GetActiveTips(_ context.Context, category string) ([]*model.EcoTip, error) {
	result := make([]*model.EcoTip, 0)
	for _, tip := range f.tips {
		if tip.IsActive && (category == "" || tip.Category == category) {
			result = append(result, tip)
		}
	}
	return result, nil
}

func (f *fakeEcoTipRepo) GetRandomTips(_ context.Context, limit int) ([]*model.EcoTip, error) {
	if len(f.tips) > limit {
		return f.tips[:limit], nil
	}
	return f.tips, nil
}
