package service

import (
	"Ecotrace/internal/api/dto"
	"Ecotrace/internal/model"
	"Ecotrace/internal/pkg/consts"
	"Ecotrace/internal/pkg/minio"
	"Ecotrace/internal/pkg/redis"
	"Ecotrace/internal/pkg/util"
	"Ecotrace/internal/repository"
	"context"
	log "log/slog"
	"sort"
	"strconv"
)

// LeaderboardSize 全局排行榜快照容量
const LeaderboardSize = 100

type LeaderboardService interface {
	GetGlobalLeaderboard(ctx context.Context, userID uint64, limit int) (*dto.LeaderboardDTO, error)
	GetFriendsLeaderboard(ctx context.Context, userID uint64) (*dto.LeaderboardDTO, error)
	RebuildGlobalSnapshot(ctx context.Context) error
}

type LeaderboardServiceImpl struct {
	profileRepo       repository.ProfileRepo
	userRepo          repository.UserRepo
	friendshipService FriendshipService
}

func NewLeaderboardService(
	profileRepo repository.ProfileRepo,
	userRepo repository.UserRepo,
	friendshipService FriendshipService,
) LeaderboardService {
	return &LeaderboardServiceImpl{
		profileRepo:       profileRepo,
		userRepo:          userRepo,
		friendshipService: friendshipService,
	}
}

// GetGlobalLeaderboard 读取 Redis 快照，缺失时回源重建，
// Redis 不可用时直接用数据库排序兜底
func (s *LeaderboardServiceImpl) GetGlobalLeaderboard(ctx context.Context, userID uint64, limit int) (*dto.LeaderboardDTO, error) {
	if limit <= 0 || limit > LeaderboardSize {
		limit = LeaderboardSize
	}

	key := consts.LeaderboardGlobalKey + consts.LeaderboardScopeGlobal

	res, err := redis.ZRevRangeWithScores(ctx, key, 0, int64(limit-1))
	if err != nil || len(res) == 0 {
		if err = s.RebuildGlobalSnapshot(ctx); err == nil {
			res, _ = redis.ZRevRangeWithScores(ctx, key, 0, int64(limit-1))
		} else {
			log.WarnContext(ctx, "排行榜快照重建失败，改用数据库排序", "err", err)
		}
	}

	userIds := make([]uint64, 0, len(res))
	points := make(map[uint64]int, len(res))
	for _, z := range res {
		member, ok := z.Member.(string)
		if !ok {
			continue
		}
		id, err := strconv.ParseUint(member, 10, 64)
		if err != nil {
			continue
		}
		userIds = append(userIds, id)
		points[id] = int(z.Score)
	}

	if len(userIds) == 0 {
		profiles, err := s.profileRepo.GetTopProfiles(ctx, limit)
		if err != nil {
			return nil, err
		}
		for _, profile := range profiles {
			userIds = append(userIds, profile.UserID)
			points[profile.UserID] = profile.TotalPoints
		}
	}

	entries, err := s.buildEntries(ctx, userIds, points)
	if err != nil {
		return nil, err
	}

	totalUsers, err := s.userRepo.CountUsers(ctx)
	if err != nil {
		return nil, err
	}

	leaderboard := &dto.LeaderboardDTO{
		Scope:      consts.LeaderboardScopeGlobal,
		TotalUsers: totalUsers,
		Entries:    entries,
	}
	s.fillMyRank(leaderboard, userID)
	return leaderboard, nil
}

// GetFriendsLeaderboard 好友榜实时计算，包含自己
func (s *LeaderboardServiceImpl) GetFriendsLeaderboard(ctx context.Context, userID uint64) (*dto.LeaderboardDTO, error) {
	friendIds, err := s.friendshipService.GetFriendIds(ctx, userID)
	if err != nil {
		return nil, err
	}
	memberIds := append(friendIds, userID)

	profiles, err := s.profileRepo.GetProfilesByUserIds(ctx, memberIds)
	if err != nil {
		return nil, err
	}

	userIds := make([]uint64, 0, len(profiles))
	points := make(map[uint64]int, len(profiles))
	for _, profile := range profiles {
		userIds = append(userIds, profile.UserID)
		points[profile.UserID] = profile.TotalPoints
	}

	entries, err := s.buildEntries(ctx, userIds, points)
	if err != nil {
		return nil, err
	}

	leaderboard := &dto.LeaderboardDTO{
		Scope:   consts.LeaderboardScopeFriends,
		Entries: entries,
	}
	s.fillMyRank(leaderboard, userID)
	return leaderboard, nil
}

// RebuildGlobalSnapshot 用临时键构建后原子切换，快照保留到次日零点
func (s *LeaderboardServiceImpl) RebuildGlobalSnapshot(ctx context.Context) error {
	profiles, err := s.profileRepo.GetTopProfiles(ctx, LeaderboardSize)
	if err != nil {
		return err
	}

	key := consts.LeaderboardGlobalKey + consts.LeaderboardScopeGlobal
	tmpKey := key + ":building"

	_ = redis.DeleteKey(ctx, tmpKey)
	for _, profile := range profiles {
		if err = redis.ZAdd(ctx, tmpKey, float64(profile.TotalPoints), strconv.FormatUint(profile.UserID, 10)); err != nil {
			return err
		}
	}

	if len(profiles) == 0 {
		return nil
	}

	if err = redis.Rename(ctx, tmpKey, key); err != nil {
		return err
	}
	if err = redis.ExpireAt(ctx, key, util.GetMidnight()); err != nil {
		log.Warn("设置排行榜快照过期时间失败", "err", err)
	}
	return nil
}

// buildEntries 产出带名次的条目，排序规则为积分、等级、累计减排量依次降序，
// 完全并列时 user_id 小者在前
func (s *LeaderboardServiceImpl) buildEntries(ctx context.Context, userIds []uint64, points map[uint64]int) ([]*dto.LeaderboardEntryDTO, error) {
	if len(userIds) == 0 {
		return []*dto.LeaderboardEntryDTO{}, nil
	}

	users, err := s.userRepo.GetUserByIds(ctx, userIds)
	if err != nil {
		return nil, err
	}
	userMap := make(map[uint64]*model.User, len(users))
	for _, user := range users {
		userMap[user.ID] = user
	}

	entries := make([]*dto.LeaderboardEntryDTO, 0, len(userIds))
	for _, id := range userIds {
		user, ok := userMap[id]
		if !ok || user.IsDelete {
			continue
		}
		entry := &dto.LeaderboardEntryDTO{
			UserID:        id,
			TotalPoints:   points[id],
			Level:         user.Profile.Level,
			TotalCO2Saved: user.Profile.TotalCO2Saved,
			AvatarURL:     minio.GetPublicURL(user.Profile.AvatarURL),
		}
		if user.Username != nil {
			entry.Username = *user.Username
		}
		entries = append(entries, entry)
	}

	sort.SliceStable(entries, func(i, j int) bool {
		if entries[i].TotalPoints != entries[j].TotalPoints {
			return entries[i].TotalPoints > entries[j].TotalPoints
		}
		if entries[i].Level != entries[j].Level {
			return entries[i].Level > entries[j].Level
		}
		if entries[i].TotalCO2Saved != entries[j].TotalCO2Saved {
			return entries[i].TotalCO2Saved > entries[j].TotalCO2Saved
		}
		return entries[i].UserID < entries[j].UserID
	})
	for i, entry := range entries {
		entry.Rank = i + 1
	}
	return entries, nil
}

func (s *LeaderboardServiceImpl) fillMyRank(leaderboard *dto.LeaderboardDTO, userID uint64) {
	for _, entry := range leaderboard.Entries {
		if entry.UserID == userID {
			leaderboard.MyRank = entry.Rank
			return
		}
	}
}
