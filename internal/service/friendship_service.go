package service

import (
	"Ecotrace/internal/api/dto"
	"Ecotrace/internal/model"
	"Ecotrace/internal/pkg/consts"
	"Ecotrace/internal/pkg/minio"
	"Ecotrace/internal/pkg/redis"
	"Ecotrace/internal/repository"
	"context"
	log "log/slog"
	"strconv"
	"time"
)

type FriendshipService interface {
	SendRequest(ctx context.Context, fromUserID, toUserID uint64) (*dto.FriendshipDTO, error)
	AcceptRequest(ctx context.Context, userID, friendshipID uint64) error
	RejectRequest(ctx context.Context, userID, friendshipID uint64) error
	RemoveFriend(ctx context.Context, userID, friendUserID uint64) error
	GetFriends(ctx context.Context, userID uint64) ([]*dto.FriendDTO, error)
	GetPendingRequests(ctx context.Context, userID uint64, limit, offset int) ([]*dto.FriendshipDTO, error)
	GetSentRequests(ctx context.Context, userID uint64, limit, offset int) ([]*dto.FriendshipDTO, error)
	GetFriendCount(ctx context.Context, userID uint64) (int64, error)
	GetPendingCount(ctx context.Context, userID uint64) (int64, error)
	GetFriendIds(ctx context.Context, userID uint64) ([]uint64, error)
}

type FriendshipServiceImpl struct {
	friendshipRepo     repository.FriendshipRepo
	userRepo           repository.UserRepo
	achievementService AchievementService
}

func NewFriendshipService(
	friendshipRepo repository.FriendshipRepo,
	userRepo repository.UserRepo,
	achievementService AchievementService,
) FriendshipService {
	return &FriendshipServiceImpl{
		friendshipRepo:     friendshipRepo,
		userRepo:           userRepo,
		achievementService: achievementService,
	}
}

func (s *FriendshipServiceImpl) SendRequest(ctx context.Context, fromUserID, toUserID uint64) (*dto.FriendshipDTO, error) {
	if fromUserID == toUserID {
		return nil, ErrFriendSelf
	}

	target, err := s.userRepo.GetUserById(ctx, toUserID)
	if err != nil {
		return nil, err
	}
	if target == nil || target.IsDelete {
		return nil, ErrUserNotFound
	}

	existing, err := s.friendshipRepo.GetFriendshipBetween(ctx, fromUserID, toUserID)
	if err != nil {
		return nil, err
	}

	if existing != nil {
		switch existing.Status {
		case model.FriendshipAccepted:
			return nil, ErrFriendExist
		case model.FriendshipPending:
			return nil, ErrFriendRequestExist
		case model.FriendshipRejected:
			// 被拒绝后允许重新发起，复用原纪录并重置方向
			existing.FromUserID = fromUserID
			existing.ToUserID = toUserID
			existing.Status = model.FriendshipPending
			existing.AcceptedAt = nil
			if err = s.friendshipRepo.UpdateFriendship(ctx, existing); err != nil {
				return nil, err
			}
			return s.toFriendshipDTO(existing), nil
		}
	}

	friendship := &model.Friendship{
		FromUserID: fromUserID,
		ToUserID:   toUserID,
		Status:     model.FriendshipPending,
	}
	if err = s.friendshipRepo.CreateFriendship(ctx, friendship); err != nil {
		return nil, err
	}

	_ = redis.DeleteKey(ctx, consts.UserPendingCountKey+strconv.FormatUint(toUserID, 10))
	return s.toFriendshipDTO(friendship), nil
}

func (s *FriendshipServiceImpl) AcceptRequest(ctx context.Context, userID, friendshipID uint64) error {
	friendship, err := s.loadPendingForRecipient(ctx, userID, friendshipID)
	if err != nil {
		return err
	}

	now := time.Now()
	friendship.Status = model.FriendshipAccepted
	friendship.AcceptedAt = &now
	if err = s.friendshipRepo.UpdateFriendship(ctx, friendship); err != nil {
		return err
	}

	s.invalidateCounts(ctx, friendship.FromUserID, friendship.ToUserID)

	// 好友数相关成就对双方重新评估，失败不影响本次操作
	for _, id := range []uint64{friendship.FromUserID, friendship.ToUserID} {
		if _, err = s.achievementService.CheckAndUnlock(ctx, id); err != nil {
			log.WarnContext(ctx, "好友成就检查失败", "userId", id, "err", err)
		}
	}
	return nil
}

func (s *FriendshipServiceImpl) RejectRequest(ctx context.Context, userID, friendshipID uint64) error {
	friendship, err := s.loadPendingForRecipient(ctx, userID, friendshipID)
	if err != nil {
		return err
	}

	friendship.Status = model.FriendshipRejected
	if err = s.friendshipRepo.UpdateFriendship(ctx, friendship); err != nil {
		return err
	}

	_ = redis.DeleteKey(ctx, consts.UserPendingCountKey+strconv.FormatUint(userID, 10))
	return nil
}

func (s *FriendshipServiceImpl) RemoveFriend(ctx context.Context, userID, friendUserID uint64) error {
	friendship, err := s.friendshipRepo.GetFriendshipBetween(ctx, userID, friendUserID)
	if err != nil {
		return err
	}
	if friendship == nil || friendship.Status != model.FriendshipAccepted {
		return ErrFriendshipNotFound
	}

	if err = s.friendshipRepo.DeleteFriendship(ctx, friendship.ID); err != nil {
		return err
	}

	s.invalidateCounts(ctx, friendship.FromUserID, friendship.ToUserID)
	return nil
}

func (s *FriendshipServiceImpl) GetFriends(ctx context.Context, userID uint64) ([]*dto.FriendDTO, error) {
	friendIds, err := s.GetFriendIds(ctx, userID)
	if err != nil {
		return nil, err
	}
	if len(friendIds) == 0 {
		return []*dto.FriendDTO{}, nil
	}

	users, err := s.userRepo.GetUserByIds(ctx, friendIds)
	if err != nil {
		return nil, err
	}

	friends := make([]*dto.FriendDTO, 0, len(users))
	for _, user := range users {
		if user.IsDelete {
			continue
		}
		friendDTO := &dto.FriendDTO{
			UserID:        user.ID,
			AvatarURL:     minio.GetPublicURL(user.Profile.AvatarURL),
			TotalPoints:   user.Profile.TotalPoints,
			Level:         user.Profile.Level,
			TotalCO2Saved: user.Profile.TotalCO2Saved,
			StreakDays:    user.Profile.StreakDays,
		}
		if user.Username != nil {
			friendDTO.Username = *user.Username
		}
		friends = append(friends, friendDTO)
	}
	return friends, nil
}

func (s *FriendshipServiceImpl) GetPendingRequests(ctx context.Context, userID uint64, limit, offset int) ([]*dto.FriendshipDTO, error) {
	friendships, err := s.friendshipRepo.GetPendingRequests(ctx, userID, limit, offset)
	if err != nil {
		return nil, err
	}
	return s.toFriendshipDTOs(friendships), nil
}

func (s *FriendshipServiceImpl) GetSentRequests(ctx context.Context, userID uint64, limit, offset int) ([]*dto.FriendshipDTO, error) {
	friendships, err := s.friendshipRepo.GetSentRequests(ctx, userID, limit, offset)
	if err != nil {
		return nil, err
	}
	return s.toFriendshipDTOs(friendships), nil
}

// GetFriendCount 好友数量，带一小时的 Redis 计数缓存
func (s *FriendshipServiceImpl) GetFriendCount(ctx context.Context, userID uint64) (int64, error) {
	key := consts.UserFriendCountKey + strconv.FormatUint(userID, 10)

	valStr, err := redis.GetValue(ctx, key)
	if err == nil && valStr != "" {
		return strconv.ParseInt(valStr, 10, 64)
	}

	count, err := s.friendshipRepo.CountFriends(ctx, userID)
	if err != nil {
		return 0, err
	}

	_ = redis.SetWithExpiration(ctx, key, count, time.Hour*1)
	return count, nil
}

// GetPendingCount 待处理的好友请求数量，缓存策略同好友数
func (s *FriendshipServiceImpl) GetPendingCount(ctx context.Context, userID uint64) (int64, error) {
	key := consts.UserPendingCountKey + strconv.FormatUint(userID, 10)

	valStr, err := redis.GetValue(ctx, key)
	if err == nil && valStr != "" {
		return strconv.ParseInt(valStr, 10, 64)
	}

	count, err := s.friendshipRepo.CountPendingRequests(ctx, userID)
	if err != nil {
		return 0, err
	}

	_ = redis.SetWithExpiration(ctx, key, count, time.Hour*1)
	return count, nil
}

func (s *FriendshipServiceImpl) GetFriendIds(ctx context.Context, userID uint64) ([]uint64, error) {
	friendships, err := s.friendshipRepo.GetAcceptedFriendships(ctx, userID)
	if err != nil {
		return nil, err
	}
	friendIds := make([]uint64, 0, len(friendships))
	for _, friendship := range friendships {
		if friendship.FromUserID == userID {
			friendIds = append(friendIds, friendship.ToUserID)
		} else {
			friendIds = append(friendIds, friendship.FromUserID)
		}
	}
	return friendIds, nil
}

func (s *FriendshipServiceImpl) loadPendingForRecipient(ctx context.Context, userID, friendshipID uint64) (*model.Friendship, error) {
	friendship, err := s.friendshipRepo.GetFriendshipById(ctx, friendshipID)
	if err != nil {
		return nil, err
	}
	if friendship == nil || friendship.Status != model.FriendshipPending {
		return nil, ErrFriendRequestNotFound
	}
	if friendship.ToUserID != userID {
		return nil, ErrNotRequestRecipient
	}
	return friendship, nil
}

func (s *FriendshipServiceImpl) invalidateCounts(ctx context.Context, userA, userB uint64) {
	_ = redis.DeleteKey(ctx, consts.UserFriendCountKey+strconv.FormatUint(userA, 10))
	_ = redis.DeleteKey(ctx, consts.UserFriendCountKey+strconv.FormatUint(userB, 10))
	_ = redis.DeleteKey(ctx, consts.UserPendingCountKey+strconv.FormatUint(userB, 10))
}

func (s *FriendshipServiceImpl) toFriendshipDTO(friendship *model.Friendship) *dto.FriendshipDTO {
	return &dto.FriendshipDTO{
		ID:         friendship.ID,
		FromUserID: friendship.FromUserID,
		ToUserID:   friendship.ToUserID,
		Status:     friendship.Status,
		AcceptedAt: friendship.AcceptedAt,
		CreatedAt:  friendship.CreatedAt,
	}
}

func (s *FriendshipServiceImpl) toFriendshipDTOs(friendships []*model.Friendship) []*dto.FriendshipDTO {
	result := make([]*dto.FriendshipDTO, 0, len(friendships))
	for _, friendship := range friendships {
		result = append(result, s.toFriendshipDTO(friendship))
	}
	return result
}
