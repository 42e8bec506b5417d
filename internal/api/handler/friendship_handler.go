package handler

import (
	"Ecotrace/internal/api/dto"
	"Ecotrace/internal/pkg/response"
	"Ecotrace/internal/pkg/util"
	"Ecotrace/internal/service"

	"github.com/gin-gonic/gin"
)

type FriendshipHandler struct {
	friendshipSvc service.FriendshipService
}

func NewFriendshipHandler(friendshipSvc service.FriendshipService) *FriendshipHandler {
	return &FriendshipHandler{friendshipSvc: friendshipSvc}
}

func (s *FriendshipHandler) SendRequest(c *gin.Context) {
	userId := c.GetUint64("user_id")

	var requestDTO dto.SendFriendRequestDTO
	if err := c.ShouldBindJSON(&requestDTO); err != nil {
		response.Error(c, err)
		return
	}
	if err := util.ValidateDTO(&requestDTO); err != nil {
		response.Fail(c, response.BadRequest, err.Error())
		return
	}

	friendshipDTO, err := s.friendshipSvc.SendRequest(c.Request.Context(), userId, requestDTO.ToUserID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, friendshipDTO)
}

func (s *FriendshipHandler) Accept(c *gin.Context) {
	userId := c.GetUint64("user_id")
	friendshipId, ok := parseIDParam(c, "friendship_id")
	if !ok {
		response.Error(c, service.ErrParamInvalid)
		return
	}

	if err := s.friendshipSvc.AcceptRequest(c.Request.Context(), userId, friendshipId); err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, nil)
}

func (s *FriendshipHandler) Reject(c *gin.Context) {
	userId := c.GetUint64("user_id")
	friendshipId, ok := parseIDParam(c, "friendship_id")
	if !ok {
		response.Error(c, service.ErrParamInvalid)
		return
	}

	if err := s.friendshipSvc.RejectRequest(c.Request.Context(), userId, friendshipId); err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, nil)
}

func (s *FriendshipHandler) Remove(c *gin.Context) {
	userId := c.GetUint64("user_id")
	friendUserId, ok := parseIDParam(c, "friend_user_id")
	if !ok {
		response.Error(c, service.ErrParamInvalid)
		return
	}

	if err := s.friendshipSvc.RemoveFriend(c.Request.Context(), userId, friendUserId); err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, nil)
}

func (s *FriendshipHandler) ListFriends(c *gin.Context) {
	userId := c.GetUint64("user_id")

	friends, err := s.friendshipSvc.GetFriends(c.Request.Context(), userId)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, friends)
}

func (s *FriendshipHandler) ListPending(c *gin.Context) {
	userId := c.GetUint64("user_id")
	limit, offset := getPagination(c)

	requests, err := s.friendshipSvc.GetPendingRequests(c.Request.Context(), userId, limit, offset)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, requests)
}

func (s *FriendshipHandler) ListSent(c *gin.Context) {
	userId := c.GetUint64("user_id")
	limit, offset := getPagination(c)

	requests, err := s.friendshipSvc.GetSentRequests(c.Request.Context(), userId, limit, offset)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, requests)
}

func (s *FriendshipHandler) FriendCount(c *gin.Context) {
	userId := c.GetUint64("user_id")

	count, err := s.friendshipSvc.GetFriendCount(c.Request.Context(), userId)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, map[string]int64{"count": count})
}

func (s *FriendshipHandler) PendingCount(c *gin.Context) {
	userId := c.GetUint64("user_id")

	count, err := s.friendshipSvc.GetPendingCount(c.Request.Context(), userId)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, map[string]int64{"count": count})
}
