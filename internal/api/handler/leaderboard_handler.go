package handler

import (
	"Ecotrace/internal/pkg/response"
	"Ecotrace/internal/service"
	"strconv"

	"github.com/gin-gonic/gin"
)

type LeaderboardHandler struct {
	leaderboardSvc service.LeaderboardService
}

func NewLeaderboardHandler(leaderboardSvc service.LeaderboardService) *LeaderboardHandler {
	return &LeaderboardHandler{leaderboardSvc: leaderboardSvc}
}

func (s *LeaderboardHandler) Global(c *gin.Context) {
	userId := c.GetUint64("user_id")

	limitStr := c.DefaultQuery("limit", "20")
	limit, err := strconv.Atoi(limitStr)
	if err != nil {
		limit = 20
	}

	leaderboard, err := s.leaderboardSvc.GetGlobalLeaderboard(c.Request.Context(), userId, limit)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, leaderboard)
}

func (s *LeaderboardHandler) Friends(c *gin.Context) {
	userId := c.GetUint64("user_id")

	leaderboard, err := s.leaderboardSvc.GetFriendsLeaderboard(c.Request.Context(), userId)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, leaderboard)
}
