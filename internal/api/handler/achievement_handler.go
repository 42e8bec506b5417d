package handler

import (
	"Ecotrace/internal/pkg/response"
	"Ecotrace/internal/service"

	"github.com/gin-gonic/gin"
)

type AchievementHandler struct {
	achievementSvc service.AchievementService
}

func NewAchievementHandler(achievementSvc service.AchievementService) *AchievementHandler {
	return &AchievementHandler{achievementSvc: achievementSvc}
}

func (s *AchievementHandler) ListAll(c *gin.Context) {
	achievements, err := s.achievementSvc.GetAchievements(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, achievements)
}

func (s *AchievementHandler) ListMine(c *gin.Context) {
	userId := c.GetUint64("user_id")

	achievements, err := s.achievementSvc.GetUserAchievements(c.Request.Context(), userId)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, achievements)
}

// Check 手动触发一次成就检查，返回新解锁的成就
func (s *AchievementHandler) Check(c *gin.Context) {
	userId := c.GetUint64("user_id")

	unlocked, err := s.achievementSvc.CheckAndUnlock(c.Request.Context(), userId)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, unlocked)
}
