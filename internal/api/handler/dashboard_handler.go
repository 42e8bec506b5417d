package handler

import (
	"Ecotrace/internal/pkg/response"
	"Ecotrace/internal/service"
	"strconv"

	"github.com/gin-gonic/gin"
)

type DashboardHandler struct {
	dashboardSvc service.DashboardService
}

func NewDashboardHandler(dashboardSvc service.DashboardService) *DashboardHandler {
	return &DashboardHandler{dashboardSvc: dashboardSvc}
}

func (s *DashboardHandler) Summary(c *gin.Context) {
	userId := c.GetUint64("user_id")

	summary, err := s.dashboardSvc.GetSummary(c.Request.Context(), userId)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, summary)
}

func (s *DashboardHandler) Stats(c *gin.Context) {
	userId := c.GetUint64("user_id")

	daysStr := c.DefaultQuery("days", "7")
	days, err := strconv.Atoi(daysStr)
	if err != nil {
		days = 7
	}

	stats, err := s.dashboardSvc.GetStats(c.Request.Context(), userId, days)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, stats)
}

func (s *DashboardHandler) Tips(c *gin.Context) {
	userId := c.GetUint64("user_id")

	maxStr := c.DefaultQuery("max", "3")
	maxTips, err := strconv.Atoi(maxStr)
	if err != nil {
		maxTips = 3
	}
	category := c.Query("category")

	tips, err := s.dashboardSvc.GetTips(c.Request.Context(), userId, category, maxTips)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, tips)
}
