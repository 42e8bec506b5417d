package api

import "Ecotrace/internal/api/handler"

// HandlersGroup 封装了所有已初始化的 Handler 实例
type HandlersGroup struct {
	UserHandler        *handler.UserHandler
	ProfileHandler     *handler.ProfileHandler
	MealHandler        *handler.MealHandler
	TransportHandler   *handler.TransportHandler
	FriendshipHandler  *handler.FriendshipHandler
	AchievementHandler *handler.AchievementHandler
	LeaderboardHandler *handler.LeaderboardHandler
	DashboardHandler   *handler.DashboardHandler
}
