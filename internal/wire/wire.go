package wire

import (
	"Ecotrace/internal/api"
	"Ecotrace/internal/api/handler"
	"Ecotrace/internal/job"
	"Ecotrace/internal/pkg/cron"
	"Ecotrace/internal/repository"
	"Ecotrace/internal/service"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// ApplicationContainer 封装了应用运行所需的所有顶级组件
type ApplicationContainer struct {
	Router      *gin.Engine
	DB          *gorm.DB
	CronManager *cron.Manager
}

func BuildApplication(db *gorm.DB) (*ApplicationContainer, error) {
	userRepo := repository.NewUserRepo(db)
	profileRepo := repository.NewProfileRepo(db)
	mealRepo := repository.NewMealRepo(db)
	transportRepo := repository.NewTransportRepo(db)
	achievementRepo := repository.NewAchievementRepo(db)
	friendshipRepo := repository.NewFriendshipRepo(db)
	ecoTipRepo := repository.NewEcoTipRepo(db)

	userService := service.NewUserService(userRepo)
	profileService := service.NewProfileService(profileRepo)
	achievementService := service.NewAchievementService(achievementRepo, mealRepo, transportRepo, friendshipRepo, profileRepo)
	mealService := service.NewMealService(mealRepo, profileService, achievementService)
	transportService := service.NewTransportService(transportRepo, profileService, achievementService)
	friendshipService := service.NewFriendshipService(friendshipRepo, userRepo, achievementService)
	leaderboardService := service.NewLeaderboardService(profileRepo, userRepo, friendshipService)
	dashboardService := service.NewDashboardService(mealRepo, transportRepo, profileRepo, achievementRepo, ecoTipRepo)

	handlers := &api.HandlersGroup{
		UserHandler:        handler.NewUserHandler(userService),
		ProfileHandler:     handler.NewProfileHandler(profileService),
		MealHandler:        handler.NewMealHandler(mealService),
		TransportHandler:   handler.NewTransportHandler(transportService),
		FriendshipHandler:  handler.NewFriendshipHandler(friendshipService),
		AchievementHandler: handler.NewAchievementHandler(achievementService),
		LeaderboardHandler: handler.NewLeaderboardHandler(leaderboardService),
		DashboardHandler:   handler.NewDashboardHandler(dashboardService),
	}

	router := api.SetupRouter(handlers)

	leaderboardJob := job.NewLeaderboardJob(leaderboardService)
	streakJob := job.NewStreakAuditJob(profileRepo)
	cronMgr := cron.NewCronManager(leaderboardJob, streakJob)

	return &ApplicationContainer{
		Router:      router,
		DB:          db,
		CronManager: cronMgr,
	}, nil
}
