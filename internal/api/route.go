package api

import (
	"Ecotrace/internal/api/middleware"
	"Ecotrace/internal/pkg/logger"
	"net/http"

	"github.com/gin-gonic/gin"
)

func SetupRouter(group *HandlersGroup) *gin.Engine {
	r := gin.New()
	_ = r.SetTrustedProxies([]string{"localhost"})

	// TraceId & Logger & CORS
	r.Use(middleware.TraceMiddleware())
	r.Use(middleware.CORSMiddleware())
	logger.SetupGin(r)

	apiGroup := r.Group("/api")
	{
		apiGroup.GET("/ping", func(c *gin.Context) {
			c.JSON(http.StatusOK, gin.H{
				"Code":    200,
				"Message": "pong",
				"Data":    nil,
			})
		})

		userGroup := apiGroup.Group("/user")
		{
			// 无需登录即可访问的接口
			userGroup.POST("/register", group.UserHandler.Register)
			userGroup.POST("/login", group.UserHandler.Login)

			authGroup := userGroup.Group("")
			authGroup.Use(middleware.AuthMiddleware())
			{
				authGroup.POST("/logout", group.UserHandler.Logout)
				authGroup.GET("/me", group.UserHandler.Me)
				authGroup.GET("/search", group.UserHandler.Search)
				authGroup.PUT("/password", group.UserHandler.UpdatePassword)
				authGroup.PUT("/username", group.UserHandler.UpdateUsername)
				authGroup.POST("/cancel", group.UserHandler.Cancel)
			}
		}

		profileGroup := apiGroup.Group("/profile")
		profileGroup.Use(middleware.AuthMiddleware())
		{
			profileGroup.GET("", group.ProfileHandler.GetMyProfile)
			profileGroup.GET("/:user_id", group.ProfileHandler.GetProfile)
			profileGroup.PUT("", group.ProfileHandler.UpdateProfile)
			profileGroup.POST("/avatar", group.ProfileHandler.UploadAvatar)
		}

		mealGroup := apiGroup.Group("/meals")
		mealGroup.Use(middleware.AuthMiddleware())
		{
			mealGroup.POST("", group.MealHandler.Create)
			mealGroup.GET("", group.MealHandler.List)
			mealGroup.GET("/:meal_id", group.MealHandler.Get)
			mealGroup.PUT("/:meal_id", group.MealHandler.Update)
			mealGroup.DELETE("/:meal_id", group.MealHandler.Delete)
		}

		transportGroup := apiGroup.Group("/transports")
		transportGroup.Use(middleware.AuthMiddleware())
		{
			transportGroup.POST("", group.TransportHandler.Create)
			transportGroup.GET("", group.TransportHandler.List)
			transportGroup.GET("/:transport_id", group.TransportHandler.Get)
			transportGroup.PUT("/:transport_id", group.TransportHandler.Update)
			transportGroup.DELETE("/:transport_id", group.TransportHandler.Delete)
		}

		friendGroup := apiGroup.Group("/friends")
		friendGroup.Use(middleware.AuthMiddleware())
		{
			friendGroup.GET("", group.FriendshipHandler.ListFriends)
			friendGroup.GET("/count", group.FriendshipHandler.FriendCount)
			friendGroup.POST("/requests", group.FriendshipHandler.SendRequest)
			friendGroup.GET("/requests/pending", group.FriendshipHandler.ListPending)
			friendGroup.GET("/requests/pending/count", group.FriendshipHandler.PendingCount)
			friendGroup.GET("/requests/sent", group.FriendshipHandler.ListSent)
			friendGroup.POST("/requests/:friendship_id/accept", group.FriendshipHandler.Accept)
			friendGroup.POST("/requests/:friendship_id/reject", group.FriendshipHandler.Reject)
			friendGroup.DELETE("/:friend_user_id", group.FriendshipHandler.Remove)
		}

		achievementGroup := apiGroup.Group("/achievements")
		achievementGroup.Use(middleware.AuthMiddleware())
		{
			achievementGroup.GET("", group.AchievementHandler.ListAll)
			achievementGroup.GET("/mine", group.AchievementHandler.ListMine)
			achievementGroup.POST("/check", group.AchievementHandler.Check)
		}

		leaderboardGroup := apiGroup.Group("/leaderboard")
		leaderboardGroup.Use(middleware.AuthMiddleware())
		{
			leaderboardGroup.GET("/global", group.LeaderboardHandler.Global)
			leaderboardGroup.GET("/friends", group.LeaderboardHandler.Friends)
		}

		dashboardGroup := apiGroup.Group("/dashboard")
		dashboardGroup.Use(middleware.AuthMiddleware())
		{
			dashboardGroup.GET("/summary", group.DashboardHandler.Summary)
			dashboardGroup.GET("/stats", group.DashboardHandler.Stats)
			dashboardGroup.GET("/tips", group.DashboardHandler.Tips)
		}
	}

	return r
}
