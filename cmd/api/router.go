package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	authDelivery "dayscount-backend/internal/auth/delivery"
	authUsecase "dayscount-backend/internal/auth/usecase"
	missionDelivery "dayscount-backend/internal/mission/delivery"
	missionUsecase "dayscount-backend/internal/mission/usecase"
	moodDelivery "dayscount-backend/internal/mood/delivery"
	moodUsecase "dayscount-backend/internal/mood/usecase"
	roadmapDelivery "dayscount-backend/internal/roadmap/delivery"
	roadmapUsecase "dayscount-backend/internal/roadmap/usecase"
	statsDelivery "dayscount-backend/internal/stats/delivery"
	statsUsecase "dayscount-backend/internal/stats/usecase"
	"dayscount-backend/pkg/sse"
)

func SetupRoutes(
	r *gin.Engine,
	authUc authUsecase.AuthUsecase,
	roadmapUc roadmapUsecase.RoadmapUsecase,
	statsUc statsUsecase.StatsUsecase,
	missionUc missionUsecase.MissionUsecase,
	moodUc moodUsecase.MoodUsecase,
	sseManager *sse.Manager,
) {
	authHandler := authDelivery.NewAuthHandler(authUc)
	roadmapHandler := roadmapDelivery.NewRoadmapHandler(roadmapUc)
	statsHandler := statsDelivery.NewStatsHandler(statsUc)
	missionHandler := missionDelivery.NewMissionHandler(missionUc)
	moodHandler := moodDelivery.NewMoodHandler(moodUc)

	authRequired := authDelivery.AuthMiddleware(authUc)

	api := r.Group("/api")
	{
		// Health check (no auth required)
		api.GET("/health", func(c *gin.Context) {
			c.JSON(http.StatusOK, gin.H{"status": "ok"})
		})

		// SSE endpoint
		api.GET("/events", authRequired, func(c *gin.Context) {
			userID := c.GetString("userID")
			sseManager.ServeHTTP(c, userID)
		})

		// Auth routes
		auth := api.Group("/auth")
		{
			auth.POST("/login", authHandler.Login)
			auth.POST("/register", authHandler.Register)
			auth.POST("/google", authHandler.GoogleSignIn)
			auth.POST("/refresh", authHandler.RefreshToken)
			auth.POST("/logout", authHandler.Logout)
			auth.GET("/me", authRequired, authHandler.Me)
		}

		// FCM routes (protected)
		fcm := api.Group("/fcm")
		fcm.Use(authRequired)
		{
			fcm.POST("/register", authHandler.RegisterFCMToken)
			fcm.POST("/unregister", authHandler.UnregisterFCMToken)
		}

		// Roadmap routes (protected)
		roadmap := api.Group("/roadmap")
		roadmap.Use(authRequired)
		{
			roadmap.GET("", roadmapHandler.GetRoadmap)
			roadmap.GET("/backlog", roadmapHandler.GetBacklog)
			roadmap.POST("/generate", roadmapHandler.GenerateRoadmap)
			roadmap.POST("/adjust", roadmapHandler.AdjustRoadmap)
			roadmap.PATCH("/days/:day/subtasks/:index", roadmapHandler.ToggleSubTask)
			roadmap.POST("/days/:day/subtasks/:index/logs", roadmapHandler.AddStudyLog)
			roadmap.PUT("/days/:day/subtasks/:index/logs/:logId", roadmapHandler.EditStudyLog)
			roadmap.DELETE("/days/:day/subtasks/:index/logs/:logId", roadmapHandler.DeleteStudyLog)
		}

		// Stats routes (protected)
		stats := api.Group("/stats")
		stats.Use(authRequired)
		{
			stats.GET("", statsHandler.GetStats)
			stats.GET("/achievements", statsHandler.GetAchievements)
		}

		// Mission routes (protected)
		missions := api.Group("/missions")
		missions.Use(authRequired)
		{
			missions.GET("", missionHandler.GetMissions)
			missions.POST("", missionHandler.CreateMission)
			missions.GET("/:id", missionHandler.GetMissionByID)
			missions.PUT("/:id", missionHandler.UpdateMission)
			missions.DELETE("/:id", missionHandler.DeleteMission)
			missions.POST("/:id/archive", missionHandler.ArchiveMission)
		}

		// Mood routes (protected)
		moods := api.Group("/moods")
		moods.Use(authRequired)
		{
			moods.GET("", moodHandler.GetEntries)
			moods.POST("", moodHandler.LogMood)
			moods.PUT("/:id", moodHandler.UpdateEntry)
			moods.DELETE("/:id", moodHandler.DeleteEntry)
		}
	}
}
