package main

import (
	"log"

	api "dayscount-backend/cmd/api"
	authdomain "dayscount-backend/internal/auth/domain"
	authRepo "dayscount-backend/internal/auth/repository"
	authUsecase "dayscount-backend/internal/auth/usecase"
	missiondomain "dayscount-backend/internal/mission/domain"
	missionRepo "dayscount-backend/internal/mission/repository"
	missionUsecase "dayscount-backend/internal/mission/usecase"
	mooddomain "dayscount-backend/internal/mood/domain"
	moodRepo "dayscount-backend/internal/mood/repository"
	moodUsecase "dayscount-backend/internal/mood/usecase"
	"dayscount-backend/internal/reminder"
	roadmapdomain "dayscount-backend/internal/roadmap/domain"
	roadmapRepo "dayscount-backend/internal/roadmap/repository"
	roadmapUsecase "dayscount-backend/internal/roadmap/usecase"
	statsdomain "dayscount-backend/internal/stats/domain"
	statsRepo "dayscount-backend/internal/stats/repository"
	statsUsecase "dayscount-backend/internal/stats/usecase"
	"dayscount-backend/pkg/ai"
	"dayscount-backend/pkg/cache"
	"dayscount-backend/pkg/config"
	"dayscount-backend/pkg/database"
	"dayscount-backend/pkg/fcm"
	"dayscount-backend/pkg/logger"
	"dayscount-backend/pkg/sse"
)

func main() {
	// Load configuration
	cfg := config.Load()

	if err := logger.Init(); err != nil {
		log.Fatal("Failed to initialize logger:", err)
	}
	defer logger.Sync()

	// Initialize database
	db, err := database.NewPostgresConnection(cfg)
	if err != nil {
		logger.Log.Fatalw("failed to connect to database", "error", err)
	}

	// Auto-migrate database schemas
	if err := db.AutoMigrate(
		&authdomain.User{},
		&authdomain.RefreshToken{},
		&authdomain.FCMToken{},
		&roadmapdomain.Roadmap{},
		&statsdomain.Stats{},
		&missiondomain.Mission{},
		&mooddomain.MoodEntry{},
	); err != nil {
		logger.Log.Fatalw("failed to migrate database", "error", err)
	}

	// Redis plan cache (optional, nil when REDIS_ADDR is unset)
	planCache, err := cache.New(cfg)
	if err != nil {
		logger.Log.Warnw("redis unavailable, plan caching disabled", "error", err)
		planCache = nil
	}

	// Initialize repositories (dependency injection)
	userRepo := authRepo.NewUserRepository(db)
	fcmTokenRepo := authRepo.NewFCMTokenRepository(db)
	roadmapRepository := roadmapRepo.NewGormRoadmapRepository(db)
	statsRepository := statsRepo.NewGormStatsRepository(db)
	missionRepository := missionRepo.NewGormMissionRepository(db)
	moodRepository := moodRepo.NewGormMoodRepository(db)

	// Initialize SSE Manager
	sseManager := sse.NewManager()
	go sseManager.Run()

	// Initialize FCM client (optional)
	var fcmClient *fcm.Client
	if cfg.FirebaseCredentials != "" {
		fcmClient, err = fcm.NewClient(cfg.FirebaseCredentials)
		if err != nil {
			logger.Log.Warnw("failed to initialize FCM client, push notifications disabled", "error", err)
			fcmClient = nil
		}
	} else {
		logger.Log.Info("no Firebase credentials configured, FCM disabled")
	}

	// Initialize AI planner
	planner, err := ai.NewPlannerService(ai.Config{
		Provider:      ai.ProviderType(cfg.AIProvider),
		GeminiAPIKey:  cfg.GeminiAPIKey,
		OllamaBaseURL: cfg.OllamaBaseURL,
		OllamaModel:   cfg.OllamaModel,
	})
	if err != nil {
		logger.Log.Warnw("failed to initialize AI planner, roadmap generation disabled", "error", err)
		planner = nil
	}

	// Initialize use cases (dependency injection)
	statsUc := statsUsecase.NewStatsUsecase(statsRepository, sseManager)
	roadmapUc := roadmapUsecase.NewRoadmapUsecase(roadmapRepository, planner, statsUc, planCache, sseManager)
	missionUc := missionUsecase.NewMissionUsecase(missionRepository, statsUc)
	moodUc := moodUsecase.NewMoodUsecase(moodRepository)
	authUc := authUsecase.NewAuthUsecase(userRepo, fcmTokenRepo, cfg)

	// Daily reminder scheduler
	scheduler := reminder.NewScheduler(roadmapRepository, fcmTokenRepo, fcmClient, cfg.ReminderInterval, cfg.ReminderHour)
	scheduler.Start()
	defer scheduler.Stop()

	// Initialize HTTP handler
	handler := api.NewHandler(authUc, roadmapUc, statsUc, missionUc, moodUc, sseManager, cfg)

	logger.Log.Infow("server starting", "port", cfg.Port)
	if err := handler.Start(":" + cfg.Port); err != nil {
		logger.Log.Fatalw("failed to start server", "error", err)
	}
}
