package api

import (
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	authUsecase "dayscount-backend/internal/auth/usecase"
	missionUsecase "dayscount-backend/internal/mission/usecase"
	moodUsecase "dayscount-backend/internal/mood/usecase"
	roadmapUsecase "dayscount-backend/internal/roadmap/usecase"
	statsUsecase "dayscount-backend/internal/stats/usecase"
	"dayscount-backend/pkg/config"
	"dayscount-backend/pkg/sse"
)

// Handler aggregates the application's HTTP surface
type Handler struct {
	authUsecase    authUsecase.AuthUsecase
	roadmapUsecase roadmapUsecase.RoadmapUsecase
	statsUsecase   statsUsecase.StatsUsecase
	missionUsecase missionUsecase.MissionUsecase
	moodUsecase    moodUsecase.MoodUsecase
	sseManager     *sse.Manager
	config         *config.Config
}

// NewHandler creates the top-level HTTP handler
func NewHandler(
	authUc authUsecase.AuthUsecase,
	roadmapUc roadmapUsecase.RoadmapUsecase,
	statsUc statsUsecase.StatsUsecase,
	missionUc missionUsecase.MissionUsecase,
	moodUc moodUsecase.MoodUsecase,
	sseManager *sse.Manager,
	cfg *config.Config,
) *Handler {
	return &Handler{
		authUsecase:    authUc,
		roadmapUsecase: roadmapUc,
		statsUsecase:   statsUc,
		missionUsecase: missionUc,
		moodUsecase:    moodUc,
		sseManager:     sseManager,
		config:         cfg,
	}
}

// Start configures the gin engine and blocks serving on addr
func (h *Handler) Start(addr string) error {
	gin.SetMode(gin.ReleaseMode)
	r := gin.Default()

	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization", "Cache-Control"},
		AllowCredentials: false,
		MaxAge:           12 * time.Hour,
	}))

	SetupRoutes(r, h.authUsecase, h.roadmapUsecase, h.statsUsecase, h.missionUsecase, h.moodUsecase, h.sseManager)

	return r.Run(addr)
}
