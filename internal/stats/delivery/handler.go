package delivery

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"dayscount-backend/internal/stats/usecase"
)

// StatsHandler handles stats-related HTTP requests
type StatsHandler struct {
	statsUsecase usecase.StatsUsecase
}

// NewStatsHandler creates a new StatsHandler
func NewStatsHandler(statsUsecase usecase.StatsUsecase) *StatsHandler {
	return &StatsHandler{statsUsecase: statsUsecase}
}

// GetStats returns the authenticated user's streak and achievement record
// GET /api/stats
func (h *StatsHandler) GetStats(c *gin.Context) {
	userID := c.GetString("userID")

	stats, err := h.statsUsecase.Get(userID, time.Now())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, stats)
}

// GetAchievements returns the achievement catalog plus the user's unlocked set
// GET /api/stats/achievements
func (h *StatsHandler) GetAchievements(c *gin.Context) {
	userID := c.GetString("userID")

	stats, err := h.statsUsecase.Get(userID, time.Now())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"catalog":  h.statsUsecase.Achievements(),
		"unlocked": stats.UnlockedAchievements,
	})
}
