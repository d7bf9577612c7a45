package delivery

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"dayscount-backend/internal/mission/domain"
	"dayscount-backend/internal/mission/usecase"
)

// MissionHandler handles mission-related HTTP requests
type MissionHandler struct {
	missionUsecase usecase.MissionUsecase
}

// NewMissionHandler creates a new MissionHandler
func NewMissionHandler(missionUsecase usecase.MissionUsecase) *MissionHandler {
	return &MissionHandler{missionUsecase: missionUsecase}
}

// CreateMissionRequest represents the request body for creating a mission
type CreateMissionRequest struct {
	Title      string  `json:"title" binding:"required"`
	Category   string  `json:"category"`
	Priority   string  `json:"priority"`
	StartDate  *string `json:"start_date"`
	TargetDate *string `json:"target_date" binding:"required"`
}

// GetMissions returns all missions for the authenticated user
// GET /api/missions?status=active&limit=50&offset=0
func (h *MissionHandler) GetMissions(c *gin.Context) {
	userID := c.GetString("userID")

	status := c.Query("status")
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "50"))
	offset, _ := strconv.Atoi(c.DefaultQuery("offset", "0"))

	var statusPtr *string
	if status != "" {
		statusPtr = &status
	}

	missions, total, err := h.missionUsecase.GetUserMissions(userID, statusPtr, limit, offset)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	if missions == nil {
		missions = []*domain.Mission{}
	}

	c.JSON(http.StatusOK, gin.H{
		"missions": missions,
		"total":    total,
	})
}

// GetMissionByID returns a specific mission
// GET /api/missions/:id
func (h *MissionHandler) GetMissionByID(c *gin.Context) {
	userID := c.GetString("userID")
	missionID := c.Param("id")

	mission, err := h.missionUsecase.GetMissionByID(userID, missionID)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, mission)
}

// CreateMission creates a new mission
// POST /api/missions
func (h *MissionHandler) CreateMission(c *gin.Context) {
	userID := c.GetString("userID")

	var req CreateMissionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	priority := req.Priority
	if priority == "" {
		priority = "medium"
	}

	mission, err := h.missionUsecase.CreateMission(userID, req.Title, req.Category, priority, req.StartDate, req.TargetDate)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, mission)
}

// UpdateMission updates an existing mission
// PUT /api/missions/:id
func (h *MissionHandler) UpdateMission(c *gin.Context) {
	userID := c.GetString("userID")
	missionID := c.Param("id")

	var updates usecase.MissionUpdateRequest
	if err := c.ShouldBindJSON(&updates); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	mission, err := h.missionUsecase.UpdateMission(userID, missionID, updates)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, mission)
}

// DeleteMission deletes a mission
// DELETE /api/missions/:id
func (h *MissionHandler) DeleteMission(c *gin.Context) {
	userID := c.GetString("userID")
	missionID := c.Param("id")

	if err := h.missionUsecase.DeleteMission(userID, missionID); err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Mission deleted successfully"})
}

// ArchiveMission marks a mission completed
// POST /api/missions/:id/archive
func (h *MissionHandler) ArchiveMission(c *gin.Context) {
	userID := c.GetString("userID")
	missionID := c.Param("id")

	mission, unlocked, err := h.missionUsecase.ArchiveMission(userID, missionID)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"mission":  mission,
		"unlocked": unlocked,
	})
}

func (h *MissionHandler) respondError(c *gin.Context, err error) {
	switch err.Error() {
	case "mission not found":
		c.JSON(http.StatusNotFound, gin.H{"error": "Mission not found"})
	case "unauthorized":
		c.JSON(http.StatusForbidden, gin.H{"error": "Unauthorized"})
	case "mission is archived":
		c.JSON(http.StatusConflict, gin.H{"error": "Mission is archived"})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
	}
}
