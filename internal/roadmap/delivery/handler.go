package delivery

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"dayscount-backend/internal/roadmap/usecase"
)

// RoadmapHandler handles roadmap-related HTTP requests
type RoadmapHandler struct {
	roadmapUsecase usecase.RoadmapUsecase
}

// NewRoadmapHandler creates a new RoadmapHandler
func NewRoadmapHandler(roadmapUsecase usecase.RoadmapUsecase) *RoadmapHandler {
	return &RoadmapHandler{roadmapUsecase: roadmapUsecase}
}

// GenerateRoadmapRequest represents the request body for generating a roadmap
type GenerateRoadmapRequest struct {
	Goal      string  `json:"goal" binding:"required"`
	Days      int     `json:"days" binding:"required"`
	StartDate *string `json:"start_date"`
}

// AdjustRoadmapRequest represents the request body for re-planning
type AdjustRoadmapRequest struct {
	Feedback string `json:"feedback"`
}

// ToggleSubTaskRequest represents a subtask checkbox toggle
type ToggleSubTaskRequest struct {
	Completed *bool `json:"completed" binding:"required"`
}

// StudyLogRequest represents the body for adding or editing a study log
type StudyLogRequest struct {
	Duration int64 `json:"duration" binding:"min=0"`
}

// GetRoadmap returns the user's roadmap with progress info
// GET /api/roadmap
func (h *RoadmapHandler) GetRoadmap(c *gin.Context) {
	userID := c.GetString("userID")

	view, err := h.roadmapUsecase.Get(userID, time.Now())
	if err != nil {
		if err.Error() == "roadmap not found" {
			c.JSON(http.StatusNotFound, gin.H{"error": "Roadmap not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, view)
}

// GetBacklog returns past days that still have incomplete tasks
// GET /api/roadmap/backlog
func (h *RoadmapHandler) GetBacklog(c *gin.Context) {
	userID := c.GetString("userID")

	days, err := h.roadmapUsecase.Backlog(userID, time.Now())
	if err != nil {
		if err.Error() == "roadmap not found" {
			c.JSON(http.StatusNotFound, gin.H{"error": "Roadmap not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"days": days})
}

// GenerateRoadmap creates a new AI roadmap, replacing any existing one
// POST /api/roadmap/generate
func (h *RoadmapHandler) GenerateRoadmap(c *gin.Context) {
	userID := c.GetString("userID")

	var req GenerateRoadmapRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var startDate *time.Time
	if req.StartDate != nil && *req.StartDate != "" {
		if t, err := time.Parse(time.RFC3339, *req.StartDate); err == nil {
			startDate = &t
		}
	}

	roadmap, err := h.roadmapUsecase.Generate(c.Request.Context(), userID, req.Goal, req.Days, startDate)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, roadmap)
}

// AdjustRoadmap re-plans the remaining days
// POST /api/roadmap/adjust
func (h *RoadmapHandler) AdjustRoadmap(c *gin.Context) {
	userID := c.GetString("userID")

	var req AdjustRoadmapRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	roadmap, err := h.roadmapUsecase.Adjust(c.Request.Context(), userID, req.Feedback, time.Now())
	if err != nil {
		if err.Error() == "roadmap not found" {
			c.JSON(http.StatusNotFound, gin.H{"error": "Roadmap not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, roadmap)
}

// ToggleSubTask checks or unchecks one subtask of a day
// PATCH /api/roadmap/days/:day/subtasks/:index
func (h *RoadmapHandler) ToggleSubTask(c *gin.Context) {
	userID := c.GetString("userID")

	day, index, ok := h.pathIndices(c)
	if !ok {
		return
	}

	var req ToggleSubTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	view, err := h.roadmapUsecase.ToggleSubTask(userID, day, index, *req.Completed, time.Now())
	if err != nil {
		if err.Error() == "roadmap not found" {
			c.JSON(http.StatusNotFound, gin.H{"error": "Roadmap not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, view)
}

// AddStudyLog appends a study log to a subtask
// POST /api/roadmap/days/:day/subtasks/:index/logs
func (h *RoadmapHandler) AddStudyLog(c *gin.Context) {
	userID := c.GetString("userID")

	day, index, ok := h.pathIndices(c)
	if !ok {
		return
	}

	var req StudyLogRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	view, err := h.roadmapUsecase.AddStudyLog(userID, day, index, req.Duration, time.Now())
	if err != nil {
		if err.Error() == "roadmap not found" {
			c.JSON(http.StatusNotFound, gin.H{"error": "Roadmap not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, view)
}

// EditStudyLog updates a study log's duration
// PUT /api/roadmap/days/:day/subtasks/:index/logs/:logId
func (h *RoadmapHandler) EditStudyLog(c *gin.Context) {
	userID := c.GetString("userID")
	logID := c.Param("logId")

	day, index, ok := h.pathIndices(c)
	if !ok {
		return
	}

	var req StudyLogRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	view, err := h.roadmapUsecase.EditStudyLog(userID, day, index, logID, req.Duration, time.Now())
	if err != nil {
		if err.Error() == "roadmap not found" {
			c.JSON(http.StatusNotFound, gin.H{"error": "Roadmap not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, view)
}

// DeleteStudyLog removes a study log from a subtask
// DELETE /api/roadmap/days/:day/subtasks/:index/logs/:logId
func (h *RoadmapHandler) DeleteStudyLog(c *gin.Context) {
	userID := c.GetString("userID")
	logID := c.Param("logId")

	day, index, ok := h.pathIndices(c)
	if !ok {
		return
	}

	view, err := h.roadmapUsecase.DeleteStudyLog(userID, day, index, logID, time.Now())
	if err != nil {
		if err.Error() == "roadmap not found" {
			c.JSON(http.StatusNotFound, gin.H{"error": "Roadmap not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, view)
}

func (h *RoadmapHandler) pathIndices(c *gin.Context) (day, index int, ok bool) {
	day, err := strconv.Atoi(c.Param("day"))
	if err != nil || day < 1 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid day"})
		return 0, 0, false
	}
	index, err = strconv.Atoi(c.Param("index"))
	if err != nil || index < 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid subtask index"})
		return 0, 0, false
	}
	return day, index, true
}
