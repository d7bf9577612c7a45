package delivery

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"dayscount-backend/internal/mood/domain"
	"dayscount-backend/internal/mood/usecase"
)

// MoodHandler handles mood journal HTTP requests
type MoodHandler struct {
	moodUsecase usecase.MoodUsecase
}

// NewMoodHandler creates a new MoodHandler
func NewMoodHandler(moodUsecase usecase.MoodUsecase) *MoodHandler {
	return &MoodHandler{moodUsecase: moodUsecase}
}

// LogMoodRequest represents the request body for logging a mood
type LogMoodRequest struct {
	Mood     string  `json:"mood" binding:"required"`
	Note     string  `json:"note"`
	LoggedAt *string `json:"logged_at"`
}

// UpdateMoodRequest represents the request body for editing an entry
type UpdateMoodRequest struct {
	Mood *string `json:"mood"`
	Note *string `json:"note"`
}

// GetEntries returns the user's mood journal
// GET /api/moods?days=30&limit=50&offset=0
func (h *MoodHandler) GetEntries(c *gin.Context) {
	userID := c.GetString("userID")

	days, _ := strconv.Atoi(c.DefaultQuery("days", "0"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "50"))
	offset, _ := strconv.Atoi(c.DefaultQuery("offset", "0"))

	entries, total, err := h.moodUsecase.GetEntries(userID, days, limit, offset)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	if entries == nil {
		entries = []*domain.MoodEntry{}
	}

	c.JSON(http.StatusOK, gin.H{
		"entries": entries,
		"total":   total,
	})
}

// LogMood creates a new journal entry
// POST /api/moods
func (h *MoodHandler) LogMood(c *gin.Context) {
	userID := c.GetString("userID")

	var req LogMoodRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	entry, err := h.moodUsecase.LogMood(userID, req.Mood, req.Note, req.LoggedAt)
	if err != nil {
		if err.Error() == "invalid mood" {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, entry)
}

// UpdateEntry edits a journal entry
// PUT /api/moods/:id
func (h *MoodHandler) UpdateEntry(c *gin.Context) {
	userID := c.GetString("userID")
	entryID := c.Param("id")

	var req UpdateMoodRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	entry, err := h.moodUsecase.UpdateEntry(userID, entryID, req.Mood, req.Note)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, entry)
}

// DeleteEntry removes a journal entry
// DELETE /api/moods/:id
func (h *MoodHandler) DeleteEntry(c *gin.Context) {
	userID := c.GetString("userID")
	entryID := c.Param("id")

	if err := h.moodUsecase.DeleteEntry(userID, entryID); err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Entry deleted successfully"})
}

func (h *MoodHandler) respondError(c *gin.Context, err error) {
	switch err.Error() {
	case "entry not found":
		c.JSON(http.StatusNotFound, gin.H{"error": "Entry not found"})
	case "unauthorized":
		c.JSON(http.StatusForbidden, gin.H{"error": "Unauthorized"})
	case "invalid mood":
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid mood"})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
	}
}
