package usecase

import (
	"context"
	"time"

	"dayscount-backend/internal/roadmap/domain"
)

// RoadmapView decorates the stored roadmap with the derived progress fields
// the frontend renders.
type RoadmapView struct {
	*domain.Roadmap
	CurrentDay int  `json:"current_day"`
	HasBacklog bool `json:"has_backlog"`
}

// RoadmapUsecase defines the roadmap business logic interface
type RoadmapUsecase interface {
	// Generate asks the AI planner for a fresh roadmap and replaces the
	// user's current one wholesale.
	Generate(ctx context.Context, userID, goal string, days int, startDate *time.Time) (*domain.Roadmap, error)

	// Adjust re-plans the days after the current one based on user feedback,
	// keeping completed history intact.
	Adjust(ctx context.Context, userID, feedback string, now time.Time) (*domain.Roadmap, error)

	// Get returns the roadmap with current-day and backlog info.
	Get(userID string, now time.Time) (*RoadmapView, error)

	// Backlog returns the past days that still have incomplete tasks.
	Backlog(userID string, now time.Time) ([]domain.DailyTask, error)

	// ToggleSubTask checks or unchecks one subtask, recomputes the day's
	// completion and fires streak transitions on the completion edge of the
	// current day.
	ToggleSubTask(userID string, day, subTaskIndex int, completed bool, now time.Time) (*RoadmapView, error)

	// Study log operations on a subtask.
	AddStudyLog(userID string, day, subTaskIndex int, durationSeconds int64, now time.Time) (*RoadmapView, error)
	EditStudyLog(userID string, day, subTaskIndex int, logID string, durationSeconds int64, now time.Time) (*RoadmapView, error)
	DeleteStudyLog(userID string, day, subTaskIndex int, logID string, now time.Time) (*RoadmapView, error)
}
