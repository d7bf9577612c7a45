package repository

import (
	"time"

	"dayscount-backend/internal/roadmap/domain"
)

// RoadmapRepository defines the interface for roadmap data access. Each
// user has at most one roadmap document.
type RoadmapRepository interface {
	// FindByUserID returns the user's roadmap, or nil when none exists
	FindByUserID(userID string) (*domain.Roadmap, error)

	// Replace swaps the user's roadmap wholesale (regeneration)
	Replace(roadmap *domain.Roadmap) error

	// UpdateTasks persists an incremental daily-task mutation
	UpdateTasks(roadmap *domain.Roadmap) error

	// FindAll returns every stored roadmap (reminder sweep)
	FindAll() ([]*domain.Roadmap, error)

	// MarkReminded records when the daily reminder was last sent
	MarkReminded(id string, at time.Time) error
}
