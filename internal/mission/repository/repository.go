package repository

import "dayscount-backend/internal/mission/domain"

// MissionRepository defines the interface for mission data access
type MissionRepository interface {
	// Create creates a new mission
	Create(mission *domain.Mission) error

	// FindByID finds a mission by its ID
	FindByID(id string) (*domain.Mission, error)

	// FindByUserID finds a user's missions with an optional status filter
	FindByUserID(userID string, status *domain.MissionStatus, limit, offset int) ([]*domain.Mission, int64, error)

	// Update updates an existing mission
	Update(mission *domain.Mission) error

	// Delete deletes a mission by ID
	Delete(id string) error
}
