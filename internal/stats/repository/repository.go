package repository

import "dayscount-backend/internal/stats/domain"

// StatsRepository defines the interface for stats data access
type StatsRepository interface {
	// FindByUserID returns the user's stats record, or nil when none exists
	FindByUserID(userID string) (*domain.Stats, error)

	// Save upserts the stats record
	Save(stats *domain.Stats) error
}
