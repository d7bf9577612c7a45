package repository

import (
	"errors"
	"time"

	"gorm.io/gorm"

	"dayscount-backend/internal/stats/domain"
)

// gormStatsRepository implements StatsRepository using GORM
type gormStatsRepository struct {
	db *gorm.DB
}

// NewGormStatsRepository creates a new GORM-based StatsRepository
func NewGormStatsRepository(db *gorm.DB) StatsRepository {
	return &gormStatsRepository{db: db}
}

func (r *gormStatsRepository) FindByUserID(userID string) (*domain.Stats, error) {
	var stats domain.Stats
	err := r.db.Where("user_id = ?", userID).First(&stats).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &stats, nil
}

func (r *gormStatsRepository) Save(stats *domain.Stats) error {
	if stats.CreatedAt.IsZero() {
		stats.CreatedAt = time.Now()
	}
	stats.UpdatedAt = time.Now()
	return r.db.Save(stats).Error
}
