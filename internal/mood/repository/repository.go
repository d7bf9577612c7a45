package repository

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"dayscount-backend/internal/mood/domain"
)

// MoodRepository defines the interface for mood journal data access
type MoodRepository interface {
	Create(entry *domain.MoodEntry) error
	FindByID(id string) (*domain.MoodEntry, error)
	FindByUserID(userID string, since *time.Time, limit, offset int) ([]*domain.MoodEntry, int64, error)
	Update(entry *domain.MoodEntry) error
	Delete(id string) error
}

// gormMoodRepository implements MoodRepository using GORM
type gormMoodRepository struct {
	db *gorm.DB
}

// NewGormMoodRepository creates a new GORM-based MoodRepository
func NewGormMoodRepository(db *gorm.DB) MoodRepository {
	return &gormMoodRepository{db: db}
}

func (r *gormMoodRepository) Create(entry *domain.MoodEntry) error {
	if entry.ID == "" {
		entry.ID = uuid.New().String()
	}
	entry.CreatedAt = time.Now()
	entry.UpdatedAt = time.Now()
	return r.db.Create(entry).Error
}

func (r *gormMoodRepository) FindByID(id string) (*domain.MoodEntry, error) {
	var entry domain.MoodEntry
	err := r.db.Where("id = ?", id).First(&entry).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &entry, nil
}

func (r *gormMoodRepository) FindByUserID(userID string, since *time.Time, limit, offset int) ([]*domain.MoodEntry, int64, error) {
	var entries []*domain.MoodEntry
	var total int64

	query := r.db.Model(&domain.MoodEntry{}).Where("user_id = ?", userID)
	if since != nil {
		query = query.Where("logged_at >= ?", *since)
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := query.Order("logged_at DESC").Limit(limit).Offset(offset).Find(&entries).Error
	return entries, total, err
}

func (r *gormMoodRepository) Update(entry *domain.MoodEntry) error {
	entry.UpdatedAt = time.Now()
	return r.db.Save(entry).Error
}

func (r *gormMoodRepository) Delete(id string) error {
	return r.db.Delete(&domain.MoodEntry{}, "id = ?", id).Error
}
