package repository

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"dayscount-backend/internal/roadmap/domain"
)

// gormRoadmapRepository implements RoadmapRepository using GORM
type gormRoadmapRepository struct {
	db *gorm.DB
}

// NewGormRoadmapRepository creates a new GORM-based RoadmapRepository
func NewGormRoadmapRepository(db *gorm.DB) RoadmapRepository {
	return &gormRoadmapRepository{db: db}
}

func (r *gormRoadmapRepository) FindByUserID(userID string) (*domain.Roadmap, error) {
	var roadmap domain.Roadmap
	err := r.db.Where("user_id = ?", userID).First(&roadmap).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &roadmap, nil
}

func (r *gormRoadmapRepository) Replace(roadmap *domain.Roadmap) error {
	if roadmap.ID == "" {
		roadmap.ID = uuid.New().String()
	}
	roadmap.CreatedAt = time.Now()
	roadmap.UpdatedAt = time.Now()

	// One roadmap per user: drop any previous document, then insert
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("user_id = ?", roadmap.UserID).Delete(&domain.Roadmap{}).Error; err != nil {
			return err
		}
		return tx.Create(roadmap).Error
	})
}

func (r *gormRoadmapRepository) UpdateTasks(roadmap *domain.Roadmap) error {
	roadmap.UpdatedAt = time.Now()
	return r.db.Save(roadmap).Error
}

func (r *gormRoadmapRepository) FindAll() ([]*domain.Roadmap, error) {
	var roadmaps []*domain.Roadmap
	err := r.db.Find(&roadmaps).Error
	return roadmaps, err
}

func (r *gormRoadmapRepository) MarkReminded(id string, at time.Time) error {
	return r.db.Model(&domain.Roadmap{}).Where("id = ?", id).
		Updates(map[string]interface{}{
			"last_reminded_at": at,
			"updated_at":       time.Now(),
		}).Error
}
