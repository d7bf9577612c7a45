package repository

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"dayscount-backend/internal/mission/domain"
)

// gormMissionRepository implements MissionRepository using GORM
type gormMissionRepository struct {
	db *gorm.DB
}

// NewGormMissionRepository creates a new GORM-based MissionRepository
func NewGormMissionRepository(db *gorm.DB) MissionRepository {
	return &gormMissionRepository{db: db}
}

func (r *gormMissionRepository) Create(mission *domain.Mission) error {
	if mission.ID == "" {
		mission.ID = uuid.New().String()
	}
	mission.CreatedAt = time.Now()
	mission.UpdatedAt = time.Now()
	return r.db.Create(mission).Error
}

func (r *gormMissionRepository) FindByID(id string) (*domain.Mission, error) {
	var mission domain.Mission
	err := r.db.Where("id = ?", id).First(&mission).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &mission, nil
}

func (r *gormMissionRepository) FindByUserID(userID string, status *domain.MissionStatus, limit, offset int) ([]*domain.Mission, int64, error) {
	var missions []*domain.Mission
	var total int64

	query := r.db.Model(&domain.Mission{}).Where("user_id = ?", userID)

	if status != nil {
		query = query.Where("status = ?", *status)
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	// Nearest deadline first; extreme priority floats within the same date
	err := query.Order("target_date ASC, CASE priority WHEN 'extreme' THEN 0 WHEN 'high' THEN 1 WHEN 'medium' THEN 2 ELSE 3 END").
		Limit(limit).Offset(offset).Find(&missions).Error

	return missions, total, err
}

func (r *gormMissionRepository) Update(mission *domain.Mission) error {
	mission.UpdatedAt = time.Now()
	return r.db.Save(mission).Error
}

func (r *gormMissionRepository) Delete(id string) error {
	return r.db.Delete(&domain.Mission{}, "id = ?", id).Error
}
