package usecase

import (
	"errors"
	"time"

	"github.com/google/uuid"

	"dayscount-backend/internal/mission/domain"
	"dayscount-backend/internal/mission/repository"
	statsUsecase "dayscount-backend/internal/stats/usecase"
	"dayscount-backend/pkg/logger"
)

// MissionUpdateRequest carries optional field updates for a mission
type MissionUpdateRequest struct {
	Title      *string `json:"title"`
	Category   *string `json:"category"`
	Priority   *string `json:"priority"`
	TargetDate *string `json:"target_date"`
}

// MissionUsecase defines the mission business logic interface
type MissionUsecase interface {
	CreateMission(userID, title, category, priority string, startDate, targetDate *string) (*domain.Mission, error)
	GetMissionByID(userID, missionID string) (*domain.Mission, error)
	GetUserMissions(userID string, status *string, limit, offset int) ([]*domain.Mission, int64, error)
	UpdateMission(userID, missionID string, updates MissionUpdateRequest) (*domain.Mission, error)
	DeleteMission(userID, missionID string) error

	// ArchiveMission marks a mission completed and feeds the stats tracker.
	ArchiveMission(userID, missionID string) (*domain.Mission, []string, error)
}

// missionUsecase implements MissionUsecase
type missionUsecase struct {
	missionRepo repository.MissionRepository
	stats       statsUsecase.StatsUsecase
}

// NewMissionUsecase creates a new instance of missionUsecase
func NewMissionUsecase(missionRepo repository.MissionRepository, stats statsUsecase.StatsUsecase) MissionUsecase {
	return &missionUsecase{
		missionRepo: missionRepo,
		stats:       stats,
	}
}

func (u *missionUsecase) CreateMission(userID, title, category, priority string, startDate, targetDate *string) (*domain.Mission, error) {
	mission := &domain.Mission{
		ID:        uuid.New().String(),
		UserID:    userID,
		Title:     title,
		Category:  category,
		Priority:  parsePriority(priority),
		Status:    domain.MissionStatusActive,
		StartDate: time.Now(),
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}

	if startDate != nil && *startDate != "" {
		if t, err := time.Parse(time.RFC3339, *startDate); err == nil {
			mission.StartDate = t
		}
	}

	if targetDate != nil && *targetDate != "" {
		if t, err := time.Parse(time.RFC3339, *targetDate); err == nil {
			mission.TargetDate = t
		}
	}
	if mission.TargetDate.IsZero() {
		return nil, errors.New("target date is required")
	}

	if err := u.missionRepo.Create(mission); err != nil {
		return nil, err
	}

	return mission, nil
}

func (u *missionUsecase) GetMissionByID(userID, missionID string) (*domain.Mission, error) {
	mission, err := u.missionRepo.FindByID(missionID)
	if err != nil {
		return nil, err
	}
	if mission == nil {
		return nil, errors.New("mission not found")
	}
	if mission.UserID != userID {
		return nil, errors.New("unauthorized")
	}
	return mission, nil
}

func (u *missionUsecase) GetUserMissions(userID string, status *string, limit, offset int) ([]*domain.Mission, int64, error) {
	var statusFilter *domain.MissionStatus
	if status != nil && *status != "" {
		s := domain.MissionStatus(*status)
		statusFilter = &s
	}
	return u.missionRepo.FindByUserID(userID, statusFilter, limit, offset)
}

func (u *missionUsecase) UpdateMission(userID, missionID string, updates MissionUpdateRequest) (*domain.Mission, error) {
	mission, err := u.GetMissionByID(userID, missionID)
	if err != nil {
		return nil, err
	}
	if mission.Status == domain.MissionStatusArchived {
		return nil, errors.New("mission is archived")
	}

	if updates.Title != nil {
		mission.Title = *updates.Title
	}
	if updates.Category != nil {
		mission.Category = *updates.Category
	}
	if updates.Priority != nil {
		mission.Priority = parsePriority(*updates.Priority)
	}
	if updates.TargetDate != nil && *updates.TargetDate != "" {
		if t, err := time.Parse(time.RFC3339, *updates.TargetDate); err == nil {
			mission.TargetDate = t
		}
	}

	mission.UpdatedAt = time.Now()
	if err := u.missionRepo.Update(mission); err != nil {
		return nil, err
	}

	return mission, nil
}

func (u *missionUsecase) DeleteMission(userID, missionID string) error {
	mission, err := u.GetMissionByID(userID, missionID)
	if err != nil {
		return err
	}
	return u.missionRepo.Delete(mission.ID)
}

func (u *missionUsecase) ArchiveMission(userID, missionID string) (*domain.Mission, []string, error) {
	mission, err := u.GetMissionByID(userID, missionID)
	if err != nil {
		return nil, nil, err
	}
	if mission.Status == domain.MissionStatusArchived {
		return nil, nil, errors.New("mission is archived")
	}

	now := time.Now()
	mission.Status = domain.MissionStatusArchived
	mission.ArchivedAt = &now

	if err := u.missionRepo.Update(mission); err != nil {
		return nil, nil, err
	}

	_, newly, err := u.stats.MissionArchived(userID, *mission)
	if err != nil {
		// the mission is archived either way; the counter catches up on the
		// next successful transition
		logger.Log.Errorw("mission-archived transition failed", "user", userID, "err", err)
	}

	return mission, newly, nil
}

func parsePriority(p string) domain.Priority {
	switch p {
	case "low":
		return domain.PriorityLow
	case "high":
		return domain.PriorityHigh
	case "extreme":
		return domain.PriorityExtreme
	default:
		return domain.PriorityMedium
	}
}
