package usecase

import (
	"time"

	missiondomain "dayscount-backend/internal/mission/domain"
	"dayscount-backend/internal/stats/domain"
	"dayscount-backend/internal/stats/repository"
	"dayscount-backend/internal/stats/tracker"
	"dayscount-backend/pkg/logger"
	"dayscount-backend/pkg/sse"
)

// StatsUsecase exposes the streak and achievement transitions to the rest
// of the app. All state logic lives in the tracker package; this layer only
// loads, applies and persists.
type StatsUsecase interface {
	// Get returns the user's stats, creating a default record on first read
	// and applying the stale-streak sweep.
	Get(userID string, now time.Time) (*domain.Stats, error)

	// DayCompleted fires the false→true completion edge of the current day.
	DayCompleted(userID string, now time.Time) (*domain.Stats, []string, error)

	// DayUncompleted fires the reverse edge (same-day revert only).
	DayUncompleted(userID string, now time.Time) (*domain.Stats, error)

	// MissionArchived counts a completed mission.
	MissionArchived(userID string, m missiondomain.Mission) (*domain.Stats, []string, error)

	// RecordStudyTime replaces the lifetime study-time total.
	RecordStudyTime(userID string, totalSeconds int64) (*domain.Stats, []string, error)

	// Achievements returns the static catalog.
	Achievements() []domain.Achievement
}

type statsUsecase struct {
	statsRepo  repository.StatsRepository
	sseManager *sse.Manager
}

// NewStatsUsecase creates a new instance of statsUsecase
func NewStatsUsecase(statsRepo repository.StatsRepository, sseManager *sse.Manager) StatsUsecase {
	return &statsUsecase{
		statsRepo:  statsRepo,
		sseManager: sseManager,
	}
}

func (u *statsUsecase) Get(userID string, now time.Time) (*domain.Stats, error) {
	stats, err := u.statsRepo.FindByUserID(userID)
	if err != nil {
		return nil, err
	}
	if stats == nil {
		// default record, nothing persisted until the first transition
		return &domain.Stats{UserID: userID}, nil
	}

	// lazy stale-streak correction, persisted so later reads agree
	swept, changed := tracker.SweepStale(*stats, now)
	if changed {
		logger.Log.Infof("streak for user %s went stale, resetting", userID)
		if err := u.statsRepo.Save(&swept); err != nil {
			return nil, err
		}
	}
	return &swept, nil
}

func (u *statsUsecase) DayCompleted(userID string, now time.Time) (*domain.Stats, []string, error) {
	stats, err := u.Get(userID, now)
	if err != nil {
		return nil, nil, err
	}

	next, newly := tracker.OnDayCompleted(*stats, now)
	if err := u.statsRepo.Save(&next); err != nil {
		return nil, nil, err
	}

	u.notify(userID, &next)
	if len(newly) > 0 {
		logger.Log.Infof("user %s unlocked %v", userID, newly)
		u.notifyUnlocked(userID, newly)
	}
	return &next, newly, nil
}

func (u *statsUsecase) DayUncompleted(userID string, now time.Time) (*domain.Stats, error) {
	stats, err := u.Get(userID, now)
	if err != nil {
		return nil, err
	}

	next := tracker.OnDayUncompleted(*stats, now)
	if err := u.statsRepo.Save(&next); err != nil {
		return nil, err
	}

	u.notify(userID, &next)
	return &next, nil
}

func (u *statsUsecase) MissionArchived(userID string, m missiondomain.Mission) (*domain.Stats, []string, error) {
	stats, err := u.Get(userID, time.Now())
	if err != nil {
		return nil, nil, err
	}

	next, newly := tracker.OnMissionArchived(*stats, m)
	if err := u.statsRepo.Save(&next); err != nil {
		return nil, nil, err
	}

	u.notify(userID, &next)
	if len(newly) > 0 {
		u.notifyUnlocked(userID, newly)
	}
	return &next, newly, nil
}

func (u *statsUsecase) RecordStudyTime(userID string, totalSeconds int64) (*domain.Stats, []string, error) {
	stats, err := u.Get(userID, time.Now())
	if err != nil {
		return nil, nil, err
	}

	next, newly := tracker.RecordStudyTime(*stats, totalSeconds)
	if err := u.statsRepo.Save(&next); err != nil {
		return nil, nil, err
	}

	u.notify(userID, &next)
	if len(newly) > 0 {
		u.notifyUnlocked(userID, newly)
	}
	return &next, newly, nil
}

func (u *statsUsecase) Achievements() []domain.Achievement {
	return domain.Catalog
}

func (u *statsUsecase) notify(userID string, stats *domain.Stats) {
	if u.sseManager != nil {
		u.sseManager.SendToUser(userID, "stats_updated", stats)
	}
}

func (u *statsUsecase) notifyUnlocked(userID string, ids []string) {
	if u.sseManager != nil {
		u.sseManager.SendToUser(userID, "achievements_unlocked", ids)
	}
}
