package usecase

import (
	"context"
	"crypto/sha256"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"dayscount-backend/internal/roadmap/domain"
	"dayscount-backend/internal/roadmap/engine"
	"dayscount-backend/internal/roadmap/repository"
	statsUsecase "dayscount-backend/internal/stats/usecase"
	"dayscount-backend/pkg/ai"
	"dayscount-backend/pkg/cache"
	"dayscount-backend/pkg/dateutil"
	"dayscount-backend/pkg/logger"
	"dayscount-backend/pkg/sse"
)

const (
	minRoadmapDays = 1
	maxRoadmapDays = 365

	planCacheTTL = 24 * time.Hour
)

// roadmapUsecase implements RoadmapUsecase
type roadmapUsecase struct {
	roadmapRepo repository.RoadmapRepository
	planner     ai.PlannerService
	stats       statsUsecase.StatsUsecase
	planCache   *cache.Cache
	sseManager  *sse.Manager
}

// NewRoadmapUsecase creates a new instance of roadmapUsecase
func NewRoadmapUsecase(
	roadmapRepo repository.RoadmapRepository,
	planner ai.PlannerService,
	stats statsUsecase.StatsUsecase,
	planCache *cache.Cache,
	sseManager *sse.Manager,
) RoadmapUsecase {
	return &roadmapUsecase{
		roadmapRepo: roadmapRepo,
		planner:     planner,
		stats:       stats,
		planCache:   planCache,
		sseManager:  sseManager,
	}
}

func (u *roadmapUsecase) Generate(ctx context.Context, userID, goal string, days int, startDate *time.Time) (*domain.Roadmap, error) {
	goal = strings.TrimSpace(goal)
	if goal == "" {
		return nil, errors.New("goal is required")
	}
	if days < minRoadmapDays || days > maxRoadmapDays {
		return nil, fmt.Errorf("days must be between %d and %d", minRoadmapDays, maxRoadmapDays)
	}
	if u.planner == nil {
		return nil, errors.New("AI service not configured")
	}

	plan, err := u.generatePlan(ctx, goal, days)
	if err != nil {
		return nil, err
	}

	start := time.Now()
	if startDate != nil {
		start = *startDate
	}

	dailyTasks := make([]domain.DailyTask, 0, len(plan))
	for _, p := range plan {
		dailyTasks = append(dailyTasks, domain.DailyTask{
			Day:        p.Day,
			Task:       p.Task,
			Difficulty: p.Difficulty,
		})
	}

	roadmap := &domain.Roadmap{
		ID:         uuid.New().String(),
		UserID:     userID,
		Goal:       goal,
		Days:       days,
		StartDate:  dateutil.StartOfDay(start),
		DailyTasks: dailyTasks,
	}

	if err := u.roadmapRepo.Replace(roadmap); err != nil {
		return nil, err
	}

	logger.Log.Infow("roadmap generated", "user", userID, "days", days)
	u.notify(userID, roadmap, time.Now())
	return roadmap, nil
}

// generatePlan consults the Redis cache before spending an AI call. Plans
// are cached by goal and length, not by user.
func (u *roadmapUsecase) generatePlan(ctx context.Context, goal string, days int) ([]ai.PlannedDay, error) {
	key := planCacheKey(goal, days)

	if cached := u.planCache.Get(ctx, key); cached != "" {
		var plan []ai.PlannedDay
		if err := json.Unmarshal([]byte(cached), &plan); err == nil {
			logger.Log.Debugw("roadmap plan served from cache", "key", key)
			return plan, nil
		}
	}

	plan, err := u.planner.GenerateRoadmap(ctx, goal, days)
	if err != nil {
		return nil, err
	}

	if encoded, err := json.Marshal(plan); err == nil {
		u.planCache.Set(ctx, key, string(encoded), planCacheTTL)
	}
	return plan, nil
}

func planCacheKey(goal string, days int) string {
	sum := sha256.Sum256([]byte(strings.ToLower(goal)))
	return fmt.Sprintf("roadmap:%d:%x", days, sum[:8])
}

func (u *roadmapUsecase) Adjust(ctx context.Context, userID, feedback string, now time.Time) (*domain.Roadmap, error) {
	if u.planner == nil {
		return nil, errors.New("AI service not configured")
	}

	roadmap, err := u.roadmapRepo.FindByUserID(userID)
	if err != nil {
		return nil, err
	}
	if roadmap == nil {
		return nil, errors.New("roadmap not found")
	}

	currentDay := engine.CurrentDay(roadmap.StartDate, now)
	if currentDay >= roadmap.Days {
		return nil, errors.New("no remaining days to adjust")
	}

	replanned, err := u.planner.AdjustRoadmap(ctx, roadmap.Goal, roadmap.Days, currentDay, feedback)
	if err != nil {
		return nil, err
	}

	// keep history through the current day, splice in the new tail
	var merged []domain.DailyTask
	for _, t := range roadmap.DailyTasks {
		if t.Day <= currentDay {
			merged = append(merged, t)
		}
	}
	for _, p := range replanned {
		if p.Day <= currentDay {
			continue
		}
		merged = append(merged, domain.DailyTask{
			Day:        p.Day,
			Task:       p.Task,
			Difficulty: p.Difficulty,
		})
	}
	roadmap.DailyTasks = merged

	if err := u.roadmapRepo.UpdateTasks(roadmap); err != nil {
		return nil, err
	}

	logger.Log.Infow("roadmap adjusted", "user", userID, "fromDay", currentDay+1)
	u.notify(userID, roadmap, now)
	return roadmap, nil
}

func (u *roadmapUsecase) Get(userID string, now time.Time) (*RoadmapView, error) {
	roadmap, err := u.roadmapRepo.FindByUserID(userID)
	if err != nil {
		return nil, err
	}
	if roadmap == nil {
		return nil, errors.New("roadmap not found")
	}
	return u.view(roadmap, now), nil
}

func (u *roadmapUsecase) Backlog(userID string, now time.Time) ([]domain.DailyTask, error) {
	roadmap, err := u.roadmapRepo.FindByUserID(userID)
	if err != nil {
		return nil, err
	}
	if roadmap == nil {
		return nil, errors.New("roadmap not found")
	}

	currentDay := engine.CurrentDay(roadmap.StartDate, now)
	return engine.BacklogDays(roadmap.DailyTasks, currentDay), nil
}

func (u *roadmapUsecase) ToggleSubTask(userID string, day, subTaskIndex int, completed bool, now time.Time) (*RoadmapView, error) {
	roadmap, err := u.roadmapRepo.FindByUserID(userID)
	if err != nil {
		return nil, err
	}
	if roadmap == nil {
		return nil, errors.New("roadmap not found")
	}

	currentDay := engine.CurrentDay(roadmap.StartDate, now)
	wasComplete := engine.DayCompleted(roadmap.DailyTasks, currentDay)

	newTasks, ok := engine.MutateSubTask(roadmap.DailyTasks, day, subTaskIndex, engine.SubTaskPatch{Completed: &completed})
	if !ok {
		// unknown day or index: nothing to change, nothing to report
		return u.view(roadmap, now), nil
	}
	roadmap.DailyTasks = newTasks

	if err := u.roadmapRepo.UpdateTasks(roadmap); err != nil {
		return nil, err
	}

	// streak transitions fire only on the completion edge of the current day
	isComplete := engine.DayCompleted(newTasks, currentDay)
	if !wasComplete && isComplete {
		if _, _, err := u.stats.DayCompleted(userID, now); err != nil {
			logger.Log.Errorw("day-completed transition failed", "user", userID, "err", err)
		}
	} else if wasComplete && !isComplete {
		if _, err := u.stats.DayUncompleted(userID, now); err != nil {
			logger.Log.Errorw("day-uncompleted transition failed", "user", userID, "err", err)
		}
	}

	u.notify(userID, roadmap, now)
	return u.view(roadmap, now), nil
}

func (u *roadmapUsecase) AddStudyLog(userID string, day, subTaskIndex int, durationSeconds int64, now time.Time) (*RoadmapView, error) {
	if durationSeconds < 0 {
		return nil, errors.New("duration must not be negative")
	}
	log := domain.StudyLog{
		ID:        uuid.New().String(),
		Duration:  durationSeconds,
		Timestamp: now,
	}
	return u.mutateLogs(userID, now, func(tasks []domain.DailyTask) ([]domain.DailyTask, bool) {
		return engine.AddStudyLog(tasks, day, subTaskIndex, log)
	})
}

func (u *roadmapUsecase) EditStudyLog(userID string, day, subTaskIndex int, logID string, durationSeconds int64, now time.Time) (*RoadmapView, error) {
	if durationSeconds < 0 {
		return nil, errors.New("duration must not be negative")
	}
	return u.mutateLogs(userID, now, func(tasks []domain.DailyTask) ([]domain.DailyTask, bool) {
		return engine.EditStudyLog(tasks, day, subTaskIndex, logID, durationSeconds)
	})
}

func (u *roadmapUsecase) DeleteStudyLog(userID string, day, subTaskIndex int, logID string, now time.Time) (*RoadmapView, error) {
	return u.mutateLogs(userID, now, func(tasks []domain.DailyTask) ([]domain.DailyTask, bool) {
		return engine.DeleteStudyLog(tasks, day, subTaskIndex, logID)
	})
}

func (u *roadmapUsecase) mutateLogs(userID string, now time.Time, apply func([]domain.DailyTask) ([]domain.DailyTask, bool)) (*RoadmapView, error) {
	roadmap, err := u.roadmapRepo.FindByUserID(userID)
	if err != nil {
		return nil, err
	}
	if roadmap == nil {
		return nil, errors.New("roadmap not found")
	}

	newTasks, ok := apply(roadmap.DailyTasks)
	if !ok {
		return u.view(roadmap, now), nil
	}
	roadmap.DailyTasks = newTasks

	if err := u.roadmapRepo.UpdateTasks(roadmap); err != nil {
		return nil, err
	}

	if _, _, err := u.stats.RecordStudyTime(userID, engine.TotalStudyTime(newTasks)); err != nil {
		logger.Log.Errorw("study-time update failed", "user", userID, "err", err)
	}

	u.notify(userID, roadmap, now)
	return u.view(roadmap, now), nil
}

func (u *roadmapUsecase) view(roadmap *domain.Roadmap, now time.Time) *RoadmapView {
	currentDay := engine.CurrentDay(roadmap.StartDate, now)
	return &RoadmapView{
		Roadmap:    roadmap,
		CurrentDay: currentDay,
		HasBacklog: engine.HasIncompleteBacklog(roadmap.DailyTasks, currentDay),
	}
}

func (u *roadmapUsecase) notify(userID string, roadmap *domain.Roadmap, now time.Time) {
	if u.sseManager != nil {
		u.sseManager.SendToUser(userID, "roadmap_updated", u.view(roadmap, now))
	}
}
