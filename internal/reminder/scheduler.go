package reminder

import (
	"context"
	"fmt"
	"time"

	authrepo "dayscount-backend/internal/auth/repository"
	"dayscount-backend/internal/roadmap/engine"
	roadmaprepo "dayscount-backend/internal/roadmap/repository"
	"dayscount-backend/pkg/dateutil"
	"dayscount-backend/pkg/fcm"
	"dayscount-backend/pkg/logger"
)

// Scheduler sends FCM reminders to users who have not finished the
// current day of their roadmap.
type Scheduler struct {
	roadmapRepo  roadmaprepo.RoadmapRepository
	fcmRepo      authrepo.FCMTokenRepository
	fcmClient    *fcm.Client
	interval     time.Duration
	reminderHour int
	stopChan     chan struct{}
}

// NewScheduler creates a new reminder scheduler. reminderHour is the
// local hour after which reminders may fire.
func NewScheduler(
	roadmapRepo roadmaprepo.RoadmapRepository,
	fcmRepo authrepo.FCMTokenRepository,
	fcmClient *fcm.Client,
	interval time.Duration,
	reminderHour int,
) *Scheduler {
	return &Scheduler{
		roadmapRepo:  roadmapRepo,
		fcmRepo:      fcmRepo,
		fcmClient:    fcmClient,
		interval:     interval,
		reminderHour: reminderHour,
		stopChan:     make(chan struct{}),
	}
}

// Start begins the scheduler loop
func (s *Scheduler) Start() {
	if s.fcmClient == nil {
		logger.Log.Info("reminder scheduler disabled: FCM client not available")
		return
	}

	logger.Log.Infow("starting reminder scheduler", "interval", s.interval, "hour", s.reminderHour)

	go func() {
		ticker := time.NewTicker(s.interval)
		defer ticker.Stop()

		for {
			select {
			case <-ticker.C:
				s.sweep(time.Now())
			case <-s.stopChan:
				logger.Log.Info("reminder scheduler stopped")
				return
			}
		}
	}()
}

// Stop gracefully stops the scheduler
func (s *Scheduler) Stop() {
	close(s.stopChan)
}

// sweep walks every roadmap and reminds users whose current day still
// has work left. Each user gets at most one reminder per day.
func (s *Scheduler) sweep(now time.Time) {
	if now.Hour() < s.reminderHour {
		return
	}

	roadmaps, err := s.roadmapRepo.FindAll()
	if err != nil {
		logger.Log.Errorw("reminder sweep failed to list roadmaps", "error", err)
		return
	}

	for _, roadmap := range roadmaps {
		if roadmap.LastRemindedAt != nil && dateutil.SameDay(*roadmap.LastRemindedAt, now) {
			continue
		}

		currentDay := engine.CurrentDay(roadmap.StartDate, now)
		if currentDay > roadmap.Days {
			continue
		}
		if engine.DayCompleted(roadmap.DailyTasks, currentDay) {
			continue
		}

		tokens, err := s.fcmRepo.GetTokensByUserID(roadmap.UserID)
		if err != nil {
			logger.Log.Errorw("reminder sweep failed to load tokens", "userId", roadmap.UserID, "error", err)
			continue
		}
		if len(tokens) == 0 {
			continue
		}

		var tokenStrings []string
		for _, t := range tokens {
			tokenStrings = append(tokenStrings, t.Token)
		}

		notification := fcm.NotificationData{
			Title: "Keep your streak going",
			Body:  fmt.Sprintf("Day %d of \"%s\" is still waiting for you.", currentDay, roadmap.Goal),
			Data: map[string]string{
				"type":         "daily_reminder",
				"day":          fmt.Sprintf("%d", currentDay),
				"click_action": "/roadmap",
			},
		}

		failedTokens, err := s.fcmClient.SendToDevices(context.Background(), tokenStrings, notification)
		if err != nil {
			logger.Log.Errorw("reminder send failed", "userId", roadmap.UserID, "error", err)
		} else {
			logger.Log.Infow("sent daily reminder", "userId", roadmap.UserID, "day", currentDay,
				"devices", len(tokenStrings)-len(failedTokens))
		}

		// Stale device tokens are pruned as FCM reports them.
		for _, token := range failedTokens {
			if err := s.fcmRepo.DeleteToken(token); err != nil {
				logger.Log.Errorw("failed to prune dead FCM token", "userId", roadmap.UserID, "error", err)
			}
		}

		if err := s.roadmapRepo.MarkReminded(roadmap.ID, now); err != nil {
			logger.Log.Errorw("failed to mark roadmap reminded", "roadmapId", roadmap.ID, "error", err)
		}
	}
}
