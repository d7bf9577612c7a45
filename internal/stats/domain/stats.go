package domain

import "time"

// Stats is the per-user progress record: current streak, lifetime counters
// and unlocked achievement ids. Singleton per user.
type Stats struct {
	UserID               string     `json:"user_id" gorm:"primaryKey"`
	Streak               int        `json:"streak"`
	MaxStreak            int        `json:"max_streak"`
	CompletedMissions    int        `json:"completed_missions"`
	LastCompleted        *time.Time `json:"last_completed"`
	UnlockedAchievements []string   `json:"unlocked_achievements" gorm:"serializer:json"`
	TotalStudyTime       int64      `json:"total_study_time"` // seconds
	CreatedAt            time.Time  `json:"created_at"`
	UpdatedAt            time.Time  `json:"updated_at"`
}

// Unlocked reports whether the achievement id is already unlocked.
func (s Stats) Unlocked(id string) bool {
	for _, a := range s.UnlockedAchievements {
		if a == id {
			return true
		}
	}
	return false
}
