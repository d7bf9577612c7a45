// Package tracker holds the streak and achievement state machine. Every
// operation is a pure transform: the caller supplies the previous record and
// the evaluation time, and gets back the new record plus the ids unlocked by
// the transition. Achievements are monotonic: once unlocked, an id is never
// removed.
package tracker

import (
	"time"

	missiondomain "dayscount-backend/internal/mission/domain"
	"dayscount-backend/internal/stats/domain"
	"dayscount-backend/pkg/dateutil"
)

var streakThresholds = map[int]string{
	3:   "streak_3",
	7:   "streak_7",
	14:  "streak_14",
	30:  "streak_30",
	100: "streak_100",
}

var missionThresholds = map[int]string{
	1:  "mission_1",
	5:  "mission_5",
	10: "mission_10",
	25: "mission_25",
}

const studyTimeThreshold = 10 * 3600 // study_10h, in seconds

// OnDayCompleted records the false→true completion edge of the current day.
// Duplicate triggers on the same day are no-ops, so the transition is safe
// to fire on every checkbox toggle.
func OnDayCompleted(s domain.Stats, now time.Time) (domain.Stats, []string) {
	if s.LastCompleted != nil && dateutil.SameDay(*s.LastCompleted, now) {
		return s, nil
	}

	if s.LastCompleted != nil && dateutil.IsYesterday(*s.LastCompleted, now) {
		s.Streak++
	} else {
		s.Streak = 1
	}
	if s.Streak > s.MaxStreak {
		s.MaxStreak = s.Streak
	}
	completed := now
	s.LastCompleted = &completed

	var newly []string
	if id, ok := streakThresholds[s.Streak]; ok {
		s, newly = unlock(s, newly, id)
	}
	return s, newly
}

// OnDayUncompleted reverts a same-day completion, e.g. the user unchecked
// the last remaining subtask of a day that was already complete. It only
// applies when LastCompleted is today: increments earned on previous days
// are never reversed. Unchecking a day other than today leaves the streak
// untouched.
func OnDayUncompleted(s domain.Stats, now time.Time) domain.Stats {
	if s.LastCompleted == nil || !dateutil.SameDay(*s.LastCompleted, now) {
		return s
	}

	if s.Streak > 0 {
		s.Streak--
	}
	if s.Streak > 0 {
		prev := dateutil.StartOfDay(now).AddDate(0, 0, -1)
		s.LastCompleted = &prev
	} else {
		s.LastCompleted = nil
	}
	return s
}

// OnMissionArchived counts a completed mission and unlocks mission-count
// thresholds, plus extreme_1 for extreme-priority missions.
func OnMissionArchived(s domain.Stats, m missiondomain.Mission) (domain.Stats, []string) {
	s.CompletedMissions++

	var newly []string
	if id, ok := missionThresholds[s.CompletedMissions]; ok {
		s, newly = unlock(s, newly, id)
	}
	if m.Priority == missiondomain.PriorityExtreme {
		s, newly = unlock(s, newly, "extreme_1")
	}
	return s, newly
}

// RecordStudyTime replaces the lifetime study-time total and unlocks the
// study milestone once the threshold is crossed. The total is absolute, not
// a delta, so replays are harmless.
func RecordStudyTime(s domain.Stats, totalSeconds int64) (domain.Stats, []string) {
	s.TotalStudyTime = totalSeconds

	var newly []string
	if s.TotalStudyTime >= studyTimeThreshold {
		s, newly = unlock(s, newly, "study_10h")
	}
	return s, newly
}

// SweepStale zeroes a streak whose last completion is neither today nor
// yesterday. Applied lazily on every stats read; counters and achievements
// are never touched.
func SweepStale(s domain.Stats, now time.Time) (domain.Stats, bool) {
	if s.Streak == 0 || s.LastCompleted == nil {
		return s, false
	}
	if dateutil.SameDay(*s.LastCompleted, now) || dateutil.IsYesterday(*s.LastCompleted, now) {
		return s, false
	}
	s.Streak = 0
	return s, true
}

// unlock appends id to the unlocked set if new. The slice is copied before
// growing so the caller's previous Stats value stays intact.
func unlock(s domain.Stats, newly []string, id string) (domain.Stats, []string) {
	if s.Unlocked(id) {
		return s, newly
	}
	unlocked := make([]string, len(s.UnlockedAchievements), len(s.UnlockedAchievements)+1)
	copy(unlocked, s.UnlockedAchievements)
	s.UnlockedAchievements = append(unlocked, id)
	return s, append(newly, id)
}
