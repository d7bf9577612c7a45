package tracker

import (
	"reflect"
	"testing"
	"time"

	missiondomain "dayscount-backend/internal/mission/domain"
	"dayscount-backend/internal/stats/domain"
)

var today = time.Date(2024, 6, 10, 20, 30, 0, 0, time.Local)

func daysAgo(n int) *time.Time {
	t := today.AddDate(0, 0, -n)
	return &t
}

func TestOnDayCompleted(t *testing.T) {
	testCases := []struct {
		name           string
		stats          domain.Stats
		expectedStreak int
	}{
		{"first ever completion", domain.Stats{}, 1},
		{"continues from yesterday", domain.Stats{Streak: 5, LastCompleted: daysAgo(1)}, 6},
		{"broken streak restarts", domain.Stats{Streak: 5, LastCompleted: daysAgo(3)}, 1},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got, _ := OnDayCompleted(tc.stats, today)
			if got.Streak != tc.expectedStreak {
				t.Errorf("Streak = %d, want %d", got.Streak, tc.expectedStreak)
			}
			if got.LastCompleted == nil || !got.LastCompleted.Equal(today) {
				t.Errorf("LastCompleted = %v, want %v", got.LastCompleted, today)
			}
		})
	}
}

func TestOnDayCompletedIdempotentSameDay(t *testing.T) {
	s, _ := OnDayCompleted(domain.Stats{Streak: 5, LastCompleted: daysAgo(1)}, today)
	again, newly := OnDayCompleted(s, today)
	if again.Streak != s.Streak {
		t.Errorf("second same-day completion changed streak: %d → %d", s.Streak, again.Streak)
	}
	if len(newly) != 0 {
		t.Errorf("second same-day completion unlocked %v", newly)
	}
}

func TestOnDayCompletedThresholds(t *testing.T) {
	// a streak going 5 to 6 keeps streak_3 unlocked and stays short of streak_7
	s := domain.Stats{Streak: 5, LastCompleted: daysAgo(1), UnlockedAchievements: []string{"streak_3"}}
	got, newly := OnDayCompleted(s, today)
	if got.Streak != 6 {
		t.Fatalf("Streak = %d, want 6", got.Streak)
	}
	if !got.Unlocked("streak_3") {
		t.Error("streak_3 must stay unlocked")
	}
	if got.Unlocked("streak_7") {
		t.Error("streak_7 must not unlock at streak 6")
	}
	if len(newly) != 0 {
		t.Errorf("no new unlocks expected, got %v", newly)
	}

	got, newly = OnDayCompleted(domain.Stats{Streak: 6, LastCompleted: daysAgo(1)}, today)
	if !got.Unlocked("streak_7") || len(newly) != 1 || newly[0] != "streak_7" {
		t.Errorf("streak_7 should unlock at streak 7, newly=%v", newly)
	}
}

func TestOnDayCompletedMaxStreak(t *testing.T) {
	got, _ := OnDayCompleted(domain.Stats{Streak: 9, MaxStreak: 9, LastCompleted: daysAgo(1)}, today)
	if got.MaxStreak != 10 {
		t.Errorf("MaxStreak = %d, want 10", got.MaxStreak)
	}

	got, _ = OnDayCompleted(domain.Stats{Streak: 2, MaxStreak: 20, LastCompleted: daysAgo(1)}, today)
	if got.MaxStreak != 20 {
		t.Errorf("MaxStreak = %d, want 20 (unchanged)", got.MaxStreak)
	}
}

func TestOnDayUncompletedRoundTrip(t *testing.T) {
	// round-trip law: complete then immediately uncomplete restores the
	// streak, provided the day was not already completed beforehand
	before := domain.Stats{Streak: 5, LastCompleted: daysAgo(1)}
	completed, _ := OnDayCompleted(before, today)
	reverted := OnDayUncompleted(completed, today)

	if reverted.Streak != before.Streak {
		t.Errorf("Streak = %d, want %d", reverted.Streak, before.Streak)
	}
	if reverted.LastCompleted == nil {
		t.Fatal("LastCompleted should roll back to the previous day, not nil")
	}
	if !reverted.LastCompleted.Before(today) {
		t.Error("LastCompleted should no longer be today")
	}
}

func TestOnDayUncompletedFirstCompletion(t *testing.T) {
	completed, _ := OnDayCompleted(domain.Stats{}, today)
	reverted := OnDayUncompleted(completed, today)
	if reverted.Streak != 0 {
		t.Errorf("Streak = %d, want 0", reverted.Streak)
	}
	if reverted.LastCompleted != nil {
		t.Error("LastCompleted should clear when the streak drops to 0")
	}
}

func TestOnDayUncompletedOnlySameDay(t *testing.T) {
	// a completion from a previous day must never be reversed
	s := domain.Stats{Streak: 5, LastCompleted: daysAgo(1)}
	got := OnDayUncompleted(s, today)
	if !reflect.DeepEqual(got, s) {
		t.Errorf("prior-day completion was reversed: %+v", got)
	}

	got = OnDayUncompleted(domain.Stats{}, today)
	if got.Streak != 0 || got.LastCompleted != nil {
		t.Error("uncompleting with no completion on record must be a no-op")
	}
}

func TestOnMissionArchived(t *testing.T) {
	s, newly := OnMissionArchived(domain.Stats{}, missiondomain.Mission{Priority: missiondomain.PriorityMedium})
	if s.CompletedMissions != 1 {
		t.Errorf("CompletedMissions = %d, want 1", s.CompletedMissions)
	}
	if len(newly) != 1 || newly[0] != "mission_1" {
		t.Errorf("expected mission_1 unlock, got %v", newly)
	}

	s, newly = OnMissionArchived(s, missiondomain.Mission{Priority: missiondomain.PriorityExtreme})
	if !s.Unlocked("extreme_1") {
		t.Error("extreme mission should unlock extreme_1")
	}
	if s.CompletedMissions != 2 {
		t.Errorf("CompletedMissions = %d, want 2", s.CompletedMissions)
	}
	for _, id := range newly {
		if id == "mission_1" {
			t.Error("mission_1 must not unlock twice")
		}
	}
}

func TestRecordStudyTime(t *testing.T) {
	s, newly := RecordStudyTime(domain.Stats{}, 9*3600)
	if len(newly) != 0 {
		t.Errorf("9h should not unlock study_10h, got %v", newly)
	}
	s, newly = RecordStudyTime(s, 10*3600)
	if len(newly) != 1 || newly[0] != "study_10h" {
		t.Errorf("10h should unlock study_10h, got %v", newly)
	}
	if s.TotalStudyTime != 10*3600 {
		t.Errorf("TotalStudyTime = %d", s.TotalStudyTime)
	}
}

func TestSweepStale(t *testing.T) {
	testCases := []struct {
		name            string
		stats           domain.Stats
		expectedStreak  int
		expectedChanged bool
	}{
		{"completed today", domain.Stats{Streak: 4, LastCompleted: daysAgo(0)}, 4, false},
		{"completed yesterday", domain.Stats{Streak: 4, LastCompleted: daysAgo(1)}, 4, false},
		{"ten days silent", domain.Stats{Streak: 4, CompletedMissions: 3, LastCompleted: daysAgo(10)}, 0, true},
		{"no completion on record", domain.Stats{}, 0, false},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got, changed := SweepStale(tc.stats, today)
			if got.Streak != tc.expectedStreak || changed != tc.expectedChanged {
				t.Errorf("SweepStale = (streak %d, changed %v), want (%d, %v)",
					got.Streak, changed, tc.expectedStreak, tc.expectedChanged)
			}
			if got.CompletedMissions != tc.stats.CompletedMissions {
				t.Error("sweep must not touch mission counters")
			}
			if !reflect.DeepEqual(got.UnlockedAchievements, tc.stats.UnlockedAchievements) {
				t.Error("sweep must not touch achievements")
			}
		})
	}
}

func TestAchievementsMonotonic(t *testing.T) {
	s := domain.Stats{UnlockedAchievements: []string{"streak_3", "mission_1"}}

	sizeBefore := len(s.UnlockedAchievements)
	ops := []func(domain.Stats) domain.Stats{
		func(s domain.Stats) domain.Stats { out, _ := OnDayCompleted(s, today); return out },
		func(s domain.Stats) domain.Stats { return OnDayUncompleted(s, today) },
		func(s domain.Stats) domain.Stats {
			out, _ := OnMissionArchived(s, missiondomain.Mission{Priority: missiondomain.PriorityExtreme})
			return out
		},
		func(s domain.Stats) domain.Stats { out, _ := SweepStale(s, today); return out },
		func(s domain.Stats) domain.Stats { out, _ := RecordStudyTime(s, 50*3600); return out },
	}

	for i, op := range ops {
		s = op(s)
		if len(s.UnlockedAchievements) < sizeBefore {
			t.Fatalf("op %d shrank the unlocked set", i)
		}
		for _, id := range []string{"streak_3", "mission_1"} {
			if !s.Unlocked(id) {
				t.Fatalf("op %d removed %s", i, id)
			}
		}
		sizeBefore = len(s.UnlockedAchievements)
	}
}
