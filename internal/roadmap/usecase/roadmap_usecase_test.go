package usecase

import (
	"testing"
	"time"

	missiondomain "dayscount-backend/internal/mission/domain"
	"dayscount-backend/internal/roadmap/domain"
	"dayscount-backend/internal/roadmap/repository"
	statsdomain "dayscount-backend/internal/stats/domain"
	statsUsecase "dayscount-backend/internal/stats/usecase"
)

type fakeRoadmapRepo struct {
	roadmap *domain.Roadmap
	updates int
}

func (r *fakeRoadmapRepo) FindByUserID(userID string) (*domain.Roadmap, error) {
	if r.roadmap != nil && r.roadmap.UserID == userID {
		return r.roadmap, nil
	}
	return nil, nil
}

func (r *fakeRoadmapRepo) Replace(roadmap *domain.Roadmap) error {
	r.roadmap = roadmap
	return nil
}

func (r *fakeRoadmapRepo) UpdateTasks(roadmap *domain.Roadmap) error {
	r.roadmap = roadmap
	r.updates++
	return nil
}

func (r *fakeRoadmapRepo) FindAll() ([]*domain.Roadmap, error) {
	if r.roadmap == nil {
		return nil, nil
	}
	return []*domain.Roadmap{r.roadmap}, nil
}

func (r *fakeRoadmapRepo) MarkReminded(id string, at time.Time) error {
	return nil
}

// fakeStats records which streak transitions the roadmap usecase fires.
type fakeStats struct {
	completed   int
	uncompleted int
	studyTotals []int64
}

func (s *fakeStats) Get(userID string, now time.Time) (*statsdomain.Stats, error) {
	return &statsdomain.Stats{UserID: userID}, nil
}

func (s *fakeStats) DayCompleted(userID string, now time.Time) (*statsdomain.Stats, []string, error) {
	s.completed++
	return &statsdomain.Stats{UserID: userID}, nil, nil
}

func (s *fakeStats) DayUncompleted(userID string, now time.Time) (*statsdomain.Stats, error) {
	s.uncompleted++
	return &statsdomain.Stats{UserID: userID}, nil
}

func (s *fakeStats) MissionArchived(userID string, m missiondomain.Mission) (*statsdomain.Stats, []string, error) {
	return &statsdomain.Stats{UserID: userID}, nil, nil
}

func (s *fakeStats) RecordStudyTime(userID string, totalSeconds int64) (*statsdomain.Stats, []string, error) {
	s.studyTotals = append(s.studyTotals, totalSeconds)
	return &statsdomain.Stats{UserID: userID}, nil, nil
}

func (s *fakeStats) Achievements() []statsdomain.Achievement {
	return statsdomain.Catalog
}

var _ repository.RoadmapRepository = (*fakeRoadmapRepo)(nil)
var _ statsUsecase.StatsUsecase = (*fakeStats)(nil)

// testRoadmap starts 2024-01-01, so noon on 2024-01-03 is day 3. Day 1 is
// left incomplete, day 3 has one open subtask.
func testRoadmap() *domain.Roadmap {
	return &domain.Roadmap{
		ID:        "r1",
		UserID:    "u1",
		Goal:      "learn go",
		Days:      5,
		StartDate: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
		DailyTasks: []domain.DailyTask{
			{Day: 1, Task: "Intro", SubTasks: []domain.SubTask{
				{Text: "Intro", Completed: false},
			}},
			{Day: 3, Task: "A;B", SubTasks: []domain.SubTask{
				{Text: "A", Completed: true},
				{Text: "B", Completed: false},
			}},
		},
	}
}

func newToggleFixture() (RoadmapUsecase, *fakeRoadmapRepo, *fakeStats) {
	repo := &fakeRoadmapRepo{roadmap: testRoadmap()}
	stats := &fakeStats{}
	uc := NewRoadmapUsecase(repo, nil, stats, nil, nil)
	return uc, repo, stats
}

func TestToggleSubTaskFiresCompletionEdge(t *testing.T) {
	uc, repo, stats := newToggleFixture()
	now := time.Date(2024, 1, 3, 12, 0, 0, 0, time.UTC)

	// checking the last open subtask of the current day completes it
	view, err := uc.ToggleSubTask("u1", 3, 1, true, now)
	if err != nil {
		t.Fatalf("ToggleSubTask: %v", err)
	}
	if stats.completed != 1 {
		t.Errorf("DayCompleted fired %d times, want 1", stats.completed)
	}
	if stats.uncompleted != 0 {
		t.Errorf("DayUncompleted fired %d times, want 0", stats.uncompleted)
	}
	if view.CurrentDay != 3 {
		t.Errorf("CurrentDay = %d, want 3", view.CurrentDay)
	}
	if repo.updates != 1 {
		t.Errorf("UpdateTasks called %d times, want 1", repo.updates)
	}

	// unchecking the same subtask reverts the day and fires the reverse edge
	if _, err := uc.ToggleSubTask("u1", 3, 1, false, now); err != nil {
		t.Fatalf("ToggleSubTask: %v", err)
	}
	if stats.uncompleted != 1 {
		t.Errorf("DayUncompleted fired %d times, want 1", stats.uncompleted)
	}
	if stats.completed != 1 {
		t.Errorf("DayCompleted fired %d times, want 1", stats.completed)
	}
}

func TestToggleSubTaskNoEdgeWithoutFullDay(t *testing.T) {
	uc, _, stats := newToggleFixture()
	now := time.Date(2024, 1, 3, 12, 0, 0, 0, time.UTC)

	// unchecking an already-checked subtask leaves the day incomplete both
	// before and after, so no transition fires
	if _, err := uc.ToggleSubTask("u1", 3, 0, false, now); err != nil {
		t.Fatalf("ToggleSubTask: %v", err)
	}
	if stats.completed != 0 || stats.uncompleted != 0 {
		t.Errorf("transitions fired (%d completed, %d uncompleted), want none",
			stats.completed, stats.uncompleted)
	}
}

func TestToggleSubTaskPastDayNeverReachesTracker(t *testing.T) {
	uc, repo, stats := newToggleFixture()
	now := time.Date(2024, 1, 3, 12, 0, 0, 0, time.UTC)

	// completing day 1 while the user is on day 3 updates task state but
	// must not touch the streak in either direction
	view, err := uc.ToggleSubTask("u1", 1, 0, true, now)
	if err != nil {
		t.Fatalf("ToggleSubTask: %v", err)
	}
	if stats.completed != 0 || stats.uncompleted != 0 {
		t.Errorf("past-day toggle fired transitions (%d completed, %d uncompleted), want none",
			stats.completed, stats.uncompleted)
	}
	if !view.DailyTasks[0].Completed {
		t.Error("day 1 should be completed after its only subtask is checked")
	}
	if repo.updates != 1 {
		t.Errorf("UpdateTasks called %d times, want 1", repo.updates)
	}

	// and unchecking it again stays away from the tracker too
	if _, err := uc.ToggleSubTask("u1", 1, 0, false, now); err != nil {
		t.Fatalf("ToggleSubTask: %v", err)
	}
	if stats.completed != 0 || stats.uncompleted != 0 {
		t.Error("past-day uncheck reached the tracker")
	}
}

func TestToggleSubTaskUnknownTargetIsNoOp(t *testing.T) {
	uc, repo, stats := newToggleFixture()
	now := time.Date(2024, 1, 3, 12, 0, 0, 0, time.UTC)

	testCases := []struct {
		name  string
		day   int
		index int
	}{
		{"missing day", 4, 0},
		{"index out of range", 3, 9},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			view, err := uc.ToggleSubTask("u1", tc.day, tc.index, true, now)
			if err != nil {
				t.Fatalf("ToggleSubTask: %v", err)
			}
			if view == nil {
				t.Fatal("expected the unchanged view back")
			}
			if repo.updates != 0 {
				t.Errorf("UpdateTasks called %d times, want 0", repo.updates)
			}
			if stats.completed != 0 || stats.uncompleted != 0 {
				t.Error("no-op toggle reached the tracker")
			}
		})
	}
}
