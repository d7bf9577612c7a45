package engine

import (
	"reflect"
	"testing"
	"time"

	"dayscount-backend/internal/roadmap/domain"
)

func boolPtr(b bool) *bool { return &b }

func sampleTasks() []domain.DailyTask {
	return []domain.DailyTask{
		{Day: 1, Task: "Read intro; Set up workspace", Completed: true, SubTasks: []domain.SubTask{
			{Text: "Read intro", Completed: true},
			{Text: "Set up workspace", Completed: true},
		}},
		{Day: 2, Task: "A;B;C", SubTasks: []domain.SubTask{
			{Text: "A", Completed: true},
			{Text: "B", Completed: false},
			{Text: "C", Completed: true},
		}},
		{Day: 3, Task: "Review; Practice"},
	}
}

func TestCurrentDay(t *testing.T) {
	start := time.Date(2024, 1, 1, 0, 0, 0, 0, time.Local)
	now := time.Date(2024, 1, 4, 0, 0, 0, 0, time.Local)
	if got := CurrentDay(start, now); got != 4 {
		t.Errorf("CurrentDay = %d, want 4", got)
	}
}

func TestHasIncompleteBacklog(t *testing.T) {
	tasks := sampleTasks()

	testCases := []struct {
		name       string
		currentDay int
		expected   bool
	}{
		{"day 1: nothing before it", 1, false},
		{"day 2: day 1 is complete", 2, false},
		{"day 3: day 2 incomplete", 3, true},
		{"far future: still flagged", 10, true},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if got := HasIncompleteBacklog(tasks, tc.currentDay); got != tc.expected {
				t.Errorf("HasIncompleteBacklog(currentDay=%d) = %v, want %v", tc.currentDay, got, tc.expected)
			}
		})
	}
}

func TestBacklogDays(t *testing.T) {
	tasks := sampleTasks()

	if got := BacklogDays(tasks, 1); len(got) != 0 {
		t.Errorf("day 1 backlog = %d days, want 0", len(got))
	}
	got := BacklogDays(tasks, 4)
	if len(got) != 2 {
		t.Fatalf("day 4 backlog = %d days, want 2", len(got))
	}
	if got[0].Day != 2 || got[1].Day != 3 {
		t.Errorf("backlog days = %d,%d, want 2,3", got[0].Day, got[1].Day)
	}
}

func TestDayCompleted(t *testing.T) {
	tasks := sampleTasks()
	if !DayCompleted(tasks, 1) {
		t.Error("day 1 should be completed")
	}
	if DayCompleted(tasks, 2) {
		t.Error("day 2 should not be completed")
	}
	if DayCompleted(tasks, 99) {
		t.Error("a missing day is never completed")
	}
}

func TestReconcile(t *testing.T) {
	existing := []domain.SubTask{
		{Text: "old A", Completed: true, StudyLogs: []domain.StudyLog{{ID: "l1", Duration: 60}}},
		{Text: "old B", Completed: false},
	}

	got := Reconcile("A ; B;C", existing)
	if len(got) != 3 {
		t.Fatalf("expected 3 subtasks, got %d", len(got))
	}
	if got[0].Text != "A" || got[1].Text != "B" || got[2].Text != "C" {
		t.Errorf("unexpected texts: %+v", got)
	}
	// index alignment: state carries over positionally
	if !got[0].Completed || len(got[0].StudyLogs) != 1 {
		t.Error("subtask 0 should keep its completion state and logs")
	}
	if got[1].Completed {
		t.Error("subtask 1 should stay incomplete")
	}
	if got[2].Completed {
		t.Error("subtask 2 is new and must default to incomplete")
	}
}

func TestReconcileSkipsEmptySegments(t *testing.T) {
	got := Reconcile("A;;  ;B", nil)
	if len(got) != 2 {
		t.Fatalf("expected 2 subtasks, got %d", len(got))
	}
}

func TestMutateSubTaskCompletesDay(t *testing.T) {
	tasks := sampleTasks()

	// day 2 is "A;B;C" with only B unchecked; checking B completes the day
	out, ok := MutateSubTask(tasks, 2, 1, SubTaskPatch{Completed: boolPtr(true)})
	if !ok {
		t.Fatal("expected mutation to apply")
	}
	if !out[1].Completed {
		t.Error("day 2 should be completed after last subtask checked")
	}

	// input must be untouched
	if tasks[1].Completed {
		t.Error("input slice was mutated")
	}
	if tasks[1].SubTasks[1].Completed {
		t.Error("input subtask was mutated")
	}
}

func TestMutateSubTaskIdempotent(t *testing.T) {
	tasks := sampleTasks()
	patch := SubTaskPatch{Completed: boolPtr(true)}

	once, _ := MutateSubTask(tasks, 2, 1, patch)
	twice, _ := MutateSubTask(once, 2, 1, patch)
	if !reflect.DeepEqual(once, twice) {
		t.Error("applying the same patch twice changed the result")
	}
}

func TestMutateSubTaskMaterializes(t *testing.T) {
	tasks := sampleTasks()

	// day 3 has no materialized subtasks yet
	out, ok := MutateSubTask(tasks, 3, 0, SubTaskPatch{Completed: boolPtr(true)})
	if !ok {
		t.Fatal("expected mutation to apply")
	}
	if len(out[2].SubTasks) != 2 {
		t.Fatalf("expected 2 materialized subtasks, got %d", len(out[2].SubTasks))
	}
	if !out[2].SubTasks[0].Completed || out[2].SubTasks[1].Completed {
		t.Error("only subtask 0 should be completed")
	}
	if out[2].Completed {
		t.Error("day 3 is not fully complete")
	}
}

func TestMutateSubTaskNoOps(t *testing.T) {
	tasks := sampleTasks()

	out, ok := MutateSubTask(tasks, 42, 0, SubTaskPatch{Completed: boolPtr(true)})
	if ok || !reflect.DeepEqual(out, tasks) {
		t.Error("missing day must be a no-op")
	}

	out, ok = MutateSubTask(tasks, 2, 99, SubTaskPatch{Completed: boolPtr(true)})
	if ok || !reflect.DeepEqual(out, tasks) {
		t.Error("out-of-range index must be a no-op")
	}

	out, ok = MutateSubTask(tasks, 2, -1, SubTaskPatch{Completed: boolPtr(true)})
	if ok || !reflect.DeepEqual(out, tasks) {
		t.Error("negative index must be a no-op")
	}
}

func TestCompletedInvariant(t *testing.T) {
	// Completed must equal "all subtasks completed" after every mutation.
	tasks := sampleTasks()
	steps := []struct {
		day, idx  int
		completed bool
	}{
		{2, 1, true},
		{2, 0, false},
		{2, 0, true},
		{3, 0, true},
		{3, 1, true},
		{3, 1, false},
	}

	for _, s := range steps {
		var ok bool
		tasks, ok = MutateSubTask(tasks, s.day, s.idx, SubTaskPatch{Completed: &s.completed})
		if !ok {
			t.Fatalf("mutation (%d,%d) did not apply", s.day, s.idx)
		}
		for _, dt := range tasks {
			if dt.SubTasks == nil {
				continue
			}
			all := true
			for _, st := range dt.SubTasks {
				if !st.Completed {
					all = false
					break
				}
			}
			if dt.Completed != all {
				t.Fatalf("day %d: Completed=%v but subtasks-all-complete=%v", dt.Day, dt.Completed, all)
			}
		}
	}
}

func TestStudyLogLifecycle(t *testing.T) {
	tasks := sampleTasks()
	now := time.Date(2024, 2, 1, 9, 0, 0, 0, time.Local)

	tasks, ok := AddStudyLog(tasks, 2, 0, domain.StudyLog{ID: "log-1", Duration: 1500, Timestamp: now})
	if !ok {
		t.Fatal("expected add to apply")
	}
	tasks, _ = AddStudyLog(tasks, 2, 0, domain.StudyLog{ID: "log-2", Duration: 300, Timestamp: now})

	if got := TotalStudyTime(tasks); got != 1800 {
		t.Errorf("TotalStudyTime = %d, want 1800", got)
	}

	tasks, _ = EditStudyLog(tasks, 2, 0, "log-1", 600)
	if got := TotalStudyTime(tasks); got != 900 {
		t.Errorf("TotalStudyTime after edit = %d, want 900", got)
	}

	// unknown id: silent no-op
	before := TotalStudyTime(tasks)
	tasks, _ = EditStudyLog(tasks, 2, 0, "nope", 9999)
	tasks, _ = DeleteStudyLog(tasks, 2, 0, "nope")
	if TotalStudyTime(tasks) != before {
		t.Error("unknown log id must not change anything")
	}

	tasks, _ = DeleteStudyLog(tasks, 2, 0, "log-2")
	if got := TotalStudyTime(tasks); got != 600 {
		t.Errorf("TotalStudyTime after delete = %d, want 600", got)
	}
	if len(tasks[1].SubTasks[0].StudyLogs) != 1 {
		t.Errorf("expected 1 remaining log, got %d", len(tasks[1].SubTasks[0].StudyLogs))
	}
}

func TestStudyLogDoesNotFlipCompletion(t *testing.T) {
	tasks := sampleTasks()
	out, _ := AddStudyLog(tasks, 2, 1, domain.StudyLog{ID: "l", Duration: 60, Timestamp: time.Now()})
	if out[1].Completed {
		t.Error("adding a study log must not complete the day")
	}
	if out[1].SubTasks[1].Completed {
		t.Error("adding a study log must not complete the subtask")
	}
}
