// Package engine holds the pure progress computations of the roadmap: which
// day the user is on, whether a backlog exists, and how a subtask mutation
// folds back into the day's task list. Nothing here performs I/O; every
// function takes its inputs explicitly and returns fresh values, so callers
// can diff old against new state for completion-edge detection.
package engine

import (
	"strings"
	"time"

	"dayscount-backend/internal/roadmap/domain"
	"dayscount-backend/pkg/dateutil"
)

// CurrentDay returns the 1-based roadmap day that now falls on.
func CurrentDay(start, now time.Time) int {
	return dateutil.DayNumber(start, now)
}

// HasIncompleteBacklog reports whether any day before currentDay still has
// incomplete tasks.
func HasIncompleteBacklog(tasks []domain.DailyTask, currentDay int) bool {
	for _, t := range tasks {
		if t.Day < currentDay && !t.Completed {
			return true
		}
	}
	return false
}

// BacklogDays returns the days before currentDay that still have incomplete
// tasks, in stored order.
func BacklogDays(tasks []domain.DailyTask, currentDay int) []domain.DailyTask {
	var out []domain.DailyTask
	for _, t := range tasks {
		if t.Day < currentDay && !t.Completed {
			out = append(out, t)
		}
	}
	return out
}

// DayCompleted reports whether every task for the given day is completed.
// A day with no tasks is not completed.
func DayCompleted(tasks []domain.DailyTask, day int) bool {
	found := false
	for _, t := range tasks {
		if t.Day != day {
			continue
		}
		found = true
		if !t.Completed {
			return false
		}
	}
	return found
}

// Reconcile materializes the subtask list for a day from its
// semicolon-delimited task text, preserving any previously materialized
// entry at the same index. Alignment is strictly by index: entries are never
// reordered or dropped, so a previously checked subtask keeps its state as
// long as the text keeps its position.
func Reconcile(text string, existing []domain.SubTask) []domain.SubTask {
	var out []domain.SubTask
	for _, part := range strings.Split(text, ";") {
		trimmed := strings.TrimSpace(part)
		if trimmed == "" {
			continue
		}
		st := domain.SubTask{Text: trimmed}
		if i := len(out); i < len(existing) {
			st.Completed = existing[i].Completed
			st.StudyLogs = existing[i].StudyLogs
		}
		out = append(out, st)
	}
	return out
}

// SubTaskPatch is a partial update to a subtask. Nil fields are left
// untouched.
type SubTaskPatch struct {
	Completed *bool
}

// MutateSubTask applies patch to the subtask at subTaskIndex of the task for
// day, and recomputes the day's Completed flag. The input slice is never
// modified; the result is a fresh slice with a deep copy of the affected
// day. A missing day or an out-of-range index is a no-op: the input is
// returned as-is and ok is false.
func MutateSubTask(tasks []domain.DailyTask, day, subTaskIndex int, patch SubTaskPatch) (out []domain.DailyTask, ok bool) {
	return mutate(tasks, day, subTaskIndex, func(st *domain.SubTask) {
		if patch.Completed != nil {
			st.Completed = *patch.Completed
		}
	})
}

// AddStudyLog appends a study log to the subtask at subTaskIndex of the task
// for day. The log must arrive fully formed (id and timestamp assigned by
// the caller). Missing day or out-of-range index is a no-op.
func AddStudyLog(tasks []domain.DailyTask, day, subTaskIndex int, log domain.StudyLog) ([]domain.DailyTask, bool) {
	return mutate(tasks, day, subTaskIndex, func(st *domain.SubTask) {
		st.StudyLogs = append(st.StudyLogs, log)
	})
}

// EditStudyLog replaces the duration of the study log with the given id.
// An unknown id is a silent no-op.
func EditStudyLog(tasks []domain.DailyTask, day, subTaskIndex int, logID string, duration int64) ([]domain.DailyTask, bool) {
	return mutate(tasks, day, subTaskIndex, func(st *domain.SubTask) {
		for i := range st.StudyLogs {
			if st.StudyLogs[i].ID == logID {
				st.StudyLogs[i].Duration = duration
				return
			}
		}
	})
}

// DeleteStudyLog removes the study log with the given id. An unknown id is a
// silent no-op.
func DeleteStudyLog(tasks []domain.DailyTask, day, subTaskIndex int, logID string) ([]domain.DailyTask, bool) {
	return mutate(tasks, day, subTaskIndex, func(st *domain.SubTask) {
		for i := range st.StudyLogs {
			if st.StudyLogs[i].ID == logID {
				st.StudyLogs = append(st.StudyLogs[:i:i], st.StudyLogs[i+1:]...)
				return
			}
		}
	})
}

// TotalStudyTime sums every study log duration across the roadmap, in
// seconds.
func TotalStudyTime(tasks []domain.DailyTask) int64 {
	var total int64
	for _, t := range tasks {
		for _, st := range t.SubTasks {
			for _, sl := range st.StudyLogs {
				total += sl.Duration
			}
		}
	}
	return total
}

func mutate(tasks []domain.DailyTask, day, subTaskIndex int, apply func(*domain.SubTask)) ([]domain.DailyTask, bool) {
	dayIdx := -1
	for i, t := range tasks {
		if t.Day == day {
			dayIdx = i
			break
		}
	}
	if dayIdx == -1 {
		return tasks, false
	}

	target := copyDailyTask(tasks[dayIdx])
	target.SubTasks = Reconcile(target.Task, target.SubTasks)

	if subTaskIndex < 0 || subTaskIndex >= len(target.SubTasks) {
		return tasks, false
	}

	apply(&target.SubTasks[subTaskIndex])

	target.Completed = true
	for _, st := range target.SubTasks {
		if !st.Completed {
			target.Completed = false
			break
		}
	}

	out := make([]domain.DailyTask, len(tasks))
	copy(out, tasks)
	out[dayIdx] = target
	return out, true
}

func copyDailyTask(t domain.DailyTask) domain.DailyTask {
	if t.SubTasks != nil {
		subs := make([]domain.SubTask, len(t.SubTasks))
		copy(subs, t.SubTasks)
		for i := range subs {
			if subs[i].StudyLogs != nil {
				logs := make([]domain.StudyLog, len(subs[i].StudyLogs))
				copy(logs, subs[i].StudyLogs)
				subs[i].StudyLogs = logs
			}
		}
		t.SubTasks = subs
	}
	return t
}
