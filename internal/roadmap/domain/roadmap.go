package domain

import "time"

// Roadmap is the AI-generated day-by-day plan toward a goal. One roadmap is
// active per user; regeneration replaces it wholesale, subtask mutations
// merge into it incrementally.
type Roadmap struct {
	ID             string      `json:"id" gorm:"primaryKey"`
	UserID         string      `json:"user_id" gorm:"uniqueIndex;not null"`
	Goal           string      `json:"goal" gorm:"not null"`
	Days           int         `json:"days"`
	StartDate      time.Time   `json:"start_date"`
	DailyTasks     []DailyTask `json:"daily_tasks" gorm:"serializer:json"`
	LastRemindedAt *time.Time  `json:"last_reminded_at,omitempty"`
	CreatedAt      time.Time   `json:"created_at"`
	UpdatedAt      time.Time   `json:"updated_at"`
}

// DailyTask is one day of the roadmap. Task carries the day's subtasks as a
// semicolon-delimited string; SubTasks is materialized lazily from it on the
// first mutation. Completed is true iff every materialized subtask is
// completed.
type DailyTask struct {
	Day        int       `json:"day"`
	Task       string    `json:"task"`
	Difficulty string    `json:"difficulty"`
	Completed  bool      `json:"completed"`
	SubTasks   []SubTask `json:"subTasks,omitempty"`
}

// SubTask is one checkable item of a day, with its attached study logs.
type SubTask struct {
	Text      string     `json:"text"`
	Completed bool       `json:"completed"`
	StudyLogs []StudyLog `json:"studyLogs,omitempty"`
}

// StudyLog records one timed study session against a subtask.
type StudyLog struct {
	ID        string    `json:"id"`
	Duration  int64     `json:"duration"` // seconds
	Timestamp time.Time `json:"timestamp"`
}
