package domain

import "time"

// Priority represents mission priority level
type Priority string

const (
	PriorityLow     Priority = "low"
	PriorityMedium  Priority = "medium"
	PriorityHigh    Priority = "high"
	PriorityExtreme Priority = "extreme"
)

// MissionStatus represents the current state of a mission
type MissionStatus string

const (
	MissionStatusActive   MissionStatus = "active"
	MissionStatusArchived MissionStatus = "archived"
)

// Mission is a deadline-bound goal owned by a single user. Archiving marks
// it completed and feeds the mission counters of the stats tracker.
type Mission struct {
	ID         string        `json:"id" gorm:"primaryKey"`
	UserID     string        `json:"user_id" gorm:"index;not null"`
	Title      string        `json:"title" gorm:"not null"`
	Category   string        `json:"category,omitempty"`
	Priority   Priority      `json:"priority" gorm:"default:medium"`
	Status     MissionStatus `json:"status" gorm:"default:active"`
	StartDate  time.Time     `json:"start_date"`
	TargetDate time.Time     `json:"target_date"`
	ArchivedAt *time.Time    `json:"archived_at,omitempty"`
	CreatedAt  time.Time     `json:"created_at"`
	UpdatedAt  time.Time     `json:"updated_at"`
}
