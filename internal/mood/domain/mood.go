package domain

import "time"

// MoodEntry is one journaled mood check-in.
type MoodEntry struct {
	ID        string    `json:"id" gorm:"primaryKey"`
	UserID    string    `json:"user_id" gorm:"index;not null"`
	Mood      string    `json:"mood" gorm:"not null"` // e.g. "great", "good", "okay", "low", "rough"
	Note      string    `json:"note,omitempty"`
	LoggedAt  time.Time `json:"logged_at"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
