package ai

import "context"

// PlannedDay is one day of a generated roadmap (shared type). Task holds a
// semicolon-delimited list of the day's subtasks.
type PlannedDay struct {
	Day        int    `json:"day"`
	Task       string `json:"task"`
	Difficulty string `json:"difficulty"`
}

// PlannerService is the interface for AI roadmap generation.
// Implement this interface to add new AI providers (Gemini, Ollama, etc.)
type PlannerService interface {
	// GenerateRoadmap produces a day-by-day plan toward goal, one entry per
	// day from 1 to days.
	GenerateRoadmap(ctx context.Context, goal string, days int) ([]PlannedDay, error)

	// AdjustRoadmap re-plans the days after currentDay, taking user feedback
	// into account. Days up to and including currentDay are left to the
	// caller to preserve.
	AdjustRoadmap(ctx context.Context, goal string, days, currentDay int, feedback string) ([]PlannedDay, error)
}

// ProviderType represents the AI provider type
type ProviderType string

const (
	ProviderGemini ProviderType = "gemini"
	ProviderOllama ProviderType = "ollama"
	ProviderAuto   ProviderType = "auto"
)
