package domain

// Achievement is one entry of the static milestone catalog. The catalog is
// immutable; Stats.UnlockedAchievements holds a subset of its ids.
type Achievement struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
}

// Catalog is the full set of achievements the tracker can unlock.
var Catalog = []Achievement{
	{ID: "streak_3", Name: "On a Roll", Description: "Complete every daily task 3 days in a row"},
	{ID: "streak_7", Name: "Week Warrior", Description: "Keep a 7-day streak alive"},
	{ID: "streak_14", Name: "Fortnight Focus", Description: "Keep a 14-day streak alive"},
	{ID: "streak_30", Name: "Month of Momentum", Description: "Keep a 30-day streak alive"},
	{ID: "streak_100", Name: "Century Club", Description: "Keep a 100-day streak alive"},
	{ID: "mission_1", Name: "First Victory", Description: "Archive your first completed mission"},
	{ID: "mission_5", Name: "Serial Finisher", Description: "Archive 5 completed missions"},
	{ID: "mission_10", Name: "Double Digits", Description: "Archive 10 completed missions"},
	{ID: "mission_25", Name: "Unstoppable", Description: "Archive 25 completed missions"},
	{ID: "extreme_1", Name: "Against All Odds", Description: "Complete a mission with extreme priority"},
	{ID: "study_10h", Name: "Deep Worker", Description: "Log 10 hours of study time"},
}
