// Package dateutil holds the calendar arithmetic the roadmap and streak
// logic depend on. Every function takes its reference time as a parameter
// so callers stay deterministic and testable.
package dateutil

import "time"

// StartOfDay returns t truncated to local midnight.
func StartOfDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}

// SameDay reports whether a and b fall on the same calendar day.
func SameDay(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}

// IsYesterday reports whether t falls on the calendar day before now.
func IsYesterday(t, now time.Time) bool {
	return SameDay(t, StartOfDay(now).AddDate(0, 0, -1))
}

// DayNumber returns the 1-based sequential day that now falls on, counted
// from start. The difference is taken between the calendar dates, not the
// wall-clock instants, so partial days and DST-shortened days never shift
// the result. Never returns less than 1.
func DayNumber(start, now time.Time) int {
	sy, sm, sd := start.Date()
	ny, nm, nd := now.Date()
	s := time.Date(sy, sm, sd, 0, 0, 0, 0, time.UTC)
	n := time.Date(ny, nm, nd, 0, 0, 0, 0, time.UTC)
	day := int(n.Sub(s).Hours()/24) + 1
	if day < 1 {
		return 1
	}
	return day
}
