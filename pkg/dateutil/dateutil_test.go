package dateutil

import (
	"testing"
	"time"
)

func date(y int, m time.Month, d, hh, mm int) time.Time {
	return time.Date(y, m, d, hh, mm, 0, 0, time.Local)
}

func TestDayNumber(t *testing.T) {
	testCases := []struct {
		name     string
		start    time.Time
		now      time.Time
		expected int
	}{
		{"same day", date(2024, 1, 1, 0, 0), date(2024, 1, 1, 23, 59), 1},
		{"fourth day", date(2024, 1, 1, 0, 0), date(2024, 1, 4, 0, 0), 4},
		{"partial days ignored", date(2024, 1, 1, 23, 50), date(2024, 1, 2, 0, 5), 2},
		{"now before start clamps to 1", date(2024, 1, 10, 0, 0), date(2024, 1, 5, 0, 0), 1},
		{"month boundary", date(2024, 1, 30, 12, 0), date(2024, 2, 2, 9, 0), 4},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if got := DayNumber(tc.start, tc.now); got != tc.expected {
				t.Errorf("DayNumber(%v, %v) = %d, want %d", tc.start, tc.now, got, tc.expected)
			}
		})
	}
}

func TestDayNumberAcrossDSTShift(t *testing.T) {
	// spring-forward leaves one day 23h long; the day count must follow the
	// calendar dates, not the elapsed hours
	est := time.FixedZone("EST", -5*3600)
	edt := time.FixedZone("EDT", -4*3600)

	start := time.Date(2024, 3, 1, 0, 0, 0, 0, est)
	now := time.Date(2024, 3, 15, 0, 0, 0, 0, edt)

	if got := DayNumber(start, now); got != 15 {
		t.Errorf("DayNumber across DST shift = %d, want 15", got)
	}
}

func TestDayNumberMonotonic(t *testing.T) {
	start := date(2024, 3, 1, 8, 30)
	prev := 0
	for hours := 0; hours < 24*14; hours += 7 {
		now := start.Add(time.Duration(hours) * time.Hour)
		got := DayNumber(start, now)
		if got < 1 {
			t.Fatalf("DayNumber returned %d < 1 at %v", got, now)
		}
		if got < prev {
			t.Fatalf("DayNumber decreased from %d to %d at %v", prev, got, now)
		}
		prev = got
	}
}

func TestSameDay(t *testing.T) {
	if !SameDay(date(2024, 5, 1, 0, 0), date(2024, 5, 1, 23, 59)) {
		t.Error("expected same calendar day")
	}
	if SameDay(date(2024, 5, 1, 23, 59), date(2024, 5, 2, 0, 0)) {
		t.Error("midnight boundary should split days")
	}
}

func TestIsYesterday(t *testing.T) {
	now := date(2024, 5, 2, 10, 0)
	if !IsYesterday(date(2024, 5, 1, 23, 0), now) {
		t.Error("expected late yesterday to count")
	}
	if IsYesterday(date(2024, 5, 2, 0, 1), now) {
		t.Error("today is not yesterday")
	}
	if IsYesterday(date(2024, 4, 30, 12, 0), now) {
		t.Error("two days ago is not yesterday")
	}
}

func TestStartOfDay(t *testing.T) {
	got := StartOfDay(date(2024, 7, 15, 17, 42))
	want := date(2024, 7, 15, 0, 0)
	if !got.Equal(want) {
		t.Errorf("StartOfDay = %v, want %v", got, want)
	}
}
