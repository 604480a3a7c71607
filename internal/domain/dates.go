package domain

import "time"

// DayLayout is the wire format for every date in the plan (deadlines, due
// dates, exam dates, log dates).
const DayLayout = "2006-01-02"

// ParseDay parses a YYYY-MM-DD string. Malformed or empty strings report
// ok=false instead of an error; callers degrade to "unknown".
func ParseDay(s string) (time.Time, bool) {
	if s == "" {
		return time.Time{}, false
	}
	t, err := time.Parse(DayLayout, s)
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}

// FormatDay renders t in the plan's date format.
func FormatDay(t time.Time) string {
	return t.Format(DayLayout)
}

// DaysBetween returns the whole-day difference to - from, ignoring the time
// of day on both sides.
func DaysBetween(from, to time.Time) int {
	f := time.Date(from.Year(), from.Month(), from.Day(), 0, 0, 0, 0, time.UTC)
	t := time.Date(to.Year(), to.Month(), to.Day(), 0, 0, 0, 0, time.UTC)
	return int(t.Sub(f).Hours() / 24)
}
