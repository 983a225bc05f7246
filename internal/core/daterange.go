package core

import "time"

// Bucketing policy: timestamps are always interpreted as UTC calendar dates.
// A record created at 23:30 local time in a non-UTC zone belongs to the UTC
// day of its instant, so time-of-day and zone never shift bucket membership.

// DayKey returns the canonical YYYY-MM-DD bucket key for t.
func DayKey(t time.Time) string {
	return t.UTC().Format("2006-01-02")
}

// MonthStart returns the first instant of the calendar month containing t.
func MonthStart(t time.Time) time.Time {
	u := t.UTC()
	return time.Date(u.Year(), u.Month(), 1, 0, 0, 0, 0, time.UTC)
}

// MonthEnd returns the last instant of the calendar month containing t.
// The bound is inclusive: MonthStart <= ts <= MonthEnd covers the month.
func MonthEnd(t time.Time) time.Time {
	u := t.UTC()
	return time.Date(u.Year(), u.Month()+1, 1, 0, 0, 0, 0, time.UTC).Add(-time.Nanosecond)
}
