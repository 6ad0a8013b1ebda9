// Package calendar holds the UTC calendar-day arithmetic shared by rotation,
// streak and stats bookkeeping. Days are carried as "YYYY-MM-DD" strings.
package calendar

import "time"

const Layout = time.DateOnly

// Day returns the UTC calendar date of t.
func Day(t time.Time) string {
	return t.UTC().Format(Layout)
}

// DaysAgo returns the UTC calendar date n days before t.
func DaysAgo(t time.Time, n int) string {
	return t.UTC().AddDate(0, 0, -n).Format(Layout)
}

// Yesterday returns the UTC calendar date before t.
func Yesterday(t time.Time) string {
	return DaysAgo(t, 1)
}

// WeekStart returns the Monday (UTC) of t's ISO week.
func WeekStart(t time.Time) string {
	u := t.UTC()
	offset := (int(u.Weekday()) + 6) % 7 // Monday=0 ... Sunday=6
	return u.AddDate(0, 0, -offset).Format(Layout)
}

// IsActive reports whether a streak last touched on lastDay is still alive at now,
// i.e. lastDay is today or yesterday.
func IsActive(lastDay string, now time.Time) bool {
	if lastDay == "" {
		return false
	}
	return lastDay == Day(now) || lastDay == Yesterday(now)
}

// Parse parses a calendar date as midnight UTC.
func Parse(day string) (time.Time, error) {
	return time.ParseInLocation(Layout, day, time.UTC)
}
