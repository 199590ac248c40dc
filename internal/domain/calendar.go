package domain

import "time"

// DaysPerWeek is the span of a WeekPlan.
const DaysPerWeek = 7

// StartOfDay returns midnight of t's calendar day in loc.
func StartOfDay(t time.Time, loc *time.Location) time.Time {
	local := t.In(loc)
	return time.Date(local.Year(), local.Month(), local.Day(), 0, 0, 0, 0, loc)
}

// StartOfWeek returns Monday 00:00 of the week containing t in loc.
func StartOfWeek(t time.Time, loc *time.Location) time.Time {
	day := StartOfDay(t, loc)
	// time.Weekday is Sunday-first; shift so Monday is 0.
	offset := (int(day.Weekday()) + 6) % 7
	// AddDate keeps wall-clock midnight across DST changes, Add(-24h) does not.
	return day.AddDate(0, 0, -offset)
}

// SameDay reports whether a and b fall on the same calendar day in loc.
func SameDay(a, b time.Time, loc *time.Location) bool {
	ay, am, ad := a.In(loc).Date()
	by, bm, bd := b.In(loc).Date()
	return ay == by && am == bm && ad == bd
}

// WeekContains reports whether date falls inside the 7-day span starting at weekStart.
func WeekContains(weekStart, date time.Time, loc *time.Location) bool {
	start := StartOfWeek(weekStart, loc)
	end := start.AddDate(0, 0, DaysPerWeek)
	day := StartOfDay(date, loc)
	return !day.Before(start) && day.Before(end)
}

// RetentionCutoff returns the oldest week start kept by the retention policy:
// the current week's Monday minus the given number of weeks.
func RetentionCutoff(now time.Time, weeks int, loc *time.Location) time.Time {
	return StartOfWeek(now, loc).AddDate(0, 0, -DaysPerWeek*weeks)
}

// ParseTimezone parses a timezone string, returning UTC as fallback.
func ParseTimezone(tz string) *time.Location {
	loc, err := time.LoadLocation(tz)
	if err != nil {
		return time.UTC
	}
	return loc
}
