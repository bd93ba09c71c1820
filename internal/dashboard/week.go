package dashboard

import "time"

// WeekStart returns the most recent Sunday at 00:00:00 in t's location.
// When t itself falls on a Sunday, the start of that same day is returned,
// so a workout dated exactly Sunday midnight counts into the new week.
func WeekStart(t time.Time) time.Time {
	year, month, day := t.AddDate(0, 0, -int(t.Weekday())).Date()
	return time.Date(year, month, day, 0, 0, 0, 0, t.Location())
}
