package utils

import "time"

// CurrentWeekBounds returns the Monday 00:00:00 and Sunday 23:59:59 of the
// week containing now, in now's location. Sunday counts as the end of the
// previous Monday's week, not the start of a new one.
func CurrentWeekBounds(now time.Time) (time.Time, time.Time) {
	year, month, day := now.Date()
	today := time.Date(year, month, day, 0, 0, 0, 0, now.Location())

	offset := int(today.Weekday()) - 1 // Monday=1 ... Saturday=6
	if today.Weekday() == time.Sunday {
		offset = 6
	}

	monday := today.AddDate(0, 0, -offset)
	sunday := monday.AddDate(0, 0, 6)
	weekEnd := time.Date(sunday.Year(), sunday.Month(), sunday.Day(), 23, 59, 59, 0, sunday.Location())

	return monday, weekEnd
}
