package pricing

import "time"

const secondsPerDay = 24 * 60 * 60

// Duration is the inclusive day count between two calendar dates: a rental
// that starts and ends on the same day lasts 1 day. Order does not matter.
func Duration(start, end time.Time) int {
	days := (civilDay(end) - civilDay(start)) / secondsPerDay
	if days < 0 {
		days = -days
	}
	return int(days) + 1
}

// civilDay drops the time of day and zone, keeping only the calendar date.
func civilDay(t time.Time) int64 {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC).Unix()
}
