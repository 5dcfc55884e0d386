package services

import "time"

const dayKeyLayout = "2006-01-02"

// DateAtLocation truncates an instant to midnight of its calendar day in
// the given location.
func DateAtLocation(instant time.Time, location *time.Location) time.Time {
	local := instant.In(location)
	return time.Date(local.Year(), local.Month(), local.Day(), 0, 0, 0, 0, location)
}

// DayKey renders the calendar-day grouping key for an instant.
func DayKey(instant time.Time, location *time.Location) string {
	return instant.In(location).Format(dayKeyLayout)
}

// MonthRange resolves a month reference to the first instant of that month
// and the first instant of the following month.
func MonthRange(reference time.Time, location *time.Location) (time.Time, time.Time) {
	local := reference.In(location)
	start := time.Date(local.Year(), local.Month(), 1, 0, 0, 0, 0, location)
	return start, start.AddDate(0, 1, 0)
}
