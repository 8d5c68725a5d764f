package logbook

import (
	"sort"
	"time"

	"dronelog-go/internal/model"
)

// DateParts splits a date value into its calendar year, month (1-12) and day,
// using the calendar the date itself encodes.
func DateParts(date time.Time) (year, month, day int) {
	y, m, d := date.Date()
	return y, int(m), d
}

// AvailableYears collects the distinct calendar years across the entries'
// dates, most recent first.
func AvailableYears(entries []model.FlightEntry) []int {
	seen := make(map[int]bool)
	var years []int
	for _, e := range entries {
		y := e.Date.Year()
		if !seen[y] {
			seen[y] = true
			years = append(years, y)
		}
	}
	sort.Sort(sort.Reverse(sort.IntSlice(years)))
	return years
}
