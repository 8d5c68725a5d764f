package logbook

import (
	"sort"
	"strings"

	"dronelog-go/internal/model"
)

// FilterEntries returns the entries matching the filter state, unsorted.
//
// Scope rules: "all" keeps everything; "year" and "month" compare calendar
// components; "custom" keeps dates within [From, To] inclusive. A scope whose
// parameters are unset keeps everything (the view simply hasn't picked them
// yet). The free-text search then keeps entries whose type, registration or
// route contains the term, case-insensitively.
func FilterEntries(entries []model.FlightEntry, filter model.FilterState) []model.FlightEntry {
	matched := make([]model.FlightEntry, 0, len(entries))
	for _, e := range entries {
		if !inScope(e, filter) {
			continue
		}
		if !matchesSearch(e, filter.Search) {
			continue
		}
		matched = append(matched, e)
	}
	return matched
}

func inScope(e model.FlightEntry, filter model.FilterState) bool {
	year, month, _ := DateParts(e.Date)

	switch filter.Scope {
	case model.ScopeYear:
		if filter.Year == 0 {
			return true
		}
		return year == filter.Year
	case model.ScopeMonth:
		if filter.Year == 0 || filter.Month == 0 {
			return true
		}
		return year == filter.Year && month == filter.Month
	case model.ScopeCustom:
		if filter.From.IsZero() || filter.To.IsZero() {
			return true
		}
		return !e.Date.Before(filter.From) && !e.Date.After(filter.To)
	default:
		// model.ScopeAll and anything unrecognized: no date filtering.
		return true
	}
}

func matchesSearch(e model.FlightEntry, term string) bool {
	if term == "" {
		return true
	}
	term = strings.ToLower(term)
	return strings.Contains(strings.ToLower(e.Type), term) ||
		strings.Contains(strings.ToLower(e.Registration), term) ||
		strings.Contains(strings.ToLower(e.Route), term)
}

// SortByDateDesc orders entries most recent first, for the browse view.
// Entries with equal dates keep their relative order.
func SortByDateDesc(entries []model.FlightEntry) {
	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].Date.After(entries[j].Date)
	})
}

// SortByDateAsc orders entries chronologically, for export generation.
// Entries with equal dates keep their relative order.
func SortByDateAsc(entries []model.FlightEntry) {
	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].Date.Before(entries[j].Date)
	})
}

// TotalMinutes sums flight minutes over the entries. Zero for an empty set.
func TotalMinutes(entries []model.FlightEntry) int {
	total := 0
	for _, e := range entries {
		total += e.TimeMinutes
	}
	return total
}
