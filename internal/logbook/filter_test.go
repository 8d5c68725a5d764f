package logbook

import (
	"testing"
	"time"

	"dronelog-go/internal/model"
)

func entryOn(id, date string) model.FlightEntry {
	d, err := time.Parse(time.DateOnly, date)
	if err != nil {
		panic(err)
	}
	return model.FlightEntry{
		ID:           id,
		Date:         d,
		Type:         "DJI Mavic 3",
		Registration: "RO-ABC123",
		Route:        "Bucharest - Snagov",
		TimeMinutes:  30,
	}
}

func testEntries() []model.FlightEntry {
	return []model.FlightEntry{
		entryOn("a", "2023-01-01"),
		entryOn("b", "2023-06-15"),
		entryOn("c", "2024-03-10"),
	}
}

func ids(entries []model.FlightEntry) []string {
	out := make([]string, len(entries))
	for i, e := range entries {
		out[i] = e.ID
	}
	return out
}

func equalIDs(a []string, b ...string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func TestFilterEntries_Scopes(t *testing.T) {
	entries := testEntries()

	t.Run("all keeps everything", func(t *testing.T) {
		got := FilterEntries(entries, model.FilterState{Scope: model.ScopeAll})
		if len(got) != 3 {
			t.Fatalf("got %d entries, want 3", len(got))
		}
	})

	t.Run("year keeps matching calendar year", func(t *testing.T) {
		got := FilterEntries(entries, model.FilterState{Scope: model.ScopeYear, Year: 2023})
		if !equalIDs(ids(got), "a", "b") {
			t.Fatalf("got %v, want [a b]", ids(got))
		}
	})

	t.Run("year with unset year keeps everything", func(t *testing.T) {
		got := FilterEntries(entries, model.FilterState{Scope: model.ScopeYear})
		if len(got) != 3 {
			t.Fatalf("got %d entries, want 3", len(got))
		}
	})

	t.Run("month requires year and month to match", func(t *testing.T) {
		got := FilterEntries(entries, model.FilterState{Scope: model.ScopeMonth, Year: 2023, Month: 6})
		if !equalIDs(ids(got), "b") {
			t.Fatalf("got %v, want [b]", ids(got))
		}
	})

	t.Run("month with either part unset keeps everything", func(t *testing.T) {
		got := FilterEntries(entries, model.FilterState{Scope: model.ScopeMonth, Year: 2023})
		if len(got) != 3 {
			t.Fatalf("got %d entries, want 3", len(got))
		}
	})

	t.Run("custom range is inclusive on both bounds", func(t *testing.T) {
		from, _ := time.Parse(time.DateOnly, "2023-03-01")
		to, _ := time.Parse(time.DateOnly, "2023-12-31")
		got := FilterEntries(entries, model.FilterState{Scope: model.ScopeCustom, From: from, To: to})
		if !equalIDs(ids(got), "b") {
			t.Fatalf("got %v, want [b]", ids(got))
		}
	})

	t.Run("custom range includes entries dated exactly on the bounds", func(t *testing.T) {
		from, _ := time.Parse(time.DateOnly, "2023-01-01")
		to, _ := time.Parse(time.DateOnly, "2023-06-15")
		got := FilterEntries(entries, model.FilterState{Scope: model.ScopeCustom, From: from, To: to})
		if !equalIDs(ids(got), "a", "b") {
			t.Fatalf("got %v, want [a b]", ids(got))
		}
	})

	t.Run("custom with missing bound keeps everything", func(t *testing.T) {
		from, _ := time.Parse(time.DateOnly, "2023-03-01")
		got := FilterEntries(entries, model.FilterState{Scope: model.ScopeCustom, From: from})
		if len(got) != 3 {
			t.Fatalf("got %d entries, want 3", len(got))
		}
	})
}

func TestFilterEntries_Search(t *testing.T) {
	entries := testEntries()
	entries[2].Registration = "D-EFGH"
	entries[2].Type = "Parrot Anafi"
	entries[2].Route = "Cluj - Turda"

	t.Run("matches registration case-insensitively", func(t *testing.T) {
		got := FilterEntries(entries, model.FilterState{Scope: model.ScopeAll, Search: "ro-abc"})
		if !equalIDs(ids(got), "a", "b") {
			t.Fatalf("got %v, want [a b]", ids(got))
		}
	})

	t.Run("matches any of type, registration and route", func(t *testing.T) {
		got := FilterEntries(entries, model.FilterState{Scope: model.ScopeAll, Search: "TURDA"})
		if !equalIDs(ids(got), "c") {
			t.Fatalf("got %v, want [c]", ids(got))
		}
		got = FilterEntries(entries, model.FilterState{Scope: model.ScopeAll, Search: "anafi"})
		if !equalIDs(ids(got), "c") {
			t.Fatalf("got %v, want [c]", ids(got))
		}
	})

	t.Run("search composes with scope", func(t *testing.T) {
		got := FilterEntries(entries, model.FilterState{Scope: model.ScopeYear, Year: 2024, Search: "RO-ABC"})
		if len(got) != 0 {
			t.Fatalf("got %v, want none", ids(got))
		}
	})

	t.Run("no match returns empty", func(t *testing.T) {
		got := FilterEntries(entries, model.FilterState{Scope: model.ScopeAll, Search: "nothing"})
		if len(got) != 0 {
			t.Fatalf("got %v, want none", ids(got))
		}
	})
}

func TestSortByDate(t *testing.T) {
	t.Run("descending for browse", func(t *testing.T) {
		entries := testEntries()
		SortByDateDesc(entries)
		if !equalIDs(ids(entries), "c", "b", "a") {
			t.Fatalf("got %v, want [c b a]", ids(entries))
		}
	})

	t.Run("ascending for export", func(t *testing.T) {
		entries := []model.FlightEntry{
			entryOn("c", "2024-03-10"),
			entryOn("a", "2023-01-01"),
			entryOn("b", "2023-06-15"),
		}
		SortByDateAsc(entries)
		if !equalIDs(ids(entries), "a", "b", "c") {
			t.Fatalf("got %v, want [a b c]", ids(entries))
		}
	})

	t.Run("equal dates keep insertion order", func(t *testing.T) {
		entries := []model.FlightEntry{
			entryOn("x", "2023-05-05"),
			entryOn("y", "2023-05-05"),
			entryOn("z", "2023-05-05"),
		}
		SortByDateDesc(entries)
		if !equalIDs(ids(entries), "x", "y", "z") {
			t.Fatalf("got %v, want [x y z]", ids(entries))
		}
	})
}

func TestTotalMinutes(t *testing.T) {
	if got := TotalMinutes(nil); got != 0 {
		t.Errorf("TotalMinutes(nil) = %d, want 0", got)
	}

	entries := []model.FlightEntry{
		{TimeMinutes: 30},
		{TimeMinutes: 90},
		{TimeMinutes: 45},
	}
	if got := TotalMinutes(entries); got != 165 {
		t.Errorf("TotalMinutes = %d, want 165", got)
	}
	if got := MinutesToTime(TotalMinutes(entries)); got != "02:45" {
		t.Errorf("formatted total = %q, want \"02:45\"", got)
	}
}
