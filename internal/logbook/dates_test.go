package logbook

import (
	"testing"
	"time"

	"dronelog-go/internal/model"
)

func TestDateParts(t *testing.T) {
	d, err := time.Parse(time.DateOnly, "2023-06-15")
	if err != nil {
		t.Fatal(err)
	}
	year, month, day := DateParts(d)
	if year != 2023 || month != 6 || day != 15 {
		t.Errorf("DateParts = (%d, %d, %d), want (2023, 6, 15)", year, month, day)
	}
}

func TestAvailableYears(t *testing.T) {
	t.Run("empty input", func(t *testing.T) {
		if got := AvailableYears(nil); len(got) != 0 {
			t.Errorf("AvailableYears(nil) = %v, want empty", got)
		}
	})

	t.Run("deduplicates and sorts descending", func(t *testing.T) {
		entries := []model.FlightEntry{
			entryOn("a", "2023-01-01"),
			entryOn("b", "2024-03-10"),
			entryOn("c", "2023-06-15"),
		}
		got := AvailableYears(entries)
		if len(got) != 2 || got[0] != 2024 || got[1] != 2023 {
			t.Errorf("AvailableYears = %v, want [2024 2023]", got)
		}
	})
}
