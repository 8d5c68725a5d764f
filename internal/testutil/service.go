package testutil

import (
	"testing"

	"dronelog-go/internal/logbook"
	"dronelog-go/internal/render"
)

// NewTestService wires a Service over in-memory dependencies: a MemoryStore,
// a MemorySurface, a clock fixed at 2024-06-15 10:30 UTC, and sequential id
// generators ("flight-N" for entries, "EXPORT-N" for exports).
func NewTestService(t *testing.T) (*logbook.Service, *MemoryStore, *render.MemorySurface, *StubClock) {
	t.Helper()

	store := NewMemoryStore()
	surface := render.NewMemorySurface()
	clock := FixedClock()

	svc, err := logbook.NewService(store, surface, logbook.NewNopLogger(), clock,
		NewStubIDGenerator("flight"), NewStubIDGenerator("EXPORT"))
	if err != nil {
		t.Fatalf("NewService() error = %v", err)
	}

	return svc, store, surface, clock
}
