package testutil

import (
	"dronelog-go/internal/i18n"
	"dronelog-go/internal/logbook"
	"dronelog-go/internal/model"
)

// MemoryStore is a pure in-memory logbook.Store for unit tests. It preserves
// insertion order for flight entries, like the SQLite implementation.
type MemoryStore struct {
	profile  *model.PilotProfile
	flights  []model.FlightEntry
	pro      bool
	language i18n.Language
	closed   bool
}

var _ logbook.Store = (*MemoryStore)(nil)

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{language: i18n.Default}
}

func (s *MemoryStore) GetProfile() (*model.PilotProfile, error) {
	if s.profile == nil {
		return nil, nil
	}
	p := *s.profile
	return &p, nil
}

func (s *MemoryStore) SaveProfile(profile model.PilotProfile) error {
	s.profile = &profile
	return nil
}

func (s *MemoryStore) ListFlights() ([]model.FlightEntry, error) {
	entries := make([]model.FlightEntry, len(s.flights))
	copy(entries, s.flights)
	return entries, nil
}

func (s *MemoryStore) GetFlight(id string) (*model.FlightEntry, error) {
	for _, e := range s.flights {
		if e.ID == id {
			entry := e
			return &entry, nil
		}
	}
	return nil, nil
}

func (s *MemoryStore) CreateFlight(entry model.FlightEntry) error {
	s.flights = append(s.flights, entry)
	return nil
}

func (s *MemoryStore) UpdateFlight(entry model.FlightEntry) error {
	for i, e := range s.flights {
		if e.ID == entry.ID {
			s.flights[i] = entry
			return nil
		}
	}
	return logbook.ErrNotFound
}

func (s *MemoryStore) DeleteFlight(id string) error {
	for i, e := range s.flights {
		if e.ID == id {
			s.flights = append(s.flights[:i], s.flights[i+1:]...)
			return nil
		}
	}
	return logbook.ErrNotFound
}

func (s *MemoryStore) CountFlights() (int, error) {
	return len(s.flights), nil
}

func (s *MemoryStore) GetPlanPro() (bool, error) { return s.pro, nil }

func (s *MemoryStore) SetPlanPro(pro bool) error {
	s.pro = pro
	return nil
}

func (s *MemoryStore) GetLanguage() (i18n.Language, error) { return s.language, nil }

func (s *MemoryStore) SetLanguage(lang i18n.Language) error {
	s.language = lang
	return nil
}

func (s *MemoryStore) Close() error {
	s.closed = true
	return nil
}

// Closed reports whether Close has been called.
func (s *MemoryStore) Closed() bool { return s.closed }
