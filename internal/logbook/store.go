package logbook

import (
	"dronelog-go/internal/i18n"
	"dronelog-go/internal/model"
)

// Store is the persistence contract for the logbook. The collections it owns
// (profile, flight entries, plan flag, language) are mutated only through it,
// on the single thread of user-command handling.
type Store interface {
	// Profile operations

	// GetProfile returns the stored pilot profile, or nil when none has been
	// saved yet.
	GetProfile() (*model.PilotProfile, error)

	// SaveProfile replaces the stored profile wholesale.
	SaveProfile(profile model.PilotProfile) error

	// Flight operations

	// ListFlights returns all flight entries in insertion order.
	ListFlights() ([]model.FlightEntry, error)

	// GetFlight returns the entry with the given id, or nil when absent.
	GetFlight(id string) (*model.FlightEntry, error)

	// CreateFlight appends a new entry. The entry's ID must be set and unique.
	CreateFlight(entry model.FlightEntry) error

	// UpdateFlight replaces every field of the entry with the given id,
	// preserving the id. Returns ErrNotFound when the id is unknown.
	UpdateFlight(entry model.FlightEntry) error

	// DeleteFlight removes the entry with the given id. Returns ErrNotFound
	// when the id is unknown.
	DeleteFlight(id string) error

	// CountFlights returns the number of stored entries.
	CountFlights() (int, error)

	// Settings operations

	// GetPlanPro returns the plan flag: false is the free tier.
	GetPlanPro() (bool, error)

	// SetPlanPro stores the plan flag.
	SetPlanPro(pro bool) error

	// GetLanguage returns the stored language preference, or the default
	// locale when none has been stored.
	GetLanguage() (i18n.Language, error)

	// SetLanguage stores the language preference.
	SetLanguage(lang i18n.Language) error

	// Close closes the underlying connection.
	Close() error
}
