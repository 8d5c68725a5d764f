package logbook

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"dronelog-go/internal/i18n"
	"dronelog-go/internal/model"
)

// freePlanEntryLimit is the maximum number of flight entries on the free tier.
const freePlanEntryLimit = 5

// exportTimezone is the civil timezone every export timestamp is fixed to.
const exportTimezone = "Europe/Bucharest"

// Service is the orchestration layer that coordinates the store, the filter
// engine, the document builder and the render surface to perform the
// operations the CLI needs.
type Service struct {
	store     Store
	surface   RenderSurface
	logger    Logger
	clock     Clock
	entryIDs  IDGenerator
	exportIDs IDGenerator
	location  *time.Location
}

// NewService creates a Service with the provided dependencies. It resolves
// the export timezone once; hosts without timezone data make exports
// impossible, so that is a construction error.
func NewService(store Store, surface RenderSurface, logger Logger, clock Clock, entryIDs, exportIDs IDGenerator) (*Service, error) {
	loc, err := time.LoadLocation(exportTimezone)
	if err != nil {
		return nil, fmt.Errorf("loading timezone %s: %w", exportTimezone, err)
	}
	return &Service{
		store:     store,
		surface:   surface,
		logger:    logger,
		clock:     clock,
		entryIDs:  entryIDs,
		exportIDs: exportIDs,
		location:  loc,
	}, nil
}

// ProfileInput is the raw profile form. All fields except LandlinePhone are
// required; DateOfBirth must be a YYYY-MM-DD date.
type ProfileInput struct {
	FirstName         string
	LastName          string
	Address           string
	MobilePhone       string
	LandlinePhone     string
	DateOfBirth       string
	CertificateNumber string
}

// FlightInput is the raw flight entry form. All fields are required; Date
// must be a YYYY-MM-DD date and Time an HH:MM duration.
type FlightInput struct {
	Date         string
	Type         string
	Registration string
	Route        string
	Time         string
}

// Profile returns the stored pilot profile, or nil when none exists.
func (s *Service) Profile() (*model.PilotProfile, error) {
	return s.store.GetProfile()
}

// SaveProfile validates the form and overwrites the stored profile wholesale.
// Validation failures come back as FieldErrors.
func (s *Service) SaveProfile(input ProfileInput) error {
	errs := FieldErrors{}
	requireField(errs, FieldFirstName, input.FirstName)
	requireField(errs, FieldLastName, input.LastName)
	requireField(errs, FieldAddress, input.Address)
	requireField(errs, FieldMobilePhone, input.MobilePhone)
	requireField(errs, FieldCertificateNumber, input.CertificateNumber)

	var dob time.Time
	if strings.TrimSpace(input.DateOfBirth) == "" {
		errs[FieldDateOfBirth] = ViolationRequired
	} else {
		parsed, err := time.Parse(time.DateOnly, input.DateOfBirth)
		if err != nil {
			errs[FieldDateOfBirth] = ViolationInvalidDate
		} else {
			dob = parsed
		}
	}

	if err := errs.errOrNil(); err != nil {
		return err
	}

	profile := model.PilotProfile{
		FirstName:         input.FirstName,
		LastName:          input.LastName,
		Address:           input.Address,
		MobilePhone:       input.MobilePhone,
		LandlinePhone:     input.LandlinePhone,
		DateOfBirth:       dob,
		CertificateNumber: input.CertificateNumber,
	}
	if err := s.store.SaveProfile(profile); err != nil {
		return fmt.Errorf("saving profile: %w", err)
	}

	s.logger.Info("profile saved", "complete", profile.Complete())
	return nil
}

// AddFlight validates the form, enforces the free-tier entry cap, assigns a
// fresh id and appends the entry. A cap rejection is ErrPlanLimit so the
// caller can surface an upgrade prompt instead of a generic error.
func (s *Service) AddFlight(input FlightInput) (model.FlightEntry, error) {
	entry, err := s.validateFlight(input)
	if err != nil {
		return model.FlightEntry{}, err
	}

	count, err := s.store.CountFlights()
	if err != nil {
		return model.FlightEntry{}, fmt.Errorf("counting flights: %w", err)
	}
	pro, err := s.store.GetPlanPro()
	if err != nil {
		return model.FlightEntry{}, fmt.Errorf("reading plan flag: %w", err)
	}
	if !pro && count >= freePlanEntryLimit {
		return model.FlightEntry{}, ErrPlanLimit
	}

	entry.ID = s.entryIDs.New()
	if err := s.store.CreateFlight(entry); err != nil {
		return model.FlightEntry{}, fmt.Errorf("creating flight: %w", err)
	}

	s.logger.Info("flight added", "id", entry.ID, "date", input.Date)
	return entry, nil
}

// UpdateFlight validates the form and replaces every field of the entry with
// the given id, preserving the id.
func (s *Service) UpdateFlight(id string, input FlightInput) (model.FlightEntry, error) {
	entry, err := s.validateFlight(input)
	if err != nil {
		return model.FlightEntry{}, err
	}

	existing, err := s.store.GetFlight(id)
	if err != nil {
		return model.FlightEntry{}, fmt.Errorf("finding flight: %w", err)
	}
	if existing == nil {
		return model.FlightEntry{}, ErrNotFound
	}

	entry.ID = id
	if err := s.store.UpdateFlight(entry); err != nil {
		return model.FlightEntry{}, fmt.Errorf("updating flight: %w", err)
	}

	s.logger.Info("flight updated", "id", id)
	return entry, nil
}

// DeleteFlight removes the entry with the given id. Confirmation belongs to
// the caller, not this layer.
func (s *Service) DeleteFlight(id string) error {
	if err := s.store.DeleteFlight(id); err != nil {
		if errors.Is(err, ErrNotFound) {
			return err
		}
		return fmt.Errorf("deleting flight: %w", err)
	}
	s.logger.Info("flight deleted", "id", id)
	return nil
}

// ListFlights returns the entries matching the filter, most recent first.
func (s *Service) ListFlights(filter model.FilterState) ([]model.FlightEntry, error) {
	entries, err := s.store.ListFlights()
	if err != nil {
		return nil, fmt.Errorf("listing flights: %w", err)
	}
	matched := FilterEntries(entries, filter)
	SortByDateDesc(matched)
	return matched, nil
}

// Years returns the distinct calendar years across all entries, most recent
// first.
func (s *Service) Years() ([]int, error) {
	entries, err := s.store.ListFlights()
	if err != nil {
		return nil, fmt.Errorf("listing flights: %w", err)
	}
	return AvailableYears(entries), nil
}

// Stats is the dashboard summary.
type Stats struct {
	TotalFlights     int
	TotalMinutes     int
	ThisMonthMinutes int
	ProfileComplete  bool
	Pro              bool
}

// Stats computes the dashboard aggregates. The this-month total filters to
// entries in the current wall-clock year and month.
func (s *Service) Stats() (Stats, error) {
	entries, err := s.store.ListFlights()
	if err != nil {
		return Stats{}, fmt.Errorf("listing flights: %w", err)
	}
	profile, err := s.store.GetProfile()
	if err != nil {
		return Stats{}, fmt.Errorf("reading profile: %w", err)
	}
	pro, err := s.store.GetPlanPro()
	if err != nil {
		return Stats{}, fmt.Errorf("reading plan flag: %w", err)
	}

	now := s.clock.Now()
	thisMonth := FilterEntries(entries, model.FilterState{
		Scope: model.ScopeMonth,
		Year:  now.Year(),
		Month: int(now.Month()),
	})

	return Stats{
		TotalFlights:     len(entries),
		TotalMinutes:     TotalMinutes(entries),
		ThisMonthMinutes: TotalMinutes(thisMonth),
		ProfileComplete:  profile != nil && profile.Complete(),
		Pro:              pro,
	}, nil
}

// ExportResult is a completed export: the built document and, when the
// render surface produced one, the location it was rendered to.
type ExportResult struct {
	Document model.Document
	Location string
}

// Export checks the preconditions, scopes and sorts the entries
// chronologically, builds the document and hands it to the render surface.
//
// A surface failure comes back wrapping ErrRenderSurface with the built
// document still present in the result: the export data is not lost and the
// user may retry.
func (s *Service) Export(filter model.FilterState) (ExportResult, error) {
	profile, err := s.store.GetProfile()
	if err != nil {
		return ExportResult{}, fmt.Errorf("reading profile: %w", err)
	}
	if profile == nil || !profile.Complete() {
		return ExportResult{}, ErrProfileIncomplete
	}
	if err := validateExportScope(filter); err != nil {
		return ExportResult{}, err
	}

	entries, err := s.store.ListFlights()
	if err != nil {
		return ExportResult{}, fmt.Errorf("listing flights: %w", err)
	}
	matched := FilterEntries(entries, filter)
	SortByDateAsc(matched)

	pro, err := s.store.GetPlanPro()
	if err != nil {
		return ExportResult{}, fmt.Errorf("reading plan flag: %w", err)
	}
	lang, err := s.store.GetLanguage()
	if err != nil {
		return ExportResult{}, fmt.Errorf("reading language: %w", err)
	}

	meta := model.ExportMetadata{
		ID:          s.exportIDs.New(),
		GeneratedAt: s.clock.Now().In(s.location).Format(generatedAtLayout),
		Scope:       filter.Scope,
	}
	doc := BuildDocument(*profile, matched, meta, pro, lang)

	location, err := s.surface.Open(doc)
	if err != nil {
		// The document is built and, for file surfaces, possibly already
		// written; keep both so the caller can tell the user.
		s.logger.Warn("render surface unavailable", "export_id", meta.ID, "error", err)
		return ExportResult{Document: doc, Location: location}, fmt.Errorf("%w: %v", ErrRenderSurface, err)
	}

	s.logger.Info("export generated",
		"export_id", meta.ID, "scope", filter.Scope, "entries", len(matched))
	return ExportResult{Document: doc, Location: location}, nil
}

// Upgrade flips the plan flag to pro. There is no payment processing.
func (s *Service) Upgrade() error {
	if err := s.store.SetPlanPro(true); err != nil {
		return fmt.Errorf("storing plan flag: %w", err)
	}
	s.logger.Info("plan upgraded")
	return nil
}

// Language returns the stored language preference.
func (s *Service) Language() (i18n.Language, error) {
	return s.store.GetLanguage()
}

// SetLanguage validates and stores the language preference.
func (s *Service) SetLanguage(raw string) error {
	lang, err := i18n.Parse(raw)
	if err != nil {
		return err
	}
	if err := s.store.SetLanguage(lang); err != nil {
		return fmt.Errorf("storing language: %w", err)
	}
	s.logger.Info("language changed", "language", lang)
	return nil
}

// validateFlight checks the entry form and converts it into a FlightEntry
// without an id.
func (s *Service) validateFlight(input FlightInput) (model.FlightEntry, error) {
	errs := FieldErrors{}
	requireField(errs, FieldType, input.Type)
	requireField(errs, FieldRegistration, input.Registration)
	requireField(errs, FieldRoute, input.Route)

	var date time.Time
	if strings.TrimSpace(input.Date) == "" {
		errs[FieldDate] = ViolationRequired
	} else {
		parsed, err := time.Parse(time.DateOnly, input.Date)
		if err != nil {
			errs[FieldDate] = ViolationInvalidDate
		} else {
			date = parsed
		}
	}

	minutes := 0
	if strings.TrimSpace(input.Time) == "" {
		errs[FieldTime] = ViolationRequired
	} else {
		parsed, err := TimeToMinutes(input.Time)
		if err != nil {
			errs[FieldTime] = ViolationInvalidTime
		} else {
			minutes = parsed
		}
	}

	if err := errs.errOrNil(); err != nil {
		return model.FlightEntry{}, err
	}

	return model.FlightEntry{
		Date:         date,
		Type:         input.Type,
		Registration: input.Registration,
		Route:        input.Route,
		TimeMinutes:  minutes,
	}, nil
}

// validateExportScope enforces the export preconditions on the scope
// selection. Unlike view-time filtering, an export with missing scope
// parameters is an error, not a no-op.
func validateExportScope(filter model.FilterState) error {
	switch filter.Scope {
	case model.ScopeAll:
		return nil
	case model.ScopeYear:
		if filter.Year == 0 {
			return ErrScopeSelection
		}
		return nil
	case model.ScopeMonth:
		if filter.Year == 0 || filter.Month == 0 {
			return ErrScopeSelection
		}
		return nil
	case model.ScopeCustom:
		if filter.From.IsZero() || filter.To.IsZero() {
			return ErrScopeSelection
		}
		if filter.From.After(filter.To) {
			return ErrInvalidRange
		}
		return nil
	default:
		return ErrScopeSelection
	}
}

func requireField(errs FieldErrors, field Field, value string) {
	if strings.TrimSpace(value) == "" {
		errs[field] = ViolationRequired
	}
}
