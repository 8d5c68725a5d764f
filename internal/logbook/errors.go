package logbook

import "errors"

// Sentinel errors for conditions the caller must present distinctly. None of
// them is fatal; every one is recoverable by correcting input or upgrading.
var (
	// ErrPlanLimit is returned when a free-tier add would exceed the entry
	// cap. The caller surfaces an upgrade prompt, not a generic error.
	ErrPlanLimit = errors.New("free plan entry limit reached")

	// ErrProfileIncomplete blocks export until all required profile fields
	// are filled in.
	ErrProfileIncomplete = errors.New("pilot profile is incomplete")

	// ErrScopeSelection is returned when an export scope is missing its
	// parameters (year, year+month, or both custom bounds).
	ErrScopeSelection = errors.New("export scope selection is incomplete")

	// ErrInvalidRange is returned when a custom export range has its from
	// date after its to date.
	ErrInvalidRange = errors.New("from date is after to date")

	// ErrNotFound is returned when no flight entry has the requested id.
	ErrNotFound = errors.New("flight entry not found")

	// ErrRenderSurface wraps a failure to hand the export document to the
	// external render surface. The export itself is not lost; the user may
	// retry.
	ErrRenderSurface = errors.New("render surface unavailable")
)
