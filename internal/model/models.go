package model

import "time"

// PilotProfile holds the pilot's personal data. There is exactly one profile
// per installation; saving replaces it wholesale.
type PilotProfile struct {
	FirstName         string
	LastName          string
	Address           string
	MobilePhone       string
	LandlinePhone     string // optional
	DateOfBirth       time.Time
	CertificateNumber string
}

// Complete reports whether all required profile fields are set.
// LandlinePhone is the only optional field.
func (p PilotProfile) Complete() bool {
	return p.FirstName != "" &&
		p.LastName != "" &&
		p.Address != "" &&
		p.MobilePhone != "" &&
		!p.DateOfBirth.IsZero() &&
		p.CertificateNumber != ""
}

// FlightEntry is a single logged flight. The ID is opaque and stable for the
// entry's lifetime; all other fields are replaceable on edit.
type FlightEntry struct {
	ID           string
	Date         time.Time // calendar date, no time-of-day
	Type         string    // aircraft/drone designation
	Registration string
	Route        string
	TimeMinutes  int // flight duration, >= 0
}

// FilterScope selects the date-range mode for filtering and export.
type FilterScope string

const (
	ScopeAll    FilterScope = "all"
	ScopeYear   FilterScope = "year"
	ScopeMonth  FilterScope = "month"
	ScopeCustom FilterScope = "custom"
)

// FilterState is the ephemeral, per-view filter selection. It is never
// persisted. A scope whose parameters are unset filters nothing.
type FilterState struct {
	Scope  FilterScope
	Year   int       // used by ScopeYear and ScopeMonth; 0 = unset
	Month  int       // 1-12, used by ScopeMonth; 0 = unset
	From   time.Time // used by ScopeCustom; zero = unset
	To     time.Time // used by ScopeCustom; zero = unset
	Search string    // free-text search over type/registration/route
}

// ExportMetadata is generated fresh for every export.
type ExportMetadata struct {
	ID          string      // opaque token, at least 8 characters
	GeneratedAt string      // "2006-01-02 15:04:05" in Europe/Bucharest
	Scope       FilterScope // the scope the export was produced with
}

// DocumentField is one labeled value in the document's profile block.
type DocumentField struct {
	Label string
	Value string
}

// DocumentRow is one flight in the document's table.
type DocumentRow struct {
	Year         int
	Month        int
	Day          int
	Type         string
	Registration string
	Route        string
	FlightTime   string // HH:MM
}

// Document is the structured export document handed to a render surface.
// It is self-contained: all labels are already localized.
type Document struct {
	Title         string
	ProfileTitle  string
	Profile       []DocumentField
	Columns       [7]string // year, month, day, type, registration, route, flight time
	Rows          []DocumentRow
	TotalLabel    string
	Total         string // HH:MM sum over Rows
	GeneratedNote string // "Generated on: <ts> (Europe/Bucharest)", localized
	ExportIDNote  string // "Export ID: <id>", localized
	Watermark     string // non-empty iff the plan is free
	Metadata      ExportMetadata
}
