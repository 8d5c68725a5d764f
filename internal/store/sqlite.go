// Package store is the SQLite-backed implementation of the logbook's
// persistence contract.
package store

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"dronelog-go/internal/i18n"
	"dronelog-go/internal/logbook"
	"dronelog-go/internal/model"
	"dronelog-go/internal/store/migrations"

	_ "github.com/mattn/go-sqlite3" // SQLite driver
)

// Settings keys. The settings table has plain get/set semantics; these are
// the only keys the store writes.
const (
	settingPlanPro  = "plan_pro"
	settingLanguage = "language"
)

// SQLiteStore implements logbook.Store on a single SQLite database file.
type SQLiteStore struct {
	db   *sql.DB
	path string
}

var _ logbook.Store = (*SQLiteStore)(nil)

// Open opens (or creates) the database at path and brings its schema up to
// date. path can be ":memory:" for a throwaway store.
func Open(path string) (*SQLiteStore, error) {
	db, err := OpenConnection(path)
	if err != nil {
		return nil, err
	}

	if err := migrations.Up(db); err != nil {
		db.Close()
		return nil, fmt.Errorf("migrating database: %w", err)
	}

	return &SQLiteStore{db: db, path: path}, nil
}

// OpenConnection opens and configures a SQLite connection with the PRAGMAs
// the store relies on. Exported for tests that need a raw connection.
func OpenConnection(path string) (*sql.DB, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	// SQLite ships with foreign keys off for backward compatibility.
	if _, err := db.Exec("PRAGMA foreign_keys = ON"); err != nil {
		db.Close()
		return nil, fmt.Errorf("enabling foreign keys: %w", err)
	}

	return db, nil
}

// Path returns the database file path, or ":memory:".
func (s *SQLiteStore) Path() string { return s.path }

// Profile operations

func (s *SQLiteStore) GetProfile() (*model.PilotProfile, error) {
	row := s.db.QueryRow(`
		SELECT first_name, last_name, address, mobile_phone, landline_phone,
		       date_of_birth, certificate_number
		FROM profile WHERE id = 1`)

	var p model.PilotProfile
	var dob string
	err := row.Scan(&p.FirstName, &p.LastName, &p.Address, &p.MobilePhone,
		&p.LandlinePhone, &dob, &p.CertificateNumber)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil // no profile saved yet
		}
		return nil, fmt.Errorf("reading profile: %w", err)
	}

	p.DateOfBirth, err = parseDate(dob)
	if err != nil {
		return nil, fmt.Errorf("reading profile: %w", err)
	}
	return &p, nil
}

func (s *SQLiteStore) SaveProfile(profile model.PilotProfile) error {
	_, err := s.db.Exec(`
		INSERT INTO profile (id, first_name, last_name, address, mobile_phone,
		                     landline_phone, date_of_birth, certificate_number)
		VALUES (1, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT (id) DO UPDATE SET
			first_name = excluded.first_name,
			last_name = excluded.last_name,
			address = excluded.address,
			mobile_phone = excluded.mobile_phone,
			landline_phone = excluded.landline_phone,
			date_of_birth = excluded.date_of_birth,
			certificate_number = excluded.certificate_number`,
		profile.FirstName, profile.LastName, profile.Address, profile.MobilePhone,
		profile.LandlinePhone, formatDate(profile.DateOfBirth), profile.CertificateNumber)
	if err != nil {
		return fmt.Errorf("saving profile: %w", err)
	}
	return nil
}

// Flight operations

func (s *SQLiteStore) ListFlights() ([]model.FlightEntry, error) {
	rows, err := s.db.Query(`
		SELECT id, flight_date, type, registration, route, time_minutes
		FROM flights ORDER BY rowid`)
	if err != nil {
		return nil, fmt.Errorf("listing flights: %w", err)
	}
	defer rows.Close()

	var entries []model.FlightEntry
	for rows.Next() {
		entry, err := scanFlight(rows)
		if err != nil {
			return nil, err
		}
		entries = append(entries, entry)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("listing flights: %w", err)
	}
	return entries, nil
}

func (s *SQLiteStore) GetFlight(id string) (*model.FlightEntry, error) {
	row := s.db.QueryRow(`
		SELECT id, flight_date, type, registration, route, time_minutes
		FROM flights WHERE id = ?`, id)

	entry, err := scanFlight(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &entry, nil
}

func (s *SQLiteStore) CreateFlight(entry model.FlightEntry) error {
	_, err := s.db.Exec(`
		INSERT INTO flights (id, flight_date, type, registration, route, time_minutes, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)`,
		entry.ID, formatDate(entry.Date), entry.Type, entry.Registration,
		entry.Route, entry.TimeMinutes, time.Now().UTC().Format(time.RFC3339))
	if err != nil {
		return fmt.Errorf("inserting flight: %w", err)
	}
	return nil
}

func (s *SQLiteStore) UpdateFlight(entry model.FlightEntry) error {
	res, err := s.db.Exec(`
		UPDATE flights
		SET flight_date = ?, type = ?, registration = ?, route = ?, time_minutes = ?
		WHERE id = ?`,
		formatDate(entry.Date), entry.Type, entry.Registration, entry.Route,
		entry.TimeMinutes, entry.ID)
	if err != nil {
		return fmt.Errorf("updating flight: %w", err)
	}
	return requireRow(res)
}

func (s *SQLiteStore) DeleteFlight(id string) error {
	res, err := s.db.Exec("DELETE FROM flights WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("deleting flight: %w", err)
	}
	return requireRow(res)
}

func (s *SQLiteStore) CountFlights() (int, error) {
	var count int
	if err := s.db.QueryRow("SELECT COUNT(*) FROM flights").Scan(&count); err != nil {
		return 0, fmt.Errorf("counting flights: %w", err)
	}
	return count, nil
}

// Settings operations

func (s *SQLiteStore) GetPlanPro() (bool, error) {
	value, ok, err := s.getSetting(settingPlanPro)
	if err != nil {
		return false, err
	}
	return ok && value == "1", nil
}

func (s *SQLiteStore) SetPlanPro(pro bool) error {
	value := "0"
	if pro {
		value = "1"
	}
	return s.setSetting(settingPlanPro, value)
}

func (s *SQLiteStore) GetLanguage() (i18n.Language, error) {
	value, ok, err := s.getSetting(settingLanguage)
	if err != nil {
		return "", err
	}
	if !ok {
		return i18n.Default, nil
	}
	lang, err := i18n.Parse(value)
	if err != nil {
		// A tag from a newer or corrupted install; fall back rather than fail.
		return i18n.Default, nil
	}
	return lang, nil
}

func (s *SQLiteStore) SetLanguage(lang i18n.Language) error {
	return s.setSetting(settingLanguage, string(lang))
}

// Close closes the database connection.
func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

func (s *SQLiteStore) getSetting(key string) (string, bool, error) {
	var value string
	err := s.db.QueryRow("SELECT value FROM settings WHERE key = ?", key).Scan(&value)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return "", false, nil
		}
		return "", false, fmt.Errorf("reading setting %s: %w", key, err)
	}
	return value, true, nil
}

func (s *SQLiteStore) setSetting(key, value string) error {
	_, err := s.db.Exec(`
		INSERT INTO settings (key, value) VALUES (?, ?)
		ON CONFLICT (key) DO UPDATE SET value = excluded.value`, key, value)
	if err != nil {
		return fmt.Errorf("writing setting %s: %w", key, err)
	}
	return nil
}

// scanner covers both *sql.Row and *sql.Rows.
type scanner interface {
	Scan(dest ...any) error
}

func scanFlight(row scanner) (model.FlightEntry, error) {
	var entry model.FlightEntry
	var date string
	err := row.Scan(&entry.ID, &date, &entry.Type, &entry.Registration,
		&entry.Route, &entry.TimeMinutes)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.FlightEntry{}, err
		}
		return model.FlightEntry{}, fmt.Errorf("scanning flight: %w", err)
	}

	entry.Date, err = parseDate(date)
	if err != nil {
		return model.FlightEntry{}, fmt.Errorf("scanning flight: %w", err)
	}
	return entry, nil
}

func requireRow(res sql.Result) error {
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("checking affected rows: %w", err)
	}
	if affected == 0 {
		return logbook.ErrNotFound
	}
	return nil
}

// Dates are stored as YYYY-MM-DD text; the calendar components are what the
// application compares, so no timezone conversion happens on either side.

func formatDate(date time.Time) string {
	return date.Format(time.DateOnly)
}

func parseDate(text string) (time.Time, error) {
	date, err := time.Parse(time.DateOnly, text)
	if err != nil {
		return time.Time{}, fmt.Errorf("parsing stored date %q: %w", text, err)
	}
	return date, nil
}
