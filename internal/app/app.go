package app

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"dronelog-go/internal/backup"
	"dronelog-go/internal/config"
	"dronelog-go/internal/i18n"
	"dronelog-go/internal/logbook"
	"dronelog-go/internal/model"
	"dronelog-go/internal/render"
	"dronelog-go/internal/store"
)

// App is the application layer between the CLI and the logbook service. It
// constructs all dependencies from config, exposes the operations the
// commands need, and manages the store lifecycle on Close.
type App struct {
	cfg     *config.Config
	store   logbook.Store
	surface logbook.RenderSurface
	service *logbook.Service
	logFile *os.File
}

// New creates a fully wired App from the given config. operation identifies
// the CLI command being run (e.g. "AddFlight", "Export") and tags every log
// line of this invocation. The caller must call Close when done.
func New(cfg *config.Config, operation string) (*App, error) {
	st, err := store.NewStoreFromConfig(cfg.Database)
	if err != nil {
		return nil, fmt.Errorf("creating store: %w", err)
	}

	surface, err := render.NewSurfaceFromConfig(cfg.Export)
	if err != nil {
		st.Close()
		return nil, fmt.Errorf("creating render surface: %w", err)
	}

	opID := fmt.Sprintf("%s-%s", operation, time.Now().UTC().Format("20060102T150405Z"))
	logger, logFile, err := newLogger(cfg.LogDir, opID)
	if err != nil {
		st.Close()
		return nil, fmt.Errorf("creating logger: %w", err)
	}

	svc, err := logbook.NewService(st, surface, &slogAdapter{l: logger},
		logbook.RealClock{}, logbook.UUIDGenerator{}, logbook.ExportTokenGenerator{})
	if err != nil {
		logFile.Close()
		st.Close()
		return nil, fmt.Errorf("creating service: %w", err)
	}

	return &App{
		cfg:     cfg,
		store:   st,
		surface: surface,
		service: svc,
		logFile: logFile,
	}, nil
}

// Service exposes the logbook operations.
func (a *App) Service() *logbook.Service { return a.service }

// Language returns the stored display language for CLI output.
func (a *App) Language() i18n.Language {
	lang, err := a.service.Language()
	if err != nil {
		return i18n.Default
	}
	return lang
}

// Close closes the store and the log file.
func (a *App) Close() error {
	var firstErr error
	if err := a.store.Close(); err != nil {
		firstErr = fmt.Errorf("closing store: %w", err)
	}
	if a.logFile != nil {
		a.logFile.Close()
	}
	return firstErr
}

// DatabasePath returns the SQLite file path for the given config, used by
// the backup commands which operate on the closed database file directly.
func DatabasePath(cfg *config.Config) (string, error) {
	if cfg.Database.Type != "sqlite" {
		return "", fmt.Errorf("backups require a sqlite database (configured type: %s)", cfg.Database.Type)
	}
	if cfg.Database.DataDir == "" {
		return "", fmt.Errorf("data_dir is not configured")
	}
	return filepath.Join(cfg.Database.DataDir, "logbook.db"), nil
}

// Keyring returns the backup keyring for the given config.
func Keyring(cfg *config.Config) *backup.Keyring {
	return backup.NewKeyring(cfg.Backup.PublicKeyPath, cfg.Backup.PrivateKeyPath)
}

// Wipe deletes all stored data: profile, flight entries and settings. The
// config and backups are left in place.
func (a *App) Wipe() error {
	entries, err := a.store.ListFlights()
	if err != nil {
		return fmt.Errorf("listing flights: %w", err)
	}
	for _, e := range entries {
		if err := a.store.DeleteFlight(e.ID); err != nil {
			return fmt.Errorf("deleting flight %s: %w", e.ID, err)
		}
	}
	if err := a.store.SaveProfile(model.PilotProfile{}); err != nil {
		return fmt.Errorf("clearing profile: %w", err)
	}
	if err := a.store.SetPlanPro(false); err != nil {
		return fmt.Errorf("resetting plan flag: %w", err)
	}
	if err := a.store.SetLanguage(i18n.Default); err != nil {
		return fmt.Errorf("resetting language: %w", err)
	}
	return nil
}
