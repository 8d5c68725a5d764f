package config

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// Config is the main configuration for dronelog.
type Config struct {
	InstallationID string         `toml:"installation_id"`
	BaseDir        string         `toml:"base_dir"`
	LogDir         string         `toml:"log_dir"`
	Database       DatabaseConfig `toml:"database"`
	Export         ExportConfig   `toml:"export"`
	Backup         BackupConfig   `toml:"backup"`
}

// DatabaseConfig configures the record store. This uses a tagged union
// pattern - the Type field determines which other fields are relevant.
type DatabaseConfig struct {
	Type    string `toml:"type"`               // "sqlite" or "memory"
	DataDir string `toml:"data_dir,omitempty"` // only used for type=sqlite
}

// ExportConfig configures the render surface exports are handed to.
// This uses a tagged union pattern - the Type field determines which other
// fields are relevant.
type ExportConfig struct {
	Type        string `toml:"type"`                 // "filesystem" or "memory"
	ExportDir   string `toml:"export_dir,omitempty"` // only used for type=filesystem
	OpenDisplay bool   `toml:"open_display"`         // hand the document to the system opener
}

// BackupConfig holds the backup destination and the age key pair used to
// encrypt snapshots. The private key is itself passphrase-encrypted.
type BackupConfig struct {
	BackupDir      string `toml:"backup_dir"`
	PublicKeyPath  string `toml:"public_key_path"`
	PrivateKeyPath string `toml:"private_key_path"`
}

// NewConfig creates a Config with the provided values and default layout
// under baseDir.
func NewConfig(installationID, baseDir string) *Config {
	return &Config{
		InstallationID: installationID,
		BaseDir:        baseDir,
		LogDir:         filepath.Join(baseDir, "log"),
		Database: DatabaseConfig{
			Type:    "sqlite",
			DataDir: filepath.Join(baseDir, "db"),
		},
		Export: ExportConfig{
			Type:        "filesystem",
			ExportDir:   filepath.Join(baseDir, "exports"),
			OpenDisplay: true,
		},
		Backup: BackupConfig{
			BackupDir:      filepath.Join(baseDir, "backups"),
			PublicKeyPath:  filepath.Join(baseDir, "keys", "dronelog.pub"),
			PrivateKeyPath: filepath.Join(baseDir, "keys", "dronelog.key"),
		},
	}
}

// Manager handles reading and writing configuration.
type Manager struct{}

// Read decodes a Config from the provided reader.
func (m *Manager) Read(r io.Reader) (*Config, error) {
	var cfg Config
	if _, err := toml.NewDecoder(r).Decode(&cfg); err != nil {
		return nil, fmt.Errorf("failed to decode config: %w", err)
	}
	return &cfg, nil
}

// Write encodes a Config to the provided writer.
func (m *Manager) Write(w io.Writer, cfg *Config) error {
	if err := toml.NewEncoder(w).Encode(cfg); err != nil {
		return fmt.Errorf("failed to encode config: %w", err)
	}
	return nil
}

// ReadFromFile reads a Config from the specified file path.
func ReadFromFile(path string) (*Config, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open config file: %w", err)
	}
	defer f.Close()

	m := &Manager{}
	cfg, err := m.Read(f)
	if err != nil {
		return nil, fmt.Errorf("reading config from %s: %w", path, err)
	}
	return cfg, nil
}

// writeToFile writes a Config to the specified file path.
func writeToFile(path string, cfg *Config) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create config file: %w", err)
	}
	defer f.Close()

	m := &Manager{}
	if err := m.Write(f, cfg); err != nil {
		return fmt.Errorf("writing config to %s: %w", path, err)
	}
	return nil
}

// Init initializes a new config file at the specified path. It refuses to
// overwrite an existing one.
func Init(path string, cfg *Config) error {
	if _, err := os.Stat(path); err == nil {
		return fmt.Errorf("config file already exists at %s", path)
	}

	if err := writeToFile(path, cfg); err != nil {
		return fmt.Errorf("initializing config: %w", err)
	}
	return nil
}
