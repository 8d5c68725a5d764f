package config

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"
)

func TestManager_ReadWrite_RoundTrip(t *testing.T) {
	original := &Config{
		InstallationID: "test-install-abc",
		BaseDir:        "/home/user/.local/share/dronelog",
		LogDir:         "/home/user/.local/share/dronelog/log",
		Database:       DatabaseConfig{Type: "sqlite", DataDir: "/home/user/.local/share/dronelog/db"},
		Export: ExportConfig{
			Type:        "filesystem",
			ExportDir:   "/home/user/.local/share/dronelog/exports",
			OpenDisplay: true,
		},
		Backup: BackupConfig{
			BackupDir:      "/home/user/.local/share/dronelog/backups",
			PublicKeyPath:  "/home/user/.local/share/dronelog/keys/dronelog.pub",
			PrivateKeyPath: "/home/user/.local/share/dronelog/keys/dronelog.key",
		},
	}

	var buf bytes.Buffer
	m := &Manager{}

	if err := m.Write(&buf, original); err != nil {
		t.Fatalf("Write() error = %v", err)
	}

	got, err := m.Read(&buf)
	if err != nil {
		t.Fatalf("Read() error = %v", err)
	}

	if got.InstallationID != original.InstallationID {
		t.Errorf("InstallationID = %q, want %q", got.InstallationID, original.InstallationID)
	}
	if got.BaseDir != original.BaseDir {
		t.Errorf("BaseDir = %q, want %q", got.BaseDir, original.BaseDir)
	}
	if got.LogDir != original.LogDir {
		t.Errorf("LogDir = %q, want %q", got.LogDir, original.LogDir)
	}
	if got.Database.Type != "sqlite" {
		t.Errorf("Database.Type = %q, want %q", got.Database.Type, "sqlite")
	}
	if got.Export.Type != "filesystem" {
		t.Errorf("Export.Type = %q, want %q", got.Export.Type, "filesystem")
	}
	if !got.Export.OpenDisplay {
		t.Error("Export.OpenDisplay = false, want true")
	}
	if got.Backup.BackupDir != original.Backup.BackupDir {
		t.Errorf("Backup.BackupDir = %q, want %q", got.Backup.BackupDir, original.Backup.BackupDir)
	}
	if got.Backup.PublicKeyPath != original.Backup.PublicKeyPath {
		t.Errorf("Backup.PublicKeyPath = %q, want %q", got.Backup.PublicKeyPath, original.Backup.PublicKeyPath)
	}
	if got.Backup.PrivateKeyPath != original.Backup.PrivateKeyPath {
		t.Errorf("Backup.PrivateKeyPath = %q, want %q", got.Backup.PrivateKeyPath, original.Backup.PrivateKeyPath)
	}
}

func TestNewConfig(t *testing.T) {
	cfg := NewConfig("install-1", "/data/dronelog")

	if cfg.InstallationID != "install-1" {
		t.Errorf("InstallationID = %q, want %q", cfg.InstallationID, "install-1")
	}
	if cfg.BaseDir != "/data/dronelog" {
		t.Errorf("BaseDir = %q, want %q", cfg.BaseDir, "/data/dronelog")
	}
	if cfg.LogDir != "/data/dronelog/log" {
		t.Errorf("LogDir = %q, want %q", cfg.LogDir, "/data/dronelog/log")
	}
	if cfg.Database.DataDir != "/data/dronelog/db" {
		t.Errorf("Database.DataDir = %q, want %q", cfg.Database.DataDir, "/data/dronelog/db")
	}
	if cfg.Export.ExportDir != "/data/dronelog/exports" {
		t.Errorf("Export.ExportDir = %q, want %q", cfg.Export.ExportDir, "/data/dronelog/exports")
	}
	if cfg.Backup.PublicKeyPath != "/data/dronelog/keys/dronelog.pub" {
		t.Errorf("Backup.PublicKeyPath = %q, want %q", cfg.Backup.PublicKeyPath, "/data/dronelog/keys/dronelog.pub")
	}
	if cfg.Backup.PrivateKeyPath != "/data/dronelog/keys/dronelog.key" {
		t.Errorf("Backup.PrivateKeyPath = %q, want %q", cfg.Backup.PrivateKeyPath, "/data/dronelog/keys/dronelog.key")
	}
}

func TestInit(t *testing.T) {
	t.Run("creates config file", func(t *testing.T) {
		dir := t.TempDir()
		path := filepath.Join(dir, "dronelog.toml")
		cfg := NewConfig("i1", dir)

		if err := Init(path, cfg); err != nil {
			t.Fatalf("Init() error = %v", err)
		}

		if _, err := os.Stat(path); err != nil {
			t.Fatalf("config file not created: %v", err)
		}
	})

	t.Run("fails if file already exists", func(t *testing.T) {
		dir := t.TempDir()
		path := filepath.Join(dir, "dronelog.toml")
		cfg := NewConfig("i1", dir)

		if err := Init(path, cfg); err != nil {
			t.Fatalf("first Init() error = %v", err)
		}

		err := Init(path, cfg)
		if err == nil {
			t.Fatal("second Init() expected error")
		}
	})
}

func TestReadFromFile(t *testing.T) {
	t.Run("reads valid config", func(t *testing.T) {
		dir := t.TempDir()
		path := filepath.Join(dir, "dronelog.toml")
		cfg := NewConfig("read-test", dir)
		cfg.Database = DatabaseConfig{Type: "memory"}

		if err := Init(path, cfg); err != nil {
			t.Fatalf("Init() error = %v", err)
		}

		got, err := ReadFromFile(path)
		if err != nil {
			t.Fatalf("ReadFromFile() error = %v", err)
		}
		if got.InstallationID != "read-test" {
			t.Errorf("InstallationID = %q, want %q", got.InstallationID, "read-test")
		}
		if got.Database.Type != "memory" {
			t.Errorf("Database.Type = %q, want %q", got.Database.Type, "memory")
		}
	})

	t.Run("returns error for missing file", func(t *testing.T) {
		_, err := ReadFromFile("/nonexistent/path/dronelog.toml")
		if err == nil {
			t.Fatal("ReadFromFile() expected error for missing file")
		}
	})
}
