package backup

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"filippo.io/age"
)

// snapshotTimeLayout names backup files by creation time.
const snapshotTimeLayout = "20060102T150405Z"

// Create writes an age-encrypted copy of the database file into backupDir
// and returns the snapshot path. The store should be closed while this runs
// so the file is a consistent snapshot.
func Create(keyring *Keyring, dbPath, backupDir string, now time.Time) (string, error) {
	recipient, err := keyring.Recipient()
	if err != nil {
		return "", fmt.Errorf("loading backup key: %w", err)
	}

	src, err := os.Open(dbPath)
	if err != nil {
		return "", fmt.Errorf("opening database file: %w", err)
	}
	defer src.Close()

	if err := os.MkdirAll(backupDir, 0700); err != nil {
		return "", fmt.Errorf("creating backup directory: %w", err)
	}

	name := fmt.Sprintf("logbook-%s.db.age", now.UTC().Format(snapshotTimeLayout))
	path := filepath.Join(backupDir, name)

	dst, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0600)
	if err != nil {
		return "", fmt.Errorf("creating backup file: %w", err)
	}
	defer dst.Close()

	w, err := age.Encrypt(dst, recipient)
	if err != nil {
		os.Remove(path)
		return "", fmt.Errorf("creating encrypted writer: %w", err)
	}
	if _, err := io.Copy(w, src); err != nil {
		os.Remove(path)
		return "", fmt.Errorf("encrypting database: %w", err)
	}
	if err := w.Close(); err != nil {
		os.Remove(path)
		return "", fmt.Errorf("finalizing backup: %w", err)
	}

	return path, nil
}

// Restore decrypts the snapshot at backupPath with the passphrase-unlocked
// private key and writes it to dbPath, replacing any existing database. The
// store must be closed while this runs.
func Restore(keyring *Keyring, backupPath, dbPath, passphrase string) error {
	identity, err := keyring.Unlock(passphrase)
	if err != nil {
		return fmt.Errorf("unlocking backup key: %w", err)
	}

	src, err := os.Open(backupPath)
	if err != nil {
		return fmt.Errorf("opening backup file: %w", err)
	}
	defer src.Close()

	r, err := age.Decrypt(src, identity)
	if err != nil {
		return fmt.Errorf("decrypting backup: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(dbPath), 0755); err != nil {
		return fmt.Errorf("creating data directory: %w", err)
	}

	// Write to a temp file next to the target, then rename, so a failed
	// restore never leaves a truncated database behind.
	tmp, err := os.CreateTemp(filepath.Dir(dbPath), ".restore-*.db")
	if err != nil {
		return fmt.Errorf("creating temp file: %w", err)
	}
	tmpPath := tmp.Name()

	if _, err := io.Copy(tmp, r); err != nil {
		tmp.Close()
		os.Remove(tmpPath)
		return fmt.Errorf("decrypting backup: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("finalizing restore: %w", err)
	}

	if err := os.Rename(tmpPath, dbPath); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("replacing database: %w", err)
	}
	return nil
}
