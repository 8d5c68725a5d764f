package backup

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func newTestKeyring(t *testing.T) *Keyring {
	t.Helper()
	dir := t.TempDir()
	return NewKeyring(
		filepath.Join(dir, "keys", "dronelog.pub"),
		filepath.Join(dir, "keys", "dronelog.key"),
	)
}

func TestKeyring_Setup(t *testing.T) {
	k := newTestKeyring(t)

	if k.IsConfigured() {
		t.Fatal("keyring should not be configured before Setup")
	}

	if err := k.Setup("correct horse"); err != nil {
		t.Fatalf("Setup() error = %v", err)
	}
	if !k.IsConfigured() {
		t.Fatal("keyring should be configured after Setup")
	}

	pub, err := os.ReadFile(k.publicKeyPath)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.HasPrefix(string(pub), "age1") {
		t.Errorf("public key = %q, want an age1 recipient", pub)
	}

	priv, err := os.ReadFile(k.privateKeyPath)
	if err != nil {
		t.Fatal(err)
	}
	if strings.Contains(string(priv), "AGE-SECRET-KEY") {
		t.Error("private key stored in plaintext")
	}

	if _, err := k.Recipient(); err != nil {
		t.Errorf("Recipient() error = %v", err)
	}
}

func TestKeyring_Unlock(t *testing.T) {
	k := newTestKeyring(t)
	if err := k.Setup("correct horse"); err != nil {
		t.Fatal(err)
	}

	t.Run("correct passphrase", func(t *testing.T) {
		identity, err := k.Unlock("correct horse")
		if err != nil {
			t.Fatalf("Unlock() error = %v", err)
		}
		if identity == nil {
			t.Fatal("Unlock() returned nil identity")
		}
	})

	t.Run("wrong passphrase", func(t *testing.T) {
		if _, err := k.Unlock("wrong"); err == nil {
			t.Fatal("Unlock() expected error for wrong passphrase")
		}
	})
}

func TestCreateRestore_RoundTrip(t *testing.T) {
	k := newTestKeyring(t)
	if err := k.Setup("pass"); err != nil {
		t.Fatal(err)
	}

	dir := t.TempDir()
	dbPath := filepath.Join(dir, "db", "logbook.db")
	if err := os.MkdirAll(filepath.Dir(dbPath), 0755); err != nil {
		t.Fatal(err)
	}
	content := []byte("not a real database, but good enough to encrypt")
	if err := os.WriteFile(dbPath, content, 0600); err != nil {
		t.Fatal(err)
	}

	backupDir := filepath.Join(dir, "backups")
	now := time.Date(2024, 6, 15, 10, 30, 0, 0, time.UTC)

	snapshot, err := Create(k, dbPath, backupDir, now)
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}
	if want := filepath.Join(backupDir, "logbook-20240615T103000Z.db.age"); snapshot != want {
		t.Errorf("snapshot path = %q, want %q", snapshot, want)
	}

	encrypted, err := os.ReadFile(snapshot)
	if err != nil {
		t.Fatal(err)
	}
	if strings.Contains(string(encrypted), "not a real database") {
		t.Error("snapshot contains plaintext database content")
	}

	restorePath := filepath.Join(dir, "restored", "logbook.db")
	if err := Restore(k, snapshot, restorePath, "pass"); err != nil {
		t.Fatalf("Restore() error = %v", err)
	}
	restored, err := os.ReadFile(restorePath)
	if err != nil {
		t.Fatal(err)
	}
	if string(restored) != string(content) {
		t.Errorf("restored content = %q, want %q", restored, content)
	}
}

func TestRestore_WrongPassphrase(t *testing.T) {
	k := newTestKeyring(t)
	if err := k.Setup("pass"); err != nil {
		t.Fatal(err)
	}

	dir := t.TempDir()
	dbPath := filepath.Join(dir, "logbook.db")
	if err := os.WriteFile(dbPath, []byte("data"), 0600); err != nil {
		t.Fatal(err)
	}

	snapshot, err := Create(k, dbPath, filepath.Join(dir, "backups"), time.Now())
	if err != nil {
		t.Fatal(err)
	}

	target := filepath.Join(dir, "restored.db")
	if err := Restore(k, snapshot, target, "wrong"); err == nil {
		t.Fatal("Restore() expected error for wrong passphrase")
	}
	if _, err := os.Stat(target); !os.IsNotExist(err) {
		t.Error("failed restore should not create the target file")
	}
}
