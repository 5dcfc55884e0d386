package cli

import (
	"path/filepath"
	"testing"

	"github.com/halwyn/gutlog/internal/db"
	"github.com/halwyn/gutlog/internal/services"
)

func TestResetPINWithoutLockIsNoOp(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "test.db")

	if err := RunResetPINCommand(dbPath); err != nil {
		t.Fatalf("reset on a lock-less database: %v", err)
	}

	database, err := db.OpenSQLite(dbPath)
	if err != nil {
		t.Fatalf("reopen database: %v", err)
	}
	lock := services.NewLockService(services.NewSettingsService(db.NewSettingRepository(database)))

	enabled, err := lock.Enabled()
	if err != nil {
		t.Fatalf("load lock status: %v", err)
	}
	if enabled {
		t.Fatal("expected the lock still disabled after a no-op reset")
	}
}

func TestResetPINReplacesExistingPIN(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "test.db")

	database, err := db.OpenSQLite(dbPath)
	if err != nil {
		t.Fatalf("open database: %v", err)
	}
	settings := services.NewSettingsService(db.NewSettingRepository(database))
	lock := services.NewLockService(settings)
	if err := lock.SetupPIN("4812"); err != nil {
		t.Fatalf("set up initial pin: %v", err)
	}

	if err := RunResetPINCommand(dbPath); err != nil {
		t.Fatalf("reset: %v", err)
	}

	enabled, err := lock.Enabled()
	if err != nil {
		t.Fatalf("load lock status: %v", err)
	}
	if !enabled {
		t.Fatal("expected the lock still enabled after the reset")
	}

	ok, err := lock.VerifyPIN("4812")
	if err != nil {
		t.Fatalf("verify old pin: %v", err)
	}
	if ok {
		t.Fatal("expected the old pin invalidated by the reset")
	}
}
