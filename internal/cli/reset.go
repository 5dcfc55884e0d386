package cli

import (
	"fmt"

	"github.com/halwyn/gutlog/internal/db"
	"github.com/halwyn/gutlog/internal/security"
	"github.com/halwyn/gutlog/internal/services"
)

const temporaryPINLength = 6

// RunResetPINCommand replaces the app-lock PIN with a freshly generated
// temporary one and prints it. For the locked-out-on-device case; log data
// is untouched.
func RunResetPINCommand(dbPath string) error {
	database, err := db.OpenSQLite(dbPath)
	if err != nil {
		return fmt.Errorf("database init failed: %w", err)
	}

	repositories := db.NewRepositories(database)
	settings := services.NewSettingsService(repositories.Settings)
	lock := services.NewLockService(settings)

	enabled, err := lock.Enabled()
	if err != nil {
		return fmt.Errorf("load lock status: %w", err)
	}
	if !enabled {
		fmt.Println("App lock is not enabled; nothing to reset.")
		return nil
	}

	temporaryPIN, err := security.RandomPIN(temporaryPINLength)
	if err != nil {
		return fmt.Errorf("generate temporary pin: %w", err)
	}

	if err := lock.SetupPIN(temporaryPIN); err != nil {
		return fmt.Errorf("store temporary pin: %w", err)
	}

	fmt.Println("✅ App lock PIN reset")
	fmt.Printf("Temporary PIN: %s\n", temporaryPIN)
	fmt.Println("Change it from the settings screen after unlocking.")

	return nil
}
