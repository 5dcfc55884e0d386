package services

import (
	"errors"
	"fmt"
	"regexp"

	"golang.org/x/crypto/bcrypt"
)

var pinPattern = regexp.MustCompile(`^\d{4,8}$`)

var ErrInvalidPIN = errors.New("pin must be 4 to 8 digits")

// LockService backs the on-device app lock: a numeric PIN hashed with
// bcrypt in the settings table. Biometric unlock stays a platform
// collaborator; this core only verifies PINs.
type LockService struct {
	settings *SettingsService
}

func NewLockService(settings *SettingsService) *LockService {
	return &LockService{settings: settings}
}

func (service *LockService) Enabled() (bool, error) {
	return service.settings.AppLockEnabled()
}

// SetupPIN hashes and stores the PIN and turns the lock on.
func (service *LockService) SetupPIN(pin string) error {
	if !pinPattern.MatchString(pin) {
		return ErrInvalidPIN
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(pin), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("hash pin: %w", err)
	}
	if err := service.settings.SetPINHash(string(hash)); err != nil {
		return err
	}
	return service.settings.SetAppLockEnabled(true)
}

func (service *LockService) VerifyPIN(pin string) (bool, error) {
	hash, err := service.settings.PINHash()
	if err != nil {
		return false, err
	}
	if hash == "" {
		return false, nil
	}
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(pin)) == nil, nil
}

// Disable turns the lock off and drops the stored hash.
func (service *LockService) Disable() error {
	if err := service.settings.SetAppLockEnabled(false); err != nil {
		return err
	}
	return service.settings.ClearPINHash()
}
