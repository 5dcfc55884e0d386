package services

import (
	"encoding/json"
	"fmt"
	"regexp"

	"github.com/halwyn/gutlog/internal/db"
	"github.com/halwyn/gutlog/internal/models"
)

var reminderTimePattern = regexp.MustCompile(`^([01]\d|2[0-3]):[0-5]\d$`)

// SettingsService provides typed access over the free-form key→value
// settings table. Values are stored JSON-encoded so the storage shape stays
// an arbitrary settings row.
type SettingsService struct {
	settings *db.SettingRepository
}

func NewSettingsService(settings *db.SettingRepository) *SettingsService {
	return &SettingsService{settings: settings}
}

func (service *SettingsService) AppLockEnabled() (bool, error) {
	return service.getBool(models.SettingAppLockEnabled)
}

func (service *SettingsService) SetAppLockEnabled(enabled bool) error {
	return service.set(models.SettingAppLockEnabled, enabled)
}

func (service *SettingsService) PINHash() (string, error) {
	return service.getString(models.SettingPINHash)
}

func (service *SettingsService) SetPINHash(hash string) error {
	return service.set(models.SettingPINHash, hash)
}

func (service *SettingsService) ClearPINHash() error {
	if service.settings == nil {
		return ErrUnavailable
	}
	if err := service.settings.Delete(models.SettingPINHash); err != nil {
		return fmt.Errorf("clear setting %s: %w", models.SettingPINHash, err)
	}
	return nil
}

// ReminderTime is the daily logging-reminder time as "HH:MM", empty when
// reminders are off.
func (service *SettingsService) ReminderTime() (string, error) {
	return service.getString(models.SettingReminderTime)
}

func (service *SettingsService) SetReminderTime(value string) error {
	if value != "" && !reminderTimePattern.MatchString(value) {
		return fmt.Errorf("invalid reminder time %q, want HH:MM", value)
	}
	return service.set(models.SettingReminderTime, value)
}

func (service *SettingsService) Theme() (string, error) {
	return service.getString(models.SettingTheme)
}

func (service *SettingsService) SetTheme(value string) error {
	return service.set(models.SettingTheme, value)
}

// Snapshot returns every stored setting decoded, minus the PIN hash, which
// never leaves the store.
func (service *SettingsService) Snapshot() (map[string]any, error) {
	if service.settings == nil {
		return map[string]any{}, nil
	}

	rows, err := service.settings.ListAll()
	if err != nil {
		return nil, fmt.Errorf("list settings: %w", err)
	}

	snapshot := make(map[string]any, len(rows))
	for _, row := range rows {
		if row.Key == models.SettingPINHash {
			continue
		}
		var value any
		if err := json.Unmarshal([]byte(row.Value), &value); err != nil {
			value = row.Value
		}
		snapshot[row.Key] = value
	}
	return snapshot, nil
}

func (service *SettingsService) set(key string, value any) error {
	if service.settings == nil {
		return ErrUnavailable
	}

	encoded, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("encode setting %s: %w", key, err)
	}
	if err := service.settings.Upsert(&models.AppSetting{Key: key, Value: string(encoded)}); err != nil {
		return fmt.Errorf("store setting %s: %w", key, err)
	}
	return nil
}

func (service *SettingsService) getString(key string) (string, error) {
	if service.settings == nil {
		return "", nil
	}

	row, found, err := service.settings.FindByKey(key)
	if err != nil {
		return "", fmt.Errorf("load setting %s: %w", key, err)
	}
	if !found {
		return "", nil
	}

	var value string
	if err := json.Unmarshal([]byte(row.Value), &value); err != nil {
		return row.Value, nil
	}
	return value, nil
}

func (service *SettingsService) getBool(key string) (bool, error) {
	if service.settings == nil {
		return false, nil
	}

	row, found, err := service.settings.FindByKey(key)
	if err != nil {
		return false, fmt.Errorf("load setting %s: %w", key, err)
	}
	if !found {
		return false, nil
	}

	var value bool
	if err := json.Unmarshal([]byte(row.Value), &value); err != nil {
		return false, nil
	}
	return value, nil
}
