package models

// Recognized settings keys. The table itself is a free-form key→value bag;
// typed access lives in services.SettingsService.
const (
	SettingAppLockEnabled = "app_lock_enabled"
	SettingPINHash        = "pin_hash"
	SettingReminderTime   = "reminder_time"
	SettingTheme          = "theme"
)

// AppSetting is one settings row. Value holds the JSON encoding of an
// arbitrary value, so the storage shape stays schemaless while Go callers
// go through typed accessors.
type AppSetting struct {
	Key   string `gorm:"primaryKey" json:"key"`
	Value string `gorm:"not null" json:"value"`
}
