package services

import (
	"fmt"
	"time"

	"github.com/halwyn/gutlog/internal/db"
	"github.com/halwyn/gutlog/internal/models"
)

// LogStore owns the persisted collection of log entries. It is the only
// component that writes persisted state; every completed write fans out one
// change notification through the hub.
type LogStore struct {
	entries *db.LogEntryRepository
	hub     *ChangeHub
	clock   func() time.Time
}

// EntryPatch carries a partial update. Nil fields are left untouched; the
// merge never validates cross-field consistency (a meal may end up with a
// bristol type).
type EntryPatch struct {
	Type           *string    `json:"type"`
	Timestamp      *time.Time `json:"timestamp"`
	BristolType    *int       `json:"bristolType"`
	PainLevel      *int       `json:"painLevel"`
	StressLevel    *int       `json:"stressLevel"`
	Symptoms       *[]string  `json:"symptoms"`
	Foods          *[]string  `json:"foods"`
	TriggerFoods   *[]string  `json:"triggerFoods"`
	Medication     *string    `json:"medication"`
	MedicationDose *string    `json:"medicationDose"`
	Notes          *string    `json:"notes"`
	AIGenerated    *bool      `json:"aiGenerated"`
	RawTranscript  *string    `json:"rawTranscript"`
}

func NewLogStore(entries *db.LogEntryRepository, hub *ChangeHub) *LogStore {
	return &LogStore{
		entries: entries,
		hub:     hub,
		clock:   time.Now,
	}
}

// Available reports whether persistent storage backs this store.
func (store *LogStore) Available() bool {
	return store.entries != nil
}

// Add stamps both timestamps to now, persists the draft and returns the
// assigned id. The draft's own id, if any, is discarded.
func (store *LogStore) Add(draft models.LogEntry) (uint, error) {
	if !store.Available() {
		return 0, ErrUnavailable
	}

	now := store.clock()
	draft.ID = 0
	draft.CreatedAt = now
	draft.UpdatedAt = now
	if draft.Timestamp.IsZero() {
		draft.Timestamp = now
	}

	if err := store.entries.Create(&draft); err != nil {
		return 0, fmt.Errorf("create log entry: %w", err)
	}

	store.notify()
	return draft.ID, nil
}

// Update merges the patch into the stored entry and refreshes UpdatedAt so
// it strictly increases even under sub-clock-resolution successive calls.
func (store *LogStore) Update(id uint, patch EntryPatch) (models.LogEntry, error) {
	if !store.Available() {
		return models.LogEntry{}, ErrUnavailable
	}

	entry, found, err := store.entries.FindByID(id)
	if err != nil {
		return models.LogEntry{}, fmt.Errorf("load log entry %d: %w", id, err)
	}
	if !found {
		return models.LogEntry{}, ErrNotFound
	}

	applyPatch(&entry, patch)

	now := store.clock()
	if !now.After(entry.UpdatedAt) {
		now = entry.UpdatedAt.Add(time.Microsecond)
	}
	entry.UpdatedAt = now

	if err := store.entries.Save(&entry); err != nil {
		return models.LogEntry{}, fmt.Errorf("save log entry %d: %w", id, err)
	}

	store.notify()
	return entry, nil
}

// Delete removes an entry. Deleting a missing id is not an error; the
// persistence contract is tolerant at this layer.
func (store *LogStore) Delete(id uint) error {
	if !store.Available() {
		return ErrUnavailable
	}

	if err := store.entries.Delete(id); err != nil {
		return fmt.Errorf("delete log entry %d: %w", id, err)
	}

	store.notify()
	return nil
}

// ClearAll removes every entry. Irreversible.
func (store *LogStore) ClearAll() error {
	if !store.Available() {
		return ErrUnavailable
	}

	if err := store.entries.DeleteAll(); err != nil {
		return fmt.Errorf("clear log entries: %w", err)
	}

	store.notify()
	return nil
}

// ExportAll returns every entry; callers re-sort as needed.
func (store *LogStore) ExportAll() ([]models.LogEntry, error) {
	if !store.Available() {
		return nil, ErrUnavailable
	}

	entries, err := store.entries.ListAll()
	if err != nil {
		return nil, fmt.Errorf("export log entries: %w", err)
	}
	return entries, nil
}

// ImportMany strips pre-existing ids and bulk-inserts the batch inside one
// transaction: either every entry lands or none does. Duplicate detection
// is deliberately not performed. Stored timestamps travel with the entry so
// an export/import roundtrip preserves content field for field.
func (store *LogStore) ImportMany(entries []models.LogEntry) (int, error) {
	if !store.Available() {
		return 0, ErrUnavailable
	}

	now := store.clock()
	batch := make([]models.LogEntry, len(entries))
	for index, entry := range entries {
		entry.ID = 0
		if entry.CreatedAt.IsZero() {
			entry.CreatedAt = now
		}
		if entry.UpdatedAt.IsZero() {
			entry.UpdatedAt = entry.CreatedAt
		}
		if entry.Timestamp.IsZero() {
			entry.Timestamp = entry.CreatedAt
		}
		batch[index] = entry
	}

	if err := store.entries.CreateBatch(batch); err != nil {
		return 0, fmt.Errorf("import log entries: %w", err)
	}

	store.notify()
	return len(batch), nil
}

func (store *LogStore) Get(id uint) (models.LogEntry, error) {
	if !store.Available() {
		return models.LogEntry{}, ErrUnavailable
	}

	entry, found, err := store.entries.FindByID(id)
	if err != nil {
		return models.LogEntry{}, fmt.Errorf("load log entry %d: %w", id, err)
	}
	if !found {
		return models.LogEntry{}, ErrNotFound
	}
	return entry, nil
}

// Between returns entries with from <= timestamp < to, ascending.
func (store *LogStore) Between(from time.Time, to time.Time) ([]models.LogEntry, error) {
	if !store.Available() {
		return nil, ErrUnavailable
	}

	entries, err := store.entries.ListRange(from, to)
	if err != nil {
		return nil, fmt.Errorf("list log entries in range: %w", err)
	}
	return entries, nil
}

// ByType returns entries of one type, newest first.
func (store *LogStore) ByType(entryType string) ([]models.LogEntry, error) {
	if !store.Available() {
		return nil, ErrUnavailable
	}

	entries, err := store.entries.ListByType(entryType)
	if err != nil {
		return nil, fmt.Errorf("list %s entries: %w", entryType, err)
	}
	return entries, nil
}

// Recent returns entries newest first, capped at limit when limit > 0.
func (store *LogStore) Recent(limit int) ([]models.LogEntry, error) {
	if !store.Available() {
		return nil, ErrUnavailable
	}

	entries, err := store.entries.ListRecent(limit)
	if err != nil {
		return nil, fmt.Errorf("list recent log entries: %w", err)
	}
	return entries, nil
}

// LastNDays returns entries from the rolling window of the past n days.
func (store *LogStore) LastNDays(n int) ([]models.LogEntry, error) {
	if !store.Available() {
		return nil, ErrUnavailable
	}

	now := store.clock()
	entries, err := store.entries.ListRange(now.AddDate(0, 0, -n), now.Add(time.Second))
	if err != nil {
		return nil, fmt.Errorf("list last %d days: %w", n, err)
	}
	return entries, nil
}

// Count counts entries, optionally restricted to one type.
func (store *LogStore) Count(entryType string) (int64, error) {
	if !store.Available() {
		return 0, ErrUnavailable
	}

	count, err := store.entries.Count(entryType)
	if err != nil {
		return 0, fmt.Errorf("count log entries: %w", err)
	}
	return count, nil
}

// LatestByType returns the most recent entry of a type, e.g. the latest
// bowel movement. found is false when none exists.
func (store *LogStore) LatestByType(entryType string) (models.LogEntry, bool, error) {
	if !store.Available() {
		return models.LogEntry{}, false, ErrUnavailable
	}

	entry, found, err := store.entries.LatestByType(entryType)
	if err != nil {
		return models.LogEntry{}, false, fmt.Errorf("load latest %s entry: %w", entryType, err)
	}
	return entry, found, nil
}

func (store *LogStore) notify() {
	if store.hub != nil {
		store.hub.Notify()
	}
}

func applyPatch(entry *models.LogEntry, patch EntryPatch) {
	if patch.Type != nil {
		entry.Type = *patch.Type
	}
	if patch.Timestamp != nil {
		entry.Timestamp = *patch.Timestamp
	}
	if patch.BristolType != nil {
		entry.BristolType = patch.BristolType
	}
	if patch.PainLevel != nil {
		entry.PainLevel = patch.PainLevel
	}
	if patch.StressLevel != nil {
		entry.StressLevel = patch.StressLevel
	}
	if patch.Symptoms != nil {
		entry.Symptoms = *patch.Symptoms
	}
	if patch.Foods != nil {
		entry.Foods = *patch.Foods
	}
	if patch.TriggerFoods != nil {
		entry.TriggerFoods = *patch.TriggerFoods
	}
	if patch.Medication != nil {
		entry.Medication = *patch.Medication
	}
	if patch.MedicationDose != nil {
		entry.MedicationDose = *patch.MedicationDose
	}
	if patch.Notes != nil {
		entry.Notes = *patch.Notes
	}
	if patch.AIGenerated != nil {
		entry.AIGenerated = *patch.AIGenerated
	}
	if patch.RawTranscript != nil {
		entry.RawTranscript = *patch.RawTranscript
	}
}
