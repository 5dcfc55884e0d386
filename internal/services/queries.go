package services

import (
	"errors"
	"log"
	"time"

	"github.com/halwyn/gutlog/internal/models"
)

// Live query constructors: windowed reads over the LogStore wrapped in the
// subscription primitive. Each read resolves to an empty default while the
// store is unavailable; unexpected storage errors are logged and likewise
// resolve empty, because a live view has no caller to surface them to.

// LiveRecentLogs is "all logs", reverse-chronological, capped at limit when
// limit > 0.
func LiveRecentLogs(hub *ChangeHub, store *LogStore, limit int) *Subscription[[]models.LogEntry] {
	return Subscribe(hub, func() []models.LogEntry {
		return entriesOrEmpty(store.Recent(limit))
	})
}

func LiveLogsByType(hub *ChangeHub, store *LogStore, entryType string) *Subscription[[]models.LogEntry] {
	return Subscribe(hub, func() []models.LogEntry {
		return entriesOrEmpty(store.ByType(entryType))
	})
}

func LiveLogsBetween(hub *ChangeHub, store *LogStore, from time.Time, to time.Time) *Subscription[[]models.LogEntry] {
	return Subscribe(hub, func() []models.LogEntry {
		return entriesOrEmpty(store.Between(from, to))
	})
}

// LiveLogsLastNDays re-reads the rolling n-day window on every write. A
// changed n means closing this subscription and opening a new one.
func LiveLogsLastNDays(hub *ChangeHub, store *LogStore, n int) *Subscription[[]models.LogEntry] {
	return Subscribe(hub, func() []models.LogEntry {
		return entriesOrEmpty(store.LastNDays(n))
	})
}

func LiveLogCount(hub *ChangeHub, store *LogStore, entryType string) *Subscription[int64] {
	return Subscribe(hub, func() int64 {
		count, err := store.Count(entryType)
		if err != nil {
			logUnexpectedReadError(err)
			return 0
		}
		return count
	})
}

// LiveLatestLog tracks the most recent entry of one type, typically the
// latest bowel movement. The pointer is nil while none exists.
func LiveLatestLog(hub *ChangeHub, store *LogStore, entryType string) *Subscription[*models.LogEntry] {
	return Subscribe(hub, func() *models.LogEntry {
		entry, found, err := store.LatestByType(entryType)
		if err != nil {
			logUnexpectedReadError(err)
			return nil
		}
		if !found {
			return nil
		}
		return &entry
	})
}

// LiveCorrelation recomputes the full correlation analysis on every write.
// Recomputation is deliberately not incremental; the dataset is one user's
// lifetime log, thousands of rows at most.
func LiveCorrelation(hub *ChangeHub, store *LogStore) *Subscription[CorrelationResult] {
	return Subscribe(hub, func() CorrelationResult {
		return AnalyzeCorrelations(entriesOrEmpty(store.ExportAll()))
	})
}

// LiveMonthlyHeatmap recomputes the per-day severity map for one calendar
// month on every write. A changed month reference means a new subscription.
func LiveMonthlyHeatmap(hub *ChangeHub, store *LogStore, monthReference time.Time, location *time.Location) *Subscription[map[string]DaySeverity] {
	monthStart, monthEnd := MonthRange(monthReference, location)
	return Subscribe(hub, func() map[string]DaySeverity {
		entries := entriesOrEmpty(store.Between(monthStart, monthEnd))
		return BuildMonthlyHeatmap(entries, location)
	})
}

func entriesOrEmpty(entries []models.LogEntry, err error) []models.LogEntry {
	if err != nil {
		logUnexpectedReadError(err)
		return []models.LogEntry{}
	}
	return entries
}

func logUnexpectedReadError(err error) {
	if errors.Is(err, ErrUnavailable) {
		return
	}
	log.Printf("live query read failed: %v", err)
}
