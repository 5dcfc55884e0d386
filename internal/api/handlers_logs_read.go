package api

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/halwyn/gutlog/internal/models"
)

const queryDateLayout = "2006-01-02"

// ListLogs serves "all logs" reverse-chronological, with optional limit,
// type, rolling day-window and date-range filters.
func (handler *Handler) ListLogs(c *fiber.Ctx) error {
	entryType := c.Query("type")
	limit := c.QueryInt("limit")

	if days := c.QueryInt("days"); days > 0 {
		entries, err := handler.store.LastNDays(days)
		if err != nil {
			return storeError(c, err, "failed to list log entries")
		}
		return c.JSON(filterReversed(entries, entryType, limit))
	}

	fromRaw, toRaw := c.Query("from"), c.Query("to")
	if fromRaw != "" || toRaw != "" {
		from, to, err := parseQueryRange(fromRaw, toRaw, handler.location)
		if err != nil {
			return apiError(c, fiber.StatusBadRequest, "invalid date range, want YYYY-MM-DD")
		}
		entries, err := handler.store.Between(from, to)
		if err != nil {
			return storeError(c, err, "failed to list log entries")
		}
		return c.JSON(filterReversed(entries, entryType, limit))
	}

	if entryType != "" {
		entries, err := handler.store.ByType(entryType)
		if err != nil {
			return storeError(c, err, "failed to list log entries")
		}
		if limit > 0 && len(entries) > limit {
			entries = entries[:limit]
		}
		return c.JSON(entries)
	}

	entries, err := handler.store.Recent(limit)
	if err != nil {
		return storeError(c, err, "failed to list log entries")
	}
	return c.JSON(entries)
}

func (handler *Handler) GetLog(c *fiber.Ctx) error {
	id, err := parseLogID(c)
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid log id")
	}

	entry, err := handler.store.Get(id)
	if err != nil {
		return storeError(c, err, "failed to load log entry")
	}
	return c.JSON(entry)
}

func (handler *Handler) CountLogs(c *fiber.Ctx) error {
	count, err := handler.store.Count(c.Query("type"))
	if err != nil {
		return storeError(c, err, "failed to count log entries")
	}
	return c.JSON(fiber.Map{"count": count})
}

// LatestLog returns the most recent entry of a type; the default type is
// bowel_movement, the dashboard's "most recent BM" card.
func (handler *Handler) LatestLog(c *fiber.Ctx) error {
	entryType := c.Query("type", models.EntryTypeBowelMovement)

	entry, found, err := handler.store.LatestByType(entryType)
	if err != nil {
		return storeError(c, err, "failed to load latest log entry")
	}
	if !found {
		return c.JSON(fiber.Map{"entry": nil})
	}
	return c.JSON(fiber.Map{"entry": entry})
}

// filterReversed flips ascending range reads into the reverse-chronological
// order the list surface promises, applying type filter and cap.
func filterReversed(entries []models.LogEntry, entryType string, limit int) []models.LogEntry {
	filtered := make([]models.LogEntry, 0, len(entries))
	for index := len(entries) - 1; index >= 0; index-- {
		if entryType != "" && entries[index].Type != entryType {
			continue
		}
		filtered = append(filtered, entries[index])
		if limit > 0 && len(filtered) == limit {
			break
		}
	}
	return filtered
}

func parseQueryRange(fromRaw string, toRaw string, location *time.Location) (time.Time, time.Time, error) {
	from := time.Time{}
	to := time.Now().In(location).AddDate(0, 0, 1)

	if fromRaw != "" {
		parsed, err := time.ParseInLocation(queryDateLayout, fromRaw, location)
		if err != nil {
			return time.Time{}, time.Time{}, err
		}
		from = parsed
	}
	if toRaw != "" {
		parsed, err := time.ParseInLocation(queryDateLayout, toRaw, location)
		if err != nil {
			return time.Time{}, time.Time{}, err
		}
		// Inclusive end date: the range covers the whole "to" day.
		to = parsed.AddDate(0, 0, 1)
	}
	return from, to, nil
}

func parseMonthParam(raw string, location *time.Location) (time.Time, error) {
	parsed, err := time.ParseInLocation("2006-01", raw, location)
	if err != nil {
		return time.Time{}, err
	}
	return parsed, nil
}
