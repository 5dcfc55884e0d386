package api

import (
	"fmt"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/halwyn/gutlog/internal/models"
)

func createTestLog(t *testing.T, app *fiber.App, payload map[string]any) models.LogEntry {
	t.Helper()

	response := performRequest(t, app, jsonRequest(t, "POST", "/api/logs", payload))
	if response.StatusCode != fiber.StatusCreated {
		t.Fatalf("expected 201 creating a log, got %d", response.StatusCode)
	}

	entry := models.LogEntry{}
	decodeResponse(t, response, &entry)
	return entry
}

func TestCreateLogReturnsStoredEntry(t *testing.T) {
	app, _ := newTestApp(t)

	entry := createTestLog(t, app, map[string]any{
		"type":        "bowel_movement",
		"timestamp":   "2026-03-02T07:30:00Z",
		"bristolType": 6,
		"painLevel":   4,
		"symptoms":    []string{"cramping"},
	})

	if entry.ID == 0 {
		t.Fatal("expected an assigned id")
	}
	if entry.Type != models.EntryTypeBowelMovement {
		t.Fatalf("expected bowel_movement, got %q", entry.Type)
	}
	if entry.BristolType == nil || *entry.BristolType != 6 {
		t.Fatalf("expected bristol type 6, got %#v", entry.BristolType)
	}
	if entry.CreatedAt.IsZero() {
		t.Fatal("expected createdAt stamped by the store")
	}
}

func TestCreateLogRequiresType(t *testing.T) {
	app, _ := newTestApp(t)

	response := performRequest(t, app, jsonRequest(t, "POST", "/api/logs", map[string]any{
		"notes": "missing type",
	}))
	if response.StatusCode != fiber.StatusBadRequest {
		t.Fatalf("expected 400, got %d", response.StatusCode)
	}
}

func TestGetLogByID(t *testing.T) {
	app, _ := newTestApp(t)
	created := createTestLog(t, app, map[string]any{"type": "meal", "foods": []string{"Rice"}})

	response := performRequest(t, app, httptest.NewRequest("GET", fmt.Sprintf("/api/logs/%d", created.ID), nil))
	if response.StatusCode != fiber.StatusOK {
		t.Fatalf("expected 200, got %d", response.StatusCode)
	}

	entry := models.LogEntry{}
	decodeResponse(t, response, &entry)
	if entry.ID != created.ID || len(entry.Foods) != 1 || entry.Foods[0] != "Rice" {
		t.Fatalf("expected the stored entry back, got %#v", entry)
	}
}

func TestGetLogErrors(t *testing.T) {
	app, _ := newTestApp(t)

	response := performRequest(t, app, httptest.NewRequest("GET", "/api/logs/999", nil))
	if response.StatusCode != fiber.StatusNotFound {
		t.Fatalf("expected 404 for a missing id, got %d", response.StatusCode)
	}

	response = performRequest(t, app, httptest.NewRequest("GET", "/api/logs/not-a-number", nil))
	if response.StatusCode != fiber.StatusBadRequest {
		t.Fatalf("expected 400 for a malformed id, got %d", response.StatusCode)
	}
}

func TestListLogsNewestFirstWithLimit(t *testing.T) {
	app, _ := newTestApp(t)

	for hour := 8; hour <= 12; hour++ {
		createTestLog(t, app, map[string]any{
			"type":      "symptom",
			"timestamp": fmt.Sprintf("2026-03-02T%02d:00:00Z", hour),
		})
	}

	response := performRequest(t, app, httptest.NewRequest("GET", "/api/logs?limit=3", nil))
	if response.StatusCode != fiber.StatusOK {
		t.Fatalf("expected 200, got %d", response.StatusCode)
	}

	entries := []models.LogEntry{}
	decodeResponse(t, response, &entries)
	if len(entries) != 3 {
		t.Fatalf("expected 3 entries, got %d", len(entries))
	}
	if !entries[0].Timestamp.After(entries[1].Timestamp) {
		t.Fatalf("expected reverse-chronological order, got %#v", entries)
	}
}

func TestListLogsTypeFilter(t *testing.T) {
	app, _ := newTestApp(t)
	createTestLog(t, app, map[string]any{"type": "meal", "timestamp": "2026-03-02T12:00:00Z"})
	createTestLog(t, app, map[string]any{"type": "symptom", "timestamp": "2026-03-02T14:00:00Z"})

	response := performRequest(t, app, httptest.NewRequest("GET", "/api/logs?type=meal", nil))
	entries := []models.LogEntry{}
	decodeResponse(t, response, &entries)
	if len(entries) != 1 || entries[0].Type != models.EntryTypeMeal {
		t.Fatalf("expected only meals, got %#v", entries)
	}
}

func TestListLogsDateRange(t *testing.T) {
	app, _ := newTestApp(t)
	createTestLog(t, app, map[string]any{"type": "symptom", "timestamp": "2026-03-01T09:00:00Z"})
	createTestLog(t, app, map[string]any{"type": "symptom", "timestamp": "2026-03-05T09:00:00Z"})
	createTestLog(t, app, map[string]any{"type": "symptom", "timestamp": "2026-03-09T09:00:00Z"})

	response := performRequest(t, app, httptest.NewRequest("GET", "/api/logs?from=2026-03-04&to=2026-03-05", nil))
	entries := []models.LogEntry{}
	decodeResponse(t, response, &entries)
	if len(entries) != 1 {
		t.Fatalf("expected one entry on the inclusive to-day, got %#v", entries)
	}

	response = performRequest(t, app, httptest.NewRequest("GET", "/api/logs?from=bogus", nil))
	if response.StatusCode != fiber.StatusBadRequest {
		t.Fatalf("expected 400 for a malformed range, got %d", response.StatusCode)
	}
}

func TestUpdateLogPatchesFields(t *testing.T) {
	app, _ := newTestApp(t)
	created := createTestLog(t, app, map[string]any{"type": "symptom", "painLevel": 3, "notes": "original"})

	response := performRequest(t, app, jsonRequest(t, "PATCH", fmt.Sprintf("/api/logs/%d", created.ID), map[string]any{
		"painLevel": 7,
	}))
	if response.StatusCode != fiber.StatusOK {
		t.Fatalf("expected 200, got %d", response.StatusCode)
	}

	entry := models.LogEntry{}
	decodeResponse(t, response, &entry)
	if entry.PainLevel == nil || *entry.PainLevel != 7 {
		t.Fatalf("expected patched pain level, got %#v", entry.PainLevel)
	}
	if entry.Notes != "original" {
		t.Fatalf("expected unpatched fields preserved, got %q", entry.Notes)
	}
	if !entry.UpdatedAt.After(created.UpdatedAt) {
		t.Fatalf("expected a newer updatedAt, got %v after %v", entry.UpdatedAt, created.UpdatedAt)
	}
}

func TestUpdateMissingLog(t *testing.T) {
	app, _ := newTestApp(t)

	response := performRequest(t, app, jsonRequest(t, "PATCH", "/api/logs/999", map[string]any{"notes": "x"}))
	if response.StatusCode != fiber.StatusNotFound {
		t.Fatalf("expected 404, got %d", response.StatusCode)
	}
}

func TestDeleteLog(t *testing.T) {
	app, _ := newTestApp(t)
	created := createTestLog(t, app, map[string]any{"type": "meal"})

	response := performRequest(t, app, httptest.NewRequest("DELETE", fmt.Sprintf("/api/logs/%d", created.ID), nil))
	if response.StatusCode != fiber.StatusNoContent {
		t.Fatalf("expected 204, got %d", response.StatusCode)
	}

	response = performRequest(t, app, httptest.NewRequest("GET", fmt.Sprintf("/api/logs/%d", created.ID), nil))
	if response.StatusCode != fiber.StatusNotFound {
		t.Fatalf("expected 404 after delete, got %d", response.StatusCode)
	}

	// Deleting again still succeeds.
	response = performRequest(t, app, httptest.NewRequest("DELETE", fmt.Sprintf("/api/logs/%d", created.ID), nil))
	if response.StatusCode != fiber.StatusNoContent {
		t.Fatalf("expected 204 on repeat delete, got %d", response.StatusCode)
	}
}

func TestClearLogs(t *testing.T) {
	app, _ := newTestApp(t)
	createTestLog(t, app, map[string]any{"type": "meal"})
	createTestLog(t, app, map[string]any{"type": "symptom"})

	response := performRequest(t, app, httptest.NewRequest("DELETE", "/api/logs", nil))
	if response.StatusCode != fiber.StatusNoContent {
		t.Fatalf("expected 204, got %d", response.StatusCode)
	}

	response = performRequest(t, app, httptest.NewRequest("GET", "/api/logs/count", nil))
	count := map[string]int64{}
	decodeResponse(t, response, &count)
	if count["count"] != 0 {
		t.Fatalf("expected 0 entries after clear, got %d", count["count"])
	}
}

func TestCountLogsByType(t *testing.T) {
	app, _ := newTestApp(t)
	createTestLog(t, app, map[string]any{"type": "meal"})
	createTestLog(t, app, map[string]any{"type": "meal"})
	createTestLog(t, app, map[string]any{"type": "symptom"})

	response := performRequest(t, app, httptest.NewRequest("GET", "/api/logs/count?type=meal", nil))
	count := map[string]int64{}
	decodeResponse(t, response, &count)
	if count["count"] != 2 {
		t.Fatalf("expected 2 meals, got %d", count["count"])
	}
}

func TestLatestLogDefaultsToBowelMovement(t *testing.T) {
	app, _ := newTestApp(t)

	response := performRequest(t, app, httptest.NewRequest("GET", "/api/logs/latest", nil))
	empty := map[string]*models.LogEntry{}
	decodeResponse(t, response, &empty)
	if empty["entry"] != nil {
		t.Fatalf("expected a null entry on an empty store, got %#v", empty["entry"])
	}

	createTestLog(t, app, map[string]any{"type": "bowel_movement", "timestamp": "2026-03-02T07:00:00Z"})
	createTestLog(t, app, map[string]any{"type": "bowel_movement", "timestamp": "2026-03-02T19:00:00Z"})
	createTestLog(t, app, map[string]any{"type": "meal", "timestamp": "2026-03-02T21:00:00Z"})

	response = performRequest(t, app, httptest.NewRequest("GET", "/api/logs/latest", nil))
	latest := map[string]*models.LogEntry{}
	decodeResponse(t, response, &latest)
	entry := latest["entry"]
	if entry == nil || entry.Type != models.EntryTypeBowelMovement {
		t.Fatalf("expected the latest bowel movement, got %#v", entry)
	}
	if entry.Timestamp.Hour() != 19 {
		t.Fatalf("expected the 19:00 entry, got %v", entry.Timestamp)
	}
}
