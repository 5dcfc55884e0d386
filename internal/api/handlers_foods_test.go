package api

import (
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/halwyn/gutlog/internal/models"
)

func TestGetFoodBuiltin(t *testing.T) {
	app, _ := newTestApp(t)

	response := performRequest(t, app, httptest.NewRequest("GET", "/api/foods/Milk", nil))
	if response.StatusCode != fiber.StatusOK {
		t.Fatalf("expected 200, got %d", response.StatusCode)
	}

	food := models.CachedFood{}
	decodeResponse(t, response, &food)
	if food.Status != models.FodmapHigh || food.Category != "dairy" {
		t.Fatalf("expected the builtin milk row, got %#v", food)
	}
}

func TestGetFoodUnknown(t *testing.T) {
	app, _ := newTestApp(t)

	response := performRequest(t, app, httptest.NewRequest("GET", "/api/foods/mystery%20stew", nil))
	food := models.CachedFood{}
	decodeResponse(t, response, &food)
	if food.Status != models.FodmapUnknown {
		t.Fatalf("expected unknown status, got %#v", food)
	}
}

func TestPutAndGetFoodClassification(t *testing.T) {
	app, _ := newTestApp(t)

	response := performRequest(t, app, jsonRequest(t, "PUT", "/api/foods/seitan%20wrap", map[string]any{
		"status":   "medium",
		"category": "prepared",
		"notes":    "depends on the sauce",
	}))
	if response.StatusCode != fiber.StatusOK {
		t.Fatalf("expected 200, got %d", response.StatusCode)
	}

	response = performRequest(t, app, httptest.NewRequest("GET", "/api/foods/Seitan%20Wrap", nil))
	food := models.CachedFood{}
	decodeResponse(t, response, &food)
	if food.Status != models.FodmapMedium || food.Notes != "depends on the sauce" {
		t.Fatalf("expected the cached classification, got %#v", food)
	}
}

func TestPutFoodInvalidStatus(t *testing.T) {
	app, _ := newTestApp(t)

	response := performRequest(t, app, jsonRequest(t, "PUT", "/api/foods/tea", map[string]any{
		"status": "severe",
	}))
	if response.StatusCode != fiber.StatusUnprocessableEntity {
		t.Fatalf("expected 422, got %d", response.StatusCode)
	}
}

func TestPutFoodCannotShadowBuiltin(t *testing.T) {
	app, _ := newTestApp(t)

	response := performRequest(t, app, jsonRequest(t, "PUT", "/api/foods/milk", map[string]any{
		"status": "low",
	}))
	if response.StatusCode != fiber.StatusOK {
		t.Fatalf("expected the write silently ignored, got %d", response.StatusCode)
	}

	food := models.CachedFood{}
	decodeResponse(t, performRequest(t, app, httptest.NewRequest("GET", "/api/foods/milk", nil)), &food)
	if food.Status != models.FodmapHigh {
		t.Fatalf("expected the builtin row untouched, got %#v", food)
	}
}

func TestGetSettingsAndUpdate(t *testing.T) {
	app, _ := newTestApp(t)

	response := performRequest(t, app, jsonRequest(t, "POST", "/api/settings", map[string]any{
		"reminder_time": "21:00",
		"theme":         "dark",
	}))
	if response.StatusCode != fiber.StatusOK {
		t.Fatalf("expected 200, got %d", response.StatusCode)
	}

	snapshot := map[string]any{}
	decodeResponse(t, response, &snapshot)
	if snapshot["reminder_time"] != "21:00" || snapshot["theme"] != "dark" {
		t.Fatalf("expected the stored preferences echoed back, got %#v", snapshot)
	}

	response = performRequest(t, app, httptest.NewRequest("GET", "/api/settings", nil))
	decodeResponse(t, response, &snapshot)
	if snapshot["theme"] != "dark" {
		t.Fatalf("expected the snapshot persisted, got %#v", snapshot)
	}
}

func TestUpdateSettingsInvalidReminderTime(t *testing.T) {
	app, _ := newTestApp(t)

	response := performRequest(t, app, jsonRequest(t, "POST", "/api/settings", map[string]any{
		"reminder_time": "25:99",
	}))
	if response.StatusCode != fiber.StatusBadRequest {
		t.Fatalf("expected 400, got %d", response.StatusCode)
	}
}

func TestSettingsSnapshotNeverLeaksPINHash(t *testing.T) {
	app, _ := newTestApp(t)
	cookie := setupTestLock(t, app, "4812")

	request := httptest.NewRequest("GET", "/api/settings", nil)
	request.AddCookie(cookie)
	response := performRequest(t, app, request)

	snapshot := map[string]any{}
	decodeResponse(t, response, &snapshot)
	if _, exists := snapshot["pin_hash"]; exists {
		t.Fatal("expected the pin hash kept out of the settings snapshot")
	}
	if snapshot["app_lock_enabled"] != true {
		t.Fatalf("expected the lock flag visible, got %#v", snapshot)
	}
}
