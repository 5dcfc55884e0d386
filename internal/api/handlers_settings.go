package api

import (
	"github.com/gofiber/fiber/v2"
)

type settingsUpdate struct {
	ReminderTime *string `json:"reminder_time"`
	Theme        *string `json:"theme"`
}

func (handler *Handler) GetSettings(c *fiber.Ctx) error {
	snapshot, err := handler.settings.Snapshot()
	if err != nil {
		return storeError(c, err, "failed to load settings")
	}
	return c.JSON(snapshot)
}

// UpdateSettings writes the recognized preference keys. Lock state changes
// go through the dedicated lock endpoints, never through here.
func (handler *Handler) UpdateSettings(c *fiber.Ctx) error {
	update := settingsUpdate{}
	if err := c.BodyParser(&update); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid request body")
	}

	if update.ReminderTime != nil {
		if err := handler.settings.SetReminderTime(*update.ReminderTime); err != nil {
			return apiError(c, fiber.StatusBadRequest, "invalid reminder time, want HH:MM")
		}
	}
	if update.Theme != nil {
		if err := handler.settings.SetTheme(*update.Theme); err != nil {
			return storeError(c, err, "failed to store settings")
		}
	}

	snapshot, err := handler.settings.Snapshot()
	if err != nil {
		return storeError(c, err, "failed to load settings")
	}
	return c.JSON(snapshot)
}
