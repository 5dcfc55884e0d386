package api

import (
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/halwyn/gutlog/internal/models"
	"github.com/halwyn/gutlog/internal/services"
)

// CreateLog accepts a draft without id/createdAt/updatedAt; the store
// stamps both timestamps. Drafts arrive already shape-checked by the
// capture collaborators, so no semantic cross-field validation happens
// here; a meal carrying a bristol type is stored as sent.
func (handler *Handler) CreateLog(c *fiber.Ctx) error {
	draft := models.LogEntry{}
	if err := c.BodyParser(&draft); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid request body")
	}
	if draft.Type == "" {
		return apiError(c, fiber.StatusBadRequest, "type is required")
	}

	id, err := handler.store.Add(draft)
	if err != nil {
		return storeError(c, err, "failed to create log entry")
	}

	entry, err := handler.store.Get(id)
	if err != nil {
		return storeError(c, err, "failed to load created entry")
	}
	return c.Status(fiber.StatusCreated).JSON(entry)
}

func (handler *Handler) UpdateLog(c *fiber.Ctx) error {
	id, err := parseLogID(c)
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid log id")
	}

	patch := services.EntryPatch{}
	if err := c.BodyParser(&patch); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid request body")
	}

	entry, err := handler.store.Update(id, patch)
	if err != nil {
		return storeError(c, err, "failed to update log entry")
	}
	return c.JSON(entry)
}

func (handler *Handler) DeleteLog(c *fiber.Ctx) error {
	id, err := parseLogID(c)
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid log id")
	}

	if err := handler.store.Delete(id); err != nil {
		return storeError(c, err, "failed to delete log entry")
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// ClearLogs irreversibly removes every entry.
func (handler *Handler) ClearLogs(c *fiber.Ctx) error {
	if err := handler.store.ClearAll(); err != nil {
		return storeError(c, err, "failed to clear log entries")
	}
	return c.SendStatus(fiber.StatusNoContent)
}

func parseLogID(c *fiber.Ctx) (uint, error) {
	id, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil {
		return 0, err
	}
	return uint(id), nil
}
