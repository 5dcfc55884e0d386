package api

import (
	"errors"
	"fmt"

	"github.com/gofiber/fiber/v2"
	"github.com/halwyn/gutlog/internal/services"
)

func apiError(c *fiber.Ctx, status int, message string) error {
	return c.Status(status).JSON(fiber.Map{"error": message})
}

// storeError maps the store's sentinel errors onto HTTP statuses; anything
// unexpected is a 500 with the fallback message.
func storeError(c *fiber.Ctx, err error, fallback string) error {
	switch {
	case errors.Is(err, services.ErrUnavailable):
		return apiError(c, fiber.StatusServiceUnavailable, "storage unavailable")
	case errors.Is(err, services.ErrNotFound):
		return apiError(c, fiber.StatusNotFound, "log entry not found")
	case errors.Is(err, services.ErrImportMalformed):
		return apiError(c, fiber.StatusBadRequest, "import payload is not an array of log entries")
	default:
		return apiError(c, fiber.StatusInternalServerError, fallback)
	}
}

func setExportAttachmentHeaders(c *fiber.Ctx, contentType string, filename string) {
	c.Set(fiber.HeaderContentType, contentType)
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf("attachment; filename=%q", filename))
}
