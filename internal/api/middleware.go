package api

import "github.com/gofiber/fiber/v2"

// LockRequired guards the data API while the app lock is enabled. With the
// lock off (the default) every request passes.
func (handler *Handler) LockRequired(c *fiber.Ctx) error {
	enabled, err := handler.lock.Enabled()
	if err != nil {
		return storeError(c, err, "failed to load lock status")
	}
	if !enabled {
		return c.Next()
	}

	if !handler.hasValidUnlockSession(c) {
		return apiError(c, fiber.StatusUnauthorized, "app is locked")
	}
	return c.Next()
}
