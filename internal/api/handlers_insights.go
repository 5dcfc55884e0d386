package api

import (
	"github.com/gofiber/fiber/v2"
	"github.com/halwyn/gutlog/internal/services"
)

// GetInsights serves the live correlation analysis. The snapshot comes
// from a standing subscription, so it was recomputed by the most recent
// write rather than on this request. "Not enough data" is a normal result,
// not an error.
func (handler *Handler) GetInsights(c *fiber.Ctx) error {
	result := handler.liveInsights.Current()
	return c.JSON(fiber.Map{
		"correlation": result,
		"insights":    services.BuildInsights(result),
	})
}

// GetHeatmap serves the per-day severity map for one calendar month
// (path parameter YYYY-MM).
func (handler *Handler) GetHeatmap(c *fiber.Ctx) error {
	monthReference, err := parseMonthParam(c.Params("month"), handler.location)
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid month, want YYYY-MM")
	}

	monthStart, monthEnd := services.MonthRange(monthReference, handler.location)
	entries, err := handler.store.Between(monthStart, monthEnd)
	if err != nil {
		return storeError(c, err, "failed to load month entries")
	}

	return c.JSON(fiber.Map{
		"month": c.Params("month"),
		"days":  services.BuildMonthlyHeatmap(entries, handler.location),
	})
}
