package api

import (
	"log"
	"net/url"
	"strings"

	"github.com/gofiber/fiber/v2"
)

type foodClassification struct {
	Status   string `json:"status"`
	Category string `json:"category"`
	Notes    string `json:"notes"`
}

// GetFood resolves a food's FODMAP status: builtin reference table first,
// then the classification cache, otherwise "unknown".
func (handler *Handler) GetFood(c *fiber.Ctx) error {
	name, err := pathFoodName(c)
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid food name")
	}

	food, err := handler.foods.Lookup(name)
	if err != nil {
		return storeError(c, err, "failed to look up food")
	}
	return c.JSON(food)
}

// PutFood caches a classification produced by the external AI classifier.
// Caching is best-effort: a storage failure is logged and reported, but the
// classifier's caller treats it as non-fatal.
func (handler *Handler) PutFood(c *fiber.Ctx) error {
	name, err := pathFoodName(c)
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid food name")
	}

	classification := foodClassification{}
	if err := c.BodyParser(&classification); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid request body")
	}

	if err := handler.foods.Put(name, classification.Status, classification.Category, classification.Notes); err != nil {
		log.Printf("food classification cache write failed for %q: %v", name, err)
		return apiError(c, fiber.StatusUnprocessableEntity, "classification not cached")
	}
	return c.JSON(fiber.Map{"ok": true})
}

func pathFoodName(c *fiber.Ctx) (string, error) {
	name, err := url.PathUnescape(c.Params("name"))
	if err != nil {
		return "", err
	}
	if strings.TrimSpace(name) == "" {
		return "", fiber.ErrBadRequest
	}
	return name, nil
}
