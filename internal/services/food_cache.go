package services

import (
	"fmt"
	"strings"
	"time"

	"github.com/halwyn/gutlog/internal/db"
	"github.com/halwyn/gutlog/internal/models"
)

// FoodCatalog resolves FODMAP status for free-text food names. The shipped
// reference table wins over cached AI classifications and is never
// overwritten; unknown foods report FodmapUnknown. Cache writes are
// best-effort: the caller logs failures and moves on, a food staying
// unknown never blocks saving the log entry itself.
type FoodCatalog struct {
	cache   *db.FoodCacheRepository
	builtin map[string]models.BuiltinFood
	clock   func() time.Time
}

func NewFoodCatalog(cache *db.FoodCacheRepository) *FoodCatalog {
	return &FoodCatalog{
		cache:   cache,
		builtin: models.DefaultBuiltinFoods(),
		clock:   time.Now,
	}
}

// NormalizeFoodName lowercases the name. That is the whole cache key
// contract; no further normalization.
func NormalizeFoodName(name string) string {
	return strings.ToLower(name)
}

func (catalog *FoodCatalog) Lookup(name string) (models.CachedFood, error) {
	normalized := NormalizeFoodName(strings.TrimSpace(name))

	if builtin, exists := catalog.builtin[normalized]; exists {
		return models.CachedFood{
			Name:     normalized,
			Status:   builtin.Status,
			Category: builtin.Category,
		}, nil
	}

	if catalog.cache != nil {
		cached, found, err := catalog.cache.FindByName(normalized)
		if err != nil {
			return models.CachedFood{}, fmt.Errorf("lookup cached food %q: %w", normalized, err)
		}
		if found {
			return cached, nil
		}
	}

	return models.CachedFood{Name: normalized, Status: models.FodmapUnknown}, nil
}

// Put caches a classification produced by the external classifier. Builtin
// rows take precedence and are silently left alone.
func (catalog *FoodCatalog) Put(name string, status string, category string, notes string) error {
	if !isValidFodmapStatus(status) {
		return fmt.Errorf("invalid fodmap status %q", status)
	}

	normalized := NormalizeFoodName(strings.TrimSpace(name))
	if normalized == "" {
		return fmt.Errorf("empty food name")
	}
	if _, exists := catalog.builtin[normalized]; exists {
		return nil
	}
	if catalog.cache == nil {
		return ErrUnavailable
	}

	cached := models.CachedFood{
		Name:      normalized,
		Status:    status,
		Category:  category,
		Notes:     notes,
		CreatedAt: catalog.clock(),
	}
	if err := catalog.cache.Upsert(&cached); err != nil {
		return fmt.Errorf("cache food %q: %w", normalized, err)
	}
	return nil
}

func isValidFodmapStatus(status string) bool {
	switch status {
	case models.FodmapLow, models.FodmapMedium, models.FodmapHigh:
		return true
	default:
		return false
	}
}
