package api

import (
	"time"

	"github.com/halwyn/gutlog/internal/db"
	"github.com/halwyn/gutlog/internal/services"
	"gorm.io/gorm"
)

func NewHandler(database *gorm.DB, secretKey string, location *time.Location, cookieSecure bool) *Handler {
	handler := &Handler{
		db:           database,
		secretKey:    []byte(secretKey),
		location:     location,
		cookieSecure: cookieSecure,
		hub:          services.NewChangeHub(),
		lockLimiter:  newAttemptLimiter(),
	}
	return handler.withDependencies()
}

func (handler *Handler) withDependencies() *Handler {
	var entryRepo *db.LogEntryRepository
	if handler.db != nil {
		handler.repositories = db.NewRepositories(handler.db)
		entryRepo = handler.repositories.Entries
	}

	// A nil entry repository keeps the store constructible before
	// persistent storage exists; writes fail with ErrUnavailable and
	// live reads resolve empty.
	handler.store = services.NewLogStore(entryRepo, handler.hub)
	if handler.repositories != nil {
		handler.settings = services.NewSettingsService(handler.repositories.Settings)
		handler.foods = services.NewFoodCatalog(handler.repositories.FoodCache)
	} else {
		handler.settings = services.NewSettingsService(nil)
		handler.foods = services.NewFoodCatalog(nil)
	}
	handler.lock = services.NewLockService(handler.settings)
	handler.export = services.NewExportService(handler.store, handler.location)
	handler.liveInsights = services.LiveCorrelation(handler.hub, handler.store)
	return handler
}

// Store exposes the log store for out-of-band collaborators (reminder
// scheduler, CLI).
func (handler *Handler) Store() *services.LogStore {
	return handler.store
}

func (handler *Handler) Settings() *services.SettingsService {
	return handler.settings
}
