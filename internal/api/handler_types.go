package api

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/halwyn/gutlog/internal/db"
	"github.com/halwyn/gutlog/internal/services"
	"gorm.io/gorm"
)

const (
	unlockCookieName = "gutlog_unlock"

	unlockTokenTTL = 12 * time.Hour

	lockAttemptLimit  = 5
	lockAttemptWindow = 15 * time.Minute
)

type Handler struct {
	db           *gorm.DB
	secretKey    []byte
	location     *time.Location
	cookieSecure bool

	repositories *db.Repositories
	hub          *services.ChangeHub
	store        *services.LogStore
	settings     *services.SettingsService
	lock         *services.LockService
	foods        *services.FoodCatalog
	export       *services.ExportService

	// liveInsights keeps the correlation analysis recomputed on every
	// store write, so reads serve the latest snapshot.
	liveInsights *services.Subscription[services.CorrelationResult]

	lockLimiter *attemptLimiter
}

type unlockClaims struct {
	Purpose string `json:"purpose"`
	jwt.RegisteredClaims
}
