package api

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
	"github.com/halwyn/gutlog/internal/services"
)

type pinRequest struct {
	PIN string `json:"pin"`
}

// LockStatus reports whether the app lock is enabled and whether this
// client currently holds a valid unlock session.
func (handler *Handler) LockStatus(c *fiber.Ctx) error {
	enabled, err := handler.lock.Enabled()
	if err != nil {
		return storeError(c, err, "failed to load lock status")
	}
	return c.JSON(fiber.Map{
		"enabled":  enabled,
		"unlocked": !enabled || handler.hasValidUnlockSession(c),
	})
}

func (handler *Handler) SetupLock(c *fiber.Ctx) error {
	request := pinRequest{}
	if err := c.BodyParser(&request); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid request body")
	}

	if err := handler.lock.SetupPIN(request.PIN); err != nil {
		if errors.Is(err, services.ErrInvalidPIN) {
			return apiError(c, fiber.StatusBadRequest, "pin must be 4 to 8 digits")
		}
		return storeError(c, err, "failed to set up app lock")
	}

	if err := handler.setUnlockCookie(c); err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to issue unlock session")
	}
	return c.JSON(fiber.Map{"ok": true})
}

func (handler *Handler) Unlock(c *fiber.Ctx) error {
	request := pinRequest{}
	if err := c.BodyParser(&request); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid request body")
	}

	now := time.Now()
	clientKey := c.IP()
	if handler.lockLimiter.tooManyRecent(clientKey, now, lockAttemptLimit, lockAttemptWindow) {
		return apiError(c, fiber.StatusTooManyRequests, "too many failed attempts, try again later")
	}

	valid, err := handler.lock.VerifyPIN(request.PIN)
	if err != nil {
		return storeError(c, err, "failed to verify pin")
	}
	if !valid {
		handler.lockLimiter.addFailure(clientKey, now, lockAttemptWindow)
		return apiError(c, fiber.StatusUnauthorized, "wrong pin")
	}

	handler.lockLimiter.reset(clientKey)
	if err := handler.setUnlockCookie(c); err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to issue unlock session")
	}
	return c.JSON(fiber.Map{"ok": true})
}

func (handler *Handler) DisableLock(c *fiber.Ctx) error {
	request := pinRequest{}
	if err := c.BodyParser(&request); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid request body")
	}

	valid, err := handler.lock.VerifyPIN(request.PIN)
	if err != nil {
		return storeError(c, err, "failed to verify pin")
	}
	if !valid {
		return apiError(c, fiber.StatusUnauthorized, "wrong pin")
	}

	if err := handler.lock.Disable(); err != nil {
		return storeError(c, err, "failed to disable app lock")
	}
	handler.clearUnlockCookie(c)
	return c.JSON(fiber.Map{"ok": true})
}

func (handler *Handler) setUnlockCookie(c *fiber.Ctx) error {
	now := time.Now()
	claims := unlockClaims{
		Purpose: "unlock",
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(unlockTokenTTL)),
			IssuedAt:  jwt.NewNumericDate(now),
		},
	}

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(handler.secretKey)
	if err != nil {
		return err
	}

	c.Cookie(&fiber.Cookie{
		Name:     unlockCookieName,
		Value:    token,
		Path:     "/",
		HTTPOnly: true,
		Secure:   handler.cookieSecure,
		SameSite: "Lax",
		Expires:  now.Add(unlockTokenTTL),
	})
	return nil
}

func (handler *Handler) clearUnlockCookie(c *fiber.Ctx) {
	c.Cookie(&fiber.Cookie{
		Name:     unlockCookieName,
		Value:    "",
		Path:     "/",
		HTTPOnly: true,
		Secure:   handler.cookieSecure,
		SameSite: "Lax",
		Expires:  time.Now().Add(-1 * time.Hour),
	})
}

func (handler *Handler) hasValidUnlockSession(c *fiber.Ctx) bool {
	raw := c.Cookies(unlockCookieName)
	if raw == "" {
		return false
	}

	claims := unlockClaims{}
	token, err := jwt.ParseWithClaims(raw, &claims, func(*jwt.Token) (any, error) {
		return handler.secretKey, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil || !token.Valid {
		return false
	}
	return claims.Purpose == "unlock"
}
