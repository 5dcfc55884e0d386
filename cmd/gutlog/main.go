package main

import (
	"context"
	"flag"
	"log"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/compress"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/halwyn/gutlog/internal/api"
	"github.com/halwyn/gutlog/internal/cli"
	"github.com/halwyn/gutlog/internal/db"
	"github.com/halwyn/gutlog/internal/security"
	"github.com/halwyn/gutlog/internal/services"
)

func main() {
	resetPIN := flag.Bool("reset-pin", false, "reset the app-lock PIN and exit")
	flag.Parse()

	location := mustLoadLocation(getEnv("TZ", "UTC"))
	time.Local = location

	dbPath := getEnv("DB_PATH", filepath.Join("data", "gutlog.db"))
	port := getEnv("PORT", "8080")
	secretKey := getEnv("SECRET_KEY", "")
	if secretKey == "" {
		// Without a configured key, unlock sessions only survive until
		// the next restart.
		generated, err := security.RandomString(32, "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789")
		if err != nil {
			log.Fatalf("generate session key: %v", err)
		}
		secretKey = generated
	}

	if *resetPIN {
		if err := cli.RunResetPINCommand(dbPath); err != nil {
			log.Fatalf("reset pin failed: %v", err)
		}
		return
	}

	database, err := db.OpenSQLite(dbPath)
	if err != nil {
		log.Fatalf("database init failed: %v", err)
	}

	handler := api.NewHandler(database, secretKey, location, getEnv("COOKIE_SECURE", "") == "true")

	app := fiber.New(fiber.Config{
		AppName:               "GutLog",
		DisableStartupMessage: true,
	})

	app.Use(recover.New())
	app.Use(logger.New())
	app.Use(compress.New())
	api.RegisterRoutes(app, handler)

	reminder := services.NewReminderService(handler.Settings(), handler.Store(), location)
	lifecycleCtx, cancelLifecycle := context.WithCancel(context.Background())
	defer cancelLifecycle()
	reminder.Start(lifecycleCtx)

	sigCtx, stopSignals := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stopSignals()

	go func() {
		<-sigCtx.Done()
		cancelLifecycle()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := app.ShutdownWithContext(shutdownCtx); err != nil {
			log.Printf("server shutdown failed: %v", err)
		}
	}()

	log.Printf("GutLog listening on http://0.0.0.0:%s (db: %s, tz: %s)", port, dbPath, location.String())
	if err := app.Listen(":" + port); err != nil {
		log.Fatalf("server exited: %v", err)
	}
}

func mustLoadLocation(name string) *time.Location {
	location, err := time.LoadLocation(name)
	if err != nil {
		log.Printf("invalid TZ %q, falling back to UTC", name)
		return time.UTC
	}
	return location
}

func getEnv(key string, fallback string) string {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}
	return value
}
