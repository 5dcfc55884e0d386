package services

import (
	"context"
	"fmt"
	"log"
	"time"
)

const reminderPollInterval = time.Minute

// ReminderService fires a daily logging reminder at the configured
// reminder_time when nothing has been logged that day yet. Delivery is a
// log line; anything richer (push, notification center) is a platform
// collaborator.
type ReminderService struct {
	settings *SettingsService
	store    *LogStore
	location *time.Location
	clock    func() time.Time
}

func NewReminderService(settings *SettingsService, store *LogStore, location *time.Location) *ReminderService {
	return &ReminderService{
		settings: settings,
		store:    store,
		location: location,
		clock:    time.Now,
	}
}

// Start runs the reminder loop until the context is cancelled.
func (service *ReminderService) Start(ctx context.Context) {
	go service.run(ctx)
}

func (service *ReminderService) run(ctx context.Context) {
	ticker := time.NewTicker(reminderPollInterval)
	defer ticker.Stop()

	var lastFiredDay string
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			now := service.clock().In(service.location)
			day := DayKey(now, service.location)
			if day == lastFiredDay {
				continue
			}
			if service.shouldRemind(now) {
				lastFiredDay = day
				log.Printf("reminder: nothing logged today, time to add an entry")
			}
		}
	}
}

func (service *ReminderService) shouldRemind(now time.Time) bool {
	configured, err := service.settings.ReminderTime()
	if err != nil || configured == "" {
		return false
	}

	var hour, minute int
	if _, err := fmt.Sscanf(configured, "%d:%d", &hour, &minute); err != nil {
		return false
	}
	reminderAt := time.Date(now.Year(), now.Month(), now.Day(), hour, minute, 0, 0, service.location)
	if now.Before(reminderAt) {
		return false
	}

	dayStart := DateAtLocation(now, service.location)
	entries, err := service.store.Between(dayStart, dayStart.AddDate(0, 0, 1))
	if err != nil {
		return false
	}
	return len(entries) == 0
}
