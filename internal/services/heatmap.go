package services

import (
	"time"

	"github.com/halwyn/gutlog/internal/models"
)

// DaySeverity summarizes one calendar day for the monthly heatmap.
// AvgPain and MaxPain are nil when no entry that day carries a pain level.
type DaySeverity struct {
	LogCount    int      `json:"logCount"`
	AvgPain     *float64 `json:"avgPain"`
	MaxPain     *int     `json:"maxPain"`
	HasSymptoms bool     `json:"hasSymptoms"`
}

// BuildMonthlyHeatmap groups entries by calendar day (same-day comparison
// in the given location, deliberately not the correlation engine's rolling
// 24h window) and computes per-day severity statistics. Callers pass
// entries already bounded to the month; see MonthRange.
func BuildMonthlyHeatmap(entries []models.LogEntry, location *time.Location) map[string]DaySeverity {
	type dayAccumulator struct {
		logCount    int
		painSum     int
		painCount   int
		maxPain     int
		hasSymptoms bool
	}

	accumulators := make(map[string]*dayAccumulator)
	for _, entry := range entries {
		key := DayKey(entry.Timestamp, location)
		accumulator, exists := accumulators[key]
		if !exists {
			accumulator = &dayAccumulator{}
			accumulators[key] = accumulator
		}

		accumulator.logCount++
		if entry.PainLevel != nil {
			accumulator.painSum += *entry.PainLevel
			accumulator.painCount++
			if *entry.PainLevel > accumulator.maxPain {
				accumulator.maxPain = *entry.PainLevel
			}
		}
		if len(entry.Symptoms) > 0 {
			accumulator.hasSymptoms = true
		}
	}

	days := make(map[string]DaySeverity, len(accumulators))
	for key, accumulator := range accumulators {
		severity := DaySeverity{
			LogCount:    accumulator.logCount,
			HasSymptoms: accumulator.hasSymptoms,
		}
		if accumulator.painCount > 0 {
			average := float64(accumulator.painSum) / float64(accumulator.painCount)
			maxPain := accumulator.maxPain
			severity.AvgPain = &average
			severity.MaxPain = &maxPain
		}
		days[key] = severity
	}
	return days
}
