package services

import (
	"testing"
	"time"

	"github.com/halwyn/gutlog/internal/models"
)

func TestBuildMonthlyHeatmapAveragesAndMax(t *testing.T) {
	day := time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC)
	entries := []models.LogEntry{
		{Type: models.EntryTypeSymptom, Timestamp: day.Add(9 * time.Hour), PainLevel: intPtr(4)},
		{Type: models.EntryTypeSymptom, Timestamp: day.Add(21 * time.Hour), PainLevel: intPtr(8)},
	}

	days := BuildMonthlyHeatmap(entries, time.UTC)
	severity, exists := days["2026-03-10"]
	if !exists {
		t.Fatalf("expected a 2026-03-10 bucket, got %#v", days)
	}
	if severity.LogCount != 2 {
		t.Fatalf("expected logCount 2, got %d", severity.LogCount)
	}
	if severity.AvgPain == nil || *severity.AvgPain != 6 {
		t.Fatalf("expected avg pain 6, got %#v", severity.AvgPain)
	}
	if severity.MaxPain == nil || *severity.MaxPain != 8 {
		t.Fatalf("expected max pain 8, got %#v", severity.MaxPain)
	}
}

func TestBuildMonthlyHeatmapNoPainEntries(t *testing.T) {
	entries := []models.LogEntry{
		{Type: models.EntryTypeMeal, Timestamp: time.Date(2026, 3, 5, 12, 0, 0, 0, time.UTC), Foods: []string{"Rice"}},
	}

	days := BuildMonthlyHeatmap(entries, time.UTC)
	severity := days["2026-03-05"]
	if severity.LogCount != 1 {
		t.Fatalf("expected logCount 1, got %d", severity.LogCount)
	}
	if severity.AvgPain != nil || severity.MaxPain != nil {
		t.Fatalf("expected nil pain stats without pain levels, got %#v", severity)
	}
	if severity.HasSymptoms {
		t.Fatal("expected hasSymptoms=false for a meal-only day")
	}
}

func TestBuildMonthlyHeatmapSymptomsFlag(t *testing.T) {
	entries := []models.LogEntry{
		{Type: models.EntryTypeSymptom, Timestamp: time.Date(2026, 3, 7, 8, 0, 0, 0, time.UTC), Symptoms: []string{"bloating"}},
		{Type: models.EntryTypeMeal, Timestamp: time.Date(2026, 3, 7, 13, 0, 0, 0, time.UTC)},
	}

	days := BuildMonthlyHeatmap(entries, time.UTC)
	if !days["2026-03-07"].HasSymptoms {
		t.Fatal("expected hasSymptoms=true when any entry that day lists symptoms")
	}
}

func TestBuildMonthlyHeatmapCalendarDaysNotRollingWindow(t *testing.T) {
	// 23:00 and 01:00 the next day sit two hours apart but bucket separately.
	entries := []models.LogEntry{
		{Type: models.EntryTypeSymptom, Timestamp: time.Date(2026, 3, 11, 23, 0, 0, 0, time.UTC), PainLevel: intPtr(3)},
		{Type: models.EntryTypeSymptom, Timestamp: time.Date(2026, 3, 12, 1, 0, 0, 0, time.UTC), PainLevel: intPtr(5)},
	}

	days := BuildMonthlyHeatmap(entries, time.UTC)
	if len(days) != 2 {
		t.Fatalf("expected two calendar-day buckets, got %#v", days)
	}
	if days["2026-03-11"].LogCount != 1 || days["2026-03-12"].LogCount != 1 {
		t.Fatalf("expected one entry per day, got %#v", days)
	}
}

func TestBuildMonthlyHeatmapLocationDecidesTheDay(t *testing.T) {
	// 01:30 UTC on March 12 is still March 11 in UTC-5.
	location := time.FixedZone("UTC-5", -5*60*60)
	entries := []models.LogEntry{
		{Type: models.EntryTypeSymptom, Timestamp: time.Date(2026, 3, 12, 1, 30, 0, 0, time.UTC)},
	}

	days := BuildMonthlyHeatmap(entries, location)
	if _, exists := days["2026-03-11"]; !exists {
		t.Fatalf("expected the entry bucketed under 2026-03-11 in UTC-5, got %#v", days)
	}
}

func TestMonthRange(t *testing.T) {
	reference := time.Date(2026, 2, 14, 18, 30, 0, 0, time.UTC)
	start, end := MonthRange(reference, time.UTC)

	if want := time.Date(2026, 2, 1, 0, 0, 0, 0, time.UTC); !start.Equal(want) {
		t.Fatalf("expected month start %v, got %v", want, start)
	}
	if want := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC); !end.Equal(want) {
		t.Fatalf("expected next month start %v, got %v", want, end)
	}
}

func TestMonthRangeDecemberRollsOver(t *testing.T) {
	reference := time.Date(2025, 12, 31, 23, 59, 0, 0, time.UTC)
	start, end := MonthRange(reference, time.UTC)

	if start.Month() != time.December || start.Year() != 2025 {
		t.Fatalf("expected December 2025 start, got %v", start)
	}
	if end.Month() != time.January || end.Year() != 2026 {
		t.Fatalf("expected January 2026 end, got %v", end)
	}
}
