package services

import (
	"encoding/json"
	"fmt"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/halwyn/gutlog/internal/models"
)

const exportDateLayout = "2006-01-02"

var ExportCSVHeaders = []string{
	"Timestamp",
	"Type",
	"Bristol type",
	"Pain level",
	"Stress level",
	"Symptoms",
	"Foods",
	"Trigger foods",
	"Medication",
	"Dose",
	"Notes",
	"AI generated",
}

type ExportEntryReader interface {
	ExportAll() ([]models.LogEntry, error)
}

type ExportService struct {
	entries  ExportEntryReader
	location *time.Location
}

type ExportSummary struct {
	TotalEntries int    `json:"total_entries"`
	HasData      bool   `json:"has_data"`
	DateFrom     string `json:"date_from,omitempty"`
	DateTo       string `json:"date_to,omitempty"`
}

// ExportDocument is the JSON export payload; the import endpoint accepts
// the same shape back.
type ExportDocument struct {
	ExportedAt string            `json:"exported_at"`
	Entries    []models.LogEntry `json:"entries"`
}

func NewExportService(entries ExportEntryReader, location *time.Location) *ExportService {
	return &ExportService{entries: entries, location: location}
}

func (service *ExportService) loadSorted() ([]models.LogEntry, error) {
	entries, err := service.entries.ExportAll()
	if err != nil {
		return nil, err
	}
	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].Timestamp.Before(entries[j].Timestamp)
	})
	return entries, nil
}

func (service *ExportService) BuildSummary() (ExportSummary, error) {
	entries, err := service.loadSorted()
	if err != nil {
		return ExportSummary{}, err
	}
	if len(entries) == 0 {
		return ExportSummary{}, nil
	}

	return ExportSummary{
		TotalEntries: len(entries),
		HasData:      true,
		DateFrom:     DateAtLocation(entries[0].Timestamp, service.location).Format(exportDateLayout),
		DateTo:       DateAtLocation(entries[len(entries)-1].Timestamp, service.location).Format(exportDateLayout),
	}, nil
}

func (service *ExportService) BuildDocument(now time.Time) (ExportDocument, error) {
	entries, err := service.loadSorted()
	if err != nil {
		return ExportDocument{}, err
	}
	return ExportDocument{
		ExportedAt: now.In(service.location).Format(time.RFC3339),
		Entries:    entries,
	}, nil
}

func (service *ExportService) BuildCSVRows() ([][]string, error) {
	entries, err := service.loadSorted()
	if err != nil {
		return nil, err
	}

	rows := make([][]string, 0, len(entries))
	for _, entry := range entries {
		rows = append(rows, []string{
			entry.Timestamp.In(service.location).Format(time.RFC3339),
			entry.Type,
			csvOptionalInt(entry.BristolType),
			csvOptionalInt(entry.PainLevel),
			csvOptionalInt(entry.StressLevel),
			strings.Join(entry.Symptoms, "; "),
			strings.Join(entry.Foods, "; "),
			strings.Join(entry.TriggerFoods, "; "),
			entry.Medication,
			entry.MedicationDose,
			entry.Notes,
			csvYesNo(entry.AIGenerated),
		})
	}
	return rows, nil
}

// ParseImportPayload accepts either the full export document or a bare
// entry array. Anything else is ErrImportMalformed; the caller writes
// nothing in that case.
func ParseImportPayload(raw []byte) ([]models.LogEntry, error) {
	trimmed := strings.TrimSpace(string(raw))
	if trimmed == "" {
		return nil, ErrImportMalformed
	}

	if strings.HasPrefix(trimmed, "[") {
		entries := make([]models.LogEntry, 0)
		if err := json.Unmarshal(raw, &entries); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrImportMalformed, err)
		}
		return entries, nil
	}

	document := ExportDocument{}
	if err := json.Unmarshal(raw, &document); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrImportMalformed, err)
	}
	if document.Entries == nil {
		return nil, ErrImportMalformed
	}
	return document.Entries, nil
}

// BuildExportFilename names download attachments, e.g. gutlog-export-2026-08-28.json.
func BuildExportFilename(now time.Time, extension string) string {
	return fmt.Sprintf("gutlog-export-%s.%s", now.Format(exportDateLayout), extension)
}

func csvOptionalInt(value *int) string {
	if value == nil {
		return ""
	}
	return strconv.Itoa(*value)
}

func csvYesNo(value bool) string {
	if value {
		return "yes"
	}
	return "no"
}
