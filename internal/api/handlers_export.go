package api

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/halwyn/gutlog/internal/services"
)

func (handler *Handler) ExportSummary(c *fiber.Ctx) error {
	summary, err := handler.export.BuildSummary()
	if err != nil {
		return storeError(c, err, "failed to build export summary")
	}
	return c.JSON(summary)
}

func (handler *Handler) ExportJSON(c *fiber.Ctx) error {
	now := time.Now().In(handler.location)
	document, err := handler.export.BuildDocument(now)
	if err != nil {
		return storeError(c, err, "failed to build export")
	}

	serialized, err := json.MarshalIndent(document, "", "  ")
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to build export")
	}

	setExportAttachmentHeaders(c, fiber.MIMEApplicationJSON, services.BuildExportFilename(now, "json"))
	return c.Send(serialized)
}

func (handler *Handler) ExportCSV(c *fiber.Ctx) error {
	rows, err := handler.export.BuildCSVRows()
	if err != nil {
		return storeError(c, err, "failed to build export")
	}

	output := bytes.Buffer{}
	writer := csv.NewWriter(&output)
	if err := writer.Write(services.ExportCSVHeaders); err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to build export")
	}
	for _, row := range rows {
		if err := writer.Write(row); err != nil {
			return apiError(c, fiber.StatusInternalServerError, "failed to build export")
		}
	}
	writer.Flush()
	if err := writer.Error(); err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to build export")
	}

	now := time.Now().In(handler.location)
	setExportAttachmentHeaders(c, "text/csv; charset=utf-8", services.BuildExportFilename(now, "csv"))
	return c.Send(output.Bytes())
}

// ImportLogs bulk-adds a previously exported payload. Original ids are
// stripped so the store reassigns new ones; duplicates are not detected.
// The batch is atomic: a malformed payload or a mid-batch storage failure
// leaves the store untouched.
func (handler *Handler) ImportLogs(c *fiber.Ctx) error {
	entries, err := services.ParseImportPayload(c.Body())
	if err != nil {
		return storeError(c, err, "failed to parse import payload")
	}

	imported, err := handler.store.ImportMany(entries)
	if err != nil {
		return storeError(c, err, "failed to import log entries")
	}
	return c.JSON(fiber.Map{"imported": imported})
}
