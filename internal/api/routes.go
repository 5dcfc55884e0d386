package api

import "github.com/gofiber/fiber/v2"

func RegisterRoutes(app *fiber.App, handler *Handler) {
	app.Get("/healthz", handler.Health)
	app.Get("/favicon.ico", sendNoContent)

	lock := app.Group("/api/lock")
	lock.Get("/status", handler.LockStatus)
	lock.Post("/setup", handler.SetupLock)
	lock.Post("/unlock", handler.Unlock)
	lock.Post("/disable", handler.DisableLock)

	api := app.Group("/api", handler.LockRequired)

	logs := api.Group("/logs")
	logs.Get("", handler.ListLogs)
	logs.Post("", handler.CreateLog)
	logs.Delete("", handler.ClearLogs)
	logs.Get("/count", handler.CountLogs)
	logs.Get("/latest", handler.LatestLog)
	logs.Get("/:id", handler.GetLog)
	logs.Patch("/:id", handler.UpdateLog)
	logs.Delete("/:id", handler.DeleteLog)

	api.Get("/insights", handler.GetInsights)
	api.Get("/heatmap/:month", handler.GetHeatmap)

	export := api.Group("/export")
	export.Get("/summary", handler.ExportSummary)
	export.Get("/json", handler.ExportJSON)
	export.Get("/csv", handler.ExportCSV)
	api.Post("/import", handler.ImportLogs)

	foods := api.Group("/foods")
	foods.Get("/:name", handler.GetFood)
	foods.Put("/:name", handler.PutFood)

	settings := api.Group("/settings")
	settings.Get("", handler.GetSettings)
	settings.Post("", handler.UpdateSettings)
}

func sendNoContent(c *fiber.Ctx) error {
	return c.SendStatus(fiber.StatusNoContent)
}
