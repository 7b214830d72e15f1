package api

import "github.com/gofiber/fiber/v2"

func RegisterRoutes(app *fiber.App, handler *Handler) {
	app.Get("/healthz", handler.Health)

	api := app.Group("/api")

	auth := api.Group("/auth")
	auth.Get("/setup-status", handler.SetupStatus)
	auth.Post("/bootstrap", handler.Bootstrap)
	auth.Post("/login", handler.Login)
	auth.Post("/logout", handler.AuthRequired, handler.Logout)
	auth.Get("/me", handler.AuthRequired, handler.Me)

	api.Get("/catalog", handler.AuthRequired, handler.Catalog)

	records := api.Group("/records", handler.AuthRequired)
	records.Get("", handler.ListRecords)
	records.Post("", handler.CreateRecord)
	records.Post("/reassign", handler.AdminOnly, handler.BulkReassign)
	records.Get("/:id", handler.GetRecord)
	records.Put("/:id", handler.SaveRecord)
	records.Post("/:id/promote", handler.PromoteRecord)
	records.Post("/:id/snooze", handler.SnoozeRecord)
	records.Delete("/:id", handler.AdminOnly, handler.DeleteRecord)

	trash := api.Group("/trash", handler.AuthRequired, handler.AdminOnly)
	trash.Get("", handler.ListTrash)
	trash.Post("/:id/restore", handler.RestoreTrashItem)
	trash.Delete("/:id", handler.PurgeTrashItem)

	users := api.Group("/users", handler.AuthRequired)
	users.Get("", handler.AdminOnly, handler.ListUsers)
	users.Get("/active", handler.ListActiveUsers)
	users.Post("", handler.AdminOnly, handler.CreateUser)
	users.Put("/:id", handler.AdminOnly, handler.UpdateUser)
	users.Post("/:id/deactivate", handler.AdminOnly, handler.DeactivateUser)

	reminders := api.Group("/reminders", handler.AuthRequired)
	reminders.Get("/due", handler.DueReminders)
	reminders.Get("/duplicates", handler.DuplicatePhones)

	api.Get("/dnc", handler.AuthRequired, handler.DNCPhones)

	export := api.Group("/export", handler.AuthRequired, handler.AdminOnly)
	export.Get("/csv", handler.ExportCSV)
	export.Get("/template", handler.ExportTemplate)

	api.Post("/import", handler.AuthRequired, handler.AdminOnly, handler.ImportCSV)
}
