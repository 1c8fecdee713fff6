package api

import "github.com/gofiber/fiber/v2"

func RegisterRoutes(app *fiber.App, handler *Handler) {
	registerPageRoutes(app, handler)
	registerAPIRoutes(app, handler)
}

func registerPageRoutes(app *fiber.App, handler *Handler) {
	app.Get("/healthz", handler.Health)
	app.Get("/favicon.ico", sendNoContent)
	app.Get("/lang/:lang", handler.SetLanguage)

	app.Get("/login", handler.ShowLoginPage)
	app.Get("/register", handler.ShowRegisterPage)

	app.Get("/properties", handler.AuthRequired, handler.ShowProperties)
	app.Get("/properties/new", handler.AuthRequired, handler.ShowPropertyForm)
	app.Post("/properties", handler.AuthRequired, handler.CreateProperty)
	app.Get("/properties/:id/edit", handler.AuthRequired, handler.ShowPropertyEditForm)
	app.Post("/properties/:id", handler.AuthRequired, handler.UpdateProperty)
	app.Post("/properties/:id/switch", handler.AuthRequired, handler.SwitchProperty)

	app.Get("/", handler.AuthRequired, handler.PropertyRequired, handler.ShowDashboard)
	app.Get("/dashboard", handler.AuthRequired, handler.PropertyRequired, handler.ShowDashboard)

	app.Get("/rooms", handler.AuthRequired, handler.PropertyRequired, handler.ShowRooms)
	app.Get("/rooms/new", handler.AuthRequired, handler.PropertyRequired, handler.ShowRoomForm)
	app.Post("/rooms", handler.AuthRequired, handler.PropertyRequired, handler.CreateRoom)
	app.Get("/rooms/:id", handler.AuthRequired, handler.PropertyRequired, handler.ShowRoomDetail)
	app.Get("/rooms/:id/edit", handler.AuthRequired, handler.PropertyRequired, handler.ShowRoomEditForm)
	app.Post("/rooms/:id", handler.AuthRequired, handler.PropertyRequired, handler.UpdateRoom)
	app.Get("/rooms/:id/progress/new", handler.AuthRequired, handler.PropertyRequired, handler.ShowProgressForm)
	app.Post("/rooms/:id/progress", handler.AuthRequired, handler.PropertyRequired, handler.CreateProgress)

	app.Get("/purchases", handler.AuthRequired, handler.PropertyRequired, handler.ShowPurchases)
	app.Get("/purchases/new", handler.AuthRequired, handler.PropertyRequired, handler.ShowPurchaseForm)
	app.Post("/purchases", handler.AuthRequired, handler.PropertyRequired, handler.CreatePurchase)
	app.Get("/purchases/:id/edit", handler.AuthRequired, handler.PropertyRequired, handler.ShowPurchaseEditForm)
	app.Post("/purchases/:id", handler.AuthRequired, handler.PropertyRequired, handler.UpdatePurchase)

	app.Get("/sessions", handler.AuthRequired, handler.PropertyRequired, handler.ShowWorkSessions)
	app.Get("/sessions/new", handler.AuthRequired, handler.PropertyRequired, handler.ShowWorkSessionForm)
	app.Post("/sessions", handler.AuthRequired, handler.PropertyRequired, handler.CreateWorkSession)
	app.Get("/sessions/:id/edit", handler.AuthRequired, handler.PropertyRequired, handler.ShowWorkSessionEditForm)
	app.Post("/sessions/:id", handler.AuthRequired, handler.PropertyRequired, handler.UpdateWorkSession)

	app.Get("/circuits", handler.AuthRequired, handler.PropertyRequired, handler.ShowCircuits)
	app.Get("/circuits/new", handler.AuthRequired, handler.PropertyRequired, handler.ShowCircuitForm)
	app.Post("/circuits", handler.AuthRequired, handler.PropertyRequired, handler.CreateCircuit)
	app.Get("/circuits/:id/edit", handler.AuthRequired, handler.PropertyRequired, handler.ShowCircuitEditForm)
	app.Post("/circuits/:id", handler.AuthRequired, handler.PropertyRequired, handler.UpdateCircuit)

	app.Get("/equipment", handler.AuthRequired, handler.ShowEquipment)
	app.Get("/equipment/new", handler.AuthRequired, handler.ShowEquipmentForm)
	app.Post("/equipment", handler.AuthRequired, handler.CreateEquipment)
	app.Get("/equipment/:id", handler.AuthRequired, handler.ShowEquipmentDetail)
	app.Get("/equipment/:id/edit", handler.AuthRequired, handler.ShowEquipmentEditForm)
	app.Post("/equipment/:id", handler.AuthRequired, handler.UpdateEquipment)
	app.Post("/equipment/:id/delete", handler.AuthRequired, handler.DeleteEquipment)
	app.Post("/equipment/:id/sell", handler.AuthRequired, handler.SellEquipment)
	app.Post("/equipment/:id/assign", handler.AuthRequired, handler.AssignEquipment)
	app.Post("/equipment/:id/unassign", handler.AuthRequired, handler.UnassignEquipment)
	app.Post("/equipment/:id/photos", handler.AuthRequired, handler.AddEquipmentPhoto)
	app.Post("/equipment/:id/photos/:photoID/delete", handler.AuthRequired, handler.DeleteEquipmentPhoto)

	app.Get("/choices", handler.AuthRequired, handler.ShowChoices)
	app.Get("/choices/new", handler.AuthRequired, handler.ShowChoiceForm)
	app.Post("/choices", handler.AuthRequired, handler.CreateChoice)
	app.Get("/choices/:id/edit", handler.AuthRequired, handler.ShowChoiceEditForm)
	app.Post("/choices/:id", handler.AuthRequired, handler.UpdateChoice)
	app.Post("/choices/:id/delete", handler.AuthRequired, handler.DeleteChoice)

	app.Get("/todo", handler.AuthRequired, handler.PropertyRequired, handler.ShowTodo)
	app.Post("/todo/tasks", handler.AuthRequired, handler.PropertyRequired, handler.CreateTask)
	app.Post("/todo/tasks/:id/toggle", handler.AuthRequired, handler.PropertyRequired, handler.ToggleTask)
	app.Post("/todo/tasks/:id/delete", handler.AuthRequired, handler.PropertyRequired, handler.DeleteTask)
	app.Post("/todo/items", handler.AuthRequired, handler.PropertyRequired, handler.CreateShoppingItem)
	app.Post("/todo/items/:id/toggle", handler.AuthRequired, handler.PropertyRequired, handler.ToggleShoppingItem)
	app.Post("/todo/items/:id/delete", handler.AuthRequired, handler.PropertyRequired, handler.DeleteShoppingItem)
}

func registerAPIRoutes(app *fiber.App, handler *Handler) {
	api := app.Group("/api")

	auth := api.Group("/auth")
	auth.Post("/register", handler.Register)
	auth.Post("/login", handler.Login)
	auth.Post("/logout", handler.AuthRequired, handler.Logout)

	dashboard := api.Group("/dashboard", handler.AuthRequired, handler.PropertyRequired)
	dashboard.Get("/overview", handler.DashboardOverview)

	export := api.Group("/export", handler.AuthRequired, handler.PropertyRequired)
	export.Get("/purchases.csv", handler.ExportPurchasesCSV)
	export.Get("/purchases.json", handler.ExportPurchasesJSON)
	export.Get("/purchases.xlsx", handler.ExportPurchasesXLSX)
	export.Get("/sessions.csv", handler.ExportSessionsCSV)
	export.Get("/sessions.json", handler.ExportSessionsJSON)
	export.Get("/sessions.xlsx", handler.ExportSessionsXLSX)
}

func sendNoContent(c *fiber.Ctx) error {
	return c.SendStatus(fiber.StatusNoContent)
}
