package routes

import (
	panel_handlers "anket.link/handlers/panel"
	"anket.link/middlewares"
	"anket.link/services"

	"github.com/gofiber/fiber/v2"
)

// registerPanelRoutes /panel altındaki rotaları ve middleware'leri tanımlar.
// Tüm uçlar oturum ve aktif hesap ister; her uç yalnızca isteği yapan
// kullanıcının kendi formları üzerinde çalışır.
func registerPanelRoutes(app *fiber.App) {
	statsHandler := panel_handlers.NewPanelStatsHandler()
	formHandler := panel_handlers.NewPanelFormHandler()
	responseHandler := panel_handlers.NewPanelResponseHandler()

	panelGroup := app.Group("/panel")
	panelGroup.Use(
		middlewares.AuthMiddleware,                           // 1. Giriş yapmış mı?
		middlewares.StatusMiddleware(services.NewUserService()), // 2. Hesap aktif mi?
	)

	// --- Özet İstatistikler ---
	panelGroup.Get("/stats", statsHandler.DashboardStats) // GET /panel/stats

	// --- Kullanıcının Kendi Formları ---
	panelGroup.Get("/forms", formHandler.ListForms)          // GET /panel/forms
	panelGroup.Post("/forms", formHandler.CreateForm)        // POST /panel/forms
	panelGroup.Get("/forms/:id", formHandler.GetForm)        // GET /panel/forms/{id}
	panelGroup.Put("/forms/:id", formHandler.UpdateForm)     // PUT /panel/forms/{id}
	panelGroup.Delete("/forms/:id", formHandler.DeleteForm)  // DELETE /panel/forms/{id}

	// --- Form Cevapları ---
	panelGroup.Get("/forms/:id/responses", responseHandler.ListResponses)         // Ham liste
	panelGroup.Get("/forms/:id/responses/table", responseHandler.ResponseTable)   // Tablo görünümü
	panelGroup.Get("/forms/:id/responses/export", responseHandler.ExportResponses) // CSV indirme
}
