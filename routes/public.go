package routes

import (
	public_handlers "anket.link/handlers/public"

	"github.com/gofiber/fiber/v2"
)

// registerPublicRoutes anonim katılımcıların kullandığı rotaları tanımlar.
// Sahiplik kontrolü yoktur; form yalnızca public anahtarıyla bulunur.
func registerPublicRoutes(app *fiber.App) {
	publicHandler := public_handlers.NewPublicFormHandler()

	app.Get("/f/:key", publicHandler.ShowForm)    // Formu getir
	app.Post("/f/:key", publicHandler.SubmitForm) // Cevap gönder
}
