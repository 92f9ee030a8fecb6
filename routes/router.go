package routes

import (
	"anket.link/configs"
	"anket.link/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	recoverMiddleware "github.com/gofiber/fiber/v2/middleware/recover"
)

// SetupRoutes tüm uygulama rotalarını ve genel middleware'leri ayarlar.
func SetupRoutes(app *fiber.App) {
	// --- Genel Middleware'ler ---
	app.Use(recoverMiddleware.New()) // Panic yakalama
	app.Use(logger.New())            // İstek loglama
	app.Use(cors.New(cors.Config{
		AllowOrigins:     configs.GetCORSOrigins(),
		AllowCredentials: true,
	}))
	app.Use(initializeSessionAndLocals()) // Session ve temel locals ayarları

	// --- Rota Grupları ---
	registerAuthRoutes(app)   // /auth rotaları
	registerPanelRoutes(app)  // /panel rotaları
	registerPublicRoutes(app) // /f/:key public rotaları

	// --- 404 Handler ---
	app.Use(notFoundHandler)
}

// initializeSessionAndLocals session store'u ve oturum bilgilerini locals'a koyar.
func initializeSessionAndLocals() fiber.Handler {
	sessionStore := configs.SetupSession()
	return func(c *fiber.Ctx) error {
		c.Locals("session_store", sessionStore)
		sess, err := utils.SessionStart(c)
		if err != nil {
			return c.Next()
		}
		if userID, idErr := utils.GetUserIDFromSession(sess); idErr == nil {
			c.Locals("userID", userID)
		}
		if isSystem, sysErr := utils.GetIsSystemFromSession(sess); sysErr == nil {
			c.Locals("isSystem", isSystem)
		}
		if userName, ok := sess.Get("user_name").(string); ok {
			c.Locals("userName", userName)
		}
		return c.Next()
	}
}

// notFoundHandler eşleşmeyen tüm rotaları yakalar.
func notFoundHandler(c *fiber.Ctx) error {
	return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "kaynak bulunamadı"})
}
