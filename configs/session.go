package configs

import (
	"os"
	"time"

	"github.com/gofiber/fiber/v2/middleware/session"
)

// SetupSession oturum (session) store'unu hazırlar. Cookie tabanlıdır;
// production'da Secure bayrağı açılır.
func SetupSession() *session.Store {
	return session.New(session.Config{
		KeyLookup:      "cookie:anket_session",
		Expiration:     24 * time.Hour,
		CookieHTTPOnly: true,
		CookieSameSite: "Lax",
		CookieSecure:   os.Getenv("APP_ENV") == "production",
	})
}
