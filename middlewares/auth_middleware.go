package middlewares

import (
	"errors"

	"anket.link/services"

	"github.com/gofiber/fiber/v2"
)

// AuthMiddleware oturum açmış kullanıcı ister; yoksa 401 döner.
// userID locals değeri router'daki session başlatıcı tarafından doldurulur.
func AuthMiddleware(c *fiber.Ctx) error {
	userID, ok := c.Locals("userID").(uint)
	if !ok || userID == 0 {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "oturum açmanız gerekiyor"})
	}
	return c.Next()
}

// StatusMiddleware hesabın hâlâ aktif olduğunu doğrular. Pasifleştirilmiş bir
// hesabın eski oturumu ile işlem yapmasını engeller.
func StatusMiddleware(userService services.IUserService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		userID, ok := c.Locals("userID").(uint)
		if !ok || userID == 0 {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "oturum açmanız gerekiyor"})
		}
		user, err := userService.GetUserByID(c.UserContext(), userID)
		if err != nil {
			if errors.Is(err, services.ErrUserNotFound) {
				return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "oturum geçersiz"})
			}
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "sunucu hatası"})
		}
		if !user.IsActive {
			return c.Status(fiber.StatusForbidden).JSON(fiber.Map{"error": "hesap pasif durumda"})
		}
		return c.Next()
	}
}
