package handlers // handlers/auth paketi

import (
	"errors"

	"anket.link/configs/configslog"
	"anket.link/services"
	"anket.link/utils"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// AuthHandler kayıt/giriş/çıkış uçları için handler.
type AuthHandler struct {
	userService services.IUserService
}

// NewAuthHandler yeni bir AuthHandler örneği oluşturur.
func NewAuthHandler() *AuthHandler {
	return &AuthHandler{userService: services.NewUserService()}
}

type registerRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Register (POST /auth/register) yeni hesap oluşturur ve oturum açar.
func (h *AuthHandler) Register(c *fiber.Ctx) error {
	var req registerRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "geçersiz istek gövdesi"})
	}

	user, err := h.userService.Register(c.UserContext(), req.Name, req.Email, req.Password)
	if err != nil {
		if errors.Is(err, services.ErrEmailAlreadyExists) {
			return c.Status(fiber.StatusConflict).JSON(fiber.Map{"error": err.Error()})
		}
		var svcErr services.UserServiceError
		if errors.As(err, &svcErr) {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
		}
		configslog.Log.Error("Register Error", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "sunucu hatası"})
	}

	sess, err := utils.SessionStart(c)
	if err == nil {
		_ = utils.SetUserSession(sess, user)
	}
	return c.Status(fiber.StatusCreated).JSON(user)
}

// Login (POST /auth/login) e-posta/şifre ile oturum açar.
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var req loginRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "geçersiz istek gövdesi"})
	}

	user, err := h.userService.Authenticate(c.UserContext(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, services.ErrInvalidCredentials) {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": err.Error()})
		}
		if errors.Is(err, services.ErrUserInactive) {
			return c.Status(fiber.StatusForbidden).JSON(fiber.Map{"error": err.Error()})
		}
		configslog.Log.Error("Login Error", zap.String("email", req.Email), zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "sunucu hatası"})
	}

	sess, err := utils.SessionStart(c)
	if err != nil {
		configslog.Log.Error("Login: oturum başlatılamadı", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "sunucu hatası"})
	}
	if err := utils.SetUserSession(sess, user); err != nil {
		configslog.Log.Error("Login: oturum kaydedilemedi", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "sunucu hatası"})
	}

	return c.JSON(user)
}

// Logout (POST /auth/logout) oturumu sonlandırır.
func (h *AuthHandler) Logout(c *fiber.Ctx) error {
	if err := utils.DestroySession(c); err != nil {
		configslog.Log.Warn("Logout: oturum sonlandırılamadı", zap.Error(err))
	}
	return c.JSON(fiber.Map{"message": "oturum kapatıldı"})
}

// Profile (GET /auth/profile) oturum açmış kullanıcıyı döndürür.
func (h *AuthHandler) Profile(c *fiber.Ctx) error {
	userID, ok := c.Locals("userID").(uint)
	if !ok || userID == 0 {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "oturum açmanız gerekiyor"})
	}
	user, err := h.userService.GetUserByID(c.UserContext(), userID)
	if err != nil {
		if errors.Is(err, services.ErrUserNotFound) {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "oturum geçersiz"})
		}
		configslog.Log.Error("Profile Error", zap.Uint("userID", userID), zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "sunucu hatası"})
	}
	return c.JSON(user)
}
