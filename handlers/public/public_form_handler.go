package handlers // handlers/public paketi

import (
	"errors"

	"anket.link/configs/configslog"
	"anket.link/models"
	"anket.link/services"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// PublicFormHandler anonim katılımcıların form görüntüleme ve gönderim uçları.
// Sahiplik kontrolü yoktur; yalnızca aktif formlar dışarıya görünür.
type PublicFormHandler struct {
	formService     services.IFormService
	responseService services.IResponseService
}

// NewPublicFormHandler yeni bir PublicFormHandler örneği oluşturur.
func NewPublicFormHandler() *PublicFormHandler {
	return &PublicFormHandler{
		formService:     services.NewFormService(),
		responseService: services.NewResponseService(),
	}
}

// ShowForm (GET /f/:key) doldurulacak formu döndürür.
func (h *PublicFormHandler) ShowForm(c *fiber.Ctx) error {
	key := c.Params("key")

	form, err := h.formService.GetFormByKey(c.UserContext(), key)
	if err != nil {
		if errors.Is(err, services.ErrFormNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": err.Error()})
		}
		configslog.Log.Error("Public - ShowForm Error", zap.String("key", key), zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "sunucu hatası"})
	}
	return c.JSON(form)
}

type submitRequest struct {
	Answers []models.Answer `json:"answers"`
}

// SubmitForm (POST /f/:key) anonim gönderimi doğrular ve kaydeder.
// Doğrulama ilk hatada durur ve başarısız soruyu işaret eder.
func (h *PublicFormHandler) SubmitForm(c *fiber.Ctx) error {
	key := c.Params("key")

	var req submitRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "geçersiz istek gövdesi"})
	}

	response, err := h.responseService.SubmitResponse(c.UserContext(), key, req.Answers)
	if err != nil {
		if verr, ok := services.IsValidationError(err); ok {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error":    verr.Error(),
				"question": verr,
			})
		}
		if errors.Is(err, services.ErrFormNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": err.Error()})
		}
		configslog.Log.Error("Public - SubmitForm Error", zap.String("key", key), zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "sunucu hatası"})
	}

	return c.Status(fiber.StatusCreated).JSON(response)
}
