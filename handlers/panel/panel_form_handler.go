package handlers // handlers/panel paketi

import (
	"errors"

	"anket.link/configs/configslog"
	"anket.link/pkg/queryparams"
	"anket.link/services"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// PanelFormHandler kullanıcının kendi formları için handler.
type PanelFormHandler struct {
	service services.IFormService
}

// NewPanelFormHandler yeni bir PanelFormHandler örneği oluşturur.
func NewPanelFormHandler() *PanelFormHandler {
	return &PanelFormHandler{service: services.NewFormService()}
}

// currentUserID oturumdaki kullanıcı ID'sini okur; middleware bunu garanti eder.
func currentUserID(c *fiber.Ctx) uint {
	userID, _ := c.Locals("userID").(uint)
	return userID
}

// formIDParam :id parametresini çözer.
func formIDParam(c *fiber.Ctx) (uint, error) {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return 0, errors.New("geçersiz form ID")
	}
	return uint(id), nil
}

// respondFormError servis hatalarını HTTP durum kodlarına çevirir.
func respondFormError(c *fiber.Ctx, err error, logMsg string, fields ...zap.Field) error {
	switch {
	case errors.Is(err, services.ErrFormNotFound):
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": err.Error()})
	case errors.Is(err, services.ErrFormForbidden):
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{"error": err.Error()})
	}
	var svcErr services.FormServiceError
	if errors.As(err, &svcErr) && !errors.Is(err, services.ErrFormCreationFailed) &&
		!errors.Is(err, services.ErrFormUpdateFailed) && !errors.Is(err, services.ErrFormDeletionFailed) {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}
	configslog.Log.Error(logMsg, append(fields, zap.Error(err))...)
	return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "sunucu hatası"})
}

// ListForms (GET /panel/forms) kullanıcının formlarını sayfalayarak listeler.
func (h *PanelFormHandler) ListForms(c *fiber.Ctx) error {
	userID := currentUserID(c)

	var params queryparams.ListParams
	if err := c.QueryParser(&params); err != nil {
		params = queryparams.DefaultListParams("created_at")
	}
	params.Validate()

	result, err := h.service.GetFormsForUser(c.UserContext(), userID, params)
	if err != nil {
		return respondFormError(c, err, "Panel - ListForms Error", zap.Uint("userID", userID))
	}
	return c.JSON(result)
}

// CreateForm (POST /panel/forms) yeni form oluşturur.
func (h *PanelFormHandler) CreateForm(c *fiber.Ctx) error {
	userID := currentUserID(c)

	var input services.FormInput
	if err := c.BodyParser(&input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "geçersiz form verisi"})
	}

	form, err := h.service.CreateForm(c.UserContext(), userID, input)
	if err != nil {
		return respondFormError(c, err, "Panel - CreateForm Error", zap.Uint("userID", userID))
	}
	return c.Status(fiber.StatusCreated).JSON(form)
}

// GetForm (GET /panel/forms/:id) tek formu döndürür.
func (h *PanelFormHandler) GetForm(c *fiber.Ctx) error {
	userID := currentUserID(c)
	formID, err := formIDParam(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	form, err := h.service.GetFormByID(c.UserContext(), formID, userID)
	if err != nil {
		return respondFormError(c, err, "Panel - GetForm Error", zap.Uint("id", formID), zap.Uint("userID", userID))
	}
	return c.JSON(form)
}

type updateFormRequest struct {
	services.FormInput
	IsEnabled *bool `json:"isEnabled"`
}

// UpdateForm (PUT /panel/forms/:id) formu ve soru listesini günceller.
// Mevcut soruların ID'leri korunur; cevap eşleşmeleri bozulmaz.
func (h *PanelFormHandler) UpdateForm(c *fiber.Ctx) error {
	userID := currentUserID(c)
	formID, err := formIDParam(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	var req updateFormRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "geçersiz form verisi"})
	}
	isEnabled := true
	if req.IsEnabled != nil {
		isEnabled = *req.IsEnabled
	}

	form, err := h.service.UpdateForm(c.UserContext(), formID, userID, req.FormInput, isEnabled)
	if err != nil {
		return respondFormError(c, err, "Panel - UpdateForm Error", zap.Uint("id", formID), zap.Uint("userID", userID))
	}
	return c.JSON(form)
}

// DeleteForm (DELETE /panel/forms/:id) formu siler.
func (h *PanelFormHandler) DeleteForm(c *fiber.Ctx) error {
	userID := currentUserID(c)
	formID, err := formIDParam(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	if err := h.service.DeleteForm(c.UserContext(), formID, userID); err != nil {
		return respondFormError(c, err, "Panel - DeleteForm Error", zap.Uint("id", formID), zap.Uint("userID", userID))
	}
	return c.JSON(fiber.Map{"message": "form silindi"})
}
