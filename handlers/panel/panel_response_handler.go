package handlers // handlers/panel paketi

import (
	"fmt"

	"anket.link/pkg/tabulate"
	"anket.link/services"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// PanelResponseHandler form cevaplarının görüntülenmesi ve dışa aktarımı için handler.
type PanelResponseHandler struct {
	service services.IResponseService
}

// NewPanelResponseHandler yeni bir PanelResponseHandler örneği oluşturur.
func NewPanelResponseHandler() *PanelResponseHandler {
	return &PanelResponseHandler{service: services.NewResponseService()}
}

// ListResponses (GET /panel/forms/:id/responses) ham cevap listesini döndürür.
// Tablo kurulumu ayrı uçtadır; istemci isterse bu ham veriden kendi görünümünü
// de üretebilir.
func (h *PanelResponseHandler) ListResponses(c *fiber.Ctx) error {
	userID := currentUserID(c)
	formID, err := formIDParam(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	_, responses, err := h.service.GetResponsesForForm(c.UserContext(), formID, userID)
	if err != nil {
		return respondFormError(c, err, "Panel - ListResponses Error", zap.Uint("formID", formID), zap.Uint("userID", userID))
	}
	return c.JSON(responses)
}

// ResponseTable (GET /panel/forms/:id/responses/table) cevapları tablo
// görünümünde döndürür. sort_by bir soru ID'sidir; order asc/desc, page
// 1-indexlidir. Sayfa verilmeyen yeni bir sıralama isteği 1. sayfadan başlar.
func (h *PanelResponseHandler) ResponseTable(c *fiber.Ctx) error {
	userID := currentUserID(c)
	formID, err := formIDParam(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	var query tabulate.TableQuery
	if err := c.QueryParser(&query); err != nil {
		query = tabulate.TableQuery{}
	}

	page, err := h.service.BuildResponseTable(c.UserContext(), formID, userID, query)
	if err != nil {
		return respondFormError(c, err, "Panel - ResponseTable Error", zap.Uint("formID", formID), zap.Uint("userID", userID))
	}
	return c.JSON(page)
}

// ExportResponses (GET /panel/forms/:id/responses/export) CSV indirmesi döndürür.
func (h *PanelResponseHandler) ExportResponses(c *fiber.Ctx) error {
	userID := currentUserID(c)
	formID, err := formIDParam(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	filename, data, err := h.service.ExportResponsesCSV(c.UserContext(), formID, userID)
	if err != nil {
		return respondFormError(c, err, "Panel - ExportResponses Error", zap.Uint("formID", formID), zap.Uint("userID", userID))
	}

	c.Set(fiber.HeaderContentType, "text/csv; charset=utf-8")
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf("attachment; filename=%q", filename))
	return c.Send(data)
}
