package handlers // handlers/panel paketi

import (
	"anket.link/services"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// PanelStatsHandler panel ana sayfasındaki özet istatistikler için handler.
type PanelStatsHandler struct {
	service services.IStatsService
}

// NewPanelStatsHandler yeni bir PanelStatsHandler örneği oluşturur.
func NewPanelStatsHandler() *PanelStatsHandler {
	return &PanelStatsHandler{service: services.NewStatsService()}
}

// DashboardStats (GET /panel/stats) kullanıcının form ve cevap özetini döndürür.
func (h *PanelStatsHandler) DashboardStats(c *fiber.Ctx) error {
	userID := currentUserID(c)

	stats, err := h.service.GetDashboardStats(c.UserContext(), userID)
	if err != nil {
		return respondFormError(c, err, "Panel - DashboardStats Error", zap.Uint("userID", userID))
	}
	return c.JSON(stats)
}
