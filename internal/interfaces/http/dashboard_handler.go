package http

import (
	"github.com/gofiber/fiber/v2"

	appanalytics "github.com/jhoicas/Reventa-api/internal/application/analytics"
)

// DashboardHandler maneja el endpoint del dashboard financiero.
type DashboardHandler struct {
	uc *appanalytics.DashboardUseCase
}

// NewDashboardHandler construye el handler.
func NewDashboardHandler(uc *appanalytics.DashboardUseCase) *DashboardHandler {
	return &DashboardHandler{uc: uc}
}

// GetDashboard godoc
// @Summary      Dashboard financiero completo del usuario
// @Description  Series mensuales y semanales, top ventas, desglose por
// @Description  marketplace, rentabilidad acumulada de 30 días y totales
// @Description  históricos, calculados con la tasa fiscal del usuario.
// @Tags         dashboard
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  dto.DashboardDTO
// @Failure      401  {object}  dto.ErrorResponse
// @Router       /api/dashboard [get]
func (h *DashboardHandler) GetDashboard(c *fiber.Ctx) error {
	out, err := h.uc.GetDashboard(c.Context(), GetUserID(c))
	if err != nil {
		return domainError(c, err)
	}
	return c.JSON(out)
}
