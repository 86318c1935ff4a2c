package http

import (
	"github.com/gofiber/fiber/v2"

	appanalytics "github.com/jhoicas/logos-estoque/internal/application/analytics"
)

// DashboardHandler maneja los endpoints del painel.
type DashboardHandler struct {
	uc *appanalytics.DashboardUseCase
}

// NewDashboardHandler construye el handler.
func NewDashboardHandler(uc *appanalytics.DashboardUseCase) *DashboardHandler {
	return &DashboardHandler{uc: uc}
}

// GetSummary devuelve la visión general del stock.
// GET /api/dashboard/summary
//
// Respuesta: DashboardSummaryDTO (total_items, total_units, stock_value,
// low_stock_count, rupture_value, categories, weekly_flow[7]).
func (h *DashboardHandler) GetSummary(c *fiber.Ctx) error {
	summary, err := h.uc.Summary(c.UserContext())
	if err != nil {
		return errorResponse(c, err)
	}
	return c.JSON(summary)
}

// GetManagementDay GET /api/dashboard/today
func (h *DashboardHandler) GetManagementDay(c *fiber.Ctx) error {
	out, err := h.uc.ManagementDay(c.UserContext())
	if err != nil {
		return errorResponse(c, err)
	}
	return c.JSON(out)
}
