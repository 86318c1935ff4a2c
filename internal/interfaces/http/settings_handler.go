package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/logos-estoque/internal/application/dto"
	"github.com/jhoicas/logos-estoque/internal/application/usecase"
)

// SettingsHandler tasa de interés y tope de descuento.
type SettingsHandler struct {
	uc *usecase.SettingsUseCase
}

// NewSettingsHandler construye el handler.
func NewSettingsHandler(uc *usecase.SettingsUseCase) *SettingsHandler {
	return &SettingsHandler{uc: uc}
}

// Get GET /api/settings
func (h *SettingsHandler) Get(c *fiber.Ctx) error {
	out, err := h.uc.Get(c.UserContext())
	if err != nil {
		return errorResponse(c, err)
	}
	return c.JSON(out)
}

// SetInterestRate PUT /api/settings/interest-rate
func (h *SettingsHandler) SetInterestRate(c *fiber.Ctx) error {
	var in dto.RateRequest
	if e := parseBody(c, &in); e != nil {
		return badRequest(c, e)
	}
	out, err := h.uc.SetInterestRate(c.UserContext(), in.Rate)
	if err != nil {
		return errorResponse(c, err)
	}
	return c.JSON(out)
}

// SetMaxDiscountRate PUT /api/settings/max-discount-rate
func (h *SettingsHandler) SetMaxDiscountRate(c *fiber.Ctx) error {
	var in dto.RateRequest
	if e := parseBody(c, &in); e != nil {
		return badRequest(c, e)
	}
	out, err := h.uc.SetMaxDiscountRate(c.UserContext(), in.Rate)
	if err != nil {
		return errorResponse(c, err)
	}
	return c.JSON(out)
}
