package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/logos-estoque/internal/application/adjustment"
	"github.com/jhoicas/logos-estoque/internal/application/dto"
)

// AdjustmentHandler solicitudes de ajuste y su revisión.
type AdjustmentHandler struct {
	uc *adjustment.UseCase
}

// NewAdjustmentHandler construye el handler.
func NewAdjustmentHandler(uc *adjustment.UseCase) *AdjustmentHandler {
	return &AdjustmentHandler{uc: uc}
}

// Request godoc
// @Summary      Solicitar ajuste de stock
// @Tags         adjustments
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.RequestAdjustmentRequest  true  "item_id, adjustment_type, delta_quantity, reason"
// @Success      201   {object}  entity.StockAdjustment
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/adjustments [post]
func (h *AdjustmentHandler) Request(c *fiber.Ctx) error {
	var in dto.RequestAdjustmentRequest
	if e := parseBody(c, &in); e != nil {
		return badRequest(c, e)
	}
	out, err := h.uc.RequestAdjustment(c.UserContext(), adjustment.Request{
		ItemID:         in.ItemID,
		RequestedBy:    GetUsername(c),
		AdjustmentType: in.AdjustmentType,
		DeltaQuantity:  in.DeltaQuantity,
		Reason:         in.Reason,
	})
	if err != nil {
		return errorResponse(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// Review godoc
// @Summary      Aprobar o rechazar ajuste (GERENCIA)
// @Tags         adjustments
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID del ajuste"
// @Param        body  body  dto.ProcessAdjustmentRequest  true  "decision"
// @Success      200   {object}  entity.StockAdjustment
// @Failure      403   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/adjustments/{id}/review [post]
func (h *AdjustmentHandler) Review(c *fiber.Ctx) error {
	var in dto.ProcessAdjustmentRequest
	if e := parseBody(c, &in); e != nil {
		return badRequest(c, e)
	}
	out, err := h.uc.ProcessAdjustment(c.UserContext(), c.Params("id"), in.Decision, GetUserID(c))
	if err != nil {
		return errorResponse(c, err)
	}
	return c.JSON(out)
}

// List godoc
// @Summary      Listar ajustes
// @Tags         adjustments
// @Security     Bearer
// @Produce      json
// @Param        status  query  string  false  "PENDENTE | APROVADO | REJEITADO"
// @Success      200  {array}  entity.StockAdjustment
// @Router       /api/adjustments [get]
func (h *AdjustmentHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List(c.UserContext(), c.Query("status"))
	if err != nil {
		return errorResponse(c, err)
	}
	return c.JSON(out)
}
