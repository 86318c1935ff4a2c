package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/logos-estoque/internal/application/dto"
	"github.com/jhoicas/logos-estoque/internal/application/inventory"
	"github.com/jhoicas/logos-estoque/internal/domain/entity"
)

// InventoryHandler maneja las peticiones HTTP de movimientos, histórico, auditoría y reposición (protegido).
type InventoryHandler struct {
	engine        *inventory.RegisterMovementUseCase
	history       *inventory.MovementHistoryUseCase
	audit         *inventory.AuditUseCase
	replenishment *inventory.ReplenishmentUseCase
}

// NewInventoryHandler construye el handler.
func NewInventoryHandler(
	engine *inventory.RegisterMovementUseCase,
	history *inventory.MovementHistoryUseCase,
	audit *inventory.AuditUseCase,
	replenishment *inventory.ReplenishmentUseCase,
) *InventoryHandler {
	return &InventoryHandler{engine: engine, history: history, audit: audit, replenishment: replenishment}
}

// RegisterMovement godoc
// @Summary      Registrar movimiento de stock
// @Tags         inventory
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.RegisterMovementRequest  true  "item_id, type (ENTRADA|SAIDA|AJUSTE, este solo GERENCIA), quantity, unit_cost (entradas)"
// @Success      201   {object}  entity.Movement
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      403   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/inventory/movements [post]
func (h *InventoryHandler) RegisterMovement(c *fiber.Ctx) error {
	var in dto.RegisterMovementRequest
	if e := parseBody(c, &in); e != nil {
		return badRequest(c, e)
	}
	// AJUSTE fija el saldo absoluto; el operador debe pasar por /api/adjustments
	if in.Type == entity.MovementTypeAjuste && GetRole(c) != entity.RoleGerencia {
		return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{
			Code:    "FORBIDDEN",
			Message: "AJUSTE directo solo para GERENCIA; solicite un ajuste en /api/adjustments",
		})
	}
	mov, err := h.engine.RegisterMovement(c.UserContext(), inventory.MovementInput{
		OperatorID:   GetUserID(c),
		OperatorName: GetUsername(c),
		ItemID:       in.ItemID,
		Type:         in.Type,
		Quantity:     in.Quantity,
		Notes:        in.Notes,
		UnitCost:     in.UnitCost,
	})
	if err != nil {
		return errorResponse(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(mov)
}

// History godoc
// @Summary      Histórico de movimientos con el saldo después de cada uno
// @Tags         inventory
// @Security     Bearer
// @Produce      json
// @Param        type  query  string  false  "ENTRADA | SAIDA | AJUSTE"
// @Param        q     query  string  false  "Busca en item, SKU, notas o usuario"
// @Success      200  {array}  inventory.MovementWithBalance
// @Router       /api/inventory/movements [get]
func (h *InventoryHandler) History(c *fiber.Ctx) error {
	out, err := h.history.List(c.UserContext(), inventory.MovementFilter{
		Type:  c.Query("type"),
		Query: c.Query("q"),
	})
	if err != nil {
		return errorResponse(c, err)
	}
	return c.JSON(out)
}

// Balances godoc
// @Summary      Saldos reconstruidos a partir del ledger
// @Tags         inventory
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  map[string]string
// @Router       /api/inventory/balances [get]
func (h *InventoryHandler) Balances(c *fiber.Ctx) error {
	out, err := h.history.ItemBalances(c.UserContext())
	if err != nil {
		return errorResponse(c, err)
	}
	return c.JSON(out)
}

// Audit godoc
// @Summary      Finalizar auditoría (conteo físico)
// @Tags         inventory
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.AuditRequest  true  "category (vacía = todas), counts {item_id: cantidad}"
// @Success      201   {array}   entity.Movement
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/inventory/audit [post]
func (h *InventoryHandler) Audit(c *fiber.Ctx) error {
	var in dto.AuditRequest
	if e := parseBody(c, &in); e != nil {
		return badRequest(c, e)
	}
	movs, err := h.audit.Finalize(c.UserContext(), inventory.AuditInput{
		OperatorID:   GetUserID(c),
		OperatorName: GetUsername(c),
		Category:     in.Category,
		Counts:       in.Counts,
	})
	if err != nil {
		return errorResponse(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"total":     len(movs),
		"movements": movs,
	})
}

// GetReplenishmentList godoc
// @Summary      Lista de reposición
// @Description  Items bajo el stock mínimo con la cantidad sugerida de pedido, ordenados por déficit.
// @Tags         inventory
// @Security     Bearer
// @Produce      json
// @Param        category  query  string  false  "Filtrar por categoría. Vacío = todo el catálogo."
// @Success      200  {array}   dto.ReplenishmentSuggestionDTO
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /api/inventory/replenishment-list [get]
func (h *InventoryHandler) GetReplenishmentList(c *fiber.Ctx) error {
	list, err := h.replenishment.GenerateReplenishmentList(c.UserContext(), c.Query("category"))
	if err != nil {
		return errorResponse(c, err)
	}
	return c.JSON(fiber.Map{
		"total":          len(list),
		"replenishments": list,
	})
}
