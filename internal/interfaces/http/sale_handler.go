package http

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/logos-estoque/internal/application/billing"
	"github.com/jhoicas/logos-estoque/internal/application/dto"
)

// SaleHandler PDV: cotización, liquidación e histórico.
type SaleHandler struct {
	sales   *billing.SaleUseCase
	history *billing.SalesHistoryUseCase
}

// NewSaleHandler construye el handler.
func NewSaleHandler(sales *billing.SaleUseCase, history *billing.SalesHistoryUseCase) *SaleHandler {
	return &SaleHandler{sales: sales, history: history}
}

// Quote godoc
// @Summary      Calcular el precio del carrito (no graba nada)
// @Tags         sales
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.SaleRequest  true  "líneas, descuento, pago"
// @Success      200   {object}  dto.SaleQuoteDTO
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/sales/quote [post]
func (h *SaleHandler) Quote(c *fiber.Ctx) error {
	var in dto.SaleRequest
	if e := parseBody(c, &in); e != nil {
		return badRequest(c, e)
	}
	out, err := h.sales.Quote(c.UserContext(), in)
	if err != nil {
		return errorResponse(c, err)
	}
	return c.JSON(out)
}

// Process godoc
// @Summary      Liquidar venta
// @Description  Da de baja todas las líneas y registra la venta en una única transacción; ante cualquier fallo no se graba nada.
// @Tags         sales
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.SaleRequest  true  "customer_id, líneas, descuento, pago"
// @Success      201   {object}  entity.Sale
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/sales [post]
func (h *SaleHandler) Process(c *fiber.Ctx) error {
	var in dto.SaleRequest
	if e := parseBody(c, &in); e != nil {
		return badRequest(c, e)
	}
	sale, err := h.sales.ProcessSale(c.UserContext(), GetUserID(c), GetUsername(c), in)
	if err != nil {
		return errorResponse(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(sale)
}

// History godoc
// @Summary      Histórico de ventas con métricas
// @Tags         sales
// @Security     Bearer
// @Produce      json
// @Param        q     query  string  false  "Cliente, documento o ID de la venta"
// @Param        from  query  string  false  "YYYY-MM-DD"
// @Param        to    query  string  false  "YYYY-MM-DD (inclusive)"
// @Success      200  {object}  map[string]interface{}
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/sales [get]
func (h *SaleHandler) History(c *fiber.Ctx) error {
	f := billing.SalesFilter{Query: c.Query("q")}
	for _, p := range []struct {
		name string
		dst  *time.Time
	}{{"from", &f.From}, {"to", &f.To}} {
		raw := c.Query(p.name)
		if raw == "" {
			continue
		}
		t, err := time.ParseInLocation(time.DateOnly, raw, time.Local)
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: p.name + " debe tener formato YYYY-MM-DD"})
		}
		*p.dst = t
	}
	list, metrics, err := h.history.List(c.UserContext(), f)
	if err != nil {
		return errorResponse(c, err)
	}
	return c.JSON(fiber.Map{
		"metrics": metrics,
		"sales":   list,
	})
}
