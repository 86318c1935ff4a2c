package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/logos-estoque/internal/application/billing"
	"github.com/jhoicas/logos-estoque/internal/application/dto"
)

// CustomerHandler maneja las peticiones HTTP de clientes (PDV/CRM, protegido).
type CustomerHandler struct {
	uc *billing.CustomerUseCase
}

// NewCustomerHandler construye el handler.
func NewCustomerHandler(uc *billing.CustomerUseCase) *CustomerHandler {
	return &CustomerHandler{uc: uc}
}

// Create POST /api/customers
func (h *CustomerHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateCustomerRequest
	if e := parseBody(c, &in); e != nil {
		return badRequest(c, e)
	}
	customer, err := h.uc.Create(c.UserContext(), in)
	if err != nil {
		return errorResponse(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(customer)
}

// Update PUT /api/customers/:uuid
func (h *CustomerHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateCustomerRequest
	if e := parseBody(c, &in); e != nil {
		return badRequest(c, e)
	}
	customer, err := h.uc.Update(c.UserContext(), c.Params("uuid"), in)
	if err != nil {
		return errorResponse(c, err)
	}
	return c.JSON(customer)
}

// GetByUUID GET /api/customers/:uuid
func (h *CustomerHandler) GetByUUID(c *fiber.Ctx) error {
	customer, err := h.uc.GetByUUID(c.UserContext(), c.Params("uuid"))
	if err != nil {
		return errorResponse(c, err)
	}
	return c.JSON(customer)
}

// List GET /api/customers?q=
func (h *CustomerHandler) List(c *fiber.Ctx) error {
	list, err := h.uc.List(c.UserContext(), c.Query("q"))
	if err != nil {
		return errorResponse(c, err)
	}
	return c.JSON(list)
}
