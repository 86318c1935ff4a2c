package dto

import "github.com/shopspring/decimal"

// SaleLineRequest línea del carrito.
type SaleLineRequest struct {
	ItemID   string          `json:"item_id" validate:"required"`
	Quantity decimal.Decimal `json:"quantity"`
}

// SaleRequest carrito + pago (se usa en la cotización y en la confirmación).
type SaleRequest struct {
	CustomerID        string            `json:"customer_id"` // uuid
	Lines             []SaleLineRequest `json:"lines" validate:"dive"`
	RequestedDiscount decimal.Decimal   `json:"requested_discount"`
	PaymentMethod     string            `json:"payment_method" validate:"required,oneof=PIX DINHEIRO DEBITO CREDITO"`
	Installments      int               `json:"installments" validate:"min=0,max=24"`
}

// SaleQuoteDTO desglose de precio.
type SaleQuoteDTO struct {
	Subtotal     decimal.Decimal `json:"subtotal"`
	TotalMargin  decimal.Decimal `json:"total_margin"`
	Discount     decimal.Decimal `json:"discount"`
	Interest     decimal.Decimal `json:"interest"`
	Total        decimal.Decimal `json:"total"`
	Installments int             `json:"installments"`
	Installment  decimal.Decimal `json:"installment_value"`
}

// SalesMetricsDTO resumen del histórico filtrado.
type SalesMetricsDTO struct {
	Total         decimal.Decimal `json:"total"`
	TotalDiscount decimal.Decimal `json:"total_discount"`
	TotalInterest decimal.Decimal `json:"total_interest"`
	Count         int             `json:"count"`
	AverageTicket decimal.Decimal `json:"average_ticket"`
}
