package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Formas de pago aceptadas en el PDV.
const (
	PaymentPix      = "PIX"
	PaymentDinheiro = "DINHEIRO"
	PaymentDebito   = "DEBITO"
	PaymentCredito  = "CREDITO"
)

// ValidPaymentMethod indica si m es una forma de pago conocida.
func ValidPaymentMethod(m string) bool {
	switch m {
	case PaymentPix, PaymentDinheiro, PaymentDebito, PaymentCredito:
		return true
	}
	return false
}

// SaleItem línea de venta con snapshot de precios.
type SaleItem struct {
	ItemID     string          `json:"itemId"`
	ItemName   string          `json:"itemName"`
	EAN        string          `json:"ean"`
	Quantity   decimal.Decimal `json:"quantity"`
	UnitPrice  decimal.Decimal `json:"unitPrice"`
	SalePrice  decimal.Decimal `json:"salePrice"`
	TotalPrice decimal.Decimal `json:"totalPrice"`
}

// Sale venta liquidada en el PDV.
type Sale struct {
	ID              string          `json:"id"`
	CustomerID      string          `json:"customerId,omitempty"` // uuid del cliente
	CustomerName    string          `json:"customerName"`
	CustomerDoc     string          `json:"customerDoc"`
	CustomerContact string          `json:"customerContact"`
	Items           []SaleItem      `json:"items"`
	Subtotal        decimal.Decimal `json:"subtotal"`
	Discount        decimal.Decimal `json:"discount"`
	TotalPrice      decimal.Decimal `json:"totalPrice"`
	PaymentMethod   string          `json:"paymentMethod"`
	Installments    int             `json:"installments"`
	InterestValue   decimal.Decimal `json:"interestValue"`
	Timestamp       time.Time       `json:"timestamp"`
	UserID          string          `json:"userId"`
	UserName        string          `json:"userName"`
}
