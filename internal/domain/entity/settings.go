package entity

import "github.com/shopspring/decimal"

// Valores por defecto cuando el documento de configuración no existe o le falta el campo.
var (
	DefaultInterestRate    = decimal.NewFromFloat(2.5)
	DefaultMaxDiscountRate = decimal.NewFromInt(10)
)

// Settings parámetros comerciales (porcentajes).
// Campos nil significan "no definido" y se resuelven con los defaults.
type Settings struct {
	InterestRate    *decimal.Decimal `json:"interestRate,omitempty"`
	MaxDiscountRate *decimal.Decimal `json:"maxDiscountRate,omitempty"`
}

// Interest tasa de interés por cuota (%), con default.
func (s Settings) Interest() decimal.Decimal {
	if s.InterestRate == nil {
		return DefaultInterestRate
	}
	return *s.InterestRate
}

// MaxDiscount tope de descuento (% del subtotal), con default.
func (s Settings) MaxDiscount() decimal.Decimal {
	if s.MaxDiscountRate == nil {
		return DefaultMaxDiscountRate
	}
	return *s.MaxDiscountRate
}
