// Package sales contiene la política de precios del PDV: subtotal, margen, descuento e intereses.
package sales

import (
	"github.com/shopspring/decimal"

	"github.com/jhoicas/logos-estoque/internal/domain/entity"
)

var hundred = decimal.NewFromInt(100)

// Line línea del carrito: cantidad, costo (UnitPrice) y precio de venta.
type Line struct {
	Quantity  decimal.Decimal
	UnitPrice decimal.Decimal
	SalePrice decimal.Decimal
}

// Rates porcentajes vigentes (ej. 2.5 = 2,5 %).
type Rates struct {
	InterestRate    decimal.Decimal
	MaxDiscountRate decimal.Decimal
}

// Quote desglose de precio de una venta.
type Quote struct {
	Subtotal    decimal.Decimal
	TotalMargin decimal.Decimal
	Discount    decimal.Decimal
	Interest    decimal.Decimal
	Total       decimal.Decimal
}

// InterestPolicy calcula los intereses sobre la base financiada.
// ratePct es porcentaje por cuota; installments > 1.
type InterestPolicy func(base, ratePct decimal.Decimal, installments int) decimal.Decimal

// LinearInterest interés simple: base × tasa/100 × cuotas. Sin capitalización ni amortización.
func LinearInterest(base, ratePct decimal.Decimal, installments int) decimal.Decimal {
	return base.Mul(ratePct).Div(hundred).Mul(decimal.NewFromInt(int64(installments)))
}

// Calculator aplica la política de precios con una InterestPolicy intercambiable.
type Calculator struct {
	interest InterestPolicy
}

// NewCalculator construye el calculador; policy nil usa LinearInterest.
func NewCalculator(policy InterestPolicy) *Calculator {
	if policy == nil {
		policy = LinearInterest
	}
	return &Calculator{interest: policy}
}

// Quote calcula subtotal, margen, descuento, intereses y total.
//
//   - descuento = 0 en CREDITO; si no max(0, min(pedido, margen, subtotal × tope/100))
//   - interés   = 0 salvo CREDITO con más de una cuota
//   - total     = subtotal − descuento + interés
func (c *Calculator) Quote(lines []Line, requestedDiscount decimal.Decimal, paymentMethod string, installments int, rates Rates) Quote {
	var q Quote
	for _, l := range lines {
		q.Subtotal = q.Subtotal.Add(l.Quantity.Mul(l.SalePrice))
		q.TotalMargin = q.TotalMargin.Add(l.Quantity.Mul(l.SalePrice.Sub(l.UnitPrice)))
	}

	if paymentMethod != entity.PaymentCredito {
		ceiling := q.Subtotal.Mul(rates.MaxDiscountRate).Div(hundred)
		q.Discount = decimal.Min(requestedDiscount, q.TotalMargin, ceiling)
		if q.Discount.IsNegative() {
			q.Discount = decimal.Zero
		}
	}

	if paymentMethod == entity.PaymentCredito && installments > 1 {
		q.Interest = c.interest(q.Subtotal.Sub(q.Discount), rates.InterestRate, installments)
	}

	q.Total = q.Subtotal.Sub(q.Discount).Add(q.Interest)
	return q
}
