package inventory

import "github.com/shopspring/decimal"

// costPlaces decimales del costo promedio guardado en el item.
const costPlaces = 4

// WeightedUnitCost recalcula el costo unitario tras una ENTRADA con costo informado:
// (saldo*costo + entrada*costoEntrada) / (saldo + entrada).
// Saldo negativo cuenta como cero; sin unidades resultantes el costo es 0.
func WeightedUnitCost(stock, unitCost, inQty, inCost decimal.Decimal) decimal.Decimal {
	if stock.IsNegative() {
		stock = decimal.Zero
	}
	total := stock.Add(inQty)
	if !total.IsPositive() {
		return decimal.Zero
	}
	return stock.Mul(unitCost).Add(inQty.Mul(inCost)).DivRound(total, costPlaces)
}
