package inventory

import (
	"github.com/shopspring/decimal"

	"github.com/jhoicas/logos-estoque/internal/domain"
	"github.com/jhoicas/logos-estoque/internal/domain/entity"
)

// StockChange es la unión cerrada de cambios de saldo: Entry, Exit o AbsoluteAdjustment.
// El par (tipo, cantidad) crudo solo se interpreta en NewStockChange.
type StockChange interface {
	// Apply devuelve el nuevo saldo o ErrInsufficientStock. No modifica nada.
	Apply(current decimal.Decimal) (decimal.Decimal, error)
	// MovementType tipo persistido en el ledger.
	MovementType() string
	// Amount cantidad registrada en el movimiento (magnitud o saldo objetivo).
	Amount() decimal.Decimal
	sealed()
}

// Entry suma Qty al saldo.
type Entry struct{ Qty decimal.Decimal }

// Exit resta Qty; exige saldo suficiente.
type Exit struct{ Qty decimal.Decimal }

// AbsoluteAdjustment reemplaza el saldo por Target.
type AbsoluteAdjustment struct{ Target decimal.Decimal }

func (e Entry) Apply(current decimal.Decimal) (decimal.Decimal, error) {
	return current.Add(e.Qty), nil
}
func (e Entry) MovementType() string    { return entity.MovementTypeEntrada }
func (e Entry) Amount() decimal.Decimal { return e.Qty }
func (Entry) sealed()                   {}

func (e Exit) Apply(current decimal.Decimal) (decimal.Decimal, error) {
	if current.LessThan(e.Qty) {
		return current, domain.ErrInsufficientStock
	}
	return current.Sub(e.Qty), nil
}
func (e Exit) MovementType() string    { return entity.MovementTypeSaida }
func (e Exit) Amount() decimal.Decimal { return e.Qty }
func (Exit) sealed()                   {}

func (a AbsoluteAdjustment) Apply(decimal.Decimal) (decimal.Decimal, error) {
	return a.Target, nil
}
func (a AbsoluteAdjustment) MovementType() string    { return entity.MovementTypeAjuste }
func (a AbsoluteAdjustment) Amount() decimal.Decimal { return a.Target }
func (AbsoluteAdjustment) sealed()                   {}

// NewStockChange valida el par crudo y lo convierte en la variante correspondiente.
// ENTRADA/SAIDA exigen cantidad > 0; AJUSTE exige saldo objetivo >= 0.
func NewStockChange(movementType string, qty decimal.Decimal) (StockChange, error) {
	switch movementType {
	case entity.MovementTypeEntrada:
		if !qty.IsPositive() {
			return nil, domain.ErrInvalidInput
		}
		return Entry{Qty: qty}, nil
	case entity.MovementTypeSaida:
		if !qty.IsPositive() {
			return nil, domain.ErrInvalidInput
		}
		return Exit{Qty: qty}, nil
	case entity.MovementTypeAjuste:
		if qty.IsNegative() {
			return nil, domain.ErrInvalidInput
		}
		return AbsoluteAdjustment{Target: qty}, nil
	}
	return nil, domain.ErrInvalidInput
}
