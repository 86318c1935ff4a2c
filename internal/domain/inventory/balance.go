package inventory

import (
	"sort"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/logos-estoque/internal/domain/entity"
)

// BalancedMovement movimiento con el saldo del item inmediatamente después de aplicarlo.
type BalancedMovement struct {
	Movement     *entity.Movement
	BalanceAfter decimal.Decimal
}

// ReconstructBalances reproduce el ledger en orden cronológico ascendente (estable: empates
// conservan el orden de inserción) partiendo de saldo 0 por item.
// ENTRADA suma, SAIDA resta, AJUSTE sobrescribe. El resultado es derivado: nunca se persiste
// y puede diferir de CurrentQuantity si el catálogo fue editado fuera del ledger.
func ReconstructBalances(movements []*entity.Movement) []BalancedMovement {
	ordered := make([]*entity.Movement, len(movements))
	copy(ordered, movements)
	sort.SliceStable(ordered, func(i, j int) bool {
		return ordered[i].Timestamp.Before(ordered[j].Timestamp)
	})

	running := make(map[string]decimal.Decimal)
	out := make([]BalancedMovement, 0, len(ordered))
	for _, m := range ordered {
		next := foldBalance(running[m.ItemID], m.Type, m.Quantity)
		running[m.ItemID] = next
		out = append(out, BalancedMovement{Movement: m, BalanceAfter: next})
	}
	return out
}

// foldBalance no valida saldo: el histórico se reproduce tal como fue registrado.
func foldBalance(prev decimal.Decimal, movementType string, qty decimal.Decimal) decimal.Decimal {
	switch movementType {
	case entity.MovementTypeEntrada:
		return prev.Add(qty)
	case entity.MovementTypeSaida:
		return prev.Sub(qty)
	case entity.MovementTypeAjuste:
		return qty
	}
	return prev
}
