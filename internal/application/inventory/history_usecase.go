package inventory

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/logos-estoque/internal/domain/entity"
	"github.com/jhoicas/logos-estoque/internal/domain/inventory"
	"github.com/jhoicas/logos-estoque/internal/domain/repository"
	"github.com/jhoicas/logos-estoque/pkg/textsearch"
)

// MovementFilter filtros del histórico. Type vacío = todos; Query busca en item, SKU, notas y usuario.
type MovementFilter struct {
	Type  string
	Query string
}

// MovementWithBalance movimiento con el saldo del item justo después de él.
type MovementWithBalance struct {
	*entity.Movement
	BalanceAfter decimal.Decimal `json:"balanceAfter"`
}

// MovementHistoryUseCase histórico del ledger con saldo reconstruido.
type MovementHistoryUseCase struct {
	movRepo repository.MovementRepository
}

// NewMovementHistoryUseCase construye el caso de uso.
func NewMovementHistoryUseCase(movRepo repository.MovementRepository) *MovementHistoryUseCase {
	return &MovementHistoryUseCase{movRepo: movRepo}
}

// List reconstruye los saldos sobre el ledger completo y solo después filtra,
// así el saldo de cada fila no depende del filtro. Orden: más reciente primero.
func (uc *MovementHistoryUseCase) List(ctx context.Context, f MovementFilter) ([]MovementWithBalance, error) {
	movs, err := uc.movRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	balanced := inventory.ReconstructBalances(movs)

	out := make([]MovementWithBalance, 0, len(balanced))
	for i := len(balanced) - 1; i >= 0; i-- {
		bm := balanced[i]
		m := bm.Movement
		if f.Type != "" && m.Type != f.Type {
			continue
		}
		if !textsearch.Contains(f.Query, m.ItemName, m.SKU, m.Notes, m.Username) {
			continue
		}
		out = append(out, MovementWithBalance{Movement: m, BalanceAfter: bm.BalanceAfter})
	}
	return out, nil
}

// ItemBalances saldo reconstruido por item tras su último movimiento.
// Sin escrituras fuera del ledger coincide con CurrentQuantity.
func (uc *MovementHistoryUseCase) ItemBalances(ctx context.Context) (map[string]decimal.Decimal, error) {
	movs, err := uc.movRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make(map[string]decimal.Decimal)
	for _, bm := range inventory.ReconstructBalances(movs) {
		out[bm.Movement.ItemID] = bm.BalanceAfter
	}
	return out, nil
}
