package adjustment

import (
	"context"

	"github.com/jhoicas/logos-estoque/internal/application/inventory"
	"github.com/jhoicas/logos-estoque/internal/domain/entity"
	"github.com/jhoicas/logos-estoque/internal/domain/repository"
)

// TxRunner transacción con catálogo, ledger y ajustes: la aprobación mueve stock y cierra el ajuste juntos.
type TxRunner interface {
	RunAdjustment(ctx context.Context, fn func(
		itemRepo repository.ItemRepository,
		movRepo repository.MovementRepository,
		adjRepo repository.AdjustmentRepository,
	) error) error
}

// StockEngine aplica un movimiento con los repos de la transacción del caller.
type StockEngine interface {
	RegisterInTx(
		ctx context.Context,
		itemRepo repository.ItemRepository,
		movRepo repository.MovementRepository,
		in inventory.MovementInput,
	) (*entity.Movement, error)
}
