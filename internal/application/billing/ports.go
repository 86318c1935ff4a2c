package billing

import (
	"context"

	"github.com/jhoicas/logos-estoque/internal/application/inventory"
	"github.com/jhoicas/logos-estoque/internal/domain/entity"
	"github.com/jhoicas/logos-estoque/internal/domain/repository"
)

// SaleTxRunner ejecuta una función dentro de una transacción que incluye catálogo, ledger y ventas.
type SaleTxRunner interface {
	RunSale(ctx context.Context, fn func(
		itemRepo repository.ItemRepository,
		movRepo repository.MovementRepository,
		saleRepo repository.SaleRepository,
	) error) error
}

// StockEngine interfaz para integrar la venta con el motor de stock.
// RegisterInTx usa los repositorios del caller (misma transacción); si retorna error
// (ej. ErrInsufficientStock) el caller debe abortar.
type StockEngine interface {
	RegisterInTx(
		ctx context.Context,
		itemRepo repository.ItemRepository,
		movRepo repository.MovementRepository,
		in inventory.MovementInput,
	) (*entity.Movement, error)
}
