package kv

import (
	"context"

	"github.com/jhoicas/logos-estoque/internal/application/adjustment"
	"github.com/jhoicas/logos-estoque/internal/application/billing"
	"github.com/jhoicas/logos-estoque/internal/application/inventory"
	"github.com/jhoicas/logos-estoque/internal/domain/repository"
)

// Ensure TxRunner implements los puertos transaccionales de la aplicación.
var _ inventory.TxRunner = (*TxRunner)(nil)
var _ billing.SaleTxRunner = (*TxRunner)(nil)
var _ adjustment.TxRunner = (*TxRunner)(nil)

// TxRunner ejecuta callbacks dentro de Store.Update con repos atados a la tx.
type TxRunner struct {
	store Store
}

// NewTxRunner construye el runner con el almacén.
func NewTxRunner(store Store) *TxRunner {
	return &TxRunner{store: store}
}

// Run catálogo + ledger.
func (r *TxRunner) Run(ctx context.Context, fn func(
	itemRepo repository.ItemRepository,
	movRepo repository.MovementRepository,
) error) error {
	return r.store.Update(ctx, func(tx Querier) error {
		return fn(NewItemRepository(tx), NewMovementRepository(tx))
	})
}

// RunSale catálogo + ledger + ventas (baja de todas las líneas y registro de la venta).
func (r *TxRunner) RunSale(ctx context.Context, fn func(
	itemRepo repository.ItemRepository,
	movRepo repository.MovementRepository,
	saleRepo repository.SaleRepository,
) error) error {
	return r.store.Update(ctx, func(tx Querier) error {
		return fn(NewItemRepository(tx), NewMovementRepository(tx), NewSaleRepository(tx))
	})
}

// RunAdjustment catálogo + ledger + ajustes.
func (r *TxRunner) RunAdjustment(ctx context.Context, fn func(
	itemRepo repository.ItemRepository,
	movRepo repository.MovementRepository,
	adjRepo repository.AdjustmentRepository,
) error) error {
	return r.store.Update(ctx, func(tx Querier) error {
		return fn(NewItemRepository(tx), NewMovementRepository(tx), NewAdjustmentRepository(tx))
	})
}
