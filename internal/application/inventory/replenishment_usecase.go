package inventory

import (
	"context"
	"sort"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/logos-estoque/internal/application/dto"
	"github.com/jhoicas/logos-estoque/internal/domain/repository"
)

// idealStockFactor stock ideal = mínimo × 1,5.
var idealStockFactor = decimal.NewFromFloat(1.5)

// ReplenishmentUseCase genera la lista de reposición (items bajo el mínimo).
type ReplenishmentUseCase struct {
	itemRepo repository.ItemRepository
}

// NewReplenishmentUseCase construye el caso de uso de reposición.
func NewReplenishmentUseCase(itemRepo repository.ItemRepository) *ReplenishmentUseCase {
	return &ReplenishmentUseCase{itemRepo: itemRepo}
}

// GenerateReplenishmentList devuelve los items con saldo < mínimo, con cantidad sugerida de pedido
// (ideal − saldo) y valor de ruptura ((mínimo − saldo) × costo). category vacía = todo el catálogo.
// Orden: mayor déficit absoluto primero; prioridad 1 = más urgente.
func (uc *ReplenishmentUseCase) GenerateReplenishmentList(ctx context.Context, category string) ([]dto.ReplenishmentSuggestionDTO, error) {
	items, err := uc.itemRepo.List(ctx)
	if err != nil {
		return nil, err
	}

	suggestions := make([]dto.ReplenishmentSuggestionDTO, 0)
	for _, item := range items {
		if !item.BelowMinimum() {
			continue
		}
		if category != "" && !strings.EqualFold(item.Category, category) {
			continue
		}
		idealStock := item.MinQuantity.Mul(idealStockFactor)
		suggestedQty := idealStock.Sub(item.CurrentQuantity)
		if suggestedQty.IsNegative() {
			suggestedQty = decimal.Zero
		}
		deficit := item.MinQuantity.Sub(item.CurrentQuantity)

		suggestions = append(suggestions, dto.ReplenishmentSuggestionDTO{
			ItemID:             item.ID,
			SKU:                item.SKU,
			ItemName:           item.Name,
			Category:           item.Category,
			CurrentQuantity:    item.CurrentQuantity,
			MinQuantity:        item.MinQuantity,
			Deficit:            deficit,
			IdealStock:         idealStock,
			SuggestedOrderQty:  suggestedQty,
			UnitCost:           item.UnitPrice,
			EstimatedOrderCost: suggestedQty.Mul(item.UnitPrice),
			RuptureValue:       deficit.Mul(item.UnitPrice),
		})
	}

	sort.SliceStable(suggestions, func(i, j int) bool {
		a, b := suggestions[i], suggestions[j]
		if !a.Deficit.Equal(b.Deficit) {
			return a.Deficit.GreaterThan(b.Deficit)
		}
		// Tiebreak: mayor valor de ruptura
		return a.RuptureValue.GreaterThan(b.RuptureValue)
	})

	for i := range suggestions {
		suggestions[i].Priority = i + 1
	}
	return suggestions, nil
}
