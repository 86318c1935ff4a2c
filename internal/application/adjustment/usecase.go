// Package adjustment implementa el flujo de solicitud y revisión de ajustes de stock.
// Estados: PENDENTE → APROVADO | REJEITADO, ambos terminales.
package adjustment

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/logos-estoque/internal/application/inventory"
	"github.com/jhoicas/logos-estoque/internal/domain"
	"github.com/jhoicas/logos-estoque/internal/domain/entity"
	"github.com/jhoicas/logos-estoque/internal/domain/repository"
	"github.com/jhoicas/logos-estoque/pkg/logger"
)

// Request solicitud de ajuste. DeltaQuantity es magnitud (> 0) en la dirección de AdjustmentType.
type Request struct {
	ItemID         string
	RequestedBy    string
	AdjustmentType string
	DeltaQuantity  decimal.Decimal
	Reason         string
}

// UseCase casos de uso del flujo de ajustes.
type UseCase struct {
	txRunner TxRunner
	engine   StockEngine
	itemRepo repository.ItemRepository
	adjRepo  repository.AdjustmentRepository
	userRepo repository.UserRepository
	log      *logger.Logger
	now      func() time.Time
}

// NewUseCase construye el caso de uso.
func NewUseCase(
	txRunner TxRunner,
	engine StockEngine,
	itemRepo repository.ItemRepository,
	adjRepo repository.AdjustmentRepository,
	userRepo repository.UserRepository,
	log *logger.Logger,
) *UseCase {
	return &UseCase{
		txRunner: txRunner,
		engine:   engine,
		itemRepo: itemRepo,
		adjRepo:  adjRepo,
		userRepo: userRepo,
		log:      logger.OrNop(log).Component("adjustment"),
		now:      time.Now,
	}
}

// RequestAdjustment crea un ajuste PENDENTE. OldQuantity/NewQuantity son solo informativos
// y no se revalidan al aprobar.
func (uc *UseCase) RequestAdjustment(ctx context.Context, in Request) (*entity.StockAdjustment, error) {
	if in.ItemID == "" || in.RequestedBy == "" || !in.DeltaQuantity.IsPositive() {
		return nil, domain.ErrInvalidInput
	}
	if in.AdjustmentType != entity.MovementTypeEntrada && in.AdjustmentType != entity.MovementTypeSaida {
		return nil, domain.ErrInvalidInput
	}
	item, err := uc.itemRepo.GetByID(ctx, in.ItemID)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, domain.ErrNotFound
	}

	newQty := item.CurrentQuantity.Add(in.DeltaQuantity)
	if in.AdjustmentType == entity.MovementTypeSaida {
		newQty = item.CurrentQuantity.Sub(in.DeltaQuantity)
	}
	adj := &entity.StockAdjustment{
		ID:             uuid.New().String(),
		ItemID:         item.ID,
		RequestedBy:    in.RequestedBy,
		RequestedAt:    uc.now(),
		OldQuantity:    item.CurrentQuantity,
		NewQuantity:    newQty,
		AdjustmentType: in.AdjustmentType,
		DeltaQuantity:  in.DeltaQuantity,
		Reason:         in.Reason,
		Status:         entity.AdjustmentPendente,
	}
	if err := uc.adjRepo.Create(ctx, adj); err != nil {
		return nil, err
	}
	return adj, nil
}

// ProcessAdjustment resuelve un ajuste PENDENTE.
//
//   - ErrNotFound: id desconocido.
//   - ErrForbidden: el revisor no existe o no es GERENCIA.
//   - ErrInvalidState: el ajuste ya fue aprobado o rechazado; no se emite movimiento.
//   - APROVADO emite un único movimiento con el tipo y delta capturados en la solicitud;
//     si falla (ej. ErrInsufficientStock) el ajuste sigue PENDENTE.
func (uc *UseCase) ProcessAdjustment(ctx context.Context, adjustmentID, decision, reviewerID string) (*entity.StockAdjustment, error) {
	if decision != entity.AdjustmentAprovado && decision != entity.AdjustmentRejeitado {
		return nil, domain.ErrInvalidInput
	}
	reviewer, err := uc.userRepo.GetByID(ctx, reviewerID)
	if err != nil {
		return nil, err
	}
	if reviewer == nil || reviewer.Role != entity.RoleGerencia {
		return nil, domain.ErrForbidden
	}

	var result *entity.StockAdjustment
	err = uc.txRunner.RunAdjustment(ctx, func(
		itemRepo repository.ItemRepository,
		movRepo repository.MovementRepository,
		adjRepo repository.AdjustmentRepository,
	) error {
		adj, err := adjRepo.GetByID(ctx, adjustmentID)
		if err != nil {
			return err
		}
		if adj == nil {
			return domain.ErrNotFound
		}
		if !adj.IsPending() {
			return fmt.Errorf("ajuste %s já está %s: %w", adj.ID, adj.Status, domain.ErrInvalidState)
		}

		if decision == entity.AdjustmentAprovado {
			if _, err := uc.engine.RegisterInTx(ctx, itemRepo, movRepo, inventory.MovementInput{
				OperatorID:   reviewer.ID,
				OperatorName: reviewer.Username,
				ItemID:       adj.ItemID,
				Type:         adj.AdjustmentType,
				Quantity:     adj.DeltaQuantity,
				Notes:        "AJUSTE APROVADO: " + adj.Reason,
			}); err != nil {
				return err
			}
		}

		reviewedAt := uc.now()
		adj.Status = decision
		adj.ReviewedBy = reviewer.ID
		adj.ReviewedAt = &reviewedAt
		if err := adjRepo.Update(ctx, adj); err != nil {
			return err
		}
		result = adj
		return nil
	})
	if err != nil {
		return nil, err
	}
	uc.log.Info().
		Str("adjustment_id", result.ID).
		Str("status", result.Status).
		Str("reviewer", reviewer.Username).
		Msg("ajuste revisado")
	return result, nil
}

// List devuelve los ajustes, opcionalmente filtrados por estado; más recientes primero.
func (uc *UseCase) List(ctx context.Context, status string) ([]*entity.StockAdjustment, error) {
	all, err := uc.adjRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]*entity.StockAdjustment, 0, len(all))
	for i := len(all) - 1; i >= 0; i-- {
		if status == "" || all[i].Status == status {
			out = append(out, all[i])
		}
	}
	return out, nil
}
