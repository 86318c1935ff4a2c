package inventory

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/logos-estoque/internal/domain"
	"github.com/jhoicas/logos-estoque/internal/domain/entity"
	"github.com/jhoicas/logos-estoque/internal/domain/repository"
	"github.com/jhoicas/logos-estoque/pkg/logger"
)

// AuditInput conteo físico de una categoría (vacía = todo el catálogo).
// Los items sin conteo informado cuentan como 0.
type AuditInput struct {
	OperatorID   string
	OperatorName string
	Category     string
	Counts       map[string]decimal.Decimal // itemID → conteo físico
}

// AuditUseCase concilia el conteo físico con el saldo del sistema.
type AuditUseCase struct {
	txRunner TxRunner
	engine   *RegisterMovementUseCase
	log      *logger.Logger
}

// NewAuditUseCase construye el caso de uso.
func NewAuditUseCase(txRunner TxRunner, engine *RegisterMovementUseCase, log *logger.Logger) *AuditUseCase {
	return &AuditUseCase{txRunner: txRunner, engine: engine, log: logger.OrNop(log).Component("audit")}
}

// Finalize emite una ENTRADA o SAIDA por la diferencia de cada item divergente,
// todas en una única transacción. Devuelve los movimientos emitidos.
func (uc *AuditUseCase) Finalize(ctx context.Context, in AuditInput) ([]*entity.Movement, error) {
	for _, c := range in.Counts {
		if c.IsNegative() {
			return nil, domain.ErrInvalidInput
		}
	}
	label := in.Category
	if label == "" {
		label = "Geral"
	}
	note := fmt.Sprintf("Ajuste de Auditoria (%s)", label)

	var issued []*entity.Movement
	err := uc.txRunner.Run(ctx, func(itemRepo repository.ItemRepository, movRepo repository.MovementRepository) error {
		items, err := itemRepo.List(ctx)
		if err != nil {
			return err
		}
		for _, item := range items {
			if in.Category != "" && item.Category != in.Category {
				continue
			}
			physical := in.Counts[item.ID]
			diff := physical.Sub(item.CurrentQuantity)
			if diff.IsZero() {
				continue
			}
			typ := entity.MovementTypeEntrada
			if diff.IsNegative() {
				typ = entity.MovementTypeSaida
			}
			mov, err := uc.engine.RegisterInTx(ctx, itemRepo, movRepo, MovementInput{
				OperatorID:   in.OperatorID,
				OperatorName: in.OperatorName,
				ItemID:       item.ID,
				Type:         typ,
				Quantity:     diff.Abs(),
				Notes:        note,
			})
			if err != nil {
				return err
			}
			issued = append(issued, mov)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	uc.log.Info().Str("category", label).Int("adjusted", len(issued)).Msg("auditoría finalizada")
	return issued, nil
}
