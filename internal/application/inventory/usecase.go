package inventory

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/logos-estoque/internal/domain"
	"github.com/jhoicas/logos-estoque/internal/domain/entity"
	"github.com/jhoicas/logos-estoque/internal/domain/inventory"
	"github.com/jhoicas/logos-estoque/internal/domain/repository"
	"github.com/jhoicas/logos-estoque/pkg/logger"
)

// RegisterMovementUseCase motor de stock: aplica ENTRADA, SAIDA o AJUSTE sobre el saldo del item
// y agrega el movimiento al ledger en la misma transacción (ambos o ninguno).
type RegisterMovementUseCase struct {
	txRunner TxRunner
	log      *logger.Logger
	now      func() time.Time
}

// NewRegisterMovementUseCase construye el caso de uso.
func NewRegisterMovementUseCase(txRunner TxRunner, log *logger.Logger) *RegisterMovementUseCase {
	return &RegisterMovementUseCase{
		txRunner: txRunner,
		log:      logger.OrNop(log).Component("stock"),
		now:      time.Now,
	}
}

// MovementInput entrada del motor.
// Quantity es magnitud (> 0) para ENTRADA/SAIDA y saldo objetivo (>= 0) para AJUSTE.
// UnitCost solo aplica a ENTRADA: recalcula el costo promedio ponderado del item.
type MovementInput struct {
	OperatorID   string
	OperatorName string
	ItemID       string
	Type         string
	Quantity     decimal.Decimal
	Notes        string
	UnitCost     *decimal.Decimal
}

// RegisterMovement registra un movimiento. No es idempotente: cada llamada es un evento físico distinto.
// Errores: ErrInvalidInput, ErrNotFound, ErrInsufficientStock. En error no se escribe nada.
func (uc *RegisterMovementUseCase) RegisterMovement(ctx context.Context, in MovementInput) (*entity.Movement, error) {
	if err := validateInput(in); err != nil {
		return nil, err
	}
	var mov *entity.Movement
	err := uc.txRunner.Run(ctx, func(itemRepo repository.ItemRepository, movRepo repository.MovementRepository) error {
		var err error
		mov, err = uc.RegisterInTx(ctx, itemRepo, movRepo, in)
		return err
	})
	if err != nil {
		return nil, err
	}
	uc.log.Info().
		Str("item_id", mov.ItemID).
		Str("type", mov.Type).
		Str("quantity", mov.Quantity.String()).
		Str("user", mov.Username).
		Msg("movimiento registrado")
	return mov, nil
}

// RegisterInTx aplica el movimiento usando los repositorios del caller (misma transacción).
// Lo usan venta, aprobación de ajustes y auditoría; si retorna error el caller debe abortar la tx.
func (uc *RegisterMovementUseCase) RegisterInTx(
	ctx context.Context,
	itemRepo repository.ItemRepository,
	movRepo repository.MovementRepository,
	in MovementInput,
) (*entity.Movement, error) {
	if err := validateInput(in); err != nil {
		return nil, err
	}
	change, err := inventory.NewStockChange(in.Type, in.Quantity)
	if err != nil {
		return nil, err
	}

	item, err := itemRepo.GetByID(ctx, in.ItemID)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, domain.ErrNotFound
	}

	next, err := change.Apply(item.CurrentQuantity)
	if err != nil {
		return nil, err
	}

	now := uc.now()
	if _, entry := change.(inventory.Entry); entry && in.UnitCost != nil {
		item.UnitPrice = inventory.WeightedUnitCost(item.CurrentQuantity, item.UnitPrice, in.Quantity, *in.UnitCost)
	}
	item.CurrentQuantity = next
	item.UpdatedAt = now
	if err := itemRepo.Update(ctx, item); err != nil {
		return nil, err
	}

	mov := &entity.Movement{
		ID:        uuid.New().String(),
		ItemID:    item.ID,
		SKU:       item.SKU,
		ItemName:  item.Name,
		Type:      change.MovementType(),
		Quantity:  change.Amount(),
		UserID:    in.OperatorID,
		Username:  in.OperatorName,
		Timestamp: now,
		Notes:     in.Notes,
	}
	if err := movRepo.Append(ctx, mov); err != nil {
		return nil, err
	}
	return mov, nil
}

func validateInput(in MovementInput) error {
	if in.ItemID == "" || !entity.ValidMovementType(in.Type) {
		return domain.ErrInvalidInput
	}
	if in.UnitCost != nil && (in.Type != entity.MovementTypeEntrada || in.UnitCost.IsNegative()) {
		return domain.ErrInvalidInput
	}
	return nil
}
