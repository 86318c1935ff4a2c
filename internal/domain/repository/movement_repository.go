package repository

import (
	"context"

	"github.com/jhoicas/logos-estoque/internal/domain/entity"
)

// MovementRepository ledger append-only: no hay Update ni Delete.
// List devuelve los movimientos por mes y, dentro del mes, en orden de inserción.
type MovementRepository interface {
	Append(ctx context.Context, m *entity.Movement) error
	List(ctx context.Context) ([]*entity.Movement, error)
}
