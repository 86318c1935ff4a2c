package kv

import (
	"context"

	"github.com/jhoicas/logos-estoque/internal/domain/entity"
	"github.com/jhoicas/logos-estoque/internal/domain/repository"
)

var _ repository.MovementRepository = (*MovementRepo)(nil)

// MovementRepo ledger append-only sobre la colección movements, partida por mes.
type MovementRepo struct {
	q Querier
}

// NewMovementRepository construye el repo.
func NewMovementRepository(q Querier) *MovementRepo {
	return &MovementRepo{q: q}
}

func (r *MovementRepo) Append(ctx context.Context, m *entity.Movement) error {
	return appendSharded(ctx, r.q, KeyMovements, m.Timestamp, m)
}

func (r *MovementRepo) List(ctx context.Context) ([]*entity.Movement, error) {
	return loadSharded[entity.Movement](ctx, r.q, KeyMovements)
}
