package kv

import (
	"context"

	"github.com/jhoicas/logos-estoque/internal/domain"
	"github.com/jhoicas/logos-estoque/internal/domain/entity"
	"github.com/jhoicas/logos-estoque/internal/domain/repository"
)

var _ repository.AdjustmentRepository = (*AdjustmentRepo)(nil)

// AdjustmentRepo solicitudes de ajuste sobre la colección adjustments.
type AdjustmentRepo struct {
	q Querier
}

// NewAdjustmentRepository construye el repo.
func NewAdjustmentRepository(q Querier) *AdjustmentRepo {
	return &AdjustmentRepo{q: q}
}

func (r *AdjustmentRepo) Create(ctx context.Context, a *entity.StockAdjustment) error {
	return mutate(ctx, r.q, KeyAdjustments, func(list []*entity.StockAdjustment) ([]*entity.StockAdjustment, error) {
		return append(list, a), nil
	})
}

func (r *AdjustmentRepo) GetByID(ctx context.Context, id string) (*entity.StockAdjustment, error) {
	list, err := load[entity.StockAdjustment](ctx, r.q, KeyAdjustments)
	if err != nil {
		return nil, err
	}
	if idx := indexOf(list, func(a *entity.StockAdjustment) bool { return a.ID == id }); idx >= 0 {
		return list[idx], nil
	}
	return nil, nil
}

func (r *AdjustmentRepo) Update(ctx context.Context, a *entity.StockAdjustment) error {
	return mutate(ctx, r.q, KeyAdjustments, func(list []*entity.StockAdjustment) ([]*entity.StockAdjustment, error) {
		idx := indexOf(list, func(x *entity.StockAdjustment) bool { return x.ID == a.ID })
		if idx < 0 {
			return nil, domain.ErrNotFound
		}
		list[idx] = a
		return list, nil
	})
}

func (r *AdjustmentRepo) List(ctx context.Context) ([]*entity.StockAdjustment, error) {
	return load[entity.StockAdjustment](ctx, r.q, KeyAdjustments)
}
