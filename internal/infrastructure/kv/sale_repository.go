package kv

import (
	"context"

	"github.com/jhoicas/logos-estoque/internal/domain/entity"
	"github.com/jhoicas/logos-estoque/internal/domain/repository"
)

var _ repository.SaleRepository = (*SaleRepo)(nil)

// SaleRepo ventas sobre la colección sales, partida por mes.
type SaleRepo struct {
	q Querier
}

// NewSaleRepository construye el repo.
func NewSaleRepository(q Querier) *SaleRepo {
	return &SaleRepo{q: q}
}

func (r *SaleRepo) Create(ctx context.Context, s *entity.Sale) error {
	return appendSharded(ctx, r.q, KeySales, s.Timestamp, s)
}

func (r *SaleRepo) List(ctx context.Context) ([]*entity.Sale, error) {
	return loadSharded[entity.Sale](ctx, r.q, KeySales)
}
