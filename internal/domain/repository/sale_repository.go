package repository

import (
	"context"

	"github.com/jhoicas/logos-estoque/internal/domain/entity"
)

// SaleRepository puerto para ventas liquidadas.
type SaleRepository interface {
	Create(ctx context.Context, s *entity.Sale) error
	List(ctx context.Context) ([]*entity.Sale, error)
}
