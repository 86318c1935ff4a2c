package repository

import (
	"context"

	"github.com/jhoicas/logos-estoque/internal/domain/entity"
)

// AdjustmentRepository puerto para solicitudes de ajuste.
type AdjustmentRepository interface {
	Create(ctx context.Context, a *entity.StockAdjustment) error
	GetByID(ctx context.Context, id string) (*entity.StockAdjustment, error)
	Update(ctx context.Context, a *entity.StockAdjustment) error
	List(ctx context.Context) ([]*entity.StockAdjustment, error)
}
