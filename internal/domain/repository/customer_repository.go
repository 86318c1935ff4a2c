package repository

import (
	"context"

	"github.com/jhoicas/logos-estoque/internal/domain/entity"
)

// CustomerRepository puerto para clientes. Create asigna el ID secuencial C-<n>.
type CustomerRepository interface {
	Create(ctx context.Context, c *entity.Customer) error
	GetByUUID(ctx context.Context, uuid string) (*entity.Customer, error)
	Update(ctx context.Context, c *entity.Customer) error
	List(ctx context.Context) ([]*entity.Customer, error)
}
