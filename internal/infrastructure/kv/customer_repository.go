package kv

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/jhoicas/logos-estoque/internal/domain"
	"github.com/jhoicas/logos-estoque/internal/domain/entity"
	"github.com/jhoicas/logos-estoque/internal/domain/repository"
)

// firstCustomerSeq: el primer cliente recibe C-1001.
const firstCustomerSeq = 1000

var _ repository.CustomerRepository = (*CustomerRepo)(nil)

// CustomerRepo clientes sobre la colección customers.
type CustomerRepo struct {
	q Querier
}

// NewCustomerRepository construye el repo.
func NewCustomerRepository(q Querier) *CustomerRepo {
	return &CustomerRepo{q: q}
}

// Create asigna c.ID = C-<último+1> dentro de la misma escritura de la colección.
func (r *CustomerRepo) Create(ctx context.Context, c *entity.Customer) error {
	return mutate(ctx, r.q, KeyCustomers, func(list []*entity.Customer) ([]*entity.Customer, error) {
		if indexOf(list, func(x *entity.Customer) bool { return x.UUID == c.UUID }) >= 0 {
			return nil, domain.ErrDuplicate
		}
		last := firstCustomerSeq
		if len(list) > 0 {
			last = customerSeq(list[len(list)-1].ID)
		}
		c.ID = fmt.Sprintf("C-%d", last+1)
		return append(list, c), nil
	})
}

func (r *CustomerRepo) GetByUUID(ctx context.Context, uuid string) (*entity.Customer, error) {
	list, err := load[entity.Customer](ctx, r.q, KeyCustomers)
	if err != nil {
		return nil, err
	}
	if idx := indexOf(list, func(c *entity.Customer) bool { return c.UUID == uuid }); idx >= 0 {
		return list[idx], nil
	}
	return nil, nil
}

func (r *CustomerRepo) Update(ctx context.Context, c *entity.Customer) error {
	return mutate(ctx, r.q, KeyCustomers, func(list []*entity.Customer) ([]*entity.Customer, error) {
		idx := indexOf(list, func(x *entity.Customer) bool { return x.UUID == c.UUID })
		if idx < 0 {
			return nil, domain.ErrNotFound
		}
		list[idx] = c
		return list, nil
	})
}

func (r *CustomerRepo) List(ctx context.Context) ([]*entity.Customer, error) {
	return load[entity.Customer](ctx, r.q, KeyCustomers)
}

// customerSeq extrae n de "C-n"; IDs mal formados cuentan como el inicio de la secuencia.
func customerSeq(id string) int {
	_, num, ok := strings.Cut(id, "-")
	if !ok {
		return firstCustomerSeq
	}
	n, err := strconv.Atoi(num)
	if err != nil {
		return firstCustomerSeq
	}
	return n
}
