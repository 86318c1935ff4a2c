package kv

import (
	"context"

	"github.com/jhoicas/logos-estoque/internal/domain"
	"github.com/jhoicas/logos-estoque/internal/domain/entity"
	"github.com/jhoicas/logos-estoque/internal/domain/repository"
)

var _ repository.ItemRepository = (*ItemRepo)(nil)

// ItemRepo catálogo sobre la colección items.
type ItemRepo struct {
	q Querier
}

// NewItemRepository construye el repo (Store o tx).
func NewItemRepository(q Querier) *ItemRepo {
	return &ItemRepo{q: q}
}

func (r *ItemRepo) Create(ctx context.Context, item *entity.Item) error {
	return mutate(ctx, r.q, KeyItems, func(items []*entity.Item) ([]*entity.Item, error) {
		if indexOf(items, func(i *entity.Item) bool { return i.ID == item.ID }) >= 0 {
			return nil, domain.ErrDuplicate
		}
		return append(items, item), nil
	})
}

func (r *ItemRepo) GetByID(ctx context.Context, id string) (*entity.Item, error) {
	items, err := load[entity.Item](ctx, r.q, KeyItems)
	if err != nil {
		return nil, err
	}
	if idx := indexOf(items, func(i *entity.Item) bool { return i.ID == id }); idx >= 0 {
		return items[idx], nil
	}
	return nil, nil
}

func (r *ItemRepo) Update(ctx context.Context, item *entity.Item) error {
	return mutate(ctx, r.q, KeyItems, func(items []*entity.Item) ([]*entity.Item, error) {
		idx := indexOf(items, func(i *entity.Item) bool { return i.ID == item.ID })
		if idx < 0 {
			return nil, domain.ErrNotFound
		}
		items[idx] = item
		return items, nil
	})
}

func (r *ItemRepo) Delete(ctx context.Context, id string) error {
	return mutate(ctx, r.q, KeyItems, func(items []*entity.Item) ([]*entity.Item, error) {
		idx := indexOf(items, func(i *entity.Item) bool { return i.ID == id })
		if idx < 0 {
			return nil, domain.ErrNotFound
		}
		return append(items[:idx], items[idx+1:]...), nil
	})
}

func (r *ItemRepo) List(ctx context.Context) ([]*entity.Item, error) {
	return load[entity.Item](ctx, r.q, KeyItems)
}
