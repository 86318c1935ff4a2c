package kv

import (
	"context"

	"github.com/jhoicas/logos-estoque/internal/domain"
	"github.com/jhoicas/logos-estoque/internal/domain/entity"
	"github.com/jhoicas/logos-estoque/internal/domain/repository"
)

var _ repository.UserRepository = (*UserRepo)(nil)

// UserRepo usuarios sobre la colección users.
type UserRepo struct {
	q Querier
}

// NewUserRepository construye el repo.
func NewUserRepository(q Querier) *UserRepo {
	return &UserRepo{q: q}
}

func (r *UserRepo) Create(ctx context.Context, u *entity.User) error {
	return mutate(ctx, r.q, KeyUsers, func(list []*entity.User) ([]*entity.User, error) {
		if indexOf(list, func(x *entity.User) bool { return x.ID == u.ID || x.Username == u.Username }) >= 0 {
			return nil, domain.ErrDuplicate
		}
		return append(list, u), nil
	})
}

func (r *UserRepo) GetByID(ctx context.Context, id string) (*entity.User, error) {
	return r.find(ctx, func(u *entity.User) bool { return u.ID == id })
}

func (r *UserRepo) GetByUsername(ctx context.Context, username string) (*entity.User, error) {
	return r.find(ctx, func(u *entity.User) bool { return u.Username == username })
}

func (r *UserRepo) Update(ctx context.Context, u *entity.User) error {
	return mutate(ctx, r.q, KeyUsers, func(list []*entity.User) ([]*entity.User, error) {
		idx := indexOf(list, func(x *entity.User) bool { return x.ID == u.ID })
		if idx < 0 {
			return nil, domain.ErrUserNotFound
		}
		list[idx] = u
		return list, nil
	})
}

func (r *UserRepo) List(ctx context.Context) ([]*entity.User, error) {
	return load[entity.User](ctx, r.q, KeyUsers)
}

func (r *UserRepo) find(ctx context.Context, match func(*entity.User) bool) (*entity.User, error) {
	list, err := load[entity.User](ctx, r.q, KeyUsers)
	if err != nil {
		return nil, err
	}
	if idx := indexOf(list, match); idx >= 0 {
		return list[idx], nil
	}
	return nil, nil
}
