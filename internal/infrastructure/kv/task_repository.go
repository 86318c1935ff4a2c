package kv

import (
	"context"

	"github.com/jhoicas/logos-estoque/internal/domain"
	"github.com/jhoicas/logos-estoque/internal/domain/entity"
	"github.com/jhoicas/logos-estoque/internal/domain/repository"
)

var _ repository.TaskRepository = (*TaskRepo)(nil)

// TaskRepo tareas sobre la colección tasks.
type TaskRepo struct {
	q Querier
}

// NewTaskRepository construye el repo.
func NewTaskRepository(q Querier) *TaskRepo {
	return &TaskRepo{q: q}
}

func (r *TaskRepo) Create(ctx context.Context, t *entity.KanbanTask) error {
	return mutate(ctx, r.q, KeyTasks, func(list []*entity.KanbanTask) ([]*entity.KanbanTask, error) {
		return append(list, t), nil
	})
}

func (r *TaskRepo) GetByID(ctx context.Context, id string) (*entity.KanbanTask, error) {
	list, err := load[entity.KanbanTask](ctx, r.q, KeyTasks)
	if err != nil {
		return nil, err
	}
	if idx := indexOf(list, func(t *entity.KanbanTask) bool { return t.ID == id }); idx >= 0 {
		return list[idx], nil
	}
	return nil, nil
}

func (r *TaskRepo) Update(ctx context.Context, t *entity.KanbanTask) error {
	return mutate(ctx, r.q, KeyTasks, func(list []*entity.KanbanTask) ([]*entity.KanbanTask, error) {
		idx := indexOf(list, func(x *entity.KanbanTask) bool { return x.ID == t.ID })
		if idx < 0 {
			return nil, domain.ErrNotFound
		}
		list[idx] = t
		return list, nil
	})
}

func (r *TaskRepo) Delete(ctx context.Context, id string) error {
	return mutate(ctx, r.q, KeyTasks, func(list []*entity.KanbanTask) ([]*entity.KanbanTask, error) {
		idx := indexOf(list, func(t *entity.KanbanTask) bool { return t.ID == id })
		if idx < 0 {
			return nil, domain.ErrNotFound
		}
		return append(list[:idx], list[idx+1:]...), nil
	})
}

func (r *TaskRepo) List(ctx context.Context) ([]*entity.KanbanTask, error) {
	return load[entity.KanbanTask](ctx, r.q, KeyTasks)
}
