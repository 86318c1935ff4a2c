package repository

import (
	"context"

	"github.com/jhoicas/logos-estoque/internal/domain/entity"
)

// TaskRepository puerto para el tablero de actividades.
type TaskRepository interface {
	Create(ctx context.Context, t *entity.KanbanTask) error
	GetByID(ctx context.Context, id string) (*entity.KanbanTask, error)
	Update(ctx context.Context, t *entity.KanbanTask) error
	Delete(ctx context.Context, id string) error
	List(ctx context.Context) ([]*entity.KanbanTask, error)
}
