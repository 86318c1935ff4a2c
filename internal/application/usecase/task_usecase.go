package usecase

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/logos-estoque/internal/application/dto"
	"github.com/jhoicas/logos-estoque/internal/domain"
	"github.com/jhoicas/logos-estoque/internal/domain/entity"
	"github.com/jhoicas/logos-estoque/internal/domain/repository"
)

// TaskUseCase quadro de atividades.
type TaskUseCase struct {
	repo repository.TaskRepository
	now  func() time.Time
}

// NewTaskUseCase construye el caso de uso.
func NewTaskUseCase(repo repository.TaskRepository) *TaskUseCase {
	return &TaskUseCase{repo: repo, now: time.Now}
}

// Create crea una tarea PENDENTE.
func (uc *TaskUseCase) Create(ctx context.Context, in dto.CreateTaskRequest) (*entity.KanbanTask, error) {
	title := strings.TrimSpace(in.Title)
	if title == "" || !entity.ValidPriority(in.Priority) {
		return nil, domain.ErrInvalidInput
	}
	t := &entity.KanbanTask{
		ID:          uuid.New().String(),
		Title:       title,
		Description: in.Description,
		Status:      entity.TaskPendente,
		Priority:    in.Priority,
		AssignedTo:  in.AssignedTo,
		CreatedAt:   uc.now(),
	}
	if err := uc.repo.Create(ctx, t); err != nil {
		return nil, err
	}
	return t, nil
}

// UpdateStatus mueve la tarea entre columnas (cualquier transición es válida).
func (uc *TaskUseCase) UpdateStatus(ctx context.Context, id, status string) (*entity.KanbanTask, error) {
	if !entity.ValidTaskStatus(status) {
		return nil, domain.ErrInvalidInput
	}
	t, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if t == nil {
		return nil, domain.ErrNotFound
	}
	t.Status = status
	if err := uc.repo.Update(ctx, t); err != nil {
		return nil, err
	}
	return t, nil
}

// Delete elimina la tarea.
func (uc *TaskUseCase) Delete(ctx context.Context, id string) error {
	return uc.repo.Delete(ctx, id)
}

// List tareas, opcionalmente solo las asignadas a assignedTo.
func (uc *TaskUseCase) List(ctx context.Context, assignedTo string) ([]*entity.KanbanTask, error) {
	all, err := uc.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	if assignedTo == "" {
		return all, nil
	}
	out := make([]*entity.KanbanTask, 0, len(all))
	for _, t := range all {
		if t.AssignedTo == assignedTo {
			out = append(out, t)
		}
	}
	return out, nil
}
