package entity

import "time"

// Estados del tablero de actividades.
const (
	TaskPendente    = "PENDENTE"
	TaskEmAndamento = "EM_ANDAMENTO"
	TaskResolvida   = "RESOLVIDA"
)

// Prioridades.
const (
	PriorityBaixa = "BAIXA"
	PriorityMedia = "MEDIA"
	PriorityAlta  = "ALTA"
)

// KanbanTask tarea operativa.
type KanbanTask struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Status      string    `json:"status"`
	Priority    string    `json:"priority"`
	AssignedTo  string    `json:"assignedTo,omitempty"`
	CreatedAt   time.Time `json:"createdAt"`
}

// ValidTaskStatus reporta si s es un estado conocido.
func ValidTaskStatus(s string) bool {
	return s == TaskPendente || s == TaskEmAndamento || s == TaskResolvida
}

// ValidPriority reporta si p es una prioridad conocida.
func ValidPriority(p string) bool {
	return p == PriorityBaixa || p == PriorityMedia || p == PriorityAlta
}
