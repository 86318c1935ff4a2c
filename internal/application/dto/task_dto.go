package dto

// CreateTaskRequest body para POST /api/tasks.
type CreateTaskRequest struct {
	Title       string `json:"title" validate:"required,max=200"`
	Description string `json:"description" validate:"max=2000"`
	Priority    string `json:"priority" validate:"required,oneof=BAIXA MEDIA ALTA"`
	AssignedTo  string `json:"assigned_to,omitempty"`
}

// UpdateTaskStatusRequest body para PUT /api/tasks/:id/status.
type UpdateTaskStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=PENDENTE EM_ANDAMENTO RESOLVIDA"`
}
