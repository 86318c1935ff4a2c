package dto

import "github.com/jhoicas/logos-estoque/internal/domain/entity"

// LoginRequest body para POST /api/auth/login.
type LoginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// LoginResponse token + usuario.
type LoginResponse struct {
	Token string       `json:"token"`
	User  UserResponse `json:"user"`
}

// CreateUserRequest body para POST /api/users.
type CreateUserRequest struct {
	Username    string              `json:"username" validate:"required,min=3,max=50"`
	Password    string              `json:"password" validate:"required,min=4"`
	Role        string              `json:"role" validate:"required,oneof=GERENCIA OPERADOR"`
	Permissions *entity.Permissions `json:"permissions,omitempty"`
}

// UpdateRoleRequest body para PUT /api/users/:id/role.
type UpdateRoleRequest struct {
	Role string `json:"role" validate:"required,oneof=GERENCIA OPERADOR"`
}

// UserResponse usuario sin hash de contraseña.
type UserResponse struct {
	ID          string             `json:"id"`
	Username    string             `json:"username"`
	Role        string             `json:"role"`
	Permissions entity.Permissions `json:"permissions"`
}
