package usecase

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/jhoicas/logos-estoque/internal/application/auth"
	"github.com/jhoicas/logos-estoque/internal/application/dto"
	"github.com/jhoicas/logos-estoque/internal/domain"
	"github.com/jhoicas/logos-estoque/internal/domain/entity"
	"github.com/jhoicas/logos-estoque/internal/domain/repository"
)

// bootstrapper lo implementa *auth.AuthUseCase.
type bootstrapper interface {
	EnsureDefaultManager(ctx context.Context) error
}

// UserUseCase administración de usuarios, roles y permisos.
type UserUseCase struct {
	repo      repository.UserRepository
	bootstrap bootstrapper
}

// NewUserUseCase construye el caso de uso.
func NewUserUseCase(repo repository.UserRepository, bootstrap bootstrapper) *UserUseCase {
	return &UserUseCase{repo: repo, bootstrap: bootstrap}
}

// List devuelve todos los usuarios (crea la cuenta de gerencia si no hay ninguno).
func (uc *UserUseCase) List(ctx context.Context) ([]dto.UserResponse, error) {
	if err := uc.bootstrap.EnsureDefaultManager(ctx); err != nil {
		return nil, err
	}
	users, err := uc.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]dto.UserResponse, 0, len(users))
	for _, u := range users {
		out = append(out, auth.ToUserResponse(u))
	}
	return out, nil
}

// Create crea un usuario. Sin permisos explícitos, GERENCIA recibe todos y OPERADOR
// los módulos operativos (stock, movimientos, direcciones, actividades).
func (uc *UserUseCase) Create(ctx context.Context, in dto.CreateUserRequest) (*dto.UserResponse, error) {
	username := strings.TrimSpace(in.Username)
	if username == "" || in.Password == "" || !entity.ValidRole(in.Role) {
		return nil, domain.ErrInvalidInput
	}
	if err := uc.bootstrap.EnsureDefaultManager(ctx); err != nil {
		return nil, err
	}
	existing, err := uc.repo.GetByUsername(ctx, username)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrDuplicate
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	perms := defaultPermissions(in.Role)
	if in.Permissions != nil {
		perms = *in.Permissions
	}
	u := &entity.User{
		ID:           uuid.New().String(),
		Username:     username,
		PasswordHash: string(hash),
		Role:         in.Role,
		Permissions:  perms,
	}
	if err := uc.repo.Create(ctx, u); err != nil {
		return nil, err
	}
	resp := auth.ToUserResponse(u)
	return &resp, nil
}

// UpdatePermissions reemplaza los permisos del usuario.
func (uc *UserUseCase) UpdatePermissions(ctx context.Context, userID string, perms entity.Permissions) (*dto.UserResponse, error) {
	return uc.modify(ctx, userID, func(u *entity.User) error {
		u.Permissions = perms
		return nil
	})
}

// UpdateRole cambia el rol del usuario.
func (uc *UserUseCase) UpdateRole(ctx context.Context, userID, role string) (*dto.UserResponse, error) {
	if !entity.ValidRole(role) {
		return nil, domain.ErrInvalidInput
	}
	return uc.modify(ctx, userID, func(u *entity.User) error {
		u.Role = role
		return nil
	})
}

// HasPermission indica si el usuario tiene el módulo habilitado. Lo usa el middleware RequirePermission.
func (uc *UserUseCase) HasPermission(ctx context.Context, userID, module string) (bool, error) {
	u, err := uc.repo.GetByID(ctx, userID)
	if err != nil {
		return false, err
	}
	if u == nil {
		return false, nil
	}
	return u.Permissions.Allows(module), nil
}

func (uc *UserUseCase) modify(ctx context.Context, userID string, fn func(*entity.User) error) (*dto.UserResponse, error) {
	u, err := uc.repo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if u == nil {
		return nil, domain.ErrUserNotFound
	}
	if err := fn(u); err != nil {
		return nil, err
	}
	if err := uc.repo.Update(ctx, u); err != nil {
		return nil, err
	}
	resp := auth.ToUserResponse(u)
	return &resp, nil
}

func defaultPermissions(role string) entity.Permissions {
	if role == entity.RoleGerencia {
		return entity.AllPermissions()
	}
	return entity.Permissions{
		Estoque:       true,
		Movimentacoes: true,
		Enderecamento: true,
		Atividades:    true,
	}
}
