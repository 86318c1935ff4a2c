package auth

import (
	"context"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/jhoicas/logos-estoque/internal/application/dto"
	"github.com/jhoicas/logos-estoque/internal/domain"
	"github.com/jhoicas/logos-estoque/internal/domain/entity"
	"github.com/jhoicas/logos-estoque/internal/domain/repository"
	"github.com/jhoicas/logos-estoque/pkg/jwt"
	"github.com/jhoicas/logos-estoque/pkg/logger"
)

// MasterUserID id fijo de la cuenta de gerencia creada en el arranque.
const MasterUserID = "master-user-id"

// Credenciales fijas de la cuenta inicial cuando la configuración no define otras.
const (
	DefaultManagerUsername = "gerencia"
	DefaultManagerPassword = "logos"
)

// JWTConfig configuración para generación de tokens.
type JWTConfig struct {
	Secret     string
	ExpMinutes int
	Issuer     string
}

// BootstrapConfig credenciales de la cuenta de gerencia inicial.
type BootstrapConfig struct {
	Username string
	Password string // vacío = DefaultManagerPassword
}

// AuthUseCase login y garantía de que siempre exista una cuenta de gerencia.
type AuthUseCase struct {
	userRepo  repository.UserRepository
	jwtCfg    JWTConfig
	bootstrap BootstrapConfig
	log       *logger.Logger
}

// NewAuthUseCase construye el caso de uso de auth.
func NewAuthUseCase(userRepo repository.UserRepository, jwtCfg JWTConfig, bootstrap BootstrapConfig, log *logger.Logger) *AuthUseCase {
	return &AuthUseCase{userRepo: userRepo, jwtCfg: jwtCfg, bootstrap: bootstrap, log: logger.OrNop(log).Component("auth")}
}

// EnsureDefaultManager crea la cuenta GERENCIA con todos los permisos si la colección de usuarios está vacía.
// Toda lectura de usuarios pasa antes por aquí, así el sistema nunca queda sin acceso.
func (uc *AuthUseCase) EnsureDefaultManager(ctx context.Context) error {
	users, err := uc.userRepo.List(ctx)
	if err != nil {
		return err
	}
	if len(users) > 0 {
		return nil
	}
	username, password := uc.bootstrap.Username, uc.bootstrap.Password
	if username == "" {
		username = DefaultManagerUsername
	}
	usingDefault := password == ""
	if usingDefault {
		password = DefaultManagerPassword
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	master := &entity.User{
		ID:           MasterUserID,
		Username:     username,
		PasswordHash: string(hash),
		Role:         entity.RoleGerencia,
		Permissions:  entity.AllPermissions(),
	}
	if err := uc.userRepo.Create(ctx, master); err != nil {
		return err
	}
	ev := uc.log.Info()
	if usingDefault {
		// la contraseña por defecto es pública; cambiarla tras el primer acceso
		ev = uc.log.Warn().Bool("default_password", true)
	}
	ev.Str("username", master.Username).Msg("cuenta de gerencia inicial creada")
	return nil
}

// Login verifica username/password, genera JWT y retorna token + usuario.
func (uc *AuthUseCase) Login(ctx context.Context, in dto.LoginRequest) (*dto.LoginResponse, error) {
	if in.Username == "" || in.Password == "" {
		return nil, domain.ErrInvalidInput
	}
	if err := uc.EnsureDefaultManager(ctx); err != nil {
		return nil, err
	}
	user, err := uc.userRepo.GetByUsername(ctx, in.Username)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrUserNotFound
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(in.Password)); err != nil {
		return nil, domain.ErrUnauthorized
	}
	token, err := jwt.Sign(uc.jwtCfg.Secret,
		jwt.Subject{UserID: user.ID, Username: user.Username, Role: user.Role},
		uc.jwtCfg.Issuer, time.Duration(uc.jwtCfg.ExpMinutes)*time.Minute)
	if err != nil {
		return nil, err
	}
	return &dto.LoginResponse{Token: token, User: ToUserResponse(user)}, nil
}

// ToUserResponse oculta el hash de contraseña.
func ToUserResponse(u *entity.User) dto.UserResponse {
	return dto.UserResponse{
		ID:          u.ID,
		Username:    u.Username,
		Role:        u.Role,
		Permissions: u.Permissions,
	}
}
