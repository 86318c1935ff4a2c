package billing

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/logos-estoque/internal/application/dto"
	"github.com/jhoicas/logos-estoque/internal/domain"
	"github.com/jhoicas/logos-estoque/internal/domain/entity"
	"github.com/jhoicas/logos-estoque/internal/domain/repository"
	"github.com/jhoicas/logos-estoque/pkg/document"
	"github.com/jhoicas/logos-estoque/pkg/phone"
	"github.com/jhoicas/logos-estoque/pkg/textsearch"
)

// CustomerUseCase casos de uso para clientes (PDV/CRM).
type CustomerUseCase struct {
	repo        repository.CustomerRepository
	phoneRegion string
	now         func() time.Time
}

// NewCustomerUseCase construye el caso de uso. phoneRegion es el código ISO usado para normalizar contactos (ej. BR).
func NewCustomerUseCase(repo repository.CustomerRepository, phoneRegion string) *CustomerUseCase {
	return &CustomerUseCase{repo: repo, phoneRegion: phoneRegion, now: time.Now}
}

// Create crea un nuevo cliente. CPF/CNPJ con dígito verificador inválido → ErrInvalidInput.
func (uc *CustomerUseCase) Create(ctx context.Context, in dto.CreateCustomerRequest) (*entity.Customer, error) {
	name := strings.TrimSpace(in.Name)
	if name == "" {
		return nil, domain.ErrInvalidInput
	}
	if err := document.Validate(in.Doc); err != nil {
		return nil, domain.ErrInvalidInput
	}
	c := &entity.Customer{
		UUID:      uuid.New().String(),
		Name:      name,
		Doc:       strings.TrimSpace(in.Doc),
		Email:     strings.TrimSpace(in.Email),
		Contact:   phone.Normalize(in.Contact, uc.phoneRegion),
		CreatedAt: uc.now(),
	}
	if err := uc.repo.Create(ctx, c); err != nil {
		return nil, err
	}
	return c, nil
}

// Update aplica los campos presentes. El ID secuencial y el UUID no cambian.
func (uc *CustomerUseCase) Update(ctx context.Context, customerUUID string, in dto.UpdateCustomerRequest) (*entity.Customer, error) {
	c, err := uc.repo.GetByUUID(ctx, customerUUID)
	if err != nil {
		return nil, err
	}
	if c == nil {
		return nil, domain.ErrNotFound
	}
	if in.Name != nil {
		name := strings.TrimSpace(*in.Name)
		if name == "" {
			return nil, domain.ErrInvalidInput
		}
		c.Name = name
	}
	if in.Doc != nil {
		if err := document.Validate(*in.Doc); err != nil {
			return nil, domain.ErrInvalidInput
		}
		c.Doc = strings.TrimSpace(*in.Doc)
	}
	if in.Email != nil {
		c.Email = strings.TrimSpace(*in.Email)
	}
	if in.Contact != nil {
		c.Contact = phone.Normalize(*in.Contact, uc.phoneRegion)
	}
	if err := uc.repo.Update(ctx, c); err != nil {
		return nil, err
	}
	return c, nil
}

// GetByUUID devuelve el cliente o ErrNotFound.
func (uc *CustomerUseCase) GetByUUID(ctx context.Context, customerUUID string) (*entity.Customer, error) {
	c, err := uc.repo.GetByUUID(ctx, customerUUID)
	if err != nil {
		return nil, err
	}
	if c == nil {
		return nil, domain.ErrNotFound
	}
	return c, nil
}

// List lista clientes; query busca en nombre, documento, e-mail, contacto e ID.
func (uc *CustomerUseCase) List(ctx context.Context, query string) ([]*entity.Customer, error) {
	all, err := uc.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]*entity.Customer, 0, len(all))
	for _, c := range all {
		if textsearch.Contains(query, c.Name, c.Doc, c.Email, c.Contact, c.ID) {
			out = append(out, c)
		}
	}
	return out, nil
}
