package usecase

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/logos-estoque/internal/application/dto"
	"github.com/jhoicas/logos-estoque/internal/domain"
	"github.com/jhoicas/logos-estoque/internal/domain/entity"
	"github.com/jhoicas/logos-estoque/internal/domain/repository"
)

// SettingsUseCase tasa de interés y tope de descuento.
type SettingsUseCase struct {
	repo repository.SettingsRepository
}

// NewSettingsUseCase construye el caso de uso.
func NewSettingsUseCase(repo repository.SettingsRepository) *SettingsUseCase {
	return &SettingsUseCase{repo: repo}
}

// Get devuelve los valores efectivos (2,5 % y 10 % si no están definidos).
func (uc *SettingsUseCase) Get(ctx context.Context) (*dto.SettingsDTO, error) {
	s, err := uc.repo.Get(ctx)
	if err != nil {
		return nil, err
	}
	return &dto.SettingsDTO{InterestRate: s.Interest(), MaxDiscountRate: s.MaxDiscount()}, nil
}

// SetInterestRate define la tasa de interés por cuota (%).
func (uc *SettingsUseCase) SetInterestRate(ctx context.Context, rate decimal.Decimal) (*dto.SettingsDTO, error) {
	return uc.update(ctx, rate, func(s *entity.Settings) { s.InterestRate = &rate })
}

// SetMaxDiscountRate define el tope de descuento (% del subtotal).
func (uc *SettingsUseCase) SetMaxDiscountRate(ctx context.Context, rate decimal.Decimal) (*dto.SettingsDTO, error) {
	return uc.update(ctx, rate, func(s *entity.Settings) { s.MaxDiscountRate = &rate })
}

func (uc *SettingsUseCase) update(ctx context.Context, rate decimal.Decimal, apply func(*entity.Settings)) (*dto.SettingsDTO, error) {
	if rate.IsNegative() {
		return nil, domain.ErrInvalidInput
	}
	s, err := uc.repo.Get(ctx)
	if err != nil {
		return nil, err
	}
	apply(&s)
	if err := uc.repo.Save(ctx, s); err != nil {
		return nil, err
	}
	return &dto.SettingsDTO{InterestRate: s.Interest(), MaxDiscountRate: s.MaxDiscount()}, nil
}
