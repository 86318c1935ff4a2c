package kv

import (
	"context"
	"fmt"

	"github.com/jhoicas/logos-estoque/internal/domain/entity"
	"github.com/jhoicas/logos-estoque/internal/domain/repository"
)

var _ repository.SettingsRepository = (*SettingsRepo)(nil)

// SettingsRepo documento settings.
type SettingsRepo struct {
	q Querier
}

// NewSettingsRepository construye el repo.
func NewSettingsRepository(q Querier) *SettingsRepo {
	return &SettingsRepo{q: q}
}

func (r *SettingsRepo) Get(ctx context.Context) (entity.Settings, error) {
	var s entity.Settings
	if _, err := r.q.Get(ctx, KeySettings, &s); err != nil {
		return entity.Settings{}, fmt.Errorf("kv: leer %s: %w", KeySettings, err)
	}
	return s, nil
}

func (r *SettingsRepo) Save(ctx context.Context, s entity.Settings) error {
	if err := r.q.Set(ctx, KeySettings, s); err != nil {
		return fmt.Errorf("kv: escribir %s: %w", KeySettings, err)
	}
	return nil
}
