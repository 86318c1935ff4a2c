package repository

import (
	"context"

	"github.com/jhoicas/logos-estoque/internal/domain/entity"
)

// SettingsRepository documento único de configuración comercial.
// Get devuelve un Settings vacío (defaults) si nunca fue guardado.
type SettingsRepository interface {
	Get(ctx context.Context) (entity.Settings, error)
	Save(ctx context.Context, s entity.Settings) error
}
