// Package storage abre el almacén clave-valor según STORAGE_DRIVER.
package storage

import (
	"context"
	"fmt"

	"github.com/jhoicas/logos-estoque/internal/infrastructure/dynamodb"
	"github.com/jhoicas/logos-estoque/internal/infrastructure/kv"
	"github.com/jhoicas/logos-estoque/internal/infrastructure/postgres"
	"github.com/jhoicas/logos-estoque/internal/infrastructure/redis"
	"github.com/jhoicas/logos-estoque/pkg/config"
	"github.com/jhoicas/logos-estoque/pkg/logger"
)

// Open conecta el driver configurado y aplica el prefijo de claves.
func Open(ctx context.Context, cfg *config.Config, log *logger.Logger) (kv.Store, error) {
	log = logger.OrNop(log).Component("storage")

	var store kv.Store
	switch cfg.Storage.Driver {
	case config.StorageMemory:
		log.Warn().Msg("almacén en memoria: los datos se pierden al reiniciar")
		store = kv.NewMemoryStore()

	case config.StoragePostgres:
		pool, err := postgres.NewPool(ctx, cfg.DB)
		if err != nil {
			return nil, err
		}
		pg := postgres.NewStore(pool)
		if err := pg.EnsureSchema(ctx); err != nil {
			pool.Close()
			return nil, err
		}
		store = pg

	case config.StorageRedis:
		client, err := redis.NewClient(ctx, cfg.Redis)
		if err != nil {
			return nil, err
		}
		store = redis.NewStore(client)

	case config.StorageDynamoDB:
		client, err := dynamodb.NewClient(ctx, cfg.DynamoDB)
		if err != nil {
			return nil, fmt.Errorf("dynamodb config: %w", err)
		}
		ddb := dynamodb.NewStore(client, cfg.DynamoDB.Table)
		if err := ddb.EnsureTable(ctx); err != nil {
			return nil, err
		}
		store = ddb

	default:
		return nil, fmt.Errorf("storage: driver desconocido %q", cfg.Storage.Driver)
	}

	log.Info().Str("driver", cfg.Storage.Driver).Str("prefix", cfg.Storage.KeyPrefix).Msg("almacén listo")
	return kv.WithPrefix(store, cfg.Storage.KeyPrefix), nil
}
