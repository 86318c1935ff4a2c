// Package redis implementa el driver Redis del almacén clave-valor.
// Las transacciones usan WATCH sobre cada clave leída y MULTI/EXEC para confirmar.
package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	goredis "github.com/redis/go-redis/v9"

	"github.com/jhoicas/logos-estoque/internal/infrastructure/kv"
	"github.com/jhoicas/logos-estoque/pkg/config"
)

// maxTxRetries intentos cuando otra conexión modifica una clave observada.
const maxTxRetries = 5

var _ kv.Store = (*Store)(nil)

// Store kv.Store sobre Redis. Los valores son el JSON de cada colección, sin expiración.
type Store struct {
	client *goredis.Client
}

// NewClient abre el cliente y verifica la conexión con PING.
func NewClient(ctx context.Context, cfg config.RedisConfig) (*goredis.Client, error) {
	client := goredis.NewClient(&goredis.Options{
		Addr:     cfg.Address,
		Password: cfg.Password,
		DB:       cfg.DB,
		PoolSize: 100,
	})
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("ping redis %s: %w", cfg.Address, err)
	}
	return client, nil
}

// NewStore construye el driver con un cliente ya conectado.
func NewStore(client *goredis.Client) *Store {
	return &Store{client: client}
}

func (s *Store) Get(ctx context.Context, key string, dst any) (bool, error) {
	return decode(s.client.Get(ctx, key), key, dst)
}

func (s *Store) Set(ctx context.Context, key string, value any) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("redis: codificar %s: %w", key, err)
	}
	if err := s.client.Set(ctx, key, raw, 0).Err(); err != nil {
		return fmt.Errorf("redis: set %s: %w", key, err)
	}
	return nil
}

// Update ejecuta fn con lecturas observadas (WATCH) y escrituras en buffer que se
// confirman en un único MULTI/EXEC. Si una clave observada cambió, reintenta fn.
func (s *Store) Update(ctx context.Context, fn func(tx kv.Querier) error) error {
	for attempt := 0; attempt < maxTxRetries; attempt++ {
		err := s.client.Watch(ctx, func(rtx *goredis.Tx) error {
			tx := &redisTx{rtx: rtx, staged: make(map[string][]byte)}
			if err := fn(tx); err != nil {
				return err
			}
			if len(tx.staged) == 0 {
				return nil
			}
			_, err := rtx.TxPipelined(ctx, func(pipe goredis.Pipeliner) error {
				for k, v := range tx.staged {
					pipe.Set(ctx, k, v, 0)
				}
				return nil
			})
			return err
		})
		if errors.Is(err, goredis.TxFailedErr) {
			continue
		}
		return err
	}
	return fmt.Errorf("redis: transacción abortada tras %d intentos: %w", maxTxRetries, goredis.TxFailedErr)
}

func (s *Store) Close() error {
	return s.client.Close()
}

type redisTx struct {
	rtx    *goredis.Tx
	staged map[string][]byte
}

func (t *redisTx) Get(ctx context.Context, key string, dst any) (bool, error) {
	if raw, ok := t.staged[key]; ok {
		if err := json.Unmarshal(raw, dst); err != nil {
			return false, fmt.Errorf("redis: decodificar %s: %w", key, err)
		}
		return true, nil
	}
	if err := t.rtx.Watch(ctx, key).Err(); err != nil {
		return false, fmt.Errorf("redis: watch %s: %w", key, err)
	}
	return decode(t.rtx.Get(ctx, key), key, dst)
}

func (t *redisTx) Set(_ context.Context, key string, value any) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("redis: codificar %s: %w", key, err)
	}
	t.staged[key] = raw
	return nil
}

func decode(cmd *goredis.StringCmd, key string, dst any) (bool, error) {
	raw, err := cmd.Bytes()
	if errors.Is(err, goredis.Nil) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("redis: get %s: %w", key, err)
	}
	if err := json.Unmarshal(raw, dst); err != nil {
		return false, fmt.Errorf("redis: decodificar %s: %w", key, err)
	}
	return true, nil
}
