// Package postgres implementa el driver PostgreSQL del almacén clave-valor:
// una tabla kv_store (key TEXT, value JSONB) y transacciones pgx.
package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/jhoicas/logos-estoque/internal/infrastructure/kv"
)

const schemaSQL = `
CREATE TABLE IF NOT EXISTS kv_store (
	key        TEXT PRIMARY KEY,
	value      JSONB NOT NULL,
	updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
)`

const upsertSQL = `
INSERT INTO kv_store (key, value, updated_at) VALUES ($1, $2, now())
ON CONFLICT (key) DO UPDATE SET value = EXCLUDED.value, updated_at = now()`

// Querier es lo común entre *pgxpool.Pool y pgx.Tx.
type Querier interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

var _ kv.Store = (*Store)(nil)

// Store kv.Store sobre PostgreSQL.
type Store struct {
	pool *pgxpool.Pool
}

// NewStore construye el driver con el pool. Llamar EnsureSchema antes del primer uso.
func NewStore(pool *pgxpool.Pool) *Store {
	return &Store{pool: pool}
}

// EnsureSchema crea la tabla kv_store si no existe.
func (s *Store) EnsureSchema(ctx context.Context) error {
	if _, err := s.pool.Exec(ctx, schemaSQL); err != nil {
		return fmt.Errorf("postgres: crear kv_store: %w", err)
	}
	return nil
}

func (s *Store) Get(ctx context.Context, key string, dst any) (bool, error) {
	return get(ctx, s.pool, key, dst, false)
}

func (s *Store) Set(ctx context.Context, key string, value any) error {
	return set(ctx, s.pool, key, value)
}

// Update inicia una transacción, ejecuta fn y hace Commit o Rollback.
// Las lecturas dentro de la tx bloquean la fila (SELECT ... FOR UPDATE).
func (s *Store) Update(ctx context.Context, fn func(tx kv.Querier) error) error {
	tx, err := s.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	if err := fn(txQuerier{tx: tx}); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}

func (s *Store) Close() error {
	s.pool.Close()
	return nil
}

type txQuerier struct {
	tx pgx.Tx
}

func (q txQuerier) Get(ctx context.Context, key string, dst any) (bool, error) {
	return get(ctx, q.tx, key, dst, true)
}

func (q txQuerier) Set(ctx context.Context, key string, value any) error {
	return set(ctx, q.tx, key, value)
}

func get(ctx context.Context, q Querier, key string, dst any, lock bool) (bool, error) {
	query := `SELECT value FROM kv_store WHERE key = $1`
	if lock {
		query += ` FOR UPDATE`
	}
	var raw []byte
	err := q.QueryRow(ctx, query, key).Scan(&raw)
	if errors.Is(err, pgx.ErrNoRows) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("postgres: get %s: %w", key, err)
	}
	if err := json.Unmarshal(raw, dst); err != nil {
		return false, fmt.Errorf("postgres: decodificar %s: %w", key, err)
	}
	return true, nil
}

func set(ctx context.Context, q Querier, key string, value any) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("postgres: codificar %s: %w", key, err)
	}
	if _, err := q.Exec(ctx, upsertSQL, key, raw); err != nil {
		return fmt.Errorf("postgres: set %s: %w", key, err)
	}
	return nil
}
