package postgres_test

import (
	"context"
	"os"
	"testing"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/logos-estoque/internal/infrastructure/kv"
	"github.com/jhoicas/logos-estoque/internal/infrastructure/kv/kvtest"
	"github.com/jhoicas/logos-estoque/internal/infrastructure/postgres"
	"github.com/jhoicas/logos-estoque/pkg/config"
)

// Requiere una base real: DATABASE_URL=postgres://... go test ./internal/infrastructure/postgres/...
func openPool(t *testing.T) *pgxpool.Pool {
	t.Helper()
	dsn := os.Getenv("DATABASE_URL")
	if dsn == "" {
		t.Skip("DATABASE_URL no definido")
	}
	pool, err := postgres.NewPool(context.Background(), config.DBConfig{DatabaseURL: dsn, MaxConns: 4})
	require.NoError(t, err)
	t.Cleanup(pool.Close)
	require.NoError(t, postgres.NewStore(pool).EnsureSchema(context.Background()))
	return pool
}

// newStore aísla cada subtest con un prefijo propio y borra sus filas al final.
func newStore(t *testing.T, pool *pgxpool.Pool) kv.Store {
	t.Helper()
	prefix := "test_" + uuid.NewString() + "_"
	t.Cleanup(func() {
		_, _ = pool.Exec(context.Background(), `DELETE FROM kv_store WHERE key LIKE $1`, prefix+"%")
	})
	return kv.WithPrefix(postgres.NewStore(pool), prefix)
}

func TestStore_Contrato(t *testing.T) {
	pool := openPool(t)
	kvtest.Run(t, func(t *testing.T) kv.Store { return newStore(t, pool) })
}

func TestStore_GuardaJSONB(t *testing.T) {
	pool := openPool(t)
	ctx := context.Background()
	key := "test_" + uuid.NewString()
	t.Cleanup(func() { _, _ = pool.Exec(context.Background(), `DELETE FROM kv_store WHERE key = $1`, key) })

	s := postgres.NewStore(pool)
	require.NoError(t, s.Set(ctx, key, map[string]float64{"interestRate": 2.5}))

	var rate float64
	err := pool.QueryRow(ctx, `SELECT (value->>'interestRate')::float8 FROM kv_store WHERE key = $1`, key).Scan(&rate)
	require.NoError(t, err)
	assert.Equal(t, 2.5, rate)
}
