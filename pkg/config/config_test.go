package config_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/logos-estoque/pkg/config"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("APP_ENV", "development")
	t.Setenv("STORAGE_DRIVER", "")

	cfg, err := config.Load()
	require.NoError(t, err)
	assert.Equal(t, config.StorageMemory, cfg.Storage.Driver)
	assert.Equal(t, "logos_", cfg.Storage.KeyPrefix)
	assert.Equal(t, "BR", cfg.App.PhoneRegion)
	assert.Equal(t, 8080, cfg.HTTP.Port)
	assert.Equal(t, "0.0.0.0:8080", cfg.HTTP.Addr())
	assert.Equal(t, "gerencia", cfg.Admin.Username)
	assert.Equal(t, "logos", cfg.Admin.Password)
}

func TestLoad_DriverDoAmbiente(t *testing.T) {
	t.Setenv("APP_ENV", "development")
	t.Setenv("STORAGE_DRIVER", "Redis")
	t.Setenv("REDIS_ADDRESS", "cache:6380")
	t.Setenv("HTTP_PORT", "9090")
	t.Setenv("DB_MAX_CONNS", "4")

	cfg, err := config.Load()
	require.NoError(t, err)
	assert.Equal(t, config.StorageRedis, cfg.Storage.Driver)
	assert.Equal(t, "cache:6380", cfg.Redis.Address)
	assert.Equal(t, 9090, cfg.HTTP.Port)
	assert.Equal(t, int32(4), cfg.DB.MaxConns)
}

func TestLoad_DriverDesconhecido(t *testing.T) {
	t.Setenv("APP_ENV", "development")
	t.Setenv("STORAGE_DRIVER", "sqlite")

	_, err := config.Load()
	assert.Error(t, err)
}

func TestLoad_ProducaoExigeSegredoJWT(t *testing.T) {
	t.Setenv("APP_ENV", "production")
	t.Setenv("STORAGE_DRIVER", "memory")
	t.Setenv("JWT_SECRET", "")

	_, err := config.Load()
	assert.Error(t, err)
}

func TestDBConfig_ConnectionString(t *testing.T) {
	c := config.DBConfig{Host: "db", Port: 5432, User: "logos", Password: "p@ss word", DBName: "estoque", SSLMode: "disable"}
	assert.Equal(t, "postgres://logos:p%40ss%20word@db:5432/estoque?sslmode=disable", c.ConnectionString())

	c.DatabaseURL = "postgres://outro"
	assert.Equal(t, "postgres://outro", c.ConnectionString())
}
