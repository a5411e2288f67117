package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("SERVER_PORT", "")
	t.Setenv("APP_ENV", "")
	t.Setenv("APP_DEBUG", "")
	t.Setenv("DATABASE_DSN", "")
	t.Setenv("RELAY_TIMEOUT", "")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 8080, cfg.Server.Port)
	assert.Equal(t, "development", cfg.App.Env)
	assert.False(t, cfg.App.Debug)
	assert.Equal(t, 30*time.Second, cfg.Relay.Timeout)
	assert.True(t, cfg.IsDevelopment())
	assert.False(t, cfg.IsProduction())
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("SERVER_PORT", "9090")
	t.Setenv("APP_ENV", "production")
	t.Setenv("APP_DEBUG", "true")
	t.Setenv("DATABASE_DSN", "postgres://app:segredo@db:5432/ultraai?sslmode=disable")
	t.Setenv("RELAY_TIMEOUT", "45s")
	t.Setenv("S3_BUCKET", "avatares-prod")
	t.Setenv("S3_ENDPOINT", "http://minio:9000")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 9090, cfg.Server.Port)
	assert.Equal(t, "production", cfg.App.Env)
	assert.True(t, cfg.App.Debug)
	assert.Equal(t, "postgres://app:segredo@db:5432/ultraai?sslmode=disable", cfg.Database.DSN)
	assert.Equal(t, 45*time.Second, cfg.Relay.Timeout)
	assert.Equal(t, "avatares-prod", cfg.Storage.Bucket)
	assert.Equal(t, "http://minio:9000", cfg.Storage.Endpoint)
	assert.True(t, cfg.IsProduction())
}

func TestLoadInvalidPort(t *testing.T) {
	t.Setenv("SERVER_PORT", "não-é-número")

	_, err := Load()
	assert.Error(t, err)
}

func TestLoadInvalidRelayTimeout(t *testing.T) {
	t.Setenv("SERVER_PORT", "")
	t.Setenv("RELAY_TIMEOUT", "trinta segundos")

	_, err := Load()
	assert.Error(t, err)
}
