package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoadConfigDefaults(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("JWT_SECRET", "test-secret")

	cfg, err := LoadConfig(filepath.Join(dir, "missing.yaml"), filepath.Join(dir, "missing.env"))
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Server.Port)
	assert.True(t, cfg.UsesMemoryStorage())
	assert.True(t, cfg.Storage.SeedSampleData)
	assert.False(t, cfg.Storage.EnforceUniqueness)
	assert.Equal(t, "5s", cfg.Database.ConnectTimeout)
	assert.Equal(t, "24h", cfg.JWT.AccessTokenExpiration)
}

func TestLoadConfigYAMLThenEnv(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "config.yaml", `
server:
  port: "9090"
database:
  url: postgres://from-yaml/db
  max_open_conns: 4
storage:
  seed_sample_data: false
jwt:
  secret: yaml-secret
`)
	t.Setenv("DATABASE_URL", "postgres://from-env/db")
	t.Setenv("MEMORY_ENFORCE_UNIQUENESS", "true")

	cfg, err := LoadConfig(path, filepath.Join(dir, "missing.env"))
	require.NoError(t, err)

	assert.Equal(t, "9090", cfg.Server.Port)
	assert.Equal(t, "postgres://from-env/db", cfg.Database.URL)
	assert.Equal(t, 4, cfg.Database.MaxOpenConns)
	assert.False(t, cfg.Storage.SeedSampleData)
	assert.True(t, cfg.Storage.EnforceUniqueness)
	assert.Equal(t, "yaml-secret", cfg.JWT.Secret)
	assert.False(t, cfg.UsesMemoryStorage())
}

func TestLoadConfigDotEnv(t *testing.T) {
	dir := t.TempDir()
	envFile := writeFile(t, dir, ".env", "JWT_SECRET=dotenv-secret\nSEED_SAMPLE_DATA=false\n")
	t.Setenv("JWT_SECRET", "")
	os.Unsetenv("JWT_SECRET")
	t.Cleanup(func() { os.Unsetenv("SEED_SAMPLE_DATA") })

	cfg, err := LoadConfig(filepath.Join(dir, "missing.yaml"), envFile)
	require.NoError(t, err)

	assert.Equal(t, "dotenv-secret", cfg.JWT.Secret)
	assert.False(t, cfg.Storage.SeedSampleData)
}

func TestLoadConfigValidation(t *testing.T) {
	dir := t.TempDir()

	t.Run("missing secret", func(t *testing.T) {
		t.Setenv("JWT_SECRET", "")
		_, err := LoadConfig(filepath.Join(dir, "none.yaml"), filepath.Join(dir, "none.env"))
		assert.ErrorContains(t, err, "JWT secret is required")
	})

	t.Run("bad duration", func(t *testing.T) {
		t.Setenv("JWT_SECRET", "s")
		t.Setenv("DB_CONNECT_TIMEOUT", "soon")
		_, err := LoadConfig(filepath.Join(dir, "none.yaml"), filepath.Join(dir, "none.env"))
		assert.ErrorContains(t, err, "database connect timeout")
	})

	t.Run("bad bool", func(t *testing.T) {
		t.Setenv("JWT_SECRET", "s")
		t.Setenv("SEED_SAMPLE_DATA", "maybe")
		_, err := LoadConfig(filepath.Join(dir, "none.yaml"), filepath.Join(dir, "none.env"))
		assert.ErrorContains(t, err, "SEED_SAMPLE_DATA")
	})

	t.Run("idle above open", func(t *testing.T) {
		t.Setenv("JWT_SECRET", "s")
		t.Setenv("DB_MAX_IDLE_CONNS", "50")
		_, err := LoadConfig(filepath.Join(dir, "none.yaml"), filepath.Join(dir, "none.env"))
		assert.ErrorContains(t, err, "max idle")
	})
}
