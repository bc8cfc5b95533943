package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfigFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoadConfigFromFile(t *testing.T) {
	path := writeConfigFile(t, `
server:
  port: "9090"
  mode: production
snapshot:
  path: /tmp/custom.db
jwt:
  secret: file-secret
  access_token_expiration: 2h
  issuer: custom.app
logging:
  level: debug
  format: text
`)

	cfg, err := LoadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, "9090", cfg.Server.Port)
	assert.Equal(t, "production", cfg.Server.Mode)
	assert.Equal(t, "/tmp/custom.db", cfg.Snapshot.Path)
	assert.Equal(t, "file-secret", cfg.JWT.Secret)
	assert.Equal(t, "2h", cfg.JWT.AccessTokenExpiration)
	assert.Equal(t, "debug", cfg.Logging.Level)
}

func TestLoadConfigDefaults(t *testing.T) {
	t.Setenv("JWT_SECRET", "env-secret")

	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "missing.yaml"))
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Server.Port)
	assert.Equal(t, "spas.db", cfg.Snapshot.Path)
	assert.Equal(t, "24h", cfg.JWT.AccessTokenExpiration)
	assert.Equal(t, "env-secret", cfg.JWT.Secret)
	assert.Equal(t, "json", cfg.Logging.Format)
}

func TestEnvOverridesFile(t *testing.T) {
	path := writeConfigFile(t, `
server:
  port: "9090"
jwt:
  secret: file-secret
`)
	t.Setenv("SERVER_PORT", "7070")
	t.Setenv("SNAPSHOT_PATH", "env.db")

	cfg, err := LoadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, "7070", cfg.Server.Port)
	assert.Equal(t, "env.db", cfg.Snapshot.Path)
	assert.Equal(t, "file-secret", cfg.JWT.Secret)
}

func TestLoadConfigRequiresJWTSecret(t *testing.T) {
	t.Setenv("JWT_SECRET", "")

	_, err := LoadConfig(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}

func TestLoadConfigRejectsBadExpiration(t *testing.T) {
	path := writeConfigFile(t, `
jwt:
  secret: s
  access_token_expiration: not-a-duration
`)
	_, err := LoadConfig(path)
	assert.Error(t, err)
}
