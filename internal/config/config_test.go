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
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadConfigFromFile(t *testing.T) {
	path := writeConfigFile(t, `
server:
  port: "9090"
  mode: "production"
  storage_path: "data/files"
  public_url: "https://hub.bimt.edu"
database:
  host: "db.internal"
  dbname: "campushub_prod"
jwt:
  secret: "file-secret"
  access_token_expiration: "30m"
  issuer: "campushub.prod"
logging:
  level: "debug"
  format: "text"
`)

	cfg, err := LoadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, "9090", cfg.Server.Port)
	assert.Equal(t, "production", cfg.Server.Mode)
	assert.Equal(t, "data/files", cfg.Server.StoragePath)
	assert.Equal(t, "db.internal", cfg.Database.Host)
	assert.Equal(t, "campushub_prod", cfg.Database.DBName)
	assert.Equal(t, "file-secret", cfg.JWT.Secret)
	assert.Equal(t, "30m", cfg.JWT.AccessTokenExpiration)
	assert.Equal(t, "debug", cfg.Logging.Level)

	// Values absent from the file keep their defaults
	assert.Equal(t, "5432", cfg.Database.Port)
	assert.Equal(t, "720h", cfg.JWT.RefreshTokenExpiration)
}

func TestLoadConfigMissingFileUsesDefaults(t *testing.T) {
	t.Setenv("JWT_SECRET", "env-secret")

	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "missing.yaml"))
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Server.Port)
	assert.Equal(t, "campushub", cfg.Database.DBName)
	assert.Equal(t, "env-secret", cfg.JWT.Secret)
}

func TestLoadConfigEnvOverridesFile(t *testing.T) {
	path := writeConfigFile(t, `
server:
  port: "9090"
jwt:
  secret: "file-secret"
`)
	t.Setenv("SERVER_PORT", "7070")
	t.Setenv("JWT_SECRET", "env-secret")

	cfg, err := LoadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, "7070", cfg.Server.Port)
	assert.Equal(t, "env-secret", cfg.JWT.Secret)
}

func TestLoadConfigRequiresJWTSecret(t *testing.T) {
	path := writeConfigFile(t, `
server:
  port: "9090"
`)

	_, err := LoadConfig(path)
	assert.Error(t, err)
}

func TestLoadConfigRejectsBadDuration(t *testing.T) {
	path := writeConfigFile(t, `
jwt:
  secret: "s"
  access_token_expiration: "tomorrow"
`)

	_, err := LoadConfig(path)
	assert.Error(t, err)
}

func TestGetPostgresConnectionString(t *testing.T) {
	cfg := &Config{}
	setDefaults(cfg)
	cfg.Database.Password = "pw"

	got := cfg.GetPostgresConnectionString()
	assert.Equal(t, "postgres://postgres:pw@localhost:5432/campushub?sslmode=disable", got)
}
