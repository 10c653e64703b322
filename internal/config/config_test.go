package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_Defaults(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")

	cfg, err := LoadConfig(t.TempDir())
	require.NoError(t, err)

	assert.Equal(t, ":8080", cfg.Server.Address)
	assert.Equal(t, DriverMongo, cfg.Remote.Driver)
	assert.Equal(t, 2*time.Second, cfg.Remote.ReadTimeout)
	assert.Equal(t, 5*time.Second, cfg.Remote.WriteTimeout)
	assert.Equal(t, LocalFile, cfg.Local.Driver)
	assert.Equal(t, time.Hour, cfg.JWT.Expiration)
	assert.Equal(t, 8, cfg.Catalog.PageSize)
	assert.Equal(t, 30, cfg.AI.RequestsPerMinute)
	assert.Empty(t, cfg.AI.APIKey)
	assert.True(t, cfg.S3.UseSSL)
}

func TestLoadConfig_FileAndEnv(t *testing.T) {
	dir := t.TempDir()
	yaml := `
server:
  address: ":9090"
remote:
  driver: postgres
  read_timeout: 1500ms
jwt:
  secret: from-file
  expiration: 30m
local:
  driver: redis
`
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), []byte(yaml), 0o600))
	t.Setenv("SERVER_ADDRESS", ":7070")
	t.Setenv("AI_API_KEY", "key-from-env")

	cfg, err := LoadConfig(dir)
	require.NoError(t, err)

	assert.Equal(t, ":7070", cfg.Server.Address)
	assert.Equal(t, DriverPostgres, cfg.Remote.Driver)
	assert.Equal(t, 1500*time.Millisecond, cfg.Remote.ReadTimeout)
	assert.Equal(t, 30*time.Minute, cfg.JWT.Expiration)
	assert.Equal(t, "from-file", cfg.JWT.Secret)
	assert.Equal(t, LocalRedis, cfg.Local.Driver)
	assert.Equal(t, "key-from-env", cfg.AI.APIKey)
}

func TestLoadConfig_Invalid(t *testing.T) {
	t.Setenv("JWT_SECRET", "s")
	t.Setenv("REMOTE_DRIVER", "sqlite")

	_, err := LoadConfig(t.TempDir())
	assert.ErrorContains(t, err, "remote.driver")
}

func TestValidate_RequiresSecret(t *testing.T) {
	cfg := Config{
		Remote: RemoteConfig{Driver: DriverMongo},
		Local:  LocalConfig{Driver: LocalMemory},
	}
	assert.Error(t, cfg.Validate())
	cfg.JWT.Secret = "x"
	assert.NoError(t, cfg.Validate())
}
