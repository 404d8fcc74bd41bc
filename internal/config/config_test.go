// AngelaMos | 2026
// config_test.go

package config

import (
	"testing"
	"time"

	"github.com/knadh/koanf/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func defaultConfig(t *testing.T) *Config {
	t.Helper()

	k := koanf.New(".")
	require.NoError(t, loadDefaults(k))

	c := &Config{}
	require.NoError(t, k.Unmarshal("", c))
	return c
}

func TestLoadDefaults(t *testing.T) {
	t.Parallel()

	c := defaultConfig(t)

	assert.Equal(t, "development", c.App.Environment)
	assert.Equal(t, 8080, c.Server.Port)
	assert.Equal(t, 720*time.Hour, c.Auth.AccessTokenExpire)
	assert.Equal(t, 30*time.Minute, c.Auth.ResetTokenExpire)
	assert.Equal(t, "connectvault", c.Auth.Issuer)
	assert.Equal(t, "connectvault-api", c.Auth.Audience)
	assert.Equal(t, 100, c.RateLimit.Requests)
	assert.Equal(t, "json", c.Log.Format)
	assert.False(t, c.Otel.Enabled)
}

func TestEnvKeyReplacer(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "auth.secret_key", envKeyReplacer("SECRET_KEY"))
	assert.Equal(t, "database.url", envKeyReplacer("DATABASE_URL"))
	assert.Equal(t, "cors.allowed_origins", envKeyReplacer("CORS_ORIGINS"))

	// unmapped env vars must not leak into the config tree
	assert.Equal(t, "", envKeyReplacer("PATH"))
	assert.Equal(t, "", envKeyReplacer("HOME"))
}

func TestValidate(t *testing.T) {
	t.Parallel()

	base := func() *Config {
		c := defaultConfig(t)
		c.Database.URL = "postgres://localhost:5432/connectvault"
		c.Redis.URL = "redis://localhost:6379/0"
		return c
	}

	t.Run("valid development config", func(t *testing.T) {
		require.NoError(t, validate(base()))
	})

	t.Run("missing database url", func(t *testing.T) {
		c := base()
		c.Database.URL = ""
		require.Error(t, validate(c))
	})

	t.Run("missing redis url", func(t *testing.T) {
		c := base()
		c.Redis.URL = ""
		require.Error(t, validate(c))
	})

	t.Run("non-positive token ttl", func(t *testing.T) {
		c := base()
		c.Auth.AccessTokenExpire = 0
		require.Error(t, validate(c))
	})

	t.Run("production requires secret key", func(t *testing.T) {
		c := base()
		c.App.Environment = "production"
		c.Auth.SecretKey = ""
		require.Error(t, validate(c))

		c.Auth.SecretKey = "configured-secret"
		require.NoError(t, validate(c))
	})
}
