package config

import (
	"testing"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAppConfig_Defaults(t *testing.T) {
	var cfg AppConfig
	require.NoError(t, env.Parse(&cfg))
	cfg.Sanitize()

	assert.Equal(t, ":8080", cfg.HTTP.Addr)
	assert.Equal(t, SessionStoreRedis, cfg.Session.Store)
	assert.Equal(t, 4*time.Hour, cfg.Session.TTL)
	assert.Equal(t, "localhost:6379", cfg.Redis.URI)
	assert.Equal(t, 10*time.Second, cfg.Remote.Timeout)
	assert.False(t, cfg.IsDev)
}

func TestAppConfig_FromEnv(t *testing.T) {
	t.Setenv("HTTP_ADDR", ":9090")
	t.Setenv("SESSION_STORE", "memory")
	t.Setenv("SESSION_TTL", "30m")
	t.Setenv("USERS_API_BASE_URL", "https://users.example.com/api/users/")
	t.Setenv("CARDS_API_BASE_URL", "https://cards.example.com/api/")
	t.Setenv("REDIS_URI", "redis-prod:6379")
	t.Setenv("DEV", "true")

	var cfg AppConfig
	require.NoError(t, env.Parse(&cfg))
	cfg.Sanitize()

	assert.Equal(t, ":9090", cfg.HTTP.Addr)
	assert.Equal(t, SessionStoreMemory, cfg.Session.Store)
	assert.Equal(t, 30*time.Minute, cfg.Session.TTL)
	// Trailing slashes are trimmed so path joins stay predictable.
	assert.Equal(t, "https://users.example.com/api/users", cfg.Remote.UsersBaseURL)
	assert.Equal(t, "https://cards.example.com/api", cfg.Remote.CardsBaseURL)
	assert.Equal(t, "redis-prod:6379", cfg.Redis.URI)
	assert.True(t, cfg.IsDev)
}

func TestAppConfig_SanitizeGuardrails(t *testing.T) {
	cfg := AppConfig{
		HTTP:    HTTPConfig{Addr: ""},
		Session: SessionConfig{Store: "cookie", TTL: -1},
	}
	cfg.Sanitize()

	assert.Equal(t, ":8080", cfg.HTTP.Addr)
	assert.Equal(t, SessionStoreRedis, cfg.Session.Store)
	assert.Equal(t, 4*time.Hour, cfg.Session.TTL)
	assert.Equal(t, 10*time.Second, cfg.Remote.Timeout)
}

func TestAppConfig_NodeEnvFallback(t *testing.T) {
	t.Setenv("NODE_ENV", "development")

	var cfg AppConfig
	require.NoError(t, env.Parse(&cfg))
	cfg.Sanitize()
	assert.True(t, cfg.IsDev)
}
