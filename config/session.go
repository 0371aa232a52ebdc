package config

import "time"

// Session store backends.
const (
	SessionStoreRedis  = "redis"
	SessionStoreMemory = "memory"
)

// SessionConfig contains session persistence configuration.
type SessionConfig struct {
	// Store selects the session store backend: "redis" or "memory".
	// Memory is intended for development and tests only.
	Store string `env:"SESSION_STORE" envDefault:"redis"`

	// TTL is how long an idle session survives.
	TTL time.Duration `env:"SESSION_TTL" envDefault:"4h"`
}

// Sanitize applies guardrails to session configuration values.
func (s *SessionConfig) Sanitize() {
	if s.Store != SessionStoreRedis && s.Store != SessionStoreMemory {
		s.Store = SessionStoreRedis
	}
	if s.TTL <= 0 {
		s.TTL = 4 * time.Hour
	}
}

// RedisConfig contains Redis configuration.
type RedisConfig struct {
	URI                string   `env:"URI"                  envDefault:"localhost:6379"`
	Password           string   `env:"PASSWORD"             envDefault:""`
	SentinelNodes      []string `env:"SENTINEL_NODES"       envDefault:"localhost:26379"`
	SentinelMasterName string   `env:"SENTINEL_MASTER_NAME" envDefault:"mymaster"`
	SentinelPassword   string   `env:"SENTINEL_PASSWORD"    envDefault:""`
	UseSentinel        bool     `env:"USE_SENTINEL"         envDefault:"false"`
}
