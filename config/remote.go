package config

import (
	"strings"
	"time"
)

// RemoteConfig contains the base URLs and client settings for the remote
// users and cards services.
type RemoteConfig struct {
	// UsersBaseURL is the users service root (register, login, profiles).
	UsersBaseURL string `env:"USERS_API_BASE_URL" envDefault:"http://localhost:8181"`

	// CardsBaseURL is the cards service root (catalog, likes, my-cards).
	CardsBaseURL string `env:"CARDS_API_BASE_URL" envDefault:"http://localhost:8181"`

	// Timeout bounds every remote call.
	Timeout time.Duration `env:"REMOTE_TIMEOUT" envDefault:"10s"`
}

// Sanitize applies guardrails to remote service configuration values.
func (r *RemoteConfig) Sanitize() {
	r.UsersBaseURL = strings.TrimRight(strings.TrimSpace(r.UsersBaseURL), "/")
	r.CardsBaseURL = strings.TrimRight(strings.TrimSpace(r.CardsBaseURL), "/")
	if r.Timeout <= 0 {
		r.Timeout = 10 * time.Second
	}
}
