package bootstrap

import (
	"fmt"
	"log/slog"
	"net/http"

	"github.com/redis/go-redis/v9"

	"github.com/jersab/Poject-BizCardHub/config"
	"github.com/jersab/Poject-BizCardHub/internal/adapters/bcardapi"
	"github.com/jersab/Poject-BizCardHub/internal/adapters/memstore"
	"github.com/jersab/Poject-BizCardHub/internal/adapters/redisstore"
	"github.com/jersab/Poject-BizCardHub/internal/adapters/tokencodec"
	"github.com/jersab/Poject-BizCardHub/internal/ports"
)

// AdapterContainer holds the concrete port implementations the services run on.
type AdapterContainer struct {
	Sessions ports.SessionStore
	Users    ports.UsersGateway
	Cards    ports.CardsGateway
	Decoder  ports.TokenDecoder

	// Redis is non-nil only when the redis session store is active; the
	// caller owns closing it on shutdown.
	Redis redis.UniversalClient
}

// BuildAdapters constructs session storage and the remote service clients
// from configuration. The memory store requires no external services and is
// selected automatically in dev mode when redis is not configured.
func BuildAdapters(cfg *config.AppConfig, logger *slog.Logger) (AdapterContainer, error) {
	sessions, redisClient, err := buildSessionStore(cfg, logger)
	if err != nil {
		return AdapterContainer{}, err
	}

	// One shared client so both gateways get the same timeout policy.
	hc := &http.Client{Timeout: cfg.Remote.Timeout}

	return AdapterContainer{
		Sessions: sessions,
		Users:    bcardapi.NewUsersClient(cfg.Remote.UsersBaseURL, hc),
		Cards:    bcardapi.NewCardsClient(cfg.Remote.CardsBaseURL, hc),
		Decoder:  tokencodec.New(),
		Redis:    redisClient,
	}, nil
}

//nolint:ireturn // the store backend is selected at runtime from configuration.
func buildSessionStore(
	cfg *config.AppConfig, logger *slog.Logger,
) (ports.SessionStore, redis.UniversalClient, error) {
	if cfg.Session.Store == config.SessionStoreMemory {
		if logger != nil {
			logger.Info("using in-memory session store")
		}
		return memstore.NewSessionStore(), nil, nil
	}

	client, err := ConnectRedis(cfg.Redis, logger)
	if err != nil {
		if cfg.IsDev {
			// Dev convenience: a missing local redis should not block startup.
			if logger != nil {
				logger.Warn("redis unavailable, falling back to in-memory sessions", "error", err)
			}
			return memstore.NewSessionStore(), nil, nil
		}
		return nil, nil, fmt.Errorf("connect session store: %w", err)
	}

	return redisstore.NewSessionStoreWithTTL(client, cfg.Session.TTL), client, nil
}
