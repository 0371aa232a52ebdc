package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/jersab/Poject-BizCardHub/config"
	"github.com/jersab/Poject-BizCardHub/internal/bootstrap"
)

func main() {
	ctx := context.Background()

	cfg, err := bootstrap.LoadConfig()
	if err != nil {
		slog.Error("fatal error", "error", err)
		os.Exit(1) //nolint:forbidigo // Main entrypoint should exit with non-zero status on fatal errors.
	}

	logger := bootstrap.InitLogger(cfg.IsDev)
	if err := run(ctx, &cfg, logger); err != nil {
		logger.ErrorContext(ctx, "fatal error", "error", err)
		os.Exit(1) //nolint:forbidigo // Main entrypoint should exit with non-zero status on fatal errors.
	}
}

func run(ctx context.Context, cfg *config.AppConfig, logger *slog.Logger) error {
	logger.InfoContext(ctx, "starting bizcardhub",
		"addr", cfg.HTTP.Addr,
		"session_store", cfg.Session.Store,
		"users_api", cfg.Remote.UsersBaseURL,
		"cards_api", cfg.Remote.CardsBaseURL,
		"dev", cfg.IsDev)

	adapters, err := bootstrap.BuildAdapters(cfg, logger)
	if err != nil {
		return err
	}
	if adapters.Redis != nil {
		defer func() {
			if cerr := adapters.Redis.Close(); cerr != nil {
				logger.ErrorContext(ctx, "close redis failed", "error", cerr)
			}
		}()
	}

	services := bootstrap.BuildServices(adapters, logger)

	server := bootstrap.BuildHTTPServer(&bootstrap.HTTPServerConfig{
		Config:   cfg,
		Services: services,
		Logger:   logger,
	})

	// Serve until an interrupt, then drain in-flight requests.
	stopCtx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	return bootstrap.RunHTTPServer(stopCtx, server, logger)
}
