package main

import (
	"context"
	"log/slog"
	"os"

	"github.com/shshafin/work-agency-client-sub003/internal/bootstrap"
)

func main() {
	ctx := context.Background()
	logger := bootstrap.InitLogger()
	if err := run(ctx, logger); err != nil {
		logger.ErrorContext(ctx, "fatal error", "error", err)
		os.Exit(1) //nolint:forbidigo // Main entrypoint should exit with non-zero status on fatal errors.
	}
}

func run(ctx context.Context, logger *slog.Logger) error {
	cfg, err := bootstrap.LoadConfig()
	if err != nil {
		return err
	}

	logger.InfoContext(ctx, "starting work-agency service",
		"dev", cfg.IsDev,
		"auth_mode", cfg.Auth.Mode,
		"api_base", cfg.Gateway.BaseURL,
	)

	redisClient := bootstrap.NewRedisClient(cfg.Redis)
	defer func() {
		if cerr := redisClient.Close(); cerr != nil {
			logger.ErrorContext(ctx, "close redis failed", "error", cerr)
		}
	}()

	gatewayClient, err := bootstrap.NewGatewayClient(cfg.Gateway)
	if err != nil {
		return err
	}

	auth, err := bootstrap.BuildAuthService(bootstrap.AuthDeps{
		Config:      &cfg,
		RedisClient: redisClient,
		APIVerifier: gatewayClient,
		Logger:      logger,
	})
	if err != nil {
		return err
	}

	services := bootstrap.NewServices(gatewayClient, auth, logger)

	return bootstrap.RunHTTPServer(ctx, bootstrap.HTTPServerDeps{
		Config:   &cfg,
		Services: services,
		Logger:   logger,
	})
}
