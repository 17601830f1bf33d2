package bootstrap

import (
	"fmt"
	"log/slog"

	"github.com/redis/go-redis/v9"

	"github.com/shshafin/work-agency-client-sub003/config"
	"github.com/shshafin/work-agency-client-sub003/internal/adapters/mockauth"
	redisadapter "github.com/shshafin/work-agency-client-sub003/internal/adapters/redis"
	domainauth "github.com/shshafin/work-agency-client-sub003/internal/domain/auth"
	"github.com/shshafin/work-agency-client-sub003/internal/ports"
	"github.com/shshafin/work-agency-client-sub003/internal/service"
)

// NewRedisClient creates the Redis client backing the session store.
func NewRedisClient(cfg config.RedisConfig) *redis.Client {
	return redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})
}

// AuthDeps groups dependencies for BuildAuthService.
type AuthDeps struct {
	Config      *config.AppConfig
	RedisClient redis.UniversalClient
	// APIVerifier is the gateway-backed verifier used in api mode.
	APIVerifier ports.CredentialVerifier
	Logger      *slog.Logger
}

// BuildAuthService assembles the auth service: Redis-backed sessions plus
// the configured credential verifier. Mock mode never reaches the upstream
// API and is refused outside development.
func BuildAuthService(deps AuthDeps) (*service.AuthService, error) {
	cfg := deps.Config
	if cfg == nil {
		return nil, fmt.Errorf("auth bootstrap: config is required")
	}

	sessions := redisadapter.NewSessionStore(redisadapter.SessionStoreOptions{
		Client:     deps.RedisClient,
		DefaultTTL: cfg.Auth.SessionTTL,
	})

	var verifier ports.CredentialVerifier
	switch cfg.Auth.Mode {
	case config.AuthModeMock:
		if !cfg.IsDev {
			return nil, fmt.Errorf("auth bootstrap: mock auth mode requires dev mode")
		}
		mock, err := mockauth.NewVerifier(mockauth.Config{
			UserID: cfg.Auth.Mock.UserID,
			Email:  cfg.Auth.Mock.Email,
			Role:   domainauth.Role(cfg.Auth.Mock.Role),
		})
		if err != nil {
			return nil, fmt.Errorf("auth bootstrap: %w", err)
		}
		if deps.Logger != nil {
			deps.Logger.Warn("mock auth mode enabled", "email", cfg.Auth.Mock.Email, "role", cfg.Auth.Mock.Role)
		}
		verifier = mock
	default:
		if deps.APIVerifier == nil {
			return nil, fmt.Errorf("auth bootstrap: api verifier is required in api mode")
		}
		verifier = deps.APIVerifier
	}

	return service.NewAuthService(service.AuthServiceOptions{
		Verifier:   verifier,
		Sessions:   sessions,
		SessionTTL: cfg.Auth.SessionTTL,
	}), nil
}
