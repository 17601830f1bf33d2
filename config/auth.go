package config

import (
	"fmt"
	"strings"
	"time"
)

// AuthMode represents how login credentials are verified.
type AuthMode string

const (
	// AuthModeAPI verifies credentials against the upstream API's login endpoint.
	AuthModeAPI AuthMode = "api"
	// AuthModeMock issues a local development identity (for development only).
	AuthModeMock AuthMode = "mock"
)

// UnmarshalText implements encoding.TextUnmarshaler for AuthMode.
func (a *AuthMode) UnmarshalText(text []byte) error {
	v := strings.ToLower(string(text))
	switch v {
	case "api", "mock":
		*a = AuthMode(v)
		return nil
	default:
		return fmt.Errorf("invalid AuthMode: %q (valid options: api, mock)", v)
	}
}

// MockAuthConfig controls the mock/dev login identity.
// Used when AUTH_MODE=mock for development and testing.
type MockAuthConfig struct {
	UserID string `env:"USER_ID" envDefault:"dev-user"`
	Email  string `env:"EMAIL"   envDefault:"dev@example.com"`
	Role   string `env:"ROLE"    envDefault:"super_admin"`
}

// AuthConfig groups all authentication-related configuration.
type AuthConfig struct {
	// Mode determines which credential verifier to use.
	Mode AuthMode `env:"AUTH_MODE" envDefault:"api"`

	// Mock configuration (used when Mode=mock).
	Mock MockAuthConfig `envPrefix:"MOCK_AUTH_"`

	// CookieMaxAge bounds the accessToken cookie lifetime. It is deliberately
	// independent of the token's own expiry claim; the session layer enforces
	// the claim on each read.
	CookieMaxAge time.Duration `env:"AUTH_COOKIE_MAX_AGE" envDefault:"168h"`

	// SessionTTL bounds the server-side session record lifetime.
	SessionTTL time.Duration `env:"AUTH_SESSION_TTL" envDefault:"168h"`
}

// Sanitize applies guardrails to authentication configuration values.
func (a *AuthConfig) Sanitize() {
	if a.CookieMaxAge < time.Minute {
		a.CookieMaxAge = time.Minute
	}
	if a.SessionTTL < time.Minute {
		a.SessionTTL = time.Minute
	}
}
