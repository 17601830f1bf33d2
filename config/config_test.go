package config

import (
	"testing"
	"time"

	env "github.com/caarlos0/env/v11"
)

func TestAuthModeUnmarshalText(t *testing.T) {
	tests := []struct {
		name        string
		input       string
		expected    AuthMode
		expectError bool
	}{
		{name: "api mode", input: "api", expected: AuthModeAPI},
		{name: "mock mode", input: "mock", expected: AuthModeMock},
		{name: "uppercase is normalized", input: "API", expected: AuthModeAPI},
		{name: "unknown mode", input: "ldap", expectError: true},
		{name: "empty", input: "", expectError: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var mode AuthMode
			err := mode.UnmarshalText([]byte(tt.input))
			if tt.expectError {
				if err == nil {
					t.Fatalf("expected error for input %q, got none", tt.input)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if mode != tt.expected {
				t.Errorf("got %q, want %q", mode, tt.expected)
			}
		})
	}
}

func TestAppConfigDefaults(t *testing.T) {
	var cfg AppConfig
	if err := env.Parse(&cfg); err != nil {
		t.Fatalf("parse config: %v", err)
	}
	cfg.Sanitize()

	if cfg.HTTP.Addr != ":8080" {
		t.Errorf("HTTP.Addr = %q, want :8080", cfg.HTTP.Addr)
	}
	if cfg.Auth.Mode != AuthModeAPI {
		t.Errorf("Auth.Mode = %q, want api", cfg.Auth.Mode)
	}
	if cfg.Auth.CookieMaxAge != 168*time.Hour {
		t.Errorf("Auth.CookieMaxAge = %v, want 168h", cfg.Auth.CookieMaxAge)
	}
	if cfg.Gateway.Timeout != 15*time.Second {
		t.Errorf("Gateway.Timeout = %v, want 15s", cfg.Gateway.Timeout)
	}
	if cfg.Redis.Addr != "localhost:6379" {
		t.Errorf("Redis.Addr = %q, want localhost:6379", cfg.Redis.Addr)
	}
}

func TestSanitizeGuardrails(t *testing.T) {
	cfg := AppConfig{
		Auth:    AuthConfig{CookieMaxAge: time.Second, SessionTTL: 0},
		Gateway: GatewayConfig{BaseURL: "http://api.local/api/v1/", Timeout: 10 * time.Minute},
	}
	cfg.Sanitize()

	if cfg.Auth.CookieMaxAge != time.Minute {
		t.Errorf("CookieMaxAge = %v, want clamped to 1m", cfg.Auth.CookieMaxAge)
	}
	if cfg.Auth.SessionTTL != time.Minute {
		t.Errorf("SessionTTL = %v, want clamped to 1m", cfg.Auth.SessionTTL)
	}
	if cfg.Gateway.BaseURL != "http://api.local/api/v1" {
		t.Errorf("BaseURL = %q, want trailing slash trimmed", cfg.Gateway.BaseURL)
	}
	if cfg.Gateway.Timeout != 2*time.Minute {
		t.Errorf("Timeout = %v, want clamped to 2m", cfg.Gateway.Timeout)
	}
}
