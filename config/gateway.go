package config

import (
	"strings"
	"time"
)

// GatewayConfig configures the upstream work-agency API client.
// All entity data lives behind this API; this service never owns
// relational storage of its own.
type GatewayConfig struct {
	// BaseURL is the upstream API base, including the version prefix.
	BaseURL string `env:"API_BASE_URL" envDefault:"http://localhost:5000/api/v1"`

	// Timeout is the fixed per-request timeout for all outbound calls.
	Timeout time.Duration `env:"API_TIMEOUT" envDefault:"15s"`
}

// Sanitize applies guardrails to gateway configuration values.
func (g *GatewayConfig) Sanitize() {
	g.BaseURL = strings.TrimRight(g.BaseURL, "/")
	if g.Timeout < time.Second {
		g.Timeout = time.Second
	}
	if g.Timeout > 2*time.Minute {
		g.Timeout = 2 * time.Minute
	}
}
