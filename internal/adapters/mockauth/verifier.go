package mockauth

// Package mockauth provides a config-driven CredentialVerifier for local
// development. It accepts any password for the configured email and issues a
// locally signed token shaped like the upstream API's, so the rest of the
// auth pipeline (decoder, guard, gate) behaves exactly as in production.

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"

	domainauth "github.com/shshafin/work-agency-client-sub003/internal/domain/auth"
	apperrors "github.com/shshafin/work-agency-client-sub003/internal/errors"
	"github.com/shshafin/work-agency-client-sub003/internal/ports"
)

// mockSigningKey signs dev tokens. The decoder never verifies signatures,
// so this key carries no security weight; it only produces well-formed JWTs.
var mockSigningKey = []byte("work-agency-dev")

// Config controls the mock verifier behavior.
type Config struct {
	UserID   string
	Email    string
	Role     domainauth.Role
	TokenTTL time.Duration // default 8h when zero
}

// Verifier implements ports.CredentialVerifier for local development.
type Verifier struct {
	user     domainauth.User
	tokenTTL time.Duration
}

var _ ports.CredentialVerifier = (*Verifier)(nil)

// NewVerifier constructs a mock verifier from Config.
func NewVerifier(cfg Config) (*Verifier, error) {
	if cfg.UserID == "" {
		return nil, errors.New("mock auth: UserID is required")
	}
	if cfg.Email == "" {
		return nil, errors.New("mock auth: Email is required")
	}
	if !cfg.Role.Valid() {
		return nil, fmt.Errorf("mock auth: invalid role %q", cfg.Role)
	}
	ttl := cfg.TokenTTL
	if ttl == 0 {
		ttl = 8 * time.Hour
	}
	return &Verifier{
		user:     domainauth.User{ID: cfg.UserID, Email: cfg.Email, Role: cfg.Role},
		tokenTTL: ttl,
	}, nil
}

// Verify accepts the configured email (case-insensitive) with any non-empty
// password and issues a fresh token.
func (v *Verifier) Verify(_ context.Context, creds ports.Credentials) (ports.Grant, error) {
	if !strings.EqualFold(creds.Email, v.user.Email) || creds.Password == "" {
		return ports.Grant{}, apperrors.Unauthorized("invalid email or password")
	}

	now := time.Now()
	claims := jwt.MapClaims{
		"userId": v.user.ID,
		"email":  v.user.Email,
		"role":   string(v.user.Role),
		"iat":    now.Unix(),
		"exp":    now.Add(v.tokenTTL).Unix(),
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(mockSigningKey)
	if err != nil {
		return ports.Grant{}, fmt.Errorf("sign mock token: %w", err)
	}

	return ports.Grant{User: v.user, AccessToken: signed}, nil
}
