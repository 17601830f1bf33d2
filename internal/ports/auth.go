package ports

// Package ports defines interfaces (hexagonal ports) for auth-related behavior.
// Implementations live in internal/adapters and internal/gateway; orchestration
// in internal/service.

import (
	"context"

	domainauth "github.com/shshafin/work-agency-client-sub003/internal/domain/auth"
)

// Credentials carries a login attempt.
type Credentials struct {
	Email    string
	Password string
}

// Grant is the result of a successful credential exchange: the upstream
// user profile and the bearer token to present on subsequent calls.
type Grant struct {
	User        domainauth.User
	AccessToken string
}

// CredentialVerifier exchanges login credentials for a grant.
// The production implementation calls the upstream API's login endpoint;
// a mock implementation issues local development identities.
type CredentialVerifier interface {
	Verify(ctx context.Context, creds Credentials) (Grant, error)
}

// SessionStore persists and retrieves login sessions.
type SessionStore interface {
	Save(ctx context.Context, sess domainauth.Session) error
	Get(ctx context.Context, id string) (domainauth.Session, error)
	Delete(ctx context.Context, id string) error
}
