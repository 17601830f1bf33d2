package service

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"strings"
	"time"

	domainauth "github.com/shshafin/work-agency-client-sub003/internal/domain/auth"
	apperrors "github.com/shshafin/work-agency-client-sub003/internal/errors"
	"github.com/shshafin/work-agency-client-sub003/internal/ports"
	"github.com/shshafin/work-agency-client-sub003/internal/token"
)

// AuthServiceOptions groups dependencies for AuthService.
type AuthServiceOptions struct {
	Verifier ports.CredentialVerifier
	Sessions ports.SessionStore
	// SessionTTL caps session lifetime regardless of token expiry.
	// Defaults to 7 days.
	SessionTTL time.Duration
}

// AuthService orchestrates login, session lookup, and logout. It holds the
// only two writer paths into the session store.
type AuthService struct {
	verifier   ports.CredentialVerifier
	sessions   ports.SessionStore
	sessionTTL time.Duration
}

// NewAuthService constructs a new AuthService.
func NewAuthService(opts AuthServiceOptions) *AuthService {
	ttl := opts.SessionTTL
	if ttl <= 0 {
		ttl = 7 * 24 * time.Hour
	}
	return &AuthService{
		verifier:   opts.Verifier,
		sessions:   opts.Sessions,
		sessionTTL: ttl,
	}
}

// SessionID derives the session store key from a bearer token. The cookie
// carries the raw token, so the store key must be recomputable from it alone.
func SessionID(rawToken string) string {
	sum := sha256.Sum256([]byte(rawToken))
	return hex.EncodeToString(sum[:])
}

// LoginInput groups credentials for Login.
type LoginInput struct {
	Email    string
	Password string
}

// Login exchanges credentials for a session. The granted token must decode
// cleanly before anything is written; a grant with an undecodable token is
// rejected and no session state is created.
func (s *AuthService) Login(ctx context.Context, input LoginInput) (domainauth.Session, error) {
	email := strings.TrimSpace(input.Email)
	if email == "" {
		return domainauth.Session{}, apperrors.ValidationField("email", "email is required")
	}
	if input.Password == "" {
		return domainauth.Session{}, apperrors.ValidationField("password", "password is required")
	}

	grant, err := s.verifier.Verify(ctx, ports.Credentials{Email: email, Password: input.Password})
	if err != nil {
		return domainauth.Session{}, err
	}

	decoded, err := token.Decode(grant.AccessToken)
	if err != nil {
		return domainauth.Session{}, err
	}

	now := time.Now()
	if decoded.Expired(now) {
		return domainauth.Session{}, apperrors.Unauthorized("granted token is already expired")
	}

	expiresAt := now.Add(s.sessionTTL)
	if !decoded.ExpiresAt.IsZero() && decoded.ExpiresAt.Before(expiresAt) {
		expiresAt = decoded.ExpiresAt
	}

	user := domainauth.User{
		ID:    decoded.UserID,
		Email: decoded.Email,
		Role:  decoded.Role,
	}
	if user.Email == "" {
		user.Email = grant.User.Email
	}

	sess := domainauth.Session{
		ID:        SessionID(grant.AccessToken),
		Token:     grant.AccessToken,
		User:      user,
		ExpiresAt: expiresAt,
	}

	if saveErr := s.sessions.Save(ctx, sess); saveErr != nil {
		return domainauth.Session{}, fmt.Errorf("save session: %w", saveErr)
	}

	return sess, nil
}

// SessionByToken resolves the session behind a raw bearer token. A token
// whose session record is missing, whose claims no longer decode, or whose
// expiry has passed yields an unauthorized or decode error; in the latter
// two cases the stale record is removed first.
func (s *AuthService) SessionByToken(ctx context.Context, rawToken string) (domainauth.Session, error) {
	if rawToken == "" {
		return domainauth.Session{}, apperrors.Unauthorized("no session token")
	}

	id := SessionID(rawToken)
	sess, err := s.sessions.Get(ctx, id)
	if err != nil {
		if apperrors.IsNotFound(err) {
			return domainauth.Session{}, apperrors.Unauthorized("session not found")
		}
		return domainauth.Session{}, fmt.Errorf("get session: %w", err)
	}

	decoded, err := token.Decode(sess.Token)
	if err != nil {
		_ = s.sessions.Delete(ctx, id)
		return domainauth.Session{}, err
	}

	now := time.Now()
	if decoded.Expired(now) || (!sess.ExpiresAt.IsZero() && now.After(sess.ExpiresAt)) {
		_ = s.sessions.Delete(ctx, id)
		return domainauth.Session{}, apperrors.Unauthorized("session expired")
	}

	return sess, nil
}

// Logout removes the session for a raw bearer token. Logging out without a
// token is a no-op.
func (s *AuthService) Logout(ctx context.Context, rawToken string) error {
	if rawToken == "" {
		return nil
	}
	if err := s.sessions.Delete(ctx, SessionID(rawToken)); err != nil {
		return fmt.Errorf("delete session: %w", err)
	}
	return nil
}
