package service

import (
	"context"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domainauth "github.com/shshafin/work-agency-client-sub003/internal/domain/auth"
	apperrors "github.com/shshafin/work-agency-client-sub003/internal/errors"
	mockauth "github.com/shshafin/work-agency-client-sub003/internal/mocks/auth"
	"github.com/shshafin/work-agency-client-sub003/internal/ports"
)

func signToken(t *testing.T, claims jwt.MapClaims) string {
	t.Helper()
	tok := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := tok.SignedString([]byte("test-secret"))
	require.NoError(t, err)
	return signed
}

func grantVerifier(grant ports.Grant) *mockauth.MockVerifier {
	return &mockauth.MockVerifier{
		VerifyFunc: func(context.Context, ports.Credentials) (ports.Grant, error) {
			return grant, nil
		},
	}
}

func TestLoginCreatesSessionKeyedByToken(t *testing.T) {
	exp := time.Now().Add(2 * time.Hour)
	raw := signToken(t, jwt.MapClaims{
		"userId": "u-1",
		"email":  "admin@example.com",
		"role":   "admin",
		"exp":    exp.Unix(),
	})

	store := mockauth.NewMemorySessionStore()
	svc := NewAuthService(AuthServiceOptions{
		Verifier:   grantVerifier(ports.Grant{AccessToken: raw}),
		Sessions:   store,
		SessionTTL: 7 * 24 * time.Hour,
	})

	sess, err := svc.Login(context.Background(), LoginInput{Email: "admin@example.com", Password: "pw"})
	require.NoError(t, err)

	assert.Equal(t, SessionID(raw), sess.ID)
	assert.Equal(t, raw, sess.Token)
	assert.Equal(t, domainauth.RoleAdmin, sess.User.Role)
	assert.Equal(t, "u-1", sess.User.ID)
	// Token expiry is sooner than the configured TTL, so it wins.
	assert.WithinDuration(t, exp, sess.ExpiresAt, time.Second)

	stored, err := store.Get(context.Background(), sess.ID)
	require.NoError(t, err)
	assert.Equal(t, sess.Token, stored.Token)
}

func TestLoginSessionTTLCapsLongLivedTokens(t *testing.T) {
	raw := signToken(t, jwt.MapClaims{
		"userId": "u-1",
		"email":  "admin@example.com",
		"role":   "admin",
		"exp":    time.Now().Add(30 * 24 * time.Hour).Unix(),
	})

	svc := NewAuthService(AuthServiceOptions{
		Verifier:   grantVerifier(ports.Grant{AccessToken: raw}),
		Sessions:   mockauth.NewMemorySessionStore(),
		SessionTTL: time.Hour,
	})

	sess, err := svc.Login(context.Background(), LoginInput{Email: "admin@example.com", Password: "pw"})
	require.NoError(t, err)
	assert.WithinDuration(t, time.Now().Add(time.Hour), sess.ExpiresAt, time.Second)
}

func TestLoginRejectsEmptyCredentialsBeforeVerifier(t *testing.T) {
	verifier := &mockauth.MockVerifier{}
	svc := NewAuthService(AuthServiceOptions{
		Verifier: verifier,
		Sessions: mockauth.NewMemorySessionStore(),
	})

	_, err := svc.Login(context.Background(), LoginInput{Email: "", Password: "pw"})
	assert.True(t, apperrors.IsValidation(err))

	_, err = svc.Login(context.Background(), LoginInput{Email: "a@b.c", Password: ""})
	assert.True(t, apperrors.IsValidation(err))

	assert.Empty(t, verifier.Calls)
}

func TestLoginUndecodableGrantStoresNothing(t *testing.T) {
	store := mockauth.NewMemorySessionStore()
	svc := NewAuthService(AuthServiceOptions{
		Verifier: grantVerifier(ports.Grant{AccessToken: "not-a-jwt"}),
		Sessions: store,
	})

	_, err := svc.Login(context.Background(), LoginInput{Email: "a@b.c", Password: "pw"})
	assert.True(t, apperrors.IsDecode(err))
	assert.Zero(t, store.Len())
}

func TestLoginRejectsExpiredGrant(t *testing.T) {
	raw := signToken(t, jwt.MapClaims{
		"userId": "u-1",
		"email":  "a@b.c",
		"role":   "admin",
		"exp":    time.Now().Add(-time.Minute).Unix(),
	})
	store := mockauth.NewMemorySessionStore()
	svc := NewAuthService(AuthServiceOptions{
		Verifier: grantVerifier(ports.Grant{AccessToken: raw}),
		Sessions: store,
	})

	_, err := svc.Login(context.Background(), LoginInput{Email: "a@b.c", Password: "pw"})
	assert.True(t, apperrors.IsUnauthorized(err))
	assert.Zero(t, store.Len())
}

func loginSession(t *testing.T, svc *AuthService) domainauth.Session {
	t.Helper()
	sess, err := svc.Login(context.Background(), LoginInput{Email: "a@b.c", Password: "pw"})
	require.NoError(t, err)
	return sess
}

func TestSessionByTokenRoundTrip(t *testing.T) {
	raw := signToken(t, jwt.MapClaims{
		"userId": "u-9",
		"email":  "mod@example.com",
		"role":   "moderator",
		"exp":    time.Now().Add(time.Hour).Unix(),
	})
	svc := NewAuthService(AuthServiceOptions{
		Verifier: grantVerifier(ports.Grant{AccessToken: raw}),
		Sessions: mockauth.NewMemorySessionStore(),
	})
	created := loginSession(t, svc)

	got, err := svc.SessionByToken(context.Background(), raw)
	require.NoError(t, err)
	assert.Equal(t, created.ID, got.ID)
	assert.Equal(t, domainauth.RoleModerator, got.User.Role)
}

func TestSessionByTokenUnknownTokenIsUnauthorized(t *testing.T) {
	svc := NewAuthService(AuthServiceOptions{
		Verifier: &mockauth.MockVerifier{},
		Sessions: mockauth.NewMemorySessionStore(),
	})

	_, err := svc.SessionByToken(context.Background(), "never-logged-in")
	assert.True(t, apperrors.IsUnauthorized(err))

	_, err = svc.SessionByToken(context.Background(), "")
	assert.True(t, apperrors.IsUnauthorized(err))
}

func TestSessionByTokenExpiredSessionIsRemoved(t *testing.T) {
	raw := signToken(t, jwt.MapClaims{
		"userId": "u-1",
		"email":  "a@b.c",
		"role":   "admin",
		"exp":    time.Now().Add(time.Hour).Unix(),
	})
	store := mockauth.NewMemorySessionStore()
	require.NoError(t, store.Save(context.Background(), domainauth.Session{
		ID:        SessionID(raw),
		Token:     raw,
		User:      domainauth.User{ID: "u-1", Role: domainauth.RoleAdmin},
		ExpiresAt: time.Now().Add(-time.Minute),
	}))

	svc := NewAuthService(AuthServiceOptions{Verifier: &mockauth.MockVerifier{}, Sessions: store})

	_, err := svc.SessionByToken(context.Background(), raw)
	assert.True(t, apperrors.IsUnauthorized(err))
	assert.Zero(t, store.Len())
}

func TestSessionByTokenCorruptStoredTokenIsRemoved(t *testing.T) {
	store := mockauth.NewMemorySessionStore()
	require.NoError(t, store.Save(context.Background(), domainauth.Session{
		ID:        SessionID("garbage"),
		Token:     "garbage",
		ExpiresAt: time.Now().Add(time.Hour),
	}))

	svc := NewAuthService(AuthServiceOptions{Verifier: &mockauth.MockVerifier{}, Sessions: store})

	_, err := svc.SessionByToken(context.Background(), "garbage")
	assert.True(t, apperrors.IsDecode(err))
	assert.Zero(t, store.Len())
}

func TestLogout(t *testing.T) {
	raw := signToken(t, jwt.MapClaims{
		"userId": "u-1",
		"email":  "a@b.c",
		"role":   "admin",
		"exp":    time.Now().Add(time.Hour).Unix(),
	})
	store := mockauth.NewMemorySessionStore()
	svc := NewAuthService(AuthServiceOptions{
		Verifier: grantVerifier(ports.Grant{AccessToken: raw}),
		Sessions: store,
	})
	loginSession(t, svc)

	require.NoError(t, svc.Logout(context.Background(), raw))
	assert.Zero(t, store.Len())

	// Logging out twice, or with no token at all, is a no-op.
	require.NoError(t, svc.Logout(context.Background(), raw))
	require.NoError(t, svc.Logout(context.Background(), ""))
}
