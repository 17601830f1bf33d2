package httpx

import (
	"context"

	domainauth "github.com/shshafin/work-agency-client-sub003/internal/domain/auth"
)

// sessionKey is an unexported context key type to avoid collisions across
// packages. Centralized here so all handlers and middleware share it.
type sessionKey struct{}

// SetSessionInContext returns a child context that carries the given session.
func SetSessionInContext(ctx context.Context, sess domainauth.Session) context.Context {
	return context.WithValue(ctx, sessionKey{}, sess)
}

// SessionFromContext returns the session from context and whether one is set.
func SessionFromContext(ctx context.Context) (domainauth.Session, bool) {
	sess, ok := ctx.Value(sessionKey{}).(domainauth.Session)
	return sess, ok
}

// TokenFromContext returns the bearer token of the current session, or empty
// when the request is unauthenticated. The gateway client uses this as its
// token source.
func TokenFromContext(ctx context.Context) string {
	sess, ok := SessionFromContext(ctx)
	if !ok {
		return ""
	}
	return sess.Token
}
