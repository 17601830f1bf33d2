package httpx

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"runtime/debug"
	"strings"
	"time"

	"github.com/google/uuid"

	domainauth "github.com/shshafin/work-agency-client-sub003/internal/domain/auth"
	apperrors "github.com/shshafin/work-agency-client-sub003/internal/errors"
)

// SessionResolver is the slice of the auth service the middleware depends on.
type SessionResolver interface {
	SessionByToken(ctx context.Context, rawToken string) (domainauth.Session, error)
	Logout(ctx context.Context, rawToken string) error
}

// Logging returns a middleware that logs HTTP requests and responses. Each
// request gets a generated id so log lines from one request correlate.
func Logging(logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			const defaultHTTPStatus = 200
			ww := &respWriter{ResponseWriter: w, status: defaultHTTPStatus}
			reqID := uuid.NewString()
			w.Header().Set("X-Request-Id", reqID)
			next.ServeHTTP(ww, r)
			logger.Info("http",
				slog.String("request_id", reqID),
				slog.String("method", r.Method),
				slog.String("path", r.URL.Path),
				slog.Int("status", ww.status),
				slog.Duration("duration", time.Since(start)),
			)
		})
	}
}

type respWriter struct {
	http.ResponseWriter
	status int
}

func (w *respWriter) WriteHeader(status int) {
	w.status = status
	w.ResponseWriter.WriteHeader(status)
}

// Recover returns a middleware that recovers from panics and logs them.
func Recover(logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				if err := recover(); err != nil {
					logger.Error("panic",
						slog.Any("error", err),
						slog.String("path", r.URL.Path),
						slog.String("method", r.Method),
						slog.String("stack", string(debug.Stack())))
					http.Error(w, "Internal Server Error", http.StatusInternalServerError)
				}
			}()
			next.ServeHTTP(w, r)
		})
	}
}

// RequireSession resolves the request's session and puts it in context. It
// is the fine-grained gate behind the edge guard: a cookie that passed the
// presence check but resolves to no session gets cleared and the request is
// rejected. Browser requests are redirected to login; API requests get 401.
// cookieDomain must match the domain login sets the cookie with, or the
// forced-logout clear targets a different cookie than the one presented.
func RequireSession(auth SessionResolver, cookieDomain string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			raw := tokenFromRequest(r)
			sess, err := auth.SessionByToken(r.Context(), raw)
			if err != nil {
				if isSessionRejection(err) {
					forceLogout(w, r, auth, raw, cookieDomain)
					return
				}
				// Store outage, not a bad token. The cookie stays; the
				// session is still valid once the store recovers.
				WriteAppError(w, err)
				return
			}

			ctx := SetSessionInContext(r.Context(), sess)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// isSessionRejection separates "this token is no good" from "the store
// could not answer". Only rejections destroy client state.
func isSessionRejection(err error) bool {
	return apperrors.IsUnauthorized(err) || apperrors.IsDecode(err) || apperrors.IsNotFound(err)
}

// RequireRole restricts a route to sessions at or above the given role.
// It must run inside RequireSession.
func RequireRole(required domainauth.Role) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			sess, ok := SessionFromContext(r.Context())
			if !ok {
				WriteError(w, ErrorParams{
					Code:    http.StatusUnauthorized,
					ErrCode: "unauthorized",
					Err:     errors.New("authentication required"),
				})
				return
			}
			if !hasRequiredRole(sess.User.Role, required) {
				WriteError(w, ErrorParams{
					Code:    http.StatusForbidden,
					ErrCode: "forbidden",
					Err:     errors.New("insufficient permissions"),
				})
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

// tokenFromRequest extracts the bearer token from the accessToken cookie or,
// for API clients, the Authorization header.
func tokenFromRequest(r *http.Request) string {
	if c, err := r.Cookie(DefaultCookieName); err == nil && c.Value != "" {
		return c.Value
	}
	authz := r.Header.Get("Authorization")
	if after, ok := strings.CutPrefix(authz, "Bearer "); ok {
		return strings.TrimSpace(after)
	}
	return ""
}

// forceLogout clears the stale cookie, drops any server-side session state,
// and rejects the request.
func forceLogout(w http.ResponseWriter, r *http.Request, auth SessionResolver, raw, cookieDomain string) {
	if raw != "" {
		_ = auth.Logout(r.Context(), raw)
	}
	clearSessionCookie(w, r, cookieDomain)

	if isBrowserRequest(r) {
		http.Redirect(w, r, "/login", http.StatusSeeOther)
		return
	}
	WriteError(w, ErrorParams{
		Code:    http.StatusUnauthorized,
		ErrCode: "unauthorized",
		Err:     errors.New("authentication required"),
	})
}

// hasRequiredRole checks if the user's role meets the required role.
// Role hierarchy: Moderator < Admin < SuperAdmin.
func hasRequiredRole(userRole, required domainauth.Role) bool {
	roleHierarchy := map[domainauth.Role]int{
		domainauth.RoleModerator:  1,
		domainauth.RoleAdmin:      2,
		domainauth.RoleSuperAdmin: 3,
	}

	userLevel, userExists := roleHierarchy[userRole]
	requiredLevel, requiredExists := roleHierarchy[required]
	if !userExists || !requiredExists {
		return false
	}
	return userLevel >= requiredLevel
}

// isBrowserRequest distinguishes page navigations from API calls: API paths
// and JSON-accepting clients get JSON errors, everything else gets
// redirects.
func isBrowserRequest(r *http.Request) bool {
	if strings.HasPrefix(r.URL.Path, "/api/") {
		return false
	}
	accept := r.Header.Get("Accept")
	if strings.Contains(accept, "text/html") {
		return true
	}
	if strings.Contains(accept, "application/json") {
		return false
	}
	return true
}
