package httpx

import (
	"context"
	"log/slog"
	"net/http"
	"strings"
	"time"

	domainauth "github.com/shshafin/work-agency-client-sub003/internal/domain/auth"
	"github.com/shshafin/work-agency-client-sub003/internal/service"
)

// AuthServiceInterface defines the auth service operations the handlers use.
type AuthServiceInterface interface {
	Login(ctx context.Context, input service.LoginInput) (domainauth.Session, error)
	SessionByToken(ctx context.Context, rawToken string) (domainauth.Session, error)
	Logout(ctx context.Context, rawToken string) error
}

// AuthHandlers provides HTTP handlers for login, logout, and auth status.
type AuthHandlers struct {
	Svc          AuthServiceInterface
	CookieDomain string
	// CookieMaxAge bounds the accessToken cookie lifetime.
	CookieMaxAge time.Duration
	Logger       *slog.Logger
}

func (h *AuthHandlers) logger() *slog.Logger {
	if h != nil && h.Logger != nil {
		return h.Logger
	}
	return slog.Default()
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Login handles credential submission.
// POST /login.
func (h *AuthHandlers) Login(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if isFormPost(r) {
		if err := r.ParseForm(); err != nil {
			WriteError(w, ErrorParams{Code: http.StatusBadRequest, ErrCode: "invalid_form", Err: err})
			return
		}
		req.Email = r.PostFormValue("email")
		req.Password = r.PostFormValue("password")
	} else if !DecodeJSON(w, r, &req) {
		return
	}

	sess, err := h.Svc.Login(r.Context(), service.LoginInput{Email: req.Email, Password: req.Password})
	if err != nil {
		h.logger().InfoContext(r.Context(), "login rejected", "email", req.Email, "error", err)
		WriteAppError(w, err)
		return
	}

	h.setSessionCookie(w, r, sess)

	if isBrowserRequest(r) {
		http.Redirect(w, r, "/dashboard", http.StatusSeeOther)
		return
	}
	WriteData(w, http.StatusOK, map[string]any{
		"user":      sess.User,
		"expiresAt": sess.ExpiresAt,
	})
}

// Logout invalidates the server-side session and clears the cookie.
// POST /logout.
func (h *AuthHandlers) Logout(w http.ResponseWriter, r *http.Request) {
	if raw := tokenFromRequest(r); raw != "" {
		if err := h.Svc.Logout(r.Context(), raw); err != nil {
			h.logger().WarnContext(r.Context(), "logout failed", "error", err)
		}
	}

	clearSessionCookie(w, r, h.CookieDomain)

	if isBrowserRequest(r) {
		http.Redirect(w, r, "/login", http.StatusSeeOther)
		return
	}
	WriteData(w, http.StatusOK, map[string]any{"loggedOut": true})
}

// Status returns the current authentication status.
// GET /auth/status.
func (h *AuthHandlers) Status(w http.ResponseWriter, r *http.Request) {
	raw := tokenFromRequest(r)
	if raw == "" {
		WriteData(w, http.StatusOK, map[string]any{"authenticated": false})
		return
	}

	sess, err := h.Svc.SessionByToken(r.Context(), raw)
	if err != nil {
		// Stale or unparseable token. Clear it so the browser stops
		// presenting it.
		clearSessionCookie(w, r, h.CookieDomain)
		WriteData(w, http.StatusOK, map[string]any{"authenticated": false})
		return
	}

	WriteData(w, http.StatusOK, map[string]any{
		"authenticated": true,
		"user":          sess.User,
		"expiresAt":     sess.ExpiresAt,
	})
}

// setSessionCookie mirrors the session's bearer token into the accessToken
// cookie the route guard reads.
func (h *AuthHandlers) setSessionCookie(w http.ResponseWriter, r *http.Request, sess domainauth.Session) {
	maxAge := h.CookieMaxAge
	if maxAge <= 0 {
		maxAge = 7 * 24 * time.Hour
	}
	if !sess.ExpiresAt.IsZero() {
		if until := time.Until(sess.ExpiresAt); until < maxAge {
			maxAge = until
		}
	}

	http.SetCookie(w, &http.Cookie{
		Name:     DefaultCookieName,
		Value:    sess.Token,
		Path:     "/",
		Domain:   h.CookieDomain,
		HttpOnly: true,
		Secure:   isSecureRequest(r),
		MaxAge:   int(maxAge.Seconds()),
		SameSite: http.SameSiteLaxMode,
	})
}

// clearSessionCookie clears the accessToken cookie by expiring it, mirroring
// the attributes used when setting it.
func clearSessionCookie(w http.ResponseWriter, r *http.Request, cookieDomain string) {
	http.SetCookie(w, &http.Cookie{
		Name:     DefaultCookieName,
		Value:    "",
		Path:     "/",
		Domain:   cookieDomain,
		HttpOnly: true,
		Secure:   isSecureRequest(r),
		MaxAge:   -1,
		Expires:  time.Unix(0, 0).UTC(),
		SameSite: http.SameSiteLaxMode,
	})
}

func isSecureRequest(r *http.Request) bool {
	return r.TLS != nil || strings.EqualFold(r.Header.Get("X-Forwarded-Proto"), "https")
}

func isFormPost(r *http.Request) bool {
	ct := r.Header.Get("Content-Type")
	return strings.HasPrefix(ct, "application/x-www-form-urlencoded") ||
		strings.HasPrefix(ct, "multipart/form-data")
}
