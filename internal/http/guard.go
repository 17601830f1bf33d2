package httpx

import (
	"net/http"
	"strings"
)

// DefaultCookieName is the cookie that mirrors the session's bearer token to
// the browser.
const DefaultCookieName = "accessToken"

// GuardConfig configures the edge route guard.
type GuardConfig struct {
	// ProtectedPrefixes are path prefixes that require a token cookie.
	ProtectedPrefixes []string
	// AuthOnlyPaths are paths an authenticated browser is bounced away from.
	AuthOnlyPaths []string
	// LoginPath is where unauthenticated protected-path requests land.
	LoginPath string
	// LandingPath is where authenticated auth-only requests land.
	LandingPath string
	// CookieName overrides DefaultCookieName.
	CookieName string
	// Matcher is an allow-list of prefixes the guard evaluates at all.
	// Requests outside it pass through untouched. Empty means every request
	// is evaluated.
	Matcher []string
}

// RouteGuard gates routing on token cookie presence, before any handler
// logic runs. It checks presence only; validity and expiry are the session
// layer's problem. Rules, in order: a protected path without a cookie
// redirects to login; an auth-only path with a cookie redirects to the
// landing page; everything else passes through.
func RouteGuard(cfg GuardConfig) func(http.Handler) http.Handler {
	cookieName := cfg.CookieName
	if cookieName == "" {
		cookieName = DefaultCookieName
	}
	loginPath := cfg.LoginPath
	if loginPath == "" {
		loginPath = "/login"
	}
	landingPath := cfg.LandingPath
	if landingPath == "" {
		landingPath = "/dashboard"
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if !matchesAny(r.URL.Path, cfg.Matcher) {
				next.ServeHTTP(w, r)
				return
			}

			hasToken := false
			if c, err := r.Cookie(cookieName); err == nil && c.Value != "" {
				hasToken = true
			}

			if hasPrefixIn(r.URL.Path, cfg.ProtectedPrefixes) && !hasToken {
				http.Redirect(w, r, loginPath, http.StatusSeeOther)
				return
			}

			if exactIn(r.URL.Path, cfg.AuthOnlyPaths) && hasToken {
				http.Redirect(w, r, landingPath, http.StatusSeeOther)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

// matchesAny reports whether path falls under any of the allow-list
// prefixes. An empty list matches everything.
func matchesAny(path string, prefixes []string) bool {
	if len(prefixes) == 0 {
		return true
	}
	return hasPrefixIn(path, prefixes) || exactIn(path, prefixes)
}

func hasPrefixIn(path string, prefixes []string) bool {
	for _, p := range prefixes {
		if p == "" {
			continue
		}
		if path == p || strings.HasPrefix(path, strings.TrimSuffix(p, "/")+"/") {
			return true
		}
	}
	return false
}

func exactIn(path string, paths []string) bool {
	for _, p := range paths {
		if path == p {
			return true
		}
	}
	return false
}
