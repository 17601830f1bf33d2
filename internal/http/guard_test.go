package httpx

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func guardUnderTest() http.Handler {
	mw := RouteGuard(GuardConfig{
		ProtectedPrefixes: []string{"/dashboard"},
		AuthOnlyPaths:     []string{"/login"},
		LoginPath:         "/login",
		LandingPath:       "/dashboard",
		Matcher:           []string{"/dashboard", "/login"},
	})
	return mw(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))
}

func guardedRequest(t *testing.T, path, token string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	if token != "" {
		req.AddCookie(&http.Cookie{Name: DefaultCookieName, Value: token})
	}
	rec := httptest.NewRecorder()
	guardUnderTest().ServeHTTP(rec, req)
	return rec
}

func TestGuardProtectedWithoutTokenRedirectsToLogin(t *testing.T) {
	for _, path := range []string{"/dashboard", "/dashboard/products", "/dashboard/users/u1"} {
		rec := guardedRequest(t, path, "")
		assert.Equal(t, http.StatusSeeOther, rec.Code, "path %s", path)
		assert.Equal(t, "/login", rec.Header().Get("Location"))
	}
}

func TestGuardAuthOnlyWithTokenRedirectsToDashboard(t *testing.T) {
	rec := guardedRequest(t, "/login", "tok")
	assert.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Equal(t, "/dashboard", rec.Header().Get("Location"))
}

func TestGuardPassesThroughOtherwise(t *testing.T) {
	cases := []struct {
		path  string
		token string
	}{
		{"/dashboard", "tok"},
		{"/dashboard/blogs", "stale-but-present"},
		{"/login", ""},
	}
	for _, tc := range cases {
		rec := guardedRequest(t, tc.path, tc.token)
		assert.Equal(t, http.StatusOK, rec.Code, "path %s token %q", tc.path, tc.token)
	}
}

func TestGuardChecksPresenceOnly(t *testing.T) {
	// Any non-empty cookie value passes; validity is decided downstream.
	rec := guardedRequest(t, "/dashboard", "definitely-not-a-jwt")
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestGuardSkipsPathsOutsideMatcher(t *testing.T) {
	rec := guardedRequest(t, "/api/blogs", "")
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = guardedRequest(t, "/static/app.css", "")
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestGuardDoesNotMatchPrefixLookalikes(t *testing.T) {
	mw := RouteGuard(GuardConfig{
		ProtectedPrefixes: []string{"/dashboard"},
	})
	h := mw(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	req := httptest.NewRequest(http.MethodGet, "/dashboardish", nil)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestGuardEmptyCookieCountsAsAbsent(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/dashboard", nil)
	req.AddCookie(&http.Cookie{Name: DefaultCookieName, Value: ""})
	rec := httptest.NewRecorder()
	guardUnderTest().ServeHTTP(rec, req)
	assert.Equal(t, http.StatusSeeOther, rec.Code)
}
