package middleware

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestHTMXAnnotatesContext(t *testing.T) {
	t.Parallel()

	var got HTMXInfo
	handler := HTMX()(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got = HTMXInfoFromContext(r.Context())
	}))

	req := httptest.NewRequest(http.MethodPost, "/register", nil)
	req.Header.Set("HX-Request", "true")
	req.Header.Set("HX-Trigger-Name", "email")
	req.Header.Set("HX-Target", "register-form")
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)

	require.True(t, got.IsHTMX)
	require.Equal(t, "email", got.TriggerName)
	require.Equal(t, "register-form", got.Target)
	require.Equal(t, "HX-Request", rr.Header().Get("Vary"))
}

func TestHTMXInfoMissing(t *testing.T) {
	t.Parallel()

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	require.False(t, IsHTMXRequest(req.Context()))
	require.Equal(t, HTMXInfo{}, HTMXInfoFromContext(req.Context()))
}

func TestRedirect(t *testing.T) {
	t.Parallel()

	handler := HTMX()(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		Redirect(w, r, "/login")
	}))

	t.Run("plain request gets see other", func(t *testing.T) {
		rr := httptest.NewRecorder()
		handler.ServeHTTP(rr, httptest.NewRequest(http.MethodPost, "/login", nil))
		require.Equal(t, http.StatusSeeOther, rr.Code)
		require.Equal(t, "/login", rr.Header().Get("Location"))
	})

	t.Run("htmx request gets HX-Redirect", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/login", nil)
		req.Header.Set("HX-Request", "true")
		rr := httptest.NewRecorder()
		handler.ServeHTTP(rr, req)
		require.Equal(t, http.StatusOK, rr.Code)
		require.Equal(t, "/login", rr.Header().Get("HX-Redirect"))
	})
}

func TestCSRF(t *testing.T) {
	t.Parallel()

	var token string
	handler := CSRF(CSRFConfig{CookieName: "csrf"})(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		token = CSRFTokenFromContext(r.Context())
		w.WriteHeader(http.StatusNoContent)
	}))

	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/login", nil))
	require.Equal(t, http.StatusNoContent, rr.Code)
	cookies := rr.Result().Cookies()
	require.Len(t, cookies, 1)
	cookie := cookies[0]
	require.Equal(t, "csrf", cookie.Name)
	require.Equal(t, token, cookie.Value)
	require.True(t, cookie.HttpOnly)
	require.Equal(t, http.SameSiteStrictMode, cookie.SameSite)

	t.Run("missing token is forbidden", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/login", nil)
		req.AddCookie(cookie)
		rr := httptest.NewRecorder()
		handler.ServeHTTP(rr, req)
		require.Equal(t, http.StatusForbidden, rr.Code)
	})

	t.Run("wrong header is forbidden", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/login", nil)
		req.AddCookie(cookie)
		req.Header.Set("X-CSRF-Token", "nope")
		rr := httptest.NewRecorder()
		handler.ServeHTTP(rr, req)
		require.Equal(t, http.StatusForbidden, rr.Code)
	})

	t.Run("header token passes", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/login", nil)
		req.AddCookie(cookie)
		req.Header.Set("X-CSRF-Token", cookie.Value)
		rr := httptest.NewRecorder()
		handler.ServeHTTP(rr, req)
		require.Equal(t, http.StatusNoContent, rr.Code)
	})

	t.Run("form field token passes", func(t *testing.T) {
		body := url.Values{CSRFFormField: {cookie.Value}, "email": {"a@b.cd"}}
		req := httptest.NewRequest(http.MethodPost, "/login", strings.NewReader(body.Encode()))
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
		req.AddCookie(cookie)
		rr := httptest.NewRecorder()
		handler.ServeHTTP(rr, req)
		require.Equal(t, http.StatusNoContent, rr.Code)
	})
}

func TestRequestInfoAndEnvironment(t *testing.T) {
	t.Parallel()

	var (
		path string
		env  string
	)
	handler := RequestInfoMiddleware()(Environment("  ")(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		path = RequestPathFromContext(r.Context())
		env = EnvironmentFromContext(r.Context())
	})))
	handler.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/register", nil))

	require.Equal(t, "/register", path)
	require.Equal(t, "Development", env)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	require.Empty(t, RequestPathFromContext(req.Context()))
	require.Equal(t, "Development", EnvironmentFromContext(req.Context()))

	handler = Environment("Staging")(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		env = EnvironmentFromContext(r.Context())
	}))
	handler.ServeHTTP(httptest.NewRecorder(), req)
	require.Equal(t, "Staging", env)
}

func TestNoStore(t *testing.T) {
	t.Parallel()

	rr := httptest.NewRecorder()
	NoStore()(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {})).
		ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/login", nil))
	require.Equal(t, "no-store", rr.Header().Get("Cache-Control"))
}
