package testutil

import (
	"net/http/httptest"
	"testing"

	"go.uber.org/zap"

	"finitefield.org/library-web/internal/web/app"
	"finitefield.org/library-web/internal/web/httpserver"
)

// ServerOption customises the HTTP server configuration for tests.
type ServerOption func(*httpserver.Config)

// WithApp wires a caller-owned application context so tests can inspect the
// auth state store and metrics.
func WithApp(application *app.Context) ServerOption {
	return func(cfg *httpserver.Config) {
		cfg.App = application
	}
}

// WithLogger overrides the request logger.
func WithLogger(logger *zap.Logger) ServerOption {
	return func(cfg *httpserver.Config) {
		cfg.Logger = logger
	}
}

// WithEnvironment sets the environment label rendered in the navbar.
func WithEnvironment(env string) ServerOption {
	return func(cfg *httpserver.Config) {
		cfg.Environment = env
	}
}

// NewServer constructs an httptest server running the HTTP stack with sensible defaults.
func NewServer(t testing.TB, opts ...ServerOption) *httptest.Server {
	t.Helper()

	cfg := httpserver.Config{
		Address:        ":0",
		Environment:    "Test",
		CSRFCookieName: "csrf_token",
		CSRFHeaderName: "X-CSRF-Token",
	}

	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.App == nil {
		cfg.App = app.New(app.Options{Logger: cfg.Logger})
		t.Cleanup(cfg.App.Close)
	}

	srv := httpserver.New(cfg)
	ts := httptest.NewServer(srv.Handler)
	t.Cleanup(ts.Close)
	return ts
}
