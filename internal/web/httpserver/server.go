package httpserver

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"

	"finitefield.org/library-web/internal/web/app"
	custommw "finitefield.org/library-web/internal/web/httpserver/middleware"
	"finitefield.org/library-web/internal/web/observability"
	"finitefield.org/library-web/public"
)

const (
	defaultReadTimeout  = 10 * time.Second
	defaultWriteTimeout = 30 * time.Second
	defaultIdleTimeout  = 60 * time.Second
	handlerTimeout      = 60 * time.Second
)

// Config holds runtime options for the HTTP server.
type Config struct {
	Address          string
	Environment      string
	App              *app.Context
	Logger           *zap.Logger
	CSRFCookieName   string
	CSRFHeaderName   string
	CSRFCookieSecure bool
	ReadTimeout      time.Duration
	WriteTimeout     time.Duration
	IdleTimeout      time.Duration
}

// New constructs the HTTP server with middleware stack and embedded assets.
func New(cfg Config) *http.Server {
	logger := cfg.Logger
	if logger == nil && cfg.App != nil {
		logger = cfg.App.Logger
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	application := cfg.App
	if application == nil {
		application = app.New(app.Options{Logger: logger})
	}

	router := chi.NewRouter()
	router.Use(chimw.RequestID)
	router.Use(chimw.RealIP)
	router.Use(observability.RequestLogger(logger))
	router.Use(chimw.Recoverer)
	router.Use(chimw.Timeout(handlerTimeout))

	staticContent, err := public.StaticFS()
	if err != nil {
		logger.Fatal("embed static", zap.Error(err))
	}
	router.Handle("/public/static/*", http.StripPrefix("/public/static/", http.FileServer(http.FS(staticContent))))
	router.Get("/healthz", healthz)
	router.Method(http.MethodGet, "/metrics", application.Metrics.Handler())

	mountPageRoutes(router, application, routeOptions{
		Environment: cfg.Environment,
		CSRF: custommw.CSRFConfig{
			CookieName: cfg.CSRFCookieName,
			HeaderName: cfg.CSRFHeaderName,
			Secure:     cfg.CSRFCookieSecure,
		},
	})

	return &http.Server{
		Addr:         cfg.Address,
		Handler:      router,
		ReadTimeout:  durationOr(cfg.ReadTimeout, defaultReadTimeout),
		WriteTimeout: durationOr(cfg.WriteTimeout, defaultWriteTimeout),
		IdleTimeout:  durationOr(cfg.IdleTimeout, defaultIdleTimeout),
	}
}

type routeOptions struct {
	Environment string
	CSRF        custommw.CSRFConfig
}

func mountPageRoutes(router chi.Router, application *app.Context, opts routeOptions) {
	handlers := newAuthHandlers(application)

	router.Group(func(r chi.Router) {
		r.Use(custommw.HTMX())
		r.Use(custommw.NoStore())
		r.Use(custommw.RequestInfoMiddleware())
		r.Use(custommw.Environment(opts.Environment))
		r.Use(custommw.CSRF(opts.CSRF))

		r.Get("/login", handlers.LoginForm)
		r.Post("/login", handlers.LoginSubmit)
		r.Get("/register", handlers.RegisterForm)
		r.Post("/register", handlers.RegisterSubmit)
	})
}

func healthz(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Cache-Control", "no-store")
	if err := json.NewEncoder(w).Encode(map[string]string{"status": "ok"}); err != nil {
		observability.FromContext(r.Context()).Warn("write health response", zap.Error(err))
	}
}

func durationOr(value, fallback time.Duration) time.Duration {
	if value <= 0 {
		return fallback
	}
	return value
}
