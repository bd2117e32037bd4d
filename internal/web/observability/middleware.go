package observability

import (
	"net/http"
	"time"
	"unicode"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"
)

// RequestLogger attaches a request-scoped logger to the context and logs each
// completed request. 4xx responses log at warn, 5xx at error.
func RequestLogger(logger *zap.Logger) func(http.Handler) http.Handler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			reqLogger := logger.With(
				zap.String("request_id", middleware.GetReqID(r.Context())),
				zap.String("method", sanitize(r.Method, 10)),
				zap.String("path", sanitize(r.URL.Path, 180)),
			)
			r = r.WithContext(WithLogger(r.Context(), reqLogger))

			ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
			start := time.Now()
			defer func() {
				status := ww.Status()
				if status == 0 {
					status = http.StatusOK
				}
				fields := []zap.Field{
					zap.String("route", routePattern(r)),
					zap.Int("status", status),
					zap.Duration("latency", time.Since(start)),
					zap.Int("bytes", ww.BytesWritten()),
					zap.Bool("htmx", r.Header.Get("HX-Request") == "true"),
				}
				switch {
				case status >= http.StatusInternalServerError:
					reqLogger.Error("request completed", fields...)
				case status >= http.StatusBadRequest:
					reqLogger.Warn("request completed", fields...)
				default:
					reqLogger.Info("request completed", fields...)
				}
			}()

			next.ServeHTTP(ww, r)
		})
	}
}

func routePattern(r *http.Request) string {
	if rctx := chi.RouteContext(r.Context()); rctx != nil {
		if pattern := rctx.RoutePattern(); pattern != "" {
			return pattern
		}
	}
	return sanitize(r.URL.Path, 180)
}

// sanitize drops control characters and caps the length to avoid log injection.
func sanitize(value string, limit int) string {
	cleaned := make([]rune, 0, len(value))
	for _, r := range value {
		if unicode.IsControl(r) {
			continue
		}
		cleaned = append(cleaned, r)
	}
	if len(cleaned) > limit {
		cleaned = cleaned[:limit]
	}
	return string(cleaned)
}
