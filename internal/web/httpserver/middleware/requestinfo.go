package middleware

import (
	"context"
	"net/http"
)

type requestInfoKeyType int

const requestInfoKey requestInfoKeyType = iota

// RequestInfo holds the request metadata the layout needs to mark the active
// navbar link.
type RequestInfo struct {
	Path   string
	Method string
}

// RequestInfoMiddleware annotates the context with the current request path.
func RequestInfoMiddleware() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			info := &RequestInfo{
				Path:   r.URL.Path,
				Method: r.Method,
			}
			ctx := context.WithValue(r.Context(), requestInfoKey, info)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// RequestInfoFromContext returns the request metadata stored by RequestInfoMiddleware.
func RequestInfoFromContext(ctx context.Context) (*RequestInfo, bool) {
	info, ok := ctx.Value(requestInfoKey).(*RequestInfo)
	return info, ok && info != nil
}

// RequestPathFromContext returns the request path or empty string when unavailable.
func RequestPathFromContext(ctx context.Context) string {
	if info, ok := RequestInfoFromContext(ctx); ok {
		return info.Path
	}
	return ""
}
