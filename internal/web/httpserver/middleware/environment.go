package middleware

import (
	"context"
	"net/http"
	"strings"
)

const defaultEnvironment = "Development"

type environmentContextKey struct{}

// Environment attaches the deployment environment label to the request
// context so the layout can render an environment badge.
func Environment(value string) func(http.Handler) http.Handler {
	label := strings.TrimSpace(value)
	if label == "" {
		label = defaultEnvironment
	}
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := context.WithValue(r.Context(), environmentContextKey{}, label)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// EnvironmentFromContext returns the environment label for the request,
// defaulting to "Development".
func EnvironmentFromContext(ctx context.Context) string {
	if value, ok := ctx.Value(environmentContextKey{}).(string); ok && value != "" {
		return value
	}
	return defaultEnvironment
}
