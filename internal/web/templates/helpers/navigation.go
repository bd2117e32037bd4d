package helpers

import (
	"context"
	"strings"

	"finitefield.org/library-web/internal/web/httpserver/middleware"
)

// RequestPath returns the current request URL path for template helpers.
func RequestPath(ctx context.Context) string {
	return normalizeRoute(middleware.RequestPathFromContext(ctx))
}

// NavClass returns navbar link classes.
func NavClass(active bool) string {
	if active {
		return "navbar__link navbar__link--active"
	}
	return "navbar__link"
}

// EnvironmentClass returns the badge modifier for an environment label.
func EnvironmentClass(env string) string {
	switch strings.ToLower(strings.TrimSpace(env)) {
	case "production", "prod":
		return "badge badge--production"
	case "staging", "stg":
		return "badge badge--staging"
	default:
		return "badge badge--development"
	}
}

func normalizeRoute(path string) string {
	path = strings.TrimSpace(path)
	if path == "" {
		return "/"
	}
	if !strings.HasPrefix(path, "/") {
		path = "/" + path
	}
	for strings.Contains(path, "//") {
		path = strings.ReplaceAll(path, "//", "/")
	}
	if len(path) > 1 {
		path = strings.TrimRight(path, "/")
		if path == "" {
			return "/"
		}
	}
	return path
}
