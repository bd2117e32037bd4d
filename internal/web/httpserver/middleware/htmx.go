package middleware

import (
	"context"
	"net/http"
	"strings"
)

type contextKey string

const htmxContextKey contextKey = "htmx.info"

// HTMXInfo captures the HX-* request headers the form handlers care about.
type HTMXInfo struct {
	IsHTMX      bool
	Target      string
	TriggerID   string
	TriggerName string
}

// HTMX inspects HX-* headers and annotates the context. Responses vary on
// HX-Request because the same route answers with a page or a fragment.
func HTMX() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			info := HTMXInfo{
				IsHTMX:      strings.EqualFold(r.Header.Get("HX-Request"), "true"),
				Target:      r.Header.Get("HX-Target"),
				TriggerID:   r.Header.Get("HX-Trigger"),
				TriggerName: r.Header.Get("HX-Trigger-Name"),
			}
			w.Header().Add("Vary", "HX-Request")

			ctx := context.WithValue(r.Context(), htmxContextKey, info)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// HTMXInfoFromContext retrieves HTMX metadata; returns zero value if absent.
func HTMXInfoFromContext(ctx context.Context) HTMXInfo {
	val, ok := ctx.Value(htmxContextKey).(HTMXInfo)
	if !ok {
		return HTMXInfo{}
	}
	return val
}

// IsHTMXRequest returns true when the current request was initiated by htmx.
func IsHTMXRequest(ctx context.Context) bool {
	return HTMXInfoFromContext(ctx).IsHTMX
}

// Redirect sends the browser to location. htmx requests get an HX-Redirect
// header so the client performs a full navigation instead of swapping.
func Redirect(w http.ResponseWriter, r *http.Request, location string) {
	if IsHTMXRequest(r.Context()) {
		w.Header().Set("HX-Redirect", location)
		w.WriteHeader(http.StatusOK)
		return
	}
	http.Redirect(w, r, location, http.StatusSeeOther)
}
