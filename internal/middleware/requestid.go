package middleware

import (
	"context"
	"net/http"

	"recipehub-admin-api/pkg/uid"
)

// contextKey is a custom type for context keys to avoid collisions.
type contextKey string

// TraceIDKey is the context key for the per-request trace ID. This is the
// HTTP-level correlation ID, unrelated to the REQ_<N> identifiers workflow
// requests carry.
const TraceIDKey contextKey = "trace_id"

// RequestID is a middleware that adds a unique trace ID to each request.
func RequestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		traceID := r.Header.Get("X-Request-ID")
		if traceID == "" {
			traceID = uid.New()
		}

		w.Header().Set("X-Request-ID", traceID)

		ctx := context.WithValue(r.Context(), TraceIDKey, traceID)

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// GetTraceID retrieves the trace ID from context.
func GetTraceID(ctx context.Context) string {
	if id, ok := ctx.Value(TraceIDKey).(string); ok {
		return id
	}
	return ""
}
