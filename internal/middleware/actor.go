package middleware

import (
	"context"
	"net/http"
	"strings"
)

// ActorKey is the context key for the requester identity.
const ActorKey contextKey = "actor"

// DefaultActor is used when the caller does not identify itself.
const DefaultActor = "system"

// Actor captures the requester identity from the X-Requested-By header into
// the request context. This is attribution for the audit trail, not
// authentication: the console has no auth layer and the value is trusted
// as-is.
func Actor(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		actor := strings.TrimSpace(r.Header.Get("X-Requested-By"))
		if actor == "" {
			actor = DefaultActor
		}

		ctx := context.WithValue(r.Context(), ActorKey, actor)

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// GetActor retrieves the requester identity from context.
func GetActor(ctx context.Context) string {
	if actor, ok := ctx.Value(ActorKey).(string); ok && actor != "" {
		return actor
	}
	return DefaultActor
}
