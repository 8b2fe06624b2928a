package middleware

import (
	"context"
	"net/http"

	"github.com/KIBUTI-SOFTWARE/swahili-api/internal/entities"
	"github.com/KIBUTI-SOFTWARE/swahili-api/pkg/utils"
)

const (
	userIDHeader   = "X-User-Id"
	userRoleHeader = "X-User-Role"
)

type actorKey struct{}

// Auth extracts the authenticated principal set by the upstream gateway.
// Token verification happens there; this service only consumes the result.
func Auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		userID := r.Header.Get(userIDHeader)
		if userID == "" {
			utils.WriteError(w, http.StatusUnauthorized, "Authentication required")
			return
		}

		actor := entities.Actor{
			ID:   userID,
			Role: entities.UserRole(r.Header.Get(userRoleHeader)),
		}

		ctx := context.WithValue(r.Context(), actorKey{}, actor)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func ActorFromContext(ctx context.Context) (entities.Actor, bool) {
	actor, ok := ctx.Value(actorKey{}).(entities.Actor)
	return actor, ok
}
