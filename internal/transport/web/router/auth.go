package router

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/jbeshir/forum-vote-sync/internal/datasources"
	"github.com/jbeshir/forum-vote-sync/internal/domain"
)

// NewSessionMiddleware tags each request with a request id and, when someone is logged in,
// with the session's user id.
func NewSessionMiddleware(session datasources.CurrentUserIDGetter) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx, _ := domain.ContextWithLogAttrs(r.Context(),
				"request_id", uuid.New().String(),
				"method", r.Method,
				"path", r.URL.Path,
			)

			if userID := session.CurrentUserID(); userID != "" {
				ctx = domain.ContextWithUserID(ctx, userID)
				ctx, _ = domain.ContextWithLogAttrs(ctx, "user_id", userID)
			}

			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
