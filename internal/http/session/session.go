// Package session resolves the current actor for each request. Credential
// verification belongs to the external login provider; this layer only
// translates its session header into a user record.
package session

import (
	"context"
	"net/http"
	"strconv"

	"github.com/wimdy/wimdy/internal/domain"
	"github.com/wimdy/wimdy/internal/repository"
)

type actorKey struct{}

// Middleware loads the user identified by the X-User-ID header, if any,
// into the request context. Unknown or absent IDs leave the request
// anonymous rather than failing it; individual operations decide whether
// they require authentication.
func Middleware(users repository.UserStore) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if raw := r.Header.Get("X-User-ID"); raw != "" {
				if id, err := strconv.ParseUint(raw, 10, 32); err == nil {
					if user, err := users.UserByID(r.Context(), uint(id)); err == nil {
						ctx := context.WithValue(r.Context(), actorKey{}, user)
						r = r.WithContext(ctx)
					}
				}
			}
			next.ServeHTTP(w, r)
		})
	}
}

// ActorFrom returns the authenticated user for this request, or nil for an
// anonymous visitor.
func ActorFrom(ctx context.Context) *domain.User {
	actor, _ := ctx.Value(actorKey{}).(*domain.User)
	return actor
}

// IsAuthenticated reports whether the request carries a signed-in actor.
func IsAuthenticated(ctx context.Context) bool {
	return ActorFrom(ctx) != nil
}
