// AngelaMos | 2026
// identity.go

package middleware

import (
	"context"
	"errors"
	"net/http"

	"github.com/connectvault/connectvault/internal/core"
)

const UserIDKey contextKey = "user_id"

// UserIDResolver maps a verified token subject to the stored user identity.
type UserIDResolver interface {
	ResolveUserID(ctx context.Context, username string) (string, error)
}

// ResolveUser runs after Authenticator and turns the token subject into the
// owning user id. A subject whose account no longer exists fails closed as
// Unauthorized: a token is only as alive as its user.
func ResolveUser(resolver UserIDResolver) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			username := GetUsername(r.Context())
			if username == "" {
				core.JSONError(
					w,
					core.UnauthorizedError("authentication required"),
				)
				return
			}

			userID, err := resolver.ResolveUserID(r.Context(), username)
			if err != nil {
				if errors.Is(err, core.ErrNotFound) {
					core.JSONError(
						w,
						core.UnauthorizedError("could not validate credentials"),
					)
					return
				}
				core.InternalServerError(w, err)
				return
			}

			ctx := context.WithValue(r.Context(), UserIDKey, userID)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func GetUserID(ctx context.Context) string {
	if id, ok := ctx.Value(UserIDKey).(string); ok {
		return id
	}
	return ""
}
