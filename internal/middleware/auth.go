package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/favmov/favmov-go/internal/crypto"
	"github.com/favmov/favmov-go/internal/httperr"
)

type contextKey string

const authUserKey contextKey = "authUser"

// AuthUser holds the identity decoded from a session token.
type AuthUser struct {
	ID    int64
	Email string
}

// JWTAuth returns middleware that validates a Bearer token from the
// Authorization header and attaches the decoded identity to the request
// context.
func JWTAuth(secret string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			authHeader := r.Header.Get("Authorization")
			if authHeader == "" {
				httperr.Write(w, httperr.Unauthorized("you are not logged in. Please log in to get access."))
				return
			}

			token, found := strings.CutPrefix(authHeader, "Bearer ")
			if !found || token == "" {
				httperr.Write(w, httperr.Unauthorized("you are not logged in. Please log in to get access."))
				return
			}

			claims, err := crypto.ValidateToken(token, secret)
			if err != nil {
				httperr.Write(w, httperr.Unauthorized("invalid token. Please log in again."))
				return
			}

			user := AuthUser{ID: claims.UserID, Email: claims.Email}
			ctx := context.WithValue(r.Context(), authUserKey, user)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// UserFromContext extracts the authenticated user from the request context.
func UserFromContext(ctx context.Context) (AuthUser, bool) {
	user, ok := ctx.Value(authUserKey).(AuthUser)
	return user, ok
}
