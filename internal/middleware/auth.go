package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/diskusi-dev/diskusi/internal/domain"
	internal_jwt "github.com/diskusi-dev/diskusi/internal/jwt"
	"github.com/diskusi-dev/diskusi/internal/utils"
)

// Key to store the authenticated user in the request context
type key int

const userClaimsKey key = 0

// NeedAuth verifies the bearer token and stores the caller as a *domain.User
// in the request context. Everything past this middleware can assume an
// authenticated identity.
func NeedAuth(jwtService internal_jwt.Service) func(http.HandlerFunc) http.HandlerFunc {
	return func(next http.HandlerFunc) http.HandlerFunc {
		return func(w http.ResponseWriter, r *http.Request) {
			header := r.Header.Get("Authorization")
			if header == "" {
				http.Error(w, "Missing authentication", http.StatusUnauthorized)
				return
			}
			tokenStr, found := strings.CutPrefix(header, "Bearer ")
			if !found {
				http.Error(w, "Missing authentication", http.StatusUnauthorized)
				return
			}

			claims, err := jwtService.DecodeToken(tokenStr)
			if err != nil {
				utils.WriteErrorAndStatusCode(w, err)
				return
			}

			uid, _ := claims["uid"].(string)
			if uid == "" {
				http.Error(w, "Invalid access token", http.StatusUnauthorized)
				return
			}
			username, _ := claims["username"].(string)

			user := &domain.User{Id: uid, Username: username}
			ctx := context.WithValue(r.Context(), userClaimsKey, user)
			next(w, r.WithContext(ctx))
		}
	}
}

// GetUserFromContext returns the authenticated user, or nil when the request
// did not pass through NeedAuth.
func GetUserFromContext(r *http.Request) *domain.User {
	user, ok := r.Context().Value(userClaimsKey).(*domain.User)
	if !ok {
		return nil
	}
	return user
}

// WithUser injects a user into the request context the same way NeedAuth
// does. Exposed for handler tests.
func WithUser(r *http.Request, user *domain.User) *http.Request {
	return r.WithContext(context.WithValue(r.Context(), userClaimsKey, user))
}
