package middleware

import (
	"context"
	"net/http"

	"github.com/talkboard-dev/talkboard/shared/domain"
	"github.com/talkboard-dev/talkboard/shared/utils"
)

// TokenHeader carries the opaque bearer token issued on register/login.
const TokenHeader = "X-Auth-Token"

// Resolver maps a bearer token to the user it was issued to.
// A nil user with nil error means "no identity".
type Resolver interface {
	Resolve(token string) (*domain.User, error)
}

// Key to store the resolved user in the request context
type key int

const userKey key = 0

// NeedAuth resolves the X-Auth-Token header and rejects the request with a
// 401 unless it maps to a known, unexpired token.
func NeedAuth(resolver Resolver) func(http.HandlerFunc) http.HandlerFunc {
	return func(next http.HandlerFunc) http.HandlerFunc {
		return func(w http.ResponseWriter, r *http.Request) {
			user, err := resolver.Resolve(r.Header.Get(TokenHeader))
			if err != nil {
				utils.WriteError(w, err)
				return
			}
			if user == nil {
				utils.WriteErrorMessage(w, "Unauthorized", http.StatusUnauthorized)
				return
			}

			next(w, WithUser(r, user))
		}
	}
}

// WithUser returns a shallow copy of r with user attached to its context.
func WithUser(r *http.Request, user *domain.User) *http.Request {
	return r.WithContext(context.WithValue(r.Context(), userKey, user))
}

// GetUserFromContext returns the resolved user, or nil outside NeedAuth.
func GetUserFromContext(r *http.Request) *domain.User {
	user, ok := r.Context().Value(userKey).(*domain.User)
	if !ok {
		return nil
	}
	return user
}
