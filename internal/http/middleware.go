package http

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/abuhuraira-73/chromaic-backend/internal/domain"
)

type contextKey string

const (
	principalKey contextKey = "principal"
	requestIDKey contextKey = "request_id"
)

// Authenticator turns a bearer token into a Principal.
// Consumers define this interface; service.TokenAuthenticator satisfies it.
type Authenticator interface {
	Authenticate(ctx context.Context, token string) (*domain.Principal, error)
}

// AuthMiddleware rejects requests without a resolvable bearer token and
// attaches the Principal to the request context.
func AuthMiddleware(auth Authenticator) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			header := r.Header.Get("Authorization")
			token, ok := strings.CutPrefix(header, "Bearer ")
			if !ok || token == "" {
				respondError(w, http.StatusUnauthorized, "unauthorized", "not authorized, no token")
				return
			}

			principal, err := auth.Authenticate(r.Context(), token)
			if err != nil {
				respondError(w, http.StatusUnauthorized, "unauthorized", "not authorized, token failed")
				return
			}

			ctx := context.WithValue(r.Context(), principalKey, principal)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// RequireAdmin guards admin-only routes. Must run after AuthMiddleware.
func RequireAdmin(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		principal := principalFromContext(r.Context())
		if principal == nil {
			respondError(w, http.StatusUnauthorized, "unauthorized", "not authorized, no token")
			return
		}
		if !principal.IsAdmin {
			respondError(w, http.StatusForbidden, "forbidden", "not authorized as an admin")
			return
		}
		next.ServeHTTP(w, r)
	})
}

// RequestIDMiddleware adds a unique request ID to each request
func RequestIDMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestID := r.Header.Get("X-Request-ID")
		if requestID == "" {
			requestID = fmt.Sprintf("req-%d", time.Now().UnixNano())
		}

		ctx := context.WithValue(r.Context(), requestIDKey, requestID)
		w.Header().Set("X-Request-ID", requestID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func principalFromContext(ctx context.Context) *domain.Principal {
	if principal, ok := ctx.Value(principalKey).(*domain.Principal); ok {
		return principal
	}
	return nil
}
