package common

import (
	"context"
	"net/http"
	"strings"
)

type ctxKey string

const ctxUserID ctxKey = "user_id"

// AuthMiddleware validates the Bearer token on every request and injects the
// caller's user id into the request context. Authorization beyond identity
// (membership gates) happens in the service layer.
func AuthMiddleware(issuer *TokenIssuer) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			header := r.Header.Get("Authorization")
			if header == "" {
				http.Error(w, "authorization required", http.StatusUnauthorized)
				return
			}

			// header = "Bearer <token>"
			parts := strings.Fields(header)
			if len(parts) != 2 || strings.ToLower(parts[0]) != "bearer" {
				http.Error(w, "invalid auth header", http.StatusUnauthorized)
				return
			}

			claims, err := issuer.Validate(parts[1])
			if err != nil {
				http.Error(w, "invalid or expired token", http.StatusUnauthorized)
				return
			}

			ctx := context.WithValue(r.Context(), ctxUserID, claims.UserID)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// UserIDFromContext returns the authenticated caller's id, empty if the
// request never went through AuthMiddleware.
func UserIDFromContext(ctx context.Context) string {
	id, _ := ctx.Value(ctxUserID).(string)
	return id
}

// ContextWithUserID is used by tests and the websocket gateway, which
// authenticates outside the HTTP middleware.
func ContextWithUserID(ctx context.Context, userID string) context.Context {
	return context.WithValue(ctx, ctxUserID, userID)
}
