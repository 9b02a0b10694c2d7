package handler

import (
	"context"
	"net/http"
	"strings"

	"github.com/NazmulIslam95/matchMingle-server/internal/models"
	"github.com/NazmulIslam95/matchMingle-server/internal/service"

	"github.com/golang-jwt/jwt/v5"
)

type ctxKey string

const (
	CtxEmail  ctxKey = "email"
	CtxClaims ctxKey = "claims"
)

// JWTAuth returns a middleware that validates the bearer token and puts the
// caller's email and full claims into the request context.
func JWTAuth(tokens *service.TokenService) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			authHeader := r.Header.Get("Authorization")
			if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
				http.Error(w, "missing or invalid Authorization header", http.StatusUnauthorized)
				return
			}

			claims, err := tokens.Verify(strings.TrimPrefix(authHeader, "Bearer "))
			if err != nil {
				http.Error(w, "invalid token", http.StatusUnauthorized)
				return
			}

			email, _ := claims["email"].(string)
			if email == "" {
				http.Error(w, "invalid email in token", http.StatusUnauthorized)
				return
			}

			ctx := context.WithValue(r.Context(), CtxEmail, email)
			ctx = context.WithValue(ctx, CtxClaims, claims)

			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

type userFinder interface {
	FindByEmail(ctx context.Context, email string) (*models.UserDoc, error)
}

// AdminOnly only lets through callers whose stored account holds the admin
// role. The role is read from the store, not the token, so a promotion or
// stale claim never matters.
func AdminOnly(users userFinder) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			u, err := users.FindByEmail(r.Context(), EmailFromContext(r.Context()))
			if err != nil {
				http.Error(w, err.Error(), http.StatusInternalServerError)
				return
			}
			if !u.IsAdmin() {
				http.Error(w, "admin only", http.StatusForbidden)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

// EmailFromContext returns the verified caller email, "" if unauthenticated.
func EmailFromContext(ctx context.Context) string {
	if v, ok := ctx.Value(CtxEmail).(string); ok {
		return v
	}
	return ""
}

// ClaimsFromContext returns the verified token claims.
func ClaimsFromContext(ctx context.Context) jwt.MapClaims {
	if v, ok := ctx.Value(CtxClaims).(jwt.MapClaims); ok {
		return v
	}
	return nil
}
