package middleware

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"bistro-boss/models"
	"bistro-boss/store"
	"bistro-boss/utils"

	"github.com/rs/zerolog"
)

// Key type for context
type contextKey string

const UserContextKey = contextKey("user")

const (
	msgUnauthorized = "Unauthorized Access"
	msgForbidden    = "Forbidden Access"
)

// TokenVerifier decodes a bearer token into identity claims.
type TokenVerifier interface {
	ParseJWT(token string) (*utils.Claims, error)
}

// UserFinder looks up the stored user record for an email.
type UserFinder interface {
	FindUserByEmail(ctx context.Context, email string) (*models.User, error)
}

// ClaimsFromContext returns the claims attached by Auth.
func ClaimsFromContext(ctx context.Context) (*utils.Claims, bool) {
	claims, ok := ctx.Value(UserContextKey).(*utils.Claims)
	return claims, ok && claims != nil
}

// WithClaims attaches claims to ctx the way Auth does.
func WithClaims(ctx context.Context, claims *utils.Claims) context.Context {
	return context.WithValue(ctx, UserContextKey, claims)
}

// Auth verifies the bearer token and attaches its claims to the context.
func Auth(verifier TokenVerifier, logger zerolog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			authHeader := r.Header.Get("Authorization")
			if authHeader == "" {
				logger.Debug().Str("path", r.URL.Path).Msg("authorization header missing")
				utils.WriteError(w, http.StatusUnauthorized, msgUnauthorized)
				return
			}

			parts := strings.Fields(authHeader)
			if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
				logger.Debug().Str("path", r.URL.Path).Msg("malformed authorization header")
				utils.WriteError(w, http.StatusUnauthorized, msgUnauthorized)
				return
			}

			claims, err := verifier.ParseJWT(parts[1])
			if err != nil {
				logger.Warn().Str("path", r.URL.Path).Msg("invalid token")
				utils.WriteError(w, http.StatusUnauthorized, msgUnauthorized)
				return
			}

			next.ServeHTTP(w, r.WithContext(WithClaims(r.Context(), claims)))
		})
	}
}

// RequireAdmin must run after Auth. It reads the caller's user record on
// every request and lets only role=admin through.
func RequireAdmin(users UserFinder, logger zerolog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			claims, ok := ClaimsFromContext(r.Context())
			if !ok {
				utils.WriteError(w, http.StatusUnauthorized, msgUnauthorized)
				return
			}

			user, err := users.FindUserByEmail(r.Context(), claims.Email)
			if err != nil && !errors.Is(err, store.ErrNotFound) {
				logger.Error().Err(err).Str("email", claims.Email).Msg("admin lookup failed")
				utils.WriteError(w, http.StatusInternalServerError, "failed to verify role")
				return
			}

			if !user.IsAdmin() {
				logger.Warn().Str("email", claims.Email).Str("path", r.URL.Path).Msg("non-admin denied")
				utils.WriteError(w, http.StatusForbidden, msgForbidden)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
