package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/zatekoja/hospitalservices/internal/domain/entities"
	"github.com/zatekoja/hospitalservices/internal/infrastructure/observability"
	"github.com/zatekoja/hospitalservices/pkg/auth"
	apperrors "github.com/zatekoja/hospitalservices/pkg/errors"
)

type claimsKey struct{}

// TokenParser verifies bearer tokens
type TokenParser interface {
	Parse(token string) (*auth.Claims, error)
}

// WithClaims stores the caller's identity in ctx
func WithClaims(ctx context.Context, claims *auth.Claims) context.Context {
	return context.WithValue(ctx, claimsKey{}, claims)
}

// ClaimsFromContext returns the caller's identity, if any
func ClaimsFromContext(ctx context.Context) (*auth.Claims, bool) {
	claims, ok := ctx.Value(claimsKey{}).(*auth.Claims)
	return claims, ok && claims != nil
}

// UserFromContext returns the caller as a user projection, or nil
func UserFromContext(ctx context.Context) *entities.User {
	claims, ok := ClaimsFromContext(ctx)
	if !ok {
		return nil
	}
	return claims.User()
}

// Authenticator resolves bearer tokens into caller identities
type Authenticator struct {
	tokens TokenParser
}

// NewAuthenticator creates a new authenticator
func NewAuthenticator(tokens TokenParser) *Authenticator {
	return &Authenticator{tokens: tokens}
}

// RequireAuth rejects requests without a valid bearer token
func (a *Authenticator) RequireAuth(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, appErr := a.identify(r)
		if appErr != nil {
			writeError(w, appErr)
			return
		}
		ctx := WithClaims(r.Context(), claims)
		ctx = observability.WithLogField(ctx, "user_id", claims.Subject)
		next(w, r.WithContext(ctx))
	}
}

// RequireAdmin rejects requests whose token lacks the admin role
func (a *Authenticator) RequireAdmin(next http.HandlerFunc) http.HandlerFunc {
	return a.RequireAuth(func(w http.ResponseWriter, r *http.Request) {
		claims, _ := ClaimsFromContext(r.Context())
		if !claims.IsAdmin() {
			writeError(w, apperrors.NewForbiddenError("you do not have permission to perform this action"))
			return
		}
		next(w, r)
	})
}

func (a *Authenticator) identify(r *http.Request) (*auth.Claims, *apperrors.AppError) {
	header := r.Header.Get("Authorization")
	if !strings.HasPrefix(header, "Bearer ") {
		return nil, apperrors.NewUnauthorizedError("authentication credentials were not provided")
	}

	claims, err := a.tokens.Parse(strings.TrimPrefix(header, "Bearer "))
	if err != nil {
		observability.LoggerFromContext(r.Context()).Debug().Err(err).Msg("rejected bearer token")
		return nil, apperrors.NewUnauthorizedError("invalid or expired token")
	}
	return claims, nil
}
