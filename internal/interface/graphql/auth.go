package graphql

import (
	"context"

	"github.com/fictus/bookstore/internal/domain/user"
	apperrors "github.com/fictus/bookstore/pkg/errors"
	"github.com/fictus/bookstore/pkg/jwt"
)

type contextKey int

const (
	claimsKey contextKey = iota
	tokenKey
)

// WithIdentity attaches the verified claims and raw token to the request
// context. The auth middleware calls this; resolvers read it back.
func WithIdentity(ctx context.Context, claims *jwt.Claims, token string) context.Context {
	ctx = context.WithValue(ctx, claimsKey, claims)
	return context.WithValue(ctx, tokenKey, token)
}

// ClaimsFrom returns the authenticated claims, ok=false for anonymous
// requests.
func ClaimsFrom(ctx context.Context) (*jwt.Claims, bool) {
	claims, ok := ctx.Value(claimsKey).(*jwt.Claims)
	return claims, ok
}

// TokenFrom returns the raw access token of the request.
func TokenFrom(ctx context.Context) (string, bool) {
	token, ok := ctx.Value(tokenKey).(string)
	return token, ok
}

// requireAuth returns the claims or ErrUnauthenticated.
func requireAuth(ctx context.Context) (*jwt.Claims, error) {
	claims, ok := ClaimsFrom(ctx)
	if !ok {
		return nil, apperrors.ErrUnauthenticated
	}
	return claims, nil
}

// requireRole returns the claims if the caller holds one of the roles.
func requireRole(ctx context.Context, roles ...user.Role) (*jwt.Claims, error) {
	claims, err := requireAuth(ctx)
	if err != nil {
		return nil, err
	}
	for _, role := range roles {
		if claims.Role == string(role) {
			return claims, nil
		}
	}
	return nil, apperrors.ErrForbidden
}
