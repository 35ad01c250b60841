package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/fictus/bookstore/internal/infrastructure/persistence/redis"
	gql "github.com/fictus/bookstore/internal/interface/graphql"
	"github.com/fictus/bookstore/pkg/jwt"
	"github.com/fictus/bookstore/pkg/logger"
)

// AuthMiddleware verifies bearer tokens and injects the identity into the
// request context. Requests without a token pass through anonymously; the
// GraphQL resolvers decide per operation whether authentication is required.
type AuthMiddleware struct {
	jwtManager   *jwt.Manager
	sessionStore *redis.SessionStore
}

// NewAuthMiddleware creates the auth middleware.
func NewAuthMiddleware(jwtManager *jwt.Manager, sessionStore *redis.SessionStore) *AuthMiddleware {
	return &AuthMiddleware{
		jwtManager:   jwtManager,
		sessionStore: sessionStore,
	}
}

// Identify parses the Authorization header if present. Invalid, expired or
// blacklisted tokens leave the request anonymous rather than rejecting it;
// protected operations then fail with a not-authenticated error.
func (m *AuthMiddleware) Identify() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.Next()
			return
		}

		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || parts[0] != "Bearer" {
			c.Next()
			return
		}
		token := parts[1]

		blacklisted, err := m.sessionStore.IsInBlacklist(c.Request.Context(), token)
		if err != nil {
			logger.L.Warnw("blacklist check failed", "error", err)
			c.Next()
			return
		}
		if blacklisted {
			c.Next()
			return
		}

		claims, err := m.jwtManager.ParseToken(token)
		if err != nil {
			c.Next()
			return
		}

		ctx := gql.WithIdentity(c.Request.Context(), claims, token)
		c.Request = c.Request.WithContext(ctx)
		c.Next()
	}
}
