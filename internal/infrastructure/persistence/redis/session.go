package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	apperrors "github.com/fictus/bookstore/pkg/errors"
)

// SessionStore keeps login sessions and the revoked-token blacklist in redis.
// Keys: session:{user_id}, blacklist:{token}.
type SessionStore struct {
	client *redis.Client
}

// NewSessionStore creates the session store.
func NewSessionStore(client *redis.Client) *SessionStore {
	return &SessionStore{client: client}
}

// SaveSession stores the session fields with the given TTL.
func (s *SessionStore) SaveSession(ctx context.Context, userID uint, sessionData map[string]interface{}, ttl time.Duration) error {
	key := fmt.Sprintf("session:%d", userID)

	if err := s.client.HSet(ctx, key, sessionData).Err(); err != nil {
		return apperrors.Wrap(err, "failed to save session")
	}
	if err := s.client.Expire(ctx, key, ttl).Err(); err != nil {
		return apperrors.Wrap(err, "failed to set session expiry")
	}
	return nil
}

// GetSession returns the session fields, or ErrUnauthenticated if none exist.
func (s *SessionStore) GetSession(ctx context.Context, userID uint) (map[string]string, error) {
	key := fmt.Sprintf("session:%d", userID)

	result, err := s.client.HGetAll(ctx, key).Result()
	if err != nil {
		return nil, apperrors.Wrap(err, "failed to get session")
	}
	if len(result) == 0 {
		return nil, apperrors.ErrUnauthenticated
	}
	return result, nil
}

// DeleteSession removes the session on logout.
func (s *SessionStore) DeleteSession(ctx context.Context, userID uint) error {
	key := fmt.Sprintf("session:%d", userID)

	if err := s.client.Del(ctx, key).Err(); err != nil {
		return apperrors.Wrap(err, "failed to delete session")
	}
	return nil
}

// AddToBlacklist revokes a token until its natural expiry. JWTs are stateless;
// the blacklist is how logout takes effect before the token runs out.
func (s *SessionStore) AddToBlacklist(ctx context.Context, token string, ttl time.Duration) error {
	key := fmt.Sprintf("blacklist:%s", token)

	if err := s.client.Set(ctx, key, "revoked", ttl).Err(); err != nil {
		return apperrors.Wrap(err, "failed to blacklist token")
	}
	return nil
}

// IsInBlacklist reports whether the token has been revoked.
func (s *SessionStore) IsInBlacklist(ctx context.Context, token string) (bool, error) {
	key := fmt.Sprintf("blacklist:%s", token)

	exists, err := s.client.Exists(ctx, key).Result()
	if err != nil {
		return false, apperrors.Wrap(err, "failed to check blacklist")
	}
	return exists > 0, nil
}
