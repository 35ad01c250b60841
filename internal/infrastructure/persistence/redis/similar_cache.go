package redis

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	apperrors "github.com/fictus/bookstore/pkg/errors"
)

// similarKeyPrefix namespaces the cached rankings so Invalidate can drop them
// without touching sessions.
const similarKeyPrefix = "similar:"

// SimilarCache caches ranked similar-book id lists. Entries expire after the
// configured TTL and are dropped wholesale whenever the catalog changes.
type SimilarCache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewSimilarCache creates the cache. A zero ttl defaults to five minutes.
func NewSimilarCache(client *redis.Client, ttl time.Duration) *SimilarCache {
	if ttl <= 0 {
		ttl = 5 * time.Minute
	}
	return &SimilarCache{client: client, ttl: ttl}
}

// Get returns the cached ids for (bookID, topN), ok=false on a miss.
func (c *SimilarCache) Get(ctx context.Context, bookID uint, topN int) ([]uint, bool, error) {
	raw, err := c.client.Get(ctx, c.key(bookID, topN)).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, false, nil
		}
		return nil, false, apperrors.Wrap(err, "failed to read similarity cache")
	}

	var ids []uint
	if err := json.Unmarshal([]byte(raw), &ids); err != nil {
		return nil, false, apperrors.Wrap(err, "corrupt similarity cache entry")
	}
	return ids, true, nil
}

// Set stores the ranked ids for (bookID, topN).
func (c *SimilarCache) Set(ctx context.Context, bookID uint, topN int, ids []uint) error {
	raw, err := json.Marshal(ids)
	if err != nil {
		return apperrors.Wrap(err, "failed to encode similarity cache entry")
	}

	if err := c.client.Set(ctx, c.key(bookID, topN), raw, c.ttl).Err(); err != nil {
		return apperrors.Wrap(err, "failed to write similarity cache")
	}
	return nil
}

// Invalidate drops every cached ranking. SCAN avoids blocking redis the way
// KEYS would on a large keyspace.
func (c *SimilarCache) Invalidate(ctx context.Context) error {
	iter := c.client.Scan(ctx, 0, similarKeyPrefix+"*", 100).Iterator()
	for iter.Next(ctx) {
		if err := c.client.Del(ctx, iter.Val()).Err(); err != nil {
			return apperrors.Wrap(err, "failed to invalidate similarity cache")
		}
	}
	if err := iter.Err(); err != nil {
		return apperrors.Wrap(err, "failed to scan similarity cache")
	}
	return nil
}

func (c *SimilarCache) key(bookID uint, topN int) string {
	return fmt.Sprintf("%s%d:%d", similarKeyPrefix, bookID, topN)
}
