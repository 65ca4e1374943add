package token

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"jobboard_backend/internal/feature/identity/domain/entity"
)

// CachingResolver decorates a Resolver with Redis caching.
// It implements the decorator pattern, transparently adding caching without
// modifying the underlying token store. Tokens are never rotated, so cached
// entries only go stale when an identity is removed; the TTL bounds that.
type CachingResolver struct {
	inner     Resolver
	rdb       *redis.Client
	ttl       time.Duration
	namespace string
}

// NewCachingResolver decorates a Resolver with Redis caching.
// If ttl is 0, it defaults to 15 minutes. If namespace is empty, it uses "tokens".
func NewCachingResolver(rdb *redis.Client, ttl time.Duration, inner Resolver, namespace string) *CachingResolver {
	if ttl <= 0 {
		ttl = 15 * time.Minute
	}
	if namespace == "" {
		namespace = "tokens"
	}
	return &CachingResolver{
		inner:     inner,
		rdb:       rdb,
		ttl:       ttl,
		namespace: namespace,
	}
}

// FindByID resolves a token value, checking cache first then falling back
// to the underlying store. Resolution failures are not cached.
func (c *CachingResolver) FindByID(ctx context.Context, id string) (*entity.Token, error) {
	// Bypass cache if Redis is not configured
	if c.rdb == nil {
		return c.inner.FindByID(ctx, id)
	}

	key := c.cacheKey(id)

	// 1) Check cache
	if b, err := c.rdb.Get(ctx, key).Bytes(); err == nil && len(b) > 0 {
		var out entity.Token
		if err := json.Unmarshal(b, &out); err == nil {
			return &out, nil
		}
		// Delete corrupted cache entry
		_ = c.rdb.Del(ctx, key).Err()
	}

	// 2) Fallback to the store
	out, err := c.inner.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	// 3) Store in cache (best effort)
	if b, err := json.Marshal(out); err == nil {
		_ = c.rdb.Set(ctx, key, b, c.ttl).Err()
	}

	return out, nil
}

// cacheKey generates the cache key for a token value.
func (c *CachingResolver) cacheKey(id string) string {
	return fmt.Sprintf("%s:%s", c.namespace, id)
}
