package di

import (
	"time"

	"jobboard_backend/internal/feature/identity/adapters"
	tokenmw "jobboard_backend/internal/platform/token"

	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

// NewTokenResolver creates the token Resolver used by the auth middleware.
// If Redis is available, the database-backed store is wrapped with a
// read-through cache. Otherwise, it falls back to the database alone.
func NewTokenResolver(rdb *redis.Client, db *gorm.DB) tokenmw.Resolver {
	store := adapters.NewTokenGorm(db)
	if rdb != nil {
		return tokenmw.NewCachingResolver(rdb, 15*time.Minute, store, "tokens")
	}
	return store
}
