package cache

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"dealflow/internal/domain/entities"
	"dealflow/internal/usecase/interfaces"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

const (
	catalogKeyPrefix = "dealflow:service_type:"
	defaultTTL       = 5 * time.Minute
)

// client is the subset of *redis.Client the cache needs.
type client interface {
	Get(ctx context.Context, key string) *redis.StringCmd
	Set(ctx context.Context, key string, value interface{}, expiration time.Duration) *redis.StatusCmd
}

// CatalogCache is a read-through Redis cache in front of the service type
// catalog. Redis failures fall back to the wrapped repository; only found
// entries are cached.
type CatalogCache struct {
	next   interfaces.ICatalogRepository
	redis  client
	ttl    time.Duration
	logger *zap.Logger
}

var _ interfaces.ICatalogRepository = (*CatalogCache)(nil)

func NewCatalogCache(next interfaces.ICatalogRepository, rdb client, ttl time.Duration, logger *zap.Logger) *CatalogCache {
	if ttl <= 0 {
		ttl = defaultTTL
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &CatalogCache{next: next, redis: rdb, ttl: ttl, logger: logger}
}

func (c *CatalogCache) GetServiceType(ctx context.Context, id string) (entities.ServiceType, error) {
	key := catalogKeyPrefix + id

	raw, err := c.redis.Get(ctx, key).Bytes()
	switch {
	case err == nil:
		var st entities.ServiceType
		if err := json.Unmarshal(raw, &st); err == nil {
			return st, nil
		}
		c.logger.Warn("[catalog][cache] corrupt entry ignored", zap.String("key", key))
	case !errors.Is(err, redis.Nil):
		c.logger.Warn("[catalog][cache] get failed", zap.String("key", key), zap.Error(err))
	}

	st, err := c.next.GetServiceType(ctx, id)
	if err != nil || st.ID == "" {
		return st, err
	}

	if b, err := json.Marshal(st); err == nil {
		if err := c.redis.Set(ctx, key, b, c.ttl).Err(); err != nil {
			c.logger.Warn("[catalog][cache] set failed", zap.String("key", key), zap.Error(err))
		}
	}
	return st, nil
}

// NewRedisClient opens the Redis connection used by the catalog cache.
func NewRedisClient(addr, password string, db int) *redis.Client {
	return redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})
}
