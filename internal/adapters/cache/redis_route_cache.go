package cache

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	redis "github.com/redis/go-redis/v9"

	"ride-route-service/internal/domain"
)

// RedisRouteCache stores encoded routes under "route:<fingerprint>" keys
// with a TTL, for deployments where planners share a cache.
type RedisRouteCache struct {
	rdb *redis.Client
	ttl time.Duration
}

// DefaultRouteTTL bounds staleness when problems repeat across sessions.
const DefaultRouteTTL = 24 * time.Hour

func NewRedisRouteCache(redisURL string, ttl time.Duration) (*RedisRouteCache, error) {
	opt, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, fmt.Errorf("redis route cache: parse url: %w", err)
	}
	if ttl <= 0 {
		ttl = DefaultRouteTTL
	}
	return &RedisRouteCache{rdb: redis.NewClient(opt), ttl: ttl}, nil
}

func (c *RedisRouteCache) Get(ctx context.Context, key string) (domain.Route, bool, error) {
	if strings.TrimSpace(key) == "" {
		return domain.Route{}, false, errors.New("get route cache: key must not be empty")
	}

	payload, err := c.rdb.Get(ctx, c.key(key)).Bytes()
	if errors.Is(err, redis.Nil) {
		return domain.Route{}, false, nil
	}
	if err != nil {
		return domain.Route{}, false, fmt.Errorf("get route cache: %w", err)
	}

	route, err := decodeRoute(payload)
	if err != nil {
		return domain.Route{}, false, fmt.Errorf("get route cache: %w", err)
	}
	return route, true, nil
}

func (c *RedisRouteCache) Put(ctx context.Context, key string, route domain.Route) error {
	if strings.TrimSpace(key) == "" {
		return errors.New("insert route cache: key must not be empty")
	}

	payload, err := encodeRoute(route)
	if err != nil {
		return fmt.Errorf("insert route cache: %w", err)
	}

	if err := c.rdb.Set(ctx, c.key(key), payload, c.ttl).Err(); err != nil {
		return fmt.Errorf("insert route cache: %w", err)
	}
	return nil
}

func (c *RedisRouteCache) key(fingerprint string) string { return "route:" + fingerprint }
