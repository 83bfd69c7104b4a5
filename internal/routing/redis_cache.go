package routing

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/vmihailenco/msgpack/v5"

	"tripapi/internal/config"
)

// RedisRouteCache keeps msgpack-encoded routes in Redis with a fixed TTL.
type RedisRouteCache struct {
	client *redis.Client
	ttl    time.Duration
}

var _ RouteCache = (*RedisRouteCache)(nil)

// NewRedisClient connects to Redis and verifies the connection.
func NewRedisClient(cfg config.RedisConfig) (*redis.Client, error) {
	if cfg.Addr == "" {
		return nil, errors.New("redis address is required")
	}
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("redis ping: %w", err)
	}
	return client, nil
}

// NewRedisRouteCache creates a cache on client. A non-positive ttl keeps entries forever.
func NewRedisRouteCache(client *redis.Client, ttl time.Duration) *RedisRouteCache {
	if ttl < 0 {
		ttl = 0
	}
	return &RedisRouteCache{client: client, ttl: ttl}
}

func (r *RedisRouteCache) Get(ctx context.Context, key string) (*Route, bool, error) {
	b, err := r.client.Get(ctx, key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, false, nil
		}
		return nil, false, fmt.Errorf("redis get: %w", err)
	}

	var route Route
	if err := msgpack.Unmarshal(b, &route); err != nil {
		return nil, false, fmt.Errorf("decode cached route: %w", err)
	}
	return &route, true, nil
}

func (r *RedisRouteCache) Set(ctx context.Context, key string, route *Route) error {
	if route == nil {
		return errors.New("route is nil")
	}
	b, err := msgpack.Marshal(route)
	if err != nil {
		return fmt.Errorf("encode route: %w", err)
	}
	if err := r.client.Set(ctx, key, b, r.ttl).Err(); err != nil {
		return fmt.Errorf("redis set: %w", err)
	}
	return nil
}
