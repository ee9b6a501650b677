package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"time"

	goredis "github.com/go-redis/redis/v8"

	"SignalBoard/internal/model"
)

const redisKeyPrefix = "signalboard:bars:"

// RedisConfig configures the Redis-backed cache.
type RedisConfig struct {
	Addr     string
	Password string
	DB       int
}

// RedisCache shares fetched series across processes. Redis failures fall back
// to computing directly.
type RedisCache struct {
	client *goredis.Client
}

// NewRedisCache connects and pings the server.
func NewRedisCache(cfg RedisConfig) (*RedisCache, error) {
	client := goredis.NewClient(&goredis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		client.Close()
		return nil, fmt.Errorf("redis ping: %w", err)
	}

	log.Printf("[INFO] redis cache connected: %s", cfg.Addr)
	return &RedisCache{client: client}, nil
}

func (c *RedisCache) GetOrCompute(ctx context.Context, key string, ttl time.Duration, compute ComputeFunc) (model.Series, error) {
	rk := redisKeyPrefix + key

	data, err := c.client.Get(ctx, rk).Bytes()
	switch {
	case err == nil:
		var series model.Series
		if err := json.Unmarshal(data, &series); err == nil {
			log.Printf("[INFO] redis cache hit: %s", key)
			return series, nil
		}
		log.Printf("[WARN] redis cache entry %s unreadable, refetching", key)
	case errors.Is(err, goredis.Nil):
	default:
		log.Printf("[WARN] redis get %s: %v", key, err)
	}

	series, err := compute(ctx)
	if err != nil {
		return nil, err
	}

	payload, err := json.Marshal(series)
	if err != nil {
		log.Printf("[WARN] encode series for cache: %v", err)
		return series, nil
	}
	if err := c.client.Set(ctx, rk, payload, ttl).Err(); err != nil {
		log.Printf("[WARN] redis set %s: %v", key, err)
	}
	return series, nil
}

// Close releases the Redis connection pool.
func (c *RedisCache) Close() error {
	return c.client.Close()
}
