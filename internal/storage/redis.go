package storage

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"

	"qr-dish-reality/internal/domain"
)

const statsKey = "admin:stats"

// RedisCache mirrors the admin stats snapshot so the panel does not hammer
// Postgres with count queries on every load.
type RedisCache struct {
	Client *redis.Client
	TTL    time.Duration
}

func NewRedisCache(client *redis.Client, ttl time.Duration) *RedisCache {
	return &RedisCache{Client: client, TTL: ttl}
}

func (c *RedisCache) GetStats(ctx context.Context) (*domain.PlatformStats, error) {
	payload, err := c.Client.Get(ctx, statsKey).Bytes()
	if err != nil {
		return nil, err
	}
	var stats domain.PlatformStats
	if err := json.Unmarshal(payload, &stats); err != nil {
		return nil, err
	}
	return &stats, nil
}

func (c *RedisCache) SetStats(ctx context.Context, stats *domain.PlatformStats) error {
	payload, _ := json.Marshal(stats)
	return c.Client.Set(ctx, statsKey, payload, c.TTL).Err()
}
