package storage

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"

	"qr-dish-reality/internal/domain"
)

func setupTestCache(t *testing.T, ttl time.Duration) (*RedisCache, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { rdb.Close() })
	return NewRedisCache(rdb, ttl), mr
}

func TestStatsCacheRoundTrip(t *testing.T) {
	cache, _ := setupTestCache(t, time.Minute)
	ctx := context.Background()

	_, err := cache.GetStats(ctx)
	assert.Error(t, err)

	stats := &domain.PlatformStats{
		TotalRestaurants: 4,
		TotalUsers:       10,
		TotalOrders:      120,
		OrdersToday:      8,
		TotalRevenue:     1843.20,
	}
	assert.NoError(t, cache.SetStats(ctx, stats))

	got, err := cache.GetStats(ctx)
	assert.NoError(t, err)
	assert.Equal(t, stats, got)
}

func TestStatsCacheEntryExpires(t *testing.T) {
	cache, mr := setupTestCache(t, time.Minute)
	ctx := context.Background()

	assert.NoError(t, cache.SetStats(ctx, &domain.PlatformStats{TotalOrders: 120}))
	assert.Equal(t, time.Minute, mr.TTL(statsKey))

	mr.FastForward(2 * time.Minute)

	_, err := cache.GetStats(ctx)
	assert.Error(t, err)
}
