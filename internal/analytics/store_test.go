package analytics

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
)

func setupTestStore(t *testing.T) (*Store, *miniredis.Miniredis, *redis.Client) {
	t.Helper()
	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { rdb.Close() })
	return NewStore(rdb), mr, rdb
}

func TestRecordOrderBumpsPopularityCounters(t *testing.T) {
	store, mr, rdb := setupTestStore(t)
	ctx := context.Background()

	assert.NoError(t, store.RecordOrder(3, 1, 2))
	assert.NoError(t, store.RecordOrder(3, 1, 1))
	assert.NoError(t, store.RecordOrder(3, 2, 1))

	today := time.Now().Format("2006-01-02")
	dailyKey := fmt.Sprintf("analytics:daily:%s:3", today)

	assert.InDelta(t, 3.0, rdb.ZScore(ctx, dailyKey, "1").Val(), 0.001)
	assert.InDelta(t, 1.0, rdb.ZScore(ctx, dailyKey, "2").Val(), 0.001)
	assert.InDelta(t, 3.0, rdb.ZScore(ctx, "analytics:alltime:3", "1").Val(), 0.001)

	// Daily counters expire, all-time ones do not.
	assert.Equal(t, 7*24*time.Hour, mr.TTL(dailyKey))
	assert.Zero(t, mr.TTL("analytics:alltime:3"))
}

func TestRecordOrderKeysPerRestaurant(t *testing.T) {
	store, _, rdb := setupTestStore(t)
	ctx := context.Background()

	assert.NoError(t, store.RecordOrder(3, 1, 2))
	assert.NoError(t, store.RecordOrder(4, 1, 5))

	assert.InDelta(t, 2.0, rdb.ZScore(ctx, "analytics:alltime:3", "1").Val(), 0.001)
	assert.InDelta(t, 5.0, rdb.ZScore(ctx, "analytics:alltime:4", "1").Val(), 0.001)
}

func TestRecordOrderReportsClosedConnection(t *testing.T) {
	store, mr, _ := setupTestStore(t)

	mr.Close()

	assert.Error(t, store.RecordOrder(3, 1, 1))
}
