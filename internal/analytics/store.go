package analytics

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"
)

type Store struct {
	rdb *redis.Client
	ctx context.Context
}

func NewStore(rdb *redis.Client) *Store {
	return &Store{rdb: rdb, ctx: context.Background()}
}

// RecordOrder bumps the dish's daily and all-time popularity scores.
func (s *Store) RecordOrder(restaurantID, dishID, quantity int) error {
	today := time.Now().Format("2006-01-02")
	dailyKey := fmt.Sprintf("analytics:daily:%s:%d", today, restaurantID)
	if err := s.rdb.ZIncrBy(s.ctx, dailyKey, float64(quantity), strconv.Itoa(dishID)).Err(); err != nil {
		return err
	}
	s.rdb.Expire(s.ctx, dailyKey, 7*24*time.Hour)

	allTimeKey := fmt.Sprintf("analytics:alltime:%d", restaurantID)
	return s.rdb.ZIncrBy(s.ctx, allTimeKey, float64(quantity), strconv.Itoa(dishID)).Err()
}

var _ StoreInterface = (*Store)(nil)
