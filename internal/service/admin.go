package service

import (
	"context"

	"qr-dish-reality/internal/domain"
)

const (
	profileOverviewLimit = 50
	recentOrdersLimit    = 20
)

// AdminService aggregates platform-wide statistics for the admin panel.
// The stats snapshot is cached in Redis; reads fall back to Postgres when
// the cache is cold.
type AdminService struct {
	repo  AdminRepository
	cache StatsCache
}

func NewAdminService(repo AdminRepository, cache StatsCache) *AdminService {
	return &AdminService{repo: repo, cache: cache}
}

func (s *AdminService) Stats(ctx context.Context) (*domain.PlatformStats, error) {
	if s.cache != nil {
		if stats, err := s.cache.GetStats(ctx); err == nil && stats != nil {
			return stats, nil
		}
	}

	stats, err := s.repo.PlatformStats()
	if err != nil {
		return nil, err
	}

	if s.cache != nil {
		_ = s.cache.SetStats(ctx, stats)
	}
	return stats, nil
}

func (s *AdminService) Restaurants() ([]domain.RestaurantOverview, error) {
	return s.repo.ListRestaurantOverviews()
}

func (s *AdminService) Users() ([]domain.ProfileOverview, error) {
	return s.repo.ListProfileOverviews(profileOverviewLimit)
}

func (s *AdminService) RecentOrders() ([]domain.Order, error) {
	return s.repo.ListRecentOrders(recentOrdersLimit)
}
