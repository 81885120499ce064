// Package mocks holds hand-maintained testify mocks for the repository and
// collaborator interfaces in internal/service.
package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"qr-dish-reality/internal/domain"
)

type ProfileRepository struct {
	mock.Mock
}

func (m *ProfileRepository) CreateProfile(p *domain.Profile) error {
	return m.Called(p).Error(0)
}

func (m *ProfileRepository) GetProfile(id int) (*domain.Profile, error) {
	args := m.Called(id)
	if p, ok := args.Get(0).(*domain.Profile); ok {
		return p, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *ProfileRepository) GetProfileByEmail(email string) (*domain.Profile, error) {
	args := m.Called(email)
	if p, ok := args.Get(0).(*domain.Profile); ok {
		return p, args.Error(1)
	}
	return nil, args.Error(1)
}

type RestaurantRepository struct {
	mock.Mock
}

func (m *RestaurantRepository) CreateRestaurant(rest *domain.Restaurant) error {
	return m.Called(rest).Error(0)
}

func (m *RestaurantRepository) GetRestaurant(id int) (*domain.Restaurant, error) {
	args := m.Called(id)
	if r, ok := args.Get(0).(*domain.Restaurant); ok {
		return r, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *RestaurantRepository) GetRestaurantByOwner(ownerID int) (*domain.Restaurant, error) {
	args := m.Called(ownerID)
	if r, ok := args.Get(0).(*domain.Restaurant); ok {
		return r, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *RestaurantRepository) UpdateRestaurant(rest *domain.Restaurant) error {
	return m.Called(rest).Error(0)
}

func (m *RestaurantRepository) SaveQRCode(restaurantID int, qr []byte) error {
	return m.Called(restaurantID, qr).Error(0)
}

func (m *RestaurantRepository) GetQRCode(restaurantID int) ([]byte, error) {
	args := m.Called(restaurantID)
	if qr, ok := args.Get(0).([]byte); ok {
		return qr, args.Error(1)
	}
	return nil, args.Error(1)
}

type DishRepository struct {
	mock.Mock
}

func (m *DishRepository) CreateDish(dish *domain.Dish) error {
	return m.Called(dish).Error(0)
}

func (m *DishRepository) GetDish(restaurantID, dishID int) (*domain.Dish, error) {
	args := m.Called(restaurantID, dishID)
	if d, ok := args.Get(0).(*domain.Dish); ok {
		return d, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *DishRepository) ListDishes(restaurantID int) ([]domain.Dish, error) {
	args := m.Called(restaurantID)
	if d, ok := args.Get(0).([]domain.Dish); ok {
		return d, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *DishRepository) ListAvailableDishes(restaurantID int) ([]domain.Dish, error) {
	args := m.Called(restaurantID)
	if d, ok := args.Get(0).([]domain.Dish); ok {
		return d, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *DishRepository) UpdateDish(dish *domain.Dish) error {
	return m.Called(dish).Error(0)
}

func (m *DishRepository) SetAvailability(restaurantID, dishID int, available bool) error {
	return m.Called(restaurantID, dishID, available).Error(0)
}

func (m *DishRepository) DeleteDish(restaurantID, dishID int) (int64, error) {
	args := m.Called(restaurantID, dishID)
	return args.Get(0).(int64), args.Error(1)
}

type OrderRepository struct {
	mock.Mock
}

func (m *OrderRepository) InsertOrder(order *domain.Order) error {
	return m.Called(order).Error(0)
}

func (m *OrderRepository) GetOrder(orderID int) (*domain.Order, error) {
	args := m.Called(orderID)
	if o, ok := args.Get(0).(*domain.Order); ok {
		return o, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *OrderRepository) ListRestaurantOrders(restaurantID int) ([]domain.Order, error) {
	args := m.Called(restaurantID)
	if o, ok := args.Get(0).([]domain.Order); ok {
		return o, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *OrderRepository) UpdateOrderStatus(orderID int, status domain.Status) (int64, error) {
	args := m.Called(orderID, status)
	return args.Get(0).(int64), args.Error(1)
}

type AdminRepository struct {
	mock.Mock
}

func (m *AdminRepository) PlatformStats() (*domain.PlatformStats, error) {
	args := m.Called()
	if s, ok := args.Get(0).(*domain.PlatformStats); ok {
		return s, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *AdminRepository) ListRestaurantOverviews() ([]domain.RestaurantOverview, error) {
	args := m.Called()
	if o, ok := args.Get(0).([]domain.RestaurantOverview); ok {
		return o, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *AdminRepository) ListProfileOverviews(limit int) ([]domain.ProfileOverview, error) {
	args := m.Called(limit)
	if o, ok := args.Get(0).([]domain.ProfileOverview); ok {
		return o, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *AdminRepository) ListRecentOrders(limit int) ([]domain.Order, error) {
	args := m.Called(limit)
	if o, ok := args.Get(0).([]domain.Order); ok {
		return o, args.Error(1)
	}
	return nil, args.Error(1)
}

type StatsCache struct {
	mock.Mock
}

func (m *StatsCache) GetStats(ctx context.Context) (*domain.PlatformStats, error) {
	args := m.Called(ctx)
	if s, ok := args.Get(0).(*domain.PlatformStats); ok {
		return s, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *StatsCache) SetStats(ctx context.Context, stats *domain.PlatformStats) error {
	return m.Called(ctx, stats).Error(0)
}

type OrderPublisher struct {
	mock.Mock
}

func (m *OrderPublisher) PublishOrderPlaced(ctx context.Context, event domain.OrderEvent) error {
	return m.Called(ctx, event).Error(0)
}

type QRGenerator struct {
	mock.Mock
}

func (m *QRGenerator) Generate(restaurantID int) ([]byte, error) {
	args := m.Called(restaurantID)
	if qr, ok := args.Get(0).([]byte); ok {
		return qr, args.Error(1)
	}
	return nil, args.Error(1)
}

type AnalyticsStore struct {
	mock.Mock
}

func (m *AnalyticsStore) RecordOrder(restaurantID, dishID, quantity int) error {
	return m.Called(restaurantID, dishID, quantity).Error(0)
}
