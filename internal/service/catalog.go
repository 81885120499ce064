package service

import (
	"errors"

	"qr-dish-reality/internal/domain"
)

// CatalogService serves the customer-facing menu: the restaurant record plus
// its dishes filtered to those currently offered.
type CatalogService struct {
	restaurants RestaurantRepository
	dishes      DishRepository
}

func NewCatalogService(restaurants RestaurantRepository, dishes DishRepository) *CatalogService {
	return &CatalogService{restaurants: restaurants, dishes: dishes}
}

func (s *CatalogService) Restaurant(id int) (*domain.Restaurant, error) {
	return s.restaurants.GetRestaurant(id)
}

func (s *CatalogService) AvailableDishes(restaurantID int) ([]domain.Dish, error) {
	return s.dishes.ListAvailableDishes(restaurantID)
}

// ErrDishUnavailable is returned when a customer tries to add a dish whose
// availability flag is off.
var ErrDishUnavailable = errors.New("dish is not available")

// Dish resolves a single dish for cart additions. The availability flag is
// checked here, at the boundary, so carts only ever hold offered dishes.
func (s *CatalogService) Dish(restaurantID, dishID int) (*domain.Dish, error) {
	dish, err := s.dishes.GetDish(restaurantID, dishID)
	if err != nil {
		return nil, err
	}
	if !dish.Availability {
		return nil, ErrDishUnavailable
	}
	return dish, nil
}
