package service

import (
	"errors"
	"strings"

	"qr-dish-reality/internal/domain"
)

var ErrInvalidDish = errors.New("dish requires a name and a positive price")

type DishService struct {
	repo DishRepository
}

func NewDishService(repo DishRepository) *DishService {
	return &DishService{repo: repo}
}

func validateDish(dish *domain.Dish) error {
	if strings.TrimSpace(dish.Name) == "" || dish.Price <= 0 {
		return ErrInvalidDish
	}
	return nil
}

func (s *DishService) Create(dish *domain.Dish) error {
	if err := validateDish(dish); err != nil {
		return err
	}
	return s.repo.CreateDish(dish)
}

// List returns every dish of the restaurant, newest first. Owners see
// unavailable dishes too.
func (s *DishService) List(restaurantID int) ([]domain.Dish, error) {
	return s.repo.ListDishes(restaurantID)
}

func (s *DishService) Get(restaurantID, dishID int) (*domain.Dish, error) {
	return s.repo.GetDish(restaurantID, dishID)
}

func (s *DishService) Update(dish *domain.Dish) error {
	if err := validateDish(dish); err != nil {
		return err
	}
	return s.repo.UpdateDish(dish)
}

func (s *DishService) SetAvailability(restaurantID, dishID int, available bool) error {
	return s.repo.SetAvailability(restaurantID, dishID, available)
}

func (s *DishService) Delete(restaurantID, dishID int) (int64, error) {
	return s.repo.DeleteDish(restaurantID, dishID)
}
