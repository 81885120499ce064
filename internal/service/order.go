package service

import (
	"errors"

	"qr-dish-reality/internal/domain"
)

var (
	ErrOrderNotFound     = errors.New("order not found")
	ErrNotOwner          = errors.New("order does not belong to this owner")
	ErrInvalidTransition = errors.New("invalid order status transition")
)

// OrderService backs the owner dashboard: incoming orders and their status
// lifecycle. Orders are never deleted; owners only advance the status.
type OrderService struct {
	orders      OrderRepository
	restaurants RestaurantRepository
}

func NewOrderService(orders OrderRepository, restaurants RestaurantRepository) *OrderService {
	return &OrderService{orders: orders, restaurants: restaurants}
}

// Get serves the public status lookup on the confirmation view.
func (s *OrderService) Get(orderID int) (*domain.Order, error) {
	return s.orders.GetOrder(orderID)
}

// ListForOwner returns the orders of the owner's restaurant, newest first.
func (s *OrderService) ListForOwner(ownerID int) ([]domain.Order, error) {
	rest, err := s.restaurants.GetRestaurantByOwner(ownerID)
	if err != nil {
		return nil, err
	}
	return s.orders.ListRestaurantOrders(rest.ID)
}

// UpdateStatus advances an order's status. The order must belong to the
// owner's restaurant and the transition must move forward.
func (s *OrderService) UpdateStatus(ownerID, orderID int, next domain.Status) error {
	if !next.Valid() {
		return ErrInvalidTransition
	}

	order, err := s.orders.GetOrder(orderID)
	if err != nil {
		return ErrOrderNotFound
	}

	rest, err := s.restaurants.GetRestaurantByOwner(ownerID)
	if err != nil || rest.ID != order.RestaurantID {
		return ErrNotOwner
	}

	if !order.Status.CanTransitionTo(next) {
		return ErrInvalidTransition
	}

	rows, err := s.orders.UpdateOrderStatus(orderID, next)
	if err != nil {
		return err
	}
	if rows == 0 {
		return ErrOrderNotFound
	}
	return nil
}
