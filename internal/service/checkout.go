package service

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strconv"
	"time"

	"qr-dish-reality/internal/cart"
	"qr-dish-reality/internal/domain"
)

var (
	ErrEmptyCart          = errors.New("cart is empty")
	ErrInvalidTableNumber = errors.New("table number must be a number")
)

// CheckoutResult reports what a successful submission created. OrderID is
// the id of the first inserted row; it is the value customers use to look
// the order up even when several rows were created.
type CheckoutResult struct {
	OrderID     int     `json:"order_id"`
	LineCount   int     `json:"line_count"`
	TotalAmount float64 `json:"total_amount"`
}

// CheckoutService converts a cart into persisted order rows: one row per
// cart line, written sequentially in cart order, each insert awaited before
// the next begins. There is no transaction across the rows: a failure
// partway through leaves the earlier rows committed and the cart intact.
type CheckoutService struct {
	orders    OrderRepository
	publisher OrderPublisher
}

func NewCheckoutService(orders OrderRepository, publisher OrderPublisher) *CheckoutService {
	return &CheckoutService{orders: orders, publisher: publisher}
}

// Submit validates the form fields and cart, then writes the order rows.
// Validation failures occur before any write.
func (s *CheckoutService) Submit(ctx context.Context, restaurantID int, lines []cart.Line, tableNumber, customerNotes string) (*CheckoutResult, error) {
	table, err := strconv.Atoi(tableNumber)
	if err != nil {
		return nil, ErrInvalidTableNumber
	}
	if len(lines) == 0 {
		return nil, ErrEmptyCart
	}

	var (
		firstOrderID int
		total        float64
		created      []domain.Order
	)

	for _, line := range lines {
		order := domain.Order{
			RestaurantID:  restaurantID,
			DishID:        line.Dish.ID,
			Quantity:      line.Quantity,
			TableNumber:   table,
			CustomerNotes: customerNotes,
			Status:        domain.StatusPending,
		}
		if err := s.orders.InsertOrder(&order); err != nil {
			return nil, fmt.Errorf("failed to place order: %w", err)
		}
		if firstOrderID == 0 {
			firstOrderID = order.ID
		}
		total += line.Dish.Price * float64(line.Quantity)
		created = append(created, order)
	}

	if s.publisher != nil {
		for _, order := range created {
			err := s.publisher.PublishOrderPlaced(ctx, domain.OrderEvent{
				Type:         domain.EventOrderPlaced,
				OrderID:      order.ID,
				RestaurantID: order.RestaurantID,
				DishID:       order.DishID,
				Quantity:     order.Quantity,
				Timestamp:    time.Now(),
			})
			if err != nil {
				log.Printf("[qr-menu] failed to publish order event for order %d: %v", order.ID, err)
			}
		}
	}

	return &CheckoutResult{
		OrderID:     firstOrderID,
		LineCount:   len(created),
		TotalAmount: total,
	}, nil
}
