// Package analytics consumes order events and keeps popularity counters in
// Redis so the admin panel can query them without touching Postgres.
package analytics

import (
	"context"
	"encoding/json"
	"log"

	"github.com/segmentio/kafka-go"

	"qr-dish-reality/internal/domain"
)

type StoreInterface interface {
	RecordOrder(restaurantID, dishID, quantity int) error
}

type Consumer struct {
	Reader *kafka.Reader
	Store  StoreInterface
}

func NewConsumer(reader *kafka.Reader, store StoreInterface) *Consumer {
	return &Consumer{Reader: reader, Store: store}
}

func (c *Consumer) Start(ctx context.Context) {
	log.Println("[qr-menu] starting analytics consumer")
	for {
		message, err := c.Reader.ReadMessage(ctx)
		if err != nil {
			if ctx.Err() != nil {
				return
			}
			log.Printf("[qr-menu] error reading message: %v", err)
			continue
		}

		var event domain.OrderEvent
		if err := json.Unmarshal(message.Value, &event); err != nil {
			log.Printf("[qr-menu] error unmarshaling message: %v", err)
			continue
		}

		if event.Type == domain.EventOrderPlaced {
			c.ProcessOrder(event)
		}
	}
}

func (c *Consumer) ProcessOrder(event domain.OrderEvent) {
	if event.Type != domain.EventOrderPlaced {
		return
	}
	log.Printf("[qr-menu] processing order event: OrderID=%d, RestaurantID=%d, DishID=%d",
		event.OrderID, event.RestaurantID, event.DishID)

	if err := c.Store.RecordOrder(event.RestaurantID, event.DishID, event.Quantity); err != nil {
		log.Printf("[qr-menu] error recording order analytics: %v", err)
	}
}
