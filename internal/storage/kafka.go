package storage

import (
	"context"
	"encoding/json"
	"strconv"

	"github.com/segmentio/kafka-go"

	"qr-dish-reality/internal/domain"
)

type KafkaPublisher struct {
	Writer *kafka.Writer
}

func NewKafkaPublisher(writer *kafka.Writer) *KafkaPublisher {
	return &KafkaPublisher{Writer: writer}
}

func (p *KafkaPublisher) PublishOrderPlaced(ctx context.Context, event domain.OrderEvent) error {
	payload, _ := json.Marshal(event)
	return p.Writer.WriteMessages(ctx, kafka.Message{
		Key:   []byte(strconv.Itoa(event.RestaurantID)),
		Value: payload,
	})
}
