package events

import (
	"context"
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"github.com/segmentio/kafka-go"
	"go.uber.org/zap"

	"github.com/CheersEngineers/MobileFoodDeliveryApp/internal/core/domain"
)

const orderEventsTopic = "order-events"

// KafkaProducer publishes confirmed orders for downstream consumers. A lost
// event never fails the confirmation itself; callers decide how to react.
type KafkaProducer struct {
	writer *kafka.Writer
	logger *zap.Logger
}

func NewKafkaProducer(brokers string, logger *zap.Logger) *KafkaProducer {
	writer := &kafka.Writer{
		Addr:     kafka.TCP(brokers),
		Topic:    orderEventsTopic,
		Balancer: &kafka.LeastBytes{},
	}

	return &KafkaProducer{writer: writer, logger: logger}
}

func (p *KafkaProducer) PublishOrderConfirmed(ctx context.Context, order domain.Order) error {
	event := OrderConfirmedEvent{
		EventID:        uuid.New().String(),
		OrderID:        order.OrderID,
		UserID:         order.UserID,
		Items:          order.Items,
		TotalAmount:    order.TotalAmount,
		ConfirmationID: order.ConfirmationID,
		Timestamp:      time.Now(),
	}

	data, err := json.Marshal(event)
	if err != nil {
		return err
	}

	writeCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	if err := p.writer.WriteMessages(writeCtx, kafka.Message{
		Key:   []byte(order.OrderID),
		Value: data,
	}); err != nil {
		p.logger.Error("failed to publish order event",
			zap.String("order_id", order.OrderID),
			zap.Error(err))
		return err
	}

	p.logger.Info("order event published",
		zap.String("event_id", event.EventID),
		zap.String("order_id", order.OrderID))

	return nil
}

func (p *KafkaProducer) Close() error {
	return p.writer.Close()
}
