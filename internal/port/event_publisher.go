package port

import (
	"context"

	"github.com/CheersEngineers/MobileFoodDeliveryApp/internal/core/domain"
)

// EventPublisher announces confirmed orders to downstream consumers
// (kitchen, delivery, notifications).
type EventPublisher interface {
	PublishOrderConfirmed(ctx context.Context, order domain.Order) error
}
