package events

import (
	"time"

	"github.com/CheersEngineers/MobileFoodDeliveryApp/internal/core/domain"
)

type OrderConfirmedEvent struct {
	EventID        string             `json:"event_id"`
	OrderID        string             `json:"order_id"`
	UserID         string             `json:"user_id"`
	Items          []domain.OrderItem `json:"items"`
	TotalAmount    float64            `json:"total_amount"`
	ConfirmationID string             `json:"confirmation_id"`
	Timestamp      time.Time          `json:"timestamp"`
}
