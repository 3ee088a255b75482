package domain

import "time"

type OrderStatus string

const (
	OrderStatusPending   OrderStatus = "pending"
	OrderStatusRejected  OrderStatus = "rejected"
	OrderStatusConfirmed OrderStatus = "confirmed"
	OrderStatusFailed    OrderStatus = "failed"
)

// OrderItem is a cart line resolved against the menu at confirmation time.
type OrderItem struct {
	ItemID    string  `json:"item_id"`
	Name      string  `json:"name"`
	UnitPrice float64 `json:"unit_price"`
	Quantity  int     `json:"quantity"`
	Subtotal  float64 `json:"subtotal"`
}

// Order is materialized when a cart is confirmed. Status moves one way only:
// pending -> rejected | confirmed | failed. ConfirmationID is set on
// successful payment and never otherwise.
type Order struct {
	OrderID        string      `json:"order_id"`
	UserID         string      `json:"user_id"`
	Items          []OrderItem `json:"items,omitempty"`
	TotalAmount    float64     `json:"total_amount"`
	Status         OrderStatus `json:"status"`
	ConfirmationID string      `json:"confirmation_id,omitempty"`
	CreatedAt      time.Time   `json:"created_at"`
	UpdatedAt      time.Time   `json:"updated_at"`
}

func (o Order) Confirmed() bool {
	return o.Status == OrderStatusConfirmed
}

const (
	ResultStatusSuccess = "success"
	ResultStatusFailure = "failure"
)

// ConfirmationResult is the structured outcome of a confirmation attempt.
// A declined charge is a normal result, not an error.
type ConfirmationResult struct {
	Status        string `json:"status"`
	TransactionID string `json:"transaction_id,omitempty"`
	Reason        string `json:"reason,omitempty"`
	Order         Order  `json:"order"`
}
