package domain

// UserProfile carries the identity and delivery metadata an order needs.
// It is read-only for the duration of an order.
type UserProfile struct {
	UserID          string
	DeliveryAddress string
}
