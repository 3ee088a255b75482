package domain

import "errors"

// ErrInvalidPaymentMethod is returned when a payment method name is outside
// the supported set. The message is part of the public contract.
var ErrInvalidPaymentMethod = errors.New("Invalid payment method")

// PaymentMethod is the closed set of supported payment methods.
type PaymentMethod string

const (
	PaymentMethodCreditCard PaymentMethod = "credit_card"
	PaymentMethodPayPal     PaymentMethod = "paypal"
)

// ParsePaymentMethod maps a method name onto the closed enum, failing with
// ErrInvalidPaymentMethod for anything unrecognized.
func ParsePaymentMethod(name string) (PaymentMethod, error) {
	switch PaymentMethod(name) {
	case PaymentMethodCreditCard:
		return PaymentMethodCreditCard, nil
	case PaymentMethodPayPal:
		return PaymentMethodPayPal, nil
	default:
		return "", ErrInvalidPaymentMethod
	}
}

// PaymentDetails carries method-specific fields. Which fields matter depends
// on the method: card number/expiry/CVV for credit cards, email for PayPal.
type PaymentDetails struct {
	CardNumber string `json:"card_number,omitempty"`
	ExpiryDate string `json:"expiry_date,omitempty"`
	CVV        string `json:"cvv,omitempty"`
	Email      string `json:"email,omitempty"`
}
