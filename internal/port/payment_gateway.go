package port

import (
	"context"

	"github.com/CheersEngineers/MobileFoodDeliveryApp/internal/core/domain"
)

const ChargeStatusSuccess = "success"

// ChargeResult is the gateway's normalized response to a charge attempt.
// Any Status other than "success" is a decline; Reason says why.
type ChargeResult struct {
	Status        string `json:"status"`
	TransactionID string `json:"transaction_id,omitempty"`
	Reason        string `json:"reason,omitempty"`
}

func (r ChargeResult) Succeeded() bool {
	return r.Status == ChargeStatusSuccess
}

// PaymentCharger is the payment capability the order-placement path calls.
type PaymentCharger interface {
	Charge(ctx context.Context, amount float64, currency string, metadata map[string]string) (*ChargeResult, error)
}

// PaymentGateway is the capability the standalone payment-processing path
// dispatches to once a method's details have been validated.
type PaymentGateway interface {
	Process(ctx context.Context, method domain.PaymentMethod, details domain.PaymentDetails, amount float64) (*ChargeResult, error)
}
