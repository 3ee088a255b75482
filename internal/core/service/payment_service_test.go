package service

import (
	"context"
	"errors"
	"testing"

	"go.uber.org/zap"

	"github.com/CheersEngineers/MobileFoodDeliveryApp/internal/core/domain"
	"github.com/CheersEngineers/MobileFoodDeliveryApp/internal/port"
)

// Mock PaymentGateway
type recordedProcess struct {
	method  domain.PaymentMethod
	details domain.PaymentDetails
	amount  float64
}

type mockGateway struct {
	calls   []recordedProcess
	decline bool
	err     error
}

func (g *mockGateway) Process(ctx context.Context, method domain.PaymentMethod, details domain.PaymentDetails, amount float64) (*port.ChargeResult, error) {
	if g.err != nil {
		return nil, g.err
	}
	g.calls = append(g.calls, recordedProcess{method: method, details: details, amount: amount})
	if g.decline {
		return &port.ChargeResult{Status: "failure", Reason: "declined"}, nil
	}
	return &port.ChargeResult{Status: port.ChargeStatusSuccess, TransactionID: "gw-tx-1"}, nil
}

func validCardDetails() domain.PaymentDetails {
	return domain.PaymentDetails{
		CardNumber: "1234567812345678",
		ExpiryDate: "12/25",
		CVV:        "123",
	}
}

func newProcessing(gateway *mockGateway) *PaymentProcessing {
	return NewPaymentProcessing(gateway, zap.NewNop())
}

func TestValidatePaymentMethod_CreditCard(t *testing.T) {
	p := newProcessing(&mockGateway{})

	ok, err := p.ValidatePaymentMethod("credit_card", validCardDetails())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !ok {
		t.Error("expected valid credit card details")
	}
}

func TestValidatePaymentMethod_CreditCard_BadDetails(t *testing.T) {
	p := newProcessing(&mockGateway{})

	ok, err := p.ValidatePaymentMethod("credit_card", domain.PaymentDetails{
		CardNumber: "1234",
		ExpiryDate: "12/25",
		CVV:        "12",
	})
	if err != nil {
		t.Fatalf("malformed details must not be an error: %v", err)
	}
	if ok {
		t.Error("expected invalid details")
	}
}

func TestValidatePaymentMethod_PayPal(t *testing.T) {
	p := newProcessing(&mockGateway{})

	ok, err := p.ValidatePaymentMethod("paypal", domain.PaymentDetails{Email: "user@example.com"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !ok {
		t.Error("expected valid paypal details")
	}

	ok, err = p.ValidatePaymentMethod("paypal", domain.PaymentDetails{Email: "not-an-email"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if ok {
		t.Error("expected invalid paypal email")
	}
}

func TestValidatePaymentMethod_Unknown(t *testing.T) {
	p := newProcessing(&mockGateway{})

	_, err := p.ValidatePaymentMethod("bitcoin", validCardDetails())
	if !errors.Is(err, domain.ErrInvalidPaymentMethod) {
		t.Fatalf("expected ErrInvalidPaymentMethod, got: %v", err)
	}
	if err.Error() != "Invalid payment method" {
		t.Errorf("error message is part of the contract, got %q", err.Error())
	}
}

func TestValidateCreditCard(t *testing.T) {
	p := newProcessing(&mockGateway{})

	cases := []struct {
		name    string
		details domain.PaymentDetails
		want    bool
	}{
		{"valid", validCardDetails(), true},
		{"short number", domain.PaymentDetails{CardNumber: "1234", ExpiryDate: "12/25", CVV: "123"}, false},
		{"non-numeric number", domain.PaymentDetails{CardNumber: "12345678abcd5678", ExpiryDate: "12/25", CVV: "123"}, false},
		{"two digit cvv", domain.PaymentDetails{CardNumber: "1234567812345678", ExpiryDate: "12/25", CVV: "12"}, false},
		{"malformed expiry", domain.PaymentDetails{CardNumber: "1234567812345678", ExpiryDate: "13/2025", CVV: "123"}, false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := p.ValidateCreditCard(tc.details); got != tc.want {
				t.Errorf("expected %v, got %v", tc.want, got)
			}
		})
	}
}

func TestProcessPayment_Success(t *testing.T) {
	gateway := &mockGateway{}
	p := newProcessing(gateway)
	order := domain.Order{OrderID: "order-1", TotalAmount: 100.00}

	updated, outcome := p.ProcessPayment(context.Background(), order, "credit_card", validCardDetails())

	if outcome.Message != "Payment successful, Order confirmed" {
		t.Errorf("unexpected outcome message: %q", outcome.Message)
	}
	if outcome.Code != PaymentOutcomeConfirmed {
		t.Errorf("expected confirmed outcome, got %s", outcome.Code)
	}
	if updated.Status != domain.OrderStatusConfirmed {
		t.Errorf("expected confirmed order, got %s", updated.Status)
	}
	if updated.ConfirmationID == "" {
		t.Error("expected a confirmation id")
	}

	// The input order is a value; the caller's copy stays untouched.
	if order.Status == domain.OrderStatusConfirmed || order.ConfirmationID != "" {
		t.Error("input order must not be mutated")
	}

	if len(gateway.calls) != 1 {
		t.Fatalf("expected 1 gateway call, got %d", len(gateway.calls))
	}
	call := gateway.calls[0]
	if call.method != domain.PaymentMethodCreditCard || call.amount != 100.00 {
		t.Errorf("gateway called with wrong arguments: %+v", call)
	}
}

func TestProcessPayment_Declined(t *testing.T) {
	gateway := &mockGateway{decline: true}
	p := newProcessing(gateway)
	order := domain.Order{OrderID: "order-1", TotalAmount: 100.00}

	updated, outcome := p.ProcessPayment(context.Background(), order, "credit_card", validCardDetails())

	if outcome.Message != "Payment failed, please try again" {
		t.Errorf("unexpected outcome message: %q", outcome.Message)
	}
	if outcome.Code != PaymentOutcomeDeclined {
		t.Errorf("expected declined outcome, got %s", outcome.Code)
	}
	if updated.ConfirmationID != "" {
		t.Error("declined payment must not assign a confirmation id")
	}
	if updated.Status == domain.OrderStatusConfirmed {
		t.Error("declined payment must not confirm the order")
	}
	if len(gateway.calls) != 1 {
		t.Errorf("expected the gateway to be charged once, got %d calls", len(gateway.calls))
	}
}

func TestProcessPayment_InvalidMethod(t *testing.T) {
	gateway := &mockGateway{}
	p := newProcessing(gateway)
	order := domain.Order{OrderID: "order-1", TotalAmount: 100.00}

	updated, outcome := p.ProcessPayment(context.Background(), order, "bitcoin", validCardDetails())

	if outcome.Message != "Error: Invalid payment method" {
		t.Errorf("unexpected outcome message: %q", outcome.Message)
	}
	if outcome.Code != PaymentOutcomeInvalidMethod {
		t.Errorf("expected invalid-method outcome, got %s", outcome.Code)
	}
	if updated.ConfirmationID != "" || updated.Status == domain.OrderStatusConfirmed {
		t.Error("order must stay untouched for an invalid method")
	}
	if len(gateway.calls) != 0 {
		t.Error("gateway must not be called for an invalid method")
	}
}

func TestProcessPayment_BadDetailsShortCircuit(t *testing.T) {
	gateway := &mockGateway{}
	p := newProcessing(gateway)
	order := domain.Order{OrderID: "order-1", TotalAmount: 100.00}

	_, outcome := p.ProcessPayment(context.Background(), order, "credit_card", domain.PaymentDetails{
		CardNumber: "1234",
		ExpiryDate: "12/25",
		CVV:        "12",
	})

	if outcome.Message != "Payment failed, please try again" {
		t.Errorf("unexpected outcome message: %q", outcome.Message)
	}
	if len(gateway.calls) != 0 {
		t.Error("invalid details must short-circuit before the gateway")
	}
}

func TestProcessPayment_GatewayError(t *testing.T) {
	gateway := &mockGateway{err: errors.New("connection refused")}
	p := newProcessing(gateway)
	order := domain.Order{OrderID: "order-1", TotalAmount: 50.00}

	updated, outcome := p.ProcessPayment(context.Background(), order, "credit_card", validCardDetails())

	if outcome.Code != PaymentOutcomeDeclined {
		t.Errorf("a gateway failure must surface as a declined outcome, got %s", outcome.Code)
	}
	if updated.ConfirmationID != "" {
		t.Error("no confirmation id on gateway failure")
	}
}
