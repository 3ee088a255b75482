package service

import (
	"context"
	"regexp"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/CheersEngineers/MobileFoodDeliveryApp/internal/core/domain"
	"github.com/CheersEngineers/MobileFoodDeliveryApp/internal/port"
)

// Outcome messages are part of the public contract.
const (
	MsgPaymentSuccessful    = "Payment successful, Order confirmed"
	MsgPaymentFailed        = "Payment failed, please try again"
	MsgInvalidPaymentMethod = "Error: Invalid payment method"
)

type PaymentOutcomeCode string

const (
	PaymentOutcomeConfirmed     PaymentOutcomeCode = "confirmed"
	PaymentOutcomeDeclined      PaymentOutcomeCode = "declined"
	PaymentOutcomeInvalidMethod PaymentOutcomeCode = "invalid_method"
)

// PaymentOutcome is the always-returned result of ProcessPayment. Unlike the
// validation path, which fails fast with errors, processing never raises:
// even an unrecognized method comes back as a descriptive outcome.
type PaymentOutcome struct {
	Code    PaymentOutcomeCode `json:"code"`
	Message string             `json:"message"`
}

var (
	cardNumberPattern = regexp.MustCompile(`^[0-9]{16}$`)
	cvvPattern        = regexp.MustCompile(`^[0-9]{3}$`)
	expiryPattern     = regexp.MustCompile(`^(0[1-9]|1[0-2])/[0-9]{2}$`)
	emailPattern      = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)
)

type detailsValidator func(domain.PaymentDetails) bool

// Every supported method is paired with its own details validator; adding a
// method means adding an entry here and a constant to the domain enum.
var methodValidators = map[domain.PaymentMethod]detailsValidator{
	domain.PaymentMethodCreditCard: validateCreditCard,
	domain.PaymentMethodPayPal:     validatePayPal,
}

func validateCreditCard(details domain.PaymentDetails) bool {
	return cardNumberPattern.MatchString(details.CardNumber) &&
		cvvPattern.MatchString(details.CVV) &&
		expiryPattern.MatchString(details.ExpiryDate)
}

func validatePayPal(details domain.PaymentDetails) bool {
	return emailPattern.MatchString(details.Email)
}

// PaymentProcessing validates a chosen payment method's details and
// dispatches the charge to a gateway capability. It operates on a plain
// priced order record, independent of any cart, so an already-priced order
// can be retried here.
type PaymentProcessing struct {
	gateway port.PaymentGateway
	logger  *zap.Logger
}

func NewPaymentProcessing(gateway port.PaymentGateway, logger *zap.Logger) *PaymentProcessing {
	return &PaymentProcessing{gateway: gateway, logger: logger}
}

// ValidatePaymentMethod dispatches on the method name. Recognized methods
// report their details' validity as a boolean; an unrecognized method fails
// with domain.ErrInvalidPaymentMethod.
func (p *PaymentProcessing) ValidatePaymentMethod(methodName string, details domain.PaymentDetails) (bool, error) {
	method, err := domain.ParsePaymentMethod(methodName)
	if err != nil {
		return false, err
	}

	return methodValidators[method](details), nil
}

// ValidateCreditCard reports whether the details form a 16-digit card number,
// a 3-digit CVV and a well-formed expiry. Malformed details are false, never
// an error.
func (p *PaymentProcessing) ValidateCreditCard(details domain.PaymentDetails) bool {
	return validateCreditCard(details)
}

// ProcessPayment validates the method, charges the gateway and returns an
// updated copy of the order together with the outcome. The input order is
// never mutated; only the confirmed copy carries a confirmation id. An
// unknown method is deliberately downgraded from an error to an outcome so
// this entry point always returns a descriptive result.
func (p *PaymentProcessing) ProcessPayment(ctx context.Context, order domain.Order, methodName string, details domain.PaymentDetails) (domain.Order, PaymentOutcome) {
	valid, err := p.ValidatePaymentMethod(methodName, details)
	if err != nil {
		p.logger.Warn("rejected payment method",
			zap.String("order_id", order.OrderID),
			zap.String("method", methodName))
		return order, PaymentOutcome{Code: PaymentOutcomeInvalidMethod, Message: MsgInvalidPaymentMethod}
	}
	if !valid {
		// Bad details on a recognized method short-circuit before the
		// gateway ever sees the charge.
		p.logger.Info("payment details failed validation",
			zap.String("order_id", order.OrderID),
			zap.String("method", methodName))
		return order, PaymentOutcome{Code: PaymentOutcomeDeclined, Message: MsgPaymentFailed}
	}

	method, _ := domain.ParsePaymentMethod(methodName)
	resp, err := p.gateway.Process(ctx, method, details, order.TotalAmount)
	if err != nil {
		p.logger.Error("gateway call failed",
			zap.String("order_id", order.OrderID),
			zap.Error(err))
		return order, PaymentOutcome{Code: PaymentOutcomeDeclined, Message: MsgPaymentFailed}
	}

	if !resp.Succeeded() {
		p.logger.Info("payment declined by gateway",
			zap.String("order_id", order.OrderID),
			zap.String("reason", resp.Reason))
		return order, PaymentOutcome{Code: PaymentOutcomeDeclined, Message: MsgPaymentFailed}
	}

	confirmed := order
	confirmed.Status = domain.OrderStatusConfirmed
	confirmed.ConfirmationID = resp.TransactionID
	if confirmed.ConfirmationID == "" {
		confirmed.ConfirmationID = uuid.New().String()
	}
	confirmed.UpdatedAt = time.Now()

	p.logger.Info("payment processed",
		zap.String("order_id", confirmed.OrderID),
		zap.String("confirmation_id", confirmed.ConfirmationID),
		zap.Float64("amount", confirmed.TotalAmount))

	return confirmed, PaymentOutcome{Code: PaymentOutcomeConfirmed, Message: MsgPaymentSuccessful}
}
