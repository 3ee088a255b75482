package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/CheersEngineers/MobileFoodDeliveryApp/internal/core/domain"
	"github.com/CheersEngineers/MobileFoodDeliveryApp/internal/port"
)

const orderCurrency = "EUR"

// OrderPlacement orchestrates one cart, one user and the menu/payment
// capabilities into a single confirmation result. It is owned by one caller
// for its whole lifecycle and is not safe for concurrent use.
type OrderPlacement struct {
	user    domain.UserProfile
	menu    port.MenuRepository
	payment port.PaymentCharger
	cart    *domain.Cart
	status  domain.OrderStatus
	logger  *zap.Logger
}

func NewOrderPlacement(user domain.UserProfile, menu port.MenuRepository, payment port.PaymentCharger, logger *zap.Logger) *OrderPlacement {
	return &OrderPlacement{
		user:    user,
		menu:    menu,
		payment: payment,
		cart:    domain.NewCart(),
		status:  domain.OrderStatusPending,
		logger:  logger,
	}
}

// AddItem checks the item against the menu before putting it in the cart.
// It fails with domain.ErrItemNotFound for an unknown item and
// ErrItemUnavailable for a known item the menu reports as unavailable.
// Payment is untouched.
func (p *OrderPlacement) AddItem(ctx context.Context, itemID string, quantity int) error {
	item, err := p.menu.Lookup(ctx, itemID)
	if err != nil {
		return err
	}
	if !item.Available {
		return fmt.Errorf("item %q: %w", itemID, ErrItemUnavailable)
	}

	return p.cart.AddItem(itemID, quantity)
}

// RemoveItem drops a line from the cart.
func (p *OrderPlacement) RemoveItem(itemID string) {
	p.cart.RemoveItem(itemID)
}

// ValidateOrder re-checks every cart line against the menu. It is a pure
// check: repeated calls mutate nothing and keep returning the same answer
// for the same menu state.
func (p *OrderPlacement) ValidateOrder(ctx context.Context) error {
	if p.cart.IsEmpty() {
		return ErrEmptyCart
	}

	for _, line := range p.cart.Items() {
		available, err := p.menu.IsItemAvailable(ctx, line.ItemID)
		if err != nil {
			return fmt.Errorf("availability check for %q: %w", line.ItemID, err)
		}
		if !available {
			return fmt.Errorf("item %q: %w", line.ItemID, ErrItemUnavailable)
		}
	}

	return nil
}

// ConfirmOrder validates the cart, prices it fresh against the menu, charges
// the payment capability and returns the structured outcome. Validation
// failures propagate as errors and abort before any payment attempt; a
// declined charge is a normal failure result. The cart is never cleared on
// failure, so the caller may confirm again.
func (p *OrderPlacement) ConfirmOrder(ctx context.Context) (*domain.ConfirmationResult, error) {
	if err := p.ValidateOrder(ctx); err != nil {
		p.status = domain.OrderStatusRejected
		return nil, err
	}

	order, err := p.priceOrder(ctx)
	if err != nil {
		return nil, err
	}

	resp, err := p.payment.Charge(ctx, order.TotalAmount, orderCurrency, map[string]string{
		"user_id": p.user.UserID,
	})
	if err != nil {
		return nil, fmt.Errorf("charge: %w", err)
	}

	order.UpdatedAt = time.Now()
	if !resp.Succeeded() {
		p.status = domain.OrderStatusFailed
		order.Status = domain.OrderStatusFailed
		p.logger.Info("payment declined",
			zap.String("order_id", order.OrderID),
			zap.String("user_id", p.user.UserID),
			zap.String("reason", resp.Reason))

		return &domain.ConfirmationResult{
			Status: domain.ResultStatusFailure,
			Reason: resp.Reason,
			Order:  order,
		}, nil
	}

	p.status = domain.OrderStatusConfirmed
	order.Status = domain.OrderStatusConfirmed
	order.ConfirmationID = resp.TransactionID
	p.logger.Info("order confirmed",
		zap.String("order_id", order.OrderID),
		zap.String("user_id", p.user.UserID),
		zap.Float64("total_amount", order.TotalAmount),
		zap.String("transaction_id", resp.TransactionID))

	return &domain.ConfirmationResult{
		Status:        domain.ResultStatusSuccess,
		TransactionID: resp.TransactionID,
		Order:         order,
	}, nil
}

// priceOrder resolves every cart line against the menu at this moment.
// Prices are never cached between add and confirm.
func (p *OrderPlacement) priceOrder(ctx context.Context) (domain.Order, error) {
	now := time.Now()
	order := domain.Order{
		OrderID:   uuid.New().String(),
		UserID:    p.user.UserID,
		Status:    domain.OrderStatusPending,
		CreatedAt: now,
		UpdatedAt: now,
	}

	for _, line := range p.cart.Items() {
		// Price reads are always live; Lookup may be served from a cache
		// and is only trusted for the display name here.
		price, err := p.menu.Price(ctx, line.ItemID)
		if err != nil {
			return domain.Order{}, fmt.Errorf("pricing %q: %w", line.ItemID, err)
		}
		item, err := p.menu.Lookup(ctx, line.ItemID)
		if err != nil {
			return domain.Order{}, fmt.Errorf("pricing %q: %w", line.ItemID, err)
		}

		subtotal := price * float64(line.Quantity)
		order.Items = append(order.Items, domain.OrderItem{
			ItemID:    line.ItemID,
			Name:      item.Name,
			UnitPrice: price,
			Quantity:  line.Quantity,
			Subtotal:  subtotal,
		})
		order.TotalAmount += subtotal
	}

	return order, nil
}

// Cart exposes the current cart lines.
func (p *OrderPlacement) Cart() []domain.CartItem {
	return p.cart.Items()
}

// Status reports the result of the most recent confirmation attempt,
// or pending if none was made.
func (p *OrderPlacement) Status() domain.OrderStatus {
	return p.status
}
