package port

import (
	"context"

	"github.com/CheersEngineers/MobileFoodDeliveryApp/internal/core/domain"
)

// MenuRepository is the restaurant menu capability. The core only reads
// through it and never mutates menu state.
type MenuRepository interface {
	// Lookup returns the menu item, or domain.ErrItemNotFound when no item
	// with that id exists.
	Lookup(ctx context.Context, itemID string) (*domain.MenuItem, error)

	// IsItemAvailable reports whether the item can currently be ordered.
	// A missing item is simply not available.
	IsItemAvailable(ctx context.Context, itemID string) (bool, error)

	// Price returns the current unit price for the item.
	Price(ctx context.Context, itemID string) (float64, error)
}
