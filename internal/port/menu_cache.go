package port

import (
	"context"

	"github.com/CheersEngineers/MobileFoodDeliveryApp/internal/core/domain"
)

// MenuCache is a read-through cache for menu items.
type MenuCache interface {
	// GetItem returns the cached item, or nil on a miss.
	GetItem(ctx context.Context, itemID string) (*domain.MenuItem, error)

	SetItem(ctx context.Context, item domain.MenuItem) error

	InvalidateItem(ctx context.Context, itemID string) error
}
