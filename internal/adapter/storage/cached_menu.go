package storage

import (
	"context"

	"go.uber.org/zap"

	"github.com/CheersEngineers/MobileFoodDeliveryApp/internal/core/domain"
	"github.com/CheersEngineers/MobileFoodDeliveryApp/internal/port"
)

// CachedMenuRepository serves Lookup cache-aside while availability and price
// reads always go to the backing repository. Validation and pricing must see
// the live menu; only the descriptive lookup may be a few seconds stale.
type CachedMenuRepository struct {
	base   port.MenuRepository
	cache  port.MenuCache
	logger *zap.Logger
}

func NewCachedMenuRepository(base port.MenuRepository, cache port.MenuCache, logger *zap.Logger) *CachedMenuRepository {
	return &CachedMenuRepository{base: base, cache: cache, logger: logger}
}

func (c *CachedMenuRepository) Lookup(ctx context.Context, itemID string) (*domain.MenuItem, error) {
	cached, err := c.cache.GetItem(ctx, itemID)
	if err != nil {
		// A broken cache degrades to the backing repository.
		c.logger.Warn("menu cache read failed", zap.String("item_id", itemID), zap.Error(err))
	}
	if cached != nil {
		return cached, nil
	}

	item, err := c.base.Lookup(ctx, itemID)
	if err != nil {
		return nil, err
	}

	if err := c.cache.SetItem(ctx, *item); err != nil {
		c.logger.Warn("menu cache write failed", zap.String("item_id", itemID), zap.Error(err))
	}

	return item, nil
}

func (c *CachedMenuRepository) IsItemAvailable(ctx context.Context, itemID string) (bool, error) {
	return c.base.IsItemAvailable(ctx, itemID)
}

func (c *CachedMenuRepository) Price(ctx context.Context, itemID string) (float64, error) {
	return c.base.Price(ctx, itemID)
}
