package storage

import (
	"context"
	"fmt"
	"testing"

	"go.uber.org/zap"

	"github.com/CheersEngineers/MobileFoodDeliveryApp/internal/core/domain"
)

// In-memory MenuRepository counting reads per operation.
type countingMenu struct {
	items      map[string]domain.MenuItem
	lookups    int
	priceReads int
	availReads int
}

func (m *countingMenu) Lookup(ctx context.Context, itemID string) (*domain.MenuItem, error) {
	m.lookups++
	item, ok := m.items[itemID]
	if !ok {
		return nil, fmt.Errorf("item %q: %w", itemID, domain.ErrItemNotFound)
	}
	return &item, nil
}

func (m *countingMenu) IsItemAvailable(ctx context.Context, itemID string) (bool, error) {
	m.availReads++
	item, ok := m.items[itemID]
	return ok && item.Available, nil
}

func (m *countingMenu) Price(ctx context.Context, itemID string) (float64, error) {
	m.priceReads++
	item, ok := m.items[itemID]
	if !ok {
		return 0, fmt.Errorf("item %q: %w", itemID, domain.ErrItemNotFound)
	}
	return item.Price, nil
}

// In-memory MenuCache.
type mapCache struct {
	entries map[string]domain.MenuItem
	broken  bool
}

func newMapCache() *mapCache {
	return &mapCache{entries: make(map[string]domain.MenuItem)}
}

func (c *mapCache) GetItem(ctx context.Context, itemID string) (*domain.MenuItem, error) {
	if c.broken {
		return nil, fmt.Errorf("cache down")
	}
	item, ok := c.entries[itemID]
	if !ok {
		return nil, nil
	}
	return &item, nil
}

func (c *mapCache) SetItem(ctx context.Context, item domain.MenuItem) error {
	if c.broken {
		return fmt.Errorf("cache down")
	}
	c.entries[item.ItemID] = item
	return nil
}

func (c *mapCache) InvalidateItem(ctx context.Context, itemID string) error {
	delete(c.entries, itemID)
	return nil
}

func testMenu() *countingMenu {
	return &countingMenu{items: map[string]domain.MenuItem{
		"margherita": {ItemID: "margherita", Name: "Pizza Margherita", Price: 9.5, Available: true},
	}}
}

func TestCachedMenu_LookupPopulatesCache(t *testing.T) {
	base := testMenu()
	cache := newMapCache()
	repo := NewCachedMenuRepository(base, cache, zap.NewNop())
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		item, err := repo.Lookup(ctx, "margherita")
		if err != nil {
			t.Fatalf("Lookup %d failed: %v", i, err)
		}
		if item.Name != "Pizza Margherita" {
			t.Errorf("unexpected item: %+v", item)
		}
	}

	if base.lookups != 1 {
		t.Errorf("expected 1 backing lookup, got %d", base.lookups)
	}
}

func TestCachedMenu_LookupNotFoundIsNotCached(t *testing.T) {
	base := testMenu()
	cache := newMapCache()
	repo := NewCachedMenuRepository(base, cache, zap.NewNop())
	ctx := context.Background()

	for i := 0; i < 2; i++ {
		if _, err := repo.Lookup(ctx, "sushi"); err == nil {
			t.Fatal("expected not-found error")
		}
	}

	if base.lookups != 2 {
		t.Errorf("misses must not be cached, got %d backing lookups", base.lookups)
	}
}

func TestCachedMenu_AvailabilityAndPriceStayLive(t *testing.T) {
	base := testMenu()
	cache := newMapCache()
	repo := NewCachedMenuRepository(base, cache, zap.NewNop())
	ctx := context.Background()

	// Warm the cache, then change the live menu.
	repo.Lookup(ctx, "margherita")
	item := base.items["margherita"]
	item.Price = 11.0
	item.Available = false
	base.items["margherita"] = item

	ok, err := repo.IsItemAvailable(ctx, "margherita")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if ok {
		t.Error("availability must reflect the live menu, not the cache")
	}

	price, err := repo.Price(ctx, "margherita")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if price != 11.0 {
		t.Errorf("price must reflect the live menu, got %v", price)
	}
}

func TestCachedMenu_BrokenCacheFallsBack(t *testing.T) {
	base := testMenu()
	cache := newMapCache()
	cache.broken = true
	repo := NewCachedMenuRepository(base, cache, zap.NewNop())

	item, err := repo.Lookup(context.Background(), "margherita")
	if err != nil {
		t.Fatalf("Lookup must survive a broken cache: %v", err)
	}
	if item.Price != 9.5 {
		t.Errorf("unexpected item: %+v", item)
	}
}
