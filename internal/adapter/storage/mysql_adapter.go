package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/CheersEngineers/MobileFoodDeliveryApp/internal/core/domain"
)

// MySQLMenuRepository is the concrete restaurant-menu capability, backed by
// the menu_items table. The core only reads through it.
type MySQLMenuRepository struct {
	db *sql.DB
}

func NewMySQLMenuRepository(db *sql.DB) *MySQLMenuRepository {
	return &MySQLMenuRepository{db: db}
}

func (m *MySQLMenuRepository) Lookup(ctx context.Context, itemID string) (*domain.MenuItem, error) {
	var item domain.MenuItem
	err := m.db.QueryRowContext(ctx, `
		SELECT item_id, name, price, available
		FROM menu_items WHERE item_id = ?`, itemID,
	).Scan(&item.ItemID, &item.Name, &item.Price, &item.Available)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("item %q: %w", itemID, domain.ErrItemNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("query menu item: %w", err)
	}

	return &item, nil
}

func (m *MySQLMenuRepository) IsItemAvailable(ctx context.Context, itemID string) (bool, error) {
	var available bool
	err := m.db.QueryRowContext(ctx, `
		SELECT available FROM menu_items WHERE item_id = ?`, itemID,
	).Scan(&available)

	// A missing item is simply not available.
	if errors.Is(err, sql.ErrNoRows) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("query availability: %w", err)
	}

	return available, nil
}

func (m *MySQLMenuRepository) Price(ctx context.Context, itemID string) (float64, error) {
	var price float64
	err := m.db.QueryRowContext(ctx, `
		SELECT price FROM menu_items WHERE item_id = ?`, itemID,
	).Scan(&price)

	if errors.Is(err, sql.ErrNoRows) {
		return 0, fmt.Errorf("item %q: %w", itemID, domain.ErrItemNotFound)
	}
	if err != nil {
		return 0, fmt.Errorf("query price: %w", err)
	}

	return price, nil
}
