package domain

import "errors"

var ErrItemNotFound = errors.New("menu item not found")

// MenuItem is owned by the restaurant menu capability; the core only reads it.
type MenuItem struct {
	ItemID    string
	Name      string
	Price     float64
	Available bool
}
