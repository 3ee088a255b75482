package service

import "errors"

var (
	// ErrEmptyCart rejects validation of a cart with no lines.
	ErrEmptyCart = errors.New("cart is empty, nothing to confirm")

	// ErrItemUnavailable rejects a cart line whose menu item cannot
	// currently be ordered.
	ErrItemUnavailable = errors.New("menu item is unavailable")
)
