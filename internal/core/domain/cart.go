package domain

import "errors"

var ErrInvalidQuantity = errors.New("quantity must be at least 1")

// CartItem is a single requested line: a menu item id plus how many of it.
type CartItem struct {
	ItemID   string
	Quantity int
}

// Cart holds the line items of one order in insertion order. It is owned by a
// single OrderPlacement for its whole lifetime and is only mutated through
// AddItem and RemoveItem.
type Cart struct {
	items []CartItem
}

func NewCart() *Cart {
	return &Cart{}
}

// AddItem appends a line for itemID, merging into an existing line when the
// item is already in the cart.
func (c *Cart) AddItem(itemID string, quantity int) error {
	if quantity < 1 {
		return ErrInvalidQuantity
	}

	for i := range c.items {
		if c.items[i].ItemID == itemID {
			c.items[i].Quantity += quantity
			return nil
		}
	}

	c.items = append(c.items, CartItem{ItemID: itemID, Quantity: quantity})
	return nil
}

// RemoveItem drops the line for itemID. Removing an absent item is a no-op.
func (c *Cart) RemoveItem(itemID string) {
	for i := range c.items {
		if c.items[i].ItemID == itemID {
			c.items = append(c.items[:i], c.items[i+1:]...)
			return
		}
	}
}

// Items returns a copy of the cart lines so callers cannot mutate the cart
// behind its owner's back.
func (c *Cart) Items() []CartItem {
	items := make([]CartItem, len(c.items))
	copy(items, c.items)
	return items
}

func (c *Cart) IsEmpty() bool {
	return len(c.items) == 0
}

func (c *Cart) Len() int {
	return len(c.items)
}
