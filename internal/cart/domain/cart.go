package domain

import "errors"

var ErrIndexOutOfRange = errors.New("cart index out of range")

type Money struct {
	Currency string
	Amount   int64
}

// LineItem carries the product name and price as they were at add time;
// later catalog changes do not touch lines already in a cart.
type LineItem struct {
	ProductID string
	Name      string
	Size      string
	UnitPrice Money
	Quantity  int32
}

func (li LineItem) Subtotal() int64 {
	return li.UnitPrice.Amount * int64(li.Quantity)
}

// Cart is the ordered sequence of line items for one session. It is not
// safe for concurrent use; a session has a single logical user.
type Cart struct {
	items []LineItem
}

func New() *Cart {
	return &Cart{}
}

// Add appends a line item. Adding the same product and size twice yields
// two distinct lines; lines are never merged.
func (c *Cart) Add(item LineItem) {
	if item.Quantity < 1 {
		item.Quantity = 1
	}
	c.items = append(c.items, item)
}

func (c *Cart) Increment(index int) error {
	if index < 0 || index >= len(c.items) {
		return ErrIndexOutOfRange
	}
	c.items[index].Quantity++
	return nil
}

// Decrement lowers the quantity at index, floored at 1. At quantity 1 it
// is a no-op, not a removal.
func (c *Cart) Decrement(index int) error {
	if index < 0 || index >= len(c.items) {
		return ErrIndexOutOfRange
	}
	if c.items[index].Quantity > 1 {
		c.items[index].Quantity--
	}
	return nil
}

// Remove deletes the line at index. Following lines shift down, so
// callers must not hold on to indices across a removal.
func (c *Cart) Remove(index int) error {
	if index < 0 || index >= len(c.items) {
		return ErrIndexOutOfRange
	}
	c.items = append(c.items[:index], c.items[index+1:]...)
	return nil
}

func (c *Cart) Clear() {
	c.items = nil
}

func (c *Cart) Len() int {
	return len(c.items)
}

// Items returns a copy of the cart lines; mutating the result does not
// touch the cart.
func (c *Cart) Items() []LineItem {
	return append([]LineItem(nil), c.items...)
}

// Total sums price times quantity over all lines. An empty cart totals
// zero with no currency.
func (c *Cart) Total() Money {
	if len(c.items) == 0 {
		return Money{}
	}
	total := Money{Currency: c.items[0].UnitPrice.Currency}
	for _, li := range c.items {
		total.Amount += li.Subtotal()
	}
	return total
}
