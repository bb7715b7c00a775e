package entity

import "sync"

// CartItem is one cart line: a product reference and the accumulated
// quantity. Price and name are not captured here — the cart always resolves
// against the current catalog when rendered.
type CartItem struct {
	ProductCode string
	Quantity    int
}

// Cart holds one user's session cart. Items keep insertion order so the
// rendered list is stable across views. The transport may dispatch handlers
// on separate goroutines, so the cart guards its own state.
type Cart struct {
	mu         sync.Mutex
	quantities map[string]int
	order      []string
}

// NewCart returns an empty cart.
func NewCart() *Cart {
	return &Cart{quantities: make(map[string]int)}
}

// Add accumulates quantity for a product code. Repeated additions of the
// same code increment the existing line instead of replacing it.
func (c *Cart) Add(code string, quantity int) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if _, ok := c.quantities[code]; !ok {
		c.order = append(c.order, code)
	}
	c.quantities[code] += quantity
}

// Items returns the cart lines in insertion order.
func (c *Cart) Items() []CartItem {
	c.mu.Lock()
	defer c.mu.Unlock()
	items := make([]CartItem, 0, len(c.order))
	for _, code := range c.order {
		items = append(items, CartItem{ProductCode: code, Quantity: c.quantities[code]})
	}
	return items
}

// Empty reports whether the cart has no lines.
func (c *Cart) Empty() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.order) == 0
}
