// Package cart holds a session-scoped shopping cart that merges repeated
// product selections into quantity-counted line items. All money is in
// integer cents.
package cart

import (
	"crypto/rand"
	"encoding/hex"
	"sync"

	"github.com/google/uuid"
)

// TaxRateBasisPoints is the store-wide sales tax, 8%.
const TaxRateBasisPoints = 800

// Item is one cart line. ID is an opaque token used for removal and
// quantity updates; merging is keyed by ProductID.
type Item struct {
	ID         string    `json:"id"`
	ProductID  uuid.UUID `json:"productId"`
	Name       string    `json:"name"`
	PriceCents int64     `json:"priceCents"`
	Image      string    `json:"image"`
	Quantity   int       `json:"quantity"`
}

// Entry is the product data needed to add a line to the cart.
type Entry struct {
	ProductID  uuid.UUID
	Name       string
	PriceCents int64
	Image      string
}

// Cart is an ordered sequence of items. Its own mutex makes each
// operation atomic, so concurrent requests carrying the same session key
// (two tabs, a retry) cannot corrupt the lines.
type Cart struct {
	mu    sync.Mutex
	items []Item
}

func New() *Cart {
	return &Cart{}
}

// AddItem merges by product: a repeat add bumps the existing line's
// quantity, a first add appends a new line with quantity 1.
func (c *Cart) AddItem(entry Entry) Item {
	c.mu.Lock()
	defer c.mu.Unlock()

	for i := range c.items {
		if c.items[i].ProductID == entry.ProductID {
			c.items[i].Quantity++
			return c.items[i]
		}
	}
	item := Item{
		ID:         newItemID(),
		ProductID:  entry.ProductID,
		Name:       entry.Name,
		PriceCents: entry.PriceCents,
		Image:      entry.Image,
		Quantity:   1,
	}
	c.items = append(c.items, item)
	return item
}

// RemoveItem deletes the line with the given opaque ID; absent IDs are a
// no-op.
func (c *Cart) RemoveItem(id string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.remove(id)
}

func (c *Cart) remove(id string) {
	for i := range c.items {
		if c.items[i].ID == id {
			c.items = append(c.items[:i], c.items[i+1:]...)
			return
		}
	}
}

// UpdateQuantity sets a line's quantity exactly; zero or negative removes
// the line.
func (c *Cart) UpdateQuantity(id string, quantity int) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if quantity <= 0 {
		c.remove(id)
		return
	}
	for i := range c.items {
		if c.items[i].ID == id {
			c.items[i].Quantity = quantity
			return
		}
	}
}

func (c *Cart) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.items = nil
}

// Items returns a copy of the lines in insertion order.
func (c *Cart) Items() []Item {
	c.mu.Lock()
	defer c.mu.Unlock()

	out := make([]Item, len(c.items))
	copy(out, c.items)
	return out
}

func (c *Cart) TotalItems() int {
	c.mu.Lock()
	defer c.mu.Unlock()

	total := 0
	for _, item := range c.items {
		total += item.Quantity
	}
	return total
}

func (c *Cart) SubtotalCents() int64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.subtotal()
}

// TaxCents is the sales tax on the subtotal, rounded half up.
func (c *Cart) TaxCents() int64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return taxOn(c.subtotal())
}

func (c *Cart) TotalCents() int64 {
	c.mu.Lock()
	defer c.mu.Unlock()

	subtotal := c.subtotal()
	return subtotal + taxOn(subtotal)
}

func (c *Cart) subtotal() int64 {
	var total int64
	for _, item := range c.items {
		total += item.PriceCents * int64(item.Quantity)
	}
	return total
}

func taxOn(subtotalCents int64) int64 {
	return (subtotalCents*TaxRateBasisPoints + 5000) / 10000
}

func newItemID() string {
	b := make([]byte, 6)
	if _, err := rand.Read(b); err != nil {
		panic("failed to generate cart item id")
	}
	return hex.EncodeToString(b)
}
