// Package cart holds the shopping cart aggregate. A cart belongs to a
// single client session and is never persisted server-side; losing the
// session loses the cart.
package cart

import "github.com/skyyuga/tyremart-api/pricing"

// Snapshot captures the product display state at add-to-cart time.
type Snapshot struct {
	ProductID string  `json:"productId"`
	Title     string  `json:"title"`
	Cost      float64 `json:"cost"`
	Discount  float64 `json:"discount"`
	GSTRate   int     `json:"gstRate"`
	Image     string  `json:"image"`
	Category  string  `json:"category"`
}

// Line pairs a product snapshot with a quantity. A cart holds at most
// one line per product id.
type Line struct {
	Snapshot
	Quantity int `json:"quantity"`
}

type Cart struct {
	lines []Line
}

func New() *Cart {
	return &Cart{}
}

// Add puts a product in the cart. If a line for the product already
// exists its quantity is incremented instead of a duplicate line being
// created. Quantities below one are treated as one.
func (c *Cart) Add(p Snapshot, quantity int) {
	if quantity < 1 {
		quantity = 1
	}
	for i := range c.lines {
		if c.lines[i].ProductID == p.ProductID {
			c.lines[i].Quantity += quantity
			return
		}
	}
	c.lines = append(c.lines, Line{Snapshot: p, Quantity: quantity})
}

// UpdateQuantity replaces a line's quantity. Zero or negative is a
// delete signal and removes the line. Unknown product ids are ignored.
func (c *Cart) UpdateQuantity(productID string, quantity int) {
	if quantity <= 0 {
		c.Remove(productID)
		return
	}
	for i := range c.lines {
		if c.lines[i].ProductID == productID {
			c.lines[i].Quantity = quantity
			return
		}
	}
}

// Remove drops the line for the given product id, if present.
func (c *Cart) Remove(productID string) {
	for i := range c.lines {
		if c.lines[i].ProductID == productID {
			c.lines = append(c.lines[:i], c.lines[i+1:]...)
			return
		}
	}
}

func (c *Cart) Clear() {
	c.lines = nil
}

// Lines returns a copy of the cart contents in insertion order.
func (c *Cart) Lines() []Line {
	out := make([]Line, len(c.lines))
	copy(out, c.lines)
	return out
}

func (c *Cart) Len() int {
	return len(c.lines)
}

func (c *Cart) IsEmpty() bool {
	return len(c.lines) == 0
}

// Totals derives the price breakdown from the current cart state. It
// is recomputed on every call; nothing is cached on the cart, so the
// result can never go stale against the lines.
func (c *Cart) Totals() pricing.Summary {
	lines := make([]pricing.Line, 0, len(c.lines))
	for _, l := range c.lines {
		lines = append(lines, pricing.Line{
			Cost:     l.Cost,
			Discount: l.Discount,
			GSTRate:  l.GSTRate,
			Quantity: l.Quantity,
		})
	}
	return pricing.Summarize(lines)
}
