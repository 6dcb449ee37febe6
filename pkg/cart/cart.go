// Package cart implements the client-resident shopping cart: a plain
// owned-state object with explicit mutation methods, independent of any UI
// framework. A cart belongs to exactly one user session and is never shared,
// so it needs no locking. Its totals are display estimates only — the order
// service re-prices everything server-side at checkout.
package cart

import "github.com/shopspring/decimal"

// Product is the subset of catalog data the cart captures at add time.
type Product struct {
	ID    string
	Name  string
	Price decimal.Decimal
}

// Line is one product+quantity entry within a cart. UnitPrice is the price
// captured when the product was first added.
type Line struct {
	ProductID string
	Name      string
	UnitPrice decimal.Decimal
	Quantity  int
}

// CheckoutItem is the (productId, quantity) pair submitted to POST /orders.
type CheckoutItem struct {
	ProductID string `json:"productId"`
	Quantity  int    `json:"quantity"`
}

// Cart holds the session's selected lines keyed by product id.
type Cart struct {
	lines map[string]*Line
	order []string // insertion order, for stable snapshots
}

// New returns an empty cart.
func New() *Cart {
	return &Cart{lines: map[string]*Line{}}
}

// AddItem increments the quantity for product's line, inserting a new line
// with quantity 1 if none exists. No stock ceiling is enforced here; stock is
// validated server-side at checkout.
func (c *Cart) AddItem(p Product) {
	if ln, ok := c.lines[p.ID]; ok {
		ln.Quantity++
		return
	}
	c.lines[p.ID] = &Line{
		ProductID: p.ID,
		Name:      p.Name,
		UnitPrice: p.Price,
		Quantity:  1,
	}
	c.order = append(c.order, p.ID)
}

// RemoveItem deletes the line for productID. Unknown ids are a no-op.
func (c *Cart) RemoveItem(productID string) {
	if _, ok := c.lines[productID]; !ok {
		return
	}
	delete(c.lines, productID)
	for i, id := range c.order {
		if id == productID {
			c.order = append(c.order[:i], c.order[i+1:]...)
			break
		}
	}
}

// SetQuantity replaces the line's quantity with n. n <= 0 removes the line.
// Unknown ids are a no-op.
func (c *Cart) SetQuantity(productID string, n int) {
	if n <= 0 {
		c.RemoveItem(productID)
		return
	}
	if ln, ok := c.lines[productID]; ok {
		ln.Quantity = n
	}
}

// TotalPrice sums quantity * captured unit price over all lines. Display
// estimate only.
func (c *Cart) TotalPrice() decimal.Decimal {
	total := decimal.Zero
	for _, ln := range c.lines {
		total = total.Add(ln.UnitPrice.Mul(decimal.NewFromInt(int64(ln.Quantity))))
	}
	return total
}

// TotalItemCount sums quantities over all lines.
func (c *Cart) TotalItemCount() int {
	n := 0
	for _, ln := range c.lines {
		n += ln.Quantity
	}
	return n
}

// Clear empties the cart. Called after a successful checkout.
func (c *Cart) Clear() {
	c.lines = map[string]*Line{}
	c.order = nil
}

// Lines returns a snapshot of the current lines in insertion order.
func (c *Cart) Lines() []Line {
	out := make([]Line, 0, len(c.order))
	for _, id := range c.order {
		out = append(out, *c.lines[id])
	}
	return out
}

// CheckoutItems builds the order submission payload from the current lines.
func (c *Cart) CheckoutItems() []CheckoutItem {
	out := make([]CheckoutItem, 0, len(c.order))
	for _, id := range c.order {
		out = append(out, CheckoutItem{ProductID: id, Quantity: c.lines[id].Quantity})
	}
	return out
}
