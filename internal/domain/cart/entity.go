// internal/domain/cart/entity.go
package cart

import (
	"errors"
	"math"
	"strings"
)

var (
	ErrInvalidLine = errors.New("cart: invalid line")
)

// Line represents one product's entry in the cart.
// Name/Price/Image are a denormalized snapshot captured at add-time and are
// NOT refreshed on later adds for the same product (checkout totals keep
// the price the buyer first saw).
type Line struct {
	ProductID string  `json:"id"`
	Name      string  `json:"name"`
	Price     float64 `json:"price"`
	Image     string  `json:"image"`
	Quantity  int     `json:"quantity"`
}

// Valid reports whether the line can participate in a total:
// quantity >= 1 and a finite non-negative price.
func (l Line) Valid() bool {
	return l.Quantity >= 1 && validPrice(l.Price)
}

// Cart holds lines ordered by insertion, at most one per product id.
type Cart struct {
	lines []Line
}

// NewCart builds a cart from already-sanitized lines (see DecodeLines).
// nil is treated as empty.
func NewCart(lines []Line) *Cart {
	c := &Cart{lines: []Line{}}
	for _, l := range lines {
		l.ProductID = strings.TrimSpace(l.ProductID)
		if l.ProductID == "" {
			continue
		}
		if l.Quantity < 1 {
			l.Quantity = 1
		}
		if idx := c.index(l.ProductID); idx >= 0 {
			c.lines[idx].Quantity += l.Quantity
			continue
		}
		c.lines = append(c.lines, l)
	}
	return c
}

// Add merges the line into the cart.
// If a line for the product already exists its quantity is incremented by
// line.Quantity; the existing denormalized fields are kept as-is.
// Quantity < 1 is rejected with ErrInvalidLine.
func (c *Cart) Add(line Line) error {
	if c == nil {
		return ErrInvalidLine
	}

	pid := strings.TrimSpace(line.ProductID)
	if pid == "" || line.Quantity < 1 {
		return ErrInvalidLine
	}
	line.ProductID = pid

	if idx := c.index(pid); idx >= 0 {
		c.lines[idx].Quantity += line.Quantity
		return nil
	}

	c.lines = append(c.lines, line)
	return nil
}

// Remove deletes the line unconditionally. Returns false if absent.
func (c *Cart) Remove(productID string) bool {
	if c == nil {
		return false
	}
	idx := c.index(strings.TrimSpace(productID))
	if idx < 0 {
		return false
	}
	c.lines = append(c.lines[:idx], c.lines[idx+1:]...)
	return true
}

// Increase adds 1 to the line's quantity. Returns false if absent.
func (c *Cart) Increase(productID string) bool {
	if c == nil {
		return false
	}
	idx := c.index(strings.TrimSpace(productID))
	if idx < 0 {
		return false
	}
	c.lines[idx].Quantity++
	return true
}

// Decrease subtracts 1 from the line's quantity, with a floor of 1.
// At quantity 1 this is a no-op; only Remove deletes a line.
// Returns false if the line is absent or already at the floor.
func (c *Cart) Decrease(productID string) bool {
	if c == nil {
		return false
	}
	idx := c.index(strings.TrimSpace(productID))
	if idx < 0 {
		return false
	}
	if c.lines[idx].Quantity <= 1 {
		return false
	}
	c.lines[idx].Quantity--
	return true
}

// Clear empties the cart (used after checkout).
func (c *Cart) Clear() {
	if c == nil {
		return
	}
	c.lines = []Line{}
}

// Lines returns a copy in insertion order.
func (c *Cart) Lines() []Line {
	if c == nil || len(c.lines) == 0 {
		return []Line{}
	}
	out := make([]Line, len(c.lines))
	copy(out, c.lines)
	return out
}

// Total sums price * quantity over valid lines and returns the ids of
// lines that were excluded. Callers decide how to report those (the
// usecase logs a warning); the total itself never fails.
func (c *Cart) Total() (float64, []string) {
	if c == nil {
		return 0, nil
	}

	var total float64
	var skipped []string
	for _, l := range c.lines {
		if !l.Valid() {
			skipped = append(skipped, l.ProductID)
			continue
		}
		total += l.Price * float64(l.Quantity)
	}
	return total, skipped
}

func (c *Cart) Len() int {
	if c == nil {
		return 0
	}
	return len(c.lines)
}

func (c *Cart) index(productID string) int {
	for i := range c.lines {
		if c.lines[i].ProductID == productID {
			return i
		}
	}
	return -1
}

func validPrice(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0) && v >= 0
}
