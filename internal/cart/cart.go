// Package cart holds a customer's in-progress selection for one restaurant's
// menu during one browsing session. Nothing here is persisted; a cart is
// discarded on successful checkout or when its session goes idle.
package cart

import "qr-dish-reality/internal/domain"

// Line is a (dish snapshot, quantity) pair.
type Line struct {
	Dish     domain.Dish `json:"dish"`
	Quantity int         `json:"quantity"`
}

// Cart is an insertion-ordered set of lines. All operations are total
// functions; unknown dish ids simply have no effect. A Cart is not safe for
// concurrent use; Store serializes access per session.
type Cart struct {
	lines []Line
}

func New() *Cart {
	return &Cart{}
}

// Add increments the quantity for the dish if it is already in the cart,
// otherwise appends a new line with quantity 1.
func (c *Cart) Add(dish domain.Dish) {
	for i := range c.lines {
		if c.lines[i].Dish.ID == dish.ID {
			c.lines[i].Quantity++
			return
		}
	}
	c.lines = append(c.lines, Line{Dish: dish, Quantity: 1})
}

// Remove decrements the quantity for the dish, dropping the line entirely
// when it reaches zero. Removing a dish that is not in the cart is a no-op.
func (c *Cart) Remove(dishID int) {
	for i := range c.lines {
		if c.lines[i].Dish.ID != dishID {
			continue
		}
		if c.lines[i].Quantity > 1 {
			c.lines[i].Quantity--
			return
		}
		c.lines = append(c.lines[:i], c.lines[i+1:]...)
		return
	}
}

// TotalPrice sums price times quantity across all lines.
func (c *Cart) TotalPrice() float64 {
	var total float64
	for _, line := range c.lines {
		total += line.Dish.Price * float64(line.Quantity)
	}
	return total
}

// TotalItems sums quantities across all lines.
func (c *Cart) TotalItems() int {
	var total int
	for _, line := range c.lines {
		total += line.Quantity
	}
	return total
}

// Lines returns the cart content in insertion order.
func (c *Cart) Lines() []Line {
	out := make([]Line, len(c.lines))
	copy(out, c.lines)
	return out
}

func (c *Cart) Empty() bool {
	return len(c.lines) == 0
}

func (c *Cart) Clear() {
	c.lines = nil
}
