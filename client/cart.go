package client

import "sort"

// Cart maps menu item ids to selected quantities for the active browsing
// session. Pure state: it does not validate item existence and has no
// upper bound; quantity 0 is equivalent to absence.
type Cart struct {
	quantities map[uint]int
}

func NewCart() *Cart {
	return &Cart{quantities: make(map[uint]int)}
}

// Increase increments the quantity for the item by one.
func (c *Cart) Increase(itemID uint) {
	c.quantities[itemID]++
}

// Decrease decrements the quantity by one, floored at zero.
func (c *Cart) Decrease(itemID uint) {
	if c.quantities[itemID] > 0 {
		c.quantities[itemID]--
	}
}

// Quantity returns the selected quantity for the item.
func (c *Cart) Quantity(itemID uint) int {
	return c.quantities[itemID]
}

// Items returns the item ids with quantity > 0 in ascending id order.
func (c *Cart) Items() []uint {
	ids := make([]uint, 0, len(c.quantities))
	for id, q := range c.quantities {
		if q > 0 {
			ids = append(ids, id)
		}
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}

// Clear resets the cart after a successful submission.
func (c *Cart) Clear() {
	c.quantities = make(map[uint]int)
}
