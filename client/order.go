package client

import (
	"context"
	"net/http"
	"strings"

	"restaurant-pos-api/models"
)

type orderLine struct {
	ID       uint    `json:"id"`
	Name     string  `json:"name"`
	Type     string  `json:"type"`
	Price    float64 `json:"price"`
	Quantity int     `json:"quantity"`
}

type placeOrderRequest struct {
	TableNumber  string      `json:"tableNumber"`
	Comment      string      `json:"comment"`
	OrderedItems []orderLine `json:"orderedItems"`
	TotalCost    float64     `json:"totalCost"`
}

// PlaceOrder validates the cart against the menu, submits the order and
// returns the summary seeded with the submitted snapshot. Validation
// failures (*ValidationError, *ItemNotFoundError) happen before any
// network I/O; on any submission failure the cart is left untouched so
// the user can retry.
func (c *Client) PlaceOrder(ctx context.Context, cart *Cart, tableNumber, comment string, menu models.Menu) (*Summary, error) {
	// Resolve every selected item against the catalog. The lines are a
	// snapshot: name, type and price are copied, not referenced.
	lookup := make(map[uint]models.MenuItem)
	for _, items := range menu {
		for _, item := range items {
			lookup[item.ID] = item
		}
	}

	var lines []orderLine
	var total float64
	for _, id := range cart.Items() {
		item, ok := lookup[id]
		if !ok {
			return nil, &ItemNotFoundError{ItemID: id}
		}
		quantity := cart.Quantity(id)
		total += item.Price * float64(quantity)
		lines = append(lines, orderLine{
			ID:       item.ID,
			Name:     item.Name,
			Type:     item.Type,
			Price:    item.Price,
			Quantity: quantity,
		})
	}

	if strings.TrimSpace(tableNumber) == "" {
		return nil, &ValidationError{Field: "tableNumber", Message: "missing table number"}
	}
	if len(lines) == 0 {
		return nil, &ValidationError{Field: "orderedItems", Message: "empty order"}
	}

	req := placeOrderRequest{
		TableNumber:  strings.TrimSpace(tableNumber),
		Comment:      comment,
		OrderedItems: lines,
		TotalCost:    total,
	}
	if err := c.do(ctx, http.MethodPost, "/api/order", req, nil); err != nil {
		return nil, err
	}

	return newSummary(req.TableNumber, comment, lines), nil
}
