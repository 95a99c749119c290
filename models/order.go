package models

import "time"

// OrderStatus represents the kitchen-visible state of an order
type OrderStatus string

const (
	StatusOpen      OrderStatus = "open"
	StatusCompleted OrderStatus = "completed"
)

type Order struct {
	ID          string      `json:"id" gorm:"primaryKey"`
	Timestamp   string      `json:"timestamp" gorm:"uniqueIndex;not null"`
	TableNumber string      `json:"tableNumber" gorm:"not null"`
	Comment     string      `json:"comment"`
	TotalCost   float64     `json:"totalCost"`
	Status      OrderStatus `json:"status" gorm:"not null;default:'open';index"`
	CreatedBy   *uint       `json:"created_by,omitempty"`
	Creator     *User       `json:"creator,omitempty" gorm:"foreignKey:CreatedBy"`
	Items       []OrderLine `json:"orderedItems" gorm:"foreignKey:OrderID"`
	CreatedAt   time.Time   `json:"created_at"`
	UpdatedAt   time.Time   `json:"updated_at"`
}

// OrderLine is a snapshot of a menu item at submission time. Name, type and
// price are copied from the catalog so later menu edits never change a
// submitted order.
type OrderLine struct {
	LineID   uint    `json:"-" gorm:"primaryKey;autoIncrement"`
	OrderID  string  `json:"-" gorm:"not null;index"`
	ItemID   uint    `json:"id" gorm:"not null"`
	Name     string  `json:"name" gorm:"not null"`
	Type     string  `json:"type" gorm:"not null"`
	Price    float64 `json:"price" gorm:"not null"`
	Quantity int     `json:"quantity" gorm:"not null"`
}

// HasType reports whether the order contains at least one line of the
// given item type.
func (o *Order) HasType(itemType string) bool {
	for _, line := range o.Items {
		if line.Type == itemType {
			return true
		}
	}
	return false
}

// LinesOfType returns only the lines matching the given item type.
func (o *Order) LinesOfType(itemType string) []OrderLine {
	var lines []OrderLine
	for _, line := range o.Items {
		if line.Type == itemType {
			lines = append(lines, line)
		}
	}
	return lines
}

// SalesSummary is the aggregate served by GET /api/orders/summary.
type SalesSummary struct {
	TotalRevenue      float64 `json:"total_revenue"`
	TotalOrders       int64   `json:"total_orders"`
	AverageOrderValue float64 `json:"average_order_value"`
	MaxOrderValue     float64 `json:"max_order_value"`
	MinOrderValue     float64 `json:"min_order_value"`
}
