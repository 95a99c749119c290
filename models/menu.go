package models

// MenuItem is a purchasable item in the catalog. Items are immutable at
// runtime; the catalog is seeded from the menu file on startup.
type MenuItem struct {
	ID    uint    `json:"id" gorm:"primaryKey"`
	Name  string  `json:"name" gorm:"not null"`
	Price float64 `json:"price" gorm:"not null"`
	Type  string  `json:"type" gorm:"not null;index"` // "food", "drinks", ...
}

// Menu maps a category tag to its items, the shape served by GET /api/menu.
type Menu map[string][]MenuItem
