package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// Category groups menu items on the storefront.
type Category struct {
	ID        string `json:"id" db:"id"`
	Name      string `json:"name" db:"name"`
	Icon      string `json:"icon" db:"icon"`
	SortOrder int    `json:"sortOrder" db:"sort_order"`
	Active    bool   `json:"active" db:"active"`
}

// MenuItem represents a dish on the menu.
type MenuItem struct {
	ID          string          `json:"id" db:"id"`
	Name        string          `json:"name" db:"name"`
	Description string          `json:"description" db:"description"`
	Price       decimal.Decimal `json:"price" db:"price"`
	Category    string          `json:"category" db:"category"`
	ImageURL    string          `json:"imageUrl,omitempty" db:"image_url"`
	Popular     bool            `json:"popular" db:"popular"`
	Available   bool            `json:"available" db:"available"`
	CreatedAt   time.Time       `json:"createdAt" db:"created_at"`
}

// MenuSection is a category with the items that belong to it.
type MenuSection struct {
	Category Category   `json:"category"`
	Items    []MenuItem `json:"items"`
}

// MenuResponse is the storefront menu, in category order.
type MenuResponse struct {
	DefaultCategory string        `json:"defaultCategory"`
	Sections        []MenuSection `json:"sections"`
}
