package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// CartLineItem is a single entry appended to a shared cart.
type CartLineItem struct {
	ID          uuid.UUID       `json:"id"`
	ItemID      string          `json:"itemId"`
	Name        string          `json:"name"`
	Description string          `json:"description,omitempty"`
	UnitPrice   decimal.Decimal `json:"unitPrice"`
	Category    string          `json:"category"`
	Image       string          `json:"image,omitempty"`
	Quantity    int             `json:"quantity"`
	TotalPrice  decimal.Decimal `json:"totalPrice"`
	AddedAt     time.Time       `json:"addedAt"`
}

// AddToCartRequest adds a menu item to a cart.
type AddToCartRequest struct {
	MenuItemID string `json:"menuItemId"`
	Quantity   int    `json:"quantity"`
}

// CartResponse is a cart with its running total.
type CartResponse struct {
	CartID string          `json:"cartId"`
	Items  []CartLineItem  `json:"items"`
	Total  decimal.Decimal `json:"total"`
}

// LineTotal multiplies a unit price by a quantity, rounded to cents.
func LineTotal(unitPrice decimal.Decimal, quantity int) decimal.Decimal {
	return unitPrice.Mul(decimal.NewFromInt(int64(quantity))).Round(2)
}
