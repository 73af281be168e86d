package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Order represents a checked-out cart.
type Order struct {
	ID        uuid.UUID       `json:"id" db:"id"`
	CartID    string          `json:"cartId" db:"cart_id"`
	PromoCode *string         `json:"promoCode,omitempty" db:"promo_code"`
	Total     decimal.Decimal `json:"total" db:"total"`
	CreatedAt time.Time       `json:"createdAt" db:"created_at"`
	UpdatedAt time.Time       `json:"updatedAt" db:"updated_at"`
}

// OrderItem represents a line item in an order.
type OrderItem struct {
	ID         uuid.UUID       `json:"-" db:"id"`
	OrderID    uuid.UUID       `json:"-" db:"order_id"`
	ItemID     string          `json:"itemId" db:"item_id"`
	Name       string          `json:"name" db:"name"`
	Category   string          `json:"category" db:"category"`
	UnitPrice  decimal.Decimal `json:"unitPrice" db:"unit_price"`
	Quantity   int             `json:"quantity" db:"quantity"`
	TotalPrice decimal.Decimal `json:"totalPrice" db:"total_price"`
}

// OrderRequest checks out a cart.
type OrderRequest struct {
	CartID    string  `json:"cartId"`
	PromoCode *string `json:"promoCode,omitempty"`
}

// OrderResponse represents the response payload for an order.
type OrderResponse struct {
	Order Order       `json:"order"`
	Items []OrderItem `json:"items"`
}
