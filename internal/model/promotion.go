package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Promotion is a site-wide promotional banner. Promotions carry no price.
type Promotion struct {
	ID             uuid.UUID `json:"id" db:"id"`
	Title          string    `json:"title" db:"title"`
	Subtitle       string    `json:"subtitle" db:"subtitle"`
	Description    string    `json:"description" db:"description"`
	ImageURL       string    `json:"imageUrl" db:"image_url"`
	GradientColors string    `json:"gradientColors" db:"gradient_colors"`
	BadgeText      string    `json:"badgeText" db:"badge_text"`
	PromoCode      string    `json:"promoCode" db:"promo_code"`
	ValidUntil     string    `json:"validUntil" db:"valid_until"`
	Active         bool      `json:"active" db:"active"`
	SortOrder      int       `json:"sortOrder" db:"sort_order"`
	CreatedAt      time.Time `json:"createdAt" db:"created_at"`
	UpdatedAt      time.Time `json:"updatedAt" db:"updated_at"`
}

// PromotionRequest is the admin payload for creating or replacing a promotion.
type PromotionRequest struct {
	Title          string `json:"title"`
	Subtitle       string `json:"subtitle"`
	Description    string `json:"description"`
	ImageURL       string `json:"imageUrl"`
	GradientColors string `json:"gradientColors"`
	BadgeText      string `json:"badgeText"`
	PromoCode      string `json:"promoCode"`
	ValidUntil     string `json:"validUntil"`
	Active         bool   `json:"active"`
	SortOrder      int    `json:"sortOrder"`
}

// Validate checks the request fields.
func (r *PromotionRequest) Validate() error {
	if r.Title == "" {
		return ValidationError("title is required")
	}
	if r.SortOrder < 0 {
		return ValidationError("sortOrder must not be negative")
	}
	return nil
}

// ExclusiveOffer is a premium, purchasable dish shown in the offers carousel.
type ExclusiveOffer struct {
	ID            uuid.UUID       `json:"id" db:"id"`
	Title         string          `json:"title" db:"title"`
	Subtitle      *string         `json:"subtitle,omitempty" db:"subtitle"`
	Description   *string         `json:"description,omitempty" db:"description"`
	Price         decimal.Decimal `json:"price" db:"price"`
	OriginalPrice decimal.Decimal `json:"originalPrice" db:"original_price"`
	DiscountText  *string         `json:"discountText,omitempty" db:"discount_text"`
	ImageURL      *string         `json:"imageUrl,omitempty" db:"image_url"`
	BadgeText     *string         `json:"badgeText,omitempty" db:"badge_text"`
	Available     bool            `json:"available" db:"available"`
	DisplayOrder  int             `json:"displayOrder" db:"display_order"`
	CreatedAt     time.Time       `json:"createdAt" db:"created_at"`
	UpdatedAt     time.Time       `json:"updatedAt" db:"updated_at"`
}

// OfferRequest is the admin payload for creating or replacing an exclusive offer.
type OfferRequest struct {
	Title         string          `json:"title"`
	Subtitle      *string         `json:"subtitle,omitempty"`
	Description   *string         `json:"description,omitempty"`
	Price         decimal.Decimal `json:"price"`
	OriginalPrice decimal.Decimal `json:"originalPrice"`
	DiscountText  *string         `json:"discountText,omitempty"`
	ImageURL      *string         `json:"imageUrl,omitempty"`
	BadgeText     *string         `json:"badgeText,omitempty"`
	Available     bool            `json:"available"`
	DisplayOrder  int             `json:"displayOrder"`
}

// Validate checks the request fields.
func (r *OfferRequest) Validate() error {
	if r.Title == "" {
		return ValidationError("title is required")
	}
	if r.Price.IsNegative() {
		return ValidationError("price must not be negative")
	}
	if r.OriginalPrice.IsNegative() {
		return ValidationError("originalPrice must not be negative")
	}
	if r.DisplayOrder < 0 {
		return ValidationError("displayOrder must not be negative")
	}
	return nil
}
