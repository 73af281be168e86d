package model

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// PromotableKind tags the variant held by a PromotableItem.
type PromotableKind string

const (
	KindPromotion PromotableKind = "promotion"
	KindOffer     PromotableKind = "exclusive-offer"
)

// PromotableItem is either a Promotion or an ExclusiveOffer. Exactly one of
// the two pointers is set, matching Kind.
type PromotableItem struct {
	Kind      PromotableKind
	Promotion *Promotion
	Offer     *ExclusiveOffer
}

// FromPromotion wraps a promotion.
func FromPromotion(p Promotion) PromotableItem {
	return PromotableItem{Kind: KindPromotion, Promotion: &p}
}

// FromOffer wraps an exclusive offer.
func FromOffer(o ExclusiveOffer) PromotableItem {
	return PromotableItem{Kind: KindOffer, Offer: &o}
}

// Visible reports whether the item passes its variant's availability predicate.
func (i PromotableItem) Visible() bool {
	switch i.Kind {
	case KindPromotion:
		return i.Promotion != nil && i.Promotion.Active
	case KindOffer:
		return i.Offer != nil && i.Offer.Available
	default:
		return false
	}
}

// Slide is the rendering and interaction projection shared by both variants.
type Slide struct {
	ID            uuid.UUID        `json:"id"`
	Kind          PromotableKind   `json:"kind"`
	Title         string           `json:"title"`
	Subtitle      string           `json:"subtitle,omitempty"`
	Description   string           `json:"description,omitempty"`
	ImageURL      string           `json:"imageUrl,omitempty"`
	Badge         string           `json:"badge,omitempty"`
	PromoCode     string           `json:"promoCode,omitempty"`
	ValidUntil    string           `json:"validUntil,omitempty"`
	Price         *decimal.Decimal `json:"price,omitempty"`
	OriginalPrice *decimal.Decimal `json:"originalPrice,omitempty"`
	DiscountText  string           `json:"discountText,omitempty"`
	Purchasable   bool             `json:"purchasable"`
}

// Slide projects the item onto the carousel contract.
func (i PromotableItem) Slide() Slide {
	switch i.Kind {
	case KindPromotion:
		p := i.Promotion
		if p == nil {
			return Slide{}
		}
		return Slide{
			ID:          p.ID,
			Kind:        KindPromotion,
			Title:       p.Title,
			Subtitle:    p.Subtitle,
			Description: p.Description,
			ImageURL:    p.ImageURL,
			Badge:       p.BadgeText,
			PromoCode:   p.PromoCode,
			ValidUntil:  p.ValidUntil,
		}
	case KindOffer:
		o := i.Offer
		if o == nil {
			return Slide{}
		}
		price := o.Price
		original := o.OriginalPrice
		return Slide{
			ID:            o.ID,
			Kind:          KindOffer,
			Title:         o.Title,
			Subtitle:      deref(o.Subtitle),
			Description:   deref(o.Description),
			ImageURL:      deref(o.ImageURL),
			Badge:         deref(o.BadgeText),
			Price:         &price,
			OriginalPrice: &original,
			DiscountText:  deref(o.DiscountText),
			Purchasable:   true,
		}
	default:
		return Slide{}
	}
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
