package carousel

import (
	"context"
	"fmt"

	"retiro-storefront/internal/model"

	"github.com/google/uuid"
	"github.com/jonboulle/clockwork"
)

// CartAppender is the shared cart collection. The carousel only appends.
type CartAppender interface {
	AddToCart(ctx context.Context, cartID string, line model.CartLineItem) error
}

// Adapter converts a promotable item and a quantity into a cart line and
// appends it to the shared cart.
type Adapter struct {
	cart  CartAppender
	clock clockwork.Clock
}

// NewAdapter creates a cart insertion adapter.
func NewAdapter(cart CartAppender, clock clockwork.Clock) *Adapter {
	return &Adapter{cart: cart, clock: clock}
}

// LineItem builds the cart line for item and quantity.
func (a *Adapter) LineItem(item model.PromotableItem, quantity int) (model.CartLineItem, error) {
	if quantity < 1 {
		return model.CartLineItem{}, model.ErrInvalidQuantity
	}

	slide := item.Slide()
	if !slide.Purchasable || slide.Price == nil {
		return model.CartLineItem{}, model.ErrNotPurchasable
	}

	return model.CartLineItem{
		ID:          uuid.New(),
		ItemID:      slide.ID.String(),
		Name:        slide.Title,
		Description: slide.Description,
		UnitPrice:   *slide.Price,
		Category:    string(slide.Kind),
		Image:       slide.ImageURL,
		Quantity:    quantity,
		TotalPrice:  model.LineTotal(*slide.Price, quantity),
		AddedAt:     a.clock.Now().UTC(),
	}, nil
}

// Insert appends one line for item to the cart identified by cartID.
func (a *Adapter) Insert(ctx context.Context, cartID string, item model.PromotableItem, quantity int) (model.CartLineItem, error) {
	line, err := a.LineItem(item, quantity)
	if err != nil {
		return model.CartLineItem{}, err
	}

	if err := a.cart.AddToCart(ctx, cartID, line); err != nil {
		return model.CartLineItem{}, fmt.Errorf("failed to add to cart: %w", err)
	}

	return line, nil
}
