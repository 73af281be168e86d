package service

import (
	"context"

	"retiro-storefront/internal/carousel"
	"retiro-storefront/internal/model"

	"github.com/google/uuid"
)

// MenuService defines operations for the storefront menu.
type MenuService interface {
	// GetMenu returns active categories with their available items.
	GetMenu(ctx context.Context) (*model.MenuResponse, error)
}

// PromotionService defines operations for promotion management. It is also
// the data source of the promotions carousel.
type PromotionService interface {
	carousel.DataSource

	GetAll(ctx context.Context) ([]model.Promotion, error)
	GetByID(ctx context.Context, id uuid.UUID) (*model.Promotion, error)
	Create(ctx context.Context, req *model.PromotionRequest) (*model.Promotion, error)
	Update(ctx context.Context, id uuid.UUID, req *model.PromotionRequest) (*model.Promotion, error)
	Delete(ctx context.Context, id uuid.UUID) error

	// Toggle flips the active flag.
	Toggle(ctx context.Context, id uuid.UUID) (*model.Promotion, error)

	GetSettings(ctx context.Context) (model.PromotionSettings, error)
	UpdateSettings(ctx context.Context, settings model.PromotionSettings) (model.PromotionSettings, error)
}

// OfferService defines operations for exclusive offer management. It is also
// the data source of the exclusive offers carousel.
type OfferService interface {
	carousel.DataSource

	GetAll(ctx context.Context) ([]model.ExclusiveOffer, error)
	GetByID(ctx context.Context, id uuid.UUID) (*model.ExclusiveOffer, error)
	Create(ctx context.Context, req *model.OfferRequest) (*model.ExclusiveOffer, error)
	Update(ctx context.Context, id uuid.UUID, req *model.OfferRequest) (*model.ExclusiveOffer, error)
	Delete(ctx context.Context, id uuid.UUID) error

	// Toggle flips the available flag.
	Toggle(ctx context.Context, id uuid.UUID) (*model.ExclusiveOffer, error)

	GetSettings(ctx context.Context) (model.OfferSettings, error)
	UpdateSettings(ctx context.Context, settings model.OfferSettings) (model.OfferSettings, error)
}

// CartService defines operations on shared carts.
type CartService interface {
	// AddMenuItem appends a menu item line to the cart.
	AddMenuItem(ctx context.Context, cartID string, req *model.AddToCartRequest) (*model.CartLineItem, error)

	// Get returns the cart lines and running total.
	Get(ctx context.Context, cartID string) (*model.CartResponse, error)

	// Clear empties the cart.
	Clear(ctx context.Context, cartID string) error
}

// CarouselService manages live carousel sessions.
type CarouselService interface {
	// Create fetches the feed for kind and opens a session bound to cartID.
	Create(ctx context.Context, req *model.CreateCarouselRequest) (carousel.State, error)

	// Get returns the current state of a session.
	Get(id uuid.UUID) (carousel.State, error)

	// Apply applies one user interaction and returns the resulting state.
	Apply(ctx context.Context, id uuid.UUID, event model.CarouselEvent) (carousel.State, error)

	// Refresh re-fetches the feed of a session.
	Refresh(ctx context.Context, id uuid.UUID) (carousel.State, error)

	// Close disposes a session and its timers.
	Close(id uuid.UUID) error
}

// OrderService defines operations for order management.
type OrderService interface {
	// CreateOrder checks out a cart with optional promo code validation.
	CreateOrder(ctx context.Context, req *model.OrderRequest) (*model.OrderResponse, error)

	// GetByID retrieves an order by its ID with all items.
	GetByID(ctx context.Context, id uuid.UUID) (*model.OrderResponse, error)
}
