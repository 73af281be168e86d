package service

import (
	"context"
	"fmt"
	"time"

	"retiro-storefront/internal/cart"
	"retiro-storefront/internal/model"
	"retiro-storefront/internal/repository"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
)

// cartService implements CartService.
type cartService struct {
	store       cart.Store
	menu        repository.MenuRepository
	maxQuantity int
	now         func() time.Time
	logger      zerolog.Logger
}

// NewCartService creates a new cart service. maxQuantity bounds the quantity
// of a single line.
func NewCartService(store cart.Store, menu repository.MenuRepository, maxQuantity int, logger zerolog.Logger) CartService {
	return &cartService{
		store:       store,
		menu:        menu,
		maxQuantity: maxQuantity,
		now:         time.Now,
		logger:      logger.With().Str("service", "cart").Logger(),
	}
}

func (s *cartService) AddMenuItem(ctx context.Context, cartID string, req *model.AddToCartRequest) (*model.CartLineItem, error) {
	if cartID == "" {
		return nil, model.ValidationError("cart id is required")
	}
	if req == nil || req.MenuItemID == "" {
		return nil, model.ValidationError("menuItemId is required")
	}
	if req.Quantity < 1 || req.Quantity > s.maxQuantity {
		s.logger.Warn().
			Str("menu_item_id", req.MenuItemID).
			Int("quantity", req.Quantity).
			Msg("invalid quantity")
		return nil, model.ErrInvalidQuantity
	}

	item, err := s.menu.GetByID(ctx, req.MenuItemID)
	if err != nil {
		s.logger.Error().Err(err).Str("menu_item_id", req.MenuItemID).Msg("failed to get menu item")
		return nil, fmt.Errorf("failed to get menu item: %w", err)
	}
	if item == nil || !item.Available {
		return nil, model.ErrMenuItemNotFound
	}

	line := model.CartLineItem{
		ID:          uuid.New(),
		ItemID:      item.ID,
		Name:        item.Name,
		Description: item.Description,
		UnitPrice:   item.Price,
		Category:    item.Category,
		Image:       item.ImageURL,
		Quantity:    req.Quantity,
		TotalPrice:  model.LineTotal(item.Price, req.Quantity),
		AddedAt:     s.now().UTC(),
	}

	if err := s.store.AddToCart(ctx, cartID, line); err != nil {
		s.logger.Error().Err(err).Str("cart_id", cartID).Msg("failed to add menu item to cart")
		return nil, fmt.Errorf("failed to add to cart: %w", err)
	}

	s.logger.Debug().
		Str("cart_id", cartID).
		Str("menu_item_id", item.ID).
		Int("quantity", req.Quantity).
		Msg("menu item added to cart")

	return &line, nil
}

func (s *cartService) Get(ctx context.Context, cartID string) (*model.CartResponse, error) {
	if cartID == "" {
		return nil, model.ValidationError("cart id is required")
	}

	items, err := s.store.Items(ctx, cartID)
	if err != nil {
		s.logger.Error().Err(err).Str("cart_id", cartID).Msg("failed to get cart")
		return nil, fmt.Errorf("failed to get cart: %w", err)
	}

	return &model.CartResponse{CartID: cartID, Items: items, Total: cartTotal(items)}, nil
}

func (s *cartService) Clear(ctx context.Context, cartID string) error {
	if cartID == "" {
		return model.ValidationError("cart id is required")
	}
	if err := s.store.Clear(ctx, cartID); err != nil {
		s.logger.Error().Err(err).Str("cart_id", cartID).Msg("failed to clear cart")
		return fmt.Errorf("failed to clear cart: %w", err)
	}
	return nil
}

func cartTotal(items []model.CartLineItem) decimal.Decimal {
	total := decimal.Zero
	for _, item := range items {
		total = total.Add(item.TotalPrice)
	}
	return total
}
