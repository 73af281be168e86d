package service

import (
	"context"
	"fmt"
	"time"

	"retiro-storefront/internal/cart"
	"retiro-storefront/internal/model"
	"retiro-storefront/internal/promocode"
	"retiro-storefront/internal/repository"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// orderService implements OrderService.
type orderService struct {
	orderRepo repository.OrderRepository
	carts     cart.Store
	validator promocode.Validator
	logger    zerolog.Logger
}

// NewOrderService creates a new order service.
func NewOrderService(
	orderRepo repository.OrderRepository,
	carts cart.Store,
	validator promocode.Validator,
	logger zerolog.Logger,
) OrderService {
	return &orderService{
		orderRepo: orderRepo,
		carts:     carts,
		validator: validator,
		logger:    logger.With().Str("service", "order").Logger(),
	}
}

// CreateOrder checks out a cart into an order. The order and its items are
// written in one transaction; the cart is cleared once it commits.
func (s *orderService) CreateOrder(ctx context.Context, req *model.OrderRequest) (*model.OrderResponse, error) {
	if req == nil || req.CartID == "" {
		return nil, model.ValidationError("cartId is required")
	}

	var promoCode *string
	if req.PromoCode != nil && *req.PromoCode != "" {
		if err := s.validator.Validate(ctx, *req.PromoCode); err != nil {
			s.logger.Warn().
				Str("promo_code", *req.PromoCode).
				Err(err).
				Msg("invalid promo code")
			return nil, err
		}
		code := promocode.Normalise(*req.PromoCode)
		promoCode = &code
		s.logger.Debug().Str("promo_code", code).Msg("promo code validated")
	}

	lines, err := s.carts.Items(ctx, req.CartID)
	if err != nil {
		s.logger.Error().Err(err).Str("cart_id", req.CartID).Msg("failed to read cart")
		return nil, fmt.Errorf("failed to read cart: %w", err)
	}
	if len(lines) == 0 {
		return nil, model.ErrEmptyCart
	}

	tx, err := s.orderRepo.BeginTx(ctx)
	if err != nil {
		s.logger.Error().Err(err).Msg("failed to begin transaction")
		return nil, fmt.Errorf("failed to create order: %w", err)
	}

	// Ensure transaction is rolled back on error
	defer func() {
		if err != nil {
			if rbErr := tx.Rollback(ctx); rbErr != nil {
				s.logger.Error().Err(rbErr).Msg("failed to rollback transaction")
			}
		}
	}()

	now := time.Now().UTC()
	order := &model.Order{
		ID:        uuid.New(),
		CartID:    req.CartID,
		PromoCode: promoCode,
		Total:     cartTotal(lines),
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err = s.orderRepo.CreateOrder(ctx, tx, order); err != nil {
		s.logger.Error().Err(err).Str("order_id", order.ID.String()).Msg("failed to create order")
		return nil, fmt.Errorf("failed to create order: %w", err)
	}

	orderItems := make([]model.OrderItem, len(lines))
	for i, line := range lines {
		orderItems[i] = model.OrderItem{
			ID:         uuid.New(),
			OrderID:    order.ID,
			ItemID:     line.ItemID,
			Name:       line.Name,
			Category:   line.Category,
			UnitPrice:  line.UnitPrice,
			Quantity:   line.Quantity,
			TotalPrice: line.TotalPrice,
		}
	}

	if err = s.orderRepo.CreateOrderItems(ctx, tx, orderItems); err != nil {
		s.logger.Error().
			Err(err).
			Str("order_id", order.ID.String()).
			Int("item_count", len(orderItems)).
			Msg("failed to create order items")
		return nil, fmt.Errorf("failed to create order items: %w", err)
	}

	if err = tx.Commit(ctx); err != nil {
		s.logger.Error().Err(err).Str("order_id", order.ID.String()).Msg("failed to commit transaction")
		return nil, fmt.Errorf("failed to create order: %w", err)
	}

	// Only the lines that were ordered leave the cart; lines appended while
	// the order was being written stay for the next checkout. Best effort
	// once the order is committed.
	if clearErr := s.carts.RemoveFirst(ctx, req.CartID, len(lines)); clearErr != nil {
		s.logger.Warn().Err(clearErr).Str("cart_id", req.CartID).Msg("failed to clear cart after checkout")
	}

	s.logger.Info().
		Str("order_id", order.ID.String()).
		Str("cart_id", order.CartID).
		Int("item_count", len(orderItems)).
		Str("total", order.Total.StringFixed(2)).
		Msg("order created successfully")

	return &model.OrderResponse{Order: *order, Items: orderItems}, nil
}

// GetByID retrieves an order by its ID with all items.
func (s *orderService) GetByID(ctx context.Context, id uuid.UUID) (*model.OrderResponse, error) {
	order, items, err := s.orderRepo.GetByID(ctx, id)
	if err != nil {
		s.logger.Error().Err(err).Str("order_id", id.String()).Msg("failed to get order")
		return nil, fmt.Errorf("failed to get order: %w", err)
	}

	if order == nil {
		s.logger.Debug().Str("order_id", id.String()).Msg("order not found")
		return nil, model.ErrOrderNotFound
	}

	return &model.OrderResponse{Order: *order, Items: items}, nil
}
