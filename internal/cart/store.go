// Package cart holds the shared cart collection. Carts live in Redis as a
// list of JSON-encoded line items keyed by cart id.
package cart

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"retiro-storefront/internal/model"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
)

// DefaultTTL is how long an untouched cart is kept.
const DefaultTTL = 24 * time.Hour

// Store is the shared cart collection.
type Store interface {
	AddToCart(ctx context.Context, cartID string, line model.CartLineItem) error
	Items(ctx context.Context, cartID string) ([]model.CartLineItem, error)
	Clear(ctx context.Context, cartID string) error
	RemoveFirst(ctx context.Context, cartID string, n int) error
}

// RedisStore keeps each cart as an append-only Redis list.
type RedisStore struct {
	client *redis.Client
	ttl    time.Duration
	logger zerolog.Logger
}

// NewRedisStore creates a Redis-backed cart store. A non-positive ttl selects
// DefaultTTL.
func NewRedisStore(client *redis.Client, ttl time.Duration, logger zerolog.Logger) *RedisStore {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &RedisStore{
		client: client,
		ttl:    ttl,
		logger: logger.With().Str("component", "cart_store").Logger(),
	}
}

// AddToCart appends line to the cart and refreshes its expiry.
func (s *RedisStore) AddToCart(ctx context.Context, cartID string, line model.CartLineItem) error {
	if cartID == "" {
		return model.ValidationError("cart id is required")
	}

	data, err := json.Marshal(line)
	if err != nil {
		return fmt.Errorf("failed to marshal cart line: %w", err)
	}

	key := cartKey(cartID)
	_, err = s.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.RPush(ctx, key, data)
		pipe.Expire(ctx, key, s.ttl)
		return nil
	})
	if err != nil {
		return fmt.Errorf("redis append failed: %w", err)
	}

	s.logger.Debug().
		Str("cart_id", cartID).
		Str("item_id", line.ItemID).
		Int("quantity", line.Quantity).
		Msg("Cart line appended")

	return nil
}

// Items returns the cart lines in insertion order. A missing cart is empty.
func (s *RedisStore) Items(ctx context.Context, cartID string) ([]model.CartLineItem, error) {
	raw, err := s.client.LRange(ctx, cartKey(cartID), 0, -1).Result()
	if err != nil {
		return nil, fmt.Errorf("redis range failed: %w", err)
	}

	items := make([]model.CartLineItem, 0, len(raw))
	for _, entry := range raw {
		var line model.CartLineItem
		if err := json.Unmarshal([]byte(entry), &line); err != nil {
			return nil, fmt.Errorf("unmarshal cart line failed: %w", err)
		}
		items = append(items, line)
	}

	return items, nil
}

// Clear removes the cart.
func (s *RedisStore) Clear(ctx context.Context, cartID string) error {
	if err := s.client.Del(ctx, cartKey(cartID)).Err(); err != nil {
		return fmt.Errorf("redis delete failed: %w", err)
	}
	return nil
}

// RemoveFirst drops the n oldest lines and keeps anything appended after
// them. Removing every line deletes the key.
func (s *RedisStore) RemoveFirst(ctx context.Context, cartID string, n int) error {
	if n <= 0 {
		return nil
	}
	if err := s.client.LTrim(ctx, cartKey(cartID), int64(n), -1).Err(); err != nil {
		return fmt.Errorf("redis trim failed: %w", err)
	}
	return nil
}

func cartKey(cartID string) string {
	return fmt.Sprintf("cart:%s", cartID)
}
