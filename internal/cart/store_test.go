package cart

import (
	"context"
	"testing"
	"time"

	"retiro-storefront/internal/model"

	"github.com/alicebob/miniredis/v2"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupTestRedis(t *testing.T) (*RedisStore, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)

	client := redis.NewClient(&redis.Options{
		Addr: mr.Addr(),
	})
	t.Cleanup(func() { client.Close() })

	return NewRedisStore(client, time.Hour, zerolog.Nop()), mr
}

func testLine(name string, price string, quantity int) model.CartLineItem {
	unit := decimal.RequireFromString(price)
	return model.CartLineItem{
		ID:         uuid.New(),
		ItemID:     uuid.NewString(),
		Name:       name,
		UnitPrice:  unit,
		Category:   "exclusive-offer",
		Quantity:   quantity,
		TotalPrice: model.LineTotal(unit, quantity),
		AddedAt:    time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC),
	}
}

func TestRedisStore_AddToCartAppends(t *testing.T) {
	store, mr := setupTestRedis(t)
	ctx := context.Background()

	first := testLine("Wagyu Ramen", "400", 3)
	second := testLine("Wagyu Ramen", "400", 1)

	require.NoError(t, store.AddToCart(ctx, "cart-1", first))
	require.NoError(t, store.AddToCart(ctx, "cart-1", second))

	items, err := store.Items(ctx, "cart-1")
	require.NoError(t, err)
	require.Len(t, items, 2, "lines for the same item are never merged")
	assert.Equal(t, first.ID, items[0].ID)
	assert.Equal(t, second.ID, items[1].ID)
	assert.Equal(t, "1200.00", items[0].TotalPrice.StringFixed(2))

	assert.Equal(t, time.Hour, mr.TTL(cartKey("cart-1")))
}

func TestRedisStore_AddToCartRefreshesTTL(t *testing.T) {
	store, mr := setupTestRedis(t)
	ctx := context.Background()

	require.NoError(t, store.AddToCart(ctx, "cart-1", testLine("Gyoza", "180", 1)))
	mr.FastForward(30 * time.Minute)
	require.NoError(t, store.AddToCart(ctx, "cart-1", testLine("Gyoza", "180", 1)))

	assert.Equal(t, time.Hour, mr.TTL(cartKey("cart-1")))
}

func TestRedisStore_ExpiredCartIsEmpty(t *testing.T) {
	store, mr := setupTestRedis(t)
	ctx := context.Background()

	require.NoError(t, store.AddToCart(ctx, "cart-1", testLine("Gyoza", "180", 1)))
	mr.FastForward(2 * time.Hour)

	items, err := store.Items(ctx, "cart-1")
	require.NoError(t, err)
	assert.Empty(t, items)
}

func TestRedisStore_AddToCartRequiresCartID(t *testing.T) {
	store, _ := setupTestRedis(t)

	err := store.AddToCart(context.Background(), "", testLine("Gyoza", "180", 1))

	_, ok := model.AsDomainError(err)
	assert.True(t, ok)
}

func TestRedisStore_ItemsMissingCart(t *testing.T) {
	store, _ := setupTestRedis(t)

	items, err := store.Items(context.Background(), "nonexistent")
	require.NoError(t, err)
	assert.Empty(t, items)
}

func TestRedisStore_ItemsInvalidJSON(t *testing.T) {
	store, mr := setupTestRedis(t)

	_, err := mr.Push(cartKey("cart-1"), "not json")
	require.NoError(t, err)

	_, err = store.Items(context.Background(), "cart-1")
	assert.Error(t, err)
}

func TestRedisStore_Clear(t *testing.T) {
	store, mr := setupTestRedis(t)
	ctx := context.Background()

	require.NoError(t, store.AddToCart(ctx, "cart-1", testLine("Gyoza", "180", 1)))
	require.NoError(t, store.Clear(ctx, "cart-1"))

	assert.False(t, mr.Exists(cartKey("cart-1")))
}

func TestRedisStore_RemoveFirst(t *testing.T) {
	tests := []struct {
		name      string
		stored    int
		remove    int
		remaining int
	}{
		{name: "Keeps later lines", stored: 3, remove: 2, remaining: 1},
		{name: "Removes every line", stored: 2, remove: 2, remaining: 0},
		{name: "Zero is a no-op", stored: 2, remove: 0, remaining: 2},
		{name: "More than stored", stored: 1, remove: 4, remaining: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store, mr := setupTestRedis(t)
			ctx := context.Background()

			var lines []model.CartLineItem
			for i := 0; i < tt.stored; i++ {
				line := testLine("Gyoza", "180", i+1)
				lines = append(lines, line)
				require.NoError(t, store.AddToCart(ctx, "cart-1", line))
			}

			require.NoError(t, store.RemoveFirst(ctx, "cart-1", tt.remove))

			items, err := store.Items(ctx, "cart-1")
			require.NoError(t, err)
			require.Len(t, items, tt.remaining)
			if tt.remaining > 0 {
				assert.Equal(t, lines[tt.stored-tt.remaining].ID, items[0].ID)
			} else {
				assert.False(t, mr.Exists(cartKey("cart-1")))
			}
		})
	}
}

func TestRedisStore_ServerDown(t *testing.T) {
	store, mr := setupTestRedis(t)
	mr.Close()

	err := store.AddToCart(context.Background(), "cart-1", testLine("Gyoza", "180", 1))
	assert.Error(t, err)
}
