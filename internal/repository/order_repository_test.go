package repository

import (
	"context"
	"testing"
	"time"

	"retiro-storefront/internal/model"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOrderRepository_BeginTx(t *testing.T) {
	pool := setupTestDB(t)
	repo := NewOrderRepository(pool, zerolog.Nop())
	ctx := context.Background()

	tx, err := repo.BeginTx(ctx)

	require.NoError(t, err)
	require.NotNil(t, tx)
	assert.NoError(t, tx.Rollback(ctx))
}

func TestOrderRepository_CreateAndGet(t *testing.T) {
	pool := setupTestDB(t)
	repo := NewOrderRepository(pool, zerolog.Nop())
	ctx := context.Background()

	now := time.Now().UTC().Truncate(time.Microsecond)
	promo := "RETIRO20"

	tests := []struct {
		name      string
		promoCode *string
	}{
		{name: "Order with promo code", promoCode: &promo},
		{name: "Order without promo code"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			order := &model.Order{
				ID:        uuid.New(),
				CartID:    "table-7",
				PromoCode: tt.promoCode,
				Total:     decimal.RequireFromString("1330.00"),
				CreatedAt: now,
				UpdatedAt: now,
			}
			items := []model.OrderItem{
				{
					ID: uuid.New(), OrderID: order.ID, ItemID: "tonkotsu", Name: "Tonkotsu Ramen",
					Category: "ramen", UnitPrice: decimal.RequireFromString("395.00"), Quantity: 2,
					TotalPrice: decimal.RequireFromString("790.00"),
				},
				{
					ID: uuid.New(), OrderID: order.ID, ItemID: uuid.NewString(), Name: "Chef's Wagyu",
					Category: string(model.KindOffer), UnitPrice: decimal.RequireFromString("540.00"), Quantity: 1,
					TotalPrice: decimal.RequireFromString("540.00"),
				},
			}

			tx, err := repo.BeginTx(ctx)
			require.NoError(t, err)
			require.NoError(t, repo.CreateOrder(ctx, tx, order))
			require.NoError(t, repo.CreateOrderItems(ctx, tx, items))
			require.NoError(t, tx.Commit(ctx))

			got, gotItems, err := repo.GetByID(ctx, order.ID)
			require.NoError(t, err)
			require.NotNil(t, got)
			assert.Equal(t, "table-7", got.CartID)
			assert.Equal(t, tt.promoCode, got.PromoCode)
			assert.True(t, order.Total.Equal(got.Total))

			require.Len(t, gotItems, 2)
			assert.Equal(t, "Chef's Wagyu", gotItems[0].Name)
			assert.Equal(t, 2, gotItems[1].Quantity)
			assert.True(t, decimal.RequireFromString("790").Equal(gotItems[1].TotalPrice))
		})
	}
}

func TestOrderRepository_RollbackDiscardsOrder(t *testing.T) {
	pool := setupTestDB(t)
	repo := NewOrderRepository(pool, zerolog.Nop())
	ctx := context.Background()

	now := time.Now()
	order := &model.Order{ID: uuid.New(), CartID: "c1", Total: decimal.NewFromInt(10), CreatedAt: now, UpdatedAt: now}

	tx, err := repo.BeginTx(ctx)
	require.NoError(t, err)
	require.NoError(t, repo.CreateOrder(ctx, tx, order))

	err = repo.CreateOrderItems(ctx, tx, []model.OrderItem{
		{ID: uuid.New(), OrderID: order.ID, ItemID: "x", Name: "X", Category: "ramen", UnitPrice: decimal.NewFromInt(10), Quantity: 0, TotalPrice: decimal.Zero},
	})
	require.Error(t, err)
	require.NoError(t, tx.Rollback(ctx))

	got, items, err := repo.GetByID(ctx, order.ID)
	require.NoError(t, err)
	assert.Nil(t, got)
	assert.Nil(t, items)
}

func TestOrderRepository_CreateOrderItemsEmpty(t *testing.T) {
	pool := setupTestDB(t)
	repo := NewOrderRepository(pool, zerolog.Nop())
	ctx := context.Background()

	tx, err := repo.BeginTx(ctx)
	require.NoError(t, err)
	defer func() { _ = tx.Rollback(ctx) }()

	assert.NoError(t, repo.CreateOrderItems(ctx, tx, nil))
}
