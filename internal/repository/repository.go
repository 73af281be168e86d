package repository

import (
	"context"

	"retiro-storefront/internal/model"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// CategoryRepository defines the interface for menu category data access.
type CategoryRepository interface {
	// GetActive retrieves active categories ordered by sort_order.
	GetActive(ctx context.Context) ([]model.Category, error)

	// Upsert inserts or replaces categories.
	Upsert(ctx context.Context, categories []model.Category) error
}

// MenuRepository defines the interface for menu item data access.
type MenuRepository interface {
	// GetAvailable retrieves available menu items ordered by category and name.
	GetAvailable(ctx context.Context) ([]model.MenuItem, error)

	// GetByID retrieves a single menu item. Returns nil when it does not exist.
	GetByID(ctx context.Context, id string) (*model.MenuItem, error)

	// Upsert inserts or replaces menu items.
	Upsert(ctx context.Context, items []model.MenuItem) error
}

// PromotionRepository defines the interface for promotion data access.
type PromotionRepository interface {
	// GetActive retrieves active promotions ordered by sort_order.
	GetActive(ctx context.Context) ([]model.Promotion, error)

	// GetAll retrieves every promotion ordered by sort_order.
	GetAll(ctx context.Context) ([]model.Promotion, error)

	// GetByID retrieves a promotion. Returns nil when it does not exist.
	GetByID(ctx context.Context, id uuid.UUID) (*model.Promotion, error)

	// Create inserts a new promotion.
	Create(ctx context.Context, p *model.Promotion) error

	// Update replaces a promotion. Returns false when it does not exist.
	Update(ctx context.Context, p *model.Promotion) (bool, error)

	// Delete removes a promotion. Returns false when it does not exist.
	Delete(ctx context.Context, id uuid.UUID) (bool, error)

	// SetActive flips the active flag and returns the updated promotion,
	// or nil when it does not exist.
	SetActive(ctx context.Context, id uuid.UUID, active bool) (*model.Promotion, error)

	// FindActiveByPromoCode finds an active promotion by code, ignoring case.
	FindActiveByPromoCode(ctx context.Context, code string) (*model.Promotion, error)

	// Upsert inserts or replaces promotions.
	Upsert(ctx context.Context, promotions []model.Promotion) error
}

// OfferRepository defines the interface for exclusive offer data access.
type OfferRepository interface {
	// GetAvailable retrieves available offers ordered by display_order.
	GetAvailable(ctx context.Context) ([]model.ExclusiveOffer, error)

	// GetAll retrieves every offer ordered by display_order.
	GetAll(ctx context.Context) ([]model.ExclusiveOffer, error)

	// GetByID retrieves an offer. Returns nil when it does not exist.
	GetByID(ctx context.Context, id uuid.UUID) (*model.ExclusiveOffer, error)

	// Create inserts a new offer.
	Create(ctx context.Context, o *model.ExclusiveOffer) error

	// Update replaces an offer. Returns false when it does not exist.
	Update(ctx context.Context, o *model.ExclusiveOffer) (bool, error)

	// Delete removes an offer. Returns false when it does not exist.
	Delete(ctx context.Context, id uuid.UUID) (bool, error)

	// SetAvailable flips the available flag and returns the updated offer,
	// or nil when it does not exist.
	SetAvailable(ctx context.Context, id uuid.UUID, available bool) (*model.ExclusiveOffer, error)

	// Upsert inserts or replaces offers.
	Upsert(ctx context.Context, offers []model.ExclusiveOffer) error
}

// SettingsRepository defines the interface for site settings data access.
type SettingsRepository interface {
	// GetByIDs retrieves the settings with the given ids. Missing ids are skipped.
	GetByIDs(ctx context.Context, ids []string) ([]model.Setting, error)

	// GetByPrefix retrieves every setting whose id starts with prefix.
	GetByPrefix(ctx context.Context, prefix string) ([]model.Setting, error)

	// Upsert inserts or replaces settings.
	Upsert(ctx context.Context, settings []model.Setting) error
}

// OrderRepository defines the interface for order data access operations.
type OrderRepository interface {
	// BeginTx starts a new database transaction.
	BeginTx(ctx context.Context) (pgx.Tx, error)

	// CreateOrder inserts a new order within the provided transaction.
	CreateOrder(ctx context.Context, tx pgx.Tx, order *model.Order) error

	// CreateOrderItems inserts multiple order items within the provided transaction.
	CreateOrderItems(ctx context.Context, tx pgx.Tx, items []model.OrderItem) error

	// GetByID retrieves an order by its ID along with its items.
	GetByID(ctx context.Context, id uuid.UUID) (*model.Order, []model.OrderItem, error)
}
