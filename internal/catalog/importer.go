package catalog

import (
	"context"
	"fmt"
	"time"

	"retiro-storefront/internal/model"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// Upserter writes rows, inserting new ones and replacing existing ones.
type Upserter[T any] interface {
	Upsert(ctx context.Context, rows []T) error
}

// Stores are the destinations of an import.
type Stores struct {
	Categories Upserter[model.Category]
	MenuItems  Upserter[model.MenuItem]
	Promotions Upserter[model.Promotion]
	Offers     Upserter[model.ExclusiveOffer]
	Settings   Upserter[model.Setting]
}

// Importer writes a catalogue into the stores. Imports are idempotent.
type Importer struct {
	stores Stores
	now    func() time.Time
	logger zerolog.Logger
}

// NewImporter creates a catalogue importer.
func NewImporter(stores Stores, logger zerolog.Logger) *Importer {
	return &Importer{
		stores: stores,
		now:    time.Now,
		logger: logger.With().Str("component", "catalog-importer").Logger(),
	}
}

// Import writes c. Categories go first because menu items reference them.
// Promotions and offers without an id get a fresh one.
func (i *Importer) Import(ctx context.Context, c *Catalog) error {
	if err := c.Validate(); err != nil {
		return fmt.Errorf("invalid catalogue: %w", err)
	}

	now := i.now().UTC()
	for idx := range c.Promotions {
		p := &c.Promotions[idx]
		if p.ID == uuid.Nil {
			p.ID = uuid.New()
		}
		stamp(&p.CreatedAt, &p.UpdatedAt, now)
	}
	for idx := range c.Offers {
		o := &c.Offers[idx]
		if o.ID == uuid.Nil {
			o.ID = uuid.New()
		}
		stamp(&o.CreatedAt, &o.UpdatedAt, now)
	}
	for idx := range c.MenuItems {
		if c.MenuItems[idx].CreatedAt.IsZero() {
			c.MenuItems[idx].CreatedAt = now
		}
	}

	steps := []struct {
		name string
		run  func() error
	}{
		{"categories", func() error { return i.stores.Categories.Upsert(ctx, c.Categories) }},
		{"menu items", func() error { return i.stores.MenuItems.Upsert(ctx, c.MenuItems) }},
		{"promotions", func() error { return i.stores.Promotions.Upsert(ctx, c.Promotions) }},
		{"exclusive offers", func() error { return i.stores.Offers.Upsert(ctx, c.Offers) }},
		{"settings", func() error { return i.stores.Settings.Upsert(ctx, c.Settings) }},
	}

	for _, step := range steps {
		if err := step.run(); err != nil {
			i.logger.Error().Err(err).Str("step", step.name).Msg("catalogue import failed")
			return fmt.Errorf("failed to import %s: %w", step.name, err)
		}
	}

	i.logger.Info().
		Int("categories", len(c.Categories)).
		Int("menu_items", len(c.MenuItems)).
		Int("promotions", len(c.Promotions)).
		Int("offers", len(c.Offers)).
		Int("settings", len(c.Settings)).
		Msg("catalogue imported")

	return nil
}

func stamp(created, updated *time.Time, now time.Time) {
	if created.IsZero() {
		*created = now
	}
	if updated.IsZero() {
		*updated = now
	}
}
