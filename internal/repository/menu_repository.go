package repository

import (
	"context"
	"errors"
	"fmt"

	"retiro-storefront/internal/model"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
)

// menuRepository implements the MenuRepository interface using PostgreSQL.
type menuRepository struct {
	pool   *pgxpool.Pool
	logger zerolog.Logger
}

// NewMenuRepository creates a new PostgreSQL-backed menu repository.
func NewMenuRepository(pool *pgxpool.Pool, logger zerolog.Logger) MenuRepository {
	return &menuRepository{
		pool:   pool,
		logger: logger.With().Str("repository", "menu").Logger(),
	}
}

const menuItemColumns = `id, name, description, price, category, image_url, popular, available, created_at`

func scanMenuItem(row pgx.Row) (model.MenuItem, error) {
	var m model.MenuItem
	err := row.Scan(&m.ID, &m.Name, &m.Description, &m.Price, &m.Category, &m.ImageURL, &m.Popular, &m.Available, &m.CreatedAt)
	return m, err
}

// GetAvailable retrieves available menu items ordered by category and name.
func (r *menuRepository) GetAvailable(ctx context.Context) ([]model.MenuItem, error) {
	query := `SELECT ` + menuItemColumns + `
		FROM menu_items
		WHERE available
		ORDER BY category, name
	`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		r.logger.Error().Err(err).Msg("failed to query menu items")
		return nil, fmt.Errorf("failed to query menu items: %w", err)
	}
	defer rows.Close()

	items := []model.MenuItem{}
	for rows.Next() {
		item, err := scanMenuItem(rows)
		if err != nil {
			r.logger.Error().Err(err).Msg("failed to scan menu item row")
			return nil, fmt.Errorf("failed to scan menu item: %w", err)
		}
		items = append(items, item)
	}

	if err := rows.Err(); err != nil {
		r.logger.Error().Err(err).Msg("error iterating menu item rows")
		return nil, fmt.Errorf("error iterating menu items: %w", err)
	}

	return items, nil
}

// GetByID retrieves a single menu item by its ID.
func (r *menuRepository) GetByID(ctx context.Context, id string) (*model.MenuItem, error) {
	query := `SELECT ` + menuItemColumns + ` FROM menu_items WHERE id = $1`

	item, err := scanMenuItem(r.pool.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			r.logger.Debug().Str("menu_item_id", id).Msg("menu item not found")
			return nil, nil
		}
		r.logger.Error().Err(err).Str("menu_item_id", id).Msg("failed to query menu item")
		return nil, fmt.Errorf("failed to query menu item: %w", err)
	}

	return &item, nil
}

// Upsert inserts or replaces menu items in one batch.
func (r *menuRepository) Upsert(ctx context.Context, items []model.MenuItem) error {
	if len(items) == 0 {
		return nil
	}

	query := `
		INSERT INTO menu_items (` + menuItemColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		ON CONFLICT (id) DO UPDATE SET
			name = EXCLUDED.name,
			description = EXCLUDED.description,
			price = EXCLUDED.price,
			category = EXCLUDED.category,
			image_url = EXCLUDED.image_url,
			popular = EXCLUDED.popular,
			available = EXCLUDED.available
	`

	batch := &pgx.Batch{}
	for _, m := range items {
		batch.Queue(query, m.ID, m.Name, m.Description, m.Price, m.Category, m.ImageURL, m.Popular, m.Available, m.CreatedAt)
	}

	results := r.pool.SendBatch(ctx, batch)
	defer results.Close()

	for i := range items {
		if _, err := results.Exec(); err != nil {
			r.logger.Error().
				Err(err).
				Str("menu_item_id", items[i].ID).
				Msg("failed to upsert menu item")
			return fmt.Errorf("failed to upsert menu item %s: %w", items[i].ID, err)
		}
	}

	r.logger.Debug().Int("count", len(items)).Msg("menu items upserted")

	return nil
}
