package repository

import (
	"context"
	"fmt"

	"retiro-storefront/internal/model"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
)

type categoryRepository struct {
	pool   *pgxpool.Pool
	logger zerolog.Logger
}

// NewCategoryRepository creates a new PostgreSQL-backed category repository.
func NewCategoryRepository(pool *pgxpool.Pool, logger zerolog.Logger) CategoryRepository {
	return &categoryRepository{
		pool:   pool,
		logger: logger.With().Str("repository", "category").Logger(),
	}
}

func (r *categoryRepository) GetActive(ctx context.Context) ([]model.Category, error) {
	query := `
		SELECT id, name, icon, sort_order, active
		FROM categories
		WHERE active
		ORDER BY sort_order, name
	`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		r.logger.Error().Err(err).Msg("failed to query categories")
		return nil, fmt.Errorf("failed to query categories: %w", err)
	}
	defer rows.Close()

	categories := []model.Category{}
	for rows.Next() {
		var c model.Category
		if err := rows.Scan(&c.ID, &c.Name, &c.Icon, &c.SortOrder, &c.Active); err != nil {
			r.logger.Error().Err(err).Msg("failed to scan category row")
			return nil, fmt.Errorf("failed to scan category: %w", err)
		}
		categories = append(categories, c)
	}

	if err := rows.Err(); err != nil {
		r.logger.Error().Err(err).Msg("error iterating category rows")
		return nil, fmt.Errorf("error iterating categories: %w", err)
	}

	return categories, nil
}

func (r *categoryRepository) Upsert(ctx context.Context, categories []model.Category) error {
	if len(categories) == 0 {
		return nil
	}

	query := `
		INSERT INTO categories (id, name, icon, sort_order, active)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (id) DO UPDATE SET
			name = EXCLUDED.name,
			icon = EXCLUDED.icon,
			sort_order = EXCLUDED.sort_order,
			active = EXCLUDED.active
	`

	batch := &pgx.Batch{}
	for _, c := range categories {
		batch.Queue(query, c.ID, c.Name, c.Icon, c.SortOrder, c.Active)
	}

	if err := r.pool.SendBatch(ctx, batch).Close(); err != nil {
		r.logger.Error().Err(err).Int("count", len(categories)).Msg("failed to upsert categories")
		return fmt.Errorf("failed to upsert categories: %w", err)
	}

	return nil
}
