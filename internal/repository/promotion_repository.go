package repository

import (
	"context"
	"errors"
	"fmt"

	"retiro-storefront/internal/model"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
)

// promotionRepository implements the PromotionRepository interface using PostgreSQL.
type promotionRepository struct {
	pool   *pgxpool.Pool
	logger zerolog.Logger
}

// NewPromotionRepository creates a new PostgreSQL-backed promotion repository.
func NewPromotionRepository(pool *pgxpool.Pool, logger zerolog.Logger) PromotionRepository {
	return &promotionRepository{
		pool:   pool,
		logger: logger.With().Str("repository", "promotion").Logger(),
	}
}

const promotionColumns = `id, title, subtitle, description, image_url, gradient_colors, badge_text,
	promo_code, valid_until, active, sort_order, created_at, updated_at`

func scanPromotion(row pgx.Row) (model.Promotion, error) {
	var p model.Promotion
	err := row.Scan(
		&p.ID, &p.Title, &p.Subtitle, &p.Description, &p.ImageURL, &p.GradientColors, &p.BadgeText,
		&p.PromoCode, &p.ValidUntil, &p.Active, &p.SortOrder, &p.CreatedAt, &p.UpdatedAt,
	)
	return p, err
}

func (r *promotionRepository) list(ctx context.Context, query string, args ...any) ([]model.Promotion, error) {
	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		r.logger.Error().Err(err).Msg("failed to query promotions")
		return nil, fmt.Errorf("failed to query promotions: %w", err)
	}
	defer rows.Close()

	promotions := []model.Promotion{}
	for rows.Next() {
		p, err := scanPromotion(rows)
		if err != nil {
			r.logger.Error().Err(err).Msg("failed to scan promotion row")
			return nil, fmt.Errorf("failed to scan promotion: %w", err)
		}
		promotions = append(promotions, p)
	}

	if err := rows.Err(); err != nil {
		r.logger.Error().Err(err).Msg("error iterating promotion rows")
		return nil, fmt.Errorf("error iterating promotions: %w", err)
	}

	return promotions, nil
}

// GetActive retrieves active promotions ordered by sort_order.
func (r *promotionRepository) GetActive(ctx context.Context) ([]model.Promotion, error) {
	return r.list(ctx, `SELECT `+promotionColumns+` FROM promotions WHERE active ORDER BY sort_order, created_at`)
}

// GetAll retrieves every promotion ordered by sort_order.
func (r *promotionRepository) GetAll(ctx context.Context) ([]model.Promotion, error) {
	return r.list(ctx, `SELECT `+promotionColumns+` FROM promotions ORDER BY sort_order, created_at`)
}

// GetByID retrieves a single promotion by its ID.
func (r *promotionRepository) GetByID(ctx context.Context, id uuid.UUID) (*model.Promotion, error) {
	p, err := scanPromotion(r.pool.QueryRow(ctx, `SELECT `+promotionColumns+` FROM promotions WHERE id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			r.logger.Debug().Str("promotion_id", id.String()).Msg("promotion not found")
			return nil, nil
		}
		r.logger.Error().Err(err).Str("promotion_id", id.String()).Msg("failed to query promotion")
		return nil, fmt.Errorf("failed to query promotion: %w", err)
	}
	return &p, nil
}

// Create inserts a new promotion.
func (r *promotionRepository) Create(ctx context.Context, p *model.Promotion) error {
	query := `INSERT INTO promotions (` + promotionColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)`

	_, err := r.pool.Exec(ctx, query,
		p.ID, p.Title, p.Subtitle, p.Description, p.ImageURL, p.GradientColors, p.BadgeText,
		p.PromoCode, p.ValidUntil, p.Active, p.SortOrder, p.CreatedAt, p.UpdatedAt,
	)
	if err != nil {
		r.logger.Error().Err(err).Str("promotion_id", p.ID.String()).Msg("failed to create promotion")
		return fmt.Errorf("failed to create promotion: %w", err)
	}

	r.logger.Debug().Str("promotion_id", p.ID.String()).Msg("promotion created successfully")
	return nil
}

// Update replaces every editable field of a promotion.
func (r *promotionRepository) Update(ctx context.Context, p *model.Promotion) (bool, error) {
	query := `
		UPDATE promotions SET
			title = $2, subtitle = $3, description = $4, image_url = $5, gradient_colors = $6,
			badge_text = $7, promo_code = $8, valid_until = $9, active = $10, sort_order = $11,
			updated_at = $12
		WHERE id = $1
	`

	tag, err := r.pool.Exec(ctx, query,
		p.ID, p.Title, p.Subtitle, p.Description, p.ImageURL, p.GradientColors,
		p.BadgeText, p.PromoCode, p.ValidUntil, p.Active, p.SortOrder, p.UpdatedAt,
	)
	if err != nil {
		r.logger.Error().Err(err).Str("promotion_id", p.ID.String()).Msg("failed to update promotion")
		return false, fmt.Errorf("failed to update promotion: %w", err)
	}

	return tag.RowsAffected() == 1, nil
}

// Delete removes a promotion.
func (r *promotionRepository) Delete(ctx context.Context, id uuid.UUID) (bool, error) {
	tag, err := r.pool.Exec(ctx, `DELETE FROM promotions WHERE id = $1`, id)
	if err != nil {
		r.logger.Error().Err(err).Str("promotion_id", id.String()).Msg("failed to delete promotion")
		return false, fmt.Errorf("failed to delete promotion: %w", err)
	}
	return tag.RowsAffected() == 1, nil
}

// SetActive flips the active flag.
func (r *promotionRepository) SetActive(ctx context.Context, id uuid.UUID, active bool) (*model.Promotion, error) {
	query := `UPDATE promotions SET active = $2, updated_at = NOW() WHERE id = $1 RETURNING ` + promotionColumns

	p, err := scanPromotion(r.pool.QueryRow(ctx, query, id, active))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		r.logger.Error().Err(err).Str("promotion_id", id.String()).Msg("failed to toggle promotion")
		return nil, fmt.Errorf("failed to toggle promotion: %w", err)
	}
	return &p, nil
}

// FindActiveByPromoCode finds an active promotion by code, ignoring case.
func (r *promotionRepository) FindActiveByPromoCode(ctx context.Context, code string) (*model.Promotion, error) {
	query := `SELECT ` + promotionColumns + `
		FROM promotions
		WHERE active AND promo_code <> '' AND UPPER(promo_code) = UPPER($1)
		ORDER BY sort_order
		LIMIT 1`

	p, err := scanPromotion(r.pool.QueryRow(ctx, query, code))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		r.logger.Error().Err(err).Msg("failed to look up promo code")
		return nil, fmt.Errorf("failed to look up promo code: %w", err)
	}
	return &p, nil
}

// Upsert inserts or replaces promotions in one batch.
func (r *promotionRepository) Upsert(ctx context.Context, promotions []model.Promotion) error {
	if len(promotions) == 0 {
		return nil
	}

	query := `INSERT INTO promotions (` + promotionColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)
		ON CONFLICT (id) DO UPDATE SET
			title = EXCLUDED.title,
			subtitle = EXCLUDED.subtitle,
			description = EXCLUDED.description,
			image_url = EXCLUDED.image_url,
			gradient_colors = EXCLUDED.gradient_colors,
			badge_text = EXCLUDED.badge_text,
			promo_code = EXCLUDED.promo_code,
			valid_until = EXCLUDED.valid_until,
			active = EXCLUDED.active,
			sort_order = EXCLUDED.sort_order,
			updated_at = EXCLUDED.updated_at`

	batch := &pgx.Batch{}
	for _, p := range promotions {
		batch.Queue(query,
			p.ID, p.Title, p.Subtitle, p.Description, p.ImageURL, p.GradientColors, p.BadgeText,
			p.PromoCode, p.ValidUntil, p.Active, p.SortOrder, p.CreatedAt, p.UpdatedAt,
		)
	}

	if err := r.pool.SendBatch(ctx, batch).Close(); err != nil {
		r.logger.Error().Err(err).Int("count", len(promotions)).Msg("failed to upsert promotions")
		return fmt.Errorf("failed to upsert promotions: %w", err)
	}

	return nil
}
