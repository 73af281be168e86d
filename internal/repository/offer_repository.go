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

// offerRepository implements the OfferRepository interface using PostgreSQL.
type offerRepository struct {
	pool   *pgxpool.Pool
	logger zerolog.Logger
}

// NewOfferRepository creates a new PostgreSQL-backed exclusive offer repository.
func NewOfferRepository(pool *pgxpool.Pool, logger zerolog.Logger) OfferRepository {
	return &offerRepository{
		pool:   pool,
		logger: logger.With().Str("repository", "exclusive_offer").Logger(),
	}
}

const offerColumns = `id, title, subtitle, description, price, original_price, discount_text,
	image_url, badge_text, available, display_order, created_at, updated_at`

func scanOffer(row pgx.Row) (model.ExclusiveOffer, error) {
	var o model.ExclusiveOffer
	err := row.Scan(
		&o.ID, &o.Title, &o.Subtitle, &o.Description, &o.Price, &o.OriginalPrice, &o.DiscountText,
		&o.ImageURL, &o.BadgeText, &o.Available, &o.DisplayOrder, &o.CreatedAt, &o.UpdatedAt,
	)
	return o, err
}

func offerArgs(o *model.ExclusiveOffer) []any {
	return []any{
		o.ID, o.Title, o.Subtitle, o.Description, o.Price, o.OriginalPrice, o.DiscountText,
		o.ImageURL, o.BadgeText, o.Available, o.DisplayOrder, o.CreatedAt, o.UpdatedAt,
	}
}

func (r *offerRepository) list(ctx context.Context, query string) ([]model.ExclusiveOffer, error) {
	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		r.logger.Error().Err(err).Msg("failed to query exclusive offers")
		return nil, fmt.Errorf("failed to query exclusive offers: %w", err)
	}
	defer rows.Close()

	offers := []model.ExclusiveOffer{}
	for rows.Next() {
		o, err := scanOffer(rows)
		if err != nil {
			r.logger.Error().Err(err).Msg("failed to scan exclusive offer row")
			return nil, fmt.Errorf("failed to scan exclusive offer: %w", err)
		}
		offers = append(offers, o)
	}

	if err := rows.Err(); err != nil {
		r.logger.Error().Err(err).Msg("error iterating exclusive offer rows")
		return nil, fmt.Errorf("error iterating exclusive offers: %w", err)
	}

	return offers, nil
}

// GetAvailable retrieves available offers ordered by display_order.
func (r *offerRepository) GetAvailable(ctx context.Context) ([]model.ExclusiveOffer, error) {
	return r.list(ctx, `SELECT `+offerColumns+` FROM exclusive_offers WHERE available ORDER BY display_order, created_at`)
}

// GetAll retrieves every offer ordered by display_order.
func (r *offerRepository) GetAll(ctx context.Context) ([]model.ExclusiveOffer, error) {
	return r.list(ctx, `SELECT `+offerColumns+` FROM exclusive_offers ORDER BY display_order, created_at`)
}

// GetByID retrieves a single offer by its ID.
func (r *offerRepository) GetByID(ctx context.Context, id uuid.UUID) (*model.ExclusiveOffer, error) {
	o, err := scanOffer(r.pool.QueryRow(ctx, `SELECT `+offerColumns+` FROM exclusive_offers WHERE id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			r.logger.Debug().Str("offer_id", id.String()).Msg("exclusive offer not found")
			return nil, nil
		}
		r.logger.Error().Err(err).Str("offer_id", id.String()).Msg("failed to query exclusive offer")
		return nil, fmt.Errorf("failed to query exclusive offer: %w", err)
	}
	return &o, nil
}

// Create inserts a new offer.
func (r *offerRepository) Create(ctx context.Context, o *model.ExclusiveOffer) error {
	query := `INSERT INTO exclusive_offers (` + offerColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)`

	if _, err := r.pool.Exec(ctx, query, offerArgs(o)...); err != nil {
		r.logger.Error().Err(err).Str("offer_id", o.ID.String()).Msg("failed to create exclusive offer")
		return fmt.Errorf("failed to create exclusive offer: %w", err)
	}
	return nil
}

// Update replaces every editable field of an offer.
func (r *offerRepository) Update(ctx context.Context, o *model.ExclusiveOffer) (bool, error) {
	query := `
		UPDATE exclusive_offers SET
			title = $2, subtitle = $3, description = $4, price = $5, original_price = $6,
			discount_text = $7, image_url = $8, badge_text = $9, available = $10,
			display_order = $11, updated_at = $12
		WHERE id = $1
	`

	tag, err := r.pool.Exec(ctx, query,
		o.ID, o.Title, o.Subtitle, o.Description, o.Price, o.OriginalPrice,
		o.DiscountText, o.ImageURL, o.BadgeText, o.Available, o.DisplayOrder, o.UpdatedAt,
	)
	if err != nil {
		r.logger.Error().Err(err).Str("offer_id", o.ID.String()).Msg("failed to update exclusive offer")
		return false, fmt.Errorf("failed to update exclusive offer: %w", err)
	}
	return tag.RowsAffected() == 1, nil
}

// Delete removes an offer.
func (r *offerRepository) Delete(ctx context.Context, id uuid.UUID) (bool, error) {
	tag, err := r.pool.Exec(ctx, `DELETE FROM exclusive_offers WHERE id = $1`, id)
	if err != nil {
		r.logger.Error().Err(err).Str("offer_id", id.String()).Msg("failed to delete exclusive offer")
		return false, fmt.Errorf("failed to delete exclusive offer: %w", err)
	}
	return tag.RowsAffected() == 1, nil
}

// SetAvailable flips the available flag.
func (r *offerRepository) SetAvailable(ctx context.Context, id uuid.UUID, available bool) (*model.ExclusiveOffer, error) {
	query := `UPDATE exclusive_offers SET available = $2, updated_at = NOW() WHERE id = $1 RETURNING ` + offerColumns

	o, err := scanOffer(r.pool.QueryRow(ctx, query, id, available))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		r.logger.Error().Err(err).Str("offer_id", id.String()).Msg("failed to toggle exclusive offer")
		return nil, fmt.Errorf("failed to toggle exclusive offer: %w", err)
	}
	return &o, nil
}

// Upsert inserts or replaces offers in one batch.
func (r *offerRepository) Upsert(ctx context.Context, offers []model.ExclusiveOffer) error {
	if len(offers) == 0 {
		return nil
	}

	query := `INSERT INTO exclusive_offers (` + offerColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)
		ON CONFLICT (id) DO UPDATE SET
			title = EXCLUDED.title,
			subtitle = EXCLUDED.subtitle,
			description = EXCLUDED.description,
			price = EXCLUDED.price,
			original_price = EXCLUDED.original_price,
			discount_text = EXCLUDED.discount_text,
			image_url = EXCLUDED.image_url,
			badge_text = EXCLUDED.badge_text,
			available = EXCLUDED.available,
			display_order = EXCLUDED.display_order,
			updated_at = EXCLUDED.updated_at`

	batch := &pgx.Batch{}
	for i := range offers {
		batch.Queue(query, offerArgs(&offers[i])...)
	}

	if err := r.pool.SendBatch(ctx, batch).Close(); err != nil {
		r.logger.Error().Err(err).Int("count", len(offers)).Msg("failed to upsert exclusive offers")
		return fmt.Errorf("failed to upsert exclusive offers: %w", err)
	}

	return nil
}
