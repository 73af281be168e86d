package repository

import (
	"context"
	"fmt"

	"retiro-storefront/internal/model"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
)

// settingsRepository implements the SettingsRepository interface using PostgreSQL.
type settingsRepository struct {
	pool   *pgxpool.Pool
	logger zerolog.Logger
}

// NewSettingsRepository creates a new PostgreSQL-backed settings repository.
func NewSettingsRepository(pool *pgxpool.Pool, logger zerolog.Logger) SettingsRepository {
	return &settingsRepository{
		pool:   pool,
		logger: logger.With().Str("repository", "settings").Logger(),
	}
}

func (r *settingsRepository) query(ctx context.Context, query string, arg any) ([]model.Setting, error) {
	rows, err := r.pool.Query(ctx, query, arg)
	if err != nil {
		r.logger.Error().Err(err).Msg("failed to query settings")
		return nil, fmt.Errorf("failed to query settings: %w", err)
	}
	defer rows.Close()

	settings := []model.Setting{}
	for rows.Next() {
		var s model.Setting
		if err := rows.Scan(&s.ID, &s.Value, &s.Type); err != nil {
			r.logger.Error().Err(err).Msg("failed to scan setting row")
			return nil, fmt.Errorf("failed to scan setting: %w", err)
		}
		settings = append(settings, s)
	}

	if err := rows.Err(); err != nil {
		r.logger.Error().Err(err).Msg("error iterating setting rows")
		return nil, fmt.Errorf("error iterating settings: %w", err)
	}

	return settings, nil
}

// GetByIDs retrieves the settings with the given ids.
func (r *settingsRepository) GetByIDs(ctx context.Context, ids []string) ([]model.Setting, error) {
	if len(ids) == 0 {
		return []model.Setting{}, nil
	}
	return r.query(ctx, `SELECT id, value, type FROM site_settings WHERE id = ANY($1) ORDER BY id`, ids)
}

// GetByPrefix retrieves every setting whose id starts with prefix.
func (r *settingsRepository) GetByPrefix(ctx context.Context, prefix string) ([]model.Setting, error) {
	return r.query(ctx, `SELECT id, value, type FROM site_settings WHERE id LIKE $1 || '%' ORDER BY id`, prefix)
}

// Upsert inserts or replaces settings in one batch.
func (r *settingsRepository) Upsert(ctx context.Context, settings []model.Setting) error {
	if len(settings) == 0 {
		return nil
	}

	query := `
		INSERT INTO site_settings (id, value, type, updated_at)
		VALUES ($1, $2, $3, NOW())
		ON CONFLICT (id) DO UPDATE SET
			value = EXCLUDED.value,
			type = EXCLUDED.type,
			updated_at = NOW()
	`

	batch := &pgx.Batch{}
	for _, s := range settings {
		typ := s.Type
		if typ == "" {
			typ = "string"
		}
		batch.Queue(query, s.ID, s.Value, typ)
	}

	if err := r.pool.SendBatch(ctx, batch).Close(); err != nil {
		r.logger.Error().Err(err).Int("count", len(settings)).Msg("failed to upsert settings")
		return fmt.Errorf("failed to upsert settings: %w", err)
	}

	r.logger.Debug().Int("count", len(settings)).Msg("settings upserted")
	return nil
}
