package catalog

import (
	"context"
	"fmt"
	"os"

	"github.com/rs/zerolog"
)

// fileLoader implements Loader for catalogue files on the local file system.
type fileLoader struct {
	logger zerolog.Logger
}

// NewFileLoader creates a new file-based catalogue loader.
func NewFileLoader(logger zerolog.Logger) Loader {
	return &fileLoader{
		logger: logger.With().Str("component", "catalog-loader").Logger(),
	}
}

// Load reads a catalogue file from disk.
func (l *fileLoader) Load(ctx context.Context, filePath string) (*Catalog, error) {
	l.logger.Info().Str("file", filePath).Msg("loading catalogue file")

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	file, err := os.Open(filePath)
	if err != nil {
		l.logger.Error().Err(err).Str("file", filePath).Msg("failed to open catalogue file")
		return nil, fmt.Errorf("failed to open catalogue file %s: %w", filePath, err)
	}
	defer file.Close()

	c, err := decode(file, isGzipped(filePath))
	if err != nil {
		l.logger.Error().Err(err).Str("file", filePath).Msg("failed to read catalogue file")
		return nil, fmt.Errorf("failed to read catalogue file %s: %w", filePath, err)
	}

	l.logger.Info().
		Str("file", filePath).
		Int("categories", len(c.Categories)).
		Int("menu_items", len(c.MenuItems)).
		Int("promotions", len(c.Promotions)).
		Int("offers", len(c.Offers)).
		Msg("catalogue file loaded successfully")

	return c, nil
}
