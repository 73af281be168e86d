package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	"retiro-storefront/internal/catalog"
	"retiro-storefront/internal/config"
	"retiro-storefront/internal/database"
	"retiro-storefront/internal/repository"
)

func main() {
	path := flag.String("file", "data/catalog/catalog.json", "catalogue path; used as the S3 key suffix when S3 is enabled")
	flag.Parse()

	if err := run(*path); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(path string) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	logger := config.NewLogger(cfg.Logger)

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	pool, err := database.NewPool(ctx, cfg.Database, logger)
	if err != nil {
		return fmt.Errorf("failed to initialize database: %w", err)
	}
	defer pool.Close()

	if err := database.Migrate(pool, logger); err != nil {
		return fmt.Errorf("failed to migrate database: %w", err)
	}

	var s3Loader catalog.Loader
	if cfg.S3.Enabled {
		s3Loader, err = catalog.NewS3Loader(ctx, cfg.S3.Bucket, cfg.S3.Region, logger)
		if err != nil {
			logger.Warn().
				Err(err).
				Msg("failed to initialise S3 loader, falling back to local file system only")
		}
	}
	loader := catalog.NewFallbackLoader(s3Loader, catalog.NewFileLoader(logger), cfg.S3.Prefix, cfg.S3.Enabled, logger)

	c, err := loader.Load(ctx, path)
	if err != nil {
		return fmt.Errorf("failed to load catalogue: %w", err)
	}

	importer := catalog.NewImporter(catalog.Stores{
		Categories: repository.NewCategoryRepository(pool, logger),
		MenuItems:  repository.NewMenuRepository(pool, logger),
		Promotions: repository.NewPromotionRepository(pool, logger),
		Offers:     repository.NewOfferRepository(pool, logger),
		Settings:   repository.NewSettingsRepository(pool, logger),
	}, logger)

	if err := importer.Import(ctx, c); err != nil {
		return fmt.Errorf("failed to import catalogue: %w", err)
	}

	logger.Info().
		Str("path", path).
		Int("categories", len(c.Categories)).
		Int("menu_items", len(c.MenuItems)).
		Int("promotions", len(c.Promotions)).
		Int("exclusive_offers", len(c.Offers)).
		Msg("catalogue seeded")

	return nil
}
