package integration

import (
	"context"
	"fmt"
	"testing"
	"time"

	"retiro-storefront/internal/catalog"
	"retiro-storefront/internal/database"
	"retiro-storefront/internal/repository"

	"github.com/alicebob/miniredis/v2"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
)

// catalogPath is the checked-in seed catalogue, relative to this package.
const catalogPath = "../../data/catalog/catalog.json"

// TestDB represents a test database instance.
type TestDB struct {
	Container *postgres.PostgresContainer
	Pool      *pgxpool.Pool
	ConnStr   string
}

// SetupTestDB creates a PostgreSQL test container, a connection pool and the
// migrated schema.
func SetupTestDB(t *testing.T) *TestDB {
	t.Helper()

	ctx := context.Background()

	postgresContainer, err := postgres.Run(ctx,
		"postgres:16-alpine",
		postgres.WithDatabase("retiro"),
		postgres.WithUsername("testuser"),
		postgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second)),
	)
	if err != nil {
		t.Fatalf("failed to start postgres container: %v", err)
	}

	connStr, err := postgresContainer.ConnectionString(ctx, "sslmode=disable")
	if err != nil {
		t.Fatalf("failed to get connection string: %v", err)
	}

	pool, err := pgxpool.New(ctx, connStr)
	if err != nil {
		t.Fatalf("failed to create connection pool: %v", err)
	}

	if err := pool.Ping(ctx); err != nil {
		t.Fatalf("failed to ping database: %v", err)
	}

	if err := database.Migrate(pool, zerolog.Nop()); err != nil {
		t.Fatalf("failed to migrate schema: %v", err)
	}

	t.Cleanup(func() {
		pool.Close()
		if err := postgresContainer.Terminate(ctx); err != nil {
			t.Logf("failed to terminate container: %v", err)
		}
	})

	return &TestDB{
		Container: postgresContainer,
		Pool:      pool,
		ConnStr:   connStr,
	}
}

// SetupRedis starts an in-memory Redis for the cart store.
func SetupRedis(t *testing.T) *redis.Client {
	t.Helper()

	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })

	return client
}

// SeedCatalog imports the checked-in seed catalogue.
func SeedCatalog(t *testing.T, pool *pgxpool.Pool) *catalog.Catalog {
	t.Helper()

	ctx := context.Background()
	logger := zerolog.Nop()

	c, err := catalog.NewFileLoader(logger).Load(ctx, catalogPath)
	if err != nil {
		t.Fatalf("failed to load catalogue: %v", err)
	}

	importer := catalog.NewImporter(catalog.Stores{
		Categories: repository.NewCategoryRepository(pool, logger),
		MenuItems:  repository.NewMenuRepository(pool, logger),
		Promotions: repository.NewPromotionRepository(pool, logger),
		Offers:     repository.NewOfferRepository(pool, logger),
		Settings:   repository.NewSettingsRepository(pool, logger),
	}, logger)

	if err := importer.Import(ctx, c); err != nil {
		t.Fatalf("failed to import catalogue: %v", err)
	}

	return c
}

// CleanupDB cleans all data from the storefront tables. Site settings are
// kept; they hold the migration defaults.
func CleanupDB(t *testing.T, pool *pgxpool.Pool) {
	t.Helper()

	ctx := context.Background()

	tables := []string{"order_items", "orders", "menu_items", "categories", "promotions", "exclusive_offers"}
	for _, table := range tables {
		_, err := pool.Exec(ctx, fmt.Sprintf("DELETE FROM %s", table))
		if err != nil {
			t.Logf("failed to clean table %s: %v", table, err)
		}
	}
}
