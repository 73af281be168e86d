package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"retiro-storefront/internal/carousel"
	"retiro-storefront/internal/cart"
	"retiro-storefront/internal/config"
	"retiro-storefront/internal/database"
	"retiro-storefront/internal/handler"
	"retiro-storefront/internal/metrics"
	"retiro-storefront/internal/model"
	"retiro-storefront/internal/promocode"
	"retiro-storefront/internal/repository"
	"retiro-storefront/internal/router"
	"retiro-storefront/internal/service"

	"github.com/redis/go-redis/v9"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	logger := config.NewLogger(cfg.Logger)
	logger.Info().Msg("starting retiro storefront API server")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	pool, err := database.NewPool(ctx, cfg.Database, logger)
	if err != nil {
		return fmt.Errorf("failed to initialize database: %w", err)
	}
	defer pool.Close()

	if cfg.Database.Migrate {
		if err := database.Migrate(pool, logger); err != nil {
			return fmt.Errorf("failed to migrate database: %w", err)
		}
	}

	redisClient := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
	defer redisClient.Close()

	if err := redisClient.Ping(ctx).Err(); err != nil {
		return fmt.Errorf("failed to connect to redis: %w", err)
	}
	carts := cart.NewRedisStore(redisClient, cfg.Redis.CartTTLDuration(), logger)

	// Repositories
	categoryRepo := repository.NewCategoryRepository(pool, logger)
	menuRepo := repository.NewMenuRepository(pool, logger)
	promotionRepo := repository.NewPromotionRepository(pool, logger)
	offerRepo := repository.NewOfferRepository(pool, logger)
	settingsRepo := repository.NewSettingsRepository(pool, logger)
	orderRepo := repository.NewOrderRepository(pool, logger)

	// Services
	m := metrics.New()
	menuService := service.NewMenuService(categoryRepo, menuRepo, logger)
	promotionService := service.NewPromotionService(promotionRepo, settingsRepo, logger)
	offerService := service.NewOfferService(offerRepo, settingsRepo, logger)
	cartService := service.NewCartService(carts, menuRepo, cfg.Carousel.MaxQuantity, logger)
	orderService := service.NewOrderService(orderRepo, carts, promocode.NewValidator(promotionRepo, logger), logger)

	carousels := service.NewCarouselService(
		map[model.PromotableKind]carousel.DataSource{
			model.KindPromotion: promotionService,
			model.KindOffer:     offerService,
		},
		carts,
		service.CarouselOptions{
			SwipeThreshold: cfg.Carousel.SwipeThreshold,
			MaxQuantity:    cfg.Carousel.MaxQuantity,
			SuccessDisplay: cfg.Carousel.SuccessDisplay(),
			IdleTTL:        cfg.Carousel.IdleTTL(),
			SweepInterval:  cfg.Carousel.Sweep(),
			Observer:       m,
			Sessions:       m.LiveSessions(),
		},
		logger,
	)
	go carousels.Run(ctx)

	mux := router.New(router.Handlers{
		Menu:      handler.NewMenuHandler(menuService, logger),
		Promotion: handler.NewPromotionHandler(promotionService, logger),
		Offer:     handler.NewOfferHandler(offerService, logger),
		Cart:      handler.NewCartHandler(cartService, logger),
		Carousel:  handler.NewCarouselHandler(carousels, logger),
		Order:     handler.NewOrderHandler(orderService, logger),
	}, router.Options{
		APIKey:         cfg.Auth.APIKey,
		RequestTimeout: 10 * time.Second,
		Metrics:        m.Handler(),
		Instrument:     m.Middleware,
	}, logger)

	server := &http.Server{
		Addr:         cfg.Server.Address(),
		Handler:      mux,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	serverErrors := make(chan error, 1)

	go func() {
		logger.Info().
			Str("address", cfg.Server.Address()).
			Msg("HTTP server started")
		serverErrors <- server.ListenAndServe()
	}()

	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)

	select {
	case err := <-serverErrors:
		return fmt.Errorf("server error: %w", err)

	case sig := <-shutdown:
		logger.Info().
			Str("signal", sig.String()).
			Msg("shutdown signal received, starting graceful shutdown")

		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer shutdownCancel()

		if err := server.Shutdown(shutdownCtx); err != nil {
			logger.Error().Err(err).Msg("failed to shutdown server gracefully")
			if closeErr := server.Close(); closeErr != nil {
				logger.Error().Err(closeErr).Msg("failed to close server")
			}
			return fmt.Errorf("server shutdown failed: %w", err)
		}

		carousels.Shutdown()

		logger.Info().Msg("server shutdown completed")
	}

	return nil
}
