package service

import (
	"context"
	"fmt"
	"time"

	"retiro-storefront/internal/model"
	"retiro-storefront/internal/repository"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

var promotionSettingIDs = []string{
	model.SettingPromotionsEnabled,
	model.SettingPromotionAutoRotate,
	model.SettingPromotionRotationSpeed,
	model.SettingPromotionMaxDisplay,
}

// FallbackPromotion is shown when promotions cannot be loaded.
func FallbackPromotion(now time.Time) model.Promotion {
	return model.Promotion{
		ID:             uuid.NewSHA1(uuid.NameSpaceURL, []byte("retiro:fallback-promotion")),
		Title:          "20% OFF",
		Subtitle:       "Premium Ramen Bowls & Tonkatsu",
		Description:    "Get 20% OFF on All Premium Ramen Bowls & Tonkatsu Specials",
		ImageURL:       "https://images.unsplash.com/photo-1569718212165-3a8278d5f624?w=1200&h=600&fit=crop&crop=center",
		GradientColors: "from-retiro-red to-retiro-kimchi",
		BadgeText:      "🔥 LIMITED TIME",
		PromoCode:      "RETIRO20",
		ValidUntil:     "Dec 31, 2024",
		Active:         true,
		SortOrder:      1,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
}

// promotionService implements PromotionService.
type promotionService struct {
	promotions repository.PromotionRepository
	settings   repository.SettingsRepository
	now        func() time.Time
	logger     zerolog.Logger
}

// NewPromotionService creates a new promotion service.
func NewPromotionService(
	promotions repository.PromotionRepository,
	settings repository.SettingsRepository,
	logger zerolog.Logger,
) PromotionService {
	return &promotionService{
		promotions: promotions,
		settings:   settings,
		now:        time.Now,
		logger:     logger.With().Str("service", "promotion").Logger(),
	}
}

// Fetch returns the active promotions capped at max_display. When the store
// is unreachable a single static promotion is served with default settings.
func (s *promotionService) Fetch(ctx context.Context) (model.Feed, error) {
	promotions, err := s.promotions.GetActive(ctx)
	if err != nil {
		s.logger.Warn().Err(err).Msg("failed to load promotions, serving fallback")
		return s.fallbackFeed(), nil
	}

	settings, err := s.GetSettings(ctx)
	if err != nil {
		s.logger.Warn().Err(err).Msg("failed to load promotion settings, serving fallback")
		return s.fallbackFeed(), nil
	}

	if len(promotions) > settings.MaxDisplay {
		promotions = promotions[:settings.MaxDisplay]
	}

	feed := model.Feed{
		Items:    make([]model.PromotableItem, 0, len(promotions)),
		Settings: settings.Carousel(),
	}
	for _, p := range promotions {
		feed.Items = append(feed.Items, model.FromPromotion(p))
	}

	return feed, nil
}

func (s *promotionService) fallbackFeed() model.Feed {
	return model.Feed{
		Items:    []model.PromotableItem{model.FromPromotion(FallbackPromotion(s.now()))},
		Settings: model.DefaultPromotionSettings().Carousel(),
	}
}

func (s *promotionService) GetAll(ctx context.Context) ([]model.Promotion, error) {
	promotions, err := s.promotions.GetAll(ctx)
	if err != nil {
		s.logger.Error().Err(err).Msg("failed to list promotions")
		return nil, fmt.Errorf("failed to list promotions: %w", err)
	}
	return promotions, nil
}

func (s *promotionService) GetByID(ctx context.Context, id uuid.UUID) (*model.Promotion, error) {
	promotion, err := s.promotions.GetByID(ctx, id)
	if err != nil {
		s.logger.Error().Err(err).Str("promotion_id", id.String()).Msg("failed to get promotion")
		return nil, fmt.Errorf("failed to get promotion: %w", err)
	}
	if promotion == nil {
		return nil, model.ErrPromotionNotFound
	}
	return promotion, nil
}

func (s *promotionService) Create(ctx context.Context, req *model.PromotionRequest) (*model.Promotion, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	now := s.now().UTC()
	promotion := applyPromotionRequest(&model.Promotion{ID: uuid.New(), CreatedAt: now}, req)
	promotion.UpdatedAt = now

	if err := s.promotions.Create(ctx, promotion); err != nil {
		s.logger.Error().Err(err).Msg("failed to create promotion")
		return nil, fmt.Errorf("failed to create promotion: %w", err)
	}

	s.logger.Info().
		Str("promotion_id", promotion.ID.String()).
		Str("title", promotion.Title).
		Msg("promotion created")

	return promotion, nil
}

func (s *promotionService) Update(ctx context.Context, id uuid.UUID, req *model.PromotionRequest) (*model.Promotion, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	existing, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	promotion := applyPromotionRequest(existing, req)
	promotion.UpdatedAt = s.now().UTC()

	updated, err := s.promotions.Update(ctx, promotion)
	if err != nil {
		s.logger.Error().Err(err).Str("promotion_id", id.String()).Msg("failed to update promotion")
		return nil, fmt.Errorf("failed to update promotion: %w", err)
	}
	if !updated {
		return nil, model.ErrPromotionNotFound
	}

	return promotion, nil
}

func (s *promotionService) Delete(ctx context.Context, id uuid.UUID) error {
	deleted, err := s.promotions.Delete(ctx, id)
	if err != nil {
		s.logger.Error().Err(err).Str("promotion_id", id.String()).Msg("failed to delete promotion")
		return fmt.Errorf("failed to delete promotion: %w", err)
	}
	if !deleted {
		return model.ErrPromotionNotFound
	}

	s.logger.Info().Str("promotion_id", id.String()).Msg("promotion deleted")
	return nil
}

func (s *promotionService) Toggle(ctx context.Context, id uuid.UUID) (*model.Promotion, error) {
	existing, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	promotion, err := s.promotions.SetActive(ctx, id, !existing.Active)
	if err != nil {
		s.logger.Error().Err(err).Str("promotion_id", id.String()).Msg("failed to toggle promotion")
		return nil, fmt.Errorf("failed to toggle promotion: %w", err)
	}
	if promotion == nil {
		return nil, model.ErrPromotionNotFound
	}

	s.logger.Info().
		Str("promotion_id", id.String()).
		Bool("active", promotion.Active).
		Msg("promotion toggled")

	return promotion, nil
}

func (s *promotionService) GetSettings(ctx context.Context) (model.PromotionSettings, error) {
	stored, err := s.settings.GetByIDs(ctx, promotionSettingIDs)
	if err != nil {
		s.logger.Error().Err(err).Msg("failed to load promotion settings")
		return model.PromotionSettings{}, fmt.Errorf("failed to load promotion settings: %w", err)
	}

	def := model.DefaultPromotionSettings()
	values := indexSettings(stored)

	return model.PromotionSettings{
		Enabled:         values.boolean(model.SettingPromotionsEnabled, def.Enabled),
		AutoRotate:      values.boolean(model.SettingPromotionAutoRotate, def.AutoRotate),
		RotationSpeedMs: values.positive(model.SettingPromotionRotationSpeed, def.RotationSpeedMs),
		MaxDisplay:      values.positive(model.SettingPromotionMaxDisplay, def.MaxDisplay),
	}, nil
}

func (s *promotionService) UpdateSettings(ctx context.Context, settings model.PromotionSettings) (model.PromotionSettings, error) {
	if settings.RotationSpeedMs <= 0 || settings.MaxDisplay <= 0 {
		return model.PromotionSettings{}, model.ErrInvalidSetting
	}

	err := s.settings.Upsert(ctx, []model.Setting{
		boolSetting(model.SettingPromotionsEnabled, settings.Enabled),
		boolSetting(model.SettingPromotionAutoRotate, settings.AutoRotate),
		intSetting(model.SettingPromotionRotationSpeed, settings.RotationSpeedMs),
		intSetting(model.SettingPromotionMaxDisplay, settings.MaxDisplay),
	})
	if err != nil {
		s.logger.Error().Err(err).Msg("failed to update promotion settings")
		return model.PromotionSettings{}, fmt.Errorf("failed to update promotion settings: %w", err)
	}

	s.logger.Info().
		Bool("enabled", settings.Enabled).
		Bool("auto_rotate", settings.AutoRotate).
		Int("rotation_speed_ms", settings.RotationSpeedMs).
		Int("max_display", settings.MaxDisplay).
		Msg("promotion settings updated")

	return settings, nil
}

func applyPromotionRequest(p *model.Promotion, req *model.PromotionRequest) *model.Promotion {
	p.Title = req.Title
	p.Subtitle = req.Subtitle
	p.Description = req.Description
	p.ImageURL = req.ImageURL
	p.GradientColors = req.GradientColors
	p.BadgeText = req.BadgeText
	p.PromoCode = req.PromoCode
	p.ValidUntil = req.ValidUntil
	p.Active = req.Active
	p.SortOrder = req.SortOrder
	return p
}
