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

// offerService implements OfferService.
type offerService struct {
	offers   repository.OfferRepository
	settings repository.SettingsRepository
	now      func() time.Time
	logger   zerolog.Logger
}

// NewOfferService creates a new exclusive offer service.
func NewOfferService(
	offers repository.OfferRepository,
	settings repository.SettingsRepository,
	logger zerolog.Logger,
) OfferService {
	return &offerService{
		offers:   offers,
		settings: settings,
		now:      time.Now,
		logger:   logger.With().Str("service", "exclusive_offer").Logger(),
	}
}

// Fetch returns the available offers in display order.
func (s *offerService) Fetch(ctx context.Context) (model.Feed, error) {
	offers, err := s.offers.GetAvailable(ctx)
	if err != nil {
		s.logger.Error().Err(err).Msg("failed to load exclusive offers")
		return model.Feed{}, fmt.Errorf("failed to load exclusive offers: %w", err)
	}

	settings, err := s.GetSettings(ctx)
	if err != nil {
		return model.Feed{}, err
	}

	feed := model.Feed{
		Items:    make([]model.PromotableItem, 0, len(offers)),
		Settings: settings.Carousel(),
	}
	for _, o := range offers {
		feed.Items = append(feed.Items, model.FromOffer(o))
	}

	return feed, nil
}

func (s *offerService) GetAll(ctx context.Context) ([]model.ExclusiveOffer, error) {
	offers, err := s.offers.GetAll(ctx)
	if err != nil {
		s.logger.Error().Err(err).Msg("failed to list exclusive offers")
		return nil, fmt.Errorf("failed to list exclusive offers: %w", err)
	}
	return offers, nil
}

func (s *offerService) GetByID(ctx context.Context, id uuid.UUID) (*model.ExclusiveOffer, error) {
	offer, err := s.offers.GetByID(ctx, id)
	if err != nil {
		s.logger.Error().Err(err).Str("offer_id", id.String()).Msg("failed to get exclusive offer")
		return nil, fmt.Errorf("failed to get exclusive offer: %w", err)
	}
	if offer == nil {
		return nil, model.ErrOfferNotFound
	}
	return offer, nil
}

func (s *offerService) Create(ctx context.Context, req *model.OfferRequest) (*model.ExclusiveOffer, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	now := s.now().UTC()
	offer := applyOfferRequest(&model.ExclusiveOffer{ID: uuid.New(), CreatedAt: now}, req)
	offer.UpdatedAt = now

	if err := s.offers.Create(ctx, offer); err != nil {
		s.logger.Error().Err(err).Msg("failed to create exclusive offer")
		return nil, fmt.Errorf("failed to create exclusive offer: %w", err)
	}

	s.logger.Info().
		Str("offer_id", offer.ID.String()).
		Str("title", offer.Title).
		Str("price", offer.Price.StringFixed(2)).
		Msg("exclusive offer created")

	return offer, nil
}

func (s *offerService) Update(ctx context.Context, id uuid.UUID, req *model.OfferRequest) (*model.ExclusiveOffer, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	existing, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	offer := applyOfferRequest(existing, req)
	offer.UpdatedAt = s.now().UTC()

	updated, err := s.offers.Update(ctx, offer)
	if err != nil {
		s.logger.Error().Err(err).Str("offer_id", id.String()).Msg("failed to update exclusive offer")
		return nil, fmt.Errorf("failed to update exclusive offer: %w", err)
	}
	if !updated {
		return nil, model.ErrOfferNotFound
	}

	return offer, nil
}

func (s *offerService) Delete(ctx context.Context, id uuid.UUID) error {
	deleted, err := s.offers.Delete(ctx, id)
	if err != nil {
		s.logger.Error().Err(err).Str("offer_id", id.String()).Msg("failed to delete exclusive offer")
		return fmt.Errorf("failed to delete exclusive offer: %w", err)
	}
	if !deleted {
		return model.ErrOfferNotFound
	}

	s.logger.Info().Str("offer_id", id.String()).Msg("exclusive offer deleted")
	return nil
}

func (s *offerService) Toggle(ctx context.Context, id uuid.UUID) (*model.ExclusiveOffer, error) {
	existing, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	offer, err := s.offers.SetAvailable(ctx, id, !existing.Available)
	if err != nil {
		s.logger.Error().Err(err).Str("offer_id", id.String()).Msg("failed to toggle exclusive offer")
		return nil, fmt.Errorf("failed to toggle exclusive offer: %w", err)
	}
	if offer == nil {
		return nil, model.ErrOfferNotFound
	}

	s.logger.Info().
		Str("offer_id", id.String()).
		Bool("available", offer.Available).
		Msg("exclusive offer toggled")

	return offer, nil
}

func (s *offerService) GetSettings(ctx context.Context) (model.OfferSettings, error) {
	stored, err := s.settings.GetByPrefix(ctx, model.OfferSettingsPrefix)
	if err != nil {
		s.logger.Error().Err(err).Msg("failed to load exclusive offer settings")
		return model.OfferSettings{}, fmt.Errorf("failed to load exclusive offer settings: %w", err)
	}

	def := model.DefaultOfferSettings()
	values := indexSettings(stored)

	return model.OfferSettings{
		Enabled:         values.boolean(model.SettingOffersEnabled, def.Enabled),
		AutoRotate:      values.boolean(model.SettingOffersAutoRotate, def.AutoRotate),
		RotationSpeedMs: values.positive(model.SettingOffersRotationSpeed, def.RotationSpeedMs),
		Title:           values.text(model.SettingOffersTitle, def.Title),
		Subtitle:        values.text(model.SettingOffersSubtitle, def.Subtitle),
		Badge:           values.text(model.SettingOffersBadge, def.Badge),
	}, nil
}

func (s *offerService) UpdateSettings(ctx context.Context, settings model.OfferSettings) (model.OfferSettings, error) {
	if settings.RotationSpeedMs <= 0 {
		return model.OfferSettings{}, model.ErrInvalidSetting
	}

	err := s.settings.Upsert(ctx, []model.Setting{
		boolSetting(model.SettingOffersEnabled, settings.Enabled),
		boolSetting(model.SettingOffersAutoRotate, settings.AutoRotate),
		intSetting(model.SettingOffersRotationSpeed, settings.RotationSpeedMs),
		textSetting(model.SettingOffersTitle, settings.Title),
		textSetting(model.SettingOffersSubtitle, settings.Subtitle),
		textSetting(model.SettingOffersBadge, settings.Badge),
	})
	if err != nil {
		s.logger.Error().Err(err).Msg("failed to update exclusive offer settings")
		return model.OfferSettings{}, fmt.Errorf("failed to update exclusive offer settings: %w", err)
	}

	s.logger.Info().
		Bool("enabled", settings.Enabled).
		Bool("auto_rotate", settings.AutoRotate).
		Int("rotation_speed_ms", settings.RotationSpeedMs).
		Msg("exclusive offer settings updated")

	return s.GetSettings(ctx)
}

func applyOfferRequest(o *model.ExclusiveOffer, req *model.OfferRequest) *model.ExclusiveOffer {
	o.Title = req.Title
	o.Subtitle = req.Subtitle
	o.Description = req.Description
	o.Price = req.Price
	o.OriginalPrice = req.OriginalPrice
	o.DiscountText = req.DiscountText
	o.ImageURL = req.ImageURL
	o.BadgeText = req.BadgeText
	o.Available = req.Available
	o.DisplayOrder = req.DisplayOrder
	return o
}
