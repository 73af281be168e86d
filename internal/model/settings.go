package model

// Setting is a single row of the site_settings key/value table.
type Setting struct {
	ID    string `json:"id" db:"id"`
	Value string `json:"value" db:"value"`
	Type  string `json:"type" db:"type"`
}

// Setting keys for the promotions carousel.
const (
	SettingPromotionsEnabled      = "promotions_enabled"
	SettingPromotionAutoRotate    = "promotion_auto_rotate"
	SettingPromotionRotationSpeed = "promotion_rotation_speed"
	SettingPromotionMaxDisplay    = "promotion_max_display"

	OfferSettingsPrefix = "exclusive_offers_"

	SettingOffersEnabled       = OfferSettingsPrefix + "enabled"
	SettingOffersAutoRotate    = OfferSettingsPrefix + "auto_rotate"
	SettingOffersRotationSpeed = OfferSettingsPrefix + "rotation_speed"
	SettingOffersTitle         = OfferSettingsPrefix + "title"
	SettingOffersSubtitle      = OfferSettingsPrefix + "subtitle"
	SettingOffersBadge         = OfferSettingsPrefix + "badge"
)

// PromotionSettings controls the promotions carousel.
type PromotionSettings struct {
	Enabled         bool `json:"enabled"`
	AutoRotate      bool `json:"autoRotate"`
	RotationSpeedMs int  `json:"rotationSpeedMs"`
	MaxDisplay      int  `json:"maxDisplay"`
}

// DefaultPromotionSettings returns the settings used when none are stored.
func DefaultPromotionSettings() PromotionSettings {
	return PromotionSettings{
		Enabled:         true,
		AutoRotate:      true,
		RotationSpeedMs: 5000,
		MaxDisplay:      4,
	}
}

// OfferSettings controls the exclusive offers carousel.
type OfferSettings struct {
	Enabled         bool   `json:"enabled"`
	AutoRotate      bool   `json:"autoRotate"`
	RotationSpeedMs int    `json:"rotationSpeedMs"`
	Title           string `json:"title"`
	Subtitle        string `json:"subtitle"`
	Badge           string `json:"badge"`
}

// DefaultOfferSettings returns the settings used when none are stored.
func DefaultOfferSettings() OfferSettings {
	return OfferSettings{
		Enabled:         true,
		AutoRotate:      true,
		RotationSpeedMs: 6000,
		Title:           "Premium Offerings",
		Subtitle:        "Discover our signature collection of premium dishes crafted with exceptional ingredients",
		Badge:           "EXCLUSIVE COLLECTION",
	}
}

// CarouselSettings is the settings view consumed by the rotation engine.
type CarouselSettings struct {
	Enabled         bool   `json:"enabled"`
	AutoRotate      bool   `json:"autoRotate"`
	RotationSpeedMs int    `json:"rotationSpeedMs"`
	Title           string `json:"title,omitempty"`
	Subtitle        string `json:"subtitle,omitempty"`
	BadgeText       string `json:"badgeText,omitempty"`
}

// Carousel returns the engine view of the promotion settings.
func (s PromotionSettings) Carousel() CarouselSettings {
	return CarouselSettings{
		Enabled:         s.Enabled,
		AutoRotate:      s.AutoRotate,
		RotationSpeedMs: s.RotationSpeedMs,
	}
}

// Carousel returns the engine view of the offer settings.
func (s OfferSettings) Carousel() CarouselSettings {
	return CarouselSettings{
		Enabled:         s.Enabled,
		AutoRotate:      s.AutoRotate,
		RotationSpeedMs: s.RotationSpeedMs,
		Title:           s.Title,
		Subtitle:        s.Subtitle,
		BadgeText:       s.Badge,
	}
}

// Feed is what a carousel data source returns: visible items in display
// order plus the carousel settings.
type Feed struct {
	Items    []PromotableItem
	Settings CarouselSettings
}
