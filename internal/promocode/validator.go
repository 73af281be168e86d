// Package promocode validates promo codes presented at checkout against the
// codes of active promotions.
package promocode

import (
	"context"
	"fmt"
	"strings"

	"retiro-storefront/internal/model"

	"github.com/rs/zerolog"
)

// Code length bounds.
const (
	MinLength = 4
	MaxLength = 20
)

// Validator defines the interface for promo code validation.
type Validator interface {
	// Validate checks that promoCode has a valid length and belongs to an
	// active promotion. Matching ignores case and surrounding spaces.
	Validate(ctx context.Context, promoCode string) error
}

// Lookup finds the active promotion carrying a promo code.
type Lookup interface {
	FindActiveByPromoCode(ctx context.Context, code string) (*model.Promotion, error)
}

type validator struct {
	lookup Lookup
	logger zerolog.Logger
}

// NewValidator creates a validator backed by lookup.
func NewValidator(lookup Lookup, logger zerolog.Logger) Validator {
	return &validator{
		lookup: lookup,
		logger: logger.With().Str("component", "promo-validator").Logger(),
	}
}

func (v *validator) Validate(ctx context.Context, promoCode string) error {
	code := Normalise(promoCode)

	// Cheap check first.
	if len(code) < MinLength || len(code) > MaxLength {
		v.logger.Debug().
			Str("promo_code", promoCode).
			Int("length", len(code)).
			Msg("promo code length invalid")
		return model.ErrInvalidPromoLength
	}

	promotion, err := v.lookup.FindActiveByPromoCode(ctx, code)
	if err != nil {
		return fmt.Errorf("failed to look up promo code: %w", err)
	}
	if promotion == nil {
		v.logger.Debug().Str("promo_code", code).Msg("promo code does not match an active promotion")
		return model.ErrInvalidPromoCode
	}

	v.logger.Debug().
		Str("promo_code", code).
		Str("promotion_id", promotion.ID.String()).
		Msg("promo code validated successfully")

	return nil
}

// Normalise trims and upper-cases a promo code.
func Normalise(code string) string {
	return strings.ToUpper(strings.TrimSpace(code))
}
