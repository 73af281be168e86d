// Package catalog loads the storefront seed catalogue (categories, menu,
// promotions, exclusive offers and site settings) and imports it into the
// database.
package catalog

import (
	"compress/gzip"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"retiro-storefront/internal/model"
)

// Catalog is the seed data for a storefront.
type Catalog struct {
	Categories []model.Category       `json:"categories"`
	MenuItems  []model.MenuItem       `json:"menuItems"`
	Promotions []model.Promotion      `json:"promotions"`
	Offers     []model.ExclusiveOffer `json:"exclusiveOffers"`
	Settings   []model.Setting        `json:"settings"`
}

// Loader defines the interface for loading a catalogue file.
type Loader interface {
	// Load reads a catalogue from path. Paths ending in .gz are gunzipped.
	Load(ctx context.Context, path string) (*Catalog, error)
}

// Validate checks that every menu item belongs to a known category and that
// identifiers are present.
func (c *Catalog) Validate() error {
	categories := make(map[string]struct{}, len(c.Categories))
	for _, cat := range c.Categories {
		if cat.ID == "" {
			return fmt.Errorf("category %q has no id", cat.Name)
		}
		categories[cat.ID] = struct{}{}
	}

	for _, item := range c.MenuItems {
		if item.ID == "" {
			return fmt.Errorf("menu item %q has no id", item.Name)
		}
		if _, ok := categories[item.Category]; !ok {
			return fmt.Errorf("menu item %s references unknown category %q", item.ID, item.Category)
		}
		if item.Price.IsNegative() {
			return fmt.Errorf("menu item %s has a negative price", item.ID)
		}
	}

	for _, offer := range c.Offers {
		if offer.Price.IsNegative() {
			return fmt.Errorf("exclusive offer %q has a negative price", offer.Title)
		}
	}

	for _, s := range c.Settings {
		if s.ID == "" {
			return fmt.Errorf("setting without id")
		}
	}

	return nil
}

// decode reads a catalogue from r, gunzipping it when compressed is set.
func decode(r io.Reader, compressed bool) (*Catalog, error) {
	if compressed {
		gzipReader, err := gzip.NewReader(r)
		if err != nil {
			return nil, fmt.Errorf("failed to create gzip reader: %w", err)
		}
		defer gzipReader.Close()
		r = gzipReader
	}

	var c Catalog
	if err := json.NewDecoder(r).Decode(&c); err != nil {
		return nil, fmt.Errorf("failed to decode catalogue: %w", err)
	}

	if err := c.Validate(); err != nil {
		return nil, fmt.Errorf("invalid catalogue: %w", err)
	}

	return &c, nil
}

func isGzipped(path string) bool {
	return strings.HasSuffix(path, ".gz")
}
