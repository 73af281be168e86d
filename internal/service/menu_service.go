package service

import (
	"context"
	"fmt"

	"retiro-storefront/internal/model"
	"retiro-storefront/internal/repository"

	"github.com/rs/zerolog"
)

// DefaultCategory is selected first on the storefront when it exists.
const DefaultCategory = "dim-sum"

// menuService implements MenuService.
type menuService struct {
	categories repository.CategoryRepository
	menu       repository.MenuRepository
	logger     zerolog.Logger
}

// NewMenuService creates a new menu service.
func NewMenuService(categories repository.CategoryRepository, menu repository.MenuRepository, logger zerolog.Logger) MenuService {
	return &menuService{
		categories: categories,
		menu:       menu,
		logger:     logger.With().Str("service", "menu").Logger(),
	}
}

// GetMenu returns active categories in sort order, each with its available
// items. Items of inactive or unknown categories are omitted.
func (s *menuService) GetMenu(ctx context.Context) (*model.MenuResponse, error) {
	categories, err := s.categories.GetActive(ctx)
	if err != nil {
		s.logger.Error().Err(err).Msg("failed to get categories")
		return nil, fmt.Errorf("failed to get categories: %w", err)
	}

	items, err := s.menu.GetAvailable(ctx)
	if err != nil {
		s.logger.Error().Err(err).Msg("failed to get menu items")
		return nil, fmt.Errorf("failed to get menu items: %w", err)
	}

	byCategory := make(map[string][]model.MenuItem, len(categories))
	for _, item := range items {
		byCategory[item.Category] = append(byCategory[item.Category], item)
	}

	resp := &model.MenuResponse{Sections: make([]model.MenuSection, 0, len(categories))}
	for _, c := range categories {
		section := model.MenuSection{Category: c, Items: byCategory[c.ID]}
		if section.Items == nil {
			section.Items = []model.MenuItem{}
		}
		resp.Sections = append(resp.Sections, section)

		if c.ID == DefaultCategory {
			resp.DefaultCategory = c.ID
		}
	}
	if resp.DefaultCategory == "" && len(categories) > 0 {
		resp.DefaultCategory = categories[0].ID
	}

	s.logger.Debug().
		Int("categories", len(categories)).
		Int("items", len(items)).
		Msg("retrieved menu")

	return resp, nil
}
