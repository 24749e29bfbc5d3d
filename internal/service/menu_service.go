package service

import (
	"context"

	"cafe-pos/internal/catalog"
	"cafe-pos/internal/model"

	"github.com/rs/zerolog"
)

// menuService implements MenuService.
type menuService struct {
	menu   catalog.MenuStore
	logger zerolog.Logger
}

// NewMenuService creates a new menu service.
func NewMenuService(menu catalog.MenuStore, logger zerolog.Logger) MenuService {
	return &menuService{
		menu:   menu,
		logger: logger.With().Str("service", "menu").Logger(),
	}
}

func (s *menuService) List(ctx context.Context) ([]model.CatalogItem, error) {
	return s.menu.List(), nil
}

func (s *menuService) Create(ctx context.Context, req *model.MenuItemRequest) (*model.CatalogItem, error) {
	item, err := s.menu.Add(req.ToCatalogItem(catalog.NewItemID()))
	if err != nil {
		s.logger.Warn().Err(err).Str("name", req.Name).Msg("menu item rejected")
		return nil, err
	}

	s.logger.Info().
		Str("item_id", item.ID).
		Str("name", item.Name).
		Str("category", item.Category).
		Msg("menu item created")
	return &item, nil
}

func (s *menuService) Update(ctx context.Context, id string, req *model.MenuItemRequest) (*model.CatalogItem, error) {
	existing, err := s.menu.Get(id)
	if err != nil {
		return nil, err
	}

	item := req.ToCatalogItem(id)
	if req.Enabled == nil {
		item.Enabled = existing.Enabled
	}

	updated, err := s.menu.Update(item)
	if err != nil {
		s.logger.Warn().Err(err).Str("item_id", id).Msg("menu item update rejected")
		return nil, err
	}

	s.logger.Info().Str("item_id", id).Msg("menu item updated")
	return &updated, nil
}

func (s *menuService) Delete(ctx context.Context, id string) error {
	if err := s.menu.Delete(id); err != nil {
		return err
	}
	s.logger.Info().Str("item_id", id).Msg("menu item deleted")
	return nil
}

func (s *menuService) Toggle(ctx context.Context, id string) (*model.CatalogItem, error) {
	item, err := s.menu.Toggle(id)
	if err != nil {
		return nil, err
	}
	s.logger.Info().Str("item_id", id).Bool("enabled", item.Enabled).Msg("menu item availability toggled")
	return &item, nil
}
