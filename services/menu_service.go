package services

import (
	"strings"

	"github.com/shopspring/decimal"

	"restaurant-ops/apperr"
	"restaurant-ops/models"
	"restaurant-ops/repository"
)

// MenuService owns the menu catalog. The order ledger consumes it only
// through GetMenuItem.
type MenuService struct {
	menuItems repository.MenuItemRepository
}

func NewMenuService(menuItems repository.MenuItemRepository) *MenuService {
	return &MenuService{menuItems: menuItems}
}

// MenuItemPatch carries a partial update; only non-nil fields are applied.
type MenuItemPatch struct {
	Name            *string              `json:"name,omitempty"`
	Description     *string              `json:"description,omitempty"`
	Price           *decimal.Decimal     `json:"price,omitempty"`
	Category        *models.MenuCategory `json:"category,omitempty"`
	IsAvailable     *bool                `json:"is_available,omitempty"`
	PreparationTime *int                 `json:"preparation_time,omitempty"`
	Ingredients     []string             `json:"ingredients,omitempty"`
}

func (s *MenuService) AddMenuItem(item models.MenuItem) (*models.MenuItem, error) {
	if strings.TrimSpace(item.Name) == "" {
		return nil, apperr.InvalidArgument("menu item name is required")
	}
	if !item.Category.Valid() {
		return nil, apperr.InvalidArgument("unknown menu category %q", item.Category)
	}
	if item.Price.Sign() < 0 {
		return nil, apperr.InvalidArgument("menu item price must not be negative")
	}
	saved, err := s.menuItems.Save(item)
	if err != nil {
		return nil, err
	}
	return &saved, nil
}

func (s *MenuService) UpdateMenuItem(id string, patch MenuItemPatch) (*models.MenuItem, error) {
	item, ok := s.menuItems.FindByID(id)
	if !ok {
		return nil, apperr.NotFound("menu item %q does not exist", id)
	}
	if patch.Name != nil {
		if strings.TrimSpace(*patch.Name) == "" {
			return nil, apperr.InvalidArgument("menu item name is required")
		}
		item.Name = *patch.Name
	}
	if patch.Description != nil {
		item.Description = *patch.Description
	}
	if patch.Price != nil {
		if patch.Price.Sign() < 0 {
			return nil, apperr.InvalidArgument("menu item price must not be negative")
		}
		item.Price = *patch.Price
	}
	if patch.Category != nil {
		if !patch.Category.Valid() {
			return nil, apperr.InvalidArgument("unknown menu category %q", *patch.Category)
		}
		item.Category = *patch.Category
	}
	if patch.IsAvailable != nil {
		item.IsAvailable = *patch.IsAvailable
	}
	if patch.PreparationTime != nil {
		item.PreparationTime = *patch.PreparationTime
	}
	if patch.Ingredients != nil {
		item.Ingredients = patch.Ingredients
	}
	if err := s.menuItems.Update(item); err != nil {
		return nil, err
	}
	return &item, nil
}

func (s *MenuService) DeleteMenuItem(id string) error {
	if !s.menuItems.Delete(id) {
		return apperr.NotFound("menu item %q does not exist", id)
	}
	return nil
}

// GetMenuItem resolves a menu item id to its current definition. This is the
// catalog lookup the ledger snapshots prices from.
func (s *MenuService) GetMenuItem(id string) (models.MenuItem, error) {
	item, ok := s.menuItems.FindByID(id)
	if !ok {
		return models.MenuItem{}, apperr.NotFound("menu item %q does not exist", id)
	}
	return item, nil
}

func (s *MenuService) ListMenuItems() []models.MenuItem {
	return s.menuItems.FindAll()
}

func (s *MenuService) ListByCategory(category models.MenuCategory) ([]models.MenuItem, error) {
	if !category.Valid() {
		return nil, apperr.InvalidArgument("unknown menu category %q", category)
	}
	return s.menuItems.FindByCategory(category), nil
}
