package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/Lixing-Zhang/restaurant-backend/internal/models"
	"github.com/Lixing-Zhang/restaurant-backend/internal/repository"
)

var ErrInvalidMenuItem = errors.New("invalid menu item")

// MenuService handles business logic for the menu catalog
type MenuService struct {
	repo repository.MenuRepository
}

// NewMenuService creates a new menu service
func NewMenuService(repo repository.MenuRepository) *MenuService {
	return &MenuService{
		repo: repo,
	}
}

// ListMenuItems returns every menu item, available or not
func (s *MenuService) ListMenuItems(ctx context.Context) ([]models.MenuItem, error) {
	return s.repo.List(ctx)
}

// GetMenuItem returns a menu item by ID
func (s *MenuService) GetMenuItem(ctx context.Context, id int64) (*models.MenuItem, error) {
	return s.repo.GetByID(ctx, id)
}

// AddMenuItem stores a new menu item
func (s *MenuService) AddMenuItem(ctx context.Context, input models.MenuItemInput) (*models.MenuItem, error) {
	if err := validateMenuItem(input); err != nil {
		return nil, err
	}
	return s.repo.Create(ctx, input)
}

// UpdateMenuItem replaces a menu item's fields
func (s *MenuService) UpdateMenuItem(ctx context.Context, id int64, input models.MenuItemInput) error {
	if err := validateMenuItem(input); err != nil {
		return err
	}
	return s.repo.Update(ctx, id, input)
}

// DeleteMenuItem removes a menu item. Past orders keep their line items.
func (s *MenuService) DeleteMenuItem(ctx context.Context, id int64) error {
	return s.repo.Delete(ctx, id)
}

func validateMenuItem(input models.MenuItemInput) error {
	if input.Price < 0 {
		return fmt.Errorf("%w: price must not be negative", ErrInvalidMenuItem)
	}
	return nil
}
