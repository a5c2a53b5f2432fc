package service

import (
	"context"
	"testing"

	"github.com/Lixing-Zhang/restaurant-backend/internal/models"
	"github.com/Lixing-Zhang/restaurant-backend/internal/repository"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMenuService_CRUD(t *testing.T) {
	svc := NewMenuService(repository.NewInMemoryMenuRepository())
	ctx := context.Background()

	item, err := svc.AddMenuItem(ctx, models.MenuItemInput{Name: "Pho", Description: "beef", Price: 9, Availability: true})
	require.NoError(t, err)
	assert.Equal(t, int64(1), item.ID)

	_, err = svc.AddMenuItem(ctx, models.MenuItemInput{Name: "Banh mi", Price: 6, Availability: false})
	require.NoError(t, err)

	items, err := svc.ListMenuItems(ctx)
	require.NoError(t, err)
	require.Len(t, items, 2)
	assert.False(t, items[1].Availability, "unavailable items are listed, not filtered")

	require.NoError(t, svc.UpdateMenuItem(ctx, 1, models.MenuItemInput{Name: "Pho tai", Price: 10, Availability: true}))
	got, err := svc.GetMenuItem(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, "Pho tai", got.Name)
	assert.Equal(t, int64(10), got.Price)
	assert.Empty(t, got.Description)

	require.NoError(t, svc.DeleteMenuItem(ctx, 1))
	_, err = svc.GetMenuItem(ctx, 1)
	assert.ErrorIs(t, err, repository.ErrMenuItemNotFound)
}

func TestMenuService_NotFound(t *testing.T) {
	svc := NewMenuService(repository.NewInMemoryMenuRepository())
	ctx := context.Background()

	assert.ErrorIs(t, svc.UpdateMenuItem(ctx, 7, models.MenuItemInput{Name: "x"}), repository.ErrMenuItemNotFound)
	assert.ErrorIs(t, svc.DeleteMenuItem(ctx, 7), repository.ErrMenuItemNotFound)
}

func TestMenuService_RejectsNegativePrice(t *testing.T) {
	svc := NewMenuService(repository.NewInMemoryMenuRepository())
	ctx := context.Background()

	_, err := svc.AddMenuItem(ctx, models.MenuItemInput{Name: "Refund", Price: -1})
	assert.ErrorIs(t, err, ErrInvalidMenuItem)

	items, err := svc.ListMenuItems(ctx)
	require.NoError(t, err)
	assert.Empty(t, items)
}
