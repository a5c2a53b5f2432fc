package repository_test

import (
	"context"
	"io"
	"log/slog"
	"os"
	"testing"

	"github.com/Lixing-Zhang/restaurant-backend/internal/config"
	"github.com/Lixing-Zhang/restaurant-backend/internal/database"
	"github.com/Lixing-Zhang/restaurant-backend/internal/models"
	"github.com/Lixing-Zhang/restaurant-backend/internal/repository"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestPostgresRepositories runs against a real database.
// It is skipped in short mode and when TEST_DATABASE_URL is unset.
func TestPostgresRepositories(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping postgres test in short mode")
	}
	url := os.Getenv("TEST_DATABASE_URL")
	if url == "" {
		t.Skip("skipping postgres test: TEST_DATABASE_URL not set")
	}

	ctx := context.Background()
	log := slog.New(slog.NewTextHandler(io.Discard, nil))

	db, err := database.New(ctx, config.DatabaseConfig{
		URL:            url,
		MaxConns:       4,
		MinConns:       1,
		ConnectRetries: 1,
	}, log)
	require.NoError(t, err)
	defer db.Close()

	_, err = db.RunMigrations(ctx)
	require.NoError(t, err)
	_, err = db.Pool.Exec(ctx, "TRUNCATE order_items, orders, menu_items RESTART IDENTITY")
	require.NoError(t, err)

	menu := repository.NewPostgresMenuRepository(db.Pool)
	orders := repository.NewPostgresOrderRepository(db.Pool)

	item, err := menu.Create(ctx, models.MenuItemInput{Name: "Bibimbap", Description: "rice bowl", Price: 11, Availability: true})
	require.NoError(t, err)
	require.NotZero(t, item.ID)

	require.NoError(t, menu.Update(ctx, item.ID, models.MenuItemInput{Name: "Bibimbap", Description: "stone pot", Price: 13, Availability: true}))
	got, err := menu.GetByID(ctx, item.ID)
	require.NoError(t, err)
	assert.Equal(t, "stone pot", got.Description)
	assert.Equal(t, int64(13), got.Price)

	assert.ErrorIs(t, menu.Update(ctx, item.ID+100, models.MenuItemInput{}), repository.ErrMenuItemNotFound)
	_, err = menu.GetByID(ctx, item.ID+100)
	assert.ErrorIs(t, err, repository.ErrMenuItemNotFound)

	order, err := orders.Create(ctx, "Ada", models.StatusReceived, 0)
	require.NoError(t, err)
	_, err = orders.AddItem(ctx, order.ID, item.ID, 1)
	require.NoError(t, err)
	require.NoError(t, orders.UpdateTotal(ctx, order.ID, 13))
	require.NoError(t, orders.UpdateStatus(ctx, order.ID, models.StatusDelivered))

	stored, err := orders.GetByID(ctx, order.ID)
	require.NoError(t, err)
	assert.Equal(t, 13.0, stored.TotalAmount)
	assert.Equal(t, models.StatusDelivered, stored.Status)

	lines, err := orders.ListItems(ctx, order.ID)
	require.NoError(t, err)
	require.Len(t, lines, 1)
	assert.Equal(t, item.ID, lines[0].ItemID)

	// Deleting an ordered dish succeeds; the line item stays.
	require.NoError(t, menu.Delete(ctx, item.ID))
	assert.ErrorIs(t, menu.Delete(ctx, item.ID), repository.ErrMenuItemNotFound)
	lines, err = orders.ListItems(ctx, order.ID)
	require.NoError(t, err)
	assert.Len(t, lines, 1)

	assert.ErrorIs(t, orders.UpdateStatus(ctx, order.ID+100, models.StatusReady), repository.ErrOrderNotFound)

	all, err := orders.List(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 1)
}
