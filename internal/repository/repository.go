package repository

import (
	"context"
	"errors"

	"github.com/Lixing-Zhang/restaurant-backend/internal/models"
)

var (
	ErrMenuItemNotFound = errors.New("menu item not found")
	ErrOrderNotFound    = errors.New("order not found")
)

// MenuRepository defines the interface for menu data access
type MenuRepository interface {
	List(ctx context.Context) ([]models.MenuItem, error)
	GetByID(ctx context.Context, id int64) (*models.MenuItem, error)
	Create(ctx context.Context, input models.MenuItemInput) (*models.MenuItem, error)
	Update(ctx context.Context, id int64, input models.MenuItemInput) error
	Delete(ctx context.Context, id int64) error
}

// OrderRepository defines the interface for order and line item data access.
// Every method is a single atomic write or read; none spans a transaction.
type OrderRepository interface {
	Create(ctx context.Context, customerName string, status models.Status, total float64) (*models.Order, error)
	AddItem(ctx context.Context, orderID, itemID int64, quantity int) (*models.OrderItem, error)
	UpdateTotal(ctx context.Context, orderID int64, total float64) error
	UpdateStatus(ctx context.Context, orderID int64, status models.Status) error
	GetByID(ctx context.Context, orderID int64) (*models.Order, error)
	List(ctx context.Context) ([]models.Order, error)
	ListItems(ctx context.Context, orderID int64) ([]models.OrderItem, error)
}

var (
	_ MenuRepository  = (*InMemoryMenuRepository)(nil)
	_ MenuRepository  = (*PostgresMenuRepository)(nil)
	_ OrderRepository = (*InMemoryOrderRepository)(nil)
	_ OrderRepository = (*PostgresOrderRepository)(nil)
)
