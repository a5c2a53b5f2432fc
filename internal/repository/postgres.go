package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/Lixing-Zhang/restaurant-backend/internal/models"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// Querier is the subset of pgxpool.Pool used by the postgres repositories
type Querier interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

const (
	listMenuItemsSQL = `
		SELECT id, name, description, price, availability
		FROM menu_items
		ORDER BY id`

	getMenuItemSQL = `
		SELECT id, name, description, price, availability
		FROM menu_items WHERE id = $1`

	insertMenuItemSQL = `
		INSERT INTO menu_items (name, description, price, availability)
		VALUES ($1, $2, $3, $4)
		RETURNING id`

	updateMenuItemSQL = `
		UPDATE menu_items SET name = $1, description = $2, price = $3, availability = $4
		WHERE id = $5`

	deleteMenuItemSQL = `DELETE FROM menu_items WHERE id = $1`

	insertOrderSQL = `
		INSERT INTO orders (customer_name, status, total_amount)
		VALUES ($1, $2, $3)
		RETURNING order_id`

	insertOrderItemSQL = `
		INSERT INTO order_items (order_id, item_id, quantity)
		VALUES ($1, $2, $3)
		RETURNING id`

	updateOrderTotalSQL  = `UPDATE orders SET total_amount = $1 WHERE order_id = $2`
	updateOrderStatusSQL = `UPDATE orders SET status = $1 WHERE order_id = $2`

	getOrderSQL = `
		SELECT order_id, customer_name, status, total_amount
		FROM orders WHERE order_id = $1`

	listOrdersSQL = `
		SELECT order_id, customer_name, status, total_amount
		FROM orders
		ORDER BY order_id`

	listOrderItemsSQL = `
		SELECT id, order_id, item_id, quantity
		FROM order_items
		WHERE order_id = $1
		ORDER BY id`
)

// PostgresMenuRepository implements MenuRepository on PostgreSQL
type PostgresMenuRepository struct {
	db Querier
}

// NewPostgresMenuRepository creates a menu repository backed by db
func NewPostgresMenuRepository(db Querier) *PostgresMenuRepository {
	return &PostgresMenuRepository{db: db}
}

func (r *PostgresMenuRepository) List(ctx context.Context) ([]models.MenuItem, error) {
	rows, err := r.db.Query(ctx, listMenuItemsSQL)
	if err != nil {
		return nil, fmt.Errorf("query menu items: %w", err)
	}
	defer rows.Close()

	items := make([]models.MenuItem, 0)
	for rows.Next() {
		var item models.MenuItem
		if err := rows.Scan(&item.ID, &item.Name, &item.Description, &item.Price, &item.Availability); err != nil {
			return nil, fmt.Errorf("scan menu item: %w", err)
		}
		items = append(items, item)
	}
	return items, rows.Err()
}

func (r *PostgresMenuRepository) GetByID(ctx context.Context, id int64) (*models.MenuItem, error) {
	var item models.MenuItem
	err := r.db.QueryRow(ctx, getMenuItemSQL, id).
		Scan(&item.ID, &item.Name, &item.Description, &item.Price, &item.Availability)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrMenuItemNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get menu item %d: %w", id, err)
	}
	return &item, nil
}

func (r *PostgresMenuRepository) Create(ctx context.Context, input models.MenuItemInput) (*models.MenuItem, error) {
	item := models.MenuItem{
		Name:         input.Name,
		Description:  input.Description,
		Price:        input.Price,
		Availability: input.Availability,
	}
	err := r.db.QueryRow(ctx, insertMenuItemSQL,
		input.Name, input.Description, input.Price, input.Availability).Scan(&item.ID)
	if err != nil {
		return nil, fmt.Errorf("insert menu item: %w", err)
	}
	return &item, nil
}

func (r *PostgresMenuRepository) Update(ctx context.Context, id int64, input models.MenuItemInput) error {
	tag, err := r.db.Exec(ctx, updateMenuItemSQL,
		input.Name, input.Description, input.Price, input.Availability, id)
	if err != nil {
		return fmt.Errorf("update menu item %d: %w", id, err)
	}
	if tag.RowsAffected() == 0 {
		return ErrMenuItemNotFound
	}
	return nil
}

func (r *PostgresMenuRepository) Delete(ctx context.Context, id int64) error {
	tag, err := r.db.Exec(ctx, deleteMenuItemSQL, id)
	if err != nil {
		return fmt.Errorf("delete menu item %d: %w", id, err)
	}
	if tag.RowsAffected() == 0 {
		return ErrMenuItemNotFound
	}
	return nil
}

// PostgresOrderRepository implements OrderRepository on PostgreSQL.
// Each call is its own statement; callers get no cross-call atomicity.
type PostgresOrderRepository struct {
	db Querier
}

// NewPostgresOrderRepository creates an order repository backed by db
func NewPostgresOrderRepository(db Querier) *PostgresOrderRepository {
	return &PostgresOrderRepository{db: db}
}

func (r *PostgresOrderRepository) Create(ctx context.Context, customerName string, status models.Status, total float64) (*models.Order, error) {
	order := models.Order{
		CustomerName: customerName,
		Status:       status,
		TotalAmount:  total,
	}
	if err := r.db.QueryRow(ctx, insertOrderSQL, customerName, string(status), total).Scan(&order.ID); err != nil {
		return nil, fmt.Errorf("insert order: %w", err)
	}
	return &order, nil
}

func (r *PostgresOrderRepository) AddItem(ctx context.Context, orderID, itemID int64, quantity int) (*models.OrderItem, error) {
	item := models.OrderItem{
		OrderID:  orderID,
		ItemID:   itemID,
		Quantity: quantity,
	}
	if err := r.db.QueryRow(ctx, insertOrderItemSQL, orderID, itemID, quantity).Scan(&item.ID); err != nil {
		return nil, fmt.Errorf("insert order item: %w", err)
	}
	return &item, nil
}

func (r *PostgresOrderRepository) UpdateTotal(ctx context.Context, orderID int64, total float64) error {
	return r.execOrderUpdate(ctx, updateOrderTotalSQL, total, orderID)
}

func (r *PostgresOrderRepository) UpdateStatus(ctx context.Context, orderID int64, status models.Status) error {
	return r.execOrderUpdate(ctx, updateOrderStatusSQL, string(status), orderID)
}

func (r *PostgresOrderRepository) execOrderUpdate(ctx context.Context, sql string, value any, orderID int64) error {
	tag, err := r.db.Exec(ctx, sql, value, orderID)
	if err != nil {
		return fmt.Errorf("update order %d: %w", orderID, err)
	}
	if tag.RowsAffected() == 0 {
		return ErrOrderNotFound
	}
	return nil
}

func (r *PostgresOrderRepository) GetByID(ctx context.Context, orderID int64) (*models.Order, error) {
	order, err := scanOrder(r.db.QueryRow(ctx, getOrderSQL, orderID))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrOrderNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get order %d: %w", orderID, err)
	}
	return order, nil
}

func (r *PostgresOrderRepository) List(ctx context.Context) ([]models.Order, error) {
	rows, err := r.db.Query(ctx, listOrdersSQL)
	if err != nil {
		return nil, fmt.Errorf("query orders: %w", err)
	}
	defer rows.Close()

	orders := make([]models.Order, 0)
	for rows.Next() {
		order, err := scanOrder(rows)
		if err != nil {
			return nil, fmt.Errorf("scan order: %w", err)
		}
		orders = append(orders, *order)
	}
	return orders, rows.Err()
}

func (r *PostgresOrderRepository) ListItems(ctx context.Context, orderID int64) ([]models.OrderItem, error) {
	rows, err := r.db.Query(ctx, listOrderItemsSQL, orderID)
	if err != nil {
		return nil, fmt.Errorf("query order items: %w", err)
	}
	defer rows.Close()

	var items []models.OrderItem
	for rows.Next() {
		var item models.OrderItem
		if err := rows.Scan(&item.ID, &item.OrderID, &item.ItemID, &item.Quantity); err != nil {
			return nil, fmt.Errorf("scan order item: %w", err)
		}
		items = append(items, item)
	}
	return items, rows.Err()
}

// scanOrder reads one orders row. customer_name is nullable.
func scanOrder(row pgx.Row) (*models.Order, error) {
	var (
		order        models.Order
		customerName *string
		status       string
	)
	if err := row.Scan(&order.ID, &customerName, &status, &order.TotalAmount); err != nil {
		return nil, err
	}
	if customerName != nil {
		order.CustomerName = *customerName
	}
	order.Status = models.Status(status)
	return &order, nil
}
