package repository

import (
	"context"
	"sort"
	"sync"

	"github.com/Lixing-Zhang/restaurant-backend/internal/models"
)

// InMemoryMenuRepository implements MenuRepository with in-memory storage
type InMemoryMenuRepository struct {
	mu     sync.RWMutex
	items  map[int64]models.MenuItem
	nextID int64
}

// NewInMemoryMenuRepository creates an empty in-memory menu repository
func NewInMemoryMenuRepository() *InMemoryMenuRepository {
	return &InMemoryMenuRepository{
		items:  make(map[int64]models.MenuItem),
		nextID: 1,
	}
}

// List returns all menu items ordered by id
func (r *InMemoryMenuRepository) List(ctx context.Context) ([]models.MenuItem, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	items := make([]models.MenuItem, 0, len(r.items))
	for _, item := range r.items {
		items = append(items, item)
	}
	sort.Slice(items, func(i, j int) bool { return items[i].ID < items[j].ID })
	return items, nil
}

// GetByID returns a menu item by its ID
func (r *InMemoryMenuRepository) GetByID(ctx context.Context, id int64) (*models.MenuItem, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	item, exists := r.items[id]
	if !exists {
		return nil, ErrMenuItemNotFound
	}
	return &item, nil
}

// Create stores a new menu item and assigns its ID
func (r *InMemoryMenuRepository) Create(ctx context.Context, input models.MenuItemInput) (*models.MenuItem, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	item := models.MenuItem{
		ID:           r.nextID,
		Name:         input.Name,
		Description:  input.Description,
		Price:        input.Price,
		Availability: input.Availability,
	}
	r.items[item.ID] = item
	r.nextID++
	return &item, nil
}

// Update replaces every field of an existing menu item
func (r *InMemoryMenuRepository) Update(ctx context.Context, id int64, input models.MenuItemInput) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.items[id]; !exists {
		return ErrMenuItemNotFound
	}
	r.items[id] = models.MenuItem{
		ID:           id,
		Name:         input.Name,
		Description:  input.Description,
		Price:        input.Price,
		Availability: input.Availability,
	}
	return nil
}

// Delete removes a menu item
func (r *InMemoryMenuRepository) Delete(ctx context.Context, id int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.items[id]; !exists {
		return ErrMenuItemNotFound
	}
	delete(r.items, id)
	return nil
}

// InMemoryOrderRepository implements OrderRepository with in-memory storage
type InMemoryOrderRepository struct {
	mu         sync.RWMutex
	orders     []models.Order
	items      []models.OrderItem
	nextOrder  int64
	nextItemID int64
}

// NewInMemoryOrderRepository creates an empty in-memory order repository
func NewInMemoryOrderRepository() *InMemoryOrderRepository {
	return &InMemoryOrderRepository{
		nextOrder:  1,
		nextItemID: 1,
	}
}

// Create stores a new order header and assigns its ID
func (r *InMemoryOrderRepository) Create(ctx context.Context, customerName string, status models.Status, total float64) (*models.Order, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	order := models.Order{
		ID:           r.nextOrder,
		CustomerName: customerName,
		Status:       status,
		TotalAmount:  total,
	}
	r.orders = append(r.orders, order)
	r.nextOrder++
	return &order, nil
}

// AddItem stores a line item under an existing order
func (r *InMemoryOrderRepository) AddItem(ctx context.Context, orderID, itemID int64, quantity int) (*models.OrderItem, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.indexOf(orderID) < 0 {
		return nil, ErrOrderNotFound
	}

	item := models.OrderItem{
		ID:       r.nextItemID,
		OrderID:  orderID,
		ItemID:   itemID,
		Quantity: quantity,
	}
	r.items = append(r.items, item)
	r.nextItemID++
	return &item, nil
}

// UpdateTotal sets an order's total amount
func (r *InMemoryOrderRepository) UpdateTotal(ctx context.Context, orderID int64, total float64) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	i := r.indexOf(orderID)
	if i < 0 {
		return ErrOrderNotFound
	}
	r.orders[i].TotalAmount = total
	return nil
}

// UpdateStatus sets an order's status
func (r *InMemoryOrderRepository) UpdateStatus(ctx context.Context, orderID int64, status models.Status) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	i := r.indexOf(orderID)
	if i < 0 {
		return ErrOrderNotFound
	}
	r.orders[i].Status = status
	return nil
}

// GetByID returns an order header by its ID
func (r *InMemoryOrderRepository) GetByID(ctx context.Context, orderID int64) (*models.Order, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	i := r.indexOf(orderID)
	if i < 0 {
		return nil, ErrOrderNotFound
	}
	order := r.orders[i]
	return &order, nil
}

// List returns all order headers in creation order
func (r *InMemoryOrderRepository) List(ctx context.Context) ([]models.Order, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	orders := make([]models.Order, len(r.orders))
	copy(orders, r.orders)
	return orders, nil
}

// ListItems returns an order's line items in insertion order
func (r *InMemoryOrderRepository) ListItems(ctx context.Context, orderID int64) ([]models.OrderItem, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var items []models.OrderItem
	for _, item := range r.items {
		if item.OrderID == orderID {
			items = append(items, item)
		}
	}
	return items, nil
}

// indexOf must be called with the lock held
func (r *InMemoryOrderRepository) indexOf(orderID int64) int {
	for i, order := range r.orders {
		if order.ID == orderID {
			return i
		}
	}
	return -1
}
