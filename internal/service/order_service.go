package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/Lixing-Zhang/restaurant-backend/internal/models"
	"github.com/Lixing-Zhang/restaurant-backend/internal/repository"
)

var (
	ErrNoValidItems  = errors.New("invalid order items or item availability")
	ErrInvalidFilter = errors.New("invalid status filter")
)

// MenuLookup is the catalog access the order service needs
type MenuLookup interface {
	GetByID(ctx context.Context, id int64) (*models.MenuItem, error)
}

// OrderService handles order placement, status updates and review
type OrderService struct {
	menuRepo  MenuLookup
	orderRepo repository.OrderRepository
}

// NewOrderService creates a new order service
func NewOrderService(menuRepo MenuLookup, orderRepo repository.OrderRepository) *OrderService {
	return &OrderService{
		menuRepo:  menuRepo,
		orderRepo: orderRepo,
	}
}

// PlaceOrder records an order for the referenced menu items.
//
// The order header is written first and is kept even when no item
// validates; in that case ErrNoValidItems is returned. Missing,
// unavailable and non-integer references are skipped. Every accepted
// reference becomes its own line item with quantity 1, duplicates included.
func (s *OrderService) PlaceOrder(ctx context.Context, customerName string, items []models.ItemRef) (*models.OrderConfirmation, error) {
	order, err := s.orderRepo.Create(ctx, customerName, models.StatusReceived, 0)
	if err != nil {
		return nil, fmt.Errorf("create order: %w", err)
	}

	var (
		total    int64
		accepted int
	)
	for _, ref := range items {
		if !ref.Valid {
			continue
		}

		menuItem, err := s.menuRepo.GetByID(ctx, ref.ID)
		if errors.Is(err, repository.ErrMenuItemNotFound) {
			continue
		}
		if err != nil {
			return nil, fmt.Errorf("look up menu item %d: %w", ref.ID, err)
		}
		if !menuItem.Availability {
			continue
		}

		if _, err := s.orderRepo.AddItem(ctx, order.ID, menuItem.ID, models.DefaultQuantity); err != nil {
			return nil, fmt.Errorf("add item %d to order %d: %w", menuItem.ID, order.ID, err)
		}
		total += menuItem.Price
		accepted++
	}

	totalAmount := float64(total)
	if err := s.orderRepo.UpdateTotal(ctx, order.ID, totalAmount); err != nil {
		return nil, fmt.Errorf("update total for order %d: %w", order.ID, err)
	}

	if accepted == 0 {
		return nil, ErrNoValidItems
	}

	formatted := fmt.Sprintf("%.2f", totalAmount)
	return &models.OrderConfirmation{
		Message:     fmt.Sprintf("Order with ID %d has been received. Total amount: $%s", order.ID, formatted),
		OrderID:     order.ID,
		TotalAmount: formatted,
	}, nil
}

// UpdateStatus sets an order's status verbatim. A nil status only checks
// that the order exists.
func (s *OrderService) UpdateStatus(ctx context.Context, orderID int64, status *string) error {
	if status == nil {
		_, err := s.orderRepo.GetByID(ctx, orderID)
		return err
	}
	return s.orderRepo.UpdateStatus(ctx, orderID, models.Status(*status))
}

// ListOrders returns every order enriched with its line items
func (s *OrderService) ListOrders(ctx context.Context) ([]models.OrderView, error) {
	return s.collect(ctx, FilterAll)
}

// ReviewOrders returns the orders whose status matches the named filter.
// The filter is validated before anything is read.
func (s *OrderService) ReviewOrders(ctx context.Context, status string) ([]models.OrderView, error) {
	filter, err := ParseReviewFilter(status)
	if err != nil {
		return nil, err
	}
	return s.collect(ctx, filter)
}

func (s *OrderService) collect(ctx context.Context, filter ReviewFilter) ([]models.OrderView, error) {
	orders, err := s.orderRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list orders: %w", err)
	}

	views := make([]models.OrderView, 0, len(orders))
	for _, order := range orders {
		if !filter.Matches(order) {
			continue
		}
		view, err := s.enrich(ctx, order)
		if err != nil {
			return nil, err
		}
		views = append(views, view)
	}
	return views, nil
}

// enrich joins an order's line items against the current menu. Lines
// whose menu item no longer exists are left out.
func (s *OrderService) enrich(ctx context.Context, order models.Order) (models.OrderView, error) {
	view := models.OrderView{
		OrderID:      order.ID,
		CustomerName: order.CustomerName,
		Status:       order.Status,
		TotalAmount:  order.TotalAmount,
		Items:        make([]models.OrderViewItem, 0),
	}

	lines, err := s.orderRepo.ListItems(ctx, order.ID)
	if err != nil {
		return view, fmt.Errorf("list items for order %d: %w", order.ID, err)
	}

	for _, line := range lines {
		menuItem, err := s.menuRepo.GetByID(ctx, line.ItemID)
		if errors.Is(err, repository.ErrMenuItemNotFound) {
			continue
		}
		if err != nil {
			return view, fmt.Errorf("look up menu item %d: %w", line.ItemID, err)
		}
		view.Items = append(view.Items, models.OrderViewItem{
			DishID:   line.ItemID,
			DishName: menuItem.Name,
			Price:    menuItem.Price,
			Quantity: line.Quantity,
		})
	}
	return view, nil
}
