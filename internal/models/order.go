package models

import (
	"bytes"
	"encoding/json"
	"strconv"
)

// Status labels an order's progress
type Status string

const (
	StatusReceived  Status = "received"
	StatusPreparing Status = "preparing"
	StatusReady     Status = "ready"
	StatusDelivered Status = "delivered"
)

// DefaultQuantity is the quantity stored for every placed line item
const DefaultQuantity = 1

// Order is an order header. Status is free text once updated.
type Order struct {
	ID           int64   `json:"order_id"`
	CustomerName string  `json:"customer_name"`
	Status       Status  `json:"status"`
	TotalAmount  float64 `json:"total_amount"`
}

// OrderItem associates an order with a menu item
type OrderItem struct {
	ID       int64 `json:"id"`
	OrderID  int64 `json:"order_id"`
	ItemID   int64 `json:"item_id"`
	Quantity int   `json:"quantity"`
}

// ItemRef is one entry of a place-order request. Entries that are not JSON
// integers decode without error and are marked invalid.
type ItemRef struct {
	ID    int64
	Valid bool
}

// Ref returns a valid reference to the given menu item
func Ref(id int64) ItemRef {
	return ItemRef{ID: id, Valid: true}
}

// UnmarshalJSON accepts any JSON value
func (r *ItemRef) UnmarshalJSON(data []byte) error {
	*r = ItemRef{}

	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.ContainsAny(data, ".eE\"") {
		return nil
	}
	if c := data[0]; c != '-' && (c < '0' || c > '9') {
		return nil
	}

	id, err := strconv.ParseInt(string(data), 10, 64)
	if err != nil {
		return nil
	}
	r.ID = id
	r.Valid = true
	return nil
}

// MarshalJSON writes valid references as integers and invalid ones as null
func (r ItemRef) MarshalJSON() ([]byte, error) {
	if !r.Valid {
		return []byte("null"), nil
	}
	return json.Marshal(r.ID)
}

// PlaceOrderRequest represents an incoming order
type PlaceOrderRequest struct {
	CustomerName string    `json:"customer_name"`
	Items        []ItemRef `json:"items"`
}

// OrderConfirmation is returned when at least one item was accepted
type OrderConfirmation struct {
	Message     string `json:"message"`
	OrderID     int64  `json:"order_id"`
	TotalAmount string `json:"total_amount"`
}

// UpdateOrderRequest changes an order's status. A nil status leaves it unchanged.
type UpdateOrderRequest struct {
	Status *string `json:"status"`
}

// OrderView is an order enriched with its line items
type OrderView struct {
	OrderID      int64           `json:"order_id"`
	CustomerName string          `json:"customer_name"`
	Status       Status          `json:"status"`
	TotalAmount  float64         `json:"total_amount"`
	Items        []OrderViewItem `json:"items"`
}

// OrderViewItem is a line item joined against the current menu
type OrderViewItem struct {
	DishID   int64  `json:"dish_id"`
	DishName string `json:"dish_name"`
	Price    int64  `json:"price"`
	Quantity int    `json:"quantity"`
}

// OrdersResponse wraps order listings
type OrdersResponse struct {
	Orders []OrderView `json:"orders"`
}

// MessageResponse carries a confirmation message
type MessageResponse struct {
	Message string `json:"message"`
	ID      int64  `json:"id,omitempty"`
}
