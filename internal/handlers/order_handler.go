package handlers

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/Lixing-Zhang/restaurant-backend/internal/models"
	"github.com/Lixing-Zhang/restaurant-backend/internal/repository"
	"github.com/Lixing-Zhang/restaurant-backend/internal/service"
)

const (
	rejectedOrderMessage = "Invalid order items or item availability."
	invalidFilterMessage = "Invalid status filter (must be all, received, preparing, ready, or delivered)"
)

// OrderHandler handles order-related HTTP requests
type OrderHandler struct {
	orderService *service.OrderService
	log          *slog.Logger
}

// NewOrderHandler creates a new order handler
func NewOrderHandler(orderService *service.OrderService, log *slog.Logger) *OrderHandler {
	return &OrderHandler{
		orderService: orderService,
		log:          log,
	}
}

// ListOrders handles GET /orders
func (h *OrderHandler) ListOrders(w http.ResponseWriter, r *http.Request) {
	orders, err := h.orderService.ListOrders(r.Context())
	if err != nil {
		h.log.Error("failed to list orders", "error", err)
		WriteError(w, http.StatusInternalServerError, "Internal server error", h.log)
		return
	}

	WriteJSON(w, http.StatusOK, models.OrdersResponse{Orders: orders}, h.log)
}

// PlaceOrder handles POST /orders
func (h *OrderHandler) PlaceOrder(w http.ResponseWriter, r *http.Request) {
	var req models.PlaceOrderRequest
	if err := decodeJSON(r, &req); err != nil {
		h.log.Warn("failed to decode order request", "error", err)
		WriteError(w, http.StatusBadRequest, "Invalid request body", h.log)
		return
	}

	confirmation, err := h.orderService.PlaceOrder(r.Context(), req.CustomerName, req.Items)
	if err != nil {
		if errors.Is(err, service.ErrNoValidItems) {
			h.log.Info("order rejected", "items_count", len(req.Items))
			WriteError(w, http.StatusBadRequest, rejectedOrderMessage, h.log)
			return
		}
		h.log.Error("failed to place order", "error", err)
		WriteError(w, http.StatusInternalServerError, "Internal server error", h.log)
		return
	}

	h.log.Info("order placed", "order_id", confirmation.OrderID, "total_amount", confirmation.TotalAmount)
	WriteJSON(w, http.StatusCreated, confirmation, h.log)
}

// UpdateOrder handles PUT /orders/{orderId}
func (h *OrderHandler) UpdateOrder(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(r, "orderId")
	if !ok {
		WriteError(w, http.StatusBadRequest, "Invalid ID supplied", h.log)
		return
	}

	var req models.UpdateOrderRequest
	if err := decodeJSON(r, &req); err != nil {
		h.log.Warn("failed to decode order update", "order_id", id, "error", err)
		WriteError(w, http.StatusBadRequest, "Invalid request body", h.log)
		return
	}

	if err := h.orderService.UpdateStatus(r.Context(), id, req.Status); err != nil {
		if errors.Is(err, repository.ErrOrderNotFound) {
			WriteError(w, http.StatusNotFound, fmt.Sprintf("Order with ID %d not found", id), h.log)
			return
		}
		h.log.Error("failed to update order", "order_id", id, "error", err)
		WriteError(w, http.StatusInternalServerError, "Internal server error", h.log)
		return
	}

	WriteJSON(w, http.StatusOK, models.MessageResponse{
		Message: fmt.Sprintf("Order with ID %d updated successfully", id),
	}, h.log)
}

// ReviewOrders handles GET /orders/review?status=
func (h *OrderHandler) ReviewOrders(w http.ResponseWriter, r *http.Request) {
	status := service.DefaultReviewFilter
	if query := r.URL.Query(); query.Has("status") {
		status = query.Get("status")
	}

	orders, err := h.orderService.ReviewOrders(r.Context(), status)
	if err != nil {
		if errors.Is(err, service.ErrInvalidFilter) {
			WriteError(w, http.StatusBadRequest, invalidFilterMessage, h.log)
			return
		}
		h.log.Error("failed to review orders", "status", status, "error", err)
		WriteError(w, http.StatusInternalServerError, "Internal server error", h.log)
		return
	}

	WriteJSON(w, http.StatusOK, models.OrdersResponse{Orders: orders}, h.log)
}
