package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/Lixing-Zhang/restaurant-backend/internal/models"
	"github.com/Lixing-Zhang/restaurant-backend/internal/repository"
	"github.com/Lixing-Zhang/restaurant-backend/internal/service"
)

// MenuHandler handles menu-related HTTP requests
type MenuHandler struct {
	service *service.MenuService
	logger  *slog.Logger
}

// NewMenuHandler creates a new menu handler
func NewMenuHandler(service *service.MenuService, logger *slog.Logger) *MenuHandler {
	return &MenuHandler{
		service: service,
		logger:  logger,
	}
}

// ListMenuItems handles GET /menu_items
func (h *MenuHandler) ListMenuItems(w http.ResponseWriter, r *http.Request) {
	items, err := h.service.ListMenuItems(r.Context())
	if err != nil {
		h.logger.Error("failed to list menu items", "error", err)
		WriteError(w, http.StatusInternalServerError, "Internal server error", h.logger)
		return
	}
	if items == nil {
		items = []models.MenuItem{}
	}

	WriteJSON(w, http.StatusOK, models.MenuItemsResponse{MenuItems: items}, h.logger)
}

// GetMenuItem handles GET /menu_items/{itemId}
func (h *MenuHandler) GetMenuItem(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(r, "itemId")
	if !ok {
		WriteError(w, http.StatusBadRequest, "Invalid ID supplied", h.logger)
		return
	}

	item, err := h.service.GetMenuItem(r.Context(), id)
	if err != nil {
		h.writeServiceError(w, err, "failed to get menu item", id)
		return
	}

	WriteJSON(w, http.StatusOK, item, h.logger)
}

// AddMenuItem handles POST /menu_items
func (h *MenuHandler) AddMenuItem(w http.ResponseWriter, r *http.Request) {
	var input models.MenuItemInput
	if err := decodeJSON(r, &input); err != nil {
		h.logger.Warn("failed to decode menu item", "error", err)
		WriteError(w, http.StatusBadRequest, "Invalid request body", h.logger)
		return
	}

	item, err := h.service.AddMenuItem(r.Context(), input)
	if err != nil {
		h.writeServiceError(w, err, "failed to add menu item", 0)
		return
	}

	h.logger.Info("menu item added", "item_id", item.ID)
	WriteJSON(w, http.StatusCreated, models.MessageResponse{
		Message: "Menu item added successfully",
		ID:      item.ID,
	}, h.logger)
}

// UpdateMenuItem handles PUT /menu_items/{itemId}
func (h *MenuHandler) UpdateMenuItem(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(r, "itemId")
	if !ok {
		WriteError(w, http.StatusBadRequest, "Invalid ID supplied", h.logger)
		return
	}

	var input models.MenuItemInput
	if err := decodeJSON(r, &input); err != nil {
		h.logger.Warn("failed to decode menu item", "item_id", id, "error", err)
		WriteError(w, http.StatusBadRequest, "Invalid request body", h.logger)
		return
	}

	if err := h.service.UpdateMenuItem(r.Context(), id, input); err != nil {
		h.writeServiceError(w, err, "failed to update menu item", id)
		return
	}

	WriteJSON(w, http.StatusOK, models.MessageResponse{Message: "Menu item updated successfully"}, h.logger)
}

// DeleteMenuItem handles DELETE /menu_items/{itemId}
func (h *MenuHandler) DeleteMenuItem(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(r, "itemId")
	if !ok {
		WriteError(w, http.StatusBadRequest, "Invalid ID supplied", h.logger)
		return
	}

	if err := h.service.DeleteMenuItem(r.Context(), id); err != nil {
		h.writeServiceError(w, err, "failed to delete menu item", id)
		return
	}

	h.logger.Info("menu item deleted", "item_id", id)
	WriteJSON(w, http.StatusOK, models.MessageResponse{Message: "Menu item deleted successfully"}, h.logger)
}

func (h *MenuHandler) writeServiceError(w http.ResponseWriter, err error, msg string, id int64) {
	switch {
	case errors.Is(err, repository.ErrMenuItemNotFound):
		WriteError(w, http.StatusNotFound, "Menu item not found", h.logger)
	case errors.Is(err, service.ErrInvalidMenuItem):
		WriteError(w, http.StatusBadRequest, err.Error(), h.logger)
	default:
		h.logger.Error(msg, "item_id", id, "error", err)
		WriteError(w, http.StatusInternalServerError, "Internal server error", h.logger)
	}
}
