package handler

import (
	"encoding/json"
	"net/http"

	"shopcore/internal/model"
	"shopcore/internal/service"

	"github.com/rs/zerolog"
)

// CartHandler handles cart-related HTTP requests.
type CartHandler struct {
	service service.CartService
	logger  zerolog.Logger
}

// NewCartHandler creates a new cart handler.
func NewCartHandler(service service.CartService, logger zerolog.Logger) *CartHandler {
	return &CartHandler{
		service: service,
		logger:  logger.With().Str("handler", "cart").Logger(),
	}
}

// Add handles POST /api/cart requests.
func (h *CartHandler) Add(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeMethodNotAllowed(w, h.logger)
		return
	}

	var req model.AddCartItemRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeBadRequest(w, "Invalid request body.", h.logger)
		return
	}

	item, err := h.service.Add(r.Context(), req)
	if err != nil {
		writeFailure(w, err, h.logger)
		return
	}

	writeSuccess(w, http.StatusCreated, envelope{"item": item})
}

// GetByUser handles GET /api/cart/{userID} requests.
func (h *CartHandler) GetByUser(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeMethodNotAllowed(w, h.logger)
		return
	}

	userID, ok := parseID(r.URL.Path, "/api/cart/")
	if !ok {
		writeBadRequest(w, "Invalid user ID.", h.logger)
		return
	}

	items, err := h.service.GetByUser(r.Context(), userID)
	if err != nil {
		writeFailure(w, err, h.logger)
		return
	}

	writeSuccess(w, http.StatusOK, envelope{"items": items})
}

// UpdateQuantity handles PUT /api/cart/items/{id} requests.
func (h *CartHandler) UpdateQuantity(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPut {
		writeMethodNotAllowed(w, h.logger)
		return
	}

	id, ok := parseID(r.URL.Path, "/api/cart/items/")
	if !ok {
		writeBadRequest(w, "Invalid cart item ID.", h.logger)
		return
	}

	var req model.UpdateCartItemRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeBadRequest(w, "Invalid request body.", h.logger)
		return
	}

	item, err := h.service.UpdateQuantity(r.Context(), id, req.Quantity)
	if err != nil {
		writeFailure(w, err, h.logger)
		return
	}

	writeSuccess(w, http.StatusOK, envelope{"item": item})
}

// Remove handles DELETE /api/cart/items/{id} requests.
func (h *CartHandler) Remove(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodDelete {
		writeMethodNotAllowed(w, h.logger)
		return
	}

	id, ok := parseID(r.URL.Path, "/api/cart/items/")
	if !ok {
		writeBadRequest(w, "Invalid cart item ID.", h.logger)
		return
	}

	if err := h.service.Remove(r.Context(), id); err != nil {
		writeFailure(w, err, h.logger)
		return
	}

	writeSuccess(w, http.StatusOK, nil)
}

// Clear handles DELETE /api/cart/{userID} requests.
func (h *CartHandler) Clear(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodDelete {
		writeMethodNotAllowed(w, h.logger)
		return
	}

	userID, ok := parseID(r.URL.Path, "/api/cart/")
	if !ok {
		writeBadRequest(w, "Invalid user ID.", h.logger)
		return
	}

	removed, err := h.service.Clear(r.Context(), userID)
	if err != nil {
		writeFailure(w, err, h.logger)
		return
	}

	writeSuccess(w, http.StatusOK, envelope{"removed": removed})
}
