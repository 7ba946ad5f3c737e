package handler

import (
	"encoding/json"
	"net/http"
	"strings"

	"shopcore/internal/model"
	"shopcore/internal/service"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// OrderHandler handles order-related HTTP requests.
type OrderHandler struct {
	service service.OrderService
	logger  zerolog.Logger
}

// NewOrderHandler creates a new order handler.
func NewOrderHandler(service service.OrderService, logger zerolog.Logger) *OrderHandler {
	return &OrderHandler{
		service: service,
		logger:  logger.With().Str("handler", "order").Logger(),
	}
}

// orderID extracts and parses the UUID segment of an order path.
func (h *OrderHandler) orderID(path string) (uuid.UUID, bool) {
	if len(path) <= len("/api/orders/") {
		return uuid.Nil, false
	}
	segment := strings.TrimSuffix(path[len("/api/orders/"):], "/")

	id, err := uuid.Parse(segment)
	if err != nil {
		return uuid.Nil, false
	}
	return id, true
}

// Create handles POST /api/orders requests.
func (h *OrderHandler) Create(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeMethodNotAllowed(w, h.logger)
		return
	}

	var req model.OrderRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeBadRequest(w, "Invalid request body.", h.logger)
		return
	}

	order, err := h.service.Create(r.Context(), &req)
	if err != nil {
		writeFailure(w, err, h.logger)
		return
	}

	writeSuccess(w, http.StatusCreated, envelope{"order": order})
}

// GetAll handles GET /api/orders requests.
func (h *OrderHandler) GetAll(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeMethodNotAllowed(w, h.logger)
		return
	}

	orders, err := h.service.GetAll(r.Context())
	if err != nil {
		writeFailure(w, err, h.logger)
		return
	}

	writeSuccess(w, http.StatusOK, envelope{"orders": orders})
}

// GetByID handles GET /api/orders/{id} requests.
func (h *OrderHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeMethodNotAllowed(w, h.logger)
		return
	}

	id, ok := h.orderID(r.URL.Path)
	if !ok {
		writeBadRequest(w, "Invalid order ID.", h.logger)
		return
	}

	order, err := h.service.GetByID(r.Context(), id)
	if err != nil {
		writeFailure(w, err, h.logger)
		return
	}

	writeSuccess(w, http.StatusOK, envelope{"order": order})
}

// UpdateStatus handles PUT /api/orders/{id} requests.
func (h *OrderHandler) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPut {
		writeMethodNotAllowed(w, h.logger)
		return
	}

	id, ok := h.orderID(r.URL.Path)
	if !ok {
		writeBadRequest(w, "Invalid order ID.", h.logger)
		return
	}

	var req model.UpdateOrderStatusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeBadRequest(w, "Invalid request body.", h.logger)
		return
	}

	order, err := h.service.UpdateStatus(r.Context(), id, req.Status)
	if err != nil {
		writeFailure(w, err, h.logger)
		return
	}

	writeSuccess(w, http.StatusOK, envelope{"order": order})
}

// Delete handles DELETE /api/orders/{id} requests.
func (h *OrderHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodDelete {
		writeMethodNotAllowed(w, h.logger)
		return
	}

	id, ok := h.orderID(r.URL.Path)
	if !ok {
		writeBadRequest(w, "Invalid order ID.", h.logger)
		return
	}

	if err := h.service.Delete(r.Context(), id); err != nil {
		writeFailure(w, err, h.logger)
		return
	}

	writeSuccess(w, http.StatusOK, nil)
}
