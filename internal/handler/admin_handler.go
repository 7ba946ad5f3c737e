package handler

import (
	"encoding/json"
	"net/http"

	"shopcore/internal/model"
	"shopcore/internal/service"

	"github.com/rs/zerolog"
)

// AdminHandler handles category management and dashboard requests.
type AdminHandler struct {
	service service.AdminService
	logger  zerolog.Logger
}

// NewAdminHandler creates a new admin handler.
func NewAdminHandler(service service.AdminService, logger zerolog.Logger) *AdminHandler {
	return &AdminHandler{
		service: service,
		logger:  logger.With().Str("handler", "admin").Logger(),
	}
}

// GetCategories handles GET /api/admin/categories requests.
func (h *AdminHandler) GetCategories(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeMethodNotAllowed(w, h.logger)
		return
	}

	categories, err := h.service.GetCategories(r.Context())
	if err != nil {
		writeFailure(w, err, h.logger)
		return
	}

	writeSuccess(w, http.StatusOK, envelope{"categories": categories})
}

// CreateCategory handles POST /api/admin/categories requests.
func (h *AdminHandler) CreateCategory(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeMethodNotAllowed(w, h.logger)
		return
	}

	var req model.CategoryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeBadRequest(w, "Invalid request body.", h.logger)
		return
	}

	category, err := h.service.CreateCategory(r.Context(), req.Name)
	if err != nil {
		writeFailure(w, err, h.logger)
		return
	}

	writeSuccess(w, http.StatusCreated, envelope{"category": category})
}

// GetCategory handles GET /api/admin/categories/{id} requests.
func (h *AdminHandler) GetCategory(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeMethodNotAllowed(w, h.logger)
		return
	}

	id, ok := parseID(r.URL.Path, "/api/admin/categories/")
	if !ok {
		writeBadRequest(w, "Invalid category ID.", h.logger)
		return
	}

	category, err := h.service.GetCategory(r.Context(), id)
	if err != nil {
		writeFailure(w, err, h.logger)
		return
	}

	writeSuccess(w, http.StatusOK, envelope{"category": category})
}

// RenameCategory handles PUT /api/admin/categories/{id} requests.
func (h *AdminHandler) RenameCategory(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPut {
		writeMethodNotAllowed(w, h.logger)
		return
	}

	id, ok := parseID(r.URL.Path, "/api/admin/categories/")
	if !ok {
		writeBadRequest(w, "Invalid category ID.", h.logger)
		return
	}

	var req model.CategoryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeBadRequest(w, "Invalid request body.", h.logger)
		return
	}

	category, err := h.service.RenameCategory(r.Context(), id, req.Name)
	if err != nil {
		writeFailure(w, err, h.logger)
		return
	}

	writeSuccess(w, http.StatusOK, envelope{"category": category})
}

// DeleteCategory handles DELETE /api/admin/categories/{id} requests.
func (h *AdminHandler) DeleteCategory(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodDelete {
		writeMethodNotAllowed(w, h.logger)
		return
	}

	id, ok := parseID(r.URL.Path, "/api/admin/categories/")
	if !ok {
		writeBadRequest(w, "Invalid category ID.", h.logger)
		return
	}

	if err := h.service.DeleteCategory(r.Context(), id); err != nil {
		writeFailure(w, err, h.logger)
		return
	}

	writeSuccess(w, http.StatusOK, nil)
}

// GetStats handles GET /api/admin/stats requests.
func (h *AdminHandler) GetStats(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeMethodNotAllowed(w, h.logger)
		return
	}

	stats, err := h.service.GetStats(r.Context())
	if err != nil {
		writeFailure(w, err, h.logger)
		return
	}

	writeSuccess(w, http.StatusOK, envelope{"stats": stats})
}
