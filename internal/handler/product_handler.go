package handler

import (
	"encoding/json"
	"net/http"
	"strings"

	"shopcore/internal/model"
	"shopcore/internal/service"

	"github.com/rs/zerolog"
)

// maxImageUploadBytes caps the size of a product image upload.
const maxImageUploadBytes = 10 << 20

// ProductHandler handles product-related HTTP requests.
type ProductHandler struct {
	service service.ProductService
	logger  zerolog.Logger
}

// NewProductHandler creates a new product handler.
func NewProductHandler(service service.ProductService, logger zerolog.Logger) *ProductHandler {
	return &ProductHandler{
		service: service,
		logger:  logger.With().Str("handler", "product").Logger(),
	}
}

// GetAll handles GET /api/products requests.
func (h *ProductHandler) GetAll(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeMethodNotAllowed(w, h.logger)
		return
	}

	products, err := h.service.GetAll(r.Context())
	if err != nil {
		writeFailure(w, err, h.logger)
		return
	}

	writeSuccess(w, http.StatusOK, envelope{"products": products})
}

// Create handles POST /api/products requests.
func (h *ProductHandler) Create(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeMethodNotAllowed(w, h.logger)
		return
	}

	var req model.CreateProductRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeBadRequest(w, "Invalid request body.", h.logger)
		return
	}

	product, err := h.service.Create(r.Context(), req)
	if err != nil {
		writeFailure(w, err, h.logger)
		return
	}

	writeSuccess(w, http.StatusCreated, envelope{"product": product})
}

// GetByID handles GET /api/products/{id} requests.
func (h *ProductHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeMethodNotAllowed(w, h.logger)
		return
	}

	id, ok := parseID(r.URL.Path, "/api/products/")
	if !ok {
		writeBadRequest(w, "Invalid product ID.", h.logger)
		return
	}

	product, err := h.service.GetByID(r.Context(), id)
	if err != nil {
		writeFailure(w, err, h.logger)
		return
	}

	writeSuccess(w, http.StatusOK, envelope{"product": product})
}

// Update handles PUT /api/products/{id} requests.
func (h *ProductHandler) Update(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPut {
		writeMethodNotAllowed(w, h.logger)
		return
	}

	id, ok := parseID(r.URL.Path, "/api/products/")
	if !ok {
		writeBadRequest(w, "Invalid product ID.", h.logger)
		return
	}

	var patch model.ProductPatch
	if err := json.NewDecoder(r.Body).Decode(&patch); err != nil {
		writeBadRequest(w, "Invalid request body.", h.logger)
		return
	}

	product, err := h.service.Update(r.Context(), id, patch)
	if err != nil {
		writeFailure(w, err, h.logger)
		return
	}

	writeSuccess(w, http.StatusOK, envelope{"product": product})
}

// Delete handles DELETE /api/products/{id} requests.
func (h *ProductHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodDelete {
		writeMethodNotAllowed(w, h.logger)
		return
	}

	id, ok := parseID(r.URL.Path, "/api/products/")
	if !ok {
		writeBadRequest(w, "Invalid product ID.", h.logger)
		return
	}

	if err := h.service.Delete(r.Context(), id); err != nil {
		writeFailure(w, err, h.logger)
		return
	}

	writeSuccess(w, http.StatusOK, nil)
}

// UploadImage handles POST /api/products/{id}/image requests with a
// multipart "image" field.
func (h *ProductHandler) UploadImage(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeMethodNotAllowed(w, h.logger)
		return
	}

	// Expecting path: /api/products/{id}/image
	trimmed := strings.TrimSuffix(r.URL.Path, "/image")
	id, ok := parseID(trimmed, "/api/products/")
	if !ok {
		writeBadRequest(w, "Invalid product ID.", h.logger)
		return
	}

	r.Body = http.MaxBytesReader(w, r.Body, maxImageUploadBytes)

	file, header, err := r.FormFile("image")
	if err != nil {
		writeBadRequest(w, "An image file is required.", h.logger)
		return
	}
	defer file.Close()

	contentType := header.Header.Get("Content-Type")

	product, err := h.service.UploadImage(r.Context(), id, header.Filename, contentType, file)
	if err != nil {
		writeFailure(w, err, h.logger)
		return
	}

	writeSuccess(w, http.StatusOK, envelope{"product": product})
}
