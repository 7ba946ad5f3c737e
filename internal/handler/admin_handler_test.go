package handler

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"shopcore/internal/model"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// MockAdminService is a mock implementation of AdminService.
type MockAdminService struct {
	mock.Mock
}

func (m *MockAdminService) CreateCategory(ctx context.Context, name string) (*model.Category, error) {
	args := m.Called(ctx, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Category), args.Error(1)
}

func (m *MockAdminService) GetCategories(ctx context.Context) ([]model.Category, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Category), args.Error(1)
}

func (m *MockAdminService) GetCategory(ctx context.Context, id int64) (*model.Category, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Category), args.Error(1)
}

func (m *MockAdminService) RenameCategory(ctx context.Context, id int64, name string) (*model.Category, error) {
	args := m.Called(ctx, id, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Category), args.Error(1)
}

func (m *MockAdminService) DeleteCategory(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockAdminService) GetStats(ctx context.Context) (*model.Stats, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Stats), args.Error(1)
}

func TestAdminHandler_CreateCategory(t *testing.T) {
	logger := zerolog.Nop()

	t.Run("Success", func(t *testing.T) {
		mockService := new(MockAdminService)
		handler := NewAdminHandler(mockService, logger)

		category := &model.Category{ID: 1, Name: "Kitchen", CreatedAt: time.Now(), UpdatedAt: time.Now()}
		mockService.On("CreateCategory", mock.Anything, "Kitchen").Return(category, nil)

		req := httptest.NewRequest(http.MethodPost, "/api/admin/categories", strings.NewReader(`{"name":"Kitchen"}`))
		w := httptest.NewRecorder()

		handler.CreateCategory(w, req)

		assert.Equal(t, http.StatusCreated, w.Code)

		body := decodeEnvelope(t, w)
		assert.Equal(t, true, body["success"])

		got, ok := body["category"].(map[string]any)
		require.True(t, ok)
		assert.Equal(t, "Kitchen", got["name"])

		mockService.AssertExpectations(t)
	})

	t.Run("Empty name", func(t *testing.T) {
		mockService := new(MockAdminService)
		handler := NewAdminHandler(mockService, logger)

		mockService.On("CreateCategory", mock.Anything, "   ").Return(nil, model.ErrCategoryNameEmpty)

		req := httptest.NewRequest(http.MethodPost, "/api/admin/categories", strings.NewReader(`{"name":"   "}`))
		w := httptest.NewRecorder()

		handler.CreateCategory(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)

		body := decodeEnvelope(t, w)
		assert.Equal(t, "Category name is required.", body["error"])
	})

	t.Run("Invalid request body", func(t *testing.T) {
		mockService := new(MockAdminService)
		handler := NewAdminHandler(mockService, logger)

		req := httptest.NewRequest(http.MethodPost, "/api/admin/categories", strings.NewReader("{not json"))
		w := httptest.NewRecorder()

		handler.CreateCategory(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		mockService.AssertNotCalled(t, "CreateCategory")
	})
}

func TestAdminHandler_GetCategories(t *testing.T) {
	logger := zerolog.Nop()

	t.Run("Success", func(t *testing.T) {
		mockService := new(MockAdminService)
		handler := NewAdminHandler(mockService, logger)

		categories := []model.Category{
			{ID: 2, Name: "Electronics"},
			{ID: 1, Name: "Kitchen"},
		}
		mockService.On("GetCategories", mock.Anything).Return(categories, nil)

		req := httptest.NewRequest(http.MethodGet, "/api/admin/categories", nil)
		w := httptest.NewRecorder()

		handler.GetCategories(w, req)

		assert.Equal(t, http.StatusOK, w.Code)

		body := decodeEnvelope(t, w)
		assert.Equal(t, true, body["success"])
		assert.Len(t, body["categories"], 2)
	})

	t.Run("Service error", func(t *testing.T) {
		mockService := new(MockAdminService)
		handler := NewAdminHandler(mockService, logger)

		mockService.On("GetCategories", mock.Anything).Return(nil, errors.New("database error"))

		req := httptest.NewRequest(http.MethodGet, "/api/admin/categories", nil)
		w := httptest.NewRecorder()

		handler.GetCategories(w, req)

		assert.Equal(t, http.StatusInternalServerError, w.Code)

		body := decodeEnvelope(t, w)
		assert.Equal(t, false, body["success"])
	})
}

func TestAdminHandler_GetCategory(t *testing.T) {
	logger := zerolog.Nop()

	tests := []struct {
		name           string
		path           string
		setupMock      func(m *MockAdminService)
		expectedStatus int
		expectedError  string
	}{
		{
			name: "Success",
			path: "/api/admin/categories/1",
			setupMock: func(m *MockAdminService) {
				m.On("GetCategory", mock.Anything, int64(1)).
					Return(&model.Category{ID: 1, Name: "Kitchen"}, nil)
			},
			expectedStatus: http.StatusOK,
		},
		{
			name: "Category not found",
			path: "/api/admin/categories/999",
			setupMock: func(m *MockAdminService) {
				m.On("GetCategory", mock.Anything, int64(999)).
					Return(nil, model.ErrCategoryNotFound)
			},
			expectedStatus: http.StatusNotFound,
			expectedError:  "Category not found.",
		},
		{
			name:           "Invalid ID",
			path:           "/api/admin/categories/abc",
			setupMock:      func(m *MockAdminService) {},
			expectedStatus: http.StatusBadRequest,
			expectedError:  "Invalid category ID.",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockService := new(MockAdminService)
			tt.setupMock(mockService)
			handler := NewAdminHandler(mockService, logger)

			req := httptest.NewRequest(http.MethodGet, tt.path, nil)
			w := httptest.NewRecorder()

			handler.GetCategory(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)

			if tt.expectedError != "" {
				body := decodeEnvelope(t, w)
				assert.Equal(t, tt.expectedError, body["error"])
			}

			mockService.AssertExpectations(t)
		})
	}
}

func TestAdminHandler_RenameCategory(t *testing.T) {
	logger := zerolog.Nop()

	t.Run("Success", func(t *testing.T) {
		mockService := new(MockAdminService)
		handler := NewAdminHandler(mockService, logger)

		category := &model.Category{ID: 1, Name: "Home & Kitchen"}
		mockService.On("RenameCategory", mock.Anything, int64(1), "Home & Kitchen").Return(category, nil)

		req := httptest.NewRequest(http.MethodPut, "/api/admin/categories/1", strings.NewReader(`{"name":"Home & Kitchen"}`))
		w := httptest.NewRecorder()

		handler.RenameCategory(w, req)

		assert.Equal(t, http.StatusOK, w.Code)

		body := decodeEnvelope(t, w)
		got, ok := body["category"].(map[string]any)
		require.True(t, ok)
		assert.Equal(t, "Home & Kitchen", got["name"])
	})

	t.Run("Category not found", func(t *testing.T) {
		mockService := new(MockAdminService)
		handler := NewAdminHandler(mockService, logger)

		mockService.On("RenameCategory", mock.Anything, int64(999), "Kitchen").
			Return(nil, model.ErrCategoryNotFound)

		req := httptest.NewRequest(http.MethodPut, "/api/admin/categories/999", strings.NewReader(`{"name":"Kitchen"}`))
		w := httptest.NewRecorder()

		handler.RenameCategory(w, req)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("Invalid ID", func(t *testing.T) {
		mockService := new(MockAdminService)
		handler := NewAdminHandler(mockService, logger)

		req := httptest.NewRequest(http.MethodPut, "/api/admin/categories/abc", strings.NewReader(`{"name":"Kitchen"}`))
		w := httptest.NewRecorder()

		handler.RenameCategory(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		mockService.AssertNotCalled(t, "RenameCategory")
	})
}

func TestAdminHandler_DeleteCategory(t *testing.T) {
	logger := zerolog.Nop()

	t.Run("Success", func(t *testing.T) {
		mockService := new(MockAdminService)
		handler := NewAdminHandler(mockService, logger)

		mockService.On("DeleteCategory", mock.Anything, int64(1)).Return(nil)

		req := httptest.NewRequest(http.MethodDelete, "/api/admin/categories/1", nil)
		w := httptest.NewRecorder()

		handler.DeleteCategory(w, req)

		assert.Equal(t, http.StatusOK, w.Code)

		body := decodeEnvelope(t, w)
		assert.Equal(t, map[string]any{"success": true}, body)
	})

	t.Run("Category not found", func(t *testing.T) {
		mockService := new(MockAdminService)
		handler := NewAdminHandler(mockService, logger)

		mockService.On("DeleteCategory", mock.Anything, int64(999)).Return(model.ErrCategoryNotFound)

		req := httptest.NewRequest(http.MethodDelete, "/api/admin/categories/999", nil)
		w := httptest.NewRecorder()

		handler.DeleteCategory(w, req)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("Category still referenced", func(t *testing.T) {
		mockService := new(MockAdminService)
		handler := NewAdminHandler(mockService, logger)

		storeErr := errors.New(`update or delete on table "categories" violates foreign key constraint "products_category_id_fkey"`)
		mockService.On("DeleteCategory", mock.Anything, int64(1)).Return(storeErr)

		req := httptest.NewRequest(http.MethodDelete, "/api/admin/categories/1", nil)
		w := httptest.NewRecorder()

		handler.DeleteCategory(w, req)

		assert.Equal(t, http.StatusInternalServerError, w.Code)

		body := decodeEnvelope(t, w)
		assert.Equal(t, false, body["success"])
		assert.Contains(t, body["error"], "products_category_id_fkey")
	})
}

func TestAdminHandler_GetStats(t *testing.T) {
	logger := zerolog.Nop()

	t.Run("Success", func(t *testing.T) {
		mockService := new(MockAdminService)
		handler := NewAdminHandler(mockService, logger)

		stats := &model.Stats{Products: 12, Users: 4, Orders: 7, Categories: 3}
		mockService.On("GetStats", mock.Anything).Return(stats, nil)

		req := httptest.NewRequest(http.MethodGet, "/api/admin/stats", nil)
		w := httptest.NewRecorder()

		handler.GetStats(w, req)

		assert.Equal(t, http.StatusOK, w.Code)

		body := decodeEnvelope(t, w)
		assert.Equal(t, true, body["success"])

		got, ok := body["stats"].(map[string]any)
		require.True(t, ok)
		assert.Equal(t, float64(12), got["products"])
		assert.Equal(t, float64(7), got["orders"])
	})

	t.Run("Method not allowed", func(t *testing.T) {
		mockService := new(MockAdminService)
		handler := NewAdminHandler(mockService, logger)

		req := httptest.NewRequest(http.MethodPost, "/api/admin/stats", nil)
		w := httptest.NewRecorder()

		handler.GetStats(w, req)

		assert.Equal(t, http.StatusMethodNotAllowed, w.Code)
		mockService.AssertNotCalled(t, "GetStats")
	})
}
