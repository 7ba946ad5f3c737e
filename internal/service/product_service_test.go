package service

import (
	"bytes"
	"context"
	"errors"
	"io"
	"strings"
	"testing"
	"time"

	"shopcore/internal/model"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// MockProductRepository is a mock implementation of ProductRepository.
type MockProductRepository struct {
	mock.Mock
}

func (m *MockProductRepository) GetAll(ctx context.Context) ([]model.Product, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Product), args.Error(1)
}

func (m *MockProductRepository) GetByID(ctx context.Context, id int64) (*model.Product, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Product), args.Error(1)
}

func (m *MockProductRepository) GetByIDs(ctx context.Context, ids []int64) ([]model.Product, error) {
	args := m.Called(ctx, ids)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Product), args.Error(1)
}

func (m *MockProductRepository) Create(ctx context.Context, req model.CreateProductRequest) (*model.Product, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Product), args.Error(1)
}

func (m *MockProductRepository) Update(ctx context.Context, id int64, patch model.ProductPatch) (*model.Product, error) {
	args := m.Called(ctx, id, patch)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Product), args.Error(1)
}

func (m *MockProductRepository) Delete(ctx context.Context, id int64) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

func (m *MockProductRepository) ValidateProductsExist(ctx context.Context, ids []int64) error {
	args := m.Called(ctx, ids)
	return args.Error(0)
}

// MockStore is a mock implementation of storage.Store.
type MockStore struct {
	mock.Mock
}

func (m *MockStore) Save(ctx context.Context, key, contentType string, body io.Reader) (string, error) {
	args := m.Called(ctx, key, contentType, body)
	return args.String(0), args.Error(1)
}

func TestProductService_GetAll(t *testing.T) {
	logger := zerolog.Nop()
	ctx := context.Background()

	testProducts := []model.Product{
		{ID: 2, Name: "Product 2", Price: 20.00, CategoryID: 1, CreatedAt: time.Now()},
		{ID: 1, Name: "Product 1", Price: 10.00, CategoryID: 1, CreatedAt: time.Now().Add(-time.Hour)},
	}

	tests := []struct {
		name        string
		mockReturn  []model.Product
		mockError   error
		expectError bool
	}{
		{
			name:        "Success",
			mockReturn:  testProducts,
			mockError:   nil,
			expectError: false,
		},
		{
			name:        "Empty catalogue",
			mockReturn:  []model.Product{},
			mockError:   nil,
			expectError: false,
		},
		{
			name:        "Repository error",
			mockReturn:  nil,
			mockError:   errors.New("database error"),
			expectError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockRepo := new(MockProductRepository)
			service := NewProductService(mockRepo, nil, logger)

			mockRepo.On("GetAll", ctx).Return(tt.mockReturn, tt.mockError)

			products, err := service.GetAll(ctx)

			if tt.expectError {
				require.Error(t, err)
				assert.Nil(t, products)
			} else {
				require.NoError(t, err)
				assert.Equal(t, tt.mockReturn, products)
			}

			mockRepo.AssertExpectations(t)
		})
	}
}

func TestProductService_GetByID(t *testing.T) {
	logger := zerolog.Nop()
	ctx := context.Background()

	testProduct := &model.Product{
		ID:         1,
		Name:       "Product 1",
		Price:      10.00,
		CategoryID: 1,
		CreatedAt:  time.Now(),
	}

	tests := []struct {
		name        string
		productID   int64
		mockReturn  *model.Product
		mockError   error
		expectError bool
		expectedErr error
	}{
		{
			name:        "Success",
			productID:   1,
			mockReturn:  testProduct,
			mockError:   nil,
			expectError: false,
		},
		{
			name:        "Product not found",
			productID:   999,
			mockReturn:  nil,
			mockError:   nil,
			expectError: true,
			expectedErr: model.ErrProductNotFound,
		},
		{
			name:        "Repository error",
			productID:   1,
			mockReturn:  nil,
			mockError:   errors.New("database error"),
			expectError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockRepo := new(MockProductRepository)
			service := NewProductService(mockRepo, nil, logger)

			mockRepo.On("GetByID", ctx, tt.productID).
				Return(tt.mockReturn, tt.mockError)

			product, err := service.GetByID(ctx, tt.productID)

			if tt.expectError {
				require.Error(t, err)
				assert.Nil(t, product)
				if tt.expectedErr != nil {
					assert.Equal(t, tt.expectedErr, err)
				}
			} else {
				require.NoError(t, err)
				assert.Equal(t, tt.mockReturn, product)
			}

			mockRepo.AssertExpectations(t)
		})
	}
}

func TestProductService_Create(t *testing.T) {
	logger := zerolog.Nop()
	ctx := context.Background()

	req := model.CreateProductRequest{
		Name:        "Mug",
		Description: "Ceramic mug",
		Price:       9.99,
		CategoryID:  3,
		ImageURL:    "http://x/mug.png",
	}

	t.Run("Success", func(t *testing.T) {
		mockRepo := new(MockProductRepository)
		service := NewProductService(mockRepo, nil, logger)

		created := &model.Product{
			ID:          1,
			Name:        req.Name,
			Description: req.Description,
			Price:       req.Price,
			CategoryID:  req.CategoryID,
			ImageURL:    req.ImageURL,
			CreatedAt:   time.Now(),
			UpdatedAt:   time.Now(),
		}
		mockRepo.On("Create", ctx, req).Return(created, nil)

		product, err := service.Create(ctx, req)

		require.NoError(t, err)
		assert.Equal(t, created, product)
		mockRepo.AssertExpectations(t)
	})

	// Creation is not validated in the service. Whatever the caller sends
	// goes to the store, and the store's rejection comes back as-is.
	t.Run("Invalid request reaches the repository", func(t *testing.T) {
		mockRepo := new(MockProductRepository)
		service := NewProductService(mockRepo, nil, logger)

		badReq := model.CreateProductRequest{Name: "Freebie", Price: 0}
		storeErr := errors.New("violates check constraint \"products_price_check\"")
		mockRepo.On("Create", ctx, badReq).Return(nil, storeErr)

		product, err := service.Create(ctx, badReq)

		require.Error(t, err)
		assert.Equal(t, storeErr, err)
		assert.Nil(t, product)
		mockRepo.AssertExpectations(t)
	})
}

func TestProductService_Update(t *testing.T) {
	logger := zerolog.Nop()
	ctx := context.Background()

	newName := "Renamed"
	zeroPrice := 0.0
	negativePrice := -1.0
	validPrice := 19.99

	tests := []struct {
		name        string
		patch       model.ProductPatch
		mockReturn  *model.Product
		mockError   error
		expectCall  bool
		expectedErr error
	}{
		{
			name:        "Empty patch rejected before any query",
			patch:       model.ProductPatch{},
			expectCall:  false,
			expectedErr: model.ErrEmptyUpdate,
		},
		{
			name:        "Zero price rejected before any query",
			patch:       model.ProductPatch{Price: &zeroPrice},
			expectCall:  false,
			expectedErr: model.ErrInvalidPrice,
		},
		{
			name:        "Negative price rejected before any query",
			patch:       model.ProductPatch{Name: &newName, Price: &negativePrice},
			expectCall:  false,
			expectedErr: model.ErrInvalidPrice,
		},
		{
			name:       "Single field update",
			patch:      model.ProductPatch{Name: &newName},
			mockReturn: &model.Product{ID: 1, Name: newName, Price: 10.00},
			expectCall: true,
		},
		{
			name:       "Valid price update",
			patch:      model.ProductPatch{Price: &validPrice},
			mockReturn: &model.Product{ID: 1, Name: "Product 1", Price: validPrice},
			expectCall: true,
		},
		{
			name:        "Product not found",
			patch:       model.ProductPatch{Name: &newName},
			mockReturn:  nil,
			expectCall:  true,
			expectedErr: model.ErrProductNotFound,
		},
		{
			name:       "Repository error",
			patch:      model.ProductPatch{Name: &newName},
			mockReturn: nil,
			mockError:  errors.New("database error"),
			expectCall: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockRepo := new(MockProductRepository)
			service := NewProductService(mockRepo, nil, logger)

			if tt.expectCall {
				mockRepo.On("Update", ctx, int64(1), tt.patch).
					Return(tt.mockReturn, tt.mockError)
			}

			product, err := service.Update(ctx, 1, tt.patch)

			if tt.expectedErr != nil {
				require.Error(t, err)
				assert.Equal(t, tt.expectedErr, err)
				assert.Nil(t, product)
			} else if tt.mockError != nil {
				require.Error(t, err)
				assert.Nil(t, product)
			} else {
				require.NoError(t, err)
				assert.Equal(t, tt.mockReturn, product)
			}

			if !tt.expectCall {
				mockRepo.AssertNotCalled(t, "Update")
			}
			mockRepo.AssertExpectations(t)
		})
	}
}

func TestProductService_Delete(t *testing.T) {
	logger := zerolog.Nop()
	ctx := context.Background()

	tests := []struct {
		name        string
		mockDeleted bool
		mockError   error
		expectedErr error
	}{
		{
			name:        "Success",
			mockDeleted: true,
		},
		{
			name:        "Product not found",
			mockDeleted: false,
			expectedErr: model.ErrProductNotFound,
		},
		{
			name:      "Repository error",
			mockError: errors.New("database error"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockRepo := new(MockProductRepository)
			service := NewProductService(mockRepo, nil, logger)

			mockRepo.On("Delete", ctx, int64(1)).Return(tt.mockDeleted, tt.mockError)

			err := service.Delete(ctx, 1)

			switch {
			case tt.expectedErr != nil:
				require.Error(t, err)
				assert.Equal(t, tt.expectedErr, err)
			case tt.mockError != nil:
				require.Error(t, err)
			default:
				require.NoError(t, err)
			}

			mockRepo.AssertExpectations(t)
		})
	}
}

func TestProductService_UploadImage(t *testing.T) {
	logger := zerolog.Nop()
	ctx := context.Background()

	testProduct := &model.Product{ID: 7, Name: "Mug", Price: 9.99}

	t.Run("Success", func(t *testing.T) {
		mockRepo := new(MockProductRepository)
		mockStore := new(MockStore)
		service := NewProductService(mockRepo, mockStore, logger)

		body := bytes.NewReader([]byte("fake image bytes"))
		url := "/uploads/7-generated.png"

		mockRepo.On("GetByID", ctx, int64(7)).Return(testProduct, nil)
		mockStore.On("Save", ctx, mock.MatchedBy(func(key string) bool {
			return strings.HasPrefix(key, "7-") && strings.HasSuffix(key, ".png")
		}), "image/png", body).Return(url, nil)
		mockRepo.On("Update", ctx, int64(7), mock.MatchedBy(func(patch model.ProductPatch) bool {
			return patch.ImageURL != nil && *patch.ImageURL == url
		})).Return(&model.Product{ID: 7, Name: "Mug", Price: 9.99, ImageURL: url}, nil)

		updated, err := service.UploadImage(ctx, 7, "mug.png", "image/png", body)

		require.NoError(t, err)
		require.NotNil(t, updated)
		assert.Equal(t, url, updated.ImageURL)
		mockRepo.AssertExpectations(t)
		mockStore.AssertExpectations(t)
	})

	t.Run("No store configured", func(t *testing.T) {
		mockRepo := new(MockProductRepository)
		service := NewProductService(mockRepo, nil, logger)

		updated, err := service.UploadImage(ctx, 7, "mug.png", "image/png", bytes.NewReader(nil))

		require.Error(t, err)
		assert.Equal(t, model.ErrNoImageStore, err)
		assert.Nil(t, updated)
		mockRepo.AssertNotCalled(t, "GetByID")
	})

	t.Run("Product not found", func(t *testing.T) {
		mockRepo := new(MockProductRepository)
		mockStore := new(MockStore)
		service := NewProductService(mockRepo, mockStore, logger)

		mockRepo.On("GetByID", ctx, int64(999)).Return(nil, nil)

		updated, err := service.UploadImage(ctx, 999, "mug.png", "image/png", bytes.NewReader(nil))

		require.Error(t, err)
		assert.Equal(t, model.ErrProductNotFound, err)
		assert.Nil(t, updated)
		mockStore.AssertNotCalled(t, "Save")
	})

	t.Run("Store failure", func(t *testing.T) {
		mockRepo := new(MockProductRepository)
		mockStore := new(MockStore)
		service := NewProductService(mockRepo, mockStore, logger)

		body := bytes.NewReader([]byte("fake image bytes"))

		mockRepo.On("GetByID", ctx, int64(7)).Return(testProduct, nil)
		mockStore.On("Save", ctx, mock.Anything, "image/png", body).
			Return("", errors.New("disk full"))

		updated, err := service.UploadImage(ctx, 7, "mug.png", "image/png", body)

		require.Error(t, err)
		assert.Nil(t, updated)
		mockRepo.AssertNotCalled(t, "Update")
	})
}
