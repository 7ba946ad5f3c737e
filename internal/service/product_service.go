package service

import (
	"context"
	"fmt"
	"io"
	"path/filepath"

	"shopcore/internal/model"
	"shopcore/internal/repository"
	"shopcore/internal/storage"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// productService implements ProductService.
type productService struct {
	productRepo repository.ProductRepository
	store       storage.Store
	logger      zerolog.Logger
}

// NewProductService creates a new product service. store may be nil, in which
// case image uploads are rejected.
func NewProductService(productRepo repository.ProductRepository, store storage.Store, logger zerolog.Logger) ProductService {
	return &productService{
		productRepo: productRepo,
		store:       store,
		logger:      logger.With().Str("service", "product").Logger(),
	}
}

// GetAll retrieves all products, newest first.
func (s *productService) GetAll(ctx context.Context) ([]model.Product, error) {
	products, err := s.productRepo.GetAll(ctx)
	if err != nil {
		s.logger.Error().Err(err).Msg("failed to get all products")
		return nil, fmt.Errorf("failed to get products: %w", err)
	}

	s.logger.Debug().Int("count", len(products)).Msg("retrieved products")

	return products, nil
}

// GetByID retrieves a single product by ID.
func (s *productService) GetByID(ctx context.Context, id int64) (*model.Product, error) {
	product, err := s.productRepo.GetByID(ctx, id)
	if err != nil {
		s.logger.Error().Err(err).Int64("product_id", id).Msg("failed to get product by ID")
		return nil, fmt.Errorf("failed to get product: %w", err)
	}

	if product == nil {
		s.logger.Debug().Int64("product_id", id).Msg("product not found")
		return nil, model.ErrProductNotFound
	}

	return product, nil
}

// Create stores a new product. There is no application-level validation here;
// the store's constraints decide what is acceptable and their failures
// surface to the caller.
func (s *productService) Create(ctx context.Context, req model.CreateProductRequest) (*model.Product, error) {
	product, err := s.productRepo.Create(ctx, req)
	if err != nil {
		s.logger.Error().Err(err).Str("name", req.Name).Msg("failed to create product")
		return nil, err
	}

	return product, nil
}

// Update applies a partial update. The patch is validated before any query
// runs: it must carry at least one field, and a supplied price must be
// strictly positive.
func (s *productService) Update(ctx context.Context, id int64, patch model.ProductPatch) (*model.Product, error) {
	if patch.IsEmpty() {
		s.logger.Warn().Int64("product_id", id).Msg("empty product patch")
		return nil, model.ErrEmptyUpdate
	}

	if patch.Price != nil && *patch.Price <= 0 {
		s.logger.Warn().
			Int64("product_id", id).
			Float64("price", *patch.Price).
			Msg("rejected non-positive price")
		return nil, model.ErrInvalidPrice
	}

	product, err := s.productRepo.Update(ctx, id, patch)
	if err != nil {
		s.logger.Error().Err(err).Int64("product_id", id).Msg("failed to update product")
		return nil, err
	}

	if product == nil {
		s.logger.Debug().Int64("product_id", id).Msg("product not found for update")
		return nil, model.ErrProductNotFound
	}

	return product, nil
}

// Delete removes a product.
func (s *productService) Delete(ctx context.Context, id int64) error {
	deleted, err := s.productRepo.Delete(ctx, id)
	if err != nil {
		s.logger.Error().Err(err).Int64("product_id", id).Msg("failed to delete product")
		return err
	}

	if !deleted {
		s.logger.Debug().Int64("product_id", id).Msg("product not found for delete")
		return model.ErrProductNotFound
	}

	return nil
}

// UploadImage stores an uploaded image and points the product's image URL at
// it. The stored object key is server-generated, so client filenames only
// contribute their extension.
func (s *productService) UploadImage(ctx context.Context, id int64, filename, contentType string, data io.Reader) (*model.Product, error) {
	if s.store == nil {
		s.logger.Warn().Int64("product_id", id).Msg("image upload rejected, no store configured")
		return nil, model.ErrNoImageStore
	}

	product, err := s.productRepo.GetByID(ctx, id)
	if err != nil {
		s.logger.Error().Err(err).Int64("product_id", id).Msg("failed to get product for image upload")
		return nil, fmt.Errorf("failed to get product: %w", err)
	}
	if product == nil {
		return nil, model.ErrProductNotFound
	}

	key := fmt.Sprintf("%d-%s%s", id, uuid.New().String(), filepath.Ext(filename))

	url, err := s.store.Save(ctx, key, contentType, data)
	if err != nil {
		s.logger.Error().Err(err).Int64("product_id", id).Msg("failed to store product image")
		return nil, fmt.Errorf("failed to store image: %w", err)
	}

	updated, err := s.productRepo.Update(ctx, id, model.ProductPatch{ImageURL: &url})
	if err != nil {
		s.logger.Error().Err(err).Int64("product_id", id).Msg("failed to update product image URL")
		return nil, err
	}
	if updated == nil {
		return nil, model.ErrProductNotFound
	}

	s.logger.Info().
		Int64("product_id", id).
		Str("image_url", url).
		Msg("product image updated")

	return updated, nil
}
