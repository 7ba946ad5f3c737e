package repository

import (
	"context"
	"fmt"

	"shopcore/internal/cache"
	"shopcore/internal/model"

	"github.com/rs/zerolog"
)

// cachedProductRepository wraps a ProductRepository with a Redis read
// cache. Reads are served from the cache when possible; every write
// invalidates the affected keys. Cache failures are logged and never fail
// the request.
type cachedProductRepository struct {
	inner  ProductRepository
	cache  *cache.Cache
	logger zerolog.Logger
}

// NewCachedProductRepository decorates repo with the given cache.
func NewCachedProductRepository(repo ProductRepository, c *cache.Cache, logger zerolog.Logger) ProductRepository {
	return &cachedProductRepository{
		inner:  repo,
		cache:  c,
		logger: logger.With().Str("repository", "product-cache").Logger(),
	}
}

func productKey(id int64) string {
	return fmt.Sprintf("product:%d", id)
}

const allProductsKey = "products:all"

// GetAll serves the product list from the cache when present.
func (r *cachedProductRepository) GetAll(ctx context.Context) ([]model.Product, error) {
	var products []model.Product
	err := r.cache.Get(ctx, allProductsKey, &products)
	if err == nil {
		r.logger.Debug().Msg("cache hit: all products")
		return products, nil
	}
	if !cache.IsMiss(err) {
		r.logger.Warn().Err(err).Msg("cache read failed, falling back to database")
	}

	products, err = r.inner.GetAll(ctx)
	if err != nil {
		return nil, err
	}

	if err := r.cache.Set(ctx, allProductsKey, products); err != nil {
		r.logger.Warn().Err(err).Msg("failed to cache product list")
	}

	return products, nil
}

// GetByID serves a single product from the cache when present. Missing
// products are not cached.
func (r *cachedProductRepository) GetByID(ctx context.Context, id int64) (*model.Product, error) {
	key := productKey(id)

	var product model.Product
	err := r.cache.Get(ctx, key, &product)
	if err == nil {
		r.logger.Debug().Int64("product_id", id).Msg("cache hit: product")
		return &product, nil
	}
	if !cache.IsMiss(err) {
		r.logger.Warn().Err(err).Msg("cache read failed, falling back to database")
	}

	p, err := r.inner.GetByID(ctx, id)
	if err != nil || p == nil {
		return p, err
	}

	if err := r.cache.Set(ctx, key, p); err != nil {
		r.logger.Warn().Err(err).Int64("product_id", id).Msg("failed to cache product")
	}

	return p, nil
}

// GetByIDs always reads from the database; the multi-get path is only used
// when assembling orders.
func (r *cachedProductRepository) GetByIDs(ctx context.Context, ids []int64) ([]model.Product, error) {
	return r.inner.GetByIDs(ctx, ids)
}

// Create inserts through the inner repository and invalidates the list key.
func (r *cachedProductRepository) Create(ctx context.Context, req model.CreateProductRequest) (*model.Product, error) {
	p, err := r.inner.Create(ctx, req)
	if err != nil {
		return nil, err
	}

	r.invalidate(ctx, allProductsKey)

	return p, nil
}

// Update updates through the inner repository and invalidates both the
// product key and the list key.
func (r *cachedProductRepository) Update(ctx context.Context, id int64, patch model.ProductPatch) (*model.Product, error) {
	p, err := r.inner.Update(ctx, id, patch)
	if err != nil || p == nil {
		return p, err
	}

	r.invalidate(ctx, productKey(id), allProductsKey)

	return p, nil
}

// Delete deletes through the inner repository and invalidates both the
// product key and the list key.
func (r *cachedProductRepository) Delete(ctx context.Context, id int64) (bool, error) {
	deleted, err := r.inner.Delete(ctx, id)
	if err != nil || !deleted {
		return deleted, err
	}

	r.invalidate(ctx, productKey(id), allProductsKey)

	return true, nil
}

// ValidateProductsExist always checks the database.
func (r *cachedProductRepository) ValidateProductsExist(ctx context.Context, ids []int64) error {
	return r.inner.ValidateProductsExist(ctx, ids)
}

func (r *cachedProductRepository) invalidate(ctx context.Context, keys ...string) {
	if err := r.cache.Delete(ctx, keys...); err != nil {
		r.logger.Warn().Err(err).Strs("keys", keys).Msg("failed to invalidate cache")
	}
}
