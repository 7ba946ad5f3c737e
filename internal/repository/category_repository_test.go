package repository

import (
	"context"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCategoryRepository_Create(t *testing.T) {
	pool, cleanup := setupTestDB(t)
	defer cleanup()

	logger := zerolog.Nop()
	repo := NewCategoryRepository(pool, logger)

	ctx := context.Background()

	category, err := repo.Create(ctx, "Kitchen")

	require.NoError(t, err)
	require.NotNil(t, category)
	assert.Positive(t, category.ID)
	assert.Equal(t, "Kitchen", category.Name)
	assert.False(t, category.CreatedAt.IsZero())
}

func TestCategoryRepository_GetAll(t *testing.T) {
	pool, cleanup := setupTestDB(t)
	defer cleanup()

	logger := zerolog.Nop()
	repo := NewCategoryRepository(pool, logger)

	seedCategory(t, pool, "Office")
	seedCategory(t, pool, "Kitchen")
	seedCategory(t, pool, "Garden")

	categories, err := repo.GetAll(context.Background())

	require.NoError(t, err)
	require.Len(t, categories, 3)

	// Ordered by name
	assert.Equal(t, "Garden", categories[0].Name)
	assert.Equal(t, "Kitchen", categories[1].Name)
	assert.Equal(t, "Office", categories[2].Name)
}

func TestCategoryRepository_GetByID(t *testing.T) {
	pool, cleanup := setupTestDB(t)
	defer cleanup()

	logger := zerolog.Nop()
	repo := NewCategoryRepository(pool, logger)

	id := seedCategory(t, pool, "Kitchen")

	ctx := context.Background()

	t.Run("Category exists", func(t *testing.T) {
		category, err := repo.GetByID(ctx, id)

		require.NoError(t, err)
		require.NotNil(t, category)
		assert.Equal(t, "Kitchen", category.Name)
	})

	t.Run("Category does not exist", func(t *testing.T) {
		category, err := repo.GetByID(ctx, 99999)

		require.NoError(t, err)
		assert.Nil(t, category)
	})
}

func TestCategoryRepository_Update(t *testing.T) {
	pool, cleanup := setupTestDB(t)
	defer cleanup()

	logger := zerolog.Nop()
	repo := NewCategoryRepository(pool, logger)

	id := seedCategory(t, pool, "Kitchen")

	ctx := context.Background()

	t.Run("Rename existing category", func(t *testing.T) {
		category, err := repo.Update(ctx, id, "Kitchenware")

		require.NoError(t, err)
		require.NotNil(t, category)
		assert.Equal(t, "Kitchenware", category.Name)
	})

	t.Run("Category does not exist", func(t *testing.T) {
		category, err := repo.Update(ctx, 99999, "Ghost")

		require.NoError(t, err)
		assert.Nil(t, category)
	})
}

func TestCategoryRepository_Delete(t *testing.T) {
	pool, cleanup := setupTestDB(t)
	defer cleanup()

	logger := zerolog.Nop()
	repo := NewCategoryRepository(pool, logger)

	ctx := context.Background()

	t.Run("Delete existing category", func(t *testing.T) {
		id := seedCategory(t, pool, "Kitchen")

		deleted, err := repo.Delete(ctx, id)

		require.NoError(t, err)
		assert.True(t, deleted)
	})

	t.Run("Delete missing category", func(t *testing.T) {
		deleted, err := repo.Delete(ctx, 99999)

		require.NoError(t, err)
		assert.False(t, deleted)
	})

	t.Run("Delete category still referenced by a product", func(t *testing.T) {
		id := seedCategory(t, pool, "Office")
		seedProduct(t, pool, id, "Stapler", 4.99, time.Now())

		deleted, err := repo.Delete(ctx, id)

		require.Error(t, err)
		assert.False(t, deleted)
	})
}
