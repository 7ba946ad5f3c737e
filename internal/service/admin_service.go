package service

import (
	"context"
	"fmt"
	"strings"

	"shopcore/internal/model"
	"shopcore/internal/repository"

	"github.com/rs/zerolog"
)

// adminService implements AdminService.
type adminService struct {
	categoryRepo repository.CategoryRepository
	statsRepo    repository.StatsRepository
	logger       zerolog.Logger
}

// NewAdminService creates a new admin service.
func NewAdminService(
	categoryRepo repository.CategoryRepository,
	statsRepo repository.StatsRepository,
	logger zerolog.Logger,
) AdminService {
	return &adminService{
		categoryRepo: categoryRepo,
		statsRepo:    statsRepo,
		logger:       logger.With().Str("service", "admin").Logger(),
	}
}

// CreateCategory stores a new category.
func (s *adminService) CreateCategory(ctx context.Context, name string) (*model.Category, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, model.ErrCategoryNameEmpty
	}

	category, err := s.categoryRepo.Create(ctx, name)
	if err != nil {
		s.logger.Error().Err(err).Str("name", name).Msg("failed to create category")
		return nil, err
	}

	s.logger.Info().Int64("category_id", category.ID).Str("name", name).Msg("category created")

	return category, nil
}

// GetCategories retrieves all categories ordered by name.
func (s *adminService) GetCategories(ctx context.Context) ([]model.Category, error) {
	categories, err := s.categoryRepo.GetAll(ctx)
	if err != nil {
		s.logger.Error().Err(err).Msg("failed to get categories")
		return nil, fmt.Errorf("failed to get categories: %w", err)
	}

	return categories, nil
}

// GetCategory retrieves a single category by ID.
func (s *adminService) GetCategory(ctx context.Context, id int64) (*model.Category, error) {
	category, err := s.categoryRepo.GetByID(ctx, id)
	if err != nil {
		s.logger.Error().Err(err).Int64("category_id", id).Msg("failed to get category")
		return nil, fmt.Errorf("failed to get category: %w", err)
	}

	if category == nil {
		s.logger.Debug().Int64("category_id", id).Msg("category not found")
		return nil, model.ErrCategoryNotFound
	}

	return category, nil
}

// RenameCategory changes a category's name.
func (s *adminService) RenameCategory(ctx context.Context, id int64, name string) (*model.Category, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, model.ErrCategoryNameEmpty
	}

	category, err := s.categoryRepo.Update(ctx, id, name)
	if err != nil {
		s.logger.Error().Err(err).Int64("category_id", id).Msg("failed to rename category")
		return nil, err
	}

	if category == nil {
		s.logger.Debug().Int64("category_id", id).Msg("category not found for rename")
		return nil, model.ErrCategoryNotFound
	}

	return category, nil
}

// DeleteCategory removes a category. Categories still referenced by products
// cannot be deleted, and the store failure surfaces to the caller.
func (s *adminService) DeleteCategory(ctx context.Context, id int64) error {
	deleted, err := s.categoryRepo.Delete(ctx, id)
	if err != nil {
		s.logger.Error().Err(err).Int64("category_id", id).Msg("failed to delete category")
		return err
	}

	if !deleted {
		s.logger.Debug().Int64("category_id", id).Msg("category not found for delete")
		return model.ErrCategoryNotFound
	}

	return nil
}

// GetStats returns row counts for the admin dashboard.
func (s *adminService) GetStats(ctx context.Context) (*model.Stats, error) {
	stats, err := s.statsRepo.Get(ctx)
	if err != nil {
		s.logger.Error().Err(err).Msg("failed to get stats")
		return nil, fmt.Errorf("failed to get stats: %w", err)
	}

	return stats, nil
}
