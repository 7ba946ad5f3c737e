package service

import (
	"context"
	"fmt"

	"shopcore/internal/model"
	"shopcore/internal/repository"

	"github.com/rs/zerolog"
)

// cartService implements CartService.
type cartService struct {
	cartRepo repository.CartRepository
	logger   zerolog.Logger
}

// NewCartService creates a new cart service.
func NewCartService(cartRepo repository.CartRepository, logger zerolog.Logger) CartService {
	return &cartService{
		cartRepo: cartRepo,
		logger:   logger.With().Str("service", "cart").Logger(),
	}
}

// Add puts a product in a user's cart. Adding a product that is already in
// the cart merges the quantities. Unknown users or products surface as store
// failures.
func (s *cartService) Add(ctx context.Context, req model.AddCartItemRequest) (*model.CartItem, error) {
	if req.Quantity <= 0 {
		s.logger.Warn().
			Int64("user_id", req.UserID).
			Int64("product_id", req.ProductID).
			Int("quantity", req.Quantity).
			Msg("rejected non-positive cart quantity")
		return nil, model.ErrInvalidQuantity
	}

	item, err := s.cartRepo.Add(ctx, req)
	if err != nil {
		s.logger.Error().
			Err(err).
			Int64("user_id", req.UserID).
			Int64("product_id", req.ProductID).
			Msg("failed to add cart item")
		return nil, err
	}

	return item, nil
}

// GetByUser retrieves a user's cart items, newest first.
func (s *cartService) GetByUser(ctx context.Context, userID int64) ([]model.CartItem, error) {
	items, err := s.cartRepo.GetByUser(ctx, userID)
	if err != nil {
		s.logger.Error().Err(err).Int64("user_id", userID).Msg("failed to get cart items")
		return nil, fmt.Errorf("failed to get cart items: %w", err)
	}

	return items, nil
}

// UpdateQuantity sets the quantity of a cart item.
func (s *cartService) UpdateQuantity(ctx context.Context, id int64, quantity int) (*model.CartItem, error) {
	if quantity <= 0 {
		s.logger.Warn().Int64("cart_item_id", id).Int("quantity", quantity).Msg("rejected non-positive cart quantity")
		return nil, model.ErrInvalidQuantity
	}

	item, err := s.cartRepo.UpdateQuantity(ctx, id, quantity)
	if err != nil {
		s.logger.Error().Err(err).Int64("cart_item_id", id).Msg("failed to update cart item")
		return nil, fmt.Errorf("failed to update cart item: %w", err)
	}

	if item == nil {
		s.logger.Debug().Int64("cart_item_id", id).Msg("cart item not found for update")
		return nil, model.ErrCartItemNotFound
	}

	return item, nil
}

// Remove deletes a single cart item.
func (s *cartService) Remove(ctx context.Context, id int64) error {
	deleted, err := s.cartRepo.Delete(ctx, id)
	if err != nil {
		s.logger.Error().Err(err).Int64("cart_item_id", id).Msg("failed to delete cart item")
		return err
	}

	if !deleted {
		s.logger.Debug().Int64("cart_item_id", id).Msg("cart item not found for delete")
		return model.ErrCartItemNotFound
	}

	return nil
}

// Clear removes every item in a user's cart. Clearing an empty cart is not
// an error.
func (s *cartService) Clear(ctx context.Context, userID int64) (int64, error) {
	removed, err := s.cartRepo.Clear(ctx, userID)
	if err != nil {
		s.logger.Error().Err(err).Int64("user_id", userID).Msg("failed to clear cart")
		return 0, fmt.Errorf("failed to clear cart: %w", err)
	}

	s.logger.Info().Int64("user_id", userID).Int64("removed", removed).Msg("cart cleared")

	return removed, nil
}
