package repository

import (
	"context"
	"fmt"

	"shopcore/internal/model"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
)

// cartRepository implements the CartRepository interface using PostgreSQL.
type cartRepository struct {
	pool   *pgxpool.Pool
	logger zerolog.Logger
}

// NewCartRepository creates a new PostgreSQL-backed cart repository.
func NewCartRepository(pool *pgxpool.Pool, logger zerolog.Logger) CartRepository {
	return &cartRepository{
		pool:   pool,
		logger: logger.With().Str("repository", "cart").Logger(),
	}
}

// GetByUser retrieves a user's cart items, newest first.
func (r *cartRepository) GetByUser(ctx context.Context, userID int64) ([]model.CartItem, error) {
	query := `
		SELECT id, user_id, product_id, quantity, created_at, updated_at
		FROM cart_items
		WHERE user_id = $1
		ORDER BY created_at DESC
	`

	rows, err := r.pool.Query(ctx, query, userID)
	if err != nil {
		r.logger.Error().Err(err).Int64("user_id", userID).Msg("failed to query cart items")
		return nil, fmt.Errorf("failed to query cart items: %w", err)
	}
	defer rows.Close()

	var items []model.CartItem
	for rows.Next() {
		var item model.CartItem
		err := rows.Scan(&item.ID, &item.UserID, &item.ProductID, &item.Quantity, &item.CreatedAt, &item.UpdatedAt)
		if err != nil {
			r.logger.Error().Err(err).Msg("failed to scan cart item row")
			return nil, fmt.Errorf("failed to scan cart item: %w", err)
		}
		items = append(items, item)
	}

	if err := rows.Err(); err != nil {
		r.logger.Error().Err(err).Msg("error iterating cart item rows")
		return nil, fmt.Errorf("error iterating cart items: %w", err)
	}

	return items, nil
}

// Add inserts a cart item. When the user already has the product in their
// cart the quantities are merged instead.
func (r *cartRepository) Add(ctx context.Context, req model.AddCartItemRequest) (*model.CartItem, error) {
	query := `
		INSERT INTO cart_items (user_id, product_id, quantity)
		VALUES ($1, $2, $3)
		ON CONFLICT (user_id, product_id)
		DO UPDATE SET quantity = cart_items.quantity + EXCLUDED.quantity, updated_at = NOW()
		RETURNING id, user_id, product_id, quantity, created_at, updated_at
	`

	var item model.CartItem
	err := r.pool.QueryRow(ctx, query, req.UserID, req.ProductID, req.Quantity).
		Scan(&item.ID, &item.UserID, &item.ProductID, &item.Quantity, &item.CreatedAt, &item.UpdatedAt)
	if err != nil {
		r.logger.Error().Err(err).
			Int64("user_id", req.UserID).
			Int64("product_id", req.ProductID).
			Msg("failed to add cart item")
		return nil, fmt.Errorf("failed to add cart item: %w", err)
	}

	r.logger.Info().
		Int64("cart_item_id", item.ID).
		Int64("user_id", item.UserID).
		Msg("cart item added")

	return &item, nil
}

// UpdateQuantity sets the quantity of a cart item. Returns nil when no cart
// item with that ID exists.
func (r *cartRepository) UpdateQuantity(ctx context.Context, id int64, quantity int) (*model.CartItem, error) {
	query := `
		UPDATE cart_items
		SET quantity = $2, updated_at = NOW()
		WHERE id = $1
		RETURNING id, user_id, product_id, quantity, created_at, updated_at
	`

	var item model.CartItem
	err := r.pool.QueryRow(ctx, query, id, quantity).
		Scan(&item.ID, &item.UserID, &item.ProductID, &item.Quantity, &item.CreatedAt, &item.UpdatedAt)
	if err != nil {
		if err == pgx.ErrNoRows {
			r.logger.Debug().Int64("cart_item_id", id).Msg("cart item not found for update")
			return nil, nil
		}
		r.logger.Error().Err(err).Int64("cart_item_id", id).Msg("failed to update cart item")
		return nil, fmt.Errorf("failed to update cart item: %w", err)
	}

	return &item, nil
}

// Delete removes a cart item. Returns false when no cart item with that ID
// exists.
func (r *cartRepository) Delete(ctx context.Context, id int64) (bool, error) {
	query := `DELETE FROM cart_items WHERE id = $1`

	ct, err := r.pool.Exec(ctx, query, id)
	if err != nil {
		r.logger.Error().Err(err).Int64("cart_item_id", id).Msg("failed to delete cart item")
		return false, fmt.Errorf("failed to delete cart item: %w", err)
	}

	if ct.RowsAffected() == 0 {
		r.logger.Debug().Int64("cart_item_id", id).Msg("cart item not found for delete")
		return false, nil
	}

	return true, nil
}

// Clear removes all cart items for a user and returns how many were removed.
func (r *cartRepository) Clear(ctx context.Context, userID int64) (int64, error) {
	query := `DELETE FROM cart_items WHERE user_id = $1`

	ct, err := r.pool.Exec(ctx, query, userID)
	if err != nil {
		r.logger.Error().Err(err).Int64("user_id", userID).Msg("failed to clear cart")
		return 0, fmt.Errorf("failed to clear cart: %w", err)
	}

	r.logger.Info().
		Int64("user_id", userID).
		Int64("removed", ct.RowsAffected()).
		Msg("cart cleared")

	return ct.RowsAffected(), nil
}
