package repository

import (
	"context"
	"fmt"

	"shopcore/internal/model"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
)

// statsRepository implements the StatsRepository interface using PostgreSQL.
type statsRepository struct {
	pool   *pgxpool.Pool
	logger zerolog.Logger
}

// NewStatsRepository creates a new PostgreSQL-backed stats repository.
func NewStatsRepository(pool *pgxpool.Pool, logger zerolog.Logger) StatsRepository {
	return &statsRepository{
		pool:   pool,
		logger: logger.With().Str("repository", "stats").Logger(),
	}
}

// Get returns row counts for the main resource tables in a single round trip.
func (r *statsRepository) Get(ctx context.Context) (*model.Stats, error) {
	query := `
		SELECT
			(SELECT COUNT(*) FROM products),
			(SELECT COUNT(*) FROM users),
			(SELECT COUNT(*) FROM orders),
			(SELECT COUNT(*) FROM categories)
	`

	var s model.Stats
	err := r.pool.QueryRow(ctx, query).Scan(&s.Products, &s.Users, &s.Orders, &s.Categories)
	if err != nil {
		r.logger.Error().Err(err).Msg("failed to query stats")
		return nil, fmt.Errorf("failed to query stats: %w", err)
	}

	return &s, nil
}
