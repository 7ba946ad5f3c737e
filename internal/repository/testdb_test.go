package repository

import (
	"context"
	"testing"
	"time"

	"shopcore/internal/database"
	"shopcore/internal/model"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
)

// setupTestDB starts a PostgreSQL testcontainer, applies the real schema
// migrations, and returns a connection pool.
func setupTestDB(t *testing.T) (*pgxpool.Pool, func()) {
	ctx := context.Background()

	// Start PostgreSQL container
	pgContainer, err := postgres.Run(ctx,
		"postgres:16-alpine",
		postgres.WithDatabase("testdb"),
		postgres.WithUsername("postgres"),
		postgres.WithPassword("postgres"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(60*time.Second)),
	)
	require.NoError(t, err)

	// Get connection string
	connStr, err := pgContainer.ConnectionString(ctx, "sslmode=disable")
	require.NoError(t, err)

	// Apply migrations
	err = database.Migrate(connStr, zerolog.Nop())
	require.NoError(t, err)

	// Create connection pool
	pool, err := pgxpool.New(ctx, connStr)
	require.NoError(t, err)

	// Cleanup function
	cleanup := func() {
		pool.Close()
		_ = pgContainer.Terminate(ctx)
	}

	return pool, cleanup
}

// seedCategory inserts a category and returns its ID.
func seedCategory(t *testing.T, pool *pgxpool.Pool, name string) int64 {
	ctx := context.Background()

	var id int64
	err := pool.QueryRow(ctx, `INSERT INTO categories (name) VALUES ($1) RETURNING id`, name).Scan(&id)
	require.NoError(t, err)

	return id
}

// seedProduct inserts a product with an explicit creation time so tests can
// control list ordering, and returns the stored row.
func seedProduct(t *testing.T, pool *pgxpool.Pool, categoryID int64, name string, price float64, createdAt time.Time) model.Product {
	ctx := context.Background()

	query := `
		INSERT INTO products (name, description, price, category_id, image_url, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $6)
		RETURNING id, name, description, price, category_id, image_url, created_at, updated_at
	`

	var p model.Product
	err := pool.QueryRow(ctx, query, name, name+" description", price, categoryID, "http://example.com/"+name+".png", createdAt).
		Scan(&p.ID, &p.Name, &p.Description, &p.Price, &p.CategoryID, &p.ImageURL, &p.CreatedAt, &p.UpdatedAt)
	require.NoError(t, err)

	return p
}

// seedUser inserts a user and returns the stored row.
func seedUser(t *testing.T, pool *pgxpool.Pool, name, email string) model.User {
	ctx := context.Background()

	query := `
		INSERT INTO users (name, email, password_hash)
		VALUES ($1, $2, $3)
		RETURNING id, name, email, password_hash, created_at, updated_at
	`

	var u model.User
	err := pool.QueryRow(ctx, query, name, email, "$2a$10$fakehashfortesting").
		Scan(&u.ID, &u.Name, &u.Email, &u.PasswordHash, &u.CreatedAt, &u.UpdatedAt)
	require.NoError(t, err)

	return u
}
