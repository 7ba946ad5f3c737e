package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"shopcore/internal/config"
	"shopcore/internal/database"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/joho/godotenv"
	"golang.org/x/crypto/bcrypt"
)

// Seeds a development database with categories, products, and a demo user.
// Safe to run repeatedly: every insert skips rows that already exist.
func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	logger := config.NewLogger(cfg.Logger)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if cfg.Database.Migrate {
		if err := database.Migrate(cfg.Database.ConnectionString(), logger); err != nil {
			return fmt.Errorf("failed to run migrations: %w", err)
		}
	}

	pool, err := database.NewPool(ctx, cfg.Database, logger)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	defer pool.Close()

	if err := seedCategories(ctx, pool); err != nil {
		return fmt.Errorf("failed to seed categories: %w", err)
	}

	if err := seedProducts(ctx, pool); err != nil {
		return fmt.Errorf("failed to seed products: %w", err)
	}

	if err := seedDemoUser(ctx, pool); err != nil {
		return fmt.Errorf("failed to seed demo user: %w", err)
	}

	fmt.Println("Seed data loaded.")
	return nil
}

func seedCategories(ctx context.Context, pool *pgxpool.Pool) error {
	categories := []string{"Kitchen", "Electronics", "Stationery"}

	for _, name := range categories {
		_, err := pool.Exec(ctx,
			`INSERT INTO categories (name) VALUES ($1) ON CONFLICT (name) DO NOTHING`,
			name,
		)
		if err != nil {
			return err
		}
	}

	fmt.Printf("Seeded %d categories\n", len(categories))
	return nil
}

func seedProducts(ctx context.Context, pool *pgxpool.Pool) error {
	products := []struct {
		name        string
		description string
		price       float64
		category    string
		imageURL    string
	}{
		{"Mug", "Ceramic mug", 9.99, "Kitchen", "http://x/mug.png"},
		{"French Press", "8-cup glass french press", 24.50, "Kitchen", "http://x/press.png"},
		{"Chef Knife", "20cm stainless chef knife", 39.00, "Kitchen", "http://x/knife.png"},
		{"USB-C Cable", "1m braided charging cable", 7.25, "Electronics", "http://x/cable.png"},
		{"Desk Lamp", "Dimmable LED desk lamp", 32.99, "Electronics", "http://x/lamp.png"},
		{"Notebook", "A5 dotted notebook, 120 pages", 5.40, "Stationery", "http://x/notebook.png"},
		{"Fountain Pen", "Fine nib fountain pen", 18.75, "Stationery", "http://x/pen.png"},
	}

	for _, p := range products {
		// The category subquery resolves the FK, and the NOT EXISTS guard
		// keeps reruns from duplicating rows.
		_, err := pool.Exec(ctx,
			`INSERT INTO products (name, description, price, category_id, image_url)
			 SELECT $1, $2, $3, c.id, $4
			 FROM categories c
			 WHERE c.name = $5
			   AND NOT EXISTS (SELECT 1 FROM products p WHERE p.name = $1)`,
			p.name, p.description, p.price, p.imageURL, p.category,
		)
		if err != nil {
			return err
		}
	}

	fmt.Printf("Seeded %d products\n", len(products))
	return nil
}

func seedDemoUser(ctx context.Context, pool *pgxpool.Pool) error {
	hash, err := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	_, err = pool.Exec(ctx,
		`INSERT INTO users (name, email, password_hash) VALUES ($1, $2, $3)
		 ON CONFLICT (email) DO NOTHING`,
		"Demo User", "demo@example.com", string(hash),
	)
	if err != nil {
		return err
	}

	fmt.Println("Seeded demo user demo@example.com (password: password123)")
	return nil
}
