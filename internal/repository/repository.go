package repository

import (
	"context"

	"shopcore/internal/model"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// ProductRepository defines the interface for product data access operations.
type ProductRepository interface {
	// GetAll retrieves all products, newest first.
	GetAll(ctx context.Context) ([]model.Product, error)

	// GetByID retrieves a single product by its ID.
	GetByID(ctx context.Context, id int64) (*model.Product, error)

	// GetByIDs retrieves multiple products by their IDs.
	GetByIDs(ctx context.Context, ids []int64) ([]model.Product, error)

	// Create inserts a new product and returns the stored row.
	Create(ctx context.Context, req model.CreateProductRequest) (*model.Product, error)

	// Update applies a partial update to a product and returns the updated
	// row, or nil if no product with that ID exists.
	Update(ctx context.Context, id int64, patch model.ProductPatch) (*model.Product, error)

	// Delete removes a product. Returns false if no product with that ID
	// exists.
	Delete(ctx context.Context, id int64) (bool, error)

	// ValidateProductsExist checks if all provided product IDs exist in the
	// database. Returns an error if any product ID does not exist.
	ValidateProductsExist(ctx context.Context, ids []int64) error
}

// UserRepository defines the interface for user data access operations.
type UserRepository interface {
	// GetAll retrieves all users, newest first.
	GetAll(ctx context.Context) ([]model.User, error)

	// GetByID retrieves a single user by its ID.
	GetByID(ctx context.Context, id int64) (*model.User, error)

	// GetByEmail retrieves a single user by email address.
	GetByEmail(ctx context.Context, email string) (*model.User, error)

	// Create inserts a new user. Returns model.ErrEmailTaken when the email
	// address is already registered.
	Create(ctx context.Context, name, email, passwordHash string) (*model.User, error)

	// Update applies a partial update to a user and returns the updated row,
	// or nil if no user with that ID exists.
	Update(ctx context.Context, id int64, update model.UserUpdate) (*model.User, error)

	// Delete removes a user. Returns false if no user with that ID exists.
	Delete(ctx context.Context, id int64) (bool, error)
}

// CategoryRepository defines the interface for category data access operations.
type CategoryRepository interface {
	// GetAll retrieves all categories ordered by name.
	GetAll(ctx context.Context) ([]model.Category, error)

	// GetByID retrieves a single category by its ID.
	GetByID(ctx context.Context, id int64) (*model.Category, error)

	// Create inserts a new category and returns the stored row.
	Create(ctx context.Context, name string) (*model.Category, error)

	// Update renames a category and returns the updated row, or nil if no
	// category with that ID exists.
	Update(ctx context.Context, id int64, name string) (*model.Category, error)

	// Delete removes a category. Returns false if no category with that ID
	// exists.
	Delete(ctx context.Context, id int64) (bool, error)
}

// CartRepository defines the interface for cart data access operations.
type CartRepository interface {
	// GetByUser retrieves a user's cart items, newest first.
	GetByUser(ctx context.Context, userID int64) ([]model.CartItem, error)

	// Add inserts a cart item, or increments the quantity when the user
	// already has the product in their cart.
	Add(ctx context.Context, req model.AddCartItemRequest) (*model.CartItem, error)

	// UpdateQuantity sets the quantity of a cart item and returns the updated
	// row, or nil if no cart item with that ID exists.
	UpdateQuantity(ctx context.Context, id int64, quantity int) (*model.CartItem, error)

	// Delete removes a cart item. Returns false if no cart item with that ID
	// exists.
	Delete(ctx context.Context, id int64) (bool, error)

	// Clear removes all cart items for a user and returns how many were
	// removed.
	Clear(ctx context.Context, userID int64) (int64, error)
}

// OrderRepository defines the interface for order data access operations.
type OrderRepository interface {
	// BeginTx starts a new database transaction.
	BeginTx(ctx context.Context) (pgx.Tx, error)

	// CreateOrder inserts a new order within the provided transaction.
	CreateOrder(ctx context.Context, tx pgx.Tx, order *model.Order) error

	// CreateOrderItems inserts multiple order items within the provided transaction.
	CreateOrderItems(ctx context.Context, tx pgx.Tx, items []model.OrderItem) error

	// GetAll retrieves all orders, newest first.
	GetAll(ctx context.Context) ([]model.Order, error)

	// GetByID retrieves an order by its ID along with its items.
	GetByID(ctx context.Context, id uuid.UUID) (*model.Order, []model.OrderItem, error)

	// UpdateStatus sets an order's status and returns the updated row, or nil
	// if no order with that ID exists.
	UpdateStatus(ctx context.Context, id uuid.UUID, status string) (*model.Order, error)

	// Delete removes an order and its items. Returns false if no order with
	// that ID exists.
	Delete(ctx context.Context, id uuid.UUID) (bool, error)
}

// StatsRepository defines the interface for admin dashboard counters.
type StatsRepository interface {
	// Get returns row counts for the main resource tables.
	Get(ctx context.Context) (*model.Stats, error)
}
