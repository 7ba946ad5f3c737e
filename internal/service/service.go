package service

import (
	"context"
	"io"

	"shopcore/internal/model"

	"github.com/google/uuid"
)

// ProductService defines operations for product management.
type ProductService interface {
	// GetAll retrieves all products, newest first.
	GetAll(ctx context.Context) ([]model.Product, error)

	// GetByID retrieves a single product by ID.
	GetByID(ctx context.Context, id int64) (*model.Product, error)

	// Create stores a new product.
	Create(ctx context.Context, req model.CreateProductRequest) (*model.Product, error)

	// Update applies a partial update after validating the patch.
	Update(ctx context.Context, id int64, patch model.ProductPatch) (*model.Product, error)

	// Delete removes a product.
	Delete(ctx context.Context, id int64) error

	// UploadImage stores an uploaded image and points the product's image URL
	// at it.
	UploadImage(ctx context.Context, id int64, filename, contentType string, data io.Reader) (*model.Product, error)
}

// UserService defines operations for user management.
type UserService interface {
	// GetAll retrieves all users, newest first.
	GetAll(ctx context.Context) ([]model.User, error)

	// GetByID retrieves a single user by ID.
	GetByID(ctx context.Context, id int64) (*model.User, error)

	// Update applies a partial update after validating the patch. A supplied
	// password is re-hashed before storage.
	Update(ctx context.Context, id int64, patch model.UserPatch) (*model.User, error)

	// Delete removes a user.
	Delete(ctx context.Context, id int64) error
}

// AuthService defines registration and login.
type AuthService interface {
	// Register creates a new user with a hashed password.
	Register(ctx context.Context, req model.RegisterRequest) (*model.User, error)

	// Login verifies credentials and issues a signed token.
	Login(ctx context.Context, req model.LoginRequest) (string, *model.User, error)
}

// CartService defines operations for cart management.
type CartService interface {
	// Add puts a product in a user's cart, merging quantities when the
	// product is already there.
	Add(ctx context.Context, req model.AddCartItemRequest) (*model.CartItem, error)

	// GetByUser retrieves a user's cart items, newest first.
	GetByUser(ctx context.Context, userID int64) ([]model.CartItem, error)

	// UpdateQuantity sets the quantity of a cart item.
	UpdateQuantity(ctx context.Context, id int64, quantity int) (*model.CartItem, error)

	// Remove deletes a single cart item.
	Remove(ctx context.Context, id int64) error

	// Clear removes all of a user's cart items and returns how many were
	// removed.
	Clear(ctx context.Context, userID int64) (int64, error)
}

// OrderService defines operations for order management.
type OrderService interface {
	// Create creates a new order with its items in a single transaction.
	Create(ctx context.Context, req *model.OrderRequest) (*model.OrderResponse, error)

	// GetAll retrieves all orders, newest first.
	GetAll(ctx context.Context) ([]model.Order, error)

	// GetByID retrieves an order by its ID with all items and product details.
	GetByID(ctx context.Context, id uuid.UUID) (*model.OrderResponse, error)

	// UpdateStatus moves an order to a new status.
	UpdateStatus(ctx context.Context, id uuid.UUID, status string) (*model.Order, error)

	// Delete removes an order and its items.
	Delete(ctx context.Context, id uuid.UUID) error
}

// AdminService defines category management and dashboard counters.
type AdminService interface {
	// CreateCategory stores a new category.
	CreateCategory(ctx context.Context, name string) (*model.Category, error)

	// GetCategories retrieves all categories ordered by name.
	GetCategories(ctx context.Context) ([]model.Category, error)

	// GetCategory retrieves a single category by ID.
	GetCategory(ctx context.Context, id int64) (*model.Category, error)

	// RenameCategory changes a category's name.
	RenameCategory(ctx context.Context, id int64, name string) (*model.Category, error)

	// DeleteCategory removes a category.
	DeleteCategory(ctx context.Context, id int64) error

	// GetStats returns row counts for the admin dashboard.
	GetStats(ctx context.Context) (*model.Stats, error)
}
