package model

// Internal error codes. Codes select the HTTP status at the handler boundary
// and are never serialized; the envelope carries message text only.
const (
	ErrCodeValidation   = "VALIDATION"
	ErrCodeNotFound     = "NOT_FOUND"
	ErrCodeConflict     = "CONFLICT"
	ErrCodeUnauthorised = "UNAUTHORIZED"
)

// DomainError is a business-rule failure with a fixed, user-facing message.
type DomainError struct {
	Code    string
	Message string
}

func (e *DomainError) Error() string {
	return e.Message
}

// NewDomainError creates a new domain error.
func NewDomainError(code, message string) *DomainError {
	return &DomainError{
		Code:    code,
		Message: message,
	}
}

// Common domain errors.
var (
	ErrProductNotFound  = NewDomainError(ErrCodeNotFound, "Product not found.")
	ErrUserNotFound     = NewDomainError(ErrCodeNotFound, "User not found.")
	ErrCategoryNotFound = NewDomainError(ErrCodeNotFound, "Category not found.")
	ErrCartItemNotFound = NewDomainError(ErrCodeNotFound, "Cart item not found.")
	ErrOrderNotFound    = NewDomainError(ErrCodeNotFound, "Order not found.")
	ErrProductsNotFound = NewDomainError(ErrCodeNotFound, "One or more products were not found.")

	ErrInvalidPrice       = NewDomainError(ErrCodeValidation, "Price must be a positive number.")
	ErrEmptyUpdate        = NewDomainError(ErrCodeValidation, "At least one field must be provided for update.")
	ErrInvalidQuantity    = NewDomainError(ErrCodeValidation, "Quantity must be greater than zero.")
	ErrEmptyOrder         = NewDomainError(ErrCodeValidation, "Order must contain at least one item.")
	ErrInvalidOrderStatus = NewDomainError(ErrCodeValidation, "Invalid order status.")
	ErrCategoryNameEmpty  = NewDomainError(ErrCodeValidation, "Category name is required.")
	ErrRegistrationFields = NewDomainError(ErrCodeValidation, "Name, email, and password are required.")
	ErrPasswordTooShort   = NewDomainError(ErrCodeValidation, "Password must be at least 6 characters.")
	ErrNoImageStore       = NewDomainError(ErrCodeValidation, "Image storage is not configured.")

	ErrEmailTaken         = NewDomainError(ErrCodeConflict, "Email is already registered.")
	ErrInvalidCredentials = NewDomainError(ErrCodeUnauthorised, "Invalid email or password.")
)
