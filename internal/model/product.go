package model

import "time"

// Product represents a product in the catalogue.
type Product struct {
	ID          int64     `json:"id" db:"id"`
	Name        string    `json:"name" db:"name"`
	Description string    `json:"description" db:"description"`
	Price       float64   `json:"price" db:"price"`
	CategoryID  int64     `json:"category_id" db:"category_id"`
	ImageURL    string    `json:"image_url" db:"image_url"`
	CreatedAt   time.Time `json:"created_at" db:"created_at"`
	UpdatedAt   time.Time `json:"updated_at" db:"updated_at"`
}

// CreateProductRequest represents the request payload for creating a product.
// Fields are not validated here; store constraints surface as failures.
type CreateProductRequest struct {
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Price       float64 `json:"price"`
	CategoryID  int64   `json:"category_id"`
	ImageURL    string  `json:"image_url"`
}

// ProductPatch carries a partial update. A nil field was not supplied and
// leaves the stored value untouched; a non-nil field is applied even when it
// holds the zero value. Price is the exception: a supplied value must be
// strictly positive.
type ProductPatch struct {
	Name        *string  `json:"name"`
	Description *string  `json:"description"`
	Price       *float64 `json:"price"`
	CategoryID  *int64   `json:"category_id"`
	ImageURL    *string  `json:"image_url"`
}

// IsEmpty reports whether the patch carries no fields at all.
func (p ProductPatch) IsEmpty() bool {
	return p.Name == nil &&
		p.Description == nil &&
		p.Price == nil &&
		p.CategoryID == nil &&
		p.ImageURL == nil
}
