package model

import "time"

// Category represents a product category.
type Category struct {
	ID        int64     `json:"id" db:"id"`
	Name      string    `json:"name" db:"name"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
	UpdatedAt time.Time `json:"updated_at" db:"updated_at"`
}

// CategoryRequest represents the request payload for creating or renaming a
// category.
type CategoryRequest struct {
	Name string `json:"name"`
}

// Stats carries the row counts shown on the admin dashboard.
type Stats struct {
	Products   int64 `json:"products"`
	Users      int64 `json:"users"`
	Orders     int64 `json:"orders"`
	Categories int64 `json:"categories"`
}
