package domain

import "time"

// Product is the aggregate for catalog entries. CreatedBy records the
// authoring user; mutation is not restricted to the author.
type Product struct {
	ID          string
	Name        string
	Description string
	Price       float64
	ImageURL    string
	CreatedBy   string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// ProductPatch carries the optional fields of a partial update. Nil fields
// leave the stored value unchanged.
type ProductPatch struct {
	Name        *string
	Description *string
	Price       *float64
	ImageURL    *string
}
