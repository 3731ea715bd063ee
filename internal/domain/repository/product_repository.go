package repository

import (
	"context"
	"errors"
	"time"

	"backoffice/internal/domain/entity"
)

// ErrProductNotFound is returned when a product id has no matching record.
var ErrProductNotFound = errors.New("product not found")

// ProductFilter narrows product listings. Name and Brand are case-insensitive
// partial matches, MinPrice keeps products at or above the given price string,
// and the date bounds filter on creation time. Zero values are ignored.
type ProductFilter struct {
	Name     string
	Brand    string
	MinPrice string
	From     *time.Time
	To       *time.Time
}

// ProductRepository defines the standard operations for product persistence.
type ProductRepository interface {
	FindByID(ctx context.Context, id string) (*entity.Product, error)

	// FindAll lists products matching the filter, sorted by brand.
	FindAll(ctx context.Context, filter ProductFilter) ([]*entity.Product, error)

	// Count returns the number of products matching the filter.
	Count(ctx context.Context, filter ProductFilter) (int64, error)

	Create(ctx context.Context, product *entity.Product) error

	Update(ctx context.Context, product *entity.Product) error

	Delete(ctx context.Context, id string) error
}
