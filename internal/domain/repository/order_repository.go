package repository

import (
	"context"
	"errors"
	"time"

	"backoffice/internal/domain/entity"
)

// ErrOrderNotFound is returned when an order id has no matching record.
var ErrOrderNotFound = errors.New("order not found")

// OrderFilter narrows order queries. Status matches exactly when set; the
// date bounds are inclusive and filter on the order creation date. The sales
// aggregation reads through this filter and groups in memory, keeping the
// query surface store-agnostic.
type OrderFilter struct {
	Status string
	From   *time.Time
	To     *time.Time
}

// OrderRepository defines the standard operations for order persistence.
// Orders are append-only apart from top-level field updates; line items are
// never mutated after creation.
type OrderRepository interface {
	FindByID(ctx context.Context, id string) (*entity.Order, error)

	// FindAll lists orders matching the filter, oldest first.
	FindAll(ctx context.Context, filter OrderFilter) ([]*entity.Order, error)

	Create(ctx context.Context, order *entity.Order) error

	// Update replaces the stored document for the order's id.
	Update(ctx context.Context, order *entity.Order) error

	Delete(ctx context.Context, id string) error
}
