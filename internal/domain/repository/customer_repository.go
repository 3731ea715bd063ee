package repository

import (
	"context"
	"errors"

	"backoffice/internal/domain/entity"
)

// ErrCustomerNotFound is returned when a customer id has no matching record.
var ErrCustomerNotFound = errors.New("customer not found")

// CustomerFilter narrows customer listings. String fields are
// case-insensitive partial matches; empty fields are ignored.
type CustomerFilter struct {
	FirstName string
	LastName  string
	Email     string
}

// CustomerRepository defines the standard operations for customer persistence.
type CustomerRepository interface {
	FindByID(ctx context.Context, id string) (*entity.Customer, error)

	// FindAll lists customers matching the filter, sorted by first name.
	FindAll(ctx context.Context, filter CustomerFilter) ([]*entity.Customer, error)

	Create(ctx context.Context, customer *entity.Customer) error

	// Update replaces the full stored document for the customer's id.
	Update(ctx context.Context, customer *entity.Customer) error

	Delete(ctx context.Context, id string) error
}
