package usecase

import (
	"context"

	"backoffice/internal/domain/entity"
)

// CustomerInput defines the data for creating or fully updating a customer.
// FilePath, when present, must point at an image URL.
type CustomerInput struct {
	FirstName   string `json:"first_name" validate:"required"`
	LastName    string `json:"last_name" validate:"required"`
	Email       string `json:"email" validate:"required,email"`
	PhoneNumber string `json:"phone_number" validate:"required"`
	Gender      string `json:"gender" validate:"required"`
	FileName    string `json:"fileName" validate:"required"`
	FilePath    string `json:"filePath" validate:"omitempty,imageurl"`
}

// ListCustomersInput filters the customer listing; all fields optional.
type ListCustomersInput struct {
	FirstName string `query:"first_name"`
	LastName  string `query:"last_name"`
	Email     string `query:"email"`
}

// CustomerUsecase defines customer address-book operations.
type CustomerUsecase interface {
	Create(ctx context.Context, input *CustomerInput) (*entity.Customer, error)
	Get(ctx context.Context, id string) (*entity.Customer, error)
	List(ctx context.Context, input *ListCustomersInput) ([]*entity.Customer, error)
	Update(ctx context.Context, id string, input *CustomerInput) (*entity.Customer, error)
	Delete(ctx context.Context, id string) error
}
