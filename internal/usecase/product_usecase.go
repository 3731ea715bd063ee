package usecase

import (
	"context"

	"backoffice/internal/domain/entity"
)

// ProductInput defines the data for creating or updating a catalogue entry.
type ProductInput struct {
	Name        string `json:"name" validate:"required"`
	Brand       string `json:"brand" validate:"required"`
	Price       string `json:"price" validate:"required"`
	Negotiable  bool   `json:"negotiable"`
	Description string `json:"description"`
	FileName    string `json:"fileName" validate:"required"`
	FilePath    string `json:"filePath" validate:"omitempty,imageurl"`
}

// ListProductsInput filters the product listing; all fields optional. Dates
// are RFC 3339 or plain YYYY-MM-DD strings bounding the creation time.
type ListProductsInput struct {
	Name      string `query:"name"`
	Brand     string `query:"brand"`
	MinPrice  string `query:"price"`
	StartDate string `query:"startDate"`
	EndDate   string `query:"endDate"`
}

// ListProductsOutput returns the matching products together with the
// catalogue-wide count and the count of products added in the window.
type ListProductsOutput struct {
	Products      []*entity.Product `json:"products"`
	TotalProducts int64             `json:"totalProducts"`
	NewProducts   int64             `json:"newProducts"`
}

// ProductUsecase defines catalogue operations.
type ProductUsecase interface {
	Create(ctx context.Context, input *ProductInput) (*entity.Product, error)
	Get(ctx context.Context, id string) (*entity.Product, error)
	List(ctx context.Context, input *ListProductsInput) (*ListProductsOutput, error)
	Update(ctx context.Context, id string, input *ProductInput) (*entity.Product, error)
	Delete(ctx context.Context, id string) error
}
