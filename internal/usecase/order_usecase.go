package usecase

import (
	"context"

	"backoffice/internal/domain/entity"
)

// LineItemInput is one product/quantity/price entry of a new order. Quantity
// and price travel as strings; they are parsed when the order total is
// computed and non-numeric values are rejected.
type LineItemInput struct {
	ProductID string `json:"productId" validate:"required"`
	Quantity  string `json:"quantity" validate:"required"`
	Price     string `json:"price" validate:"required"`
}

// CreateOrderInput defines the data required to place an order.
type CreateOrderInput struct {
	UserID    string          `json:"userId" validate:"required"`
	Name      string          `json:"name" validate:"required"`
	Email     string          `json:"email" validate:"required,email"`
	Address   string          `json:"address" validate:"required"`
	InvoiceID string          `json:"invoice_id" validate:"required"`
	Products  []LineItemInput `json:"products" validate:"required,min=1,dive"`
}

// UpdateOrderInput mutates the top-level fields of an existing order in a
// full-replace style. Line items are immutable after creation and the stored
// total is never recomputed.
type UpdateOrderInput struct {
	Name    string `json:"name" validate:"required"`
	Email   string `json:"email" validate:"required,email"`
	Address string `json:"address" validate:"required"`
	Status  string `json:"status" validate:"required,oneof=pending completed"`
}

// DateRangeInput bounds a report by order creation date; both ends optional.
// The end date is extended to the last instant of that day.
type DateRangeInput struct {
	StartDate string `query:"startDate"`
	EndDate   string `query:"endDate"`
}

// SalesSummary reports revenue over completed orders.
type SalesSummary struct {
	TotalSales      string `json:"totalSales"`
	TodaySales      string `json:"todaySales"`
	CompletedOrders int    `json:"completedOrders"`
	TodayOrders     int    `json:"todayOrders"`
}

// ProductSales is one row of the per-product report: how many units of the
// product were ordered and the revenue they brought in.
type ProductSales struct {
	ProductID    string `json:"productId"`
	ProductName  string `json:"productName"`
	Price        string `json:"price"`
	TotalOrdered int    `json:"totalOrdered"`
	TotalSales   string `json:"totalSales"`
}

// OrderUsecase defines order and sales-reporting operations.
type OrderUsecase interface {
	Create(ctx context.Context, input *CreateOrderInput) (*entity.Order, error)
	Get(ctx context.Context, id string) (*entity.Order, error)
	List(ctx context.Context, input *DateRangeInput) ([]*entity.Order, error)
	Update(ctx context.Context, id string, input *UpdateOrderInput) (*entity.Order, error)
	Delete(ctx context.Context, id string) error

	// TotalSales sums the stored totals of completed orders, optionally
	// bounded by creation date, together with today's subset.
	TotalSales(ctx context.Context, input *DateRangeInput) (*SalesSummary, error)

	// ProductSales groups every line item in range by product, sorted by
	// revenue descending.
	ProductSales(ctx context.Context, input *DateRangeInput) ([]*ProductSales, error)
}
