package handler

import (
	"log/slog"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"backoffice/internal/delivery/http/middleware"
	"backoffice/internal/delivery/http/response"
	"backoffice/internal/usecase"
)

// OrderHandler holds dependencies for invoice and sales-report handlers.
type OrderHandler struct {
	uc     usecase.OrderUsecase
	logger *slog.Logger
}

// NewOrderHandler is the constructor for OrderHandler, injected by Fx.
func NewOrderHandler(uc usecase.OrderUsecase, logger *slog.Logger) *OrderHandler {
	return &OrderHandler{
		uc:     uc,
		logger: logger,
	}
}

// Create places a new order. The order is attributed to the authenticated
// user, not a caller-supplied id.
func (h *OrderHandler) Create(c echo.Context) error {
	var input *usecase.CreateOrderInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid order input")
	}

	if userID, ok := c.Get(middleware.ContextKeyUserID).(string); ok {
		input.UserID = userID
	}

	if err := c.Validate(input); err != nil {
		return errors.WithStack(err)
	}

	order, err := h.uc.Create(c.Request().Context(), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, order, "Order placed successfully")
}

// Get returns a single order by id.
func (h *OrderHandler) Get(c echo.Context) error {
	order, err := h.uc.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, order, "")
}

// List returns orders, optionally bounded by creation date.
func (h *OrderHandler) List(c echo.Context) error {
	var input usecase.DateRangeInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid order filter")
	}

	orders, err := h.uc.List(c.Request().Context(), &input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, orders, "")
}

// Update mutates the top-level fields of an order.
func (h *OrderHandler) Update(c echo.Context) error {
	var input *usecase.UpdateOrderInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid order input")
	}
	if err := c.Validate(input); err != nil {
		return errors.WithStack(err)
	}

	order, err := h.uc.Update(c.Request().Context(), c.Param("id"), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, order, "Order updated successfully")
}

// Delete removes an order.
func (h *OrderHandler) Delete(c echo.Context) error {
	if err := h.uc.Delete(c.Request().Context(), c.Param("id")); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Order deleted successfully")
}

// TotalSales returns the revenue summary over completed orders.
func (h *OrderHandler) TotalSales(c echo.Context) error {
	var input usecase.DateRangeInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid report range")
	}

	summary, err := h.uc.TotalSales(c.Request().Context(), &input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, summary, "")
}

// ProductSales returns the per-product revenue report.
func (h *OrderHandler) ProductSales(c echo.Context) error {
	var input usecase.DateRangeInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid report range")
	}

	rows, err := h.uc.ProductSales(c.Request().Context(), &input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, rows, "")
}
