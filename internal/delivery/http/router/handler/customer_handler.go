package handler

import (
	"log/slog"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"backoffice/internal/delivery/http/response"
	"backoffice/internal/usecase"
)

// CustomerHandler holds dependencies for customer-related handlers.
type CustomerHandler struct {
	uc     usecase.CustomerUsecase
	logger *slog.Logger
}

// NewCustomerHandler is the constructor for CustomerHandler, injected by Fx.
func NewCustomerHandler(uc usecase.CustomerUsecase, logger *slog.Logger) *CustomerHandler {
	return &CustomerHandler{
		uc:     uc,
		logger: logger,
	}
}

// Create handles the customer creation request.
func (h *CustomerHandler) Create(c echo.Context) error {
	var input *usecase.CustomerInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid customer input")
	}
	if err := c.Validate(input); err != nil {
		return errors.WithStack(err)
	}

	customer, err := h.uc.Create(c.Request().Context(), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, customer, "Customer created successfully")
}

// Get returns a single customer by id.
func (h *CustomerHandler) Get(c echo.Context) error {
	customer, err := h.uc.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, customer, "")
}

// List returns customers matching the optional query filters.
func (h *CustomerHandler) List(c echo.Context) error {
	var input usecase.ListCustomersInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid customer filter")
	}

	customers, err := h.uc.List(c.Request().Context(), &input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, customers, "")
}

// Update handles the customer update request.
func (h *CustomerHandler) Update(c echo.Context) error {
	var input *usecase.CustomerInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid customer input")
	}
	if err := c.Validate(input); err != nil {
		return errors.WithStack(err)
	}

	customer, err := h.uc.Update(c.Request().Context(), c.Param("id"), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, customer, "Customer updated successfully")
}

// Delete removes a customer.
func (h *CustomerHandler) Delete(c echo.Context) error {
	if err := h.uc.Delete(c.Request().Context(), c.Param("id")); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Customer deleted successfully")
}
