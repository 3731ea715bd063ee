package handler

import (
	"log/slog"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"backoffice/internal/delivery/http/response"
	"backoffice/internal/usecase"
)

// ProductHandler holds dependencies for catalogue-related handlers.
type ProductHandler struct {
	uc     usecase.ProductUsecase
	logger *slog.Logger
}

// NewProductHandler is the constructor for ProductHandler, injected by Fx.
func NewProductHandler(uc usecase.ProductUsecase, logger *slog.Logger) *ProductHandler {
	return &ProductHandler{
		uc:     uc,
		logger: logger,
	}
}

// Create handles the product creation request.
func (h *ProductHandler) Create(c echo.Context) error {
	var input *usecase.ProductInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid product input")
	}
	if err := c.Validate(input); err != nil {
		return errors.WithStack(err)
	}

	product, err := h.uc.Create(c.Request().Context(), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, product, "Product created successfully")
}

// Get returns a single product by id.
func (h *ProductHandler) Get(c echo.Context) error {
	product, err := h.uc.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, product, "")
}

// List returns products matching the optional query filters, plus catalogue
// counts.
func (h *ProductHandler) List(c echo.Context) error {
	var input usecase.ListProductsInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid product filter")
	}

	output, err := h.uc.List(c.Request().Context(), &input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, output, "")
}

// Update handles the product update request.
func (h *ProductHandler) Update(c echo.Context) error {
	var input *usecase.ProductInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid product input")
	}
	if err := c.Validate(input); err != nil {
		return errors.WithStack(err)
	}

	product, err := h.uc.Update(c.Request().Context(), c.Param("id"), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, product, "Product updated successfully")
}

// Delete removes a product from the catalogue.
func (h *ProductHandler) Delete(c echo.Context) error {
	if err := h.uc.Delete(c.Request().Context(), c.Param("id")); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Product deleted successfully")
}
