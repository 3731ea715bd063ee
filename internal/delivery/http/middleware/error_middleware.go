// Package middleware contains the HTTP middlewares of the API.
package middleware

import (
	"log/slog"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"backoffice/internal/delivery/http/response"
	domainerrors "backoffice/internal/domain/errors"
)

// ErrorMiddleware error handling middleware
type ErrorMiddleware struct {
	logger *slog.Logger
}

// NewErrorMiddleware creates a new error handling middleware
func NewErrorMiddleware(logger *slog.Logger) *ErrorMiddleware {
	return &ErrorMiddleware{
		logger: logger,
	}
}

// HandleHTTPError handles errors as Echo's HTTPErrorHandler. Catalogue errors
// carry their own status and business code; anything else is a 500.
func (m *ErrorMiddleware) HandleHTTPError(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	var appErr domainerrors.AppError
	if errors.As(err, &appErr) {
		_ = response.Error(c, appErr.HTTPCode(), appErr.ErrorCode(), appErr.Message(), appErr.Details())

		return
	}

	var httpErr *echo.HTTPError
	if errors.As(err, &httpErr) {
		message, _ := httpErr.Message.(string)
		_ = response.Error(c, httpErr.Code, "HTTP_ERROR", message, message)

		return
	}

	m.logger.Error("Unhandled error",
		slog.String("error", err.Error()),
		slog.String("path", c.Request().URL.Path),
		slog.String("method", c.Request().Method),
	)

	_ = response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Internal server error", err.Error())
}
