// Package errors defines the application error catalogue. Every failure the
// delivery layer can surface to a caller is one of these values, carrying an
// HTTP status, a stable business code and a user-facing message.
package errors

import (
	"net/http"

	"github.com/pkg/errors"
)

// AppError defines the interface for application-specific errors
type AppError interface {
	error
	HTTPCode() int     // HTTP status code
	ErrorCode() string // Business error code
	Message() string   // User-friendly error message
	Details() string   // Detailed error information (optional)
}

// BaseError is a basic error structure that implements the AppError interface
type BaseError struct {
	httpCode  int
	errorCode string
	message   string
	details   string
}

// NewBaseError creates a new base error
func NewBaseError(httpCode int, errorCode, message, details string) *BaseError {
	return &BaseError{
		httpCode:  httpCode,
		errorCode: errorCode,
		message:   message,
		details:   details,
	}
}

// Error implements the error interface
func (e *BaseError) Error() string {
	return e.message
}

// WrapMessage wraps the error with additional context message
func (e *BaseError) WrapMessage(message string) error {
	return errors.Wrap(e, message)
}

// HTTPCode returns the HTTP status code
func (e *BaseError) HTTPCode() int {
	return e.httpCode
}

// ErrorCode returns the business error code
func (e *BaseError) ErrorCode() string {
	return e.errorCode
}

// Message returns the user-friendly error message
func (e *BaseError) Message() string {
	return e.message
}

// Details returns detailed error information
func (e *BaseError) Details() string {
	return e.details
}

// WithDetails adds detailed error information
func (e *BaseError) WithDetails(details string) *BaseError {
	return &BaseError{
		httpCode:  e.httpCode,
		errorCode: e.errorCode,
		message:   e.message,
		details:   details,
	}
}

// Predefined error types
var (
	// User-related errors
	ErrUserNotFound = NewBaseError(
		http.StatusNotFound,
		"USER_NOT_FOUND",
		"User not found",
		"",
	)

	ErrUserAlreadyExists = NewBaseError(
		http.StatusConflict,
		"USER_ALREADY_EXISTS",
		"User already exists",
		"",
	)

	// Authentication-related errors
	ErrInvalidCredentials = NewBaseError(
		http.StatusUnauthorized,
		"INVALID_CREDENTIALS",
		"Invalid email or password",
		"",
	)

	ErrInvalidOTP = NewBaseError(
		http.StatusBadRequest,
		"INVALID_OTP",
		"Invalid OTP",
		"",
	)

	ErrOTPExpired = NewBaseError(
		http.StatusBadRequest,
		"OTP_EXPIRED",
		"OTP expired",
		"",
	)

	ErrInvalidToken = NewBaseError(
		http.StatusUnauthorized,
		"INVALID_TOKEN",
		"Token invalid or expired",
		"",
	)

	ErrPasswordHashFailed = NewBaseError(
		http.StatusInternalServerError,
		"PASSWORD_HASH_FAILED",
		"Failed to process password",
		"",
	)

	// Validation-related errors
	ErrValidationFailed = NewBaseError(
		http.StatusBadRequest,
		"VALIDATION_FAILED",
		"Input validation failed",
		"",
	)

	ErrParseFailed = NewBaseError(
		http.StatusUnprocessableEntity,
		"PARSE_FAILED",
		"Non-numeric quantity or price",
		"",
	)

	// Commerce entity errors
	ErrCustomerNotFound = NewBaseError(
		http.StatusNotFound,
		"CUSTOMER_NOT_FOUND",
		"Customer not found",
		"",
	)

	ErrProductNotFound = NewBaseError(
		http.StatusNotFound,
		"PRODUCT_NOT_FOUND",
		"Product not found",
		"",
	)

	ErrOrderNotFound = NewBaseError(
		http.StatusNotFound,
		"ORDER_NOT_FOUND",
		"Order not found",
		"",
	)

	// Mail delivery errors. The OTP is already persisted when delivery fails;
	// this error reports the failure without rolling that back.
	ErrMailDeliveryFailed = NewBaseError(
		http.StatusBadGateway,
		"MAIL_DELIVERY_FAILED",
		"Failed to send email",
		"",
	)

	// General errors
	ErrInternalError = NewBaseError(
		http.StatusInternalServerError,
		"INTERNAL_ERROR",
		"Internal server error",
		"",
	)

	ErrNotFound = NewBaseError(
		http.StatusNotFound,
		"NOT_FOUND",
		"Resource not found",
		"",
	)
)

// DatabaseExecuteError represents a database execution error, implementing the AppError interface
type DatabaseExecuteError struct {
	err     error
	details string
}

// NewDatabaseExecuteError creates a database-related error
func NewDatabaseExecuteError(err error, details string) AppError {
	return &DatabaseExecuteError{
		err:     err,
		details: details,
	}
}

// Error implements the error interface
func (e *DatabaseExecuteError) Error() string {
	return errors.Wrap(e.err, "database execution failed").Error()
}

// HTTPCode returns the HTTP status code
func (e *DatabaseExecuteError) HTTPCode() int {
	return http.StatusInternalServerError
}

// ErrorCode returns the business error code
func (e *DatabaseExecuteError) ErrorCode() string {
	return "DATABASE_EXECUTE_FAILED"
}

// Message returns the user-friendly error message
func (e *DatabaseExecuteError) Message() string {
	return "Database execution failed"
}

// Details returns detailed error information
func (e *DatabaseExecuteError) Details() string {
	return e.details
}
