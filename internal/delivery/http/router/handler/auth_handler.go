// Package handler contains the HTTP handlers for the application.
package handler

import (
	"log/slog"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"backoffice/internal/delivery/http/response"
	"backoffice/internal/usecase"
)

// AuthHandler holds dependencies for authentication-related handlers.
type AuthHandler struct {
	uc     usecase.AuthUsecase
	logger *slog.Logger
}

// NewAuthHandler is the constructor for AuthHandler, injected by Fx.
func NewAuthHandler(uc usecase.AuthUsecase, logger *slog.Logger) *AuthHandler {
	return &AuthHandler{
		uc:     uc,
		logger: logger,
	}
}

// SignUp handles the account registration request.
func (h *AuthHandler) SignUp(c echo.Context) error {
	var input *usecase.SignUpInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid signup input")
	}
	if err := c.Validate(input); err != nil {
		return errors.WithStack(err)
	}

	output, err := h.uc.SignUp(c.Request().Context(), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, output.User, "User registered successfully")
}

// Login handles the login request.
func (h *AuthHandler) Login(c echo.Context) error {
	var input *usecase.LoginInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid login input")
	}
	if err := c.Validate(input); err != nil {
		return errors.WithStack(err)
	}

	output, err := h.uc.Login(c.Request().Context(), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, output, "Login successful")
}

// ForgotPassword issues a password-reset passcode by email.
func (h *AuthHandler) ForgotPassword(c echo.Context) error {
	var input *usecase.ForgotPasswordInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid forgot-password input")
	}
	if err := c.Validate(input); err != nil {
		return errors.WithStack(err)
	}

	if err := h.uc.ForgotPassword(c.Request().Context(), input); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "OTP sent to your email")
}

// VerifyOTP checks the passcode a user received by email.
func (h *AuthHandler) VerifyOTP(c echo.Context) error {
	var input *usecase.VerifyOTPInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid OTP input")
	}
	if err := c.Validate(input); err != nil {
		return errors.WithStack(err)
	}

	if err := h.uc.VerifyOTP(c.Request().Context(), input); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "OTP verified successfully")
}

// ResetPassword overwrites the password after OTP verification.
func (h *AuthHandler) ResetPassword(c echo.Context) error {
	var input *usecase.ResetPasswordInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid reset-password input")
	}
	if err := c.Validate(input); err != nil {
		return errors.WithStack(err)
	}

	if err := h.uc.ResetPassword(c.Request().Context(), input); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Password reset successfully")
}

// RefreshToken exchanges a refresh token for a new access token.
func (h *AuthHandler) RefreshToken(c echo.Context) error {
	var input *usecase.RefreshTokenInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid refresh token input")
	}
	if err := c.Validate(input); err != nil {
		return errors.WithStack(err)
	}

	output, err := h.uc.RefreshToken(c.Request().Context(), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, output, "Token refreshed successfully")
}
