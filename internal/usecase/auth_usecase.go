// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import "context"

// --- Input DTOs ---

// SignUpInput defines the data required to register a new back-office user.
type SignUpInput struct {
	FullName string `json:"full_name" validate:"required"`
	Email    string `json:"email" validate:"required,email"`
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
	Policy   bool   `json:"policy"`
}

// LoginInput defines the data required for a user to log in.
type LoginInput struct {
	Email    string `json:"email" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// ForgotPasswordInput starts the OTP-based password recovery flow.
type ForgotPasswordInput struct {
	Email string `json:"email" validate:"required,email"`
}

// VerifyOTPInput carries the passcode a user received by email.
type VerifyOTPInput struct {
	Email string `json:"email" validate:"required,email"`
	OTP   string `json:"otp" validate:"required"`
}

// ResetPasswordInput overwrites a user's password. ConfirmPassword must equal
// Password and the password must meet the configured minimum length.
type ResetPasswordInput struct {
	Email           string `json:"email" validate:"required,email"`
	Password        string `json:"password" validate:"required,min=8"`
	ConfirmPassword string `json:"confirmPassword" validate:"required,eqfield=Password"`
}

// RefreshTokenInput exchanges a refresh token for a fresh access token.
type RefreshTokenInput struct {
	Email        string `json:"email" validate:"required"`
	RefreshToken string `json:"refreshToken" validate:"required"`
}

// --- Output DTOs ---

// UserInfo is the caller-visible projection of a user. The password hash and
// OTP state never leave the application layer.
type UserInfo struct {
	ID       string `json:"id"`
	FullName string `json:"full_name"`
	Email    string `json:"email"`
	Username string `json:"username"`
	Policy   bool   `json:"policy"`
}

// SignUpOutput returns the newly created user's basic information.
type SignUpOutput struct {
	User UserInfo `json:"user"`
}

// TokenPair carries the two credentials issued at login.
type TokenPair struct {
	AccessToken  string `json:"accessToken"`
	RefreshToken string `json:"refreshToken"`
}

// LoginOutput returns the generated tokens after a successful login.
type LoginOutput struct {
	User  UserInfo  `json:"user"`
	Token TokenPair `json:"token"`
}

// RefreshTokenOutput returns the replacement access token. The refresh token
// itself is not rotated.
type RefreshTokenOutput struct {
	UserID      string `json:"id"`
	AccessToken string `json:"accessToken"`
}

// AuthUsecase defines the interface for credential and token lifecycle
// operations. This is the contract the delivery layer depends on.
type AuthUsecase interface {
	SignUp(ctx context.Context, input *SignUpInput) (*SignUpOutput, error)
	Login(ctx context.Context, input *LoginInput) (*LoginOutput, error)
	ForgotPassword(ctx context.Context, input *ForgotPasswordInput) error
	VerifyOTP(ctx context.Context, input *VerifyOTPInput) error
	ResetPassword(ctx context.Context, input *ResetPasswordInput) error
	RefreshToken(ctx context.Context, input *RefreshTokenInput) (*RefreshTokenOutput, error)
}
