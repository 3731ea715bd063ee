package impl

import (
	"context"
	"io"
	"log/slog"
	"strings"
	"testing"
	"time"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"backoffice/config"
	domainerrors "backoffice/internal/domain/errors"
	"backoffice/internal/usecase"
)

// authServiceFixtures holds all test dependencies for auth service tests.
type authServiceFixtures struct {
	service      usecase.AuthUsecase
	userRepo     *fakeUserRepo
	hasher       *stubHasher
	tokenService *stubTokenService
	otpGenerator *stubOTPGenerator
	mailer       *fakeMailer
	clock        *fixedClock
}

func createTestAuthService(t *testing.T) authServiceFixtures {
	t.Helper()

	userRepo := newFakeUserRepo()
	hasher := &stubHasher{}
	tokenService := &stubTokenService{}
	otpGenerator := &stubOTPGenerator{code: "482913"}
	mailer := &fakeMailer{}
	clock := &fixedClock{now: time.Date(2024, 5, 10, 12, 0, 0, 0, time.UTC)}

	cfg := &config.Config{
		Auth: &config.AuthConfig{
			BcryptCost:        10,
			OTPTTL:            15 * time.Minute,
			MinPasswordLength: 8,
		},
	}

	service := NewAuthService(AuthServiceParams{
		UserRepo:     userRepo,
		Hasher:       hasher,
		TokenService: tokenService,
		OTPGenerator: otpGenerator,
		Mailer:       mailer,
		Clock:        clock,
		Config:       cfg,
		Logger:       slog.New(slog.NewTextHandler(io.Discard, nil)),
	})

	return authServiceFixtures{
		service:      service,
		userRepo:     userRepo,
		hasher:       hasher,
		tokenService: tokenService,
		otpGenerator: otpGenerator,
		mailer:       mailer,
		clock:        clock,
	}
}

func signUpTestUser(t *testing.T, fx authServiceFixtures) *usecase.UserInfo {
	t.Helper()

	output, err := fx.service.SignUp(context.Background(), &usecase.SignUpInput{
		FullName: "Jordan Example",
		Email:    "jordan@example.com",
		Username: "jordan",
		Password: "sw0rdfish!",
		Policy:   true,
	})
	require.NoError(t, err)

	return &output.User
}

func TestAuthService_SignUp_Success(t *testing.T) {
	fx := createTestAuthService(t)

	user := signUpTestUser(t, fx)

	assert.NotEmpty(t, user.ID)
	assert.Equal(t, "jordan@example.com", user.Email)

	stored, err := fx.userRepo.FindByEmail(context.Background(), "jordan@example.com")
	require.NoError(t, err)
	assert.Equal(t, "hashed:sw0rdfish!", stored.PasswordHash)
}

func TestAuthService_SignUp_DuplicateEmail(t *testing.T) {
	fx := createTestAuthService(t)
	signUpTestUser(t, fx)

	_, err := fx.service.SignUp(context.Background(), &usecase.SignUpInput{
		FullName: "Someone Else",
		Email:    "jordan@example.com",
		Username: "other",
		Password: "different-pw",
	})

	assert.ErrorIs(t, err, domainerrors.ErrUserAlreadyExists)
}

func TestAuthService_Login_Success(t *testing.T) {
	fx := createTestAuthService(t)
	user := signUpTestUser(t, fx)

	output, err := fx.service.Login(context.Background(), &usecase.LoginInput{
		Email:    "jordan@example.com",
		Password: "sw0rdfish!",
	})

	require.NoError(t, err)
	assert.Equal(t, "access-"+user.ID, output.Token.AccessToken)
	assert.Equal(t, "refresh-"+user.ID, output.Token.RefreshToken)
	assert.Equal(t, user.ID, output.User.ID)
}

func TestAuthService_Login_WrongPassword(t *testing.T) {
	fx := createTestAuthService(t)
	signUpTestUser(t, fx)

	_, err := fx.service.Login(context.Background(), &usecase.LoginInput{
		Email:    "jordan@example.com",
		Password: "not-the-password",
	})

	assert.ErrorIs(t, err, domainerrors.ErrInvalidCredentials)
}

func TestAuthService_Login_UnknownEmail(t *testing.T) {
	fx := createTestAuthService(t)

	_, err := fx.service.Login(context.Background(), &usecase.LoginInput{
		Email:    "nobody@example.com",
		Password: "whatever",
	})

	assert.ErrorIs(t, err, domainerrors.ErrUserNotFound)
}

func TestAuthService_ForgotPassword_PersistsAndMailsOTP(t *testing.T) {
	fx := createTestAuthService(t)
	user := signUpTestUser(t, fx)

	err := fx.service.ForgotPassword(context.Background(), &usecase.ForgotPasswordInput{
		Email: "jordan@example.com",
	})
	require.NoError(t, err)

	stored, err := fx.userRepo.FindByID(context.Background(), user.ID)
	require.NoError(t, err)
	require.True(t, stored.HasPendingOTP())
	assert.Equal(t, "482913", *stored.OTP)
	assert.Equal(t, fx.clock.now.Add(15*time.Minute), *stored.OTPExpires)

	require.Len(t, fx.mailer.sent, 1)
	assert.Equal(t, "jordan@example.com", fx.mailer.sent[0].to)
	assert.Equal(t, "Password Reset Otp", fx.mailer.sent[0].subject)
	assert.True(t, strings.Contains(fx.mailer.sent[0].body, "482913"))
	assert.True(t, strings.Contains(fx.mailer.sent[0].body, "15 minutes"))
}

func TestAuthService_ForgotPassword_MailFailureKeepsOTP(t *testing.T) {
	fx := createTestAuthService(t)
	user := signUpTestUser(t, fx)
	fx.mailer.sendErr = errors.New("smtp connection refused")

	err := fx.service.ForgotPassword(context.Background(), &usecase.ForgotPasswordInput{
		Email: "jordan@example.com",
	})
	assert.ErrorIs(t, err, domainerrors.ErrMailDeliveryFailed)

	// The stored passcode stays valid even though delivery failed.
	stored, findErr := fx.userRepo.FindByID(context.Background(), user.ID)
	require.NoError(t, findErr)
	assert.True(t, stored.HasPendingOTP())
}

func TestAuthService_VerifyOTP_Success(t *testing.T) {
	fx := createTestAuthService(t)
	user := signUpTestUser(t, fx)

	require.NoError(t, fx.service.ForgotPassword(context.Background(), &usecase.ForgotPasswordInput{
		Email: "jordan@example.com",
	}))

	err := fx.service.VerifyOTP(context.Background(), &usecase.VerifyOTPInput{
		Email: "jordan@example.com",
		OTP:   "482913",
	})
	require.NoError(t, err)

	// Single use: the passcode is cleared and a replay is rejected.
	stored, findErr := fx.userRepo.FindByID(context.Background(), user.ID)
	require.NoError(t, findErr)
	assert.False(t, stored.HasPendingOTP())

	err = fx.service.VerifyOTP(context.Background(), &usecase.VerifyOTPInput{
		Email: "jordan@example.com",
		OTP:   "482913",
	})
	assert.ErrorIs(t, err, domainerrors.ErrInvalidOTP)
}

func TestAuthService_VerifyOTP_WrongCode(t *testing.T) {
	fx := createTestAuthService(t)
	signUpTestUser(t, fx)

	require.NoError(t, fx.service.ForgotPassword(context.Background(), &usecase.ForgotPasswordInput{
		Email: "jordan@example.com",
	}))

	err := fx.service.VerifyOTP(context.Background(), &usecase.VerifyOTPInput{
		Email: "jordan@example.com",
		OTP:   "000000",
	})

	assert.ErrorIs(t, err, domainerrors.ErrInvalidOTP)
}

func TestAuthService_VerifyOTP_Expired(t *testing.T) {
	fx := createTestAuthService(t)
	signUpTestUser(t, fx)

	require.NoError(t, fx.service.ForgotPassword(context.Background(), &usecase.ForgotPasswordInput{
		Email: "jordan@example.com",
	}))

	// Advance past the 15 minute window. The boundary instant itself counts
	// as expired.
	fx.clock.now = fx.clock.now.Add(15 * time.Minute)

	err := fx.service.VerifyOTP(context.Background(), &usecase.VerifyOTPInput{
		Email: "jordan@example.com",
		OTP:   "482913",
	})

	assert.ErrorIs(t, err, domainerrors.ErrOTPExpired)
}

func TestAuthService_ResetPassword_Success(t *testing.T) {
	fx := createTestAuthService(t)
	signUpTestUser(t, fx)

	err := fx.service.ResetPassword(context.Background(), &usecase.ResetPasswordInput{
		Email:           "jordan@example.com",
		Password:        "new-password-1",
		ConfirmPassword: "new-password-1",
	})
	require.NoError(t, err)

	_, err = fx.service.Login(context.Background(), &usecase.LoginInput{
		Email:    "jordan@example.com",
		Password: "new-password-1",
	})
	require.NoError(t, err)
}

func TestAuthService_ResetPassword_ConfirmMismatch(t *testing.T) {
	fx := createTestAuthService(t)
	signUpTestUser(t, fx)

	err := fx.service.ResetPassword(context.Background(), &usecase.ResetPasswordInput{
		Email:           "jordan@example.com",
		Password:        "new-password-1",
		ConfirmPassword: "new-password-2",
	})

	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
}

func TestAuthService_ResetPassword_TooShort(t *testing.T) {
	fx := createTestAuthService(t)
	signUpTestUser(t, fx)

	err := fx.service.ResetPassword(context.Background(), &usecase.ResetPasswordInput{
		Email:           "jordan@example.com",
		Password:        "short",
		ConfirmPassword: "short",
	})

	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
}

func TestAuthService_RefreshToken_Success(t *testing.T) {
	fx := createTestAuthService(t)
	user := signUpTestUser(t, fx)

	output, err := fx.service.RefreshToken(context.Background(), &usecase.RefreshTokenInput{
		Email:        "jordan@example.com",
		RefreshToken: "refresh-" + user.ID,
	})

	require.NoError(t, err)
	assert.Equal(t, user.ID, output.UserID)
	assert.Equal(t, "access-"+user.ID, output.AccessToken)
}

func TestAuthService_RefreshToken_RejectsAccessToken(t *testing.T) {
	fx := createTestAuthService(t)
	user := signUpTestUser(t, fx)

	_, err := fx.service.RefreshToken(context.Background(), &usecase.RefreshTokenInput{
		Email:        "jordan@example.com",
		RefreshToken: "access-" + user.ID,
	})

	assert.ErrorIs(t, err, domainerrors.ErrInvalidToken)
}
