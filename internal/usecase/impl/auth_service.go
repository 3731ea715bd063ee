// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/pkg/errors"
	"go.uber.org/fx"

	"backoffice/config"
	deliverycontext "backoffice/internal/delivery/context"
	"backoffice/internal/domain/entity"
	domainerrors "backoffice/internal/domain/errors"
	"backoffice/internal/domain/repository"
	"backoffice/internal/domain/service"
	"backoffice/internal/usecase"
)

const otpMailSubject = "Password Reset Otp"

// otpMailTemplate is the HTML recovery mail; the two %s verbs are the OTP code
// and its validity window.
const otpMailTemplate = `<!DOCTYPE html>
<html lang="en">
<head>
    <meta charset="UTF-8">
    <title>Password Recovery OTP</title>
</head>
<body>
    <div style="max-width:600px;margin:auto;background:white;padding:30px;border-radius:10px;">
        <div style="text-align:center;"><h2>Password Recovery</h2></div>
        <p>Hello,</p>
        <p>We received a request to reset your password. Please use the following OTP to proceed with resetting your password:</p>
        <div style="font-size:30px;font-weight:bold;color:#007bff;margin:20px 0;text-align:center;">%s</div>
        <p>This OTP is valid for the next %s. If you did not request a password reset, please ignore this email.</p>
        <p>If you have any questions, feel free to contact our support team.</p>
    </div>
</body>
</html>`

// authService implements the AuthUsecase interface. It owns the credential
// state machine (password hashes, the OTP lifecycle) and the token lifecycle.
type authService struct {
	userRepo     repository.UserRepository
	hasher       service.PasswordHasher
	tokenService service.TokenService
	otpGenerator service.OTPGenerator
	mailer       service.Mailer
	clock        service.Clock
	cfg          *config.Config
	logger       *slog.Logger
}

// AuthServiceParams holds dependencies for authService, injected by Fx.
type AuthServiceParams struct {
	fx.In

	UserRepo     repository.UserRepository
	Hasher       service.PasswordHasher
	TokenService service.TokenService
	OTPGenerator service.OTPGenerator
	Mailer       service.Mailer
	Clock        service.Clock
	Config       *config.Config
	Logger       *slog.Logger
}

// NewAuthService is the constructor for authService. It receives all dependencies as interfaces.
func NewAuthService(params AuthServiceParams) usecase.AuthUsecase {
	return &authService{
		userRepo:     params.UserRepo,
		hasher:       params.Hasher,
		tokenService: params.TokenService,
		otpGenerator: params.OTPGenerator,
		mailer:       params.Mailer,
		clock:        params.Clock,
		cfg:          params.Config,
		logger:       params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *authService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// SignUp registers a new back-office user with a hashed password.
func (srv *authService) SignUp(ctx context.Context, input *usecase.SignUpInput) (*usecase.SignUpOutput, error) {
	srv.log(ctx).Info("Starting sign up", slog.String("email", input.Email))

	existing, err := srv.userRepo.FindByEmail(ctx, input.Email)
	if err != nil && !errors.Is(err, repository.ErrUserNotFound) {
		return nil, errors.Wrap(err, "failed to check for existing user")
	}
	if existing != nil {
		srv.log(ctx).Warn("Sign up rejected, email taken", slog.String("email", input.Email))

		return nil, errors.Wrap(domainerrors.ErrUserAlreadyExists, "sign up failed")
	}

	hashed, err := srv.hasher.Hash(input.Password)
	if err != nil {
		srv.log(ctx).Error("Failed to hash password during sign up", slog.Any("error", err))

		return nil, errors.Wrap(domainerrors.ErrPasswordHashFailed, "sign up failed")
	}

	newUser := &entity.User{
		FullName:     input.FullName,
		Email:        input.Email,
		Username:     input.Username,
		PasswordHash: hashed,
		Policy:       input.Policy,
	}

	if err := srv.userRepo.Create(ctx, newUser); err != nil {
		return nil, errors.Wrap(err, "failed to create user during sign up")
	}

	srv.log(ctx).Debug("Sign up completed", slog.String("userID", newUser.ID))

	return &usecase.SignUpOutput{User: toUserInfo(newUser)}, nil
}

// Login verifies the credentials and issues an access/refresh token pair.
func (srv *authService) Login(ctx context.Context, input *usecase.LoginInput) (*usecase.LoginOutput, error) {
	srv.log(ctx).Debug("Starting login", slog.String("email", input.Email))

	user, err := srv.userRepo.FindByEmail(ctx, input.Email)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, errors.Wrap(domainerrors.ErrUserNotFound, "login failed")
		}

		return nil, errors.Wrap(err, "failed to find user for login")
	}

	// bcrypt compare is CPU-bound and constant-time on the hash side.
	if !srv.hasher.Check(input.Password, user.PasswordHash) {
		srv.log(ctx).Warn("Login failed, password mismatch", slog.String("email", input.Email))

		return nil, errors.Wrap(domainerrors.ErrInvalidCredentials, "login failed")
	}

	accessToken, err := srv.tokenService.IssueAccess(user.ID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to issue access token")
	}

	refreshToken, err := srv.tokenService.IssueRefresh(user.ID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to issue refresh token")
	}

	srv.log(ctx).Debug("User logged in", slog.String("userID", user.ID))

	return &usecase.LoginOutput{
		User: toUserInfo(user),
		Token: usecase.TokenPair{
			AccessToken:  accessToken,
			RefreshToken: refreshToken,
		},
	}, nil
}

// ForgotPassword moves the user into the pending-verification state: a fresh
// OTP with a 15 minute expiry is persisted first, then mailed. A delivery
// failure is reported to the caller but the persisted OTP stays valid.
func (srv *authService) ForgotPassword(ctx context.Context, input *usecase.ForgotPasswordInput) error {
	srv.log(ctx).Info("Starting password recovery", slog.String("email", input.Email))

	user, err := srv.userRepo.FindByEmail(ctx, input.Email)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return errors.Wrap(domainerrors.ErrUserNotFound, "password recovery failed")
		}

		return errors.Wrap(err, "failed to find user for password recovery")
	}

	code, err := srv.otpGenerator.Generate()
	if err != nil {
		return errors.Wrap(err, "failed to generate otp")
	}

	ttl := srv.cfg.Auth.OTPTTL
	user.SetOTP(code, srv.clock.Now().Add(ttl))

	if err := srv.userRepo.Update(ctx, user); err != nil {
		return errors.Wrap(err, "failed to persist otp")
	}

	body := fmt.Sprintf(otpMailTemplate, code, formatWindow(ttl))
	if err := srv.mailer.Send(ctx, user.Email, otpMailSubject, body); err != nil {
		// The OTP is already stored; no rollback, the caller just learns
		// delivery failed.
		srv.log(ctx).Error("OTP mail delivery failed", slog.String("email", input.Email), slog.Any("error", err))

		return errors.Wrap(domainerrors.ErrMailDeliveryFailed, "password recovery mail failed")
	}

	srv.log(ctx).Debug("OTP issued", slog.String("userID", user.ID))

	return nil
}

// VerifyOTP checks the supplied passcode and, on success, clears the OTP
// state so the code can be used exactly once.
func (srv *authService) VerifyOTP(ctx context.Context, input *usecase.VerifyOTPInput) error {
	user, err := srv.userRepo.FindByEmail(ctx, input.Email)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return errors.Wrap(domainerrors.ErrUserNotFound, "otp verification failed")
		}

		return errors.Wrap(err, "failed to find user for otp verification")
	}

	if !user.HasPendingOTP() || *user.OTP != input.OTP {
		srv.log(ctx).Warn("OTP verification failed, code mismatch", slog.String("email", input.Email))

		return errors.Wrap(domainerrors.ErrInvalidOTP, "otp verification failed")
	}

	if !srv.clock.Now().Before(*user.OTPExpires) {
		srv.log(ctx).Warn("OTP verification failed, code expired", slog.String("email", input.Email))

		return errors.Wrap(domainerrors.ErrOTPExpired, "otp verification failed")
	}

	user.ClearOTP()
	if err := srv.userRepo.Update(ctx, user); err != nil {
		return errors.Wrap(err, "failed to clear otp")
	}

	srv.log(ctx).Debug("OTP verified", slog.String("userID", user.ID))

	return nil
}

// ResetPassword overwrites the stored password hash. It does not require a
// pending OTP verification; the endpoint trusts the caller's email claim.
// TODO: bind resets to a verified OTP session.
func (srv *authService) ResetPassword(ctx context.Context, input *usecase.ResetPasswordInput) error {
	if input.Password != input.ConfirmPassword {
		return errors.Wrap(domainerrors.ErrValidationFailed, "password confirmation mismatch")
	}
	if len(input.Password) < srv.cfg.Auth.MinPasswordLength {
		return errors.Wrapf(domainerrors.ErrValidationFailed, "password must be at least %d characters", srv.cfg.Auth.MinPasswordLength)
	}

	user, err := srv.userRepo.FindByEmail(ctx, input.Email)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return errors.Wrap(domainerrors.ErrUserNotFound, "password reset failed")
		}

		return errors.Wrap(err, "failed to find user for password reset")
	}

	hashed, err := srv.hasher.Hash(input.Password)
	if err != nil {
		srv.log(ctx).Error("Failed to hash password during reset", slog.Any("error", err))

		return errors.Wrap(domainerrors.ErrPasswordHashFailed, "password reset failed")
	}

	user.PasswordHash = hashed
	if err := srv.userRepo.Update(ctx, user); err != nil {
		return errors.Wrap(err, "failed to persist new password")
	}

	srv.log(ctx).Info("Password updated", slog.String("userID", user.ID))

	return nil
}

// RefreshToken issues a new access token for the user looked up by email,
// provided the refresh token verifies against the refresh secret. The
// refresh token itself is not rotated.
func (srv *authService) RefreshToken(ctx context.Context, input *usecase.RefreshTokenInput) (*usecase.RefreshTokenOutput, error) {
	srv.log(ctx).Debug("Refreshing access token", slog.String("email", input.Email))

	user, err := srv.userRepo.FindByEmail(ctx, input.Email)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, errors.Wrap(domainerrors.ErrUserNotFound, "token refresh failed")
		}

		return nil, errors.Wrap(err, "failed to find user for token refresh")
	}

	if _, err := srv.tokenService.Verify(input.RefreshToken, service.TokenKindRefresh); err != nil {
		srv.log(ctx).Warn("Refresh token rejected", slog.String("email", input.Email), slog.Any("error", err))

		return nil, errors.Wrap(domainerrors.ErrInvalidToken, "token refresh failed")
	}

	accessToken, err := srv.tokenService.IssueAccess(user.ID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to issue access token")
	}

	return &usecase.RefreshTokenOutput{
		UserID:      user.ID,
		AccessToken: accessToken,
	}, nil
}

// formatWindow renders the OTP validity window for the recovery mail,
// e.g. "15 minutes".
func formatWindow(d time.Duration) string {
	if d >= time.Hour && d%time.Hour == 0 {
		hours := int(d / time.Hour)
		if hours == 1 {
			return "1 hour"
		}

		return fmt.Sprintf("%d hours", hours)
	}

	minutes := int(d / time.Minute)
	if minutes == 1 {
		return "1 minute"
	}

	return fmt.Sprintf("%d minutes", minutes)
}

func toUserInfo(user *entity.User) usecase.UserInfo {
	return usecase.UserInfo{
		ID:       user.ID,
		FullName: user.FullName,
		Email:    user.Email,
		Username: user.Username,
		Policy:   user.Policy,
	}
}
