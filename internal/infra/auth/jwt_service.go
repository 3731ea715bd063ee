// Package auth provides concrete implementations for authentication-related domain services.
package auth

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/pkg/errors"

	"backoffice/config"
	domainerrors "backoffice/internal/domain/errors"
	"backoffice/internal/domain/service"
)

// jwtService is a concrete implementation of the TokenService interface using the JWT standard.
type jwtService struct {
	accessSecret  string        // Secret key for signing access tokens.
	refreshSecret string        // Secret key for signing refresh tokens.
	accessTTL     time.Duration // Time-to-live for access tokens.
	refreshTTL    time.Duration // Time-to-live for refresh tokens.
}

// tokenClaims carries the user id alongside the registered claims. The
// token kind travels in the registered Subject field.
type tokenClaims struct {
	UserID string `json:"id"`
	jwt.RegisteredClaims
}

// NewJWTService is the constructor for jwtService.
// It takes configuration values to create a new token service instance.
func NewJWTService(cfg *config.Config) (service.TokenService, error) {
	if cfg.SecretKey.Access == "" || cfg.SecretKey.Refresh == "" {
		return nil, errors.New("jwt secrets must be provided")
	}

	return &jwtService{
		accessSecret:  cfg.SecretKey.Access,
		refreshSecret: cfg.SecretKey.Refresh,
		accessTTL:     cfg.Token.AccessTTL,
		refreshTTL:    cfg.Token.RefreshTTL,
	}, nil
}

// IssueAccess signs a short-lived access token bound to the user id.
func (s *jwtService) IssueAccess(userID string) (string, error) {
	return s.issue(userID, service.TokenKindAccess, s.accessTTL, s.accessSecret)
}

// IssueRefresh signs a longer-lived refresh token bound to the user id.
func (s *jwtService) IssueRefresh(userID string) (string, error) {
	return s.issue(userID, service.TokenKindRefresh, s.refreshTTL, s.refreshSecret)
}

// Verify checks a token against the secret for its expected kind. A bad
// signature, an expired token and a subject mismatch all come back as the
// same invalid-token error.
func (s *jwtService) Verify(tokenString string, kind service.TokenKind) (*service.Claims, error) {
	secret := s.accessSecret
	if kind == service.TokenKindRefresh {
		secret = s.refreshSecret
	}

	claims := &tokenClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (any, error) {
		// Ensure the signing method is what we expect.
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}

		return []byte(secret), nil
	})
	if err != nil || !token.Valid {
		return nil, errors.Wrap(domainerrors.ErrInvalidToken, "token verification failed")
	}

	if claims.Subject != string(kind) {
		return nil, errors.Wrapf(domainerrors.ErrInvalidToken, "unexpected token subject %q", claims.Subject)
	}

	return &service.Claims{
		UserID: claims.UserID,
		Kind:   kind,
	}, nil
}

// issue is a private helper to create a JWT with specific claims.
func (s *jwtService) issue(userID string, kind service.TokenKind, ttl time.Duration, secret string) (string, error) {
	now := time.Now()
	claims := tokenClaims{
		UserID: userID,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   string(kind),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)

	signed, err := token.SignedString([]byte(secret))
	if err != nil {
		return "", errors.Wrap(err, "failed to sign token")
	}

	return signed, nil
}
