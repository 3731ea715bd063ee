package auth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"backoffice/config"
	domainerrors "backoffice/internal/domain/errors"
	"backoffice/internal/domain/service"
)

func newTestTokenService(t *testing.T, accessTTL time.Duration) service.TokenService {
	t.Helper()

	cfg := &config.Config{
		Token: &config.TokenConfig{
			AccessTTL:  accessTTL,
			RefreshTTL: 168 * time.Hour,
		},
	}
	cfg.SecretKey.Access = "access-secret-for-tests"
	cfg.SecretKey.Refresh = "refresh-secret-for-tests"

	svc, err := NewJWTService(cfg)
	require.NoError(t, err)

	return svc
}

func TestJWTService_AccessTokenRoundTrip(t *testing.T) {
	svc := newTestTokenService(t, 15*time.Minute)

	token, err := svc.IssueAccess("user-123")
	require.NoError(t, err)

	claims, err := svc.Verify(token, service.TokenKindAccess)
	require.NoError(t, err)
	assert.Equal(t, "user-123", claims.UserID)
	assert.Equal(t, service.TokenKindAccess, claims.Kind)
}

func TestJWTService_RefreshTokenRoundTrip(t *testing.T) {
	svc := newTestTokenService(t, 15*time.Minute)

	token, err := svc.IssueRefresh("user-123")
	require.NoError(t, err)

	claims, err := svc.Verify(token, service.TokenKindRefresh)
	require.NoError(t, err)
	assert.Equal(t, "user-123", claims.UserID)
}

func TestJWTService_KindsAreNotInterchangeable(t *testing.T) {
	svc := newTestTokenService(t, 15*time.Minute)

	access, err := svc.IssueAccess("user-123")
	require.NoError(t, err)
	refresh, err := svc.IssueRefresh("user-123")
	require.NoError(t, err)

	// Each kind is signed with its own secret, so cross-verification already
	// fails at the signature.
	_, err = svc.Verify(access, service.TokenKindRefresh)
	assert.ErrorIs(t, err, domainerrors.ErrInvalidToken)

	_, err = svc.Verify(refresh, service.TokenKindAccess)
	assert.ErrorIs(t, err, domainerrors.ErrInvalidToken)
}

func TestJWTService_ExpiredTokenRejected(t *testing.T) {
	svc := newTestTokenService(t, -1*time.Minute)

	token, err := svc.IssueAccess("user-123")
	require.NoError(t, err)

	_, err = svc.Verify(token, service.TokenKindAccess)
	assert.ErrorIs(t, err, domainerrors.ErrInvalidToken)
}

func TestJWTService_GarbageTokenRejected(t *testing.T) {
	svc := newTestTokenService(t, 15*time.Minute)

	_, err := svc.Verify("not.a.token", service.TokenKindAccess)
	assert.ErrorIs(t, err, domainerrors.ErrInvalidToken)
}

func TestJWTService_RequiresSecrets(t *testing.T) {
	cfg := &config.Config{Token: &config.TokenConfig{}}

	_, err := NewJWTService(cfg)
	assert.Error(t, err)
}
