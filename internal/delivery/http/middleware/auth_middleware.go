package middleware

import (
	"strings"

	"github.com/labstack/echo/v4"

	"backoffice/internal/delivery/http/response"
	"backoffice/internal/domain/service"
)

// ContextKeyUserID is the echo context key the authenticated user id is
// stored under.
const ContextKeyUserID = "userID"

// AuthMiddleware provides middleware for JWT authentication.
type AuthMiddleware struct {
	tokenSvc service.TokenService
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(tokenSvc service.TokenService) *AuthMiddleware {
	return &AuthMiddleware{tokenSvc: tokenSvc}
}

// Authenticate validates the Bearer access token and stores the caller's user
// id on the context. Refresh tokens are rejected here; they are only good for
// the refresh endpoint.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		authHeader := c.Request().Header.Get("Authorization")
		if authHeader == "" {
			return response.Unauthorized(c, "MISSING_TOKEN", "Authorization header is missing")
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		if tokenString == authHeader {
			return response.Unauthorized(c, "INVALID_TOKEN_FORMAT", "Invalid token format, must be Bearer token")
		}

		claims, err := m.tokenSvc.Verify(tokenString, service.TokenKindAccess)
		if err != nil {
			return response.Unauthorized(c, "INVALID_TOKEN", "Invalid or expired token")
		}

		c.Set(ContextKeyUserID, claims.UserID)

		return next(c)
	}
}
