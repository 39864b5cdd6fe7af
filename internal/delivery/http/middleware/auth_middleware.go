package middleware

import (
	"net/http"
	"strings"

	"roster/internal/domain/entity"
	"roster/internal/usecase"

	"github.com/labstack/echo/v4"
)

// ContextAccountKey is the echo context key the authenticated account is stored under.
const ContextAccountKey = "account"

// AuthMiddleware authenticates requests carrying an opaque persisted token.
type AuthMiddleware struct {
	auth usecase.AuthUsecase
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(auth usecase.AuthUsecase) *AuthMiddleware {
	return &AuthMiddleware{auth: auth}
}

// Authenticate validates the "Authorization: Token <key>" header, resolves the
// account, and stores it on the context for handlers to use.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		authHeader := c.Request().Header.Get("Authorization")
		if authHeader == "" {
			return c.JSON(http.StatusUnauthorized, map[string]string{"error": "Authorization header is missing"})
		}

		key := strings.TrimPrefix(authHeader, "Token ")
		if key == authHeader || key == "" {
			return c.JSON(http.StatusUnauthorized, map[string]string{"error": "Invalid token format, must be Token key"})
		}

		account, err := m.auth.AccountForToken(c.Request().Context(), key)
		if err != nil {
			return c.JSON(http.StatusUnauthorized, map[string]string{"error": "Invalid token"})
		}

		c.Set(ContextAccountKey, account)

		return next(c)
	}
}

// RequireStaff gates staff-only routes. It must be used AFTER Authenticate.
func (m *AuthMiddleware) RequireStaff(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		account, ok := c.Get(ContextAccountKey).(*entity.Account)
		if !ok {
			return c.JSON(http.StatusForbidden, map[string]string{"error": "Permission denied: account information missing"})
		}

		if !account.IsStaff {
			return c.JSON(http.StatusForbidden, map[string]string{"error": "Permission denied: staff access required"})
		}

		return next(c)
	}
}

// AccountFromContext returns the authenticated account stored by Authenticate.
func AccountFromContext(c echo.Context) (*entity.Account, bool) {
	account, ok := c.Get(ContextAccountKey).(*entity.Account)

	return account, ok
}
