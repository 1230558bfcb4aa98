package auth

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/rackd/rackd/internal/config"
)

// ContextKeyClaims is the key for storing JWT claims in the request context.
const ContextKeyClaims = "claims"

// Middleware enforces token authentication on API routes. All checks pass
// through unchanged when authentication is disabled in the configuration.
type Middleware struct {
	jwtService *JWTService
	config     *config.Config
}

// NewMiddleware creates the authentication middleware.
func NewMiddleware(cfg *config.Config) *Middleware {
	return &Middleware{
		jwtService: NewJWTService(cfg),
		config:     cfg,
	}
}

// RequireAuth rejects requests without a valid Bearer token.
func (m *Middleware) RequireAuth(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		if !m.config.Security.AuthEnabled {
			return next(c)
		}

		authHeader := c.Request().Header.Get("Authorization")
		if authHeader == "" {
			return echo.NewHTTPError(http.StatusUnauthorized, "missing authorization header")
		}

		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || parts[0] != "Bearer" {
			return echo.NewHTTPError(http.StatusUnauthorized, "invalid authorization header format")
		}

		claims, err := m.jwtService.ValidateToken(parts[1])
		if err != nil {
			if err == ErrExpiredToken {
				return echo.NewHTTPError(http.StatusUnauthorized, "token has expired")
			}
			return echo.NewHTTPError(http.StatusUnauthorized, "invalid token")
		}

		c.Set(ContextKeyClaims, claims)
		return next(c)
	}
}

// RequireWrite additionally requires the operator role.
func (m *Middleware) RequireWrite(next echo.HandlerFunc) echo.HandlerFunc {
	return m.RequireAuth(func(c echo.Context) error {
		if !m.config.Security.AuthEnabled {
			return next(c)
		}
		claims, ok := GetClaims(c)
		if !ok {
			return echo.NewHTTPError(http.StatusUnauthorized, "authentication required")
		}
		for _, r := range claims.Roles {
			if r == RoleOperator {
				return next(c)
			}
		}
		return echo.NewHTTPError(http.StatusForbidden, "insufficient permissions")
	})
}

// GetClaims extracts JWT claims from the request context.
func GetClaims(c echo.Context) (*Claims, bool) {
	claims, ok := c.Get(ContextKeyClaims).(*Claims)
	return claims, ok
}
