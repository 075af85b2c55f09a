package middleware

import (
	"errors"

	"github.com/labstack/echo/v4"

	"github.com/cartences/cartences-api/internal/api/metrics"
	"github.com/cartences/cartences-api/internal/core/domain"
	"github.com/cartences/cartences-api/internal/core/ports"
)

// Context keys populated on successful authorization.
const (
	ClaimsKey   = "claims"
	UsernameKey = "username"
	RoleKey     = "role"
)

// RequireRole guards a route behind the authorization gate. The raw
// Authorization header is handed to the gate as-is, missing or prefix-less
// values included; the token verifier is the single place that rejects them.
func RequireRole(gate ports.Authorizer, role string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			raw := c.Request().Header.Get("Authorization")

			claims, err := gate.RequireRole(c.Request().Context(), raw, role)
			if err != nil {
				switch {
				case errors.Is(err, domain.ErrTokenInvalid):
					metrics.AuthzDeniedTotal.WithLabelValues("invalid_token").Inc()
				case errors.Is(err, domain.ErrRoleForbidden):
					metrics.AuthzDeniedTotal.WithLabelValues("forbidden").Inc()
				}
				return err
			}

			c.Set(ClaimsKey, claims)
			c.Set(UsernameKey, claims.Username)
			c.Set(RoleKey, claims.Role)
			return next(c)
		}
	}
}
