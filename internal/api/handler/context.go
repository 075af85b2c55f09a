package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/cartences/cartences-api/internal/api/middleware"
	"github.com/cartences/cartences-api/internal/core/domain"
)

// ctxClaims extracts the claims injected by the RequireRole middleware. Their
// presence proves the gate ran; a protected handler reached without them is a
// wiring bug and rejects with 401.
func ctxClaims(c echo.Context) (*domain.Claims, error) {
	claims, _ := c.Get(middleware.ClaimsKey).(*domain.Claims)
	if claims == nil {
		return nil, echo.NewHTTPError(http.StatusUnauthorized, "missing authentication claims")
	}
	return claims, nil
}
