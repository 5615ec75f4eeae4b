package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/propview/real-estate-api/internal/core/domain"
)

// ctxClaims extracts the auth claims injected by the Auth middleware and
// performs a fast-fail check before any service call: user id and role must
// be non-empty (presence proves the middleware ran).
func ctxClaims(c echo.Context) (domain.Claims, error) {
	claims := domain.Claims{}
	claims.UserID, _ = c.Get("user_id").(string)
	claims.Name, _ = c.Get("name").(string)
	claims.Username, _ = c.Get("username").(string)
	claims.Role, _ = c.Get("role").(string)
	claims.CompanyID, _ = c.Get("company_id").(string)

	if claims.UserID == "" || claims.Role == "" {
		return domain.Claims{}, echo.NewHTTPError(http.StatusUnauthorized, "missing authentication claims")
	}
	return claims, nil
}
