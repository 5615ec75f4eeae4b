package middleware

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/propview/real-estate-api/internal/api/metrics"
	"github.com/propview/real-estate-api/internal/core/domain"
	"github.com/propview/real-estate-api/internal/core/ports"
)

// RequireMenuItem gates a route behind the role policy of the caller's
// company. The caller's role must have a policy whose menu items include
// item; a missing company, missing policy, or absent item all deny with 401
// so the client treats the route as requiring a fresh session.
func RequireMenuItem(item domain.MenuItem, policies ports.PolicyService) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			role, _ := c.Get("role").(string)
			companyID, _ := c.Get("company_id").(string)

			if role == "" || companyID == "" {
				metrics.PolicyDenialsTotal.WithLabelValues("no_policy").Inc()
				return echo.NewHTTPError(http.StatusUnauthorized, domain.ErrNoPolicyForRole.Error())
			}

			policy, err := policies.GetForRole(c.Request().Context(), role, companyID)
			if err != nil {
				if errors.Is(err, domain.ErrPolicyNotFound) {
					metrics.PolicyDenialsTotal.WithLabelValues("no_policy").Inc()
					return echo.NewHTTPError(http.StatusUnauthorized, domain.ErrNoPolicyForRole.Error())
				}
				return err
			}

			if !policy.Permits(item) {
				metrics.PolicyDenialsTotal.WithLabelValues("not_permitted").Inc()
				return echo.NewHTTPError(http.StatusUnauthorized, domain.ErrMenuItemNotPermitted.Error())
			}

			return next(c)
		}
	}
}
