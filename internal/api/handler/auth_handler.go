package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/propview/real-estate-api/internal/api/metrics"
	"github.com/propview/real-estate-api/internal/core/domain"
	"github.com/propview/real-estate-api/internal/core/ports"
)

type AuthHandler struct {
	authService ports.AuthService
}

func NewAuthHandler(authService ports.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

type loginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

type loginResponse struct {
	AccessToken string `json:"access_token"`
	Name        string `json:"name"`
	Username    string `json:"username"`
	Role        string `json:"role"`
}

type claimsResponse struct {
	UserID    string `json:"user_id"`
	Name      string `json:"name"`
	Username  string `json:"username"`
	Role      string `json:"role"`
	CompanyID string `json:"company_id,omitempty"`
}

// Login verifies credentials and returns a session token. A wrong password
// and an unknown username are indistinguishable to the caller.
func (h *AuthHandler) Login(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	result, err := h.authService.Login(c.Request().Context(), req.Username, req.Password)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidCredentials) {
			metrics.LoginsTotal.WithLabelValues("failure").Inc()
		}
		return err
	}

	metrics.LoginsTotal.WithLabelValues("success").Inc()
	return c.JSON(http.StatusOK, loginResponse{
		AccessToken: result.AccessToken,
		Name:        result.Name,
		Username:    result.Username,
		Role:        result.Role,
	})
}

// ValidateToken echoes back the verified claims. The Auth middleware has
// already rejected the request if the token is missing, malformed or expired.
func (h *AuthHandler) ValidateToken(c echo.Context) error {
	claims, err := ctxClaims(c)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, claimsResponse{
		UserID:    claims.UserID,
		Name:      claims.Name,
		Username:  claims.Username,
		Role:      claims.Role,
		CompanyID: claims.CompanyID,
	})
}
