package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/propview/real-estate-api/internal/core/domain"
	"github.com/propview/real-estate-api/internal/core/ports"
)

// UserHandler handles admin-only user management.
type UserHandler struct {
	service ports.UserService
}

func NewUserHandler(service ports.UserService) *UserHandler {
	return &UserHandler{service: service}
}

type createUserRequest struct {
	Name      string `json:"name"       validate:"required"`
	Username  string `json:"username"   validate:"required,min=3"`
	Password  string `json:"password"   validate:"required,min=8"`
	Role      string `json:"role"       validate:"omitempty,oneof=admin user"`
	CompanyID string `json:"company_id" validate:"omitempty,len=24,hexadecimal"`
}

// Create registers a new account on behalf of an administrator.
func (h *UserHandler) Create(c echo.Context) error {
	var req createUserRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	user, err := h.service.Create(c.Request().Context(), ports.CreateUserInput{
		Name:      req.Name,
		Username:  req.Username,
		Password:  req.Password,
		Role:      req.Role,
		CompanyID: req.CompanyID,
	})
	if err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, map[string]*domain.User{"user": user})
}
