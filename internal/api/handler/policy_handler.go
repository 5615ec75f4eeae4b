package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/propview/real-estate-api/internal/core/domain"
	"github.com/propview/real-estate-api/internal/core/ports"
)

// PolicyHandler handles HTTP requests for role policies. Every operation is
// scoped to the caller's company, taken from the verified token claims.
type PolicyHandler struct {
	service ports.PolicyService
}

func NewPolicyHandler(service ports.PolicyService) *PolicyHandler {
	return &PolicyHandler{service: service}
}

type policyRequest struct {
	Role      string   `json:"role"       validate:"required"`
	MenuItems []string `json:"menu_items" validate:"required,min=1,dive,oneof=dashboard users properties compounds developers bookings policies"`
}

type listPoliciesQuery struct {
	Page  int `query:"page"  validate:"omitempty,min=1"`
	Limit int `query:"limit" validate:"omitempty,min=1,max=100"`
}

func (h *PolicyHandler) bindPolicy(c echo.Context) (ports.PolicyInput, string, error) {
	var req policyRequest
	if err := c.Bind(&req); err != nil {
		return ports.PolicyInput{}, "", echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return ports.PolicyInput{}, "", echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	claims, err := ctxClaims(c)
	if err != nil {
		return ports.PolicyInput{}, "", err
	}
	if claims.CompanyID == "" {
		return ports.PolicyInput{}, "", echo.NewHTTPError(http.StatusUnauthorized, "token missing company identity")
	}

	items := make([]domain.MenuItem, 0, len(req.MenuItems))
	for _, m := range req.MenuItems {
		items = append(items, domain.MenuItem(m))
	}
	return ports.PolicyInput{Role: req.Role, MenuItems: items}, claims.CompanyID, nil
}

func companyFromClaims(c echo.Context) (string, error) {
	claims, err := ctxClaims(c)
	if err != nil {
		return "", err
	}
	if claims.CompanyID == "" {
		return "", echo.NewHTTPError(http.StatusUnauthorized, "token missing company identity")
	}
	return claims.CompanyID, nil
}

// Create handles POST /user-policy/create.
func (h *PolicyHandler) Create(c echo.Context) error {
	input, companyID, err := h.bindPolicy(c)
	if err != nil {
		return err
	}

	policy, err := h.service.Create(c.Request().Context(), companyID, input)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, policy)
}

// Update handles PUT /user-policy/update/:id.
func (h *PolicyHandler) Update(c echo.Context) error {
	id := c.Param("id")
	if _, err := primitive.ObjectIDFromHex(id); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid policy id")
	}

	input, companyID, err := h.bindPolicy(c)
	if err != nil {
		return err
	}

	policy, err := h.service.Update(c.Request().Context(), id, companyID, input)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, policy)
}

// Delete handles DELETE /user-policy/delete/:id.
func (h *PolicyHandler) Delete(c echo.Context) error {
	id := c.Param("id")
	if _, err := primitive.ObjectIDFromHex(id); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid policy id")
	}

	companyID, err := companyFromClaims(c)
	if err != nil {
		return err
	}

	policy, err := h.service.Delete(c.Request().Context(), id, companyID)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, policy)
}

// GetForRole handles GET /user-policy/get/one/:role.
func (h *PolicyHandler) GetForRole(c echo.Context) error {
	companyID, err := companyFromClaims(c)
	if err != nil {
		return err
	}

	policy, err := h.service.GetForRole(c.Request().Context(), c.Param("role"), companyID)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, policy)
}

// ListForCompany handles GET /user-policy/get/company.
func (h *PolicyHandler) ListForCompany(c echo.Context) error {
	var q listPoliciesQuery
	if err := c.Bind(&q); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid query parameters")
	}
	if err := c.Validate(&q); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	companyID, err := companyFromClaims(c)
	if err != nil {
		return err
	}

	policies, err := h.service.ListForCompany(c.Request().Context(), companyID, q.Page, q.Limit)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, policies)
}
