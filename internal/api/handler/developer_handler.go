package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/propview/real-estate-api/internal/api/metrics"
	"github.com/propview/real-estate-api/internal/core/ports"
)

// DeveloperHandler handles HTTP requests for developer companies.
type DeveloperHandler struct {
	service  ports.DeveloperService
	uploader ports.ImageUploader
}

func NewDeveloperHandler(service ports.DeveloperService, uploader ports.ImageUploader) *DeveloperHandler {
	return &DeveloperHandler{service: service, uploader: uploader}
}

type createDeveloperRequest struct {
	Name            string `form:"name"             validate:"required"`
	Description     string `form:"description"`
	ReferenceNumber int    `form:"reference_number" validate:"required,gt=0"`
	Phone           string `form:"phone"`
	Email           string `form:"email"            validate:"omitempty,email"`
	WebsiteURL      string `form:"website_url"      validate:"omitempty,url"`
}

// Create handles POST /developers/create. The optional logo file part is
// uploaded before the record is stored.
func (h *DeveloperHandler) Create(c echo.Context) error {
	var req createDeveloperRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	claims, err := ctxClaims(c)
	if err != nil {
		return err
	}

	logo, err := uploadFormFile(c, h.uploader, "logo", "developers")
	if err != nil {
		return err
	}
	if logo == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "logo file is required")
	}

	developer, err := h.service.Create(c.Request().Context(), ports.CreateDeveloperInput{
		Name:            req.Name,
		Description:     req.Description,
		ReferenceNumber: req.ReferenceNumber,
		Logo:            logo,
		Phone:           req.Phone,
		Email:           req.Email,
		WebsiteURL:      req.WebsiteURL,
		UserID:          claims.UserID,
	})
	if err != nil {
		return err
	}

	metrics.ListingsCreatedTotal.WithLabelValues("developer").Inc()
	return c.JSON(http.StatusCreated, developer)
}

// List handles GET /developers/all.
func (h *DeveloperHandler) List(c echo.Context) error {
	developers, err := h.service.List(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, developers)
}
