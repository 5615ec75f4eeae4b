package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/propview/real-estate-api/internal/api/metrics"
	"github.com/propview/real-estate-api/internal/core/ports"
)

// PropertyHandler handles HTTP requests for property listings.
type PropertyHandler struct {
	service  ports.PropertyService
	uploader ports.ImageUploader
}

func NewPropertyHandler(service ports.PropertyService, uploader ports.ImageUploader) *PropertyHandler {
	return &PropertyHandler{service: service, uploader: uploader}
}

// List handles GET /properties/all. All filters are optional; unsupplied
// parameters place no condition on the result.
func (h *PropertyHandler) List(c echo.Context) error {
	var q listPropertiesQuery
	if err := c.Bind(&q); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid query parameters")
	}
	if err := c.Validate(&q); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	result, err := h.service.List(c.Request().Context(), toListPropertiesInput(q))
	if err != nil {
		return err
	}

	metrics.PropertySearchesTotal.Inc()
	return c.JSON(http.StatusOK, propertyPageResponse{
		Items:      result.Items,
		Total:      result.Total,
		Page:       result.Page,
		Limit:      result.Limit,
		TotalPages: result.TotalPages,
	})
}

// Get handles GET /properties/one/:id.
func (h *PropertyHandler) Get(c echo.Context) error {
	property, err := h.service.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, property)
}

// Create handles POST /properties/create. The request is multipart: scalar
// fields plus an optional floor_plan file and any number of images files,
// which are pushed to the image host before the listing is stored.
func (h *PropertyHandler) Create(c echo.Context) error {
	var req createPropertyRequest
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

	floorPlan, err := uploadFormFile(c, h.uploader, "floor_plan", "properties")
	if err != nil {
		return err
	}
	if floorPlan == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "floor_plan file is required")
	}
	images, err := uploadFormFiles(c, h.uploader, "images", "properties")
	if err != nil {
		return err
	}
	if len(images) == 0 {
		return echo.NewHTTPError(http.StatusBadRequest, "at least one images file is required")
	}

	input, err := toCreatePropertyInput(req, claims.UserID, floorPlan, images)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid delivery_date")
	}

	property, err := h.service.Create(c.Request().Context(), input)
	if err != nil {
		return err
	}

	metrics.ListingsCreatedTotal.WithLabelValues("property").Inc()
	return c.JSON(http.StatusCreated, property)
}
