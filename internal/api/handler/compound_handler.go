package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/propview/real-estate-api/internal/api/metrics"
	"github.com/propview/real-estate-api/internal/core/ports"
)

// CompoundHandler handles HTTP requests for compounds.
type CompoundHandler struct {
	service  ports.CompoundService
	uploader ports.ImageUploader
}

func NewCompoundHandler(service ports.CompoundService, uploader ports.ImageUploader) *CompoundHandler {
	return &CompoundHandler{service: service, uploader: uploader}
}

type createCompoundRequest struct {
	Name            string   `form:"name"             validate:"required"`
	Description     string   `form:"description"`
	ReferenceNumber int      `form:"reference_number" validate:"required,gt=0"`
	City            string   `form:"city"             validate:"required"`
	Province        string   `form:"province"`
	Country         string   `form:"country"          validate:"required"`
	Latitude        float64  `form:"latitude"`
	Longitude       float64  `form:"longitude"`
	TotalUnits      int      `form:"total_units"      validate:"omitempty,gt=0"`
	PropertyTypes   []string `form:"property_types"   validate:"dive,oneof=Apartment Villa Duplex"`
	Status          string   `form:"status"           validate:"omitempty,oneof=Planned 'Under Construction' Finished"`
	DeliveryDate    string   `form:"delivery_date"`
	DeveloperID     string   `form:"developer_id"     validate:"required,len=24,hexadecimal"`
}

// Create handles POST /compounds/create. The multipart request may carry an
// optional master_plan file and any number of images files.
func (h *CompoundHandler) Create(c echo.Context) error {
	var req createCompoundRequest
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

	masterPlan, err := uploadFormFile(c, h.uploader, "master_plan", "compounds")
	if err != nil {
		return err
	}
	if masterPlan == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "master_plan file is required")
	}
	images, err := uploadFormFiles(c, h.uploader, "images", "compounds")
	if err != nil {
		return err
	}
	if len(images) == 0 {
		return echo.NewHTTPError(http.StatusBadRequest, "at least one images file is required")
	}

	input := ports.CreateCompoundInput{
		Name:            req.Name,
		Description:     req.Description,
		ReferenceNumber: req.ReferenceNumber,
		City:            req.City,
		Province:        req.Province,
		Country:         req.Country,
		Latitude:        req.Latitude,
		Longitude:       req.Longitude,
		TotalUnits:      req.TotalUnits,
		PropertyTypes:   req.PropertyTypes,
		Status:          req.Status,
		Images:          images,
		MasterPlan:      masterPlan,
		DeveloperID:     req.DeveloperID,
		UserID:          claims.UserID,
	}
	if req.DeliveryDate != "" {
		dd, err := parseDate(req.DeliveryDate)
		if err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, "invalid delivery_date")
		}
		input.DeliveryDate = dd
	}

	compound, err := h.service.Create(c.Request().Context(), input)
	if err != nil {
		return err
	}

	metrics.ListingsCreatedTotal.WithLabelValues("compound").Inc()
	return c.JSON(http.StatusCreated, compound)
}

// List handles GET /compounds/all.
func (h *CompoundHandler) List(c echo.Context) error {
	compounds, err := h.service.List(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, compounds)
}
