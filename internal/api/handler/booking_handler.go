package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/propview/real-estate-api/internal/api/metrics"
	"github.com/propview/real-estate-api/internal/core/ports"
)

// BookingHandler handles HTTP requests for property bookings.
type BookingHandler struct {
	service ports.BookingService
}

func NewBookingHandler(service ports.BookingService) *BookingHandler {
	return &BookingHandler{service: service}
}

type createBookingRequest struct {
	PropertyID string  `json:"property_id" validate:"required,len=24,hexadecimal"`
	Price      float64 `json:"price"       validate:"required,gt=0"`
}

// Create handles POST /bookings/create. The submitted price must equal the
// current listing price; a stale price is rejected.
func (h *BookingHandler) Create(c echo.Context) error {
	var req createBookingRequest
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

	booking, err := h.service.Create(c.Request().Context(), ports.CreateBookingInput{
		PropertyID: req.PropertyID,
		Price:      req.Price,
		UserID:     claims.UserID,
	})
	if err != nil {
		return err
	}

	metrics.ListingsCreatedTotal.WithLabelValues("booking").Inc()
	return c.JSON(http.StatusCreated, booking)
}
