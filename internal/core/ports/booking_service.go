package ports

import (
	"context"

	"github.com/propview/real-estate-api/internal/core/domain"
)

// CreateBookingInput carries the fields for a new booking.
type CreateBookingInput struct {
	PropertyID string
	Price      float64
	UserID     string
}

// BookingService defines booking use cases.
type BookingService interface {
	Create(ctx context.Context, input CreateBookingInput) (*domain.Booking, error)
}
