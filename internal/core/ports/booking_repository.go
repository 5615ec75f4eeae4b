package ports

import (
	"context"

	"github.com/propview/real-estate-api/internal/core/domain"
)

// BookingRepository defines persistence for bookings.
type BookingRepository interface {
	Create(ctx context.Context, b *domain.Booking) (*domain.Booking, error)
	// FindByProperty returns the non-deleted booking for a property, or
	// (nil, nil) when none exists.
	FindByProperty(ctx context.Context, propertyID string) (*domain.Booking, error)
}
