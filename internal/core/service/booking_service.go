package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/propview/real-estate-api/internal/core/domain"
	"github.com/propview/real-estate-api/internal/core/ports"
)

// BookingService implements booking creation.
type BookingService struct {
	bookings   ports.BookingRepository
	properties ports.PropertyRepository
	logger     zerolog.Logger
}

func NewBookingService(bookings ports.BookingRepository, properties ports.PropertyRepository, logger zerolog.Logger) *BookingService {
	return &BookingService{bookings: bookings, properties: properties, logger: logger}
}

// Create books a property for a user. The property must exist, the supplied
// price must equal the listed price, and the property must not already be
// booked. All checks run before the insert, so a failure leaves no partial
// state behind.
func (s *BookingService) Create(ctx context.Context, input ports.CreateBookingInput) (*domain.Booking, error) {
	property, err := s.properties.FindByID(ctx, input.PropertyID)
	if err != nil {
		return nil, err
	}

	if property.Price != input.Price {
		return nil, domain.ErrPriceMismatch
	}

	existing, err := s.bookings.FindByProperty(ctx, property.ID)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrBookingExists
	}

	now := time.Now().UTC()
	booking := &domain.Booking{
		UserID:     input.UserID,
		PropertyID: property.ID,
		Price:      input.Price,
		Status:     domain.BookingPending,
		CreatedAt:  now,
		UpdatedAt:  now,
	}

	created, err := s.bookings.Create(ctx, booking)
	if err != nil {
		s.logger.Error().Err(err).Str("property_id", property.ID).Msg("failed to create booking")
		return nil, err
	}

	s.logger.Info().Str("booking_id", created.ID).Str("property_id", property.ID).Msg("booking created")
	return created, nil
}
