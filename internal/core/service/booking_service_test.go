package service

import (
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"

	"github.com/propview/real-estate-api/internal/core/domain"
	"github.com/propview/real-estate-api/internal/core/ports"
)

type stubBookingRepo struct {
	byProperty map[string]*domain.Booking
}

func newStubBookingRepo() *stubBookingRepo {
	return &stubBookingRepo{byProperty: make(map[string]*domain.Booking)}
}

func (r *stubBookingRepo) Create(_ context.Context, b *domain.Booking) (*domain.Booking, error) {
	clone := *b
	if clone.ID == "" {
		clone.ID = "booking-" + clone.PropertyID
	}
	r.byProperty[clone.PropertyID] = &clone
	return &clone, nil
}

func (r *stubBookingRepo) FindByProperty(_ context.Context, propertyID string) (*domain.Booking, error) {
	if b, ok := r.byProperty[propertyID]; ok {
		clone := *b
		return &clone, nil
	}
	return nil, nil
}

func seedProperty(t *testing.T, repo *stubPropertyRepo, name string, price float64) *domain.Property {
	t.Helper()
	p, err := repo.Create(context.Background(), &domain.Property{Name: name, Price: price})
	if err != nil {
		t.Fatalf("seed property: %v", err)
	}
	return p
}

func TestBookingService_Create_Success(t *testing.T) {
	bookings := newStubBookingRepo()
	props := newStubPropertyRepo()
	property := seedProperty(t, props, "Unit A", 1500000)
	svc := NewBookingService(bookings, props, zerolog.Nop())

	booking, err := svc.Create(context.Background(), ports.CreateBookingInput{
		PropertyID: property.ID,
		Price:      1500000,
		UserID:     "user-1",
	})
	if err != nil {
		t.Fatalf("Create returned error: %v", err)
	}
	if booking.Status != domain.BookingPending {
		t.Fatalf("new bookings must start pending, got %q", booking.Status)
	}
	if booking.UserID != "user-1" || booking.PropertyID != property.ID {
		t.Fatalf("unexpected booking: %+v", booking)
	}
}

func TestBookingService_Create_PropertyMustExist(t *testing.T) {
	svc := NewBookingService(newStubBookingRepo(), newStubPropertyRepo(), zerolog.Nop())

	_, err := svc.Create(context.Background(), ports.CreateBookingInput{
		PropertyID: "missing",
		Price:      100,
	})
	if !errors.Is(err, domain.ErrPropertyNotFound) {
		t.Fatalf("expected ErrPropertyNotFound, got %v", err)
	}
}

func TestBookingService_Create_StalePriceRejected(t *testing.T) {
	bookings := newStubBookingRepo()
	props := newStubPropertyRepo()
	property := seedProperty(t, props, "Unit A", 1500000)
	svc := NewBookingService(bookings, props, zerolog.Nop())

	_, err := svc.Create(context.Background(), ports.CreateBookingInput{
		PropertyID: property.ID,
		Price:      1400000,
	})
	if !errors.Is(err, domain.ErrPriceMismatch) {
		t.Fatalf("expected ErrPriceMismatch, got %v", err)
	}
	if len(bookings.byProperty) != 0 {
		t.Fatalf("no booking may be stored on a price mismatch")
	}
}

func TestBookingService_Create_PropertyAlreadyBooked(t *testing.T) {
	bookings := newStubBookingRepo()
	props := newStubPropertyRepo()
	property := seedProperty(t, props, "Unit A", 1500000)
	svc := NewBookingService(bookings, props, zerolog.Nop())

	input := ports.CreateBookingInput{PropertyID: property.ID, Price: 1500000, UserID: "user-1"}
	if _, err := svc.Create(context.Background(), input); err != nil {
		t.Fatalf("first booking failed: %v", err)
	}

	input.UserID = "user-2"
	if _, err := svc.Create(context.Background(), input); !errors.Is(err, domain.ErrBookingExists) {
		t.Fatalf("expected ErrBookingExists, got %v", err)
	}
}
