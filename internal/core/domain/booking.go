package domain

import "time"

// BookingStatus is the lifecycle state of a booking.
type BookingStatus string

const (
	BookingPending   BookingStatus = "pending"
	BookingConfirmed BookingStatus = "confirmed"
	BookingCancelled BookingStatus = "cancelled"
)

// Booking reserves a property for a user at the listed price. At most one
// non-deleted booking may exist per property.
type Booking struct {
	ID         string        `json:"id"`
	UserID     string        `json:"user_id"`
	PropertyID string        `json:"property_id"`
	Price      float64       `json:"price"`
	PaymentID  string        `json:"payment_id,omitempty"`
	Status     BookingStatus `json:"booking_status"`
	IsDeleted  bool          `json:"-"`
	CreatedAt  time.Time     `json:"created_at"`
	UpdatedAt  time.Time     `json:"updated_at"`
}
