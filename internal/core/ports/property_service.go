package ports

import (
	"context"
	"time"

	"github.com/propview/real-estate-api/internal/core/domain"
)

// CreatePropertyInput carries all data for a new property listing. FloorPlan
// and Images are public URLs: the transport layer uploads binaries to the
// image host before the service is invoked.
type CreatePropertyInput struct {
	Name            string
	Description     string
	ReferenceNumber int
	CompoundID      string
	Latitude        float64
	Longitude       float64
	Type            string
	FloorNumber     int
	TotalFloors     int
	Width           float64
	Length          float64
	Height          float64
	Area            float64
	Beds            int
	Baths           int
	ParkingSpaces   int
	FinishingStatus string
	FinishingType   string
	DeliveryDate    time.Time
	Price           float64
	Amenities       []string
	FloorPlan       string
	Images          []string
	UserID          string
}

// ListPropertiesInput carries the raw search parameters. Developer is a
// developer name, resolved to an id by the service.
type ListPropertiesInput struct {
	Name            string
	ReferenceNumber int
	Type            string
	Beds            int
	Baths           int
	PriceMin        *float64
	PriceMax        *float64
	Developer       string
	Page            int
	Limit           int
}

// ListPropertiesResult is a page of matches plus pagination metadata.
type ListPropertiesResult struct {
	Items      []*domain.Property
	Total      int64
	Page       int
	Limit      int
	TotalPages int
}

// PropertyService defines property use cases.
type PropertyService interface {
	Create(ctx context.Context, input CreatePropertyInput) (*domain.Property, error)
	List(ctx context.Context, input ListPropertiesInput) (*ListPropertiesResult, error)
	Get(ctx context.Context, id string) (*domain.Property, error)
}
