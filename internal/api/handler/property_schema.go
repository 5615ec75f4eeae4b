package handler

import "github.com/propview/real-estate-api/internal/core/domain"

// createPropertyRequest carries the multipart form fields for a new listing.
// floor_plan and images arrive as file parts and are handled separately.
type createPropertyRequest struct {
	Name            string   `form:"name"             validate:"required"`
	Description     string   `form:"description"`
	ReferenceNumber int      `form:"reference_number" validate:"required,gt=0"`
	CompoundID      string   `form:"compound_id"      validate:"required,len=24,hexadecimal"`
	Latitude        float64  `form:"latitude"`
	Longitude       float64  `form:"longitude"`
	Type            string   `form:"type"             validate:"required,oneof=Apartment Villa Duplex"`
	FloorNumber     int      `form:"floor_number"`
	TotalFloors     int      `form:"total_floors"`
	Width           float64  `form:"width"`
	Length          float64  `form:"length"`
	Height          float64  `form:"height"`
	Area            float64  `form:"area"             validate:"required,gt=0"`
	Beds            int      `form:"beds"             validate:"required,min=1,max=5"`
	Baths           int      `form:"baths"            validate:"required,min=1,max=5"`
	ParkingSpaces   int      `form:"parking_spaces"`
	FinishingStatus string   `form:"finishing_status" validate:"omitempty,oneof='Not Finished' 'In Progress' Finished"`
	FinishingType   string   `form:"finishing_type"   validate:"omitempty,oneof=Core 'Semi Finished' 'Fully Finished'"`
	DeliveryDate    string   `form:"delivery_date"    validate:"omitempty"`
	Price           float64  `form:"price"            validate:"required,gt=0"`
	Amenities       []string `form:"amenities"`
}

// listPropertiesQuery carries the search parameters for GET /properties/all.
// beds and baths are bounded selector values: 5 means "5 or more".
type listPropertiesQuery struct {
	Name            string   `query:"name"`
	ReferenceNumber int      `query:"reference_number" validate:"omitempty,gt=0"`
	Type            string   `query:"type"             validate:"omitempty,oneof=Apartment Villa Duplex"`
	Beds            int      `query:"beds"             validate:"omitempty,min=1,max=5"`
	Baths           int      `query:"baths"            validate:"omitempty,min=1,max=5"`
	PriceMin        *float64 `query:"price_min"        validate:"omitempty,gte=0"`
	PriceMax        *float64 `query:"price_max"        validate:"omitempty,gte=0"`
	Developer       string   `query:"developer"`
	Page            int      `query:"page"             validate:"omitempty,min=1"`
	Limit           int      `query:"limit"            validate:"omitempty,min=1,max=100"`
}

type propertyPageResponse struct {
	Items      []*domain.Property `json:"items"`
	Total      int64              `json:"total"`
	Page       int                `json:"page"`
	Limit      int                `json:"limit"`
	TotalPages int                `json:"total_pages"`
}
