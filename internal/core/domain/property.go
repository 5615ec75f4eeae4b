package domain

import "time"

// PropertyType enumerates the kinds of listable units.
type PropertyType string

const (
	TypeApartment PropertyType = "Apartment"
	TypeVilla     PropertyType = "Villa"
	TypeDuplex    PropertyType = "Duplex"
)

// FinishingStatus tracks construction progress.
type FinishingStatus string

const (
	FinishingNotFinished FinishingStatus = "Not Finished"
	FinishingInProgress  FinishingStatus = "In Progress"
	FinishingFinished    FinishingStatus = "Finished"
)

// FinishingType describes the delivered finishing level.
type FinishingType string

const (
	FinishingCore  FinishingType = "Core"
	FinishingSemi  FinishingType = "Semi Finished"
	FinishingFully FinishingType = "Fully Finished"
)

// Property is a listable unit inside a compound. DeveloperID is inherited
// from the compound at creation time so searches can filter by developer
// without a join.
type Property struct {
	ID              string          `json:"id"`
	Name            string          `json:"name"`
	Description     string          `json:"description"`
	ReferenceNumber int             `json:"reference_number"`
	CompoundID      string          `json:"compound_id"`
	Latitude        float64         `json:"latitude,omitempty"`
	Longitude       float64         `json:"longitude,omitempty"`
	Type            PropertyType    `json:"type"`
	FloorNumber     int             `json:"floor_number"`
	TotalFloors     int             `json:"total_floors"`
	Width           float64         `json:"width"`
	Length          float64         `json:"length"`
	Height          float64         `json:"height"`
	Area            float64         `json:"area"`
	Beds            int             `json:"beds"`
	Baths           int             `json:"baths"`
	ParkingSpaces   int             `json:"parking_spaces"`
	FinishingStatus FinishingStatus `json:"finishing_status"`
	FinishingType   FinishingType   `json:"finishing_type"`
	DeliveryDate    time.Time       `json:"delivery_date"`
	Price           float64         `json:"price"`
	Amenities       []string        `json:"amenities"`
	FloorPlan       string          `json:"floor_plan"`
	Images          []string        `json:"images"`
	DeveloperID     string          `json:"developer_id"`
	UserID          string          `json:"user_id"`
	IsDeleted       bool            `json:"-"`
	CreatedAt       time.Time       `json:"created_at"`
	UpdatedAt       time.Time       `json:"updated_at"`
}
