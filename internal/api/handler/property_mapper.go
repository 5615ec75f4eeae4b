package handler

import (
	"time"

	"github.com/propview/real-estate-api/internal/core/ports"
)

// toCreatePropertyInput maps the bound form fields plus the already-uploaded
// asset URLs into the service input. delivery_date accepts RFC 3339 or a
// plain date.
func toCreatePropertyInput(req createPropertyRequest, userID, floorPlan string, images []string) (ports.CreatePropertyInput, error) {
	input := ports.CreatePropertyInput{
		Name:            req.Name,
		Description:     req.Description,
		ReferenceNumber: req.ReferenceNumber,
		CompoundID:      req.CompoundID,
		Latitude:        req.Latitude,
		Longitude:       req.Longitude,
		Type:            req.Type,
		FloorNumber:     req.FloorNumber,
		TotalFloors:     req.TotalFloors,
		Width:           req.Width,
		Length:          req.Length,
		Height:          req.Height,
		Area:            req.Area,
		Beds:            req.Beds,
		Baths:           req.Baths,
		ParkingSpaces:   req.ParkingSpaces,
		FinishingStatus: req.FinishingStatus,
		FinishingType:   req.FinishingType,
		Price:           req.Price,
		Amenities:       req.Amenities,
		FloorPlan:       floorPlan,
		Images:          images,
		UserID:          userID,
	}

	if req.DeliveryDate != "" {
		dd, err := parseDate(req.DeliveryDate)
		if err != nil {
			return ports.CreatePropertyInput{}, err
		}
		input.DeliveryDate = dd
	}
	return input, nil
}

func toListPropertiesInput(q listPropertiesQuery) ports.ListPropertiesInput {
	return ports.ListPropertiesInput{
		Name:            q.Name,
		ReferenceNumber: q.ReferenceNumber,
		Type:            q.Type,
		Beds:            q.Beds,
		Baths:           q.Baths,
		PriceMin:        q.PriceMin,
		PriceMax:        q.PriceMax,
		Developer:       q.Developer,
		Page:            q.Page,
		Limit:           q.Limit,
	}
}

func parseDate(s string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t, nil
	}
	return time.Parse("2006-01-02", s)
}
