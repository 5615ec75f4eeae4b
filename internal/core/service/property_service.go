package service

import (
	"context"
	"errors"
	"time"

	"github.com/rs/zerolog"

	"github.com/propview/real-estate-api/internal/core/domain"
	"github.com/propview/real-estate-api/internal/core/ports"
	"github.com/propview/real-estate-api/internal/pkg/paging"
)

const defaultPropertyPageSize = 10

// PropertyService implements property creation and search. Search is the
// interesting part: it translates the optional query parameters into a
// structured filter, resolving a developer name to an id on the way.
type PropertyService struct {
	properties ports.PropertyRepository
	compounds  ports.CompoundRepository
	developers ports.DeveloperRepository
	logger     zerolog.Logger
}

func NewPropertyService(
	properties ports.PropertyRepository,
	compounds ports.CompoundRepository,
	developers ports.DeveloperRepository,
	logger zerolog.Logger,
) *PropertyService {
	return &PropertyService{
		properties: properties,
		compounds:  compounds,
		developers: developers,
		logger:     logger,
	}
}

// Create inserts a new listing. The compound must exist; the property
// inherits its developer id. Reference numbers are unique among non-deleted
// properties.
func (s *PropertyService) Create(ctx context.Context, input ports.CreatePropertyInput) (*domain.Property, error) {
	compound, err := s.compounds.FindByID(ctx, input.CompoundID)
	if err != nil {
		return nil, err
	}

	if _, err := s.properties.FindByReference(ctx, input.ReferenceNumber); err == nil {
		return nil, domain.ErrPropertyExists
	} else if !errors.Is(err, domain.ErrPropertyNotFound) {
		return nil, err
	}

	now := time.Now().UTC()
	property := &domain.Property{
		Name:            input.Name,
		Description:     input.Description,
		ReferenceNumber: input.ReferenceNumber,
		CompoundID:      compound.ID,
		Latitude:        input.Latitude,
		Longitude:       input.Longitude,
		Type:            domain.PropertyType(input.Type),
		FloorNumber:     input.FloorNumber,
		TotalFloors:     input.TotalFloors,
		Width:           input.Width,
		Length:          input.Length,
		Height:          input.Height,
		Area:            input.Area,
		Beds:            input.Beds,
		Baths:           input.Baths,
		ParkingSpaces:   input.ParkingSpaces,
		FinishingStatus: domain.FinishingStatus(input.FinishingStatus),
		FinishingType:   domain.FinishingType(input.FinishingType),
		DeliveryDate:    input.DeliveryDate,
		Price:           input.Price,
		Amenities:       input.Amenities,
		FloorPlan:       input.FloorPlan,
		Images:          input.Images,
		DeveloperID:     compound.DeveloperID,
		UserID:          input.UserID,
		CreatedAt:       now,
		UpdatedAt:       now,
	}

	created, err := s.properties.Create(ctx, property)
	if err != nil {
		s.logger.Error().Err(err).Int("reference_number", input.ReferenceNumber).Msg("failed to create property")
		return nil, err
	}

	s.logger.Info().Str("property_id", created.ID).Int("reference_number", created.ReferenceNumber).Msg("property created")
	return created, nil
}

// List builds the structured search filter from input and returns one page
// of matches. A developer name, when supplied, is resolved to an id via the
// developer lookup; an unknown name aborts the search with not-found before
// any property query runs.
func (s *PropertyService) List(ctx context.Context, input ports.ListPropertiesInput) (*ports.ListPropertiesResult, error) {
	page, limit := paging.Normalize(input.Page, input.Limit, defaultPropertyPageSize)

	filter := ports.ListPropertiesFilter{
		Name:            input.Name,
		ReferenceNumber: input.ReferenceNumber,
		Type:            input.Type,
		Beds:            input.Beds,
		Baths:           input.Baths,
		PriceMin:        input.PriceMin,
		PriceMax:        input.PriceMax,
		Page:            page,
		Limit:           limit,
	}

	if input.Developer != "" {
		developer, err := s.developers.FindByName(ctx, input.Developer)
		if err != nil {
			return nil, err
		}
		filter.DeveloperID = developer.ID
	}

	items, total, err := s.properties.List(ctx, filter)
	if err != nil {
		return nil, err
	}

	totalPages := int((total + int64(limit) - 1) / int64(limit))
	return &ports.ListPropertiesResult{
		Items:      items,
		Total:      total,
		Page:       page,
		Limit:      limit,
		TotalPages: totalPages,
	}, nil
}

// Get returns a single non-deleted property by id.
func (s *PropertyService) Get(ctx context.Context, id string) (*domain.Property, error) {
	return s.properties.FindByID(ctx, id)
}
