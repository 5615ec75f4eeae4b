package service

import (
	"context"
	"errors"
	"time"

	"github.com/rs/zerolog"

	"github.com/propview/real-estate-api/internal/core/domain"
	"github.com/propview/real-estate-api/internal/core/ports"
)

// CompoundService implements compound creation and listing.
type CompoundService struct {
	compounds  ports.CompoundRepository
	developers ports.DeveloperRepository
	logger     zerolog.Logger
}

func NewCompoundService(compounds ports.CompoundRepository, developers ports.DeveloperRepository, logger zerolog.Logger) *CompoundService {
	return &CompoundService{compounds: compounds, developers: developers, logger: logger}
}

// Create inserts a new compound. The owning developer must exist and the
// reference number must be unique among non-deleted compounds.
func (s *CompoundService) Create(ctx context.Context, input ports.CreateCompoundInput) (*domain.Compound, error) {
	developer, err := s.developers.FindByID(ctx, input.DeveloperID)
	if err != nil {
		return nil, err
	}

	if _, err := s.compounds.FindByReference(ctx, input.ReferenceNumber); err == nil {
		return nil, domain.ErrCompoundExists
	} else if !errors.Is(err, domain.ErrCompoundNotFound) {
		return nil, err
	}

	types := make([]domain.PropertyType, len(input.PropertyTypes))
	for i, t := range input.PropertyTypes {
		types[i] = domain.PropertyType(t)
	}

	now := time.Now().UTC()
	compound := &domain.Compound{
		Name:            input.Name,
		Description:     input.Description,
		ReferenceNumber: input.ReferenceNumber,
		City:            input.City,
		Province:        input.Province,
		Country:         input.Country,
		Latitude:        input.Latitude,
		Longitude:       input.Longitude,
		TotalUnits:      input.TotalUnits,
		PropertyTypes:   types,
		Status:          domain.CompoundStatus(input.Status),
		DeliveryDate:    input.DeliveryDate,
		Images:          input.Images,
		MasterPlan:      input.MasterPlan,
		DeveloperID:     developer.ID,
		UserID:          input.UserID,
		CreatedAt:       now,
		UpdatedAt:       now,
	}

	created, err := s.compounds.Create(ctx, compound)
	if err != nil {
		s.logger.Error().Err(err).Msg("failed to create compound")
		return nil, err
	}
	return created, nil
}

func (s *CompoundService) List(ctx context.Context) ([]*domain.Compound, error) {
	return s.compounds.List(ctx)
}
