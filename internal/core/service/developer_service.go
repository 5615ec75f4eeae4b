package service

import (
	"context"
	"errors"
	"time"

	"github.com/rs/zerolog"

	"github.com/propview/real-estate-api/internal/core/domain"
	"github.com/propview/real-estate-api/internal/core/ports"
)

// DeveloperService implements developer creation and listing.
type DeveloperService struct {
	developers ports.DeveloperRepository
	logger     zerolog.Logger
}

func NewDeveloperService(developers ports.DeveloperRepository, logger zerolog.Logger) *DeveloperService {
	return &DeveloperService{developers: developers, logger: logger}
}

// Create inserts a new developer. Reference numbers are unique among
// non-deleted developers.
func (s *DeveloperService) Create(ctx context.Context, input ports.CreateDeveloperInput) (*domain.Developer, error) {
	if _, err := s.developers.FindByReference(ctx, input.ReferenceNumber); err == nil {
		return nil, domain.ErrDeveloperExists
	} else if !errors.Is(err, domain.ErrDeveloperNotFound) {
		return nil, err
	}

	now := time.Now().UTC()
	developer := &domain.Developer{
		Name:            input.Name,
		Description:     input.Description,
		ReferenceNumber: input.ReferenceNumber,
		Logo:            input.Logo,
		Phone:           input.Phone,
		Email:           input.Email,
		WebsiteURL:      input.WebsiteURL,
		UserID:          input.UserID,
		CreatedAt:       now,
		UpdatedAt:       now,
	}

	created, err := s.developers.Create(ctx, developer)
	if err != nil {
		s.logger.Error().Err(err).Msg("failed to create developer")
		return nil, err
	}
	return created, nil
}

func (s *DeveloperService) List(ctx context.Context) ([]*domain.Developer, error) {
	return s.developers.List(ctx)
}
