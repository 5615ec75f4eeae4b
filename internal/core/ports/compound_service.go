package ports

import (
	"context"
	"time"

	"github.com/propview/real-estate-api/internal/core/domain"
)

// CreateCompoundInput carries the fields for a new compound. MasterPlan and
// Images are already-uploaded public URLs.
type CreateCompoundInput struct {
	Name            string
	Description     string
	ReferenceNumber int
	City            string
	Province        string
	Country         string
	Latitude        float64
	Longitude       float64
	TotalUnits      int
	PropertyTypes   []string
	Status          string
	DeliveryDate    time.Time
	Images          []string
	MasterPlan      string
	DeveloperID     string
	UserID          string
}

// CompoundService defines compound use cases.
type CompoundService interface {
	Create(ctx context.Context, input CreateCompoundInput) (*domain.Compound, error)
	List(ctx context.Context) ([]*domain.Compound, error)
}
