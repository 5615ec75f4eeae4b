package ports

import (
	"context"

	"github.com/propview/real-estate-api/internal/core/domain"
)

// CompoundRepository defines persistence for compounds.
type CompoundRepository interface {
	Create(ctx context.Context, c *domain.Compound) (*domain.Compound, error)
	FindByID(ctx context.Context, id string) (*domain.Compound, error)
	FindByReference(ctx context.Context, referenceNumber int) (*domain.Compound, error)
	List(ctx context.Context) ([]*domain.Compound, error)
}
