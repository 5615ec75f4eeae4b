package ports

import (
	"context"

	"github.com/propview/real-estate-api/internal/core/domain"
)

// DeveloperRepository defines persistence for developers. FindByName is the
// lookup collaborator used by the property filter builder to resolve a
// developer name to an id; the match is exact and non-deleted only.
type DeveloperRepository interface {
	Create(ctx context.Context, d *domain.Developer) (*domain.Developer, error)
	FindByID(ctx context.Context, id string) (*domain.Developer, error)
	FindByName(ctx context.Context, name string) (*domain.Developer, error)
	FindByReference(ctx context.Context, referenceNumber int) (*domain.Developer, error)
	List(ctx context.Context) ([]*domain.Developer, error)
}
