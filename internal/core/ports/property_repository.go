package ports

import (
	"context"

	"github.com/propview/real-estate-api/internal/core/domain"
)

// ListPropertiesFilter is the structured search filter the service layer
// builds from query parameters. The storage adapter translates it into its
// native query form; the base condition is_deleted=false is always implied.
//
// Beds and Baths carry the business domain 1–5 where 5 means "5 or more":
// a value of 5 becomes a >=5 range condition, 1–4 an exact match, 0 unset.
type ListPropertiesFilter struct {
	Name            string   // case-insensitive substring match
	ReferenceNumber int      // exact match; 0 = unset
	Type            string   // exact match
	Beds            int      // 0 = unset
	Baths           int      // 0 = unset
	PriceMin        *float64 // lower price bound, nil = unset
	PriceMax        *float64 // upper price bound, nil = unset
	DeveloperID     string   // exact match on resolved developer id
	Page            int      // 1-based
	Limit           int      // rows per page
}

// PropertyRepository defines persistence for properties.
type PropertyRepository interface {
	Create(ctx context.Context, p *domain.Property) (*domain.Property, error)
	FindByID(ctx context.Context, id string) (*domain.Property, error)
	FindByReference(ctx context.Context, referenceNumber int) (*domain.Property, error)
	// List returns a page of properties matching filter and the total count.
	List(ctx context.Context, filter ListPropertiesFilter) ([]*domain.Property, int64, error)
}
