package ports

import (
	"context"

	"github.com/propview/real-estate-api/internal/core/domain"
)

// PolicyInput carries the mutable fields of a role policy.
type PolicyInput struct {
	Role      string
	MenuItems []domain.MenuItem
}

// PolicyService defines role-policy use cases. GetForRole is on the hot path:
// the policy authorizer calls it for every policy-gated request.
type PolicyService interface {
	Create(ctx context.Context, companyID string, input PolicyInput) (*domain.UserPolicy, error)
	Update(ctx context.Context, id, companyID string, input PolicyInput) (*domain.UserPolicy, error)
	Delete(ctx context.Context, id, companyID string) (*domain.UserPolicy, error)
	GetForRole(ctx context.Context, role, companyID string) (*domain.UserPolicy, error)
	ListForCompany(ctx context.Context, companyID string, page, limit int) ([]*domain.UserPolicy, error)
}
