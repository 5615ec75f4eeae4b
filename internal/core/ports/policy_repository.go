package ports

import (
	"context"

	"github.com/propview/real-estate-api/internal/core/domain"
)

// PolicyRepository defines persistence for role policies. Every operation is
// company-scoped and ignores soft-deleted records.
type PolicyRepository interface {
	Create(ctx context.Context, p *domain.UserPolicy) (*domain.UserPolicy, error)
	FindByRoleAndCompany(ctx context.Context, role, companyID string) (*domain.UserPolicy, error)
	// Update replaces role and menu items of the policy identified by
	// (id, companyID) and returns the record as it was before the update,
	// so callers can invalidate caches keyed by the old role.
	Update(ctx context.Context, id, companyID string, role string, items []domain.MenuItem) (*domain.UserPolicy, error)
	// SoftDelete marks the policy deleted and returns the record as it was.
	SoftDelete(ctx context.Context, id, companyID string) (*domain.UserPolicy, error)
	ListByCompany(ctx context.Context, companyID string, page, limit int) ([]*domain.UserPolicy, error)
}

// PolicyCache is a read-through cache in front of policy lookups. Lookups
// happen on every policy-gated request, so misses fall back to the
// repository and mutations invalidate the affected entry.
type PolicyCache interface {
	Get(ctx context.Context, role, companyID string) (*domain.UserPolicy, error)
	Set(ctx context.Context, p *domain.UserPolicy) error
	Invalidate(ctx context.Context, role, companyID string) error
}
