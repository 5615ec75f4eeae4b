package ports

import (
	"context"

	"github.com/propview/real-estate-api/internal/core/domain"
)

// UserRepository defines persistence for user accounts. All lookups are
// scoped to non-deleted records.
type UserRepository interface {
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
	FindByUsername(ctx context.Context, username string) (*domain.User, error)
	FindByID(ctx context.Context, id string) (*domain.User, error)
}
