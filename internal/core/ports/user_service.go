package ports

import (
	"context"

	"github.com/propview/real-estate-api/internal/core/domain"
)

// CreateUserInput carries the admin-supplied fields for a new account.
type CreateUserInput struct {
	Name      string
	Username  string
	Password  string
	Role      string
	CompanyID string
}

// UserService defines user-management use cases.
type UserService interface {
	Create(ctx context.Context, input CreateUserInput) (*domain.User, error)
}
