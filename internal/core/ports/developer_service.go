package ports

import (
	"context"

	"github.com/propview/real-estate-api/internal/core/domain"
)

// CreateDeveloperInput carries the fields for a new developer. Logo is the
// already-uploaded public URL.
type CreateDeveloperInput struct {
	Name            string
	Description     string
	ReferenceNumber int
	Logo            string
	Phone           string
	Email           string
	WebsiteURL      string
	UserID          string
}

// DeveloperService defines developer use cases.
type DeveloperService interface {
	Create(ctx context.Context, input CreateDeveloperInput) (*domain.Developer, error)
	List(ctx context.Context) ([]*domain.Developer, error)
}
