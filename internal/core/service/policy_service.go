package service

import (
	"context"
	"errors"
	"time"

	"github.com/rs/zerolog"

	"github.com/propview/real-estate-api/internal/core/domain"
	"github.com/propview/real-estate-api/internal/core/ports"
	"github.com/propview/real-estate-api/internal/pkg/paging"
)

const defaultPolicyPageSize = 50

// PolicyService manages role policies. Reads on the authorizer hot path go
// through an optional cache; cache failures degrade to repository reads and
// are logged, never surfaced.
type PolicyService struct {
	policies ports.PolicyRepository
	cache    ports.PolicyCache
	logger   zerolog.Logger
}

// NewPolicyService builds a PolicyService. cache may be nil, in which case
// every lookup hits the repository.
func NewPolicyService(policies ports.PolicyRepository, cache ports.PolicyCache, logger zerolog.Logger) *PolicyService {
	return &PolicyService{policies: policies, cache: cache, logger: logger}
}

// Create inserts a policy for (input.Role, companyID). At most one
// non-deleted policy may exist per pair.
func (s *PolicyService) Create(ctx context.Context, companyID string, input ports.PolicyInput) (*domain.UserPolicy, error) {
	if _, err := s.policies.FindByRoleAndCompany(ctx, input.Role, companyID); err == nil {
		return nil, domain.ErrPolicyExists
	} else if !errors.Is(err, domain.ErrPolicyNotFound) {
		return nil, err
	}

	now := time.Now().UTC()
	policy := &domain.UserPolicy{
		Role:      input.Role,
		CompanyID: companyID,
		MenuItems: input.MenuItems,
		CreatedAt: now,
		UpdatedAt: now,
	}

	created, err := s.policies.Create(ctx, policy)
	if err != nil {
		s.logger.Error().Err(err).Str("role", input.Role).Msg("failed to create user policy")
		return nil, err
	}
	return created, nil
}

// Update replaces the role and menu items of an existing policy and drops
// any cached copy of the old record. A rename drops both the old and the new
// role keys, otherwise the entry under the old role name would keep answering
// lookups until its TTL expires.
func (s *PolicyService) Update(ctx context.Context, id, companyID string, input ports.PolicyInput) (*domain.UserPolicy, error) {
	previous, err := s.policies.Update(ctx, id, companyID, input.Role, input.MenuItems)
	if err != nil {
		return nil, err
	}
	s.invalidate(ctx, previous.Role, companyID)
	if previous.Role != input.Role {
		s.invalidate(ctx, input.Role, companyID)
	}

	updated := *previous
	updated.Role = input.Role
	updated.MenuItems = input.MenuItems
	updated.UpdatedAt = time.Now().UTC()
	return &updated, nil
}

// Delete soft-deletes a policy and drops any cached copy.
func (s *PolicyService) Delete(ctx context.Context, id, companyID string) (*domain.UserPolicy, error) {
	deleted, err := s.policies.SoftDelete(ctx, id, companyID)
	if err != nil {
		return nil, err
	}
	s.invalidate(ctx, deleted.Role, companyID)
	return deleted, nil
}

// GetForRole returns the non-deleted policy for (role, companyID),
// preferring the cache.
func (s *PolicyService) GetForRole(ctx context.Context, role, companyID string) (*domain.UserPolicy, error) {
	if s.cache != nil {
		cached, err := s.cache.Get(ctx, role, companyID)
		if err != nil {
			s.logger.Warn().Err(err).Str("role", role).Msg("policy cache read failed")
		} else if cached != nil {
			return cached, nil
		}
	}

	policy, err := s.policies.FindByRoleAndCompany(ctx, role, companyID)
	if err != nil {
		return nil, err
	}

	if s.cache != nil {
		if err := s.cache.Set(ctx, policy); err != nil {
			s.logger.Warn().Err(err).Str("role", role).Msg("policy cache write failed")
		}
	}
	return policy, nil
}

// ListForCompany returns one page of a company's policies.
func (s *PolicyService) ListForCompany(ctx context.Context, companyID string, page, limit int) ([]*domain.UserPolicy, error) {
	page, limit = paging.Normalize(page, limit, defaultPolicyPageSize)
	return s.policies.ListByCompany(ctx, companyID, page, limit)
}

func (s *PolicyService) invalidate(ctx context.Context, role, companyID string) {
	if s.cache == nil {
		return
	}
	if err := s.cache.Invalidate(ctx, role, companyID); err != nil {
		s.logger.Warn().Err(err).Str("role", role).Msg("policy cache invalidation failed")
	}
}
