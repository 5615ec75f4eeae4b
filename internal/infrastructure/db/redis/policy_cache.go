package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/propview/real-estate-api/internal/core/domain"
)

const policyTTL = 5 * time.Minute

// PolicyCache caches role policies in Redis so policy-gated requests do not
// hit MongoDB on every call. Key format: policy:<company_id>:<role>
type PolicyCache struct {
	client *redis.Client
}

// NewPolicyCache creates a PolicyCache wrapping the given Redis client.
func NewPolicyCache(client *redis.Client) *PolicyCache {
	return &PolicyCache{client: client}
}

// Get returns the cached policy for (role, companyID), or (nil, nil) on a
// cache miss.
func (p *PolicyCache) Get(ctx context.Context, role, companyID string) (*domain.UserPolicy, error) {
	raw, err := p.client.Get(ctx, p.key(role, companyID)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, fmt.Errorf("policy cache get: %w", err)
	}

	var policy domain.UserPolicy
	if err := json.Unmarshal(raw, &policy); err != nil {
		return nil, fmt.Errorf("policy cache decode: %w", err)
	}
	return &policy, nil
}

// Set stores the policy under its (role, company) key (expires after policyTTL).
func (p *PolicyCache) Set(ctx context.Context, policy *domain.UserPolicy) error {
	raw, err := json.Marshal(policy)
	if err != nil {
		return fmt.Errorf("policy cache encode: %w", err)
	}
	return p.client.Set(ctx, p.key(policy.Role, policy.CompanyID), raw, policyTTL).Err()
}

// Invalidate drops the cached entry after a policy mutation.
func (p *PolicyCache) Invalidate(ctx context.Context, role, companyID string) error {
	return p.client.Del(ctx, p.key(role, companyID)).Err()
}

func (p *PolicyCache) key(role, companyID string) string {
	return fmt.Sprintf("policy:%s:%s", companyID, role)
}
