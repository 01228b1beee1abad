// Package mem provides the in-memory implementation of the policy store.
// The collection is built once at construction and immutable afterwards.
package mem

import (
	"context"
	"encoding/hex"

	"github.com/cespare/xxhash/v2"
	"github.com/redefinechurch/kidzpolicy"
)

// Compile-time interface verification.
var _ kidzpolicy.PolicyService = (*PolicyService)(nil)

// PolicyService serves a fixed policy collection. Collection order is
// stable: it is the order policies were passed at construction.
type PolicyService struct {
	policies []*kidzpolicy.Policy
	byID     map[string]*kidzpolicy.Policy
}

// NewPolicyService builds a PolicyService from the given policies. Each
// policy is validated, IDs must be unique, and content fingerprints are
// computed at load.
func NewPolicyService(policies []*kidzpolicy.Policy) (*PolicyService, error) {
	s := &PolicyService{
		policies: make([]*kidzpolicy.Policy, 0, len(policies)),
		byID:     make(map[string]*kidzpolicy.Policy, len(policies)),
	}

	for _, p := range policies {
		if err := p.Validate(); err != nil {
			return nil, err
		}
		if _, exists := s.byID[p.ID]; exists {
			return nil, kidzpolicy.Errorf(kidzpolicy.EINVALID, "duplicate policy ID %q", p.ID)
		}
		p.ContentHash = hashContent(p.Content)
		s.policies = append(s.policies, p)
		s.byID[p.ID] = p
	}

	return s, nil
}

// NewDefaultPolicyService builds a PolicyService over the embedded
// ministry corpus.
func NewDefaultPolicyService() (*PolicyService, error) {
	return NewPolicyService(DefaultPolicies())
}

// FindPolicyByID retrieves a policy by ID.
func (s *PolicyService) FindPolicyByID(ctx context.Context, id string) (*kidzpolicy.Policy, error) {
	p, ok := s.byID[id]
	if !ok {
		return nil, kidzpolicy.Errorf(kidzpolicy.ENOTFOUND, "policy %q not found", id)
	}
	return p, nil
}

// FindPolicyByTitle retrieves a policy by exact title match,
// case-insensitive and whitespace-trimmed on both sides.
func (s *PolicyService) FindPolicyByTitle(ctx context.Context, title string) (*kidzpolicy.Policy, error) {
	if p, ok := kidzpolicy.MatchPolicyTitle(s.policies, title); ok {
		return p, nil
	}
	return nil, kidzpolicy.Errorf(kidzpolicy.ENOTFOUND, "policy titled %q not found", title)
}

// Policies returns all policies in stable collection order. The returned
// slice is a copy; the underlying policies are shared and read-only.
func (s *PolicyService) Policies(ctx context.Context) ([]*kidzpolicy.Policy, error) {
	return append([]*kidzpolicy.Policy(nil), s.policies...), nil
}

// hashContent computes an xxHash fingerprint of content as a hex string.
func hashContent(content string) string {
	h := xxhash.Sum64String(content)
	b := []byte{
		byte(h >> 56), byte(h >> 48), byte(h >> 40), byte(h >> 32),
		byte(h >> 24), byte(h >> 16), byte(h >> 8), byte(h),
	}
	return hex.EncodeToString(b)
}
