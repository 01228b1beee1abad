package mock

import (
	"context"

	"github.com/redefinechurch/kidzpolicy"
)

var _ kidzpolicy.PolicyService = (*PolicyService)(nil)

// PolicyService is a mock implementation of kidzpolicy.PolicyService.
type PolicyService struct {
	FindPolicyByIDFn    func(ctx context.Context, id string) (*kidzpolicy.Policy, error)
	FindPolicyByTitleFn func(ctx context.Context, title string) (*kidzpolicy.Policy, error)
	PoliciesFn          func(ctx context.Context) ([]*kidzpolicy.Policy, error)
}

func (s *PolicyService) FindPolicyByID(ctx context.Context, id string) (*kidzpolicy.Policy, error) {
	return s.FindPolicyByIDFn(ctx, id)
}

func (s *PolicyService) FindPolicyByTitle(ctx context.Context, title string) (*kidzpolicy.Policy, error) {
	return s.FindPolicyByTitleFn(ctx, title)
}

func (s *PolicyService) Policies(ctx context.Context) ([]*kidzpolicy.Policy, error) {
	return s.PoliciesFn(ctx)
}
