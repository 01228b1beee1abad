package mock

import (
	"context"

	"github.com/redefinechurch/kidzpolicy"
)

var _ kidzpolicy.Limiter = (*Limiter)(nil)

// Limiter is a mock implementation of kidzpolicy.Limiter.
type Limiter struct {
	CanProceedFn    func(ctx context.Context, userID string) (kidzpolicy.Decision, error)
	RecordSuccessFn func(ctx context.Context, userID string) error
	StatusFn        func(ctx context.Context, userID string) (kidzpolicy.LimitStatus, error)
}

func (l *Limiter) CanProceed(ctx context.Context, userID string) (kidzpolicy.Decision, error) {
	return l.CanProceedFn(ctx, userID)
}

func (l *Limiter) RecordSuccess(ctx context.Context, userID string) error {
	return l.RecordSuccessFn(ctx, userID)
}

func (l *Limiter) Status(ctx context.Context, userID string) (kidzpolicy.LimitStatus, error) {
	return l.StatusFn(ctx, userID)
}
