package slog

import (
	"context"
	"log/slog"

	"github.com/redefinechurch/kidzpolicy"
)

// Ensure LoggingLimiter implements kidzpolicy.Limiter.
var _ kidzpolicy.Limiter = (*LoggingLimiter)(nil)

// LoggingLimiter wraps a Limiter with debug logging for denied requests.
type LoggingLimiter struct {
	next   kidzpolicy.Limiter
	logger *slog.Logger
}

// NewLoggingLimiter creates a new LoggingLimiter.
func NewLoggingLimiter(next kidzpolicy.Limiter, logger *slog.Logger) *LoggingLimiter {
	return &LoggingLimiter{next: next, logger: logger}
}

// CanProceed delegates to the wrapped limiter, logging denials.
func (l *LoggingLimiter) CanProceed(ctx context.Context, userID string) (kidzpolicy.Decision, error) {
	decision, err := l.next.CanProceed(ctx, userID)
	if err != nil {
		return decision, err
	}
	if !decision.Allowed {
		l.logger.Debug("query denied",
			"user", userID,
			"reason", decision.Reason,
			"wait", decision.Wait,
		)
	}
	return decision, nil
}

// RecordSuccess delegates to the wrapped limiter.
func (l *LoggingLimiter) RecordSuccess(ctx context.Context, userID string) error {
	return l.next.RecordSuccess(ctx, userID)
}

// Status delegates to the wrapped limiter.
func (l *LoggingLimiter) Status(ctx context.Context, userID string) (kidzpolicy.LimitStatus, error) {
	return l.next.Status(ctx, userID)
}
