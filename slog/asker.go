// Package slog provides logging decorators for service interfaces.
package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/redefinechurch/kidzpolicy"
)

// Ensure LoggingAsker implements kidzpolicy.Asker.
var _ kidzpolicy.Asker = (*LoggingAsker)(nil)

// LoggingAsker wraps an Asker with per-query logging.
type LoggingAsker struct {
	next   kidzpolicy.Asker
	logger *slog.Logger
}

// NewLoggingAsker creates a new LoggingAsker.
func NewLoggingAsker(next kidzpolicy.Asker, logger *slog.Logger) *LoggingAsker {
	return &LoggingAsker{next: next, logger: logger}
}

// Ask delegates to the wrapped asker, logging the outcome and duration.
func (a *LoggingAsker) Ask(ctx context.Context, userID, query string) (*kidzpolicy.ResponseEnvelope, error) {
	begin := time.Now()
	envelope, err := a.next.Ask(ctx, userID, query)
	if err != nil {
		a.logger.Error("query failed",
			"user", userID,
			"query", query,
			"code", kidzpolicy.ErrorCode(err),
			"duration", time.Since(begin),
		)
		return nil, err
	}
	a.logger.Info("query answered",
		"user", userID,
		"query", query,
		"id", envelope.QueryID,
		"source", envelope.Source,
		"primary", envelope.PrimaryPolicyID,
		"duration", time.Since(begin),
	)
	return envelope, nil
}
