package kidzpolicy

import (
	"context"
	"time"
)

// Rate limit denial reasons.
const (
	ReasonThrottled      = "throttled"       // too soon after the last accepted query
	ReasonDailyExhausted = "daily_exhausted" // daily quota reached
)

// Decision is the outcome of a rate limit check. Wait is how long the
// user must wait before the next query can be accepted: the remainder of
// the short-term window when throttled, or the time until the daily
// rollover when exhausted.
type Decision struct {
	Allowed bool
	Reason  string
	Wait    time.Duration
}

// LimitStatus reports a user's current standing against the limiter.
type LimitStatus struct {
	Limited    bool
	DailyUsage int
	DailyLimit int
	UntilNext  time.Duration
}

// RateLimitState is the persisted per-user limiter state. A state record
// is created lazily on a user's first request and pruned after 24 hours
// of inactivity.
type RateLimitState struct {
	LastQuery  time.Time `json:"lastQuery"`
	DailyCount int       `json:"dailyCount"`
	DayStart   time.Time `json:"dayStart"`
}

// Limiter gates queries per user identifier with a short-term window and
// a daily quota.
type Limiter interface {
	// CanProceed checks whether a query from the user may be dispatched.
	// It does not consume budget; call RecordSuccess after the query is
	// accepted.
	CanProceed(ctx context.Context, userID string) (Decision, error)

	// RecordSuccess charges an accepted query against the user's budget
	// and persists the updated state.
	RecordSuccess(ctx context.Context, userID string) error

	// Status reports the user's usage without consuming budget.
	Status(ctx context.Context, userID string) (LimitStatus, error)
}
