// Package ratelimit gates queries with a per-user short-term window and
// daily quota. State is cached in memory and persisted through the
// kidzpolicy.KVStore so budgets survive restarts.
package ratelimit

import (
	"context"
	"encoding/json"
	"sync"
	"time"

	"github.com/redefinechurch/kidzpolicy"
)

// Namespace is the KV namespace holding per-user limiter state.
const Namespace = "ratelimit"

// Defaults match the production configuration: one query per five
// seconds, fifty queries per calendar day.
const (
	DefaultWindow     = 5 * time.Second
	DefaultDailyLimit = 50
)

// staleAfter is how long an idle user entry survives before the sweep
// prunes it.
const staleAfter = 24 * time.Hour

// Compile-time interface verification.
var _ kidzpolicy.Limiter = (*Limiter)(nil)

// Limiter implements kidzpolicy.Limiter. The in-memory map is the source
// of truth during a session; the KV store is read on first sight of a
// user and written on every accepted query. Persistence is best-effort:
// a failed write never blocks a query.
type Limiter struct {
	store kidzpolicy.KVStore

	mu    sync.Mutex
	state map[string]*kidzpolicy.RateLimitState

	window     time.Duration
	dailyLimit int
	bypass     bool
	now        func() time.Time
}

// Option configures a Limiter.
type Option func(*Limiter)

// WithWindow sets the short-term window between accepted queries.
func WithWindow(d time.Duration) Option {
	return func(l *Limiter) { l.window = d }
}

// WithDailyLimit sets the daily query quota.
func WithDailyLimit(n int) Option {
	return func(l *Limiter) { l.dailyLimit = n }
}

// WithBypass disables all limiting and bookkeeping. Development use only;
// this is an explicit construction-time choice, not a runtime toggle.
func WithBypass(enabled bool) Option {
	return func(l *Limiter) { l.bypass = enabled }
}

// WithClock overrides the time source so tests can pin the wall clock.
func WithClock(now func() time.Time) Option {
	return func(l *Limiter) { l.now = now }
}

// New creates a Limiter persisting through store. A nil store keeps all
// state in memory only.
func New(store kidzpolicy.KVStore, opts ...Option) *Limiter {
	l := &Limiter{
		store:      store,
		state:      make(map[string]*kidzpolicy.RateLimitState),
		window:     DefaultWindow,
		dailyLimit: DefaultDailyLimit,
		now:        time.Now,
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// CanProceed checks whether a query from the user may be dispatched. It
// does not consume budget.
func (l *Limiter) CanProceed(ctx context.Context, userID string) (kidzpolicy.Decision, error) {
	if l.bypass {
		return kidzpolicy.Decision{Allowed: true}, nil
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	now := l.now()
	state := l.loadLocked(ctx, userID)
	l.rolloverLocked(state, now)

	if state.DailyCount >= l.dailyLimit {
		reset := dayStart(now).Add(24 * time.Hour)
		return kidzpolicy.Decision{
			Allowed: false,
			Reason:  kidzpolicy.ReasonDailyExhausted,
			Wait:    reset.Sub(now),
		}, nil
	}

	if elapsed := now.Sub(state.LastQuery); elapsed < l.window {
		return kidzpolicy.Decision{
			Allowed: false,
			Reason:  kidzpolicy.ReasonThrottled,
			Wait:    l.window - elapsed,
		}, nil
	}

	return kidzpolicy.Decision{Allowed: true}, nil
}

// RecordSuccess charges an accepted query against the user's budget and
// persists the updated state.
func (l *Limiter) RecordSuccess(ctx context.Context, userID string) error {
	if l.bypass {
		return nil
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	now := l.now()
	state := l.loadLocked(ctx, userID)
	l.rolloverLocked(state, now)

	state.LastQuery = now
	state.DailyCount++

	return l.persistLocked(ctx, userID, state)
}

// Status reports the user's usage without consuming budget.
func (l *Limiter) Status(ctx context.Context, userID string) (kidzpolicy.LimitStatus, error) {
	if l.bypass {
		return kidzpolicy.LimitStatus{DailyLimit: l.dailyLimit}, nil
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	now := l.now()
	state := l.loadLocked(ctx, userID)
	l.rolloverLocked(state, now)

	untilNext := l.window - now.Sub(state.LastQuery)
	if untilNext < 0 {
		untilNext = 0
	}

	return kidzpolicy.LimitStatus{
		Limited:    untilNext > 0 || state.DailyCount >= l.dailyLimit,
		DailyUsage: state.DailyCount,
		DailyLimit: l.dailyLimit,
		UntilNext:  untilNext,
	}, nil
}

// Sweep removes per-user entries idle longer than 24 hours, in memory and
// in the store.
func (l *Limiter) Sweep(ctx context.Context) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	cutoff := l.now().Add(-staleAfter)

	for userID, state := range l.state {
		if state.LastQuery.Before(cutoff) {
			delete(l.state, userID)
			if l.store != nil {
				if err := l.store.Delete(ctx, Namespace, userID); err != nil {
					return err
				}
			}
		}
	}

	if l.store == nil {
		return nil
	}

	// Stored entries from previous sessions may never have been loaded
	// into memory; prune those too.
	keys, err := l.store.Keys(ctx, Namespace)
	if err != nil {
		return err
	}
	for _, key := range keys {
		if _, cached := l.state[key]; cached {
			continue
		}
		state := l.loadLocked(ctx, key)
		if state.LastQuery.Before(cutoff) {
			delete(l.state, key)
			if err := l.store.Delete(ctx, Namespace, key); err != nil {
				return err
			}
		}
	}

	return nil
}

// StartSweep runs Sweep on the given interval until ctx is canceled.
// Errors are dropped; a failed sweep retries on the next tick.
func (l *Limiter) StartSweep(ctx context.Context, interval time.Duration) {
	go func() {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				_ = l.Sweep(ctx)
			}
		}
	}()
}

// loadLocked returns the user's state, reading through to the store on
// first sight and creating a zero state for new users. Caller holds mu.
func (l *Limiter) loadLocked(ctx context.Context, userID string) *kidzpolicy.RateLimitState {
	if state, ok := l.state[userID]; ok {
		return state
	}

	state := &kidzpolicy.RateLimitState{DayStart: dayStart(l.now())}
	if l.store != nil {
		if raw, ok, err := l.store.Get(ctx, Namespace, userID); err == nil && ok {
			var stored kidzpolicy.RateLimitState
			if json.Unmarshal([]byte(raw), &stored) == nil {
				state = &stored
			}
		}
	}

	l.state[userID] = state
	return state
}

// rolloverLocked resets the daily counter when the wall-clock date has
// advanced past the recorded day. Caller holds mu.
func (l *Limiter) rolloverLocked(state *kidzpolicy.RateLimitState, now time.Time) {
	today := dayStart(now)
	if state.DayStart.Before(today) {
		state.DailyCount = 0
		state.DayStart = today
	}
}

// persistLocked writes the user's state to the store. Caller holds mu.
func (l *Limiter) persistLocked(ctx context.Context, userID string, state *kidzpolicy.RateLimitState) error {
	if l.store == nil {
		return nil
	}
	raw, err := json.Marshal(state)
	if err != nil {
		return err
	}
	return l.store.Put(ctx, Namespace, userID, string(raw))
}

// dayStart truncates t to local midnight.
func dayStart(t time.Time) time.Time {
	year, month, day := t.Date()
	return time.Date(year, month, day, 0, 0, 0, 0, t.Location())
}
