package slog_test

import (
	"bytes"
	"context"
	"testing"
	"time"

	"github.com/redefinechurch/kidzpolicy"
	"github.com/redefinechurch/kidzpolicy/mock"
	kidzslog "github.com/redefinechurch/kidzpolicy/slog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoggingLimiter(t *testing.T) {
	t.Parallel()

	t.Run("logs denied decisions", func(t *testing.T) {
		t.Parallel()

		next := &mock.Limiter{
			CanProceedFn: func(context.Context, string) (kidzpolicy.Decision, error) {
				return kidzpolicy.Decision{
					Allowed: false,
					Reason:  kidzpolicy.ReasonThrottled,
					Wait:    3 * time.Second,
				}, nil
			},
		}

		buf := &bytes.Buffer{}
		limiter := kidzslog.NewLoggingLimiter(next, testLogger(buf))

		decision, err := limiter.CanProceed(context.Background(), "alice")
		require.NoError(t, err)
		assert.False(t, decision.Allowed)

		log := buf.String()
		assert.Contains(t, log, "query denied")
		assert.Contains(t, log, kidzpolicy.ReasonThrottled)
	})

	t.Run("stays quiet on allowed decisions", func(t *testing.T) {
		t.Parallel()

		next := &mock.Limiter{
			CanProceedFn: func(context.Context, string) (kidzpolicy.Decision, error) {
				return kidzpolicy.Decision{Allowed: true}, nil
			},
		}

		buf := &bytes.Buffer{}
		limiter := kidzslog.NewLoggingLimiter(next, testLogger(buf))

		decision, err := limiter.CanProceed(context.Background(), "alice")
		require.NoError(t, err)
		assert.True(t, decision.Allowed)
		assert.Empty(t, buf.String())
	})

	t.Run("delegates RecordSuccess and Status", func(t *testing.T) {
		t.Parallel()

		recorded := false
		next := &mock.Limiter{
			RecordSuccessFn: func(context.Context, string) error {
				recorded = true
				return nil
			},
			StatusFn: func(context.Context, string) (kidzpolicy.LimitStatus, error) {
				return kidzpolicy.LimitStatus{DailyUsage: 2, DailyLimit: 50}, nil
			},
		}

		limiter := kidzslog.NewLoggingLimiter(next, testLogger(&bytes.Buffer{}))

		require.NoError(t, limiter.RecordSuccess(context.Background(), "alice"))
		assert.True(t, recorded)

		status, err := limiter.Status(context.Background(), "alice")
		require.NoError(t, err)
		assert.Equal(t, 2, status.DailyUsage)
	})
}
