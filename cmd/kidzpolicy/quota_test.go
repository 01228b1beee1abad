package main_test

import (
	"bytes"
	"context"
	"testing"
	"time"

	"github.com/redefinechurch/kidzpolicy"
	main "github.com/redefinechurch/kidzpolicy/cmd/kidzpolicy"
	"github.com/redefinechurch/kidzpolicy/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestQuotaCmd_Run(t *testing.T) {
	t.Parallel()

	t.Run("prints daily usage", func(t *testing.T) {
		t.Parallel()

		limiter := &mock.Limiter{
			StatusFn: func(_ context.Context, userID string) (kidzpolicy.LimitStatus, error) {
				require.Equal(t, "alice", userID)
				return kidzpolicy.LimitStatus{DailyUsage: 3, DailyLimit: 50}, nil
			},
		}

		stdout := &bytes.Buffer{}
		deps := &main.Dependencies{
			Ctx:     context.Background(),
			Stdout:  stdout,
			Stderr:  &bytes.Buffer{},
			Limiter: limiter,
		}

		cmd := &main.QuotaCmd{User: "alice"}

		require.NoError(t, cmd.Run(deps))
		assert.Contains(t, stdout.String(), "3/50 queries used today")
	})

	t.Run("shows the wait when limited", func(t *testing.T) {
		t.Parallel()

		limiter := &mock.Limiter{
			StatusFn: func(context.Context, string) (kidzpolicy.LimitStatus, error) {
				return kidzpolicy.LimitStatus{
					Limited:    true,
					DailyUsage: 1,
					DailyLimit: 50,
					UntilNext:  3 * time.Second,
				}, nil
			},
		}

		stdout := &bytes.Buffer{}
		deps := &main.Dependencies{
			Ctx:     context.Background(),
			Stdout:  stdout,
			Stderr:  &bytes.Buffer{},
			Limiter: limiter,
		}

		cmd := &main.QuotaCmd{User: "alice"}

		require.NoError(t, cmd.Run(deps))
		assert.Contains(t, stdout.String(), "next query available in 3s")
	})
}
