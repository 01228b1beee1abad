package slog_test

import (
	"bytes"
	"context"
	stdslog "log/slog"
	"testing"

	"github.com/redefinechurch/kidzpolicy"
	"github.com/redefinechurch/kidzpolicy/mock"
	kidzslog "github.com/redefinechurch/kidzpolicy/slog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testLogger(buf *bytes.Buffer) *stdslog.Logger {
	return stdslog.New(stdslog.NewTextHandler(buf, &stdslog.HandlerOptions{Level: stdslog.LevelDebug}))
}

func TestLoggingAsker_Ask(t *testing.T) {
	t.Parallel()

	t.Run("delegates and logs the outcome", func(t *testing.T) {
		t.Parallel()

		next := &mock.Asker{
			AskFn: func(_ context.Context, userID, query string) (*kidzpolicy.ResponseEnvelope, error) {
				return &kidzpolicy.ResponseEnvelope{
					QueryID:         "q-1",
					AnswerText:      "Arrive by 8:15 AM.",
					PrimaryPolicyID: "team-guidelines",
					Source:          kidzpolicy.SourceLocal,
				}, nil
			},
		}

		buf := &bytes.Buffer{}
		asker := kidzslog.NewLoggingAsker(next, testLogger(buf))

		envelope, err := asker.Ask(context.Background(), "alice", "call time")
		require.NoError(t, err)
		assert.Equal(t, "q-1", envelope.QueryID)

		log := buf.String()
		assert.Contains(t, log, "query answered")
		assert.Contains(t, log, "team-guidelines")
		assert.Contains(t, log, "alice")
	})

	t.Run("logs failures with the error code", func(t *testing.T) {
		t.Parallel()

		next := &mock.Asker{
			AskFn: func(context.Context, string, string) (*kidzpolicy.ResponseEnvelope, error) {
				return nil, kidzpolicy.Errorf(kidzpolicy.ERATELIMIT, "please wait")
			},
		}

		buf := &bytes.Buffer{}
		asker := kidzslog.NewLoggingAsker(next, testLogger(buf))

		_, err := asker.Ask(context.Background(), "alice", "call time")
		require.Error(t, err)

		log := buf.String()
		assert.Contains(t, log, "query failed")
		assert.Contains(t, log, kidzpolicy.ERATELIMIT)
	})
}
