package main_test

import (
	"bytes"
	"context"
	"testing"

	"github.com/redefinechurch/kidzpolicy"
	main "github.com/redefinechurch/kidzpolicy/cmd/kidzpolicy"
	"github.com/redefinechurch/kidzpolicy/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestShowCmd_Run(t *testing.T) {
	t.Parallel()

	t.Run("prints the full policy content", func(t *testing.T) {
		t.Parallel()

		policies := &mock.PolicyService{
			FindPolicyByIDFn: func(_ context.Context, id string) (*kidzpolicy.Policy, error) {
				require.Equal(t, "safety-policies", id)
				return &kidzpolicy.Policy{
					ID:      "safety-policies",
					Title:   "3. Safety Policies",
					Content: "## 3.1 Check-In\n\nUse the kiosk.",
				}, nil
			},
		}

		stdout := &bytes.Buffer{}
		deps := &main.Dependencies{
			Ctx:      context.Background(),
			Stdout:   stdout,
			Stderr:   &bytes.Buffer{},
			Policies: policies,
		}

		cmd := &main.ShowCmd{ID: "safety-policies"}

		require.NoError(t, cmd.Run(deps))

		output := stdout.String()
		assert.Contains(t, output, "3. Safety Policies")
		assert.Contains(t, output, "Use the kiosk.")
	})

	t.Run("suggests list for unknown IDs", func(t *testing.T) {
		t.Parallel()

		policies := &mock.PolicyService{
			FindPolicyByIDFn: func(_ context.Context, id string) (*kidzpolicy.Policy, error) {
				return nil, kidzpolicy.Errorf(kidzpolicy.ENOTFOUND, "policy %q not found", id)
			},
		}

		stderr := &bytes.Buffer{}
		deps := &main.Dependencies{
			Ctx:      context.Background(),
			Stdout:   &bytes.Buffer{},
			Stderr:   stderr,
			Policies: policies,
		}

		cmd := &main.ShowCmd{ID: "nursery"}

		err := cmd.Run(deps)
		require.Error(t, err)
		assert.Equal(t, kidzpolicy.ENOTFOUND, kidzpolicy.ErrorCode(err))
		assert.Contains(t, stderr.String(), "kidzpolicy list")
	})
}
