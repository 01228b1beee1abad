package main_test

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/redefinechurch/kidzpolicy"
	main "github.com/redefinechurch/kidzpolicy/cmd/kidzpolicy"
	"github.com/redefinechurch/kidzpolicy/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestListCmd_Run(t *testing.T) {
	t.Parallel()

	t.Run("lists policies with ID, title, and category", func(t *testing.T) {
		t.Parallel()

		policies := &mock.PolicyService{
			PoliciesFn: func(context.Context) ([]*kidzpolicy.Policy, error) {
				return []*kidzpolicy.Policy{
					{ID: "team-guidelines", Title: "2. Team Guidelines", Category: "Team"},
					{ID: "safety-policies", Title: "3. Safety Policies", Category: "Safety"},
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

		cmd := &main.ListCmd{}

		require.NoError(t, cmd.Run(deps))

		output := stdout.String()
		assert.Contains(t, output, "team-guidelines")
		assert.Contains(t, output, "2. Team Guidelines")
		assert.Contains(t, output, "[Safety]")
	})

	t.Run("filters by keyword", func(t *testing.T) {
		t.Parallel()

		policies := &mock.PolicyService{
			PoliciesFn: func(context.Context) ([]*kidzpolicy.Policy, error) {
				return []*kidzpolicy.Policy{
					{ID: "team-guidelines", Title: "Team Guidelines", Category: "Team", Content: "Arrive early."},
					{ID: "safety-policies", Title: "Safety Policies", Category: "Safety", Content: "Use the kiosk."},
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

		cmd := &main.ListCmd{Query: "kiosk"}

		require.NoError(t, cmd.Run(deps))

		output := stdout.String()
		assert.Contains(t, output, "safety-policies")
		assert.NotContains(t, output, "team-guidelines")
	})

	t.Run("reports when the filter matches nothing", func(t *testing.T) {
		t.Parallel()

		policies := &mock.PolicyService{
			PoliciesFn: func(context.Context) ([]*kidzpolicy.Policy, error) {
				return []*kidzpolicy.Policy{
					{ID: "team-guidelines", Title: "Team Guidelines", Category: "Team", Content: "Arrive early."},
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

		cmd := &main.ListCmd{Query: "zzqx"}

		require.NoError(t, cmd.Run(deps))
		assert.Contains(t, stdout.String(), "No policies match")
	})

	t.Run("returns error when the policy store fails", func(t *testing.T) {
		t.Parallel()

		storeErr := errors.New("corpus unavailable")
		policies := &mock.PolicyService{
			PoliciesFn: func(context.Context) ([]*kidzpolicy.Policy, error) {
				return nil, storeErr
			},
		}

		stderr := &bytes.Buffer{}
		deps := &main.Dependencies{
			Ctx:      context.Background(),
			Stdout:   &bytes.Buffer{},
			Stderr:   stderr,
			Policies: policies,
		}

		cmd := &main.ListCmd{}

		err := cmd.Run(deps)
		require.Error(t, err)
		assert.Equal(t, storeErr, err)
		assert.Contains(t, stderr.String(), "error:")
	})
}
