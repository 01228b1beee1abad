package kidzpolicy_test

import (
	"errors"
	"testing"

	"github.com/redefinechurch/kidzpolicy"
	"github.com/stretchr/testify/assert"
)

func TestErrorCode(t *testing.T) {
	t.Parallel()

	t.Run("returns code for application errors", func(t *testing.T) {
		t.Parallel()
		err := kidzpolicy.Errorf(kidzpolicy.ENOTFOUND, "policy %q not found", "x")
		assert.Equal(t, kidzpolicy.ENOTFOUND, kidzpolicy.ErrorCode(err))
	})

	t.Run("returns EINTERNAL for non-application errors", func(t *testing.T) {
		t.Parallel()
		assert.Equal(t, kidzpolicy.EINTERNAL, kidzpolicy.ErrorCode(errors.New("boom")))
	})

	t.Run("returns empty string for nil", func(t *testing.T) {
		t.Parallel()
		assert.Equal(t, "", kidzpolicy.ErrorCode(nil))
	})
}

func TestErrorMessage(t *testing.T) {
	t.Parallel()

	t.Run("returns message for application errors", func(t *testing.T) {
		t.Parallel()
		err := kidzpolicy.Errorf(kidzpolicy.EINVALID, "query required")
		assert.Equal(t, "query required", kidzpolicy.ErrorMessage(err))
	})

	t.Run("returns generic message for non-application errors", func(t *testing.T) {
		t.Parallel()
		assert.Equal(t, "Internal error.", kidzpolicy.ErrorMessage(errors.New("boom")))
	})

	t.Run("returns empty string for nil", func(t *testing.T) {
		t.Parallel()
		assert.Equal(t, "", kidzpolicy.ErrorMessage(nil))
	})
}
