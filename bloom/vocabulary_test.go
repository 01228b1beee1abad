package bloom_test

import (
	"testing"

	"github.com/redefinechurch/kidzpolicy"
	"github.com/redefinechurch/kidzpolicy/bloom"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testVocabulary(t *testing.T) *bloom.Vocabulary {
	t.Helper()

	policies := []*kidzpolicy.Policy{
		{
			ID:       "safety-policies",
			Title:    "Safety Policies",
			Summary:  "Check-in procedures and supervision standards",
			Content:  "Use the kiosk in the lobby. Every room follows the two-adult rule.",
			Category: "Safety",
			Tags:     []string{"emergency"},
		},
		{
			ID:      "training-development",
			Title:   "Training & Development",
			Content: "New volunteers complete orientation before serving.",
		},
	}

	return bloom.NewVocabulary(policies, bloom.DefaultFPRate)
}

func TestVocabulary_Contains(t *testing.T) {
	t.Parallel()

	v := testVocabulary(t)

	t.Run("knows corpus tokens from every field", func(t *testing.T) {
		t.Parallel()

		assert.True(t, v.Contains("kiosk"))
		assert.True(t, v.Contains("supervision"))
		assert.True(t, v.Contains("Safety"))
		assert.True(t, v.Contains("emergency"))
		assert.True(t, v.Contains("orientation"))
	})

	t.Run("knows token prefixes", func(t *testing.T) {
		t.Parallel()

		assert.True(t, v.Contains("train"))
		assert.True(t, v.Contains("orient"))
	})

	t.Run("knows query-side synonym phrases", func(t *testing.T) {
		t.Parallel()

		assert.True(t, v.Contains("call time"))
		assert.True(t, v.Contains("checkin"))
	})
}

func TestVocabulary_AnyKnown(t *testing.T) {
	t.Parallel()

	v := testVocabulary(t)

	t.Run("accepts queries sharing any corpus term", func(t *testing.T) {
		t.Parallel()

		assert.True(t, v.AnyKnown("where is the kiosk located"))
		assert.True(t, v.AnyKnown("TRAINING requirements"))
		assert.True(t, v.AnyKnown("what is the call time"))
	})

	t.Run("rejects blank queries", func(t *testing.T) {
		t.Parallel()

		assert.False(t, v.AnyKnown(""))
		assert.False(t, v.AnyKnown("   "))
	})
}

func TestVocabulary_EstimatedCount(t *testing.T) {
	t.Parallel()

	v := testVocabulary(t)
	require.Greater(t, v.EstimatedCount(), uint(0))
}
