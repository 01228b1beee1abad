package gemini_test

import (
	"testing"

	"github.com/redefinechurch/kidzpolicy/gemini"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCleanResponse(t *testing.T) {
	t.Parallel()

	t.Run("strips echoed role artifacts", func(t *testing.T) {
		t.Parallel()

		got := gemini.CleanResponse("<|assistant|>ASSISTANT: Arrive by 8:15 AM.</|assistant|>")
		assert.Equal(t, "Arrive by 8:15 AM.", got)
	})

	t.Run("leaves clean text alone", func(t *testing.T) {
		t.Parallel()
		assert.Equal(t, "Arrive by 8:15 AM.", gemini.CleanResponse("  Arrive by 8:15 AM.  "))
	})
}

func TestExtractMetadata(t *testing.T) {
	t.Parallel()

	t.Run("parses and removes a fenced json block", func(t *testing.T) {
		t.Parallel()

		reply := "Volunteers arrive by 8:15 AM.\n\n```json\n" +
			`{"primaryPolicy": "Team Guidelines", "relatedPolicies": ["Safety Policies"]}` +
			"\n```"

		text, metadata := gemini.ExtractMetadata(reply)

		require.NotNil(t, metadata)
		assert.Equal(t, "Team Guidelines", metadata.PrimaryPolicy)
		assert.Equal(t, []string{"Safety Policies"}, metadata.RelatedPolicies)
		assert.Equal(t, "Volunteers arrive by 8:15 AM.", text)
	})

	t.Run("fails soft on a missing block", func(t *testing.T) {
		t.Parallel()

		text, metadata := gemini.ExtractMetadata("Just an answer.")
		assert.Nil(t, metadata)
		assert.Equal(t, "Just an answer.", text)
	})

	t.Run("fails soft on malformed json, keeping the text unchanged", func(t *testing.T) {
		t.Parallel()

		reply := "Answer.\n```json\n{not valid}\n```"
		text, metadata := gemini.ExtractMetadata(reply)
		assert.Nil(t, metadata)
		assert.Equal(t, reply, text)
	})

	t.Run("fails soft on an unterminated block", func(t *testing.T) {
		t.Parallel()

		reply := "Answer.\n```json\n{\"primaryPolicy\": \"x\"}"
		text, metadata := gemini.ExtractMetadata(reply)
		assert.Nil(t, metadata)
		assert.Equal(t, reply, text)
	})
}

func TestParsePrompt(t *testing.T) {
	t.Parallel()

	t.Run("splits labeled prompts into roles", func(t *testing.T) {
		t.Parallel()

		system, user := gemini.ParsePrompt("SYSTEM: You answer policy questions.\nUSER: what is the call time?\nASSISTANT:")

		assert.Equal(t, "You answer policy questions.", system)
		assert.Equal(t, "what is the call time?", user)
	})

	t.Run("treats unlabeled prompts as the query", func(t *testing.T) {
		t.Parallel()

		system, user := gemini.ParsePrompt("what is the call time?")
		assert.Empty(t, system)
		assert.Equal(t, "what is the call time?", user)
	})
}
