package gemini

import (
	"encoding/json"
	"strings"

	"github.com/redefinechurch/kidzpolicy"
)

var assistantArtifacts = []string{"<|assistant|>", "</|assistant|>", "ASSISTANT:"}

// CleanResponse strips role-token artifacts some models echo back into
// their replies.
func CleanResponse(text string) string {
	for _, artifact := range assistantArtifacts {
		text = strings.ReplaceAll(text, artifact, "")
	}
	return strings.TrimSpace(text)
}

// ExtractMetadata pulls an embedded fenced JSON metadata block out of the
// reply. On success the block is removed from the visible text; a missing
// or malformed block fails soft with nil metadata and the text unchanged.
func ExtractMetadata(text string) (string, *kidzpolicy.RemoteMetadata) {
	start := strings.Index(text, "```json")
	if start < 0 {
		return text, nil
	}

	body := text[start+len("```json"):]
	end := strings.Index(body, "```")
	if end < 0 {
		return text, nil
	}

	var metadata kidzpolicy.RemoteMetadata
	if err := json.Unmarshal([]byte(strings.TrimSpace(body[:end])), &metadata); err != nil {
		return text, nil
	}

	cleaned := strings.TrimSpace(text[:start] + body[end+len("```"):])
	return cleaned, &metadata
}
