package kidzpolicy

import "context"

// AnswerSource identifies which pipeline produced an answer.
type AnswerSource string

const (
	// SourceRemote means the answer came from the remote generation service.
	SourceRemote AnswerSource = "remote"

	// SourceLocal means the answer was synthesized locally, either by
	// choice or because the remote service was unavailable.
	SourceLocal AnswerSource = "local"
)

// MaxRelatedPolicies bounds the related policy IDs and section references
// carried by a response envelope.
const MaxRelatedPolicies = 3

// ResponseEnvelope is the complete result of one answered query. It is
// created fresh per query and never persisted. Every query produces an
// envelope, even in full degraded mode.
type ResponseEnvelope struct {
	QueryID          string       `json:"queryId"`
	AnswerText       string       `json:"answerText"`
	PrimaryPolicyID  string       `json:"primaryPolicyId"`
	RelatedPolicyIDs []string     `json:"relatedPolicyIds,omitempty"` // <= MaxRelatedPolicies, unique
	RelatedSections  []SectionRef `json:"relatedSections,omitempty"`  // <= MaxRelatedPolicies
	Path             string       `json:"path"`
	Source           AnswerSource `json:"source"`
}

// Asker answers natural language questions about the policy corpus.
type Asker interface {
	// Ask produces a response envelope for the user's query.
	// Returns ERATELIMIT when the user's query budget denies the request
	// and EINVALID for a blank query; any other failure degrades to a
	// locally synthesized envelope rather than an error.
	Ask(ctx context.Context, userID string, query string) (*ResponseEnvelope, error)
}

// RemoteMetadata is the structured block a remote model may embed in its
// reply. Fields are free-text policy titles or section headings, not
// canonical IDs; resolution happens in the calling layer.
type RemoteMetadata struct {
	PrimaryPolicy   string   `json:"primaryPolicy"`
	RelatedPolicies []string `json:"relatedPolicies"`
}

// RemoteAnswer is a cleaned remote reply. Metadata is nil when the reply
// carried no parseable metadata block.
type RemoteAnswer struct {
	Text     string
	Metadata *RemoteMetadata
}

// RemoteAsker sends a prepared prompt to an external text-generation
// service. Implementations must return EINVALID for a blank prompt and
// EUNAVAILABLE for transport failures or non-success statuses.
type RemoteAsker interface {
	Generate(ctx context.Context, prompt string) (*RemoteAnswer, error)
}
