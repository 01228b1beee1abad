package kidzpolicy

import "context"

// Policy represents a single ministry policy document. Policies are loaded
// once at startup from the embedded corpus and are immutable afterwards.
type Policy struct {
	ID          string   `json:"id"`
	Title       string   `json:"title"`
	Category    string   `json:"category"`
	Summary     string   `json:"summary"`
	Content     string   `json:"content"` // markdown
	Tags        []string `json:"tags,omitempty"`
	ContentHash string   `json:"contentHash,omitempty"`
}

// Validate returns an error if the policy contains invalid fields.
func (p *Policy) Validate() error {
	if p.ID == "" {
		return Errorf(EINVALID, "policy ID required")
	}
	if p.Title == "" {
		return Errorf(EINVALID, "policy title required")
	}
	if p.Content == "" {
		return Errorf(EINVALID, "policy content required")
	}
	return nil
}

// PolicyService provides read access to the policy collection.
// The collection order is stable and meaningful: it breaks ranking ties
// and resolves ambiguous title matches.
type PolicyService interface {
	// FindPolicyByID retrieves a policy by ID.
	// Returns ENOTFOUND if the policy does not exist.
	FindPolicyByID(ctx context.Context, id string) (*Policy, error)

	// FindPolicyByTitle retrieves a policy by exact title match.
	// Matching is case-insensitive and whitespace-trimmed on both sides.
	// Returns ENOTFOUND if no policy matches.
	FindPolicyByTitle(ctx context.Context, title string) (*Policy, error)

	// Policies returns all policies in stable collection order.
	Policies(ctx context.Context) ([]*Policy, error)
}

// ScoredCandidate pairs a policy with its relevance score for one query.
// Candidates are transient: created per query, discarded after ranking.
type ScoredCandidate struct {
	Policy *Policy `json:"policy"`
	Score  float64 `json:"score"`
}
