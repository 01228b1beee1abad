package kidzpolicy

import "strings"

// Topic override vocabularies. Remote metadata is heuristic free text, and
// two topics proved unreliable enough to pin: anything about clothing
// routes to the behavior guidelines, anything devotional routes to the
// vision policy. The dress-code override wins when both match.
var (
	dressCodeVocabulary = []string{
		"dress code", "dress", "wear", "clothing", "attire", "t-shirt", "lanyard",
	}
	devotionalVocabulary = []string{
		"devotional", "devotion", "theological", "theology", "gospel",
		"scripture", "bible", "jesus", "redeem", "restored", "vision", "movement",
	}
)

const (
	dressCodePolicyID  = "behavior-guidelines-and-discipline"
	devotionalPolicyID = "movement-vision"
)

// TopicOverride returns the forced primary policy ID when the query or
// answer text contains override vocabulary. Overrides take precedence
// over any remote metadata.
func TopicOverride(query, answer string) (string, bool) {
	text := strings.ToLower(query + " " + answer)

	for _, term := range dressCodeVocabulary {
		if strings.Contains(text, term) {
			return dressCodePolicyID, true
		}
	}
	for _, term := range devotionalVocabulary {
		if strings.Contains(text, term) {
			return devotionalPolicyID, true
		}
	}
	return "", false
}

// MatchPolicyTitle finds a policy by exact title match, case-insensitive
// and whitespace-trimmed on both sides. First match in collection order.
func MatchPolicyTitle(policies []*Policy, title string) (*Policy, bool) {
	needle := strings.ToLower(strings.TrimSpace(title))
	if needle == "" {
		return nil, false
	}
	for _, p := range policies {
		if strings.ToLower(strings.TrimSpace(p.Title)) == needle {
			return p, true
		}
	}
	return nil, false
}

// ResolveReference maps a free-text policy title or section heading from
// remote metadata onto a canonical policy. Resolution order: exact title
// match, then section heading match (exact heading preferred over
// containment), then exact content-line match, then content containment.
// Ambiguity resolves to the first match in collection order.
func ResolveReference(policies []*Policy, text string) (policyID string, section *SectionRef, ok bool) {
	needle := strings.TrimSpace(text)
	if needle == "" {
		return "", nil, false
	}

	if p, found := MatchPolicyTitle(policies, needle); found {
		return p.ID, nil, true
	}

	if ref, found := FindSection(policies, needle); found {
		return ref.PolicyID, &ref, true
	}

	lower := strings.ToLower(needle)
	for _, p := range policies {
		for _, line := range strings.Split(strings.ToLower(p.Content), "\n") {
			if strings.TrimSpace(line) == lower {
				return p.ID, nil, true
			}
		}
	}
	for _, p := range policies {
		if strings.Contains(strings.ToLower(p.Content), lower) {
			return p.ID, nil, true
		}
	}

	return "", nil, false
}

// NavigationPath maps a policy onto the app route that displays it.
func NavigationPath(p *Policy) string {
	if p == nil {
		return "/policies"
	}

	title := strings.ToLower(p.Title)
	switch {
	case p.ID == "team-guidelines" || strings.Contains(title, "volunteer"):
		return "/policies/volunteers"
	case strings.Contains(p.ID, "checkin") || strings.Contains(title, "check"):
		return "/policies/checkin"
	case strings.Contains(p.ID, "safety") || strings.Contains(title, "safety"):
		return "/policies/safety"
	case strings.Contains(p.ID, "training") || strings.Contains(title, "training"):
		return "/policies/training"
	}
	return "/policies"
}
