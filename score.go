package kidzpolicy

import (
	"sort"
	"strings"
)

// ExactPhraseBonus is the score added when the policy text contains the
// whole query as a substring.
const ExactPhraseBonus = 100

// synonymTable expands queries that rarely share vocabulary with the
// policy text they should match. Any table phrase contained in the query
// contributes its expansions, so hyphenated forms like "check-in" still
// reach the kiosk terms. Expanded terms score like the originals.
var synonymTable = map[string][]string{
	"checkin":  {"kiosk", "register", "app"},
	"check-in": {"kiosk", "register", "app"},
	"safety":   {"emergency", "protocol", "procedure"},
	"training": {"orientation", "start day", "ministry safe"},
	"schedule": {"serving", "rotation", "huddle"},
	"dress":    {"wear", "t-shirt", "lanyard", "clothing"},
}

// Score computes the lexical relevance of a policy to a query.
// It is a pure function: deterministic, no side effects, always >= 0.
func Score(query string, policy *Policy) float64 {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return 0
	}

	title := strings.ToLower(policy.Title)
	summary := strings.ToLower(policy.Summary)
	full := title + " " + summary + " " + strings.ToLower(policy.Content)

	var score float64
	if strings.Contains(full, q) {
		score += ExactPhraseBonus
	}

	for _, term := range expandTerms(q, queryTerms(q, 2)) {
		switch {
		case strings.Contains(title, term):
			score += 10
		case strings.Contains(summary, term):
			score += 5
		case strings.Contains(full, term):
			score++
		}
	}

	return score
}

// Rank scores every policy against the query and returns the candidates
// with score > 0, sorted by descending score. Ties keep collection order.
func Rank(query string, policies []*Policy) []ScoredCandidate {
	candidates := make([]ScoredCandidate, 0, len(policies))
	for _, p := range policies {
		if s := Score(query, p); s > 0 {
			candidates = append(candidates, ScoredCandidate{Policy: p, Score: s})
		}
	}

	sort.SliceStable(candidates, func(i, j int) bool {
		return candidates[i].Score > candidates[j].Score
	})

	return candidates
}

// Filter performs a basic keyword scan over the whole corpus. A policy
// matches when it contains the full query or any term of length >= 3 in
// its title, summary, content, or category. An empty query matches all.
func Filter(query string, policies []*Policy) []*Policy {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return policies
	}

	terms := queryTerms(q, 3)

	var matched []*Policy
	for _, p := range policies {
		haystack := strings.ToLower(p.Title + " " + p.Summary + " " + p.Content + " " + p.Category)
		if strings.Contains(haystack, q) {
			matched = append(matched, p)
			continue
		}
		for _, term := range terms {
			if strings.Contains(haystack, term) {
				matched = append(matched, p)
				break
			}
		}
	}

	return matched
}

// ExpansionKeys lists the query-side phrases of both synonym tables in
// sorted order. The vocabulary prefilter seeds itself with these so
// synonym-only queries are never short-circuited.
func ExpansionKeys() []string {
	keys := make([]string, 0, len(synonymTable)+len(phraseSynonyms))
	for k := range synonymTable {
		keys = append(keys, k)
	}
	for _, entry := range phraseSynonyms {
		keys = append(keys, entry.phrase)
	}
	sort.Strings(keys)
	return keys
}

// queryTerms splits a lowercased query into terms of at least minLen
// characters, stripping punctuation.
func queryTerms(q string, minLen int) []string {
	fields := strings.FieldsFunc(q, func(r rune) bool {
		return !('a' <= r && r <= 'z' || '0' <= r && r <= '9')
	})

	terms := make([]string, 0, len(fields))
	for _, f := range fields {
		if len(f) >= minLen {
			terms = append(terms, f)
		}
	}
	return terms
}

// expandTerms returns the query terms plus the expansions of every synonym
// phrase contained in the query. Duplicates are removed so a term never
// scores twice.
func expandTerms(q string, terms []string) []string {
	seen := make(map[string]bool, len(terms))
	expanded := make([]string, 0, len(terms))

	add := func(term string) {
		if !seen[term] {
			seen[term] = true
			expanded = append(expanded, term)
		}
	}

	for _, term := range terms {
		add(term)
	}
	for phrase, syns := range synonymTable {
		if !strings.Contains(q, phrase) {
			continue
		}
		for _, syn := range syns {
			add(syn)
		}
	}

	return expanded
}
