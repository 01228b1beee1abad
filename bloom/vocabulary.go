// Package bloom provides a corpus vocabulary prefilter using Bloom
// filters. The answer pipeline consults it to skip the remote call for
// queries that share no vocabulary with the policy corpus.
package bloom

import (
	"strings"

	"github.com/bits-and-blooms/bloom/v3"
	"github.com/redefinechurch/kidzpolicy"
)

// DefaultFPRate is the false positive rate the vocabulary is sized for.
// A false positive only costs a redundant remote attempt.
const DefaultFPRate = 0.01

// minPrefix is the shortest token prefix indexed. Prefixes make
// substring-style queries like "train" hit the "training" vocabulary.
const minPrefix = 3

// Vocabulary is a Bloom filter over the corpus vocabulary: every token of
// every policy (title, summary, content, category, tags) plus the
// query-side synonym phrases, with token prefixes down to minPrefix.
//
// False negatives are possible for mid-word matches ("rain" inside
// "training"); callers must only use a negative result to skip work the
// lexical scorer can recover, never to suppress scoring itself.
type Vocabulary struct {
	f *bloom.BloomFilter
}

// NewVocabulary builds the vocabulary for a policy collection.
func NewVocabulary(policies []*kidzpolicy.Policy, fpRate float64) *Vocabulary {
	terms := make(map[string]bool)

	collect := func(text string) {
		for _, token := range tokenize(text) {
			for n := len(token); n >= minPrefix; n-- {
				terms[token[:n]] = true
			}
			if len(token) < minPrefix {
				terms[token] = true
			}
		}
	}

	for _, p := range policies {
		collect(p.Title)
		collect(p.Summary)
		collect(p.Content)
		collect(p.Category)
		for _, tag := range p.Tags {
			collect(tag)
		}
	}
	for _, phrase := range kidzpolicy.ExpansionKeys() {
		terms[phrase] = true
		collect(phrase)
	}

	f := bloom.NewWithEstimates(uint(max(len(terms), 1)), fpRate)
	for term := range terms {
		f.AddString(term)
	}

	return &Vocabulary{f: f}
}

// Contains returns true if the term might be in the corpus vocabulary.
// False positives are possible; false negatives only for mid-word
// substrings.
func (v *Vocabulary) Contains(term string) bool {
	return v.f.TestString(strings.ToLower(strings.TrimSpace(term)))
}

// AnyKnown reports whether any term of the query might be known to the
// corpus. The whole trimmed query is tested too, so multi-word synonym
// phrases count.
func (v *Vocabulary) AnyKnown(query string) bool {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return false
	}
	if v.f.TestString(q) {
		return true
	}
	for _, token := range tokenize(q) {
		if v.f.TestString(token) {
			return true
		}
	}
	return false
}

// EstimatedCount returns the approximate number of indexed terms.
func (v *Vocabulary) EstimatedCount() uint {
	return uint(v.f.ApproximatedSize())
}

// tokenize lowercases text and splits it on non-alphanumeric runes.
func tokenize(text string) []string {
	return strings.FieldsFunc(strings.ToLower(text), func(r rune) bool {
		return !('a' <= r && r <= 'z' || '0' <= r && r <= '9')
	})
}
