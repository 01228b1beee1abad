package kidzpolicy

import (
	"fmt"
	"math/rand/v2"
	"sort"
	"strings"
)

// simpleQueryMaxWords is the word-count threshold below which a query is
// answered with a single extracted sentence rather than a paragraph.
const simpleQueryMaxWords = 4

// longParagraphLimit is the character length above which an answer
// paragraph is re-split into its most relevant sentences.
const longParagraphLimit = 150

// phraseSynonyms maps short query phrases to terms that typically appear
// in the policy line answering them. Each related term present in a
// paragraph adds 2 to its score. Table order decides which phrase counts
// when a query contains several.
var phraseSynonyms = []struct {
	phrase  string
	related []string
}{
	{"call time", []string{"arrive", "arrival", "before service", "30 minutes"}},
	{"dress code", []string{"wear", "t-shirt", "lanyard", "clothing"}},
	{"check-in", []string{"check in", "checkin", "security tag", "name tag"}},
	{"training", []string{"orientation", "required training"}},
	{"schedule", []string{"serving", "rotation", "twice per month", "commit"}},
}

// responseOpeners and responseClosers frame synthesized answers in the
// ministry's conversational voice. The empty entries keep some answers
// unframed.
var responseOpeners = []string{
	"",
	"Great question! ",
	"I'd be happy to help with that. ",
	"Here's what you need to know: ",
	"Let me share some insight on this. ",
}

var responseClosers = []string{
	"",
	" Hope that helps!",
	" Let me know if you need anything else.",
	" This reflects our approach to ministry at Redefine Church.",
	" Feel free to ask if you have more questions.",
}

// Synthesizer builds short conversational answers from policy content
// without calling any remote service. The only non-determinism is the
// opener/closer selection, isolated behind the injected random source.
type Synthesizer struct {
	rng *rand.Rand
}

// NewSynthesizer creates a Synthesizer. A nil rng selects a default
// pseudo-random source; tests pass a seeded one to pin framing.
func NewSynthesizer(rng *rand.Rand) *Synthesizer {
	if rng == nil {
		rng = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	return &Synthesizer{rng: rng}
}

// Synthesize produces an answer to the query from the policy content.
// It never fails: when no paragraph matches any query term it returns a
// fixed fallback message.
func (s *Synthesizer) Synthesize(query string, policy *Policy) string {
	paragraphs := relevantParagraphs(query, policy.Content)
	if len(paragraphs) == 0 {
		return fmt.Sprintf("I don't have specific information about %s in our policies.", query)
	}

	if isSimpleQuery(query) {
		if line := mostRelevantLine(query, paragraphs); line != "" {
			return s.opener() + line + s.closer()
		}
	}

	answer := paragraphs[0]
	if len(answer) > longParagraphLimit {
		if best := mostRelevantSentences(query, answer, 2); len(best) > 0 {
			answer = strings.Join(best, " ")
		}
	}

	return s.opener() + answer + s.closer()
}

func (s *Synthesizer) opener() string {
	return responseOpeners[s.rng.IntN(len(responseOpeners))]
}

func (s *Synthesizer) closer() string {
	return responseClosers[s.rng.IntN(len(responseClosers))]
}

// relevantParagraphs returns up to three content paragraphs ranked by
// query relevance, keeping original order on ties. Only paragraphs with a
// positive score qualify.
func relevantParagraphs(query string, content string) []string {
	q := strings.ToLower(query)
	terms := queryTerms(q, 3)

	type scored struct {
		paragraph string
		score     int
	}

	var candidates []scored
	for _, line := range strings.Split(content, "\n") {
		paragraph := strings.TrimSpace(line)
		if paragraph == "" {
			continue
		}

		lower := strings.ToLower(paragraph)

		var score int
		for _, term := range terms {
			if strings.Contains(lower, term) {
				score++
			}
		}
		if strings.Contains(lower, q) {
			score += 10
		}
		score += phraseBonus(q, lower)

		if score > 0 {
			candidates = append(candidates, scored{paragraph: paragraph, score: score})
		}
	}

	sort.SliceStable(candidates, func(i, j int) bool {
		return candidates[i].score > candidates[j].score
	})

	n := min(len(candidates), 3)
	paragraphs := make([]string, 0, n)
	for _, c := range candidates[:n] {
		paragraphs = append(paragraphs, c.paragraph)
	}
	return paragraphs
}

// phraseBonus scores a paragraph by the phrase-synonym table: 2 points per
// related term present, counting only the first table phrase contained in
// the query.
func phraseBonus(query, paragraph string) int {
	for _, entry := range phraseSynonyms {
		if !strings.Contains(query, entry.phrase) {
			continue
		}
		var bonus int
		for _, term := range entry.related {
			if strings.Contains(paragraph, term) {
				bonus += 2
			}
		}
		return bonus
	}
	return 0
}

func isSimpleQuery(query string) bool {
	return len(strings.Fields(query)) <= simpleQueryMaxWords
}

// mostRelevantLine extracts the single sentence best answering a simple
// query: an exact-substring match wins, then a special-case lookup for
// known time questions. Returns "" when no sentence qualifies.
func mostRelevantLine(query string, paragraphs []string) string {
	q := strings.ToLower(query)

	var lines []string
	for _, p := range paragraphs {
		for _, sentence := range splitSentences(p) {
			if len(sentence) > 15 {
				lines = append(lines, sentence)
			}
		}
	}

	for _, line := range lines {
		if strings.Contains(strings.ToLower(line), q) {
			return line
		}
	}

	if q == "call time" || q == "arrival time" {
		for _, line := range lines {
			lower := strings.ToLower(line)
			if strings.Contains(lower, "arrive") || strings.Contains(lower, "before service") {
				return line
			}
		}
	}

	return ""
}

// mostRelevantSentences re-splits a long paragraph and keeps the limit
// highest-scoring sentences by term overlap, original order on ties.
func mostRelevantSentences(query, paragraph string, limit int) []string {
	q := strings.ToLower(query)
	terms := queryTerms(q, 3)

	type scored struct {
		sentence string
		score    int
	}

	var candidates []scored
	for _, sentence := range splitSentences(paragraph) {
		lower := strings.ToLower(sentence)

		var score int
		for _, term := range terms {
			if strings.Contains(lower, term) {
				score++
			}
		}
		if strings.Contains(lower, q) {
			score += 5
		}

		candidates = append(candidates, scored{sentence: sentence + ".", score: score})
	}

	sort.SliceStable(candidates, func(i, j int) bool {
		return candidates[i].score > candidates[j].score
	})

	n := min(len(candidates), limit)
	sentences := make([]string, 0, n)
	for _, c := range candidates[:n] {
		sentences = append(sentences, c.sentence)
	}
	return sentences
}

// splitSentences splits text on sentence terminators and trims the parts.
// Empty parts are dropped; terminators are not preserved.
func splitSentences(text string) []string {
	parts := strings.FieldsFunc(text, func(r rune) bool {
		return r == '.' || r == '!' || r == '?'
	})

	sentences := make([]string, 0, len(parts))
	for _, part := range parts {
		if s := strings.TrimSpace(part); s != "" {
			sentences = append(sentences, s)
		}
	}
	return sentences
}
