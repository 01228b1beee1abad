package kidzpolicy

import (
	"math"
	"sort"
	"strings"
)

// EmbeddingDim is the fixed length of pseudo-embedding vectors.
const EmbeddingDim = 128

// Embed converts text into a deterministic pseudo-embedding: each code
// point of the lowercased, trimmed input is added to the bucket at its
// position modulo EmbeddingDim, and the vector is normalized to unit
// length. This is a cheap stand-in for a real embedding model. It captures
// coarse character-frequency similarity, not meaning, but it is exactly
// reproducible: identical input always yields an identical vector.
func Embed(text string) []float64 {
	vec := make([]float64, EmbeddingDim)

	normalized := strings.ToLower(strings.TrimSpace(text))
	i := 0
	for _, r := range normalized {
		vec[i%EmbeddingDim] += float64(r)
		i++
	}

	var sum float64
	for _, v := range vec {
		sum += v * v
	}
	magnitude := math.Sqrt(sum)
	if magnitude == 0 {
		magnitude = 1
	}
	for i := range vec {
		vec[i] /= magnitude
	}

	return vec
}

// Similarity computes the cosine similarity of two vectors. The result is
// in [-1, 1]; zero vectors yield 0.
func Similarity(a, b []float64) float64 {
	n := min(len(a), len(b))

	var dot, normA, normB float64
	for i := 0; i < n; i++ {
		dot += a[i] * b[i]
		normA += a[i] * a[i]
		normB += b[i] * b[i]
	}

	denom := math.Sqrt(normA) * math.Sqrt(normB)
	if denom == 0 {
		return 0
	}
	return dot / denom
}

// RankBySimilarity reorders the full policy list by descending cosine
// similarity between the query embedding and each policy's embedding of
// title + " " + summary. Unlike Rank it does not filter: every policy is
// returned. Ties keep collection order.
func RankBySimilarity(query string, policies []*Policy) []ScoredCandidate {
	queryVec := Embed(query)

	candidates := make([]ScoredCandidate, 0, len(policies))
	for _, p := range policies {
		vec := Embed(p.Title + " " + p.Summary)
		candidates = append(candidates, ScoredCandidate{
			Policy: p,
			Score:  Similarity(queryVec, vec),
		})
	}

	sort.SliceStable(candidates, func(i, j int) bool {
		return candidates[i].Score > candidates[j].Score
	})

	return candidates
}
