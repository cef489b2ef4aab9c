package fuzzysld

import "math"

// SimilarityFunc scores how well two Symbolic values (a pair of Constants
// or a pair of Predicates) match, in [0, 1]. It is a pure, total function:
// it must return a value for any pair, never panic or error.
//
// The prover treats the similarity function as configuration injected at
// construction. The default, when no WithSimilarityFunc option is given,
// is CosineSimilarity. Passing WithSimilarityFunc(nil) explicitly is a
// configuration error NewProver rejects, rather than silently falling
// back to a default.
type SimilarityFunc func(a, b Symbolic) float64

// SymbolCompare returns 1.0 if a and b have the same symbol, else 0.0.
func SymbolCompare(a, b Symbolic) float64 {
	if a.Symbol() == b.Symbol() {
		return 1.0
	}
	return 0.0
}

// CosineSimilarity computes the cosine of the angle between a and b's
// embedding vectors, clamped into [0, 1]. If either operand lacks a
// vector, or the two vectors differ in length, it delegates to
// SymbolCompare rather than indexing past a shorter slice — this keeps
// the function total, as SimilarityFunc requires.
func CosineSimilarity(a, b Symbolic) float64 {
	va, vb := a.Vector(), b.Vector()
	if va == nil || vb == nil || len(va) != len(vb) {
		return SymbolCompare(a, b)
	}

	var dot, normA, normB float64
	for i := range va {
		dot += va[i] * vb[i]
		normA += va[i] * va[i]
		normB += vb[i] * vb[i]
	}
	if normA == 0 || normB == 0 {
		return SymbolCompare(a, b)
	}

	sim := dot / (math.Sqrt(normA) * math.Sqrt(normB))
	if sim < 0 {
		return 0
	}
	if sim > 1 {
		return 1
	}
	return sim
}
