package vectorstore

import "math"

// RelevanceFromCosine converts a raw cosine similarity in [-1, 1] into a
// relevance score in [0, 1].
func RelevanceFromCosine(similarity float64) float64 {
	return (similarity + 1) / 2
}

// CosineFromRelevance is the inverse of RelevanceFromCosine: it converts a
// relevance score in [0, 1] back into the raw cosine similarity threshold the
// backing service understands.
func CosineFromRelevance(relevance float64) float64 {
	return 2*relevance - 1
}

// Norm returns the L2 norm of the embedding.
func (e Embedding) Norm() float64 {
	var sum float64
	for _, v := range e {
		sum += float64(v) * float64(v)
	}
	return math.Sqrt(sum)
}

// IsFinite reports whether every component of the embedding is a finite number.
func (e Embedding) IsFinite() bool {
	for _, v := range e {
		f := float64(v)
		if math.IsNaN(f) || math.IsInf(f, 0) {
			return false
		}
	}
	return true
}
