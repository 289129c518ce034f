package vectorstore

// Embedding is a dense vector produced by an embedding model.
//
// The zero value is an empty embedding; most operations require a non-empty
// vector with finite components.
type Embedding []float32

// From builds an Embedding from a raw float32 slice without copying.
func From(values []float32) Embedding {
	return Embedding(values)
}

// Dimension returns the number of components in the embedding.
func (e Embedding) Dimension() int {
	return len(e)
}

// Normalize rescales the embedding to unit L2 norm in place.
//
// This mutates the receiver's backing array — callers sharing one Embedding
// value across goroutines must treat it as exclusively owned for the duration
// of the call. A zero vector is left unchanged.
func (e Embedding) Normalize() {
	norm := e.Norm()
	if norm == 0 {
		return
	}
	for i := range e {
		e[i] = float32(float64(e[i]) / norm)
	}
}

// TextSegment is a piece of text with optional structured metadata,
// stored alongside the embedding that represents it.
type TextSegment struct {
	// Text is the raw segment content
	Text string `json:"text"`

	// Metadata holds arbitrary scalar or collection values keyed by name
	Metadata map[string]interface{} `json:"metadata,omitempty"`
}

// NewTextSegment builds a TextSegment from text and metadata.
func NewTextSegment(text string, metadata map[string]interface{}) TextSegment {
	return TextSegment{Text: text, Metadata: metadata}
}

// EmbeddingMatch is a single search hit translated into domain terms.
type EmbeddingMatch struct {
	// Score is the relevance score in [0, 1], derived from raw cosine
	// similarity via (cosine+1)/2.
	Score float64 `json:"score"`

	// ID is the stored identifier of the matched entry
	ID string `json:"id"`

	// Embedding is the stored vector of the matched entry
	Embedding Embedding `json:"embedding"`

	// Segment is the stored text and metadata, nil for embedding-only entries
	Segment *TextSegment `json:"segment,omitempty"`
}

// SearchRequest describes a k-nearest-neighbour query.
type SearchRequest struct {
	// QueryEmbedding is the vector to find neighbours for
	QueryEmbedding Embedding `json:"queryEmbedding"`

	// MaxResults is the maximum number of matches to return
	MaxResults int `json:"maxResults"`

	// MinScore is the minimum relevance score in [0, 1] a match must reach
	MinScore float64 `json:"minScore"`
}

// SearchResult holds matches in the order the backing service returned them,
// descending by relevance.
type SearchResult struct {
	Matches []EmbeddingMatch `json:"matches"`
}
