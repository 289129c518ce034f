package vectorstore

import "context"

// Store is the common interface for embedding stores.
// It provides a database-agnostic abstraction over vector-search services so
// applications can switch backends without changing application code.
//
// Example usage:
//
//	func NewRetriever(store vectorstore.Store) *Retriever {
//	    return &Retriever{store: store}
//	}
type Store interface {
	// Add stores an embedding under a freshly generated id and returns the id.
	Add(ctx context.Context, embedding Embedding) (string, error)

	// AddWithID stores an embedding under a caller-supplied id.
	AddWithID(ctx context.Context, id string, embedding Embedding) error

	// AddWithSegment stores an embedding together with the text segment it
	// represents, under a freshly generated id.
	AddWithSegment(ctx context.Context, embedding Embedding, segment TextSegment) (string, error)

	// AddAll stores a batch of embeddings in one round trip and returns one
	// generated id per input, in order.
	AddAll(ctx context.Context, embeddings []Embedding) ([]string, error)

	// AddAllWithSegments stores embeddings with their segments.
	// len(segments) must equal len(embeddings).
	AddAllWithSegments(ctx context.Context, embeddings []Embedding, segments []TextSegment) ([]string, error)

	// Search returns the nearest stored embeddings for the request, ordered
	// descending by relevance score. An empty result is not an error.
	Search(ctx context.Context, request SearchRequest) (*SearchResult, error)

	// DeleteSpace removes the store's entire backing collection and every
	// entry in it. Irreversible.
	DeleteSpace(ctx context.Context) error
}
