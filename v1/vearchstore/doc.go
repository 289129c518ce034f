// Package vearchstore implements an embedding store backed by the Vearch
// vector database.
//
// The store maps (id, embedding, text segment) triples onto documents in a
// single Vearch space and translates k-nearest-neighbour queries into
// Vearch's vector search. It implements the vectorstore.Store interface, so
// applications written against that interface can use Vearch as a drop-in
// backend.
//
// # Core Features
//
//   - Automatic database and space bootstrap on construction
//   - Schema-driven document mapping with typed metadata coercion
//   - Relevance scores in [0, 1] derived from raw cosine similarity
//   - Optional in-place L2 normalization of stored embeddings
//   - Pluggable transport, logger and operation observer
//   - Managed store lifecycle with Fx integration
//
// # Document Shape
//
// Every document carries the embedding under the configured vector field, the
// segment text under the configured text field, and exactly the configured
// metadata fields. Writes are strict: metadata is coerced to each field's
// declared type and unconfigured keys are dropped. Reads are permissive:
// every field a hit carries, minus the vector and text fields, comes back as
// segment metadata.
//
// # Basic Usage
//
//	store, err := vearchstore.NewStore(ctx, vearchstore.Config{
//	    BaseURL: "http://localhost:9001",
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	id, err := store.AddWithSegment(ctx, embedding, vectorstore.TextSegment{
//	    Text: "the quick brown fox",
//	})
//
//	result, err := store.Search(ctx, vectorstore.SearchRequest{
//	    QueryEmbedding: queryEmbedding,
//	    MaxResults:     5,
//	    MinScore:       0.7,
//	})
package vearchstore
