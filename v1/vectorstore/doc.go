// Package vectorstore defines the database-agnostic domain model for
// embedding stores: embeddings, text segments, search requests and matches,
// and the Store interface concrete adapters implement.
//
// The package carries no I/O. Its one piece of behaviour is the numeric
// contract between raw cosine similarity and the normalized relevance score:
//
//	relevance = (cosine + 1) / 2        // RelevanceFromCosine
//	cosine    = 2*relevance - 1         // CosineFromRelevance
//
// so that a relevance threshold given by a caller composes back to exactly
// the raw similarity threshold sent to the backing service.
//
// # Basic Usage
//
//	var store vectorstore.Store = ... // e.g. vearchstore.NewStore(cfg)
//
//	id, err := store.AddWithSegment(ctx, embedding, vectorstore.TextSegment{
//	    Text:     "the quick brown fox",
//	    Metadata: map[string]interface{}{"year": 2024},
//	})
//
//	result, err := store.Search(ctx, vectorstore.SearchRequest{
//	    QueryEmbedding: embedding,
//	    MaxResults:     5,
//	    MinScore:       0.8,
//	})
package vectorstore
