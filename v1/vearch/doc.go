// Package vearch provides a thin HTTP client for the Vearch vector database.
//
// The package covers the subset of the Vearch master/router API an embedding
// store needs: database and space lifecycle, batched document upserts, vector
// search, and space deletion. All calls are synchronous request/response
// round trips; the client performs no retries and holds no state beyond its
// connection pool, so a single Client may be shared across goroutines.
//
// # Core Features
//
//   - Managed client lifecycle with Fx integration
//   - Config struct supporting environment and YAML loading
//   - Master response-envelope ({code, msg, data}) decoding
//   - NDJSON framing for bulk writes, hidden from callers
//   - Non-success responses surfaced verbatim as *APIError
//
// # Basic Usage
//
//	client, err := vearch.NewClient(vearch.FromBaseURL("http://localhost:9001"))
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer client.Close()
//
//	databases, err := client.ListDatabases(ctx)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
// Applications normally do not use this package directly; the vearchstore
// package layers the embedding-store domain model on top of it.
package vearch
