package vearchstore

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/vearch-contrib/vearchstore/v1/vearch"
	"github.com/vearch-contrib/vearchstore/v1/vectorstore"
)

//
// ──────────────────────────────────────────────────────────────
//   VEARCH EMBEDDING STORE
// ──────────────────────────────────────────────────────────────
//
// This file defines the embedding store backed by a Vearch space. It
// implements vectorstore.Store on top of the transport client, composing the
// document mapper for the write path and the search translator for the read
// path.
//
// Responsibilities:
//   • Bootstrap the configured database and space on construction.
//   • Validate and map inputs before any network call happens.
//   • Translate raw search hits back into domain matches.
//   • Offer a safe API suitable for Fx dependency injection.
//

// The store manages a single-partition, single-replica space. Callers that
// need a different topology create the space out of band before building the
// store.
const (
	bootstrapReplicaNum   = 1
	bootstrapPartitionNum = 1
)

// Transport is the subset of the Vearch client the store depends on.
//
//go:generate mockgen -source=store.go -destination=mock_transport.go -package=vearchstore
type Transport interface {
	ListDatabases(ctx context.Context) ([]vearch.Database, error)
	CreateDatabase(ctx context.Context, name string) error
	ListSpaces(ctx context.Context, database string) ([]vearch.Space, error)
	CreateSpace(ctx context.Context, database string, req vearch.CreateSpaceRequest) error
	DeleteSpace(ctx context.Context, database, space string) error
	BulkWrite(ctx context.Context, database, space string, documents []vearch.Document) error
	Search(ctx context.Context, database, space string, req vearch.SearchRequest) (*vearch.SearchResponse, error)
}

// Logger defines the interface for logging operations in the vearchstore
// package. This interface allows the package to use any logging
// implementation that conforms to these methods.
type Logger interface {
	Info(msg string, err error, fields ...map[string]interface{})
	Debug(msg string, err error, fields ...map[string]interface{})
	Warn(msg string, err error, fields ...map[string]interface{})
	Error(msg string, err error, fields ...map[string]interface{})
}

// Store is an embedding store backed by one Vearch space. It is safe for
// concurrent use: the schema is read-only after construction and every
// operation is a single round trip through the transport.
type Store struct {
	schema     *SchemaConfig
	transport  Transport
	normalize  bool
	mapper     documentMapper
	translator searchTranslator
	logger     Logger
	observer   observerHook
}

var _ vectorstore.Store = (*Store)(nil)

// NewStore builds a Store with its own HTTP transport and ensures the
// configured database and space exist, creating them when absent.
//
// Example:
//
//	store, err := vearchstore.NewStore(ctx, vearchstore.Config{
//	    BaseURL: "http://localhost:9001",
//	})
func NewStore(ctx context.Context, cfg Config) (*Store, error) {
	client, err := vearch.NewClient(&vearch.Config{
		BaseURL: cfg.BaseURL,
		Timeout: cfg.Timeout,
	})
	if err != nil {
		return nil, err
	}
	return NewStoreWithTransport(ctx, cfg, client)
}

// NewStoreWithTransport builds a Store on a caller-supplied transport.
// The transport is typically a *vearch.Client but can be any implementation,
// which keeps the store testable without a running cluster.
func NewStoreWithTransport(ctx context.Context, cfg Config, transport Transport) (*Store, error) {
	store, err := newStore(cfg, transport)
	if err != nil {
		return nil, err
	}
	if err := store.bootstrap(ctx); err != nil {
		return nil, err
	}
	return store, nil
}

// newStore assembles a store without touching the network. The caller is
// responsible for running bootstrap before the first operation.
func newStore(cfg Config, transport Transport) (*Store, error) {
	schema := cfg.Schema
	if schema == nil {
		schema = DefaultSchemaConfig()
	}
	if err := schema.Validate(); err != nil {
		return nil, err
	}

	return &Store{
		schema:     schema,
		transport:  transport,
		normalize:  cfg.NormalizeEmbeddings,
		mapper:     documentMapper{schema: schema},
		translator: searchTranslator{schema: schema},
	}, nil
}

// WithLogger sets the logger for this store and returns the store for
// method chaining. When the transport is the package's own HTTP client the
// logger is propagated to it, so wire-level logs share the same sink.
func (s *Store) WithLogger(logger Logger) *Store {
	s.logger = logger
	if client, ok := s.transport.(*vearch.Client); ok {
		client.WithLogger(logger)
	}
	return s
}

// bootstrap ensures the configured database and space exist. The existence
// check and the create are separate calls, so two stores bootstrapping the
// same schema concurrently can race; the loser's create fails against the
// already-created resource and callers should treat that as benign.
func (s *Store) bootstrap(ctx context.Context) error {
	exists, err := s.databaseExists(ctx)
	if err != nil {
		return err
	}
	if !exists {
		if err := s.transport.CreateDatabase(ctx, s.schema.DatabaseName); err != nil {
			return err
		}
		s.logInfo("created database", map[string]interface{}{
			"database": s.schema.DatabaseName,
		})
	}

	exists, err = s.spaceExists(ctx)
	if err != nil {
		return err
	}
	if !exists {
		if err := s.transport.CreateSpace(ctx, s.schema.DatabaseName, s.schema.toCreateSpaceRequest()); err != nil {
			return err
		}
		s.logInfo("created space", map[string]interface{}{
			"database": s.schema.DatabaseName,
			"space":    s.schema.SpaceName,
		})
	}
	return nil
}

func (s *Store) databaseExists(ctx context.Context) (bool, error) {
	databases, err := s.transport.ListDatabases(ctx)
	if err != nil {
		return false, err
	}
	for _, db := range databases {
		if db.Name == s.schema.DatabaseName {
			return true, nil
		}
	}
	return false, nil
}

func (s *Store) spaceExists(ctx context.Context) (bool, error) {
	spaces, err := s.transport.ListSpaces(ctx, s.schema.DatabaseName)
	if err != nil {
		return false, err
	}
	for _, space := range spaces {
		if space.Name == s.schema.SpaceName {
			return true, nil
		}
	}
	return false, nil
}

// Add stores an embedding under a freshly generated id and returns the id.
func (s *Store) Add(ctx context.Context, embedding vectorstore.Embedding) (string, error) {
	id := uuid.NewString()
	if err := s.addAll(ctx, []string{id}, []vectorstore.Embedding{embedding}, nil); err != nil {
		return "", err
	}
	return id, nil
}

// AddWithID stores an embedding under a caller-supplied id.
func (s *Store) AddWithID(ctx context.Context, id string, embedding vectorstore.Embedding) error {
	return s.addAll(ctx, []string{id}, []vectorstore.Embedding{embedding}, nil)
}

// AddWithSegment stores an embedding together with the text segment it
// represents, under a freshly generated id.
func (s *Store) AddWithSegment(ctx context.Context, embedding vectorstore.Embedding, segment vectorstore.TextSegment) (string, error) {
	id := uuid.NewString()
	if err := s.addAll(ctx, []string{id}, []vectorstore.Embedding{embedding}, []vectorstore.TextSegment{segment}); err != nil {
		return "", err
	}
	return id, nil
}

// AddAll stores a batch of embeddings in one round trip and returns one
// generated id per input, in order.
func (s *Store) AddAll(ctx context.Context, embeddings []vectorstore.Embedding) ([]string, error) {
	ids := generateIDs(len(embeddings))
	if err := s.addAll(ctx, ids, embeddings, nil); err != nil {
		return nil, err
	}
	return ids, nil
}

// AddAllWithSegments stores embeddings with their segments.
// len(segments) must equal len(embeddings).
func (s *Store) AddAllWithSegments(ctx context.Context, embeddings []vectorstore.Embedding, segments []vectorstore.TextSegment) ([]string, error) {
	ids := generateIDs(len(embeddings))
	if err := s.addAll(ctx, ids, embeddings, segments); err != nil {
		return nil, err
	}
	return ids, nil
}

// addAll is the shared write path: map the whole batch first, so validation
// and coercion failures surface before any network call, then write it in
// one bulk request.
func (s *Store) addAll(ctx context.Context, ids []string, embeddings []vectorstore.Embedding, segments []vectorstore.TextSegment) error {
	documents, err := s.mapper.mapDocuments(ids, embeddings, segments, s.normalize)
	if err != nil {
		return err
	}

	err = s.observe(ctx, "bulk_write", int64(len(documents)), func() error {
		return s.transport.BulkWrite(ctx, s.schema.DatabaseName, s.schema.SpaceName, documents)
	})
	if err != nil {
		return err
	}

	s.logDebug("stored embeddings", map[string]interface{}{
		"space":     s.schema.SpaceName,
		"documents": len(documents),
	})
	return nil
}

// Search returns the nearest stored embeddings for the request, ordered
// descending by relevance score. An empty result is not an error.
func (s *Store) Search(ctx context.Context, request vectorstore.SearchRequest) (*vectorstore.SearchResult, error) {
	if request.QueryEmbedding.Dimension() == 0 {
		return nil, ErrEmptyEmbedding
	}

	var resp *vearch.SearchResponse
	err := s.observe(ctx, "search", int64(request.MaxResults), func() error {
		var searchErr error
		resp, searchErr = s.transport.Search(ctx, s.schema.DatabaseName, s.schema.SpaceName,
			s.translator.buildSearchRequest(request))
		return searchErr
	})
	if err != nil {
		return nil, err
	}

	matches, err := s.translator.translateHits(resp.Hits.Hits)
	if err != nil {
		return nil, fmt.Errorf("vearchstore: translate search hits: %w", err)
	}

	s.logDebug("search completed", map[string]interface{}{
		"space":   s.schema.SpaceName,
		"matches": len(matches),
	})
	return &vectorstore.SearchResult{Matches: matches}, nil
}

// DeleteSpace removes the store's entire space and every document in it.
// Irreversible. The store is unusable afterwards until a new one is built.
func (s *Store) DeleteSpace(ctx context.Context) error {
	return s.observe(ctx, "delete_space", 0, func() error {
		return s.transport.DeleteSpace(ctx, s.schema.DatabaseName, s.schema.SpaceName)
	})
}

func generateIDs(n int) []string {
	ids := make([]string, n)
	for i := range ids {
		ids[i] = uuid.NewString()
	}
	return ids
}

func (s *Store) logInfo(msg string, fields map[string]interface{}) {
	if s.logger != nil {
		s.logger.Info(msg, nil, fields)
	}
}

func (s *Store) logDebug(msg string, fields map[string]interface{}) {
	if s.logger != nil {
		s.logger.Debug(msg, nil, fields)
	}
}
