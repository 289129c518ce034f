package vearch

// Document is a schema-conformant Vearch document. Keys are field names;
// the reserved "_id" key carries the document identifier.
type Document map[string]interface{}

// Database describes a database known to the Vearch master.
type Database struct {
	ID   int    `json:"id,omitempty"`
	Name string `json:"name"`
}

// Space describes a space (schema-bound document collection) within a database.
type Space struct {
	ID   int    `json:"id,omitempty"`
	Name string `json:"name"`
}

// CreateSpaceRequest is the schema definition sent when creating a space.
type CreateSpaceRequest struct {
	Name         string                   `json:"name"`
	Engine       *SpaceEngine             `json:"engine,omitempty"`
	ReplicaNum   int                      `json:"replica_num"`
	PartitionNum int                      `json:"partition_num"`
	Properties   map[string]SpaceProperty `json:"properties"`
	Models       []ModelParam             `json:"models,omitempty"`
}

// SpaceEngine holds space-level engine parameters, passed through opaquely to
// the server.
type SpaceEngine struct {
	Name           string          `json:"name"`
	IndexSize      int64           `json:"index_size,omitempty"`
	RetrievalType  string          `json:"retrieval_type,omitempty"`
	RetrievalParam *RetrievalParam `json:"retrieval_param,omitempty"`
}

// RetrievalParam tunes the engine's retrieval index.
type RetrievalParam struct {
	MetricType string `json:"metric_type,omitempty"`
	Ncentroids int    `json:"ncentroids,omitempty"`
	Nsubvector int    `json:"nsubvector,omitempty"`
}

// SpaceProperty declares the type (and, for vectors, the dimension) of a
// single document field in the space schema.
type SpaceProperty struct {
	Type      string `json:"type"`
	Index     *bool  `json:"index,omitempty"`
	Dimension int    `json:"dimension,omitempty"`
	StoreType string `json:"store_type,omitempty"`
	Format    string `json:"format,omitempty"`
}

// ModelParam configures a server-side model bound to the space.
type ModelParam struct {
	ModelID string   `json:"model_id,omitempty"`
	Fields  []string `json:"fields,omitempty"`
	Out     string   `json:"out,omitempty"`
}

// SearchRequest is the wire shape of a Vearch vector search.
type SearchRequest struct {
	Query  QueryParam `json:"query"`
	Size   int        `json:"size"`
	Fields []string   `json:"fields,omitempty"`
}

// QueryParam holds the vector terms of a search. Vearch sums the per-term
// similarities; this client always sends exactly one term.
type QueryParam struct {
	Sum []VectorParam `json:"sum"`
}

// VectorParam is a single vector term: the field to match against, the query
// feature, and the minimum acceptable raw similarity score. MinScore is
// always serialized: zero is a valid threshold (it is what a relevance floor
// of 0.5 converts to) and must reach the server.
type VectorParam struct {
	Field    string    `json:"field"`
	Feature  []float32 `json:"feature"`
	MinScore float64   `json:"min_score"`
}

// SearchResponse is the wire shape of a Vearch search response.
type SearchResponse struct {
	Took     int  `json:"took"`
	TimedOut bool `json:"timed_out"`
	Hits     Hits `json:"hits"`
}

// Hits is the hit envelope of a search response.
type Hits struct {
	Total    int                `json:"total"`
	MaxScore float64            `json:"max_score"`
	Hits     []SearchedDocument `json:"hits"`
}

// SearchedDocument is a single raw hit. Source holds every stored field of
// the document as decoded JSON.
type SearchedDocument struct {
	ID     string                 `json:"_id"`
	Score  float64                `json:"_score"`
	Source map[string]interface{} `json:"_source"`
}

// BulkResult is the per-document outcome of a bulk write.
type BulkResult struct {
	ID     string `json:"_id"`
	Status int    `json:"status"`
	Error  string `json:"error,omitempty"`
}
