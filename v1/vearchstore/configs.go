package vearchstore

import (
	"fmt"
	"time"

	"github.com/vearch-contrib/vearchstore/v1/vearch"
)

// PropertyType is the declared type of a metadata field in the space schema.
// The set is closed; mapping a field with any other type is a configuration
// error.
type PropertyType string

const (
	PropertyString  PropertyType = "string"
	PropertyFloat   PropertyType = "float"
	PropertyInteger PropertyType = "integer"
	PropertyVector  PropertyType = "vector"
)

// PropertyConfig declares one document field of the space schema: its type
// and, where applicable, vector dimension and index settings. Passed through
// opaquely to space creation.
type PropertyConfig struct {
	Type      PropertyType `yaml:"type"`
	Dimension int          `yaml:"dimension,omitempty"`
	Index     bool         `yaml:"index,omitempty"`
	Format    string       `yaml:"format,omitempty"`
	StoreType string       `yaml:"store_type,omitempty"`
}

// EngineConfig holds space-level engine parameters, forwarded verbatim to
// schema creation.
type EngineConfig struct {
	Name          string `yaml:"name"`
	IndexSize     int64  `yaml:"index_size,omitempty"`
	RetrievalType string `yaml:"retrieval_type,omitempty"`
	MetricType    string `yaml:"metric_type,omitempty"`
}

// ModelConfig binds a server-side model to the space.
type ModelConfig struct {
	ModelID string   `yaml:"model_id"`
	Fields  []string `yaml:"fields,omitempty"`
	Out     string   `yaml:"out,omitempty"`
}

// SchemaConfig describes the document shape of the space the store writes
// to: where the vector lives, where the text lives, and which metadata
// fields exist with which declared types.
//
// A SchemaConfig is read-only after construction and safe to share across
// concurrent store calls.
type SchemaConfig struct {
	// DatabaseName is the Vearch database the space lives in.
	DatabaseName string `yaml:"database_name"`

	// SpaceName is the schema-bound document collection within the database.
	SpaceName string `yaml:"space_name"`

	// EmbeddingFieldName is the document field holding the vector.
	EmbeddingFieldName string `yaml:"embedding_field_name"`

	// TextFieldName is the document field holding the segment text.
	TextFieldName string `yaml:"text_field_name"`

	// MetadataFieldNames lists the metadata fields written with every
	// document, in order. Each name must have an entry in Properties.
	MetadataFieldNames []string `yaml:"metadata_field_names,omitempty"`

	// Properties declares the type of every document field.
	Properties map[string]PropertyConfig `yaml:"properties"`

	// Engine holds opaque space-engine parameters for schema creation.
	Engine EngineConfig `yaml:"engine"`

	// Models holds optional server-side model bindings for schema creation.
	Models []ModelConfig `yaml:"models,omitempty"`
}

// DefaultSchemaConfig returns the schema used when a store is built without
// an explicit one: a 384-dimension vector field, a text field, no metadata
// fields, and a gamma engine with flat inner-product retrieval.
func DefaultSchemaConfig() *SchemaConfig {
	return &SchemaConfig{
		DatabaseName:       "embedding_db",
		SpaceName:          "embedding_space",
		EmbeddingFieldName: "embedding",
		TextFieldName:      "text",
		Properties: map[string]PropertyConfig{
			"embedding": {Type: PropertyVector, Dimension: 384, Index: true},
			"text":      {Type: PropertyString},
		},
		Engine: EngineConfig{
			Name:          "gamma",
			IndexSize:     1,
			RetrievalType: "FLAT",
			MetricType:    "InnerProduct",
		},
	}
}

// Validate ensures the schema names required by the document shape are set.
func (s *SchemaConfig) Validate() error {
	if s.DatabaseName == "" {
		return fmt.Errorf("%w: database name", ErrMissingSchemaName)
	}
	if s.SpaceName == "" {
		return fmt.Errorf("%w: space name", ErrMissingSchemaName)
	}
	if s.EmbeddingFieldName == "" {
		return fmt.Errorf("%w: embedding field name", ErrMissingSchemaName)
	}
	if s.TextFieldName == "" {
		return fmt.Errorf("%w: text field name", ErrMissingSchemaName)
	}
	return nil
}

// toCreateSpaceRequest converts the schema into the wire-level space
// definition. Replica and partition counts are fixed: the store manages a
// single-partition space.
func (s *SchemaConfig) toCreateSpaceRequest() vearch.CreateSpaceRequest {
	properties := make(map[string]vearch.SpaceProperty, len(s.Properties))
	for name, prop := range s.Properties {
		wire := vearch.SpaceProperty{
			Type:      string(prop.Type),
			Dimension: prop.Dimension,
			Format:    prop.Format,
			StoreType: prop.StoreType,
		}
		if prop.Index {
			index := true
			wire.Index = &index
		}
		properties[name] = wire
	}

	var models []vearch.ModelParam
	for _, m := range s.Models {
		models = append(models, vearch.ModelParam{
			ModelID: m.ModelID,
			Fields:  m.Fields,
			Out:     m.Out,
		})
	}

	return vearch.CreateSpaceRequest{
		Name: s.SpaceName,
		Engine: &vearch.SpaceEngine{
			Name:          s.Engine.Name,
			IndexSize:     s.Engine.IndexSize,
			RetrievalType: s.Engine.RetrievalType,
			RetrievalParam: &vearch.RetrievalParam{
				MetricType: s.Engine.MetricType,
			},
		},
		ReplicaNum:   bootstrapReplicaNum,
		PartitionNum: bootstrapPartitionNum,
		Properties:   properties,
		Models:       models,
	}
}

// Config holds the settings for building a Store.
//
// Example:
//
//	store, err := vearchstore.NewStore(ctx, vearchstore.Config{
//	    BaseURL: "http://localhost:9001",
//	    Schema:  mySchema,
//	})
type Config struct {
	// BaseURL of the Vearch master/router endpoint. Required.
	BaseURL string `yaml:"base_url" env:"VEARCH_BASE_URL"`

	// Timeout for every request. Defaults to 60 seconds.
	Timeout time.Duration `yaml:"timeout" env:"VEARCH_TIMEOUT"`

	// Schema describes the space's document shape.
	// Defaults to DefaultSchemaConfig().
	Schema *SchemaConfig `yaml:"schema"`

	// NormalizeEmbeddings rescales embeddings to unit L2 norm before they
	// are stored. The rescale happens in place on the caller's vector.
	NormalizeEmbeddings bool `yaml:"normalize_embeddings"`
}
