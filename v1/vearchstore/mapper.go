package vearchstore

import (
	"fmt"

	"github.com/vearch-contrib/vearchstore/v1/vearch"
	"github.com/vearch-contrib/vearchstore/v1/vectorstore"
)

// documentMapper converts domain (id, embedding, segment) triples into
// schema-conformant Vearch documents.
type documentMapper struct {
	schema *SchemaConfig
}

// mapDocument builds one document.
//
// When normalize is set, the embedding is rescaled to unit L2 norm in place
// before serialization — the caller's vector is mutated, not copied.
//
// Metadata handling is strict: exactly the configured metadata fields are
// written, each coerced to its declared type, with the type's zero value
// when the segment carries no value for it. A configured field without a
// property declaration is a configuration error. Keys present in the
// segment's metadata but absent from the configured field list are dropped.
func (m documentMapper) mapDocument(id string, embedding vectorstore.Embedding, segment *vectorstore.TextSegment, normalize bool) (vearch.Document, error) {
	if id == "" {
		return nil, ErrEmptyID
	}
	if embedding.Dimension() == 0 {
		return nil, ErrEmptyEmbedding
	}

	if normalize {
		embedding.Normalize()
	}

	doc := vearch.Document{
		"_id": id,
		m.schema.EmbeddingFieldName: map[string]interface{}{
			"feature": []float32(embedding),
		},
	}

	text := ""
	if segment != nil {
		text = segment.Text
	}
	doc[m.schema.TextFieldName] = text

	for _, field := range m.schema.MetadataFieldNames {
		prop, ok := m.schema.Properties[field]
		if !ok {
			return nil, fmt.Errorf("%w: %q", ErrUnconfiguredField, field)
		}

		var raw interface{}
		if segment != nil {
			raw = segment.Metadata[field]
		}
		value, err := coerceValue(raw, prop.Type)
		if err != nil {
			return nil, fmt.Errorf("field %q: %w", field, err)
		}
		doc[field] = value
	}

	return doc, nil
}

// mapDocuments builds one document per index. Validation covers the whole
// batch before any document is produced, so a failure never leaves partial
// work behind.
func (m documentMapper) mapDocuments(ids []string, embeddings []vectorstore.Embedding, segments []vectorstore.TextSegment, normalize bool) ([]vearch.Document, error) {
	if len(ids) == 0 || len(embeddings) == 0 {
		return nil, ErrEmptyBatch
	}
	if len(ids) != len(embeddings) {
		return nil, ErrSizeMismatch
	}
	if segments != nil && len(segments) != len(embeddings) {
		return nil, ErrSizeMismatch
	}

	documents := make([]vearch.Document, 0, len(ids))
	for i := range ids {
		var segment *vectorstore.TextSegment
		if segments != nil {
			segment = &segments[i]
		}
		doc, err := m.mapDocument(ids[i], embeddings[i], segment, normalize)
		if err != nil {
			return nil, err
		}
		documents = append(documents, doc)
	}
	return documents, nil
}

// coerceValue applies the declared type's coercion and default rule.
// The type set is closed; anything else is a configuration error.
func coerceValue(raw interface{}, propertyType PropertyType) (interface{}, error) {
	switch propertyType {
	case PropertyString:
		if raw == nil {
			return "", nil
		}
		return fmt.Sprint(raw), nil
	case PropertyFloat:
		if raw == nil {
			return 0.0, nil
		}
		return raw, nil
	case PropertyInteger:
		if raw == nil {
			return 0, nil
		}
		return raw, nil
	case PropertyVector:
		if raw == nil {
			return []interface{}{}, nil
		}
		return raw, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownPropertyType, propertyType)
	}
}
