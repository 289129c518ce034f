package vearchstore

import (
	"fmt"
	"strings"

	"github.com/vearch-contrib/vearchstore/v1/vearch"
	"github.com/vearch-contrib/vearchstore/v1/vectorstore"
)

// searchTranslator converts domain search requests into the Vearch wire
// shape and raw hits back into domain matches.
type searchTranslator struct {
	schema *SchemaConfig
}

// buildSearchRequest translates a domain request into a single-term vector
// query. The caller's relevance threshold in [0,1] becomes the raw cosine
// similarity threshold the server filters on, and the projection requests
// the vector field, the text field and every configured metadata field.
func (t searchTranslator) buildSearchRequest(req vectorstore.SearchRequest) vearch.SearchRequest {
	fields := make([]string, 0, 2+len(t.schema.MetadataFieldNames))
	fields = append(fields, t.schema.TextFieldName, t.schema.EmbeddingFieldName)
	fields = append(fields, t.schema.MetadataFieldNames...)

	return vearch.SearchRequest{
		Query: vearch.QueryParam{
			Sum: []vearch.VectorParam{{
				Field:    t.schema.EmbeddingFieldName,
				Feature:  []float32(req.QueryEmbedding),
				MinScore: vectorstore.CosineFromRelevance(req.MinScore),
			}},
		},
		Size:   req.MaxResults,
		Fields: fields,
	}
}

// translateHits converts raw hits into matches, preserving the server's
// ranking order. An empty hit list yields an empty (non-nil) slice.
//
// The read path is deliberately permissive, asymmetric with the strict
// write path: every source field except the configured vector and text
// fields becomes segment metadata, whether or not it appears in the
// configured metadata field list. A hit with blank text carries no segment,
// and its remaining source fields are ignored — metadata needs a segment to
// live on. A hit without a usable vector field fails the whole translation,
// since a match without an embedding is meaningless.
func (t searchTranslator) translateHits(hits []vearch.SearchedDocument) ([]vectorstore.EmbeddingMatch, error) {
	matches := make([]vectorstore.EmbeddingMatch, 0, len(hits))

	for _, hit := range hits {
		embedding, err := t.extractEmbedding(hit)
		if err != nil {
			return nil, err
		}

		var segment *vectorstore.TextSegment
		text := stringifySource(hit.Source[t.schema.TextFieldName])
		if strings.TrimSpace(text) != "" {
			segment = &vectorstore.TextSegment{
				Text:     text,
				Metadata: t.extractMetadata(hit.Source),
			}
		}

		matches = append(matches, vectorstore.EmbeddingMatch{
			Score:     vectorstore.RelevanceFromCosine(hit.Score),
			ID:        hit.ID,
			Embedding: embedding,
			Segment:   segment,
		})
	}

	return matches, nil
}

// extractEmbedding pulls the feature list out of the hit's vector-field
// sub-object and rebuilds the embedding.
func (t searchTranslator) extractEmbedding(hit vearch.SearchedDocument) (vectorstore.Embedding, error) {
	raw, ok := hit.Source[t.schema.EmbeddingFieldName]
	if !ok || raw == nil {
		return nil, fmt.Errorf("hit %q: %w", hit.ID, ErrMissingVectorField)
	}

	sub, ok := raw.(map[string]interface{})
	if !ok {
		return nil, fmt.Errorf("hit %q: %w", hit.ID, ErrMalformedVectorField)
	}
	feature, ok := sub["feature"].([]interface{})
	if !ok {
		return nil, fmt.Errorf("hit %q: %w", hit.ID, ErrMalformedVectorField)
	}

	embedding := make(vectorstore.Embedding, len(feature))
	for i, component := range feature {
		value, ok := component.(float64)
		if !ok {
			return nil, fmt.Errorf("hit %q: component %d: %w", hit.ID, i, ErrMalformedVectorField)
		}
		embedding[i] = float32(value)
	}
	return embedding, nil
}

// extractMetadata copies every source field except the vector and text
// fields.
func (t searchTranslator) extractMetadata(source map[string]interface{}) map[string]interface{} {
	metadata := make(map[string]interface{}, len(source))
	for key, value := range source {
		if key == t.schema.EmbeddingFieldName || key == t.schema.TextFieldName {
			continue
		}
		metadata[key] = value
	}
	return metadata
}

// stringifySource renders a source field as text. Vearch stores the text
// field as a string, but the decoded JSON value is typed interface{}.
func stringifySource(raw interface{}) string {
	if raw == nil {
		return ""
	}
	if s, ok := raw.(string); ok {
		return s
	}
	return fmt.Sprint(raw)
}
