package vearchstore

import (
	"errors"
	"math"
	"testing"

	"github.com/vearch-contrib/vearchstore/v1/vearch"
	"github.com/vearch-contrib/vearchstore/v1/vectorstore"
)

func vectorSource(components ...interface{}) map[string]interface{} {
	return map[string]interface{}{"feature": components}
}

func TestBuildSearchRequest(t *testing.T) {
	translator := searchTranslator{schema: testSchema()}

	req := translator.buildSearchRequest(vectorstore.SearchRequest{
		QueryEmbedding: vectorstore.Embedding{1, 2},
		MaxResults:     7,
		MinScore:       0.75,
	})

	if len(req.Query.Sum) != 1 {
		t.Fatalf("sum terms = %d, want 1", len(req.Query.Sum))
	}
	term := req.Query.Sum[0]
	if term.Field != "embedding" {
		t.Errorf("field = %q", term.Field)
	}
	if len(term.Feature) != 2 {
		t.Errorf("feature = %v", term.Feature)
	}
	// relevance 0.75 corresponds to raw cosine 0.5
	if math.Abs(term.MinScore-0.5) > 1e-9 {
		t.Errorf("min score = %v, want 0.5", term.MinScore)
	}
	if req.Size != 7 {
		t.Errorf("size = %d", req.Size)
	}

	wantFields := []string{"text", "embedding", "title", "year", "weight"}
	if len(req.Fields) != len(wantFields) {
		t.Fatalf("fields = %v", req.Fields)
	}
	for i, want := range wantFields {
		if req.Fields[i] != want {
			t.Errorf("fields[%d] = %q, want %q", i, req.Fields[i], want)
		}
	}
}

func TestTranslateHits_Empty(t *testing.T) {
	translator := searchTranslator{schema: testSchema()}

	matches, err := translator.translateHits(nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if matches == nil || len(matches) != 0 {
		t.Errorf("matches = %#v, want empty non-nil slice", matches)
	}
}

func TestTranslateHits_FullHit(t *testing.T) {
	translator := searchTranslator{schema: testSchema()}

	matches, err := translator.translateHits([]vearch.SearchedDocument{{
		ID:    "doc-1",
		Score: 0.5,
		Source: map[string]interface{}{
			"embedding": vectorSource(0.6, 0.8),
			"text":      "hello",
			"title":     "greeting",
			"year":      float64(2024),
		},
	}})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(matches) != 1 {
		t.Fatalf("matches = %d", len(matches))
	}

	match := matches[0]
	if match.ID != "doc-1" {
		t.Errorf("id = %q", match.ID)
	}
	// raw cosine 0.5 becomes relevance 0.75
	if math.Abs(match.Score-0.75) > 1e-9 {
		t.Errorf("score = %v, want 0.75", match.Score)
	}
	if match.Embedding.Dimension() != 2 || math.Abs(float64(match.Embedding[0])-0.6) > 1e-6 {
		t.Errorf("embedding = %v", match.Embedding)
	}
	if match.Segment == nil {
		t.Fatal("expected a segment")
	}
	if match.Segment.Text != "hello" {
		t.Errorf("text = %q", match.Segment.Text)
	}
	if match.Segment.Metadata["title"] != "greeting" {
		t.Errorf("metadata = %v", match.Segment.Metadata)
	}
	if _, ok := match.Segment.Metadata["embedding"]; ok {
		t.Error("metadata must not contain the vector field")
	}
	if _, ok := match.Segment.Metadata["text"]; ok {
		t.Error("metadata must not contain the text field")
	}
}

func TestTranslateHits_ReadPathIsPermissive(t *testing.T) {
	translator := searchTranslator{schema: testSchema()}

	// "annotator" is not in the configured metadata field list, but the read
	// path keeps everything except the vector and text fields.
	matches, err := translator.translateHits([]vearch.SearchedDocument{{
		ID:    "doc-1",
		Score: 1,
		Source: map[string]interface{}{
			"embedding": vectorSource(1.0),
			"text":      "hello",
			"annotator": "alice",
		},
	}})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if matches[0].Segment.Metadata["annotator"] != "alice" {
		t.Errorf("metadata = %v, want annotator kept", matches[0].Segment.Metadata)
	}
}

func TestTranslateHits_BlankTextMeansNoSegment(t *testing.T) {
	translator := searchTranslator{schema: testSchema()}

	for _, text := range []interface{}{"", "   ", nil} {
		matches, err := translator.translateHits([]vearch.SearchedDocument{{
			ID:    "doc-1",
			Score: 1,
			Source: map[string]interface{}{
				"embedding": vectorSource(1.0),
				"text":      text,
				"title":     "orphaned",
			},
		}})
		if err != nil {
			t.Fatalf("text=%q: unexpected error: %v", text, err)
		}
		if matches[0].Segment != nil {
			t.Errorf("text=%q: expected nil segment, got %+v", text, matches[0].Segment)
		}
	}
}

func TestTranslateHits_MissingVectorField(t *testing.T) {
	translator := searchTranslator{schema: testSchema()}

	_, err := translator.translateHits([]vearch.SearchedDocument{{
		ID:     "doc-1",
		Source: map[string]interface{}{"text": "hello"},
	}})
	if !errors.Is(err, ErrMissingVectorField) {
		t.Fatalf("expected ErrMissingVectorField, got %v", err)
	}
	if !IsTranslationError(err) {
		t.Error("expected IsTranslationError to match")
	}
}

func TestTranslateHits_MalformedVectorField(t *testing.T) {
	translator := searchTranslator{schema: testSchema()}

	cases := map[string]interface{}{
		"not an object":         "oops",
		"feature not a list":    map[string]interface{}{"feature": "oops"},
		"non-numeric component": vectorSource(1.0, "two"),
	}
	for name, raw := range cases {
		_, err := translator.translateHits([]vearch.SearchedDocument{{
			ID:     "doc-1",
			Source: map[string]interface{}{"embedding": raw},
		}})
		if !errors.Is(err, ErrMalformedVectorField) {
			t.Errorf("%s: expected ErrMalformedVectorField, got %v", name, err)
		}
	}
}

func TestTranslateHits_PreservesOrder(t *testing.T) {
	translator := searchTranslator{schema: testSchema()}

	hits := []vearch.SearchedDocument{
		{ID: "first", Score: 0.9, Source: map[string]interface{}{"embedding": vectorSource(1.0)}},
		{ID: "second", Score: 0.5, Source: map[string]interface{}{"embedding": vectorSource(1.0)}},
		{ID: "third", Score: 0.1, Source: map[string]interface{}{"embedding": vectorSource(1.0)}},
	}
	matches, err := translator.translateHits(hits)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for i, want := range []string{"first", "second", "third"} {
		if matches[i].ID != want {
			t.Errorf("matches[%d].ID = %q, want %q", i, matches[i].ID, want)
		}
	}
}
