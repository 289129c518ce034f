package vearch

import (
	"bufio"
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestNewClient_MissingBaseURL(t *testing.T) {
	_, err := NewClient(&Config{})
	if !errors.Is(err, ErrMissingBaseURL) {
		t.Fatalf("expected ErrMissingBaseURL, got %v", err)
	}
}

func TestNewClient_TrimsTrailingSlash(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/list/db" {
			t.Errorf("path = %q, want /list/db", r.URL.Path)
		}
		_, _ = io.WriteString(w, `{"code":200,"msg":"success","data":[]}`)
	}))
	defer server.Close()

	client, err := NewClient(FromBaseURL(server.URL + "/"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := client.ListDatabases(context.Background()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestListDatabases(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			t.Errorf("method = %s, want GET", r.Method)
		}
		_, _ = io.WriteString(w, `{"code":200,"msg":"success","data":[{"id":1,"name":"embedding_db"}]}`)
	}))
	defer server.Close()

	client, _ := NewClient(FromBaseURL(server.URL))
	databases, err := client.ListDatabases(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(databases) != 1 || databases[0].Name != "embedding_db" {
		t.Errorf("databases = %+v", databases)
	}
}

func TestCreateDatabase_EnvelopeFailure(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = io.WriteString(w, `{"code":550,"msg":"dup db"}`)
	}))
	defer server.Close()

	client, _ := NewClient(FromBaseURL(server.URL))
	err := client.CreateDatabase(context.Background(), "embedding_db")
	if err == nil {
		t.Fatal("expected error")
	}
	if !IsAPIError(err) {
		t.Fatalf("expected APIError, got %v", err)
	}
	var apiErr *APIError
	errors.As(err, &apiErr)
	if apiErr.Code != 550 || apiErr.Msg != "dup db" {
		t.Errorf("apiErr = %+v", apiErr)
	}
}

func TestListSpaces_QueryParam(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if got := r.URL.Query().Get("db"); got != "embedding_db" {
			t.Errorf("db query = %q, want embedding_db", got)
		}
		_, _ = io.WriteString(w, `{"code":0,"data":[{"name":"embedding_space"}]}`)
	}))
	defer server.Close()

	client, _ := NewClient(FromBaseURL(server.URL))
	spaces, err := client.ListSpaces(context.Background(), "embedding_db")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(spaces) != 1 || spaces[0].Name != "embedding_space" {
		t.Errorf("spaces = %+v", spaces)
	}
}

func TestCreateSpace_SendsSchema(t *testing.T) {
	var received CreateSpaceRequest
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/space/embedding_db/_create" {
			t.Errorf("path = %q", r.URL.Path)
		}
		if err := json.NewDecoder(r.Body).Decode(&received); err != nil {
			t.Errorf("decode body: %v", err)
		}
		_, _ = io.WriteString(w, `{"code":200,"msg":"success"}`)
	}))
	defer server.Close()

	client, _ := NewClient(FromBaseURL(server.URL))
	err := client.CreateSpace(context.Background(), "embedding_db", CreateSpaceRequest{
		Name:         "embedding_space",
		Engine:       &SpaceEngine{Name: "gamma", RetrievalType: "FLAT"},
		ReplicaNum:   1,
		PartitionNum: 1,
		Properties: map[string]SpaceProperty{
			"embedding": {Type: "vector", Dimension: 3},
		},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if received.Name != "embedding_space" || received.ReplicaNum != 1 || received.PartitionNum != 1 {
		t.Errorf("received = %+v", received)
	}
	if received.Properties["embedding"].Dimension != 3 {
		t.Errorf("embedding property = %+v", received.Properties["embedding"])
	}
}

func TestBulkWrite_NDJSONFraming(t *testing.T) {
	var body []byte
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/embedding_db/embedding_space/_bulk" {
			t.Errorf("path = %q", r.URL.Path)
		}
		body, _ = io.ReadAll(r.Body)
		_, _ = io.WriteString(w, `[{"_id":"doc-1","status":200}]`)
	}))
	defer server.Close()

	client, _ := NewClient(FromBaseURL(server.URL))
	err := client.BulkWrite(context.Background(), "embedding_db", "embedding_space", []Document{
		{"_id": "doc-1", "text": "hello", "embedding": map[string]interface{}{"feature": []float32{1, 2}}},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	scanner := bufio.NewScanner(bytes.NewReader(body))
	var lines []string
	for scanner.Scan() {
		lines = append(lines, scanner.Text())
	}
	if len(lines) != 2 {
		t.Fatalf("expected 2 NDJSON lines, got %d: %q", len(lines), lines)
	}

	var action map[string]map[string]string
	if err := json.Unmarshal([]byte(lines[0]), &action); err != nil {
		t.Fatalf("decode action line: %v", err)
	}
	if action["index"]["_id"] != "doc-1" {
		t.Errorf("action line = %q", lines[0])
	}

	var fields map[string]interface{}
	if err := json.Unmarshal([]byte(lines[1]), &fields); err != nil {
		t.Fatalf("decode field line: %v", err)
	}
	if _, hasID := fields["_id"]; hasID {
		t.Error("field line must not repeat _id")
	}
	if fields["text"] != "hello" {
		t.Errorf("field line = %q", lines[1])
	}
}

func TestBulkWrite_PerDocumentFailure(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = io.WriteString(w, `[{"_id":"a","status":200},{"_id":"b","status":550,"error":"schema mismatch"}]`)
	}))
	defer server.Close()

	client, _ := NewClient(FromBaseURL(server.URL))
	err := client.BulkWrite(context.Background(), "db", "space", []Document{
		{"_id": "a"}, {"_id": "b"},
	})
	if err == nil {
		t.Fatal("expected error")
	}
	if !IsAPIError(err) {
		t.Fatalf("expected APIError, got %v", err)
	}
}

func TestSearch_DecodesHits(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var req SearchRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			t.Errorf("decode request: %v", err)
		}
		if len(req.Query.Sum) != 1 || req.Query.Sum[0].Field != "embedding" {
			t.Errorf("request = %+v", req)
		}
		_, _ = io.WriteString(w, `{
			"took": 2,
			"hits": {
				"total": 1,
				"max_score": 0.97,
				"hits": [{"_id":"doc-1","_score":0.97,"_source":{"text":"hello"}}]
			}
		}`)
	}))
	defer server.Close()

	client, _ := NewClient(FromBaseURL(server.URL))
	resp, err := client.Search(context.Background(), "db", "space", SearchRequest{
		Query: QueryParam{Sum: []VectorParam{{Field: "embedding", Feature: []float32{1, 2}, MinScore: 0.5}}},
		Size:  3,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(resp.Hits.Hits) != 1 {
		t.Fatalf("hits = %+v", resp.Hits)
	}
	hit := resp.Hits.Hits[0]
	if hit.ID != "doc-1" || hit.Score != 0.97 || hit.Source["text"] != "hello" {
		t.Errorf("hit = %+v", hit)
	}
}

func TestSearch_SerializesZeroMinScore(t *testing.T) {
	var body []byte
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, _ = io.ReadAll(r.Body)
		_, _ = io.WriteString(w, `{"took":1,"hits":{"total":0,"hits":[]}}`)
	}))
	defer server.Close()

	client, _ := NewClient(FromBaseURL(server.URL))
	_, err := client.Search(context.Background(), "db", "space", SearchRequest{
		Query: QueryParam{Sum: []VectorParam{{Field: "embedding", Feature: []float32{1, 0}, MinScore: 0}}},
		Size:  5,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// A relevance floor of 0.5 converts to a raw threshold of exactly 0; the
	// key must still be present in the wire query.
	if !bytes.Contains(body, []byte(`"min_score":0`)) {
		t.Errorf("request body = %s, want min_score serialized", body)
	}
}

func TestDoJSON_HTTPErrorStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
		_, _ = io.WriteString(w, `{"code":503,"msg":"partition not ready"}`)
	}))
	defer server.Close()

	client, _ := NewClient(FromBaseURL(server.URL))
	_, err := client.ListDatabases(context.Background())
	if err == nil {
		t.Fatal("expected error")
	}
	var apiErr *APIError
	if !errors.As(err, &apiErr) {
		t.Fatalf("expected APIError, got %v", err)
	}
	if apiErr.StatusCode != http.StatusServiceUnavailable || apiErr.Msg != "partition not ready" {
		t.Errorf("apiErr = %+v", apiErr)
	}
}

func TestDeleteSpace(t *testing.T) {
	var gotMethod, gotPath string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotMethod, gotPath = r.Method, r.URL.Path
		_, _ = io.WriteString(w, `{"code":200,"msg":"success"}`)
	}))
	defer server.Close()

	client, _ := NewClient(FromBaseURL(server.URL))
	if err := client.DeleteSpace(context.Background(), "embedding_db", "embedding_space"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if gotMethod != http.MethodDelete || gotPath != "/space/embedding_db/embedding_space" {
		t.Errorf("request = %s %s", gotMethod, gotPath)
	}
}
