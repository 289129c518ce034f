package vearch

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
)

// ListDatabases returns all databases known to the Vearch master.
func (c *Client) ListDatabases(ctx context.Context) ([]Database, error) {
	data, err := c.doEnveloped(ctx, http.MethodGet, "/list/db", nil)
	if err != nil {
		return nil, fmt.Errorf("vearch: list databases: %w", err)
	}

	var databases []Database
	if err := json.Unmarshal(data, &databases); err != nil {
		return nil, fmt.Errorf("vearch: decode database list: %w", err)
	}
	return databases, nil
}

// CreateDatabase creates a database with the given name.
// Creating a database that already exists is a server-side error.
func (c *Client) CreateDatabase(ctx context.Context, name string) error {
	body := map[string]string{"name": name}
	if _, err := c.doEnveloped(ctx, http.MethodPut, "/db/_create", body); err != nil {
		return fmt.Errorf("vearch: create database %q: %w", name, err)
	}

	c.logDebug("created database", map[string]interface{}{"database": name})
	return nil
}

// ListSpaces returns all spaces within a database.
func (c *Client) ListSpaces(ctx context.Context, database string) ([]Space, error) {
	path := "/list/space?db=" + url.QueryEscape(database)
	data, err := c.doEnveloped(ctx, http.MethodGet, path, nil)
	if err != nil {
		return nil, fmt.Errorf("vearch: list spaces in %q: %w", database, err)
	}

	var spaces []Space
	if err := json.Unmarshal(data, &spaces); err != nil {
		return nil, fmt.Errorf("vearch: decode space list: %w", err)
	}
	return spaces, nil
}

// CreateSpace creates a space within a database from the given schema
// definition. The request is passed through opaquely; the server owns
// validation of engine and property parameters.
func (c *Client) CreateSpace(ctx context.Context, database string, req CreateSpaceRequest) error {
	path := "/space/" + url.PathEscape(database) + "/_create"
	if _, err := c.doEnveloped(ctx, http.MethodPut, path, req); err != nil {
		return fmt.Errorf("vearch: create space %q in %q: %w", req.Name, database, err)
	}

	c.logDebug("created space", map[string]interface{}{
		"database": database,
		"space":    req.Name,
	})
	return nil
}

// DeleteSpace removes an entire space and all documents in it. Irreversible.
func (c *Client) DeleteSpace(ctx context.Context, database, space string) error {
	path := "/space/" + url.PathEscape(database) + "/" + url.PathEscape(space)
	if _, err := c.doEnveloped(ctx, http.MethodDelete, path, nil); err != nil {
		return fmt.Errorf("vearch: delete space %q in %q: %w", space, database, err)
	}
	return nil
}

// BulkWrite upserts documents into a space in a single batched request.
//
// Vearch's router expects Elasticsearch-style NDJSON framing: an action line
// carrying the document id followed by the document body without its "_id"
// key. The write is all-or-nothing from the caller's perspective: any
// per-document failure reported by the server fails the whole call.
func (c *Client) BulkWrite(ctx context.Context, database, space string, documents []Document) error {
	body, err := frameBulkBody(documents)
	if err != nil {
		return err
	}

	path := "/" + url.PathEscape(database) + "/" + url.PathEscape(space) + "/_bulk"
	results, err := c.doBulk(ctx, path, body)
	if err != nil {
		return fmt.Errorf("vearch: bulk write to %s/%s: %w", database, space, err)
	}

	for _, r := range results {
		if r.Status >= 300 {
			return fmt.Errorf("vearch: bulk write to %s/%s: document %q failed: %w",
				database, space, r.ID, &APIError{StatusCode: r.Status, Msg: r.Error})
		}
	}

	c.logDebug("bulk write completed", map[string]interface{}{
		"database":  database,
		"space":     space,
		"documents": len(documents),
	})
	return nil
}

// frameBulkBody serializes documents into NDJSON action/body line pairs.
func frameBulkBody(documents []Document) ([]byte, error) {
	var buf bytes.Buffer
	for _, doc := range documents {
		id, _ := doc["_id"].(string)

		action := map[string]map[string]string{"index": {"_id": id}}
		actionLine, err := json.Marshal(action)
		if err != nil {
			return nil, fmt.Errorf("vearch: encode bulk action: %w", err)
		}

		fields := make(map[string]interface{}, len(doc))
		for k, v := range doc {
			if k == "_id" {
				continue
			}
			fields[k] = v
		}
		fieldLine, err := json.Marshal(fields)
		if err != nil {
			return nil, fmt.Errorf("vearch: encode bulk document %q: %w", id, err)
		}

		buf.Write(actionLine)
		buf.WriteByte('\n')
		buf.Write(fieldLine)
		buf.WriteByte('\n')
	}
	return buf.Bytes(), nil
}

// Search executes a vector search against a space and returns the raw
// response. Hits arrive in the order the server ranked them, descending by
// raw similarity score.
func (c *Client) Search(ctx context.Context, database, space string, req SearchRequest) (*SearchResponse, error) {
	path := "/" + url.PathEscape(database) + "/" + url.PathEscape(space) + "/_search"

	var resp SearchResponse
	if err := c.doJSON(ctx, http.MethodPost, path, req, &resp); err != nil {
		return nil, fmt.Errorf("vearch: search %s/%s: %w", database, space, err)
	}

	c.logDebug("search completed", map[string]interface{}{
		"database": database,
		"space":    space,
		"hits":     len(resp.Hits.Hits),
	})
	return &resp, nil
}
