package vearch

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
)

// responseEnvelope is the {code, msg, data} wrapper the Vearch master puts
// around database and space management responses. Router endpoints (_bulk,
// _search) return their payloads unwrapped.
type responseEnvelope struct {
	Code int             `json:"code"`
	Msg  string          `json:"msg"`
	Data json.RawMessage `json:"data"`
}

// envelopeSuccess reports whether an envelope code denotes success.
// Older Vearch masters answer 200, newer ones 0.
func envelopeSuccess(code int) bool {
	return code == 0 || code == 200
}

// doJSON sends an HTTP request with an optional JSON body and decodes the
// raw (unwrapped) response JSON into `out`. Non-2xx statuses become *APIError.
func (c *Client) doJSON(ctx context.Context, method, path string, body interface{}, out interface{}) error {
	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("vearch: encode request: %w", err)
		}
		reader = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return fmt.Errorf("vearch: build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("vearch: http error: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 300 {
		return apiErrorFromResponse(resp)
	}

	if out != nil {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return fmt.Errorf("vearch: decode response: %w", err)
		}
	}
	return nil
}

// doEnveloped sends a request to a master endpoint and unwraps the
// {code, msg, data} envelope, returning the raw data payload.
func (c *Client) doEnveloped(ctx context.Context, method, path string, body interface{}) (json.RawMessage, error) {
	var envelope responseEnvelope
	if err := c.doJSON(ctx, method, path, body, &envelope); err != nil {
		return nil, err
	}
	if !envelopeSuccess(envelope.Code) {
		return nil, &APIError{StatusCode: http.StatusOK, Code: envelope.Code, Msg: envelope.Msg}
	}
	return envelope.Data, nil
}

// doBulk sends a pre-framed NDJSON body to a router _bulk endpoint and
// decodes the per-document results.
func (c *Client) doBulk(ctx context.Context, path string, body []byte) ([]BulkResult, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("vearch: build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("vearch: http error: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 300 {
		return nil, apiErrorFromResponse(resp)
	}

	var results []BulkResult
	if err := json.NewDecoder(resp.Body).Decode(&results); err != nil {
		return nil, fmt.Errorf("vearch: decode bulk response: %w", err)
	}
	return results, nil
}

// apiErrorFromResponse builds an *APIError from a non-2xx response,
// salvaging the envelope code and message when the body carries one.
func apiErrorFromResponse(resp *http.Response) error {
	apiErr := &APIError{StatusCode: resp.StatusCode}

	body, err := io.ReadAll(io.LimitReader(resp.Body, 4096))
	if err != nil {
		return apiErr
	}

	var envelope responseEnvelope
	if json.Unmarshal(body, &envelope) == nil {
		apiErr.Code = envelope.Code
		apiErr.Msg = envelope.Msg
	}
	return apiErr
}
