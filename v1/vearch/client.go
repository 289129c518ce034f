package vearch

import (
	"context"
	"fmt"
	"net/http"
	"strings"
)

//
// ──────────────────────────────────────────────────────────────
//   VEARCH CLIENT WRAPPER
// ──────────────────────────────────────────────────────────────
//
// This file defines a thin HTTP client for the Vearch master/router API,
// providing application-level operations for managing databases and spaces
// and for writing and searching documents.
//
// The goal is to keep the wire protocol (JSON envelopes, bulk NDJSON
// framing) out of the adapter layer that sits on top of this client.
//
// Responsibilities:
//   • Issue synchronous request/response calls against the cluster.
//   • Decode the master's {code, msg, data} response envelope.
//   • Surface non-success responses verbatim as *APIError.
//   • Offer a safe API suitable for Fx dependency injection.
//

// Logger defines the interface for logging operations in the vearch package.
// This interface allows the package to use any logging implementation that
// conforms to these methods.
//
//go:generate mockgen -source=client.go -destination=mock_logger.go -package=vearch
type Logger interface {
	Info(msg string, err error, fields ...map[string]interface{})
	Debug(msg string, err error, fields ...map[string]interface{})
	Warn(msg string, err error, fields ...map[string]interface{})
	Error(msg string, err error, fields ...map[string]interface{})
}

// Client is an HTTP client for a Vearch cluster. It is safe for concurrent
// use; every operation is a single blocking round trip with no internal
// state beyond the connection pool.
type Client struct {
	baseURL    string
	httpClient *http.Client
	logger     Logger
}

// NewClient constructs a Client from Config.
// It validates the config and applies the default timeout when none is set.
//
// Example:
//
//	client, err := vearch.NewClient(vearch.FromBaseURL("http://localhost:9001"))
func NewClient(cfg *Config) (*Client, error) {
	if cfg == nil {
		cfg = DefaultConfig()
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	timeout := cfg.Timeout
	if timeout == 0 {
		timeout = DefaultTimeout
	}

	return &Client{
		baseURL:    strings.TrimRight(cfg.BaseURL, "/"),
		httpClient: &http.Client{Timeout: timeout},
	}, nil
}

// WithLogger sets the logger for this client and returns the client for
// method chaining.
func (c *Client) WithLogger(logger Logger) *Client {
	c.logger = logger
	return c
}

// Ping checks cluster connectivity by fetching the root endpoint.
// It should be lightweight and fast — typically used during startup or
// readiness probes.
func (c *Client) Ping(ctx context.Context) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL, nil)
	if err != nil {
		return fmt.Errorf("vearch: build ping request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("vearch: ping: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 300 {
		return &APIError{StatusCode: resp.StatusCode}
	}
	return nil
}

// Close releases idle connections held by the underlying HTTP client.
func (c *Client) Close() error {
	c.httpClient.CloseIdleConnections()
	return nil
}

func (c *Client) logDebug(msg string, fields map[string]interface{}) {
	if c.logger != nil {
		c.logger.Debug(msg, nil, fields)
	}
}
