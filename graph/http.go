package graph

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/knowgraph/graphqa/core"
)

// HTTPOptions configure the HTTP executor.
type HTTPOptions struct {
	// Timeout bounds a single query round-trip.
	Timeout time.Duration
	// Client overrides the default HTTP client (tests, custom transports).
	Client *http.Client
}

// HTTPExecutor runs queries against a remote graph engine exposing a JSON
// endpoint: POST {base}/query with {"query": ...} returning {"rows": [...]},
// and GET {base}/schema returning the Schema document.
type HTTPExecutor struct {
	baseURL string
	client  *http.Client
}

// NewHTTPExecutor creates an executor for the engine at baseURL.
func NewHTTPExecutor(baseURL string, optFns ...func(o *HTTPOptions)) *HTTPExecutor {
	opts := HTTPOptions{Timeout: 30 * time.Second}
	for _, fn := range optFns {
		fn(&opts)
	}
	client := opts.Client
	if client == nil {
		client = &http.Client{Timeout: opts.Timeout}
	}
	return &HTTPExecutor{baseURL: baseURL, client: client}
}

type queryRequest struct {
	Query string `json:"query"`
}

type queryResponse struct {
	Rows  []core.Row `json:"rows"`
	Error string     `json:"error,omitempty"`
}

// Run implements Executor.
func (e *HTTPExecutor) Run(ctx context.Context, query string) ([]core.Row, error) {
	body, err := json.Marshal(queryRequest{Query: query})
	if err != nil {
		return nil, fmt.Errorf("encode query request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, e.baseURL+"/query", bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("build query request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := e.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("execute query: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		snippet, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return nil, fmt.Errorf("graph engine returned status %d: %s", resp.StatusCode, snippet)
	}

	var decoded queryResponse
	if err := json.NewDecoder(resp.Body).Decode(&decoded); err != nil {
		return nil, fmt.Errorf("decode query response: %w", err)
	}
	if decoded.Error != "" {
		return nil, fmt.Errorf("graph engine error: %s", decoded.Error)
	}
	return decoded.Rows, nil
}

// Schema fetches the graph schema document from the engine.
func (e *HTTPExecutor) Schema(ctx context.Context) (Schema, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, e.baseURL+"/schema", nil)
	if err != nil {
		return Schema{}, fmt.Errorf("build schema request: %w", err)
	}

	resp, err := e.client.Do(req)
	if err != nil {
		return Schema{}, fmt.Errorf("fetch schema: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return Schema{}, fmt.Errorf("graph engine returned status %d for schema", resp.StatusCode)
	}

	var schema Schema
	if err := json.NewDecoder(resp.Body).Decode(&schema); err != nil {
		return Schema{}, fmt.Errorf("decode schema: %w", err)
	}
	return schema, nil
}
