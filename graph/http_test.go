package graph

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHTTPExecutor_Run(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/query", r.URL.Path)
		require.Equal(t, http.MethodPost, r.Method)

		var req struct {
			Query string `json:"query"`
		}
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "MATCH (d:Drug) RETURN d.name", req.Query)

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"rows":[{"d.name":"amiodarone"},{"d.name":"sotalol"}]}`))
	}))
	defer ts.Close()

	executor := NewHTTPExecutor(ts.URL)
	rows, err := executor.Run(context.Background(), "MATCH (d:Drug) RETURN d.name")
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, "amiodarone", rows[0]["d.name"])
}

func TestHTTPExecutor_EngineError(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"rows":[],"error":"syntax error at line 1"}`))
	}))
	defer ts.Close()

	executor := NewHTTPExecutor(ts.URL)
	_, err := executor.Run(context.Background(), "BAD QUERY")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "syntax error")
}

func TestHTTPExecutor_BadStatus(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	}))
	defer ts.Close()

	executor := NewHTTPExecutor(ts.URL)
	_, err := executor.Run(context.Background(), "MATCH (n) RETURN n")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "status 500")
}

func TestHTTPExecutor_Schema(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/schema", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"node_labels":["Drug","Disease"],"relationship_types":["TREATS"],"property_keys":{"Drug":["name"]}}`))
	}))
	defer ts.Close()

	executor := NewHTTPExecutor(ts.URL)
	schema, err := executor.Schema(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []string{"Drug", "Disease"}, schema.NodeLabels)

	text := schema.Describe()
	assert.Contains(t, text, "Drug")
	assert.Contains(t, text, "TREATS")
	assert.Contains(t, text, "name")
}

func TestSchema_DescribeEmpty(t *testing.T) {
	assert.Equal(t, "", Schema{}.Describe())
}
