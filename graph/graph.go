package graph

import (
	"context"
	"fmt"
	"strings"

	"github.com/knowgraph/graphqa/core"
)

// Executor runs a generated query against the graph engine and returns the
// result rows. Implementations own connection handling, latency and failure
// modes; callers see only rows or an error.
type Executor interface {
	Run(ctx context.Context, query string) ([]core.Row, error)
}

// Schema describes the graph's shape for query generation: node labels,
// relationship types and per-label property keys. It is loaded once at wiring
// time; schema management itself is an external concern.
type Schema struct {
	NodeLabels        []string            `json:"node_labels"`
	RelationshipTypes []string            `json:"relationship_types"`
	PropertyKeys      map[string][]string `json:"property_keys"`
}

// Describe renders the schema as prompt-friendly text. An empty schema yields
// an empty string so prompts degrade gracefully when metadata is unavailable.
func (s Schema) Describe() string {
	if len(s.NodeLabels) == 0 && len(s.RelationshipTypes) == 0 {
		return ""
	}
	var b strings.Builder
	if len(s.NodeLabels) > 0 {
		fmt.Fprintf(&b, "Node labels: %s.\n", strings.Join(s.NodeLabels, ", "))
	}
	if len(s.RelationshipTypes) > 0 {
		fmt.Fprintf(&b, "Relationship types: %s.\n", strings.Join(s.RelationshipTypes, ", "))
	}
	for _, label := range s.NodeLabels {
		if keys := s.PropertyKeys[label]; len(keys) > 0 {
			fmt.Fprintf(&b, "Properties of %s: %s.\n", label, strings.Join(keys, ", "))
		}
	}
	return b.String()
}
