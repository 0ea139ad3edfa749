// Package graph defines the boundary to the external graph query engine.
// The memory core treats query execution as an opaque capability: the
// Executor interface runs a generated query string and returns rows, and
// Schema carries the metadata (labels, relationship types, property keys)
// surfaced to the query-generation stage.
//
// HTTPExecutor talks to a remote engine over its JSON endpoint; MockExecutor
// provides scripted results for tests. Correctness of the query language
// itself is out of scope here.
package graph
