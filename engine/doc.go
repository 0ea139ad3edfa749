// Package engine implements the session orchestrator, the conversational
// entry point of GraphQA.
//
// Answer resolves the effective session id, loads the session's prior history,
// seeds the workflow state, drives the pipeline, records the resulting turn
// and returns the updated history to the caller. History recording is
// unconditional: every exit path of a run, including failures, appends exactly
// one turn record. No error ever escapes Answer; all failure surfaces as data
// on the response.
//
// Each session's read-run-append sequence is serialized by a per-session
// mutex, so concurrent calls for the same session id cannot interleave their
// appends. Calls across different sessions run independently.
package engine
