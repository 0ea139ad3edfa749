// Package pipeline implements the staged answer workflow: classification,
// entity extraction, query generation, execution and answer synthesis.
//
// Conversational memory is consulted at exactly two points, classification
// and query generation, where the summarized context of the session's most
// recent turn is appended to the stage's base prompt. Execution and synthesis
// never see memory context.
//
// Stage failures are downgraded to fields on the workflow state (fallback
// question type, error message, zero results) instead of propagating: a run
// always terminates with a state from which a turn record can be built, so
// history recording upstream is unconditional.
package pipeline
