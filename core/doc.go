// Package core provides the foundational domain types and interfaces used by
// GraphQA. It defines the core abstractions for:
//
//   - Turn records (immutable per-interaction history entries)
//   - Workflow state (the mutable bundle threaded through pipeline stages)
//   - Answer responses (the caller-facing result shape)
//   - The pluggable SessionStore contract for conversational history
//
// The package intentionally keeps implementation concerns (storage backends,
// pipeline orchestration, model providers) out of scope, exposing small
// interfaces and value types so higher layers can depend on contracts rather
// than concrete backends.
package core
