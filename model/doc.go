// Package model defines the reasoning-service boundary consumed by the
// pipeline. The Model interface normalizes prompt completion across providers;
// concrete adapters for OpenAI and Anthropic live in sub-packages, and
// MockModel provides deterministic completions for tests.
//
// Model calls are opaque to the memory core: latency and failure modes are the
// caller's concern and surface as ordinary error returns.
package model
