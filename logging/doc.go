// Package logging provides a minimal logging interface and adapters for GraphQA.
//
// The Logger interface defines the standard logging methods (Debug, Info, Warn,
// Error) that the engine, pipeline and HTTP layer use for observability. This
// package includes:
//
//   - Logger interface for dependency injection
//   - SlogAdapter wrapping Go's structured logging
//   - NoOpLogger for silent operation (testing, minimal setups)
//   - GraphQALogger with contextual binding (component, session, run)
//   - LogStage and LogQueryExecution helpers used by the pipeline
//
// The design intentionally keeps the interface minimal to avoid vendor lock-in
// while supporting structured logging where available.
package logging
