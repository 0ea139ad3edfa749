// Package graphqa provides a high-level façade over the engine and service
// abstractions (session store, reasoning model, graph executor & logging)
// enabling rapid construction of a question-answering service over a knowledge
// graph. Most applications interact with this package by:
//  1. Creating a GraphQA via New() (optionally overriding default in‑memory services)
//  2. Calling AnswerQuestion for each user turn, passing the caller's session id
//  3. Rendering the returned history in whatever surface hosts the conversation
//
// The façade delegates orchestration to engine.Engine while keeping setup and
// usage ergonomics concise. All defaults are safe for local development and
// testing; production deployments supply a real model provider, the graph
// engine endpoint and a structured logger.
package graphqa

import (
	"context"

	"github.com/knowgraph/graphqa/core"
	"github.com/knowgraph/graphqa/engine"
	"github.com/knowgraph/graphqa/graph"
	"github.com/knowgraph/graphqa/logging"
	"github.com/knowgraph/graphqa/model"
	"github.com/knowgraph/graphqa/observability"
	"github.com/knowgraph/graphqa/pipeline"
	"github.com/knowgraph/graphqa/session"
)

// Options configures the GraphQA instance.
type Options struct {
	// Model is the reasoning backend (defaults to a deterministic mock).
	Model model.Model

	// Executor runs generated queries (defaults to a mock returning no rows).
	Executor graph.Executor

	// Schema describes the graph for query generation.
	Schema graph.Schema

	// SessionStore holds per-session history (defaults to in-memory).
	SessionStore core.SessionStore

	// MaxSessions bounds the default in-memory store; ignored when a custom
	// SessionStore is supplied. Zero means unlimited.
	MaxSessions int

	// Logger (defaults to NoOp logger if nil).
	Logger logging.Logger

	// Metrics, when set, receives run counters and latency observations.
	Metrics *observability.Metrics
}

// GraphQA is the high-level façade aggregating the pipeline and the engine.
type GraphQA struct {
	opts   Options
	engine *engine.Engine
}

// New creates a new GraphQA instance with optional overrides. Any unset
// service is initialized with an in-memory implementation.
func New(optFns ...func(o *Options)) *GraphQA {
	opts := Options{
		Model:    model.NewMockModel("mock", "mock"),
		Executor: graph.NewMockExecutor(),
		Logger:   logging.NoOpLogger{},
	}
	for _, fn := range optFns {
		fn(&opts)
	}
	if opts.SessionStore == nil {
		opts.SessionStore = session.NewInMemoryStore(func(o *session.Options) {
			o.MaxSessions = opts.MaxSessions
		})
	}

	p := pipeline.New(opts.Model, opts.Executor, opts.Schema, func(o *pipeline.Options) {
		o.Logger = opts.Logger
		o.Metrics = opts.Metrics
	})
	e := engine.New(p, func(o *engine.Options) {
		o.Store = opts.SessionStore
		o.Logger = opts.Logger
		o.Metrics = opts.Metrics
	})

	return &GraphQA{opts: opts, engine: e}
}

// AnswerQuestion runs one conversational turn. An empty sessionID resolves to
// the default session. Failures surface as data on the response, never as an
// error return.
func (g *GraphQA) AnswerQuestion(ctx context.Context, question, sessionID string) core.AnswerResponse {
	return g.engine.Answer(ctx, question, sessionID)
}

// History returns the stored turn history for a session.
func (g *GraphQA) History(sessionID string) []core.TurnRecord {
	return g.engine.History(sessionID)
}

// Engine exposes the underlying engine for HTTP wiring.
func (g *GraphQA) Engine() *engine.Engine {
	return g.engine
}
