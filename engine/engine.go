package engine

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/knowgraph/graphqa/core"
	"github.com/knowgraph/graphqa/logging"
	"github.com/knowgraph/graphqa/observability"
	"github.com/knowgraph/graphqa/pipeline"
	"github.com/knowgraph/graphqa/session"
)

// Options configure the engine's collaborators. Unset services default to
// in-memory / no-op implementations safe for local development and tests.
type Options struct {
	// Store holds per-session turn history. Defaults to an unbounded
	// in-memory store.
	Store core.SessionStore

	// Logger receives structured run logs. Defaults to NoOpLogger.
	Logger logging.Logger

	// Metrics, when set, receives per-run counters and latency observations.
	Metrics *observability.Metrics
}

// Engine orchestrates answer runs over the pipeline and the session store.
// It is safe for concurrent use.
type Engine struct {
	pipeline *pipeline.Pipeline
	store    core.SessionStore
	logger   logging.Logger
	metrics  *observability.Metrics

	mu       sync.Mutex
	inFlight map[string]*sync.Mutex
}

// New constructs an Engine around a pipeline with optional overrides.
func New(p *pipeline.Pipeline, optFns ...func(o *Options)) *Engine {
	opts := Options{
		Store:  session.NewInMemoryStore(),
		Logger: logging.NoOpLogger{},
	}
	for _, fn := range optFns {
		fn(&opts)
	}
	return &Engine{
		pipeline: p,
		store:    opts.Store,
		logger:   opts.Logger,
		metrics:  opts.Metrics,
		inFlight: make(map[string]*sync.Mutex),
	}
}

// Answer runs the full workflow for one question. An empty session id resolves
// to core.DefaultSessionID. The returned response always carries a best-effort
// answer, the recorded turn's fields and the session's full updated history;
// failures surface in the Error field, never as a panic or error return.
func (e *Engine) Answer(ctx context.Context, question, sessionID string) core.AnswerResponse {
	if sessionID == "" {
		sessionID = core.DefaultSessionID
	}
	runID := uuid.NewString()
	start := time.Now()

	lock := e.sessionLock(sessionID)
	lock.Lock()
	defer lock.Unlock()

	st := &core.State{
		Question:  question,
		SessionID: sessionID,
		RunID:     runID,
	}

	history, err := e.store.History(sessionID)
	if err != nil {
		// A history read failure degrades to a memory-less run; the turn is
		// still executed and recorded.
		e.logger.Warn("History load failed", "session_id", sessionID, "error", err.Error())
		st.Fail("history load failed: " + err.Error())
	} else {
		st.History = history
	}

	e.pipeline.Run(ctx, st)
	if st.Answer == "" {
		st.Answer = core.FallbackAnswer
	}

	rec := st.Record()
	appendErr := e.store.Append(sessionID, rec)
	if appendErr != nil {
		e.logger.Error("History append failed", "session_id", sessionID, "error", appendErr.Error())
		st.Fail("history append failed: " + appendErr.Error())
	}

	// The response carries the turn even when the store could not, so the
	// caller's view of the conversation stays consistent within this response.
	updated, err := e.store.History(sessionID)
	if err != nil {
		updated = append(st.History, rec)
	} else if appendErr != nil {
		updated = append(updated, rec)
	}
	if excess := len(updated) - core.HistoryWindow; excess > 0 {
		updated = updated[excess:]
	}

	outcome := "ok"
	if st.Failed() {
		outcome = "error"
	}
	if e.metrics != nil {
		e.metrics.ObserveAnswer(outcome, time.Since(start))
		if counter, ok := e.store.(interface{ Len() int }); ok {
			e.metrics.TrackedSessions.Set(float64(counter.Len()))
		}
	}
	e.logger.Info("Turn completed",
		"session_id", sessionID,
		"run_id", runID,
		"question_type", rec.QuestionType,
		"results", rec.ResultsCount,
		"outcome", outcome,
		"duration", time.Since(start),
	)

	raw := st.Rows
	if len(raw) > core.MaxRawResults {
		raw = raw[:core.MaxRawResults]
	}

	// Error comes from the state, not the recorded turn: an append failure
	// happens after the record snapshot and still has to surface to the caller.
	return core.AnswerResponse{
		Answer:       st.Answer,
		QuestionType: rec.QuestionType,
		Entities:     rec.Entities,
		Query:        rec.Query,
		ResultsCount: rec.ResultsCount,
		RawResults:   raw,
		Error:        st.Err,
		History:      updated,
	}
}

// History returns the stored history for a session id (empty id resolves to
// the default session). Backs the UI history panel.
func (e *Engine) History(sessionID string) []core.TurnRecord {
	if sessionID == "" {
		sessionID = core.DefaultSessionID
	}
	history, err := e.store.History(sessionID)
	if err != nil {
		e.logger.Warn("History load failed", "session_id", sessionID, "error", err.Error())
		return []core.TurnRecord{}
	}
	return history
}

// sessionLock returns the mutex serializing runs for one session id. Locks
// accumulate per distinct id; they are tiny and bounded by the store's own
// session eviction in practice.
func (e *Engine) sessionLock(sessionID string) *sync.Mutex {
	e.mu.Lock()
	defer e.mu.Unlock()
	lock, ok := e.inFlight[sessionID]
	if !ok {
		lock = &sync.Mutex{}
		e.inFlight[sessionID] = lock
	}
	return lock
}
