// Package httpapi exposes the caller-facing JSON API over chi. The UI holds a
// session identifier for the lifetime of the browsing session and passes it
// into every answer call; the history endpoint backs its collapsible panel of
// recent turns.
package httpapi

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/knowgraph/graphqa/config"
	"github.com/knowgraph/graphqa/core"
	"github.com/knowgraph/graphqa/observability"
)

// Answerer is the engine surface the server needs. Kept as an interface so
// tests can drive the server with a stub.
type Answerer interface {
	Answer(ctx context.Context, question, sessionID string) core.AnswerResponse
	History(sessionID string) []core.TurnRecord
}

// Server wires the HTTP routes to the engine.
type Server struct {
	cfg    config.Config
	engine Answerer
}

// New constructs a Server.
func New(cfg config.Config, engine Answerer) *Server {
	return &Server{cfg: cfg, engine: engine}
}

// AnswerRequest is the POST /v1/answer payload.
type AnswerRequest struct {
	Question  string `json:"question"`
	SessionID string `json:"session_id,omitempty"`
}

// Router builds the chi route tree.
func (s *Server) Router() http.Handler {
	r := chi.NewRouter()

	r.Get("/healthz", s.handleHealth)
	r.Get("/metrics", func(w http.ResponseWriter, r *http.Request) {
		observability.MetricsHandler().ServeHTTP(w, r)
	})

	r.Post("/v1/answer", s.handleAnswer)
	r.Get("/v1/sessions/{id}/history", s.handleHistory)

	return r
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	respondJSON(w, http.StatusOK, map[string]any{"status": "ok"})
}

func (s *Server) handleAnswer(w http.ResponseWriter, r *http.Request) {
	var req AnswerRequest
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid_request", err.Error())
		return
	}
	if strings.TrimSpace(req.Question) == "" {
		respondError(w, http.StatusBadRequest, "invalid_request", "question must not be empty")
		return
	}

	resp := s.engine.Answer(r.Context(), req.Question, req.SessionID)
	respondJSON(w, http.StatusOK, resp)
}

func (s *Server) handleHistory(w http.ResponseWriter, r *http.Request) {
	sessionID := chi.URLParam(r, "id")
	respondJSON(w, http.StatusOK, map[string]any{
		"session_id": sessionID,
		"history":    s.engine.History(sessionID),
	})
}

var errEmptyBody = errors.New("empty request body")

func decodeJSON(r *http.Request, dst any) error {
	defer func() { _, _ = io.Copy(io.Discard, r.Body) }()
	dec := json.NewDecoder(r.Body)
	if err := dec.Decode(dst); err != nil {
		if errors.Is(err, io.EOF) {
			return errEmptyBody
		}
		return err
	}
	return nil
}

func respondJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}

func respondError(w http.ResponseWriter, status int, code, message string) {
	respondJSON(w, status, map[string]string{"error": code, "message": message})
}
