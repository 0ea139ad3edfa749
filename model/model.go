package model

import (
	"context"
	"fmt"
	"sync"
)

// Request captures the normalized model input produced by pipeline stages.
// System carries stage-invariant framing; Prompt carries the composed task
// instructions (base prompt plus optional memory context).
type Request struct {
	System string `json:"system,omitempty"`
	Prompt string `json:"prompt"`
}

// Response is the completion returned by a model provider.
type Response struct {
	Text string `json:"text"`
}

// Info contains metadata about a model implementation.
type Info struct {
	Name     string `json:"name"`
	Provider string `json:"provider"` // "openai", "anthropic", "mock", etc.
}

// Model is the minimal interface required by the pipeline to drive generation.
type Model interface {
	Complete(ctx context.Context, req Request) (Response, error)

	// Info returns information about the model implementation.
	Info() Info
}

// scripted is a queued mock outcome: either a completion text or an error.
type scripted struct {
	text string
	err  error
}

// MockModel is a lightweight in‑memory Model useful for tests & examples.
// Scripted outcomes (Enqueue/EnqueueError) are consumed first in FIFO order,
// then exact prompt matches registered via AddResponse, then a deterministic
// fallback echo.
type MockModel struct {
	mu        sync.Mutex
	info      Info
	responses map[string]string
	script    []scripted
	prompts   []string
}

// NewMockModel constructs a MockModel.
func NewMockModel(name, provider string) *MockModel {
	return &MockModel{
		info:      Info{Name: name, Provider: provider},
		responses: make(map[string]string),
	}
}

// AddResponse registers a deterministic canned completion for an exact prompt.
func (m *MockModel) AddResponse(prompt, response string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.responses[prompt] = response
}

// Enqueue appends a scripted completion consumed by the next Complete call.
func (m *MockModel) Enqueue(text string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.script = append(m.script, scripted{text: text})
}

// EnqueueError appends a scripted failure consumed by the next Complete call.
func (m *MockModel) EnqueueError(err error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.script = append(m.script, scripted{err: err})
}

// Complete implements Model.
func (m *MockModel) Complete(ctx context.Context, req Request) (Response, error) {
	if err := ctx.Err(); err != nil {
		return Response{}, err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.prompts = append(m.prompts, req.Prompt)
	if len(m.script) > 0 {
		next := m.script[0]
		m.script = m.script[1:]
		if next.err != nil {
			return Response{}, next.err
		}
		return Response{Text: next.text}, nil
	}
	if resp, ok := m.responses[req.Prompt]; ok {
		return Response{Text: resp}, nil
	}
	return Response{Text: fmt.Sprintf("Mock response to: %s", req.Prompt)}, nil
}

// Prompts returns a copy of the prompts observed so far, in call order.
func (m *MockModel) Prompts() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]string, len(m.prompts))
	copy(out, m.prompts)
	return out
}

// Info implements Model.
func (m *MockModel) Info() Info { return m.info }
