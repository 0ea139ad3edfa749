package graph

import (
	"context"
	"sync"

	"github.com/knowgraph/graphqa/core"
)

// MockExecutor is a scripted Executor for tests. Queued outcomes are consumed
// FIFO; once the script is exhausted the configured default rows are returned.
type MockExecutor struct {
	mu      sync.Mutex
	script  []mockOutcome
	Default []core.Row
	Queries []string // queries observed, in order
}

type mockOutcome struct {
	rows []core.Row
	err  error
}

// NewMockExecutor constructs an empty MockExecutor.
func NewMockExecutor() *MockExecutor { return &MockExecutor{} }

// EnqueueRows scripts a successful execution returning the given rows.
func (m *MockExecutor) EnqueueRows(rows []core.Row) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.script = append(m.script, mockOutcome{rows: rows})
}

// EnqueueError scripts a failing execution.
func (m *MockExecutor) EnqueueError(err error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.script = append(m.script, mockOutcome{err: err})
}

// Run implements Executor.
func (m *MockExecutor) Run(_ context.Context, query string) ([]core.Row, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Queries = append(m.Queries, query)
	if len(m.script) > 0 {
		next := m.script[0]
		m.script = m.script[1:]
		return next.rows, next.err
	}
	return m.Default, nil
}
