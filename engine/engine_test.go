package engine

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/knowgraph/graphqa/core"
	"github.com/knowgraph/graphqa/graph"
	"github.com/knowgraph/graphqa/model"
	"github.com/knowgraph/graphqa/pipeline"
)

// enqueueTurn scripts one full successful pipeline pass on the mock model.
func enqueueTurn(m *model.MockModel, label, entities, query, answer string) {
	m.Enqueue(label)
	m.Enqueue(entities)
	m.Enqueue(query)
	m.Enqueue(answer)
}

func newTestEngine(m *model.MockModel, executor *graph.MockExecutor) *Engine {
	p := pipeline.New(m, executor, graph.Schema{NodeLabels: []string{"Drug"}})
	return New(p)
}

func TestEngine_FollowUpCarriesMemoryContext(t *testing.T) {
	m := model.NewMockModel("mock", "mock")
	executor := graph.NewMockExecutor()
	e := newTestEngine(m, executor)

	enqueueTurn(m, "list", "atrial fibrillation", "MATCH (d:Drug) RETURN d", "Four drugs treat it.")
	executor.EnqueueRows([]core.Row{{"d": "amiodarone"}, {"d": "flecainide"}, {"d": "sotalol"}, {"d": "dofetilide"}})

	first := e.Answer(context.Background(), "Which drugs treat atrial fibrillation?", "s1")
	require.Empty(t, first.Error)
	assert.Len(t, first.History, 1)

	enqueueTurn(m, "list", "NONE", "MATCH (d:Drug {approved: true}) RETURN d", "Two of them are approved.")
	executor.EnqueueRows([]core.Row{{"d": "amiodarone"}, {"d": "sotalol"}})

	second := e.Answer(context.Background(), "Which of those are approved?", "s1")
	require.Empty(t, second.Error)
	assert.Len(t, second.History, 2)

	// The second turn's classification and query-generation prompts reference
	// the first turn's type and entities.
	sent := m.Prompts()
	require.Len(t, sent, 8)
	assert.Contains(t, sent[4], "Conversation context:")
	assert.Contains(t, sent[4], `"list"`)
	assert.Contains(t, sent[4], "atrial fibrillation")
	assert.Contains(t, sent[6], "Conversation context:")
	assert.Contains(t, sent[6], "atrial fibrillation")
}

func TestEngine_SessionsAreIndependent(t *testing.T) {
	m := model.NewMockModel("mock", "mock")
	executor := graph.NewMockExecutor()
	e := newTestEngine(m, executor)

	enqueueTurn(m, "list", "NONE", "MATCH (d) RETURN d", "a1")
	r1 := e.Answer(context.Background(), "same question", "s1")
	enqueueTurn(m, "list", "NONE", "MATCH (d) RETURN d", "a2")
	r2 := e.Answer(context.Background(), "same question", "s2")

	assert.Len(t, r1.History, 1)
	assert.Len(t, r2.History, 1)
	assert.Len(t, e.History("s1"), 1)
	assert.Len(t, e.History("s2"), 1)
}

func TestEngine_DefaultSessionAccumulates(t *testing.T) {
	m := model.NewMockModel("mock", "mock")
	executor := graph.NewMockExecutor()
	e := newTestEngine(m, executor)

	enqueueTurn(m, "list", "NONE", "MATCH (d) RETURN d", "a1")
	first := e.Answer(context.Background(), "q1", "")
	enqueueTurn(m, "list", "NONE", "MATCH (d) RETURN d", "a2")
	second := e.Answer(context.Background(), "q2", "")

	assert.Len(t, first.History, 1)
	assert.Len(t, second.History, 2)
	assert.Len(t, e.History(core.DefaultSessionID), 2)
}

func TestEngine_ClassificationFailureStillRecordsTurn(t *testing.T) {
	m := model.NewMockModel("mock", "mock")
	executor := graph.NewMockExecutor()
	e := newTestEngine(m, executor)

	m.EnqueueError(errors.New("reasoning service down"))
	resp := e.Answer(context.Background(), "q", "s1")

	assert.NotEmpty(t, resp.Error)
	assert.Equal(t, 0, resp.ResultsCount)
	assert.Equal(t, core.FallbackQuestionType, resp.QuestionType)
	assert.Equal(t, core.FallbackAnswer, resp.Answer)
	require.Len(t, resp.History, 1)
	assert.NotEmpty(t, resp.History[0].Error)
}

// appendFailStore rejects every append while serving empty history reads.
type appendFailStore struct{}

func (appendFailStore) History(string) ([]core.TurnRecord, error) {
	return []core.TurnRecord{}, nil
}

func (appendFailStore) Append(string, core.TurnRecord) error {
	return errors.New("disk full")
}

func TestEngine_AppendFailureSurfacesInResponse(t *testing.T) {
	m := model.NewMockModel("mock", "mock")
	executor := graph.NewMockExecutor()
	p := pipeline.New(m, executor, graph.Schema{})
	e := New(p, func(o *Options) {
		o.Store = appendFailStore{}
	})

	enqueueTurn(m, "list", "NONE", "MATCH (d) RETURN d", "an answer")
	resp := e.Answer(context.Background(), "q", "s1")

	// The pipeline run itself succeeded, but the caller must still learn
	// that the turn was not persisted.
	require.NotEmpty(t, resp.Error)
	assert.Contains(t, resp.Error, "history append failed")
	assert.Equal(t, "an answer", resp.Answer)
	// The turn still appears in the returned history via the local fallback.
	require.Len(t, resp.History, 1)
	assert.Equal(t, "q", resp.History[0].Question)
}

func TestEngine_WindowCapAcrossManyTurns(t *testing.T) {
	m := model.NewMockModel("mock", "mock")
	executor := graph.NewMockExecutor()
	e := newTestEngine(m, executor)

	var last core.AnswerResponse
	for i := 0; i < core.HistoryWindow+3; i++ {
		enqueueTurn(m, "list", "NONE", "MATCH (d) RETURN d", "a")
		last = e.Answer(context.Background(), fmt.Sprintf("q%d", i), "s1")
	}

	require.Len(t, last.History, core.HistoryWindow)
	for i, rec := range last.History {
		assert.Equal(t, fmt.Sprintf("q%d", i+3), rec.Question)
	}
}

func TestEngine_RawResultsCapped(t *testing.T) {
	m := model.NewMockModel("mock", "mock")
	executor := graph.NewMockExecutor()
	e := newTestEngine(m, executor)

	enqueueTurn(m, "list", "NONE", "MATCH (d) RETURN d", "five drugs")
	rows := make([]core.Row, 5)
	for i := range rows {
		rows[i] = core.Row{"d": fmt.Sprintf("drug%d", i)}
	}
	executor.EnqueueRows(rows)

	resp := e.Answer(context.Background(), "q", "s1")
	assert.Equal(t, 5, resp.ResultsCount)
	assert.Len(t, resp.RawResults, core.MaxRawResults)
}
