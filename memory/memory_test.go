package memory

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/knowgraph/graphqa/core"
)

func TestSummarize_EmptyHistory(t *testing.T) {
	assert.Equal(t, "", Summarize(nil))
	assert.Equal(t, "", Summarize([]core.TurnRecord{}))
}

func TestSummarize_MentionsOnlyMostRecentTurn(t *testing.T) {
	history := []core.TurnRecord{
		core.NewTurnRecord("Which drugs treat atrial fibrillation?", "treatment", []string{"atrial fibrillation"}, "MATCH (d:Drug)", 4, ""),
		core.NewTurnRecord("Which of those are approved?", "approval", []string{"amiodarone"}, "MATCH (d:Drug {approved: true})", 2, ""),
	}

	summary := Summarize(history)
	require.NotEmpty(t, summary)

	assert.Contains(t, summary, "Which of those are approved?")
	assert.Contains(t, summary, "approval")
	assert.Contains(t, summary, "amiodarone")
	assert.Contains(t, summary, "2 result(s)")

	// Nothing from the older turn leaks into the summary.
	assert.NotContains(t, summary, "atrial fibrillation")
	assert.NotContains(t, summary, "treatment")
}

func TestSummarize_Deterministic(t *testing.T) {
	history := []core.TurnRecord{
		core.NewTurnRecord("q", "list", []string{"a", "b"}, "", 1, ""),
	}
	assert.Equal(t, Summarize(history), Summarize(history))
}

func TestSummarize_IncludesFailure(t *testing.T) {
	history := []core.TurnRecord{
		core.NewTurnRecord("q", "unknown", nil, "", 0, "classification failed"),
	}
	assert.Contains(t, Summarize(history), "classification failed")
}

func TestAugment_EmptyContextIsByteIdentical(t *testing.T) {
	base := "Classify the question into one of the known types.\nQuestion: q"
	assert.Equal(t, base, Augment(base, ""))
}

func TestAugment_AppendsContextAndReferenceRule(t *testing.T) {
	base := "base instructions"
	out := Augment(base, "The previous question was X.")

	assert.True(t, len(out) > len(base))
	assert.Contains(t, out, base)
	assert.Contains(t, out, "Conversation context:")
	assert.Contains(t, out, "The previous question was X.")
	assert.Contains(t, out, "current question")
}
