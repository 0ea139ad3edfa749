package memory

import (
	"fmt"
	"strings"

	"github.com/knowgraph/graphqa/core"
)

// Summarize turns a history window into a short natural-language context
// string describing only the most recent turn: its question type, question
// text, entity list and result count. It returns the empty string for an
// empty history. Pure and deterministic; safe to call on every request.
func Summarize(history []core.TurnRecord) string {
	if len(history) == 0 {
		return ""
	}
	last := history[len(history)-1]

	var b strings.Builder
	fmt.Fprintf(&b, "The previous question (type %q) was: %q.", last.QuestionType, last.Question)
	if len(last.Entities) > 0 {
		fmt.Fprintf(&b, " It mentioned the entities: %s.", strings.Join(last.Entities, ", "))
	}
	fmt.Fprintf(&b, " Its query returned %d result(s).", last.ResultsCount)
	if last.Error != "" {
		fmt.Fprintf(&b, " It failed with: %s.", last.Error)
	}
	return b.String()
}
