// Package prompts holds the base task instructions for each pipeline stage.
// Each function renders the no-memory baseline prompt for its stage; the
// memory package appends conversational context on top of these when history
// exists, so the strings here must stay stable across turns.
package prompts

import (
	"encoding/json"
	"strings"

	"github.com/knowgraph/graphqa/core"
	"github.com/knowgraph/graphqa/internal/util"
)

// QuestionTypes are the classification labels the pipeline recognizes.
var QuestionTypes = []string{"lookup", "list", "count", "relationship", "aggregation"}

const classificationTemplate = `You classify natural-language questions about a knowledge graph.
Respond with exactly one of the following labels and nothing else:
{{join .Types ", "}}.

Question: {{.Question}}`

const entityExtractionTemplate = `Extract the entity names mentioned in the question below.
Respond with a comma-separated list of entity names only. Respond with NONE if
the question mentions no entities.

Question: {{.Question}}`

const queryGenerationTemplate = `You translate natural-language questions into graph queries.
{{if .Schema}}The graph has the following schema:
{{.Schema}}
{{end}}{{if .Entities}}Entities extracted from the question: {{join .Entities ", "}}.
{{end}}Respond with a single query and nothing else, no explanations and no code fences.

Question type: {{.QuestionType}}
Question: {{.Question}}`

const synthesisTemplate = `Answer the user's question in one or two plain sentences using only
the query results below. If the results are empty, say that nothing was found.

Question: {{.Question}}
Results:
{{.Results}}`

// Classification renders the baseline classification prompt for a question.
func Classification(question string) (string, error) {
	return util.RenderTemplate(classificationTemplate, map[string]any{
		"Question": question,
		"Types":    QuestionTypes,
	})
}

// EntityExtraction renders the entity extraction prompt for a question.
func EntityExtraction(question string) (string, error) {
	return util.RenderTemplate(entityExtractionTemplate, map[string]any{
		"Question": question,
	})
}

// QueryGeneration renders the baseline query-generation prompt. The schema
// text comes from graph.Schema.Describe and may be empty.
func QueryGeneration(question, questionType, schema string, entities []string) (string, error) {
	return util.RenderTemplate(queryGenerationTemplate, map[string]any{
		"Question":     question,
		"QuestionType": questionType,
		"Schema":       schema,
		"Entities":     entities,
	})
}

// Synthesis renders the answer-synthesis prompt over the executed rows.
func Synthesis(question string, rows []core.Row) (string, error) {
	var b strings.Builder
	if len(rows) == 0 {
		b.WriteString("(no results)")
	}
	for _, row := range rows {
		encoded, err := json.Marshal(row)
		if err != nil {
			continue
		}
		b.Write(encoded)
		b.WriteByte('\n')
	}
	return util.RenderTemplate(synthesisTemplate, map[string]any{
		"Question": question,
		"Results":  b.String(),
	})
}
