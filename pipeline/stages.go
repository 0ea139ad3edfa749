package pipeline

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/knowgraph/graphqa/core"
	"github.com/knowgraph/graphqa/logging"
	"github.com/knowgraph/graphqa/memory"
	"github.com/knowgraph/graphqa/prompts"
)

// classify assigns the question type. Memory context is injected here so
// follow-up phrasings ("which of those...") classify like their antecedent.
// Returns false when the stage failed and the run should short-circuit to the
// fallback answer.
func (p *Pipeline) classify(ctx context.Context, st *core.State, memoryContext string) bool {
	base, err := prompts.Classification(st.Question)
	if err != nil {
		st.Fail(fmt.Sprintf("classification failed: %v", err))
		st.QuestionType = core.FallbackQuestionType
		return false
	}

	text, err := p.complete(ctx, StageClassify, memory.Augment(base, memoryContext))
	if err != nil {
		st.Fail(fmt.Sprintf("classification failed: %v", err))
		st.QuestionType = core.FallbackQuestionType
		return false
	}

	st.QuestionType = parseLabel(text)
	return true
}

// extractEntities pulls entity names out of the question. A failure here is
// recorded but does not stop the run: query generation can still proceed
// without an entity list.
func (p *Pipeline) extractEntities(ctx context.Context, st *core.State) {
	base, err := prompts.EntityExtraction(st.Question)
	if err != nil {
		st.Fail(fmt.Sprintf("entity extraction failed: %v", err))
		return
	}

	text, err := p.complete(ctx, StageEntities, base)
	if err != nil {
		st.Fail(fmt.Sprintf("entity extraction failed: %v", err))
		return
	}

	st.Entities = parseEntities(text)
}

// generateQuery produces the graph query. Memory context is injected here so
// references resolve against the previous turn's entities. Returns false when
// the stage failed and execution should be skipped.
func (p *Pipeline) generateQuery(ctx context.Context, st *core.State, memoryContext string) bool {
	base, err := prompts.QueryGeneration(st.Question, st.QuestionType, p.schemaText, st.Entities)
	if err != nil {
		st.Fail(fmt.Sprintf("query generation failed: %v", err))
		return false
	}

	text, err := p.complete(ctx, StageQueryGen, memory.Augment(base, memoryContext))
	if err != nil {
		st.Fail(fmt.Sprintf("query generation failed: %v", err))
		return false
	}

	st.Query = sanitizeQuery(text)
	if st.Query == "" {
		st.Fail("query generation produced an empty query")
		return false
	}
	return true
}

// execute runs the generated query against the graph engine. Failures leave
// the row set empty and are recorded on the state.
func (p *Pipeline) execute(ctx context.Context, st *core.State) {
	start := time.Now()
	rows, err := p.executor.Run(ctx, st.Query)
	logging.LogQueryExecution(p.logger, len(rows), time.Since(start), err)
	if err != nil {
		st.Fail(fmt.Sprintf("query execution failed: %v", err))
		if p.metrics != nil {
			p.metrics.IncStageError(StageExecute)
		}
		return
	}
	st.Rows = rows
}

// synthesize turns the executed rows into the final natural-language answer.
// Empty row sets are a valid input (the model reports nothing was found).
func (p *Pipeline) synthesize(ctx context.Context, st *core.State) {
	base, err := prompts.Synthesis(st.Question, st.Rows)
	if err != nil {
		st.Fail(fmt.Sprintf("answer synthesis failed: %v", err))
		return
	}

	text, err := p.complete(ctx, StageSynthesize, base)
	if err != nil {
		st.Fail(fmt.Sprintf("answer synthesis failed: %v", err))
		return
	}

	st.Answer = strings.TrimSpace(text)
}

// parseLabel normalizes a classification completion to a known label,
// falling back to core.FallbackQuestionType for anything unusable.
func parseLabel(text string) string {
	label := strings.ToLower(strings.TrimSpace(text))
	label = strings.Trim(label, ".\"'`")
	for _, known := range prompts.QuestionTypes {
		if label == known {
			return known
		}
	}
	// Lenient second pass: accept a known label embedded in extra prose.
	for _, known := range prompts.QuestionTypes {
		if strings.Contains(label, known) {
			return known
		}
	}
	return core.FallbackQuestionType
}

// parseEntities splits a comma/newline separated completion into entity names.
// The sentinel NONE (any case) yields an empty list.
func parseEntities(text string) []string {
	trimmed := strings.TrimSpace(text)
	if trimmed == "" || strings.EqualFold(trimmed, "none") {
		return nil
	}
	fields := strings.FieldsFunc(trimmed, func(r rune) bool {
		return r == ',' || r == '\n'
	})
	entities := make([]string, 0, len(fields))
	for _, f := range fields {
		if e := strings.Trim(strings.TrimSpace(f), "\"'`"); e != "" {
			entities = append(entities, e)
		}
	}
	return entities
}

// sanitizeQuery strips code fences and surrounding whitespace from a
// generated query completion.
func sanitizeQuery(text string) string {
	q := strings.TrimSpace(text)
	if strings.HasPrefix(q, "```") {
		q = strings.TrimPrefix(q, "```")
		// Drop an optional language tag on the fence line.
		if idx := strings.Index(q, "\n"); idx >= 0 {
			q = q[idx+1:]
		}
		q = strings.TrimSuffix(strings.TrimSpace(q), "```")
	}
	return strings.TrimSpace(q)
}
