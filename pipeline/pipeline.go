package pipeline

import (
	"context"
	"time"

	"github.com/knowgraph/graphqa/core"
	"github.com/knowgraph/graphqa/graph"
	"github.com/knowgraph/graphqa/logging"
	"github.com/knowgraph/graphqa/memory"
	"github.com/knowgraph/graphqa/model"
	"github.com/knowgraph/graphqa/observability"
)

// Stage names used in logs and metrics.
const (
	StageClassify   = "classify"
	StageEntities   = "extract_entities"
	StageQueryGen   = "generate_query"
	StageExecute    = "execute"
	StageSynthesize = "synthesize"
)

// Options configure optional pipeline collaborators.
type Options struct {
	Logger  logging.Logger
	Metrics *observability.Metrics
}

// Pipeline drives the staged workflow over a workflow state. It is stateless
// across runs and safe for concurrent use; all per-run data lives on the
// core.State passed to Run.
type Pipeline struct {
	model      model.Model
	executor   graph.Executor
	schemaText string
	logger     logging.Logger
	metrics    *observability.Metrics
}

// New constructs a Pipeline over a reasoning model, a graph executor and the
// graph schema. The schema is rendered to prompt text once up front.
func New(m model.Model, executor graph.Executor, schema graph.Schema, optFns ...func(o *Options)) *Pipeline {
	opts := Options{Logger: logging.NoOpLogger{}}
	for _, fn := range optFns {
		fn(&opts)
	}
	return &Pipeline{
		model:      m,
		executor:   executor,
		schemaText: schema.Describe(),
		logger:     opts.Logger,
		metrics:    opts.Metrics,
	}
}

// Run executes the stages in order, filling in the state's output fields.
// It never returns an error: failures land on st.Err and st retains whatever
// partial outputs were produced before the failure.
func (p *Pipeline) Run(ctx context.Context, st *core.State) {
	memoryContext := memory.Summarize(st.History)

	if ok := p.classify(ctx, st, memoryContext); !ok {
		st.Answer = core.FallbackAnswer
		return
	}

	p.extractEntities(ctx, st)

	if ok := p.generateQuery(ctx, st, memoryContext); !ok {
		st.Answer = core.FallbackAnswer
		return
	}

	p.execute(ctx, st)
	p.synthesize(ctx, st)

	if st.Answer == "" {
		st.Answer = core.FallbackAnswer
	}
}

// complete issues one model call for a stage, recording latency and outcome.
func (p *Pipeline) complete(ctx context.Context, stage, prompt string) (string, error) {
	start := time.Now()
	resp, err := p.model.Complete(ctx, model.Request{Prompt: prompt})
	logging.LogStage(p.logger, stage, time.Since(start), err)
	if err != nil {
		if p.metrics != nil {
			p.metrics.IncStageError(stage)
		}
		return "", err
	}
	return resp.Text, nil
}
