// Command graphqa runs the question-answering service: it wires the reasoning
// model, the graph engine client and the in-memory session store behind the
// HTTP API and serves until interrupted.
package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	anthropicsdk "github.com/anthropics/anthropic-sdk-go"
	"github.com/joho/godotenv"

	"github.com/knowgraph/graphqa"
	"github.com/knowgraph/graphqa/config"
	"github.com/knowgraph/graphqa/graph"
	"github.com/knowgraph/graphqa/httpapi"
	"github.com/knowgraph/graphqa/logging"
	"github.com/knowgraph/graphqa/model"
	"github.com/knowgraph/graphqa/model/anthropic"
	"github.com/knowgraph/graphqa/model/openai"
	"github.com/knowgraph/graphqa/observability"
)

func main() {
	// Optional .env for local development; ignore absence.
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		logging.NewDefaultSlogLogger().Error("Config load failed", "error", err)
		os.Exit(1)
	}

	logger := logging.NewSlogLogger(logging.ParseLogLevel(cfg.LogLevel), cfg.LogFormat).WithComponent("graphqa")
	metrics := observability.NewMetrics(cfg.MetricsNamespace)

	executor := graph.NewHTTPExecutor(cfg.GraphEngineURL, func(o *graph.HTTPOptions) {
		o.Timeout = cfg.GraphTimeout
	})

	// Best effort: an unreachable engine at boot degrades to schema-less
	// prompts rather than refusing to start.
	schema, err := executor.Schema(context.Background())
	if err != nil {
		logger.Warn("Schema fetch failed, continuing without schema", "error", err)
	}

	qa := graphqa.New(func(o *graphqa.Options) {
		o.Model = buildModel(cfg)
		o.Executor = executor
		o.Schema = schema
		o.MaxSessions = cfg.MaxSessions
		o.Logger = logger
		o.Metrics = metrics
	})

	srv := &http.Server{
		Addr:    cfg.BindAddr,
		Handler: httpapi.New(cfg, qa.Engine()).Router(),
	}

	go func() {
		logger.Info("Server listening", "addr", cfg.BindAddr, "provider", cfg.ModelProvider)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("Server failed", "error", err)
			os.Exit(1)
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	<-stop

	logger.Info("Shutting down")
	ctx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("Shutdown failed", "error", err)
	}
}

// buildModel selects the reasoning backend from configuration.
func buildModel(cfg config.Config) model.Model {
	switch cfg.ModelProvider {
	case "anthropic":
		return anthropic.NewModel(func(o *anthropic.Options) {
			if cfg.ModelName != "" {
				o.Model = anthropicsdk.Model(cfg.ModelName)
			}
		})
	case "mock":
		return model.NewMockModel("mock", "mock")
	default:
		return openai.NewModel(func(o *openai.Options) {
			if cfg.ModelName != "" {
				o.Model = cfg.ModelName
			}
		})
	}
}
