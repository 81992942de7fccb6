// Package agent runs the marketing agent loop: retrieve context, reason
// with the model, execute requested tools, and repeat until the model
// answers in plain text or the iteration ceiling is reached.
package agent

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/firebase/genkit/go/ai"
	"github.com/firebase/genkit/go/genkit"

	"github.com/chroniclife/marketing-studio/internal/knowledge"
	"github.com/chroniclife/marketing-studio/internal/log"
)

const (
	// defaultRetrievalK is how many knowledge excerpts each turn gets
	// before reasoning starts.
	defaultRetrievalK = 5

	// defaultMaxIterations bounds tool rounds per turn so a model that
	// keeps requesting tools cannot loop forever.
	defaultMaxIterations = 10

	// modelTemperature matches the creative-but-grounded setting the
	// marketing persona was tuned with.
	modelTemperature = 0.7
)

// Searcher retrieves knowledge excerpts for a query.
// *knowledge.Retriever satisfies it.
type Searcher interface {
	Search(ctx context.Context, query string, k int) ([]knowledge.Result, error)
}

// Config carries the agent's dependencies. Genkit, ModelName, and
// Searcher are required; the rest have working defaults.
type Config struct {
	Genkit        *genkit.Genkit
	ModelName     string
	Searcher      Searcher
	ToolNames     []string
	RetrievalK    int
	MaxIterations int
	Logger        log.Logger
}

// Agent executes conversation turns against a tool-equipped model.
type Agent struct {
	g             *genkit.Genkit
	modelName     string
	searcher      Searcher
	toolRefs      []ai.ToolRef
	retrievalK    int
	maxIterations int
	logger        log.Logger
}

// Result is the outcome of one agent run.
type Result struct {
	Text  string
	State State
}

// New creates an Agent. Tool names that are not registered with Genkit
// are skipped with a warning rather than failing construction.
func New(cfg Config) (*Agent, error) {
	if cfg.Genkit == nil {
		return nil, errors.New("agent: Genkit instance is required")
	}
	if cfg.ModelName == "" {
		return nil, errors.New("agent: model name is required")
	}
	if cfg.Searcher == nil {
		return nil, errors.New("agent: searcher is required")
	}
	if cfg.RetrievalK <= 0 {
		cfg.RetrievalK = defaultRetrievalK
	}
	if cfg.MaxIterations <= 0 {
		cfg.MaxIterations = defaultMaxIterations
	}
	if cfg.Logger == nil {
		cfg.Logger = log.NewNop()
	}

	refs := make([]ai.ToolRef, 0, len(cfg.ToolNames))
	for _, name := range cfg.ToolNames {
		tool := genkit.LookupTool(cfg.Genkit, name)
		if tool == nil {
			cfg.Logger.Warn("tool not registered, skipping", "tool", name)
			continue
		}
		refs = append(refs, tool)
	}

	return &Agent{
		g:             cfg.Genkit,
		modelName:     cfg.ModelName,
		searcher:      cfg.Searcher,
		toolRefs:      refs,
		retrievalK:    cfg.RetrievalK,
		maxIterations: cfg.MaxIterations,
		logger:        cfg.Logger,
	}, nil
}

// Run executes one conversation turn. The messages slice is the prior
// conversation plus the new user message; it is never mutated.
func (a *Agent) Run(ctx context.Context, messages []*ai.Message) (*Result, error) {
	state := State{Messages: messages}

	state = a.retrieve(ctx, state)

	for {
		resp, err := a.reason(ctx, state)
		if err != nil {
			return nil, fmt.Errorf("generating response: %w", err)
		}
		state = state.WithMessages(resp.Message)

		requests := resp.ToolRequests()
		if len(requests) == 0 {
			return &Result{Text: resp.Text(), State: state}, nil
		}
		if state.Iteration > a.maxIterations {
			a.logger.Warn("iteration ceiling reached, dropping pending tool requests",
				"iteration", state.Iteration, "pending", len(requests))
			return &Result{Text: resp.Text(), State: state}, nil
		}

		state = state.WithMessages(a.runTools(ctx, requests)).NextIteration()
	}
}

// retrieve injects knowledge context for the last user message. Retrieval
// failure is non-fatal; the agent reasons without context.
func (a *Agent) retrieve(ctx context.Context, state State) State {
	query := state.LastUserText()
	if query == "" {
		return state
	}

	results, err := a.searcher.Search(ctx, query, a.retrievalK)
	if err != nil {
		a.logger.Warn("context retrieval failed", "error", err)
		return state.NextIteration()
	}

	a.logger.Debug("retrieved context", "results", len(results))
	return state.WithContext(results).NextIteration()
}

// reason runs one model call with tools attached. Tool requests are
// returned to the loop instead of being auto-executed, keeping routing
// and the iteration ceiling in our hands.
func (a *Agent) reason(ctx context.Context, state State) (*ai.ModelResponse, error) {
	return genkit.Generate(ctx, a.g,
		ai.WithModelName(a.modelName),
		ai.WithSystem(renderSystem(state.Context)),
		ai.WithMessages(state.Messages...),
		ai.WithTools(a.toolRefs...),
		ai.WithConfig(map[string]any{"temperature": modelTemperature}),
		ai.WithReturnToolRequests(true),
	)
}

// runTools executes the pending tool requests concurrently and collects
// the responses into a single tool message. Results land at the index of
// their request, so response order always matches request order, and
// every response carries its request's Ref for correlation.
func (a *Agent) runTools(ctx context.Context, requests []*ai.ToolRequest) *ai.Message {
	parts := make([]*ai.Part, len(requests))

	var wg sync.WaitGroup
	for i, req := range requests {
		wg.Add(1)
		go func(i int, req *ai.ToolRequest) {
			defer wg.Done()

			output, err := a.runTool(ctx, req)
			if err != nil {
				a.logger.Warn("tool execution failed", "tool", req.Name, "error", err)
				output = map[string]any{
					"status": "error",
					"tool":   req.Name,
					"error":  err.Error(),
				}
			}
			parts[i] = ai.NewToolResponsePart(&ai.ToolResponse{
				Name:   req.Name,
				Ref:    req.Ref,
				Output: output,
			})
		}(i, req)
	}
	wg.Wait()

	return &ai.Message{Role: ai.RoleTool, Content: parts}
}

// runTool dispatches one request through the Genkit registry. Names the
// model invents do not panic; they come back as an error the model can
// read and recover from.
func (a *Agent) runTool(ctx context.Context, req *ai.ToolRequest) (any, error) {
	tool := genkit.LookupTool(a.g, req.Name)
	if tool == nil {
		return nil, fmt.Errorf("unknown tool %q", req.Name)
	}

	a.logger.Debug("executing tool", "tool", req.Name, "ref", req.Ref)
	return tool.RunRaw(ctx, req.Input)
}
