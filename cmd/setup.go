package cmd

import (
	"context"
	"fmt"
	"strings"

	"github.com/firebase/genkit/go/genkit"
	"github.com/firebase/genkit/go/plugins/googlegenai"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/chroniclife/marketing-studio/db"
	"github.com/chroniclife/marketing-studio/internal/agent"
	"github.com/chroniclife/marketing-studio/internal/config"
	"github.com/chroniclife/marketing-studio/internal/imagen"
	"github.com/chroniclife/marketing-studio/internal/knowledge"
	"github.com/chroniclife/marketing-studio/internal/log"
	"github.com/chroniclife/marketing-studio/internal/tools"
)

// app holds the wired components shared by the agent-backed commands.
// Everything is constructed here and injected; no package keeps lazy
// global state.
type app struct {
	cfg       *config.Config
	g         *genkit.Genkit
	pool      *pgxpool.Pool
	store     *knowledge.Store
	embedder  knowledge.Embedder
	retriever *knowledge.Retriever
	agent     *agent.Agent
	logger    log.Logger
}

// newApp loads configuration, runs migrations, and wires the full stack.
// The returned cleanup closes the connection pool.
func newApp(ctx context.Context, logger log.Logger) (*app, func(), error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, nil, err
	}
	if err := config.RequireAPIKey(); err != nil {
		return nil, nil, err
	}

	if err := db.Migrate(cfg.ConnString()); err != nil {
		return nil, nil, fmt.Errorf("running migrations: %w", err)
	}

	pool, err := pgxpool.New(ctx, cfg.ConnString())
	if err != nil {
		return nil, nil, fmt.Errorf("creating connection pool: %w", err)
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, nil, fmt.Errorf("connecting to postgres: %w", err)
	}

	g := genkit.Init(ctx, genkit.WithPlugins(&googlegenai.GoogleAI{}))
	if g == nil {
		pool.Close()
		return nil, nil, fmt.Errorf("initializing genkit with gemini provider")
	}

	embedder := knowledge.NewGeminiEmbedder(
		googlegenai.GoogleAIEmbedder(g, cfg.EmbedderModel), logger)
	store := knowledge.NewStore(pool, logger)
	retriever := knowledge.NewRetriever(store, embedder, logger)

	imagenClient, err := imagen.NewClient(ctx, cfg.ImageModel)
	if err != nil {
		pool.Close()
		return nil, nil, fmt.Errorf("creating imagen client: %w", err)
	}

	tools.Register(g, tools.Deps{
		Searcher:       retriever,
		Images:         imagen.NewService(imagenClient, logger),
		LandingPageURL: cfg.LandingPageURL,
		Logger:         logger,
	})

	ag, err := agent.New(agent.Config{
		Genkit:        g,
		ModelName:     qualifiedModelName(cfg.ModelName),
		Searcher:      retriever,
		ToolNames:     tools.Names(),
		RetrievalK:    cfg.RetrievalK,
		MaxIterations: cfg.MaxIterations,
		Logger:        logger,
	})
	if err != nil {
		pool.Close()
		return nil, nil, err
	}

	a := &app{
		cfg:       cfg,
		g:         g,
		pool:      pool,
		store:     store,
		embedder:  embedder,
		retriever: retriever,
		agent:     ag,
		logger:    logger,
	}
	return a, pool.Close, nil
}

// qualifiedModelName ensures the model carries its Genkit provider
// prefix; bare names are assumed to be Google AI models.
func qualifiedModelName(name string) string {
	if strings.Contains(name, "/") {
		return name
	}
	return "googleai/" + name
}
