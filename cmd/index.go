package cmd

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/chroniclife/marketing-studio/internal/knowledge"
	"github.com/chroniclife/marketing-studio/internal/log"
)

// runIndex rebuilds the vector store from the knowledge directory. An
// optional positional argument overrides the configured directory.
func runIndex(ctx context.Context, logger log.Logger, args []string) error {
	a, cleanup, err := newApp(ctx, logger)
	if err != nil {
		return err
	}
	defer cleanup()

	dir := a.cfg.KnowledgeDir
	if len(args) > 0 {
		dir = args[0]
	}

	fmt.Printf("Indexing knowledge base from %s ...\n", dir)

	indexer := knowledge.NewIndexer(a.store, a.embedder, logger,
		filepath.Join(filepath.Dir(a.cfg.HistoryDBPath), "index.lock"))
	result, err := indexer.Index(ctx, dir)
	if err != nil {
		return fmt.Errorf("indexing %s: %w", dir, err)
	}

	fmt.Printf("Indexed %d files into %d chunks.\n", result.FilesIndexed, result.ChunksCreated)
	if result.IndexCreated {
		fmt.Println("ANN index created.")
	} else if result.Note != "" {
		fmt.Println(result.Note)
	}
	return nil
}
