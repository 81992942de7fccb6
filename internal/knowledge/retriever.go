package knowledge

import (
	"context"
	"fmt"

	"github.com/chroniclife/marketing-studio/internal/log"
)

// Retriever answers semantic queries against the chunk store.
type Retriever struct {
	store    *Store
	embedder Embedder
	logger   log.Logger
}

// NewRetriever creates a Retriever over a store and an embedder.
func NewRetriever(store *Store, embedder Embedder, logger log.Logger) *Retriever {
	if logger == nil {
		logger = log.NewNop()
	}
	return &Retriever{store: store, embedder: embedder, logger: logger}
}

// Search returns the k chunks most similar to query, most similar first.
// When the knowledge base has never been indexed the single not-indexed
// sentinel result is returned instead of an error.
func (r *Retriever) Search(ctx context.Context, query string, k int) ([]Result, error) {
	return r.search(ctx, query, k, "")
}

// SearchCategory restricts Search to chunks whose category matches
// exactly (e.g. only brand guidelines, only research).
func (r *Retriever) SearchCategory(ctx context.Context, query, category string, k int) ([]Result, error) {
	return r.search(ctx, query, k, category)
}

func (r *Retriever) search(ctx context.Context, query string, k int, category string) ([]Result, error) {
	// the query is embedded exactly once per search call
	vectors, err := r.embedder.Embed(ctx, []string{query})
	if err != nil {
		return nil, fmt.Errorf("embedding query: %w", err)
	}
	if len(vectors) != 1 {
		return nil, fmt.Errorf("expected one query embedding, got %d", len(vectors))
	}

	results, err := r.store.Search(ctx, vectors[0], k, category)
	if err != nil {
		return nil, err
	}

	r.logger.Debug("knowledge search", "query_len", len(query), "k", k,
		"category", category, "results", len(results))
	return results, nil
}
