package knowledge

import (
	"context"
	"fmt"

	"github.com/firebase/genkit/go/ai"
	"golang.org/x/time/rate"

	"github.com/chroniclife/marketing-studio/internal/log"
)

// embedBatchSize is the upstream request-size limit for embedding calls.
const embedBatchSize = 100

// Embedder generates fixed-dimension embeddings for batches of text.
// Implementations must preserve input length and order, and return an
// empty slice for empty input.
type Embedder interface {
	Embed(ctx context.Context, texts []string) ([][]float32, error)
}

// GeminiEmbedder batches embedding requests through a Genkit embedder.
//
// Failure policy is degrade-not-fail: a failed batch is retried once,
// then split into per-text requests; a text whose individual embedding
// still fails gets a zero vector so output length stays aligned with
// input length. Only context cancellation propagates as an error.
type GeminiEmbedder struct {
	embedder ai.Embedder
	limiter  *rate.Limiter
	logger   log.Logger
}

// NewGeminiEmbedder creates a batching embedder around a Genkit embedder.
func NewGeminiEmbedder(embedder ai.Embedder, logger log.Logger) *GeminiEmbedder {
	if logger == nil {
		logger = log.NewNop()
	}
	return &GeminiEmbedder{
		embedder: embedder,
		// the Gemini embedding endpoint allows bursts but sustained
		// indexing runs should stay well under quota
		limiter: rate.NewLimiter(rate.Limit(2), 4),
		logger:  logger,
	}
}

// Embed generates embeddings for texts, preserving length and order.
// Embed(nil) and Embed([]) return an empty slice.
func (e *GeminiEmbedder) Embed(ctx context.Context, texts []string) ([][]float32, error) {
	if len(texts) == 0 {
		return [][]float32{}, nil
	}

	vectors := make([][]float32, 0, len(texts))
	for start := 0; start < len(texts); start += embedBatchSize {
		end := min(start+embedBatchSize, len(texts))
		batch := texts[start:end]

		if err := e.limiter.Wait(ctx); err != nil {
			return nil, fmt.Errorf("waiting for embed rate limit: %w", err)
		}

		batchVectors, err := e.embedBatch(ctx, batch)
		if err != nil {
			if ctx.Err() != nil {
				return nil, ctx.Err()
			}
			e.logger.Warn("batch embedding failed, degrading to per-text requests",
				"batch_start", start, "batch_size", len(batch), "error", err)
			batchVectors = e.embedIndividually(ctx, batch)
		}
		vectors = append(vectors, batchVectors...)
	}

	return vectors, nil
}

// embedBatch embeds one batch, retrying once before giving up.
func (e *GeminiEmbedder) embedBatch(ctx context.Context, batch []string) ([][]float32, error) {
	docs := make([]*ai.Document, len(batch))
	for i, text := range batch {
		docs[i] = &ai.Document{Content: []*ai.Part{ai.NewTextPart(text)}}
	}

	var lastErr error
	for attempt := 0; attempt < 2; attempt++ {
		resp, err := e.embedder.Embed(ctx, &ai.EmbedRequest{Input: docs})
		if err != nil {
			lastErr = err
			if ctx.Err() != nil {
				return nil, ctx.Err()
			}
			continue
		}
		if len(resp.Embeddings) != len(batch) {
			lastErr = fmt.Errorf("embedding count mismatch: got %d for %d texts", len(resp.Embeddings), len(batch))
			continue
		}

		vectors := make([][]float32, len(batch))
		for i, emb := range resp.Embeddings {
			vectors[i] = emb.Embedding
		}
		return vectors, nil
	}
	return nil, lastErr
}

// embedIndividually embeds each text on its own, substituting a zero
// vector for texts that still fail.
func (e *GeminiEmbedder) embedIndividually(ctx context.Context, batch []string) [][]float32 {
	vectors := make([][]float32, len(batch))
	for i, text := range batch {
		resp, err := e.embedder.Embed(ctx, &ai.EmbedRequest{
			Input: []*ai.Document{{Content: []*ai.Part{ai.NewTextPart(text)}}},
		})
		if err != nil || len(resp.Embeddings) == 0 || len(resp.Embeddings[0].Embedding) == 0 {
			e.logger.Warn("embedding failed for text, substituting zero vector",
				"index", i, "error", err)
			vectors[i] = make([]float32, VectorDimension)
			continue
		}
		vectors[i] = resp.Embeddings[0].Embedding
	}
	return vectors
}
