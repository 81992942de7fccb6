package knowledge

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/firebase/genkit/go/ai"
	"github.com/firebase/genkit/go/core/api"

	"github.com/chroniclife/marketing-studio/internal/log"
)

// scriptedEmbedder implements ai.Embedder with programmable failures.
type scriptedEmbedder struct {
	mu sync.Mutex
	// failBatchesOver makes requests with more inputs than this fail
	failBatchesOver int
	// failTexts makes individual requests for these exact texts fail
	failTexts map[string]bool
	calls     int
}

func (s *scriptedEmbedder) Name() string { return "scripted-embedder" }

func (s *scriptedEmbedder) Register(api.Registry) {}

func (s *scriptedEmbedder) Embed(_ context.Context, req *ai.EmbedRequest) (*ai.EmbedResponse, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.calls++

	if s.failBatchesOver > 0 && len(req.Input) > s.failBatchesOver {
		return nil, errors.New("batch too large")
	}

	embeddings := make([]*ai.Embedding, len(req.Input))
	for i, doc := range req.Input {
		text := docText(doc)
		if s.failTexts[text] {
			return nil, errors.New("scripted failure for " + text)
		}
		vec := make([]float32, VectorDimension)
		vec[0] = float32(len(text))
		embeddings[i] = &ai.Embedding{Embedding: vec}
	}
	return &ai.EmbedResponse{Embeddings: embeddings}, nil
}

func docText(doc *ai.Document) string {
	for _, p := range doc.Content {
		if p.Kind == ai.PartText {
			return p.Text
		}
	}
	return ""
}

func TestGeminiEmbedder_EmptyInput(t *testing.T) {
	e := NewGeminiEmbedder(&scriptedEmbedder{}, log.NewNop())

	vectors, err := e.Embed(context.Background(), nil)
	if err != nil {
		t.Fatalf("Embed(nil) = %v", err)
	}
	if len(vectors) != 0 {
		t.Errorf("vectors = %d, want 0", len(vectors))
	}
}

func TestGeminiEmbedder_LengthAndOrderPreserved(t *testing.T) {
	e := NewGeminiEmbedder(&scriptedEmbedder{}, log.NewNop())

	texts := []string{"a", "bb", "ccc"}
	vectors, err := e.Embed(context.Background(), texts)
	if err != nil {
		t.Fatalf("Embed() = %v", err)
	}
	if len(vectors) != len(texts) {
		t.Fatalf("vectors = %d, want %d", len(vectors), len(texts))
	}
	for i, text := range texts {
		if vectors[i][0] != float32(len(text)) {
			t.Errorf("vectors[%d][0] = %v, want %d (order broken)", i, vectors[i][0], len(text))
		}
		if len(vectors[i]) != VectorDimension {
			t.Errorf("vectors[%d] dimension = %d", i, len(vectors[i]))
		}
	}
}

func TestGeminiEmbedder_DegradesToPerText(t *testing.T) {
	// Batches fail; individual requests succeed.
	scripted := &scriptedEmbedder{failBatchesOver: 1}
	e := NewGeminiEmbedder(scripted, log.NewNop())

	texts := []string{"one", "two", "three"}
	vectors, err := e.Embed(context.Background(), texts)
	if err != nil {
		t.Fatalf("Embed() = %v", err)
	}
	if len(vectors) != len(texts) {
		t.Fatalf("vectors = %d, want %d", len(vectors), len(texts))
	}
	for i, text := range texts {
		if vectors[i][0] != float32(len(text)) {
			t.Errorf("vectors[%d][0] = %v, want %d", i, vectors[i][0], len(text))
		}
	}
}

func TestGeminiEmbedder_ZeroVectorSubstitution(t *testing.T) {
	// Batch fails; "two" also fails individually and must come back as a
	// zero vector without disturbing its neighbors.
	scripted := &scriptedEmbedder{
		failBatchesOver: 1,
		failTexts:       map[string]bool{"two": true},
	}
	e := NewGeminiEmbedder(scripted, log.NewNop())

	texts := []string{"one", "two", "three"}
	vectors, err := e.Embed(context.Background(), texts)
	if err != nil {
		t.Fatalf("Embed() = %v", err)
	}
	if len(vectors) != len(texts) {
		t.Fatalf("vectors = %d, want %d (failure must not shorten output)", len(vectors), len(texts))
	}

	if len(vectors[1]) != VectorDimension {
		t.Fatalf("substituted vector dimension = %d", len(vectors[1]))
	}
	for i, v := range vectors[1] {
		if v != 0 {
			t.Fatalf("vectors[1][%d] = %v, want zero vector", i, v)
		}
	}
	if vectors[0][0] != 3 || vectors[2][0] != 5 {
		t.Errorf("neighbors disturbed: %v, %v", vectors[0][0], vectors[2][0])
	}
}

func TestGeminiEmbedder_BatchRetrySucceeds(t *testing.T) {
	scripted := &scriptedEmbedder{}
	e := NewGeminiEmbedder(scripted, log.NewNop())

	if _, err := e.Embed(context.Background(), []string{"x"}); err != nil {
		t.Fatalf("Embed() = %v", err)
	}
	if scripted.calls != 1 {
		t.Errorf("calls = %d, want 1 (no retry on success)", scripted.calls)
	}
}

func TestGeminiEmbedder_ContextCancellation(t *testing.T) {
	e := NewGeminiEmbedder(&scriptedEmbedder{}, log.NewNop())

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if _, err := e.Embed(ctx, []string{"x"}); err == nil {
		t.Fatal("expected error for canceled context")
	}
}
