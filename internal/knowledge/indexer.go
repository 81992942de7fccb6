package knowledge

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/gofrs/flock"

	"github.com/chroniclife/marketing-studio/internal/log"
)

// ErrNoDocuments indicates the knowledge directory contained no markdown
// files to index.
var ErrNoDocuments = errors.New("no documents found to index")

// IndexResult reports the outcome of a full reindex.
type IndexResult struct {
	Status        string `json:"status"`
	FilesIndexed  int    `json:"files_indexed"`
	ChunksCreated int    `json:"chunks_created"`
	IndexCreated  bool   `json:"index_created"`
	Note          string `json:"note,omitempty"`
}

// Indexer rebuilds the vector store from a knowledge directory.
//
// A reindex is a full rebuild: every markdown file is re-chunked and
// re-embedded, and the chunks table is replaced wholesale. A file lock
// serializes concurrent reindex runs.
type Indexer struct {
	store    *Store
	embedder Embedder
	logger   log.Logger
	lockPath string
}

// NewIndexer creates an Indexer. lockPath is the advisory lock file
// guarding the rebuild; an empty path defaults to the system temp dir.
func NewIndexer(store *Store, embedder Embedder, logger log.Logger, lockPath string) *Indexer {
	if logger == nil {
		logger = log.NewNop()
	}
	if lockPath == "" {
		lockPath = filepath.Join(os.TempDir(), "studio-index.lock")
	}
	return &Indexer{
		store:    store,
		embedder: embedder,
		logger:   logger,
		lockPath: lockPath,
	}
}

// Index walks root for markdown files, chunks and embeds their content,
// and replaces the chunk table with the result.
//
// A file that cannot be read or chunked is logged and skipped; it never
// aborts the rest of the run. Finding no markdown files at all returns an
// IndexResult with status "error" and ErrNoDocuments.
func (ix *Indexer) Index(ctx context.Context, root string) (IndexResult, error) {
	lock := flock.New(ix.lockPath)
	locked, err := lock.TryLockContext(ctx, 0)
	if err != nil {
		return IndexResult{Status: "error"}, fmt.Errorf("acquiring index lock: %w", err)
	}
	if !locked {
		return IndexResult{Status: "error"}, fmt.Errorf("another index run holds %s", ix.lockPath)
	}
	defer func() {
		if err := lock.Unlock(); err != nil {
			ix.logger.Warn("releasing index lock failed", "error", err)
		}
	}()

	chunks, filesIndexed := ix.collect(root)
	if len(chunks) == 0 {
		return IndexResult{Status: "error", Note: "No documents found to index"}, ErrNoDocuments
	}

	ix.logger.Info("generating embeddings", "chunks", len(chunks))
	texts := make([]string, len(chunks))
	for i, c := range chunks {
		texts[i] = c.Text
	}
	vectors, err := ix.embedder.Embed(ctx, texts)
	if err != nil {
		return IndexResult{Status: "error"}, fmt.Errorf("embedding chunks: %w", err)
	}

	indexCreated, err := ix.store.Replace(ctx, chunks, vectors)
	if err != nil {
		return IndexResult{Status: "error"}, fmt.Errorf("replacing chunk table: %w", err)
	}

	result := IndexResult{
		Status:        "success",
		FilesIndexed:  filesIndexed,
		ChunksCreated: len(chunks),
		IndexCreated:  indexCreated,
	}
	if !indexCreated {
		result.Note = fmt.Sprintf("Index not created (need %d+ chunks)", indexRowThreshold)
	}
	return result, nil
}

// collect walks root and chunks every markdown file, skipping files that
// fail to read.
func (ix *Indexer) collect(root string) ([]Chunk, int) {
	var chunks []Chunk
	filesIndexed := 0

	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			ix.logger.Warn("walking knowledge dir", "path", path, "error", err)
			return nil
		}
		if d.IsDir() || !strings.HasSuffix(d.Name(), ".md") {
			return nil
		}

		content, err := os.ReadFile(path)
		if err != nil {
			ix.logger.Warn("reading knowledge file failed, skipping", "path", path, "error", err)
			return nil
		}

		meta := extractMetadata(root, path)
		fileChunks := ChunkMarkdown(string(content), DefaultChunkSize, DefaultChunkOverlap)
		for i, text := range fileChunks {
			chunks = append(chunks, Chunk{
				Text:     text,
				Source:   meta.source,
				Category: meta.category,
				Filename: meta.filename,
				ChunkID:  i,
			})
		}

		filesIndexed++
		ix.logger.Info("indexed file", "source", meta.source, "chunks", len(fileChunks))
		return nil
	})
	if err != nil {
		ix.logger.Warn("knowledge walk aborted", "error", err)
	}

	return chunks, filesIndexed
}

type fileMetadata struct {
	source   string
	category string
	filename string
}

// extractMetadata derives source attribution from a file's position in
// the knowledge tree: source is the slash-separated relative path,
// category the top-level directory, filename the stem.
func extractMetadata(root, path string) fileMetadata {
	rel, err := filepath.Rel(root, path)
	if err != nil {
		rel = filepath.Base(path)
	}
	rel = filepath.ToSlash(rel)

	// files directly under root have no category directory
	category := "unknown"
	if parts := strings.Split(rel, "/"); len(parts) > 1 {
		category = parts[0]
	}

	base := filepath.Base(path)
	return fileMetadata{
		source:   rel,
		category: category,
		filename: strings.TrimSuffix(base, filepath.Ext(base)),
	}
}
