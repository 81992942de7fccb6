package knowledge

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/pgvector/pgvector-go"

	"github.com/chroniclife/marketing-studio/internal/log"
)

// indexRowThreshold is the minimum row count before an ivfflat index is
// worth building; below it searches fall back to a sequential scan.
const indexRowThreshold = 256

// undefinedTableCode is SQLSTATE 42P01, returned when the chunks table
// has never been created. The store maps it to the not-indexed sentinel.
const undefinedTableCode = "42P01"

// Querier is the subset of pgxpool.Pool the store depends on. Defined by
// the consumer so tests can substitute a lighter implementation.
type Querier interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	Begin(ctx context.Context) (pgx.Tx, error)
}

// Store persists chunks and their embeddings in PostgreSQL with pgvector.
//
// The chunks table is only ever replaced wholesale by Replace and read by
// Search; there is no incremental update path. Store is safe for
// concurrent use.
type Store struct {
	db     Querier
	logger log.Logger
}

// NewStore creates a Store over a pgx connection pool.
func NewStore(db Querier, logger log.Logger) *Store {
	if logger == nil {
		logger = log.NewNop()
	}
	return &Store{db: db, logger: logger}
}

// Replace drops and recreates the chunks table with the given rows inside
// a single transaction, so concurrent readers see either the old table or
// the new one, never a partial state. It reports whether an ANN index was
// built (only at indexRowThreshold rows or more).
func (s *Store) Replace(ctx context.Context, chunks []Chunk, vectors [][]float32) (bool, error) {
	if len(chunks) != len(vectors) {
		return false, fmt.Errorf("chunk/vector count mismatch: %d != %d", len(chunks), len(vectors))
	}

	tx, err := s.db.Begin(ctx)
	if err != nil {
		return false, fmt.Errorf("beginning transaction: %w", err)
	}
	defer func() {
		if rbErr := tx.Rollback(ctx); rbErr != nil && !errors.Is(rbErr, pgx.ErrTxClosed) {
			s.logger.Warn("rollback failed", "error", rbErr)
		}
	}()

	if _, err := tx.Exec(ctx, `DROP TABLE IF EXISTS chunks`); err != nil {
		return false, fmt.Errorf("dropping chunks table: %w", err)
	}

	createSQL := fmt.Sprintf(`CREATE TABLE chunks (
		id        BIGSERIAL PRIMARY KEY,
		text      TEXT NOT NULL,
		source    TEXT NOT NULL,
		category  TEXT NOT NULL,
		filename  TEXT NOT NULL,
		chunk_id  INTEGER NOT NULL,
		embedding vector(%d) NOT NULL,
		UNIQUE (source, chunk_id)
	)`, VectorDimension)
	if _, err := tx.Exec(ctx, createSQL); err != nil {
		return false, fmt.Errorf("creating chunks table: %w", err)
	}

	for i, c := range chunks {
		_, err := tx.Exec(ctx,
			`INSERT INTO chunks (text, source, category, filename, chunk_id, embedding)
			 VALUES ($1, $2, $3, $4, $5, $6)`,
			c.Text, c.Source, c.Category, c.Filename, c.ChunkID, pgvector.NewVector(vectors[i]))
		if err != nil {
			return false, fmt.Errorf("inserting chunk %s#%d: %w", c.Source, c.ChunkID, err)
		}
	}

	indexCreated := false
	if len(chunks) >= indexRowThreshold {
		_, err := tx.Exec(ctx,
			`CREATE INDEX chunks_embedding_idx ON chunks USING ivfflat (embedding vector_cosine_ops)`)
		if err != nil {
			// the table still works without the index, just slower
			s.logger.Warn("could not create ann index", "error", err)
		} else {
			indexCreated = true
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return false, fmt.Errorf("committing replace: %w", err)
	}

	s.logger.Info("replaced chunks table", "rows", len(chunks), "index_created", indexCreated)
	return indexCreated, nil
}

// Search returns the top-k chunks nearest to the query vector by cosine
// distance, most similar first. An empty category means no filter. When
// the chunks table does not exist, Search returns the single not-indexed
// sentinel result instead of an error.
func (s *Store) Search(ctx context.Context, vector []float32, k int, category string) ([]Result, error) {
	var (
		rows pgx.Rows
		err  error
	)
	if category != "" {
		rows, err = s.db.Query(ctx,
			`SELECT text, source, category, embedding <=> $1 AS relevance
			 FROM chunks
			 WHERE category = $2
			 ORDER BY relevance
			 LIMIT $3`,
			pgvector.NewVector(vector), category, k)
	} else {
		rows, err = s.db.Query(ctx,
			`SELECT text, source, category, embedding <=> $1 AS relevance
			 FROM chunks
			 ORDER BY relevance
			 LIMIT $2`,
			pgvector.NewVector(vector), k)
	}
	if err != nil {
		if isUndefinedTable(err) {
			return []Result{NotIndexedResult()}, nil
		}
		return nil, fmt.Errorf("vector search: %w", err)
	}
	defer rows.Close()

	var results []Result
	for rows.Next() {
		var r Result
		if err := rows.Scan(&r.Text, &r.Source, &r.Category, &r.Relevance); err != nil {
			return nil, fmt.Errorf("scanning result row: %w", err)
		}
		results = append(results, r)
	}
	if err := rows.Err(); err != nil {
		if isUndefinedTable(err) {
			return []Result{NotIndexedResult()}, nil
		}
		return nil, fmt.Errorf("reading result rows: %w", err)
	}

	return results, nil
}

// Count returns the number of indexed chunks, or 0 when the table does
// not exist.
func (s *Store) Count(ctx context.Context) (int, error) {
	var count int
	err := s.db.QueryRow(ctx, `SELECT COUNT(*) FROM chunks`).Scan(&count)
	if err != nil {
		if isUndefinedTable(err) {
			return 0, nil
		}
		return 0, fmt.Errorf("counting chunks: %w", err)
	}
	return count, nil
}

// Sources lists the distinct indexed source paths in lexical order, or an
// empty list when the table does not exist.
func (s *Store) Sources(ctx context.Context) ([]string, error) {
	rows, err := s.db.Query(ctx, `SELECT DISTINCT source FROM chunks ORDER BY source`)
	if err != nil {
		if isUndefinedTable(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("listing sources: %w", err)
	}
	defer rows.Close()

	var sources []string
	for rows.Next() {
		var s string
		if err := rows.Scan(&s); err != nil {
			return nil, fmt.Errorf("scanning source row: %w", err)
		}
		sources = append(sources, s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("reading source rows: %w", err)
	}
	return sources, nil
}

// isUndefinedTable reports whether err is PostgreSQL's undefined_table.
func isUndefinedTable(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == undefinedTableCode
}
