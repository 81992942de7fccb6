// Package knowledge implements the RAG pipeline over the marketing
// knowledge base: markdown chunking, Gemini embeddings, a pgvector-backed
// chunk store, full reindexing, and semantic retrieval.
package knowledge

// VectorDimension is the embedding size produced by text-embedding-004.
// The chunks table schema pins vector(768); changing the embedder model
// requires a reindex.
const VectorDimension = 768

const (
	// DefaultChunkSize is the soft character cap per chunk.
	DefaultChunkSize = 500

	// DefaultChunkOverlap is accepted by the chunker for call-site
	// compatibility; see ChunkMarkdown.
	DefaultChunkOverlap = 50

	// DefaultTopK is the number of results returned per search.
	DefaultTopK = 5
)

// Chunk is one indexed span of a knowledge file.
type Chunk struct {
	Text     string
	Source   string // path relative to the knowledge root
	Category string // top-level directory within the knowledge root
	Filename string // file name without extension
	ChunkID  int    // position of the chunk within its source file
}

// Result is a projection of a Chunk plus a distance score produced per
// query. Lower relevance means more similar. Scores are comparable only
// within one search call.
type Result struct {
	Text      string  `json:"text"`
	Source    string  `json:"source"`
	Category  string  `json:"category"`
	Relevance float64 `json:"relevance"`
}

// NotIndexedText is the sentinel text returned when the chunks table does
// not exist yet.
const NotIndexedText = "Knowledge base not indexed. Run: studio index"

// NotIndexedResult returns the sentinel Result the store yields when the
// vector table is missing. Callers render it as a normal (if unhelpful)
// answer instead of failing.
func NotIndexedResult() Result {
	return Result{
		Text:      NotIndexedText,
		Source:    "error",
		Category:  "error",
		Relevance: 0,
	}
}

// IsNotIndexed reports whether r is the not-indexed sentinel.
func (r Result) IsNotIndexed() bool {
	return r.Source == "error" && r.Text == NotIndexedText
}
