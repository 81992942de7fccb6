package knowledge

import (
	"strings"
	"testing"
	"unicode/utf8"
)

func TestChunkMarkdown_SmallInputSingleChunk(t *testing.T) {
	content := "  # Brand Voice\n\nWarm, direct, never clinical.  \n"
	chunks := ChunkMarkdown(content, DefaultChunkSize, DefaultChunkOverlap)

	if len(chunks) != 1 {
		t.Fatalf("chunks = %d, want 1", len(chunks))
	}
	if chunks[0] != strings.TrimSpace(content) {
		t.Errorf("chunk = %q, want trimmed input", chunks[0])
	}
}

func TestChunkMarkdown_SplitsAtHeadings(t *testing.T) {
	content := "# One\n\nintro text\n\n## Two\n\nsecond section\n\n### Three\n\nthird section"
	chunks := ChunkMarkdown(content, DefaultChunkSize, DefaultChunkOverlap)

	if len(chunks) != 3 {
		t.Fatalf("chunks = %v, want 3 sections", chunks)
	}
	if !strings.HasPrefix(chunks[0], "# One") {
		t.Errorf("chunks[0] = %q", chunks[0])
	}
	if !strings.HasPrefix(chunks[1], "## Two") {
		t.Errorf("chunks[1] = %q", chunks[1])
	}
	if !strings.HasPrefix(chunks[2], "### Three") {
		t.Errorf("chunks[2] = %q", chunks[2])
	}
}

func TestChunkMarkdown_H4IsNotABoundary(t *testing.T) {
	content := "# One\n\ntext\n\n#### Subsub\n\nmore text"
	chunks := ChunkMarkdown(content, DefaultChunkSize, DefaultChunkOverlap)

	if len(chunks) != 1 {
		t.Fatalf("chunks = %v, want h4 kept inside the section", chunks)
	}
}

func TestChunkMarkdown_ParagraphAccumulation(t *testing.T) {
	para := strings.Repeat("word ", 30) // ~150 chars
	content := strings.TrimSpace(strings.Repeat(para+"\n\n", 5))

	chunks := ChunkMarkdown(content, 320, DefaultChunkOverlap)

	if len(chunks) < 2 {
		t.Fatalf("chunks = %d, want section split into multiple chunks", len(chunks))
	}
	for i, c := range chunks {
		if strings.TrimSpace(c) == "" {
			t.Errorf("chunk %d is blank", i)
		}
	}
}

func TestChunkMarkdown_OversizedParagraphKeptWhole(t *testing.T) {
	long := strings.Repeat("a", 900)
	chunks := ChunkMarkdown("# T\n\n"+long+"\n\nshort tail", 500, DefaultChunkOverlap)

	found := false
	for _, c := range chunks {
		if c == long {
			found = true
		}
		if utf8.RuneCountInString(c) > 900 {
			t.Errorf("unexpected merged oversize chunk (%d runes)", utf8.RuneCountInString(c))
		}
	}
	if !found {
		t.Errorf("oversized paragraph was not emitted whole: %d chunks", len(chunks))
	}
}

func TestChunkMarkdown_NoEmptyChunks(t *testing.T) {
	inputs := []string{
		"",
		"\n\n\n",
		"# A\n\n\n\n## B\n\n\n",
		"\n\n# Heading only",
		strings.Repeat("p\n\n", 400),
	}
	for _, content := range inputs {
		for i, c := range ChunkMarkdown(content, 100, 10) {
			if strings.TrimSpace(c) == "" {
				t.Errorf("empty chunk %d for input %q", i, content)
			}
		}
	}
}

func TestChunkMarkdown_EmptyInput(t *testing.T) {
	if chunks := ChunkMarkdown("", DefaultChunkSize, DefaultChunkOverlap); len(chunks) != 0 {
		t.Errorf("chunks = %v, want none", chunks)
	}
}
