package knowledge

import (
	"strings"
	"unicode/utf8"
)

// ChunkMarkdown splits markdown content into retrieval-sized segments.
//
// The document is first split at heading boundaries (lines starting with
// one to three '#' characters). Sections that fit within targetSize are
// emitted whole; larger sections are split at blank lines and paragraphs
// are greedily accumulated until the next one would exceed targetSize.
// A single paragraph longer than targetSize is still emitted whole: the
// size is a soft target, not a hard cap.
//
// overlap is accepted for call-site compatibility but the paragraph
// accumulation path does not produce sliding windows between consecutive
// chunks.
//
// No returned chunk is empty or whitespace-only.
func ChunkMarkdown(content string, targetSize, overlap int) []string {
	_ = overlap

	var chunks []string
	for _, section := range splitSections(content) {
		section = strings.TrimSpace(section)
		if section == "" {
			continue
		}

		if utf8.RuneCountInString(section) <= targetSize {
			chunks = append(chunks, section)
			continue
		}

		var current string
		for _, para := range strings.Split(section, "\n\n") {
			para = strings.TrimSpace(para)
			if para == "" {
				continue
			}

			if utf8.RuneCountInString(current)+utf8.RuneCountInString(para) <= targetSize {
				if current == "" {
					current = para
				} else {
					current += "\n\n" + para
				}
			} else {
				if current != "" {
					chunks = append(chunks, current)
				}
				current = para
			}
		}
		if current != "" {
			chunks = append(chunks, current)
		}
	}

	return chunks
}

// splitSections splits content before every h1-h3 heading line. The
// heading line itself starts the new section.
func splitSections(content string) []string {
	lines := strings.Split(content, "\n")

	var sections []string
	start := 0
	for i := 1; i < len(lines); i++ {
		if isHeadingLine(lines[i]) {
			sections = append(sections, strings.Join(lines[start:i], "\n"))
			start = i
		}
	}
	sections = append(sections, strings.Join(lines[start:], "\n"))
	return sections
}

// isHeadingLine reports whether line begins a markdown h1-h3 heading.
// Four or more '#' characters do not open a new section.
func isHeadingLine(line string) bool {
	n := 0
	for n < len(line) && line[n] == '#' {
		n++
	}
	if n < 1 || n > 3 {
		return false
	}
	return n < len(line) && (line[n] == ' ' || line[n] == '\t' || line[n] == '\r')
}
