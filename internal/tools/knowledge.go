package tools

import (
	"strings"

	"github.com/firebase/genkit/go/ai"
	"github.com/firebase/genkit/go/genkit"

	"github.com/chroniclife/marketing-studio/internal/knowledge"
)

// searchResultLimit is the top-k for explicit tool searches. The agent
// already gets k=5 automatic retrieval per turn; tool calls are for
// drilling into a narrower question.
const searchResultLimit = 3

func registerKnowledgeTools(g *genkit.Genkit, searcher Searcher) {
	genkit.DefineTool(
		g,
		"search_knowledge",
		"Search the marketing knowledge base for relevant information about campaigns, "+
			"brand guidelines, pain points, and more. "+
			"Returns the matching excerpts with their source files.",
		func(ctx *ai.ToolContext, input struct {
			Query string `json:"query" jsonschema_description:"What to look up, e.g. 'UTM conventions' or 'fatigue pain points'"`
		},
		) (string, error) {
			results, err := searcher.Search(ctx.Context, input.Query, searchResultLimit)
			if err != nil {
				return "", err
			}
			return FormatResults(results), nil
		},
	)
}

// FormatResults renders retrieval results as "[source]\ntext" blocks
// separated by horizontal rules, the shape the system prompt tells the
// model to cite from.
func FormatResults(results []knowledge.Result) string {
	if len(results) == 0 {
		return "No results found."
	}
	blocks := make([]string, 0, len(results))
	for _, r := range results {
		blocks = append(blocks, "["+r.Source+"]\n"+r.Text)
	}
	return strings.Join(blocks, "\n\n---\n\n")
}
