// Package tools registers the marketing agent's tool set with Genkit.
// Tools wrap the pure domain packages (campaign, knowledge, imagen) and
// return structured values the model can relay to the user; they only
// return Go errors for programming bugs, never for expected upstream
// failures.
package tools

import (
	"context"
	"net/http"

	"github.com/firebase/genkit/go/genkit"

	"github.com/chroniclife/marketing-studio/internal/imagen"
	"github.com/chroniclife/marketing-studio/internal/knowledge"
	"github.com/chroniclife/marketing-studio/internal/log"
)

// toolNames contains all registered tool names, the single source of
// truth for wiring them into generate requests.
var toolNames = []string{
	"search_knowledge",
	"generate_image",
	"create_campaign",
	"analyze_copy",
	"generate_utm_url",
	"analyze_seo",
	"get_ad_performance",
}

// Names returns all registered tool names.
func Names() []string {
	return toolNames
}

// Searcher is the knowledge-base lookup the search_knowledge tool needs.
// *knowledge.Retriever satisfies it.
type Searcher interface {
	Search(ctx context.Context, query string, k int) ([]knowledge.Result, error)
}

// Deps carries the collaborators the tools close over.
type Deps struct {
	Searcher       Searcher
	Images         *imagen.Service
	LandingPageURL string
	HTTPClient     *http.Client
	Logger         log.Logger
}

// Register registers every tool with Genkit. Dependencies are captured
// by closures; there is no package-level state.
func Register(g *genkit.Genkit, deps Deps) {
	if deps.Logger == nil {
		deps.Logger = log.NewNop()
	}
	if deps.HTTPClient == nil {
		deps.HTTPClient = http.DefaultClient
	}

	registerKnowledgeTools(g, deps.Searcher)
	registerImageTools(g, deps.Images)
	registerCampaignTools(g, deps.LandingPageURL)
	registerSEOTools(g, deps.HTTPClient)
	registerAnalyticsTools(g)
}
