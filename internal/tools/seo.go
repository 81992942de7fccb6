package tools

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/firebase/genkit/go/ai"
	"github.com/firebase/genkit/go/genkit"
)

// SEOReport summarizes the on-page SEO signals of a URL.
type SEOReport struct {
	Status      string   `json:"status"`
	URL         string   `json:"url"`
	Title       string   `json:"title,omitempty"`
	Description string   `json:"description,omitempty"`
	H1Tags      []string `json:"h1_tags,omitempty"`
	StatusCode  int      `json:"status_code,omitempty"`
	Error       string   `json:"error,omitempty"`
}

func registerSEOTools(g *genkit.Genkit, client *http.Client) {
	genkit.DefineTool(
		g,
		"analyze_seo",
		"Analyze the SEO of a URL by fetching it and checking the page title, "+
			"meta description, and H1 tags. "+
			"Use this to audit the landing page or competitor pages.",
		func(ctx *ai.ToolContext, input struct {
			URL string `json:"url" jsonschema_description:"Full URL to analyze, including https://"`
		},
		) (SEOReport, error) {
			report, err := analyzeSEO(ctx, client, input.URL)
			if err != nil {
				// fetch and parse failures go back to the model, not up the stack
				return SEOReport{Status: "error", URL: input.URL, Error: err.Error()}, nil
			}
			return report, nil
		},
	)
}

func analyzeSEO(ctx *ai.ToolContext, client *http.Client, url string) (SEOReport, error) {
	req, err := http.NewRequestWithContext(ctx.Context, http.MethodGet, url, nil)
	if err != nil {
		return SEOReport{}, fmt.Errorf("building request: %w", err)
	}

	resp, err := client.Do(req)
	if err != nil {
		return SEOReport{}, fmt.Errorf("fetching page: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		return SEOReport{}, fmt.Errorf("fetching page: status %d", resp.StatusCode)
	}

	doc, err := goquery.NewDocumentFromReader(resp.Body)
	if err != nil {
		return SEOReport{}, fmt.Errorf("parsing page: %w", err)
	}

	report := SEOReport{
		Status:     "success",
		URL:        url,
		Title:      strings.TrimSpace(doc.Find("title").First().Text()),
		StatusCode: resp.StatusCode,
	}
	if report.Title == "" {
		report.Title = "No title found"
	}

	report.Description = "No description found"
	if desc, ok := doc.Find(`meta[name="description"]`).First().Attr("content"); ok {
		report.Description = desc
	}

	doc.Find("h1").Each(func(_ int, s *goquery.Selection) {
		report.H1Tags = append(report.H1Tags, strings.TrimSpace(s.Text()))
	})

	return report, nil
}
