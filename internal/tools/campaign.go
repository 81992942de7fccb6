package tools

import (
	"github.com/firebase/genkit/go/ai"
	"github.com/firebase/genkit/go/genkit"

	"github.com/chroniclife/marketing-studio/internal/campaign"
)

func registerCampaignTools(g *genkit.Genkit, landingPageURL string) {
	genkit.DefineTool(
		g,
		"create_campaign",
		"Generate a structured campaign brief for a target condition and pain-point angle. "+
			"Returns the full brief: headline, subhead, CTAs, UTM URL, image prompt, "+
			"suggested channels, and next steps. "+
			"Conditions: endo, pcos, longcovid, fibro, chronic. "+
			"Angles: fatigue, pain, memory, doctor, flare. "+
			"Unknown values fall back to generic defaults.",
		func(ctx *ai.ToolContext, input struct {
			Condition string `json:"condition" jsonschema_description:"Target condition (endo, pcos, longcovid, fibro, chronic)"`
			Angle     string `json:"angle" jsonschema_description:"Pain point angle (fatigue, pain, memory, doctor, flare)"`
			Version   int    `json:"version,omitempty" jsonschema_description:"Campaign version number, defaults to 1"`
		},
		) (campaign.Brief, error) {
			if input.Version <= 0 {
				input.Version = 1
			}
			return campaign.NewBrief(landingPageURL, input.Condition, input.Angle, input.Version), nil
		},
	)

	genkit.DefineTool(
		g,
		"analyze_copy",
		"Analyze marketing copy for Spoonie-friendliness and effectiveness. "+
			"Returns a 0-100 score, feedback, and specific suggestions. "+
			"Score 70+ is considered Spoonie-friendly.",
		func(ctx *ai.ToolContext, input struct {
			CopyText string `json:"copy_text" jsonschema_description:"The marketing copy to analyze (headline, body, or CTA)"`
		},
		) (campaign.CopyAnalysis, error) {
			return campaign.AnalyzeCopy(input.CopyText), nil
		},
	)

	genkit.DefineTool(
		g,
		"generate_utm_url",
		"Generate a UTM-tagged URL following Chronic Life conventions: "+
			"utm_campaign is {condition}_{angle} and utm_content is {format}_v{version}. "+
			"Returns the full URL and a breakdown of its parameters.",
		func(ctx *ai.ToolContext, input struct {
			Condition     string `json:"condition" jsonschema_description:"Target condition (endo, pcos, longcovid, fibro, chronic)"`
			Angle         string `json:"angle" jsonschema_description:"Pain point angle (pain, fatigue, tracking, doctor, flare)"`
			Source        string `json:"source,omitempty" jsonschema_description:"Traffic source (reddit, facebook, instagram, google, email), defaults to reddit"`
			Medium        string `json:"medium,omitempty" jsonschema_description:"Medium type (cpc for paid, social for organic), defaults to cpc"`
			ContentFormat string `json:"content_format,omitempty" jsonschema_description:"Ad format (image, text, video, carousel, testimonial), defaults to image"`
			Version       int    `json:"version,omitempty" jsonschema_description:"Content version number, defaults to 1"`
		},
		) (campaign.UTMLink, error) {
			if input.Source == "" {
				input.Source = "reddit"
			}
			if input.Medium == "" {
				input.Medium = "cpc"
			}
			if input.ContentFormat == "" {
				input.ContentFormat = "image"
			}
			if input.Version <= 0 {
				input.Version = 1
			}
			return campaign.NewUTMLink(landingPageURL, input.Condition, input.Angle,
				input.Source, input.Medium, input.ContentFormat, input.Version), nil
		},
	)
}
