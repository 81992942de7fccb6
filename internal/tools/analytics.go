package tools

import (
	"fmt"
	"math/rand/v2"

	"github.com/firebase/genkit/go/ai"
	"github.com/firebase/genkit/go/genkit"
)

// AdStats is one ad's performance snapshot.
type AdStats struct {
	AdID        string  `json:"ad_id"`
	Impressions int     `json:"impressions"`
	Clicks      int     `json:"clicks"`
	Conversions int     `json:"conversions"`
	Spend       float64 `json:"spend"`
	CTR         float64 `json:"ctr"`
	CPC         float64 `json:"cpc"`
}

func registerAnalyticsTools(g *genkit.Genkit) {
	genkit.DefineTool(
		g,
		"get_ad_performance",
		"Retrieve performance metrics for ads on a platform (reddit or twitter). "+
			"Returns impressions, clicks, conversions, spend, CTR, and CPC per ad. "+
			"Data is synthetic until the ad accounts are connected.",
		func(ctx *ai.ToolContext, input struct {
			Platform string `json:"platform" jsonschema_description:"Ad platform to query: reddit or twitter"`
		},
		) ([]AdStats, error) {
			return syntheticAdStats(input.Platform), nil
		},
	)
}

// syntheticAdStats generates plausible placeholder metrics. Ranges follow
// small-budget Reddit ad campaigns.
func syntheticAdStats(platform string) []AdStats {
	stats := make([]AdStats, 0, 5)
	for i := range 5 {
		s := AdStats{
			AdID:        fmt.Sprintf("ad_%s_%d", platform, i),
			Impressions: rand.IntN(49001) + 1000,
			Clicks:      rand.IntN(1951) + 50,
			Conversions: rand.IntN(50) + 1,
			Spend:       float64(rand.IntN(45001)+5000) / 100,
		}
		s.CTR = float64(s.Clicks) / float64(s.Impressions)
		s.CPC = s.Spend / float64(s.Clicks)
		stats = append(stats, s)
	}
	return stats
}
