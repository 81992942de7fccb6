package campaign

import (
	"fmt"
	"strings"
)

// Defaults for new campaign_config ads.
const (
	DefaultAdDescription = "Track symptoms without draining your energy. Log symptoms in 20 seconds, even on your worst days."
	DefaultAdCTA         = "Start a 20-second check-in"
	DefaultDisplayOrder  = 20

	// DefaultAdSource and DefaultAdMedium tag ad tracking URLs created by
	// the CLI scripts. The agent UTM tool defaults differ (reddit/cpc).
	DefaultAdSource = "reddit"
	DefaultAdMedium = "paid"
)

// defaultSubreddits is the standing target list for new ads.
var defaultSubreddits = []string{
	"r/cfs", "r/ChronicIllness", "r/Fibromyalgia", "r/LongCOVID",
	"r/spoonies", "r/endometriosis", "r/PCOS",
}

// Ad describes one entry in the campaign_config table.
type Ad struct {
	Campaign     string // campaign name (utm_campaign)
	Headline     string
	Product      string // product offering (e.g. spoon-saver, flare-forecast)
	ContentID    string // unique content identifier (utm_content)
	Description  string
	CTA          string
	BaseURL      string // defaults to https://chroniclife.app/{product}
	DisplayOrder int
}

// Normalize fills unset optional fields with their defaults.
func (a *Ad) Normalize() {
	if a.Description == "" {
		a.Description = DefaultAdDescription
	}
	if a.CTA == "" {
		a.CTA = DefaultAdCTA
	}
	if a.BaseURL == "" {
		a.BaseURL = "https://chroniclife.app/" + a.Product
	}
	if a.DisplayOrder == 0 {
		a.DisplayOrder = DefaultDisplayOrder
	}
}

// Validate checks the required fields.
func (a *Ad) Validate() error {
	switch {
	case a.Campaign == "":
		return fmt.Errorf("campaign is required")
	case a.Headline == "":
		return fmt.Errorf("headline is required")
	case a.Product == "":
		return fmt.Errorf("product is required")
	case a.ContentID == "":
		return fmt.Errorf("content id is required")
	}
	return nil
}

// TrackingURL returns the UTM-tagged landing page URL for this ad.
func (a *Ad) TrackingURL() string {
	return TrackingURL(a.BaseURL, a.Campaign, a.ContentID, DefaultAdSource, DefaultAdMedium)
}

// InsertSQL renders the INSERT statement for the campaign_config table.
// The statement is printed for the operator to run against the campaign
// database; single quotes in text fields are doubled.
func (a *Ad) InsertSQL() string {
	return fmt.Sprintf(`INSERT INTO campaign_config (
  config_type,
  config_key,
  product_offering,
  config_data,
  active,
  display_order
) VALUES (
  'ad',
  '%s',
  '%s',
  jsonb_build_object(
    'headline', '%s',
    'description', '%s',
    'primary_cta', '%s',
    'utm_content', '%s',
    'utm_campaign', '%s',
    'ad_group', '%s',
    'target_subreddits', ARRAY[%s]
  ),
  true,
  %d
)
RETURNING id, config_key, config_data->>'headline' as headline;`,
		a.ContentID,
		a.Product,
		quoteSQL(a.Headline),
		quoteSQL(a.Description),
		quoteSQL(a.CTA),
		a.ContentID,
		a.Campaign,
		a.Campaign,
		sqlStringArray(defaultSubreddits),
		a.DisplayOrder,
	)
}

// quoteSQL doubles single quotes for embedding in a SQL string literal.
func quoteSQL(s string) string {
	return strings.ReplaceAll(s, "'", "''")
}

func sqlStringArray(items []string) string {
	quoted := make([]string, len(items))
	for i, s := range items {
		quoted[i] = "'" + quoteSQL(s) + "'"
	}
	return strings.Join(quoted, ", ")
}
