package cmd

import (
	"errors"
	"flag"
	"fmt"

	"github.com/chroniclife/marketing-studio/internal/campaign"
)

// runTrackingURL prints a single UTM tracking URL for an existing
// campaign ad.
func runTrackingURL(args []string) error {
	fs := flag.NewFlagSet("tracking-url", flag.ContinueOnError)
	campaignName := fs.String("campaign", "", "campaign name (utm_campaign)")
	contentID := fs.String("content", "", "content identifier (utm_content)")
	product := fs.String("product", "", "product offering")
	source := fs.String("source", campaign.DefaultAdSource, "traffic source")
	medium := fs.String("medium", campaign.DefaultAdMedium, "traffic medium")
	baseURL := fs.String("base-url", "", "base URL (default: https://chroniclife.app/{product})")
	if err := fs.Parse(args); err != nil {
		return err
	}

	switch {
	case *campaignName == "":
		return errors.New("tracking-url: campaign is required")
	case *contentID == "":
		return errors.New("tracking-url: content is required")
	case *product == "" && *baseURL == "":
		return errors.New("tracking-url: product is required when base-url is not set")
	}

	base := *baseURL
	if base == "" {
		base = "https://chroniclife.app/" + *product
	}

	fmt.Println(campaign.TrackingURL(base, *campaignName, *contentID, *source, *medium))
	return nil
}
