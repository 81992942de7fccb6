package cmd

import (
	"flag"
	"fmt"

	"github.com/chroniclife/marketing-studio/internal/campaign"
)

// runCampaignAd prints the campaign_config INSERT statement and tracking
// URL for a new ad. The SQL is printed rather than executed; the ad
// database is managed through its own console.
func runCampaignAd(args []string) error {
	fs := flag.NewFlagSet("campaign-ad", flag.ContinueOnError)
	var ad campaign.Ad
	fs.StringVar(&ad.Campaign, "campaign", "", "campaign name (utm_campaign)")
	fs.StringVar(&ad.Headline, "headline", "", "ad headline text")
	fs.StringVar(&ad.Product, "product", "", "product offering (e.g. spoon-saver, flare-forecast)")
	fs.StringVar(&ad.ContentID, "content-id", "", "unique content identifier (utm_content)")
	fs.StringVar(&ad.Description, "description", "", "ad description (default: the standard 20-second pitch)")
	fs.StringVar(&ad.CTA, "cta", "", "primary CTA text (default: "+campaign.DefaultAdCTA+")")
	fs.StringVar(&ad.BaseURL, "base-url", "", "base URL (default: https://chroniclife.app/{product})")
	fs.IntVar(&ad.DisplayOrder, "display-order", 0, "display order for sorting (default: 20)")
	if err := fs.Parse(args); err != nil {
		return err
	}

	ad.Normalize()
	if err := ad.Validate(); err != nil {
		return fmt.Errorf("campaign-ad: %w", err)
	}

	fmt.Println("-- SQL to create ad in Supabase:")
	fmt.Println("-- Run this query in the Supabase SQL editor:")
	fmt.Println()
	fmt.Println(ad.InsertSQL())
	fmt.Println()
	fmt.Println("-- Tracking URL for Reddit ad:")
	fmt.Println(ad.TrackingURL())
	fmt.Println()
	fmt.Printf("-- Campaign: %s\n", ad.Campaign)
	fmt.Printf("-- Content ID: %s\n", ad.ContentID)
	fmt.Printf("-- Product: %s\n", ad.Product)
	return nil
}
