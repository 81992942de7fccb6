package campaign

import (
	"strconv"
	"strings"
	"testing"
)

const landingURL = "https://chronic-life-landing.vercel.app"

func TestNewBrief(t *testing.T) {
	brief := NewBrief(landingURL, "endo", "doctor", 1)

	if brief.Status != "success" {
		t.Fatalf("status = %q", brief.Status)
	}

	c := brief.Campaign
	if c.CampaignName != "endo_doctor_v1" {
		t.Errorf("campaign name = %q, want endo_doctor_v1", c.CampaignName)
	}
	if c.HeroHeadline != "Give your doctor data they can't dismiss" {
		t.Errorf("headline = %q", c.HeroHeadline)
	}
	if c.Tone != "Empowering, evidence-focused" {
		t.Errorf("tone = %q", c.Tone)
	}
	if c.PrimaryCTA != "Start a 20-second check-in" {
		t.Errorf("primary cta = %q", c.PrimaryCTA)
	}
	if c.SecondaryCTA != "Meet your assistant" {
		t.Errorf("secondary cta = %q", c.SecondaryCTA)
	}

	wantURL := landingURL + "/?utm_source=reddit&utm_medium=cpc&utm_campaign=endo_doctor&utm_content=image_v1"
	if c.UTMURL != wantURL {
		t.Errorf("utm url = %q, want %q", c.UTMURL, wantURL)
	}

	if len(c.SuggestedChannels) == 0 || c.SuggestedChannels[0] != "r/endometriosis" {
		t.Errorf("channels = %v", c.SuggestedChannels)
	}
	if !strings.Contains(c.ImagePrompt, "doctor relief and support") {
		t.Errorf("image prompt missing angle: %q", c.ImagePrompt)
	}
	if len(brief.NextSteps) != 4 {
		t.Errorf("next steps = %v", brief.NextSteps)
	}
}

func TestNewBrief_UnknownInputsFallBack(t *testing.T) {
	brief := NewBrief(landingURL, "unknown_condition", "unknown_angle", 1)

	c := brief.Campaign
	// unknown angle falls back to the fatigue messaging bucket
	if c.HeroHeadline != "Track symptoms without draining your energy" {
		t.Errorf("headline = %q, want fatigue fallback", c.HeroHeadline)
	}
	// unknown condition falls back to the chronic channel list
	want := []string{"r/ChronicIllness", "r/Spoonie"}
	if len(c.SuggestedChannels) != len(want) {
		t.Fatalf("channels = %v, want %v", c.SuggestedChannels, want)
	}
	for i := range want {
		if c.SuggestedChannels[i] != want[i] {
			t.Errorf("channels[%d] = %q, want %q", i, c.SuggestedChannels[i], want[i])
		}
	}
}

func TestNewBrief_NormalizesInputs(t *testing.T) {
	brief := NewBrief(landingURL, "  PCOS ", " Fatigue ", 2)

	if brief.Campaign.CampaignName != "pcos_fatigue_v2" {
		t.Errorf("campaign name = %q", brief.Campaign.CampaignName)
	}
	if !strings.Contains(brief.Campaign.UTMURL, "utm_campaign=pcos_fatigue&utm_content=image_v2") {
		t.Errorf("utm url = %q", brief.Campaign.UTMURL)
	}
}

func TestNewBrief_CampaignIDRange(t *testing.T) {
	for range 50 {
		brief := NewBrief(landingURL, "fibro", "flare", 1)
		id := brief.Campaign.CampaignID
		if !strings.HasPrefix(id, "camp_") {
			t.Fatalf("id = %q, want camp_ prefix", id)
		}
		n, err := strconv.Atoi(strings.TrimPrefix(id, "camp_"))
		if err != nil {
			t.Fatalf("id = %q: %v", id, err)
		}
		if n < 10000 || n > 99999 {
			t.Fatalf("id out of range: %d", n)
		}
	}
}

func TestAdDefaults(t *testing.T) {
	ad := Ad{
		Campaign:  "spoon_saver_v1",
		Headline:  "Too tired to track symptoms? Same.",
		Product:   "spoon-saver",
		ContentID: "chat_not_forms",
	}
	if err := ad.Validate(); err != nil {
		t.Fatalf("Validate() = %v", err)
	}
	ad.Normalize()

	if ad.BaseURL != "https://chroniclife.app/spoon-saver" {
		t.Errorf("base url = %q", ad.BaseURL)
	}
	if ad.Description != DefaultAdDescription || ad.CTA != DefaultAdCTA {
		t.Errorf("defaults not applied: %+v", ad)
	}
	if ad.DisplayOrder != 20 {
		t.Errorf("display order = %d, want 20", ad.DisplayOrder)
	}

	wantURL := "https://chroniclife.app/spoon-saver?utm_source=reddit&utm_medium=paid&utm_campaign=spoon_saver_v1&utm_content=chat_not_forms"
	if got := ad.TrackingURL(); got != wantURL {
		t.Errorf("tracking url = %q, want %q", got, wantURL)
	}
}

func TestAdValidate_MissingFields(t *testing.T) {
	tests := []struct {
		name string
		ad   Ad
	}{
		{"missing campaign", Ad{Headline: "h", Product: "p", ContentID: "c"}},
		{"missing headline", Ad{Campaign: "x", Product: "p", ContentID: "c"}},
		{"missing product", Ad{Campaign: "x", Headline: "h", ContentID: "c"}},
		{"missing content id", Ad{Campaign: "x", Headline: "h", Product: "p"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := tt.ad.Validate(); err == nil {
				t.Error("expected validation error")
			}
		})
	}
}

func TestAdInsertSQL(t *testing.T) {
	ad := Ad{
		Campaign:  "spoon_saver_v1",
		Headline:  "It's flare season. We get it.",
		Product:   "spoon-saver",
		ContentID: "chat_not_forms",
	}
	ad.Normalize()
	sql := ad.InsertSQL()

	if !strings.Contains(sql, "INSERT INTO campaign_config") {
		t.Error("missing INSERT statement")
	}
	// single quotes in the headline must be doubled
	if !strings.Contains(sql, "'It''s flare season. We get it.'") {
		t.Errorf("headline not escaped:\n%s", sql)
	}
	if !strings.Contains(sql, "'ad',") {
		t.Error("missing config_type")
	}
	if !strings.Contains(sql, "ARRAY['r/cfs', 'r/ChronicIllness'") {
		t.Error("missing target subreddits array")
	}
	if !strings.Contains(sql, "RETURNING id, config_key, config_data->>'headline' as headline;") {
		t.Error("missing RETURNING clause")
	}
	if !strings.Contains(sql, "'utm_campaign', 'spoon_saver_v1'") {
		t.Error("missing utm_campaign in config_data")
	}
}
