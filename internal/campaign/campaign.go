// Package campaign contains the pure marketing domain logic: pain-point
// messaging, campaign briefs, tracking URLs, copy analysis, and the
// campaign_config SQL builder. Nothing here touches the network or a
// database; callers wire the results into tools and CLI commands.
package campaign

import (
	"fmt"
	"math/rand/v2"
	"strings"
	"time"
)

// Messaging is the copy configuration for one pain-point angle.
type Messaging struct {
	Headline  string
	Tone      string
	AngleName string
}

// painPoints maps pain-point angles to their messaging, sourced from the
// knowledge base. Unknown angles fall back to "fatigue".
var painPoints = map[string]Messaging{
	"fatigue": {
		Headline:  "Track symptoms without draining your energy",
		Tone:      "Empathetic, energy-conscious",
		AngleName: "Track Without Effort",
	},
	"pain": {
		Headline:  "Track symptoms without draining your energy",
		Tone:      "Validating, supportive",
		AngleName: "Pain Pattern Tracking",
	},
	"memory": {
		Headline:  "Never forget a symptom again",
		Tone:      "Reassuring, helpful",
		AngleName: "Memory Support",
	},
	"doctor": {
		Headline:  "Give your doctor data they can't dismiss",
		Tone:      "Empowering, evidence-focused",
		AngleName: "Doctor-Ready Evidence",
	},
	"flare": {
		Headline:  "Log the flare without explaining your whole life",
		Tone:      "Understanding, minimal",
		AngleName: "Flare Mode",
	},
}

// conditionChannels maps target conditions to suggested communities.
// Unknown conditions fall back to "chronic".
var conditionChannels = map[string][]string{
	"endo":      {"r/endometriosis", "r/Endo", "Instagram #EndoWarrior"},
	"pcos":      {"r/PCOS", "Instagram #PCOSAwareness"},
	"longcovid": {"r/covidlonghaulers", "r/LongCovid"},
	"fibro":     {"r/Fibromyalgia", "r/ChronicPain"},
	"chronic":   {"r/ChronicIllness", "r/Spoonie"},
}

// MessagingFor returns the messaging for an angle, falling back to the
// fatigue angle when the angle is unknown.
func MessagingFor(angle string) Messaging {
	if m, ok := painPoints[angle]; ok {
		return m
	}
	return painPoints["fatigue"]
}

// ChannelsFor returns the suggested channels for a condition, falling back
// to the generic chronic-illness communities when the condition is unknown.
func ChannelsFor(condition string) []string {
	if ch, ok := conditionChannels[condition]; ok {
		return ch
	}
	return conditionChannels["chronic"]
}

// Artifact is a structured campaign brief, complete enough to be logged
// to knowledge/campaigns/ and executed as-is.
type Artifact struct {
	CampaignID   string `json:"campaign_id"`
	CampaignName string `json:"campaign_name"`
	Condition    string `json:"condition"`
	Angle        string `json:"angle"`

	TargetAudience string `json:"target_audience"`
	Tone           string `json:"tone"`

	HeroHeadline string `json:"hero_headline"`
	HeroSubhead  string `json:"hero_subhead"`
	PrimaryCTA   string `json:"primary_cta"`
	SecondaryCTA string `json:"secondary_cta"`

	UTMURL string `json:"utm_url"`

	ImagePrompt string `json:"image_prompt"`

	SuggestedChannels []string `json:"suggested_channels"`

	CreatedAt string `json:"created_at"`
}

// Brief is the result of creating a campaign: the artifact plus the
// operator checklist.
type Brief struct {
	Status    string   `json:"status"`
	Campaign  Artifact `json:"campaign"`
	NextSteps []string `json:"next_steps"`
}

const (
	heroSubhead  = "20-second check-ins, flare mode on bad days, and a history that works when brain fog hits."
	primaryCTA   = "Start a 20-second check-in"
	secondaryCTA = "Meet your assistant"
)

// NewBrief assembles a campaign brief for a condition and pain-point angle.
// Inputs are normalized to lowercase; unknown conditions and angles fall
// back to the generic defaults rather than failing.
func NewBrief(landingPageURL, condition, angle string, version int) Brief {
	condition = strings.ToLower(strings.TrimSpace(condition))
	angle = strings.ToLower(strings.TrimSpace(angle))

	msg := MessagingFor(angle)
	name := fmt.Sprintf("%s_%s_v%d", condition, angle, version)

	utmURL := TrackingURL(landingPageURL+"/", fmt.Sprintf("%s_%s", condition, angle),
		fmt.Sprintf("image_v%d", version), "reddit", "cpc")

	artifact := Artifact{
		CampaignID:        fmt.Sprintf("camp_%d", rand.IntN(90000)+10000),
		CampaignName:      name,
		Condition:         condition,
		Angle:             angle,
		TargetAudience:    fmt.Sprintf("People managing %s who struggle with %s", strings.ToUpper(condition), angle),
		Tone:              msg.Tone,
		HeroHeadline:      msg.Headline,
		HeroSubhead:       heroSubhead,
		PrimaryCTA:        primaryCTA,
		SecondaryCTA:      secondaryCTA,
		UTMURL:            utmURL,
		ImagePrompt:       briefImagePrompt(angle),
		SuggestedChannels: ChannelsFor(condition),
		CreatedAt:         time.Now().Format(time.RFC3339),
	}

	return Brief{
		Status:   "success",
		Campaign: artifact,
		NextSteps: []string{
			fmt.Sprintf("1. Review the copy and adjust for %s specifics", condition),
			"2. Generate image using the image_prompt with generate_image tool",
			fmt.Sprintf("3. Log campaign to knowledge/campaigns/%s.md", name),
			"4. Update knowledge/campaigns/index.md registry",
		},
	}
}

// briefImagePrompt renders the brand-guideline hero image prompt for an angle.
func briefImagePrompt(angle string) string {
	return fmt.Sprintf(`Vertical and horizontal versions of a modern, calming mobile-app hero image for a chat-first symptom tracker.

Scene: Abstract representation of %s relief and support. Soft, organic shapes suggesting calm and control.

Visual style: warm cream background (#FDFBF9), soft purple (#D0BDF4) + peach (#E8974F) accents, minimal gradients, gentle shadows, premium fintech-like clarity.

No text in image. No medical imagery, no hospitals, no stock-photo look.

Ultra clean, product-marketing aesthetic, high resolution.
`, angle)
}
