package campaign

import (
	"fmt"
	"net/url"
	"strings"
)

// TrackingURL builds a UTM-tagged URL. Parameter order is fixed
// (source, medium, campaign, content) so generated URLs are stable across
// runs; url.Values would sort the keys alphabetically.
func TrackingURL(baseURL, campaign, contentID, source, medium string) string {
	var b strings.Builder
	b.WriteString(baseURL)
	b.WriteString("?utm_source=")
	b.WriteString(url.QueryEscape(source))
	b.WriteString("&utm_medium=")
	b.WriteString(url.QueryEscape(medium))
	b.WriteString("&utm_campaign=")
	b.WriteString(url.QueryEscape(campaign))
	b.WriteString("&utm_content=")
	b.WriteString(url.QueryEscape(contentID))
	return b.String()
}

// UTMParams is the breakdown of a generated UTM URL.
type UTMParams struct {
	Source   string `json:"utm_source"`
	Medium   string `json:"utm_medium"`
	Campaign string `json:"utm_campaign"`
	Content  string `json:"utm_content"`
}

// UTMLink is the result of generating a conventions-following UTM URL.
type UTMLink struct {
	Status     string    `json:"status"`
	URL        string    `json:"url"`
	Parameters UTMParams `json:"parameters"`
	Tracking   struct {
		Condition string `json:"condition"`
		Angle     string `json:"angle"`
		Format    string `json:"format"`
		Version   int    `json:"version"`
	} `json:"tracking_info"`
}

// NewUTMLink generates a UTM URL following the Chronic Life naming
// conventions: utm_campaign is {condition}_{angle} and utm_content is
// {format}_v{version}. All identifier inputs are normalized to lowercase.
func NewUTMLink(baseURL, condition, angle, source, medium, contentFormat string, version int) UTMLink {
	condition = strings.ToLower(strings.TrimSpace(condition))
	angle = strings.ToLower(strings.TrimSpace(angle))
	source = strings.ToLower(strings.TrimSpace(source))
	medium = strings.ToLower(strings.TrimSpace(medium))
	contentFormat = strings.ToLower(strings.TrimSpace(contentFormat))

	campaignName := fmt.Sprintf("%s_%s", condition, angle)
	content := fmt.Sprintf("%s_v%d", contentFormat, version)

	link := UTMLink{
		Status: "success",
		URL:    TrackingURL(baseURL, campaignName, content, source, medium),
		Parameters: UTMParams{
			Source:   source,
			Medium:   medium,
			Campaign: campaignName,
			Content:  content,
		},
	}
	link.Tracking.Condition = condition
	link.Tracking.Angle = angle
	link.Tracking.Format = contentFormat
	link.Tracking.Version = version
	return link
}
