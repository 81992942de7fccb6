package campaign

import (
	"strings"
	"testing"
)

func TestTrackingURL_FixedParameterOrder(t *testing.T) {
	got := TrackingURL("https://chroniclife.app/spoon-saver", "spoon_saver_v1", "chat_not_forms", "reddit", "paid")
	want := "https://chroniclife.app/spoon-saver?utm_source=reddit&utm_medium=paid&utm_campaign=spoon_saver_v1&utm_content=chat_not_forms"
	if got != want {
		t.Errorf("TrackingURL() = %q, want %q", got, want)
	}
}

func TestTrackingURL_EscapesValues(t *testing.T) {
	got := TrackingURL("https://chroniclife.app/x", "spring sale", "a&b", "reddit", "paid")
	if !strings.Contains(got, "utm_campaign=spring+sale") {
		t.Errorf("space not escaped: %q", got)
	}
	if !strings.Contains(got, "utm_content=a%26b") {
		t.Errorf("ampersand not escaped: %q", got)
	}
}

func TestNewUTMLink_NormalizesAndNames(t *testing.T) {
	link := NewUTMLink("https://chronic-life-landing.vercel.app", "PCOS", "Fatigue", "reddit", "cpc", "image", 2)

	if !strings.Contains(link.URL, "utm_campaign=pcos_fatigue&utm_content=image_v2") {
		t.Errorf("URL = %q, want utm_campaign=pcos_fatigue&utm_content=image_v2", link.URL)
	}
	if link.Parameters.Campaign != "pcos_fatigue" {
		t.Errorf("campaign = %q", link.Parameters.Campaign)
	}
	if link.Parameters.Content != "image_v2" {
		t.Errorf("content = %q", link.Parameters.Content)
	}
	if link.Tracking.Condition != "pcos" || link.Tracking.Angle != "fatigue" {
		t.Errorf("tracking = %+v", link.Tracking)
	}
	if link.Status != "success" {
		t.Errorf("status = %q", link.Status)
	}
}

func TestNewUTMLink_ParameterOrderStable(t *testing.T) {
	link := NewUTMLink("https://chronic-life-landing.vercel.app", "endo", "pain", "facebook", "social", "video", 1)
	want := "https://chronic-life-landing.vercel.app?utm_source=facebook&utm_medium=social&utm_campaign=endo_pain&utm_content=video_v1"
	if link.URL != want {
		t.Errorf("URL = %q, want %q", link.URL, want)
	}
}
