package campaign

import (
	"strings"
	"testing"
)

func TestAnalyzeCopy_SpoonieFriendlyCTA(t *testing.T) {
	result := AnalyzeCopy("Start a 20-second check-in")

	// baseline 50 + action "start" 15 + concise 15 + digit 10 = 90
	if result.Score < 70 {
		t.Errorf("score = %d, want >= 70", result.Score)
	}
	if !result.SpoonieFriendly {
		t.Error("expected copy to be spoonie friendly")
	}
	if result.Status != "success" {
		t.Errorf("status = %q, want success", result.Status)
	}
	if result.Verdict != "Excellent! Ready to use." {
		t.Errorf("verdict = %q", result.Verdict)
	}
}

func TestAnalyzeCopy_AvoidListPenalty(t *testing.T) {
	result := AnalyzeCopy("Just simply heal your pain, take charge of your comprehensive all-in-one platform today")

	// Every avoid-list hit costs 10; the pile-up must drag the score below
	// the 50 baseline despite the length bonus.
	if result.Score >= 50 {
		t.Errorf("score = %d, want < 50", result.Score)
	}
	if result.SpoonieFriendly {
		t.Error("expected copy not to be spoonie friendly")
	}

	var avoidFeedback string
	for _, f := range result.Feedback {
		if strings.HasPrefix(f, "❌ Avoid these words:") {
			avoidFeedback = f
		}
	}
	if avoidFeedback == "" {
		t.Fatalf("missing avoid-word feedback in %v", result.Feedback)
	}
	for _, w := range []string{"just", "simply", "heal", "take charge", "comprehensive", "all-in-one", "platform"} {
		if !strings.Contains(avoidFeedback, w) {
			t.Errorf("avoid feedback missing %q: %s", w, avoidFeedback)
		}
	}
}

func TestAnalyzeCopy_EmpathyCap(t *testing.T) {
	// Six empathy words present; the bonus caps at +20.
	result := AnalyzeCopy("We understand and support your journey with gentle care and respect")

	// 50 + 20 (capped empathy) + 5 (moderate length is 11 words -> concise +15)...
	// 11 words: concise +15. No action, no digits. 50+20+15 = 85.
	if result.Score != 85 {
		t.Errorf("score = %d, want 85", result.Score)
	}
}

func TestAnalyzeCopy_Clamp(t *testing.T) {
	long := strings.Repeat("just simply easy cure heal control positive comprehensive platform ", 3)
	result := AnalyzeCopy(long)
	if result.Score != 0 {
		t.Errorf("score = %d, want clamped to 0", result.Score)
	}
	if result.Verdict != "Significant revision needed." {
		t.Errorf("verdict = %q", result.Verdict)
	}
}

func TestAnalyzeCopy_WordCountBands(t *testing.T) {
	tests := []struct {
		name string
		text string
		want int
	}{
		// "track" is an action word: 50 + 15 + 15 (concise) = 80
		{"concise", "track your flares", 80},
		// neutral filler: 50 + 5 (moderate length) = 55
		{"moderate", strings.TrimSpace(strings.Repeat("word ", 20)), 55},
		// neutral filler: 50 - 10 (too long) = 40
		{"too long", strings.TrimSpace(strings.Repeat("word ", 31)), 40},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := AnalyzeCopy(tt.text)
			if result.Score != tt.want {
				t.Errorf("score = %d, want %d", result.Score, tt.want)
			}
		})
	}
}
