package campaign

import (
	"strings"
	"unicode"
)

// Vocabulary lists for copy analysis, sourced from the brand voice
// guidelines for the Spoonie audience.
var (
	// empathyWords resonate with readers managing chronic conditions.
	empathyWords = []string{
		"understand", "support", "help", "together", "journey", "manage",
		"ease", "gentle", "care", "respect", "energy", "rest", "pace",
	}

	// actionWords signal a clear call-to-action.
	actionWords = []string{
		"try", "start", "discover", "join", "get", "begin", "track",
		"check", "see", "find", "learn", "explore",
	}

	// avoidWords flag toxic positivity and generic health-app speak.
	avoidWords = []string{
		"just", "simply", "easy", "quick fix", "cure", "heal",
		"control", "manage your health", "take charge", "positive",
		"comprehensive", "all-in-one", "platform",
	}
)

// CopyAnalysis scores a piece of marketing copy for Spoonie-friendliness.
// A score of 70 or above is considered Spoonie-friendly.
type CopyAnalysis struct {
	Status          string   `json:"status"`
	Copy            string   `json:"copy"`
	Score           int      `json:"score"`
	SpoonieFriendly bool     `json:"spoonie_friendly"`
	WordCount       int      `json:"word_count"`
	Feedback        []string `json:"feedback"`
	Suggestions     []string `json:"suggestions"`
	Verdict         string   `json:"verdict"`
}

// AnalyzeCopy scores marketing copy against the brand voice rules.
//
// Scoring starts at a baseline of 50 and applies:
//   - empathy words: +5 each, capped at +20
//   - any action word: +15
//   - each avoid-list hit: -10
//   - length: <=15 words +15, <=30 words +5, otherwise -10
//   - any digit: +10
//
// The final score is clamped to [0, 100].
func AnalyzeCopy(text string) CopyAnalysis {
	lower := strings.ToLower(text)
	wordCount := len(strings.Fields(text))

	score := 50
	var feedback, suggestions []string

	empathyFound := matchWords(lower, empathyWords)
	if len(empathyFound) > 0 {
		score += min(20, len(empathyFound)*5)
		feedback = append(feedback, "✅ Good empathetic language: "+strings.Join(firstN(empathyFound, 3), ", "))
	} else {
		feedback = append(feedback, "⚠️ Missing empathetic language")
		suggestions = append(suggestions, "Add words like 'understand', 'support', or 'gentle'")
	}

	actionFound := matchWords(lower, actionWords)
	if len(actionFound) > 0 {
		score += 15
		feedback = append(feedback, "✅ Clear call-to-action: "+strings.Join(firstN(actionFound, 2), ", "))
	} else {
		feedback = append(feedback, "⚠️ No clear call-to-action")
		suggestions = append(suggestions, "Add action verbs like 'start', 'try', or 'discover'")
	}

	avoidFound := matchWords(lower, avoidWords)
	if len(avoidFound) > 0 {
		score -= len(avoidFound) * 10
		feedback = append(feedback, "❌ Avoid these words: "+strings.Join(avoidFound, ", "))
		suggestions = append(suggestions, "Replace generic health-app speak with specific benefits")
	}

	// Spoonies have limited energy for reading
	switch {
	case wordCount <= 15:
		score += 15
		feedback = append(feedback, "✅ Concise - good for low-energy readers")
	case wordCount <= 30:
		score += 5
		feedback = append(feedback, "⚠️ Moderate length - consider shortening")
	default:
		score -= 10
		feedback = append(feedback, "❌ Too long for Spoonie audience")
		suggestions = append(suggestions, "Aim for under 15 words for headlines, under 30 for body")
	}

	if strings.ContainsFunc(text, unicode.IsDigit) {
		score += 10
		feedback = append(feedback, "✅ Specific with numbers")
	} else {
		suggestions = append(suggestions, "Add specificity: '20 seconds', '30-second', etc.")
	}

	score = max(0, min(100, score))

	return CopyAnalysis{
		Status:          "success",
		Copy:            text,
		Score:           score,
		SpoonieFriendly: score >= 70,
		WordCount:       wordCount,
		Feedback:        feedback,
		Suggestions:     suggestions,
		Verdict:         verdict(score),
	}
}

func verdict(score int) string {
	switch {
	case score >= 80:
		return "Excellent! Ready to use."
	case score >= 70:
		return "Good, minor tweaks suggested."
	case score >= 50:
		return "Needs revision for Spoonie audience."
	default:
		return "Significant revision needed."
	}
}

// matchWords returns the vocabulary entries found as substrings of lower,
// preserving vocabulary order.
func matchWords(lower string, vocabulary []string) []string {
	var found []string
	for _, w := range vocabulary {
		if strings.Contains(lower, w) {
			found = append(found, w)
		}
	}
	return found
}

func firstN(words []string, n int) []string {
	if len(words) <= n {
		return words
	}
	return words[:n]
}
