package dialogue

import (
	"strings"

	"github.com/IROMIMPULSE15/SdC-Version-64/internal/domain"
)

// DefaultTimeKeywords are the time-of-day and relative-day markers that
// classify an utterance as an availability statement.
var DefaultTimeKeywords = []string{
	"morning", "afternoon", "evening", "today", "tomorrow",
	"at", "pm", "am", "oclock",
}

// Classifier maps a raw caller utterance to an intent using substring
// matching. Matching is deliberately substring-based rather than
// token-based to tolerate speech-to-text noise; the known cost is false
// positives such as "noon" containing "no".
type Classifier struct {
	timeKeywords []string
}

// NewClassifier creates a classifier with the given time-reference
// keyword set. An empty set falls back to DefaultTimeKeywords.
func NewClassifier(timeKeywords []string) *Classifier {
	if len(timeKeywords) == 0 {
		timeKeywords = DefaultTimeKeywords
	}
	return &Classifier{timeKeywords: timeKeywords}
}

// Classify produces exactly one intent for the given input. The check
// order is fixed: interest confirmation wins over availability, and
// availability wins over refusal, so "yes, tomorrow maybe" confirms
// interest and "tomorrow morning, no problem" states availability.
func (c *Classifier) Classify(input string) domain.Intent {
	text := strings.ToLower(strings.TrimSpace(input))
	if text == "" {
		return domain.IntentSilence
	}
	if strings.Contains(text, "yes") {
		return domain.IntentAffirmative
	}
	for _, kw := range c.timeKeywords {
		if strings.Contains(text, kw) {
			return domain.IntentAvailability
		}
	}
	if strings.Contains(text, "no") {
		return domain.IntentNegative
	}
	return domain.IntentUnclassified
}
