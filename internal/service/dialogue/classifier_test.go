package dialogue

import (
	"testing"

	"github.com/IROMIMPULSE15/SdC-Version-64/internal/domain"
)

func TestClassifier_Classify_Priority(t *testing.T) {
	classifier := NewClassifier(nil)

	cases := []struct {
		name  string
		input string
		want  domain.Intent
	}{
		{"empty input", "", domain.IntentSilence},
		{"whitespace only", "   ", domain.IntentSilence},
		{"plain yes", "yes", domain.IntentAffirmative},
		{"yes embedded", "oh yes please", domain.IntentAffirmative},
		{"uppercase yes", "YES", domain.IntentAffirmative},
		{"yes wins over time words", "yes, tomorrow maybe", domain.IntentAffirmative},
		{"yes wins over no", "yes not now no", domain.IntentAffirmative},
		{"time word morning", "in the morning", domain.IntentAvailability},
		{"time word tomorrow", "call me tomorrow", domain.IntentAvailability},
		{"time wins over no", "tomorrow at noon, no problem", domain.IntentAvailability},
		{"full availability sentence", "i am free tomorrow at 10 am", domain.IntentAvailability},
		{"plain no", "no", domain.IntentNegative},
		{"no embedded", "no thanks", domain.IntentNegative},
		// Substring matching, not token matching: "noon" contains "no"
		// and lands in the negative branch when no time word co-occurs.
		{"noon alone is a substring false positive", "noon", domain.IntentNegative},
		{"unrelated speech", "who is this", domain.IntentUnclassified},
		{"keypad digits", "1234", domain.IntentUnclassified},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := classifier.Classify(tc.input)
			if got != tc.want {
				t.Errorf("Classify(%q) = %q, want %q", tc.input, got, tc.want)
			}
		})
	}
}

func TestClassifier_Classify_CustomKeywords(t *testing.T) {
	// Arrange: a keyword set without "at" so short words stop matching
	classifier := NewClassifier([]string{"morning", "evening"})

	// Act & Assert
	if got := classifier.Classify("saturday at nine"); got != domain.IntentUnclassified {
		t.Errorf("expected unclassified without 'at' keyword, got %q", got)
	}
	if got := classifier.Classify("in the evening"); got != domain.IntentAvailability {
		t.Errorf("expected availability for configured keyword, got %q", got)
	}
}

func TestClassifier_Classify_EmptyIsIdempotent(t *testing.T) {
	classifier := NewClassifier(nil)

	for i := 0; i < 5; i++ {
		if got := classifier.Classify(""); got != domain.IntentSilence {
			t.Fatalf("call %d: Classify(\"\") = %q, want silence", i, got)
		}
	}
}
