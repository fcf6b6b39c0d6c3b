package domain

// Intent is the classified category of a single caller utterance in one
// dialogue turn. Exactly one intent is produced per webhook request.
type Intent string

const (
	// IntentSilence means no input arrived: the call just connected.
	IntentSilence Intent = "silence"
	// IntentAffirmative means the caller confirmed interest.
	IntentAffirmative Intent = "affirmative_interest"
	// IntentAvailability means the caller stated when they are free.
	IntentAvailability Intent = "availability_statement"
	// IntentNegative means the caller declined.
	IntentNegative Intent = "negative_interest"
	// IntentUnclassified is everything the keyword rules cannot place.
	IntentUnclassified Intent = "unclassified"
)

// Utterance is the raw input of one turn as posted by the telephony
// provider. Digits and SpeechResult are alternatives; Digits wins when
// both are present.
type Utterance struct {
	SpeechResult string
	Digits       string
	From         string
}

// Input returns the caller input for classification: keypad digits if
// any, otherwise the transcribed speech.
func (u Utterance) Input() string {
	if u.Digits != "" {
		return u.Digits
	}
	return u.SpeechResult
}

// DialoguePrompt is an ordered sequence of spoken lines with a fixed
// pause between them. Purely presentational, no state.
type DialoguePrompt struct {
	Lines []string
	// PauseSeconds is the inter-line pause emitted between spoken lines.
	PauseSeconds int
}

// Empty reports whether the prompt carries nothing to speak.
func (p DialoguePrompt) Empty() bool {
	return len(p.Lines) == 0
}

// LeadRecord carries everything the sales-owner notification needs. It
// lives only for the duration of the notification attempt.
type LeadRecord struct {
	// CallerNumber is the untrusted external identifier; format varies
	// (E.164, with or without country prefixes or punctuation).
	CallerNumber string
	// Availability is the raw utterance text the caller gave when asked
	// for a meeting time.
	Availability string
	// Name is the display name resolved from the contact directory,
	// "Unknown Name" on a miss.
	Name string
}

// CallTurnOutcome is the directly observable result of one webhook turn.
type CallTurnOutcome struct {
	Body                  []byte
	NotificationTriggered bool
}
