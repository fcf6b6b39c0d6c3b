package dialogue

import (
	"go.uber.org/zap"

	"github.com/IROMIMPULSE15/SdC-Version-64/internal/domain"
)

// Engine selects the next scripted prompt for a classified intent. It is
// stateless: the telephony provider does not echo prior turns back, so
// the selection is a direct mapping from the current turn's intent, not
// a transition from remembered state.
type Engine struct {
	log *zap.Logger
}

// NewEngine creates a dialogue transition engine.
func NewEngine(log *zap.Logger) *Engine {
	return &Engine{log: log}
}

const promptPauseSeconds = 1

var (
	greetingPrompt = domain.DialoguePrompt{
		Lines: []string{
			"Hello. I am calling on behalf of SunRise Solar Solutions.",
			"We specialize in solar installations for homes and private land.",
			"Are you interested in installing a solar setup on your land? Please say yes or no.",
		},
		PauseSeconds: promptPauseSeconds,
	}

	interestPrompt = domain.DialoguePrompt{
		Lines: []string{
			"That is great to hear.",
			"My owner will contact you personally.",
			"May I know what time you will be free after this call?",
		},
		PauseSeconds: promptPauseSeconds,
	}

	availabilityPrompt = domain.DialoguePrompt{
		Lines: []string{
			"Thank you. I have shared your availability. You will be contacted soon. Have a great day.",
		},
		PauseSeconds: promptPauseSeconds,
	}

	declinePrompt = domain.DialoguePrompt{
		Lines: []string{
			"No problem at all. Thank you for your time. Have a nice day.",
		},
		PauseSeconds: promptPauseSeconds,
	}
)

// NextTurn maps an intent to the prompt to speak and, for availability
// statements, the lead record to hand to the notification gate. The
// returned record carries the caller identifier; the caller of NextTurn
// fills in the raw availability text. Negative and availability intents
// are conversational terminals; further speech on the line simply lands
// in the unclassified branch and receives an empty prompt.
func (e *Engine) NextTurn(intent domain.Intent, callerID string) (domain.DialoguePrompt, *domain.LeadRecord) {
	switch intent {
	case domain.IntentSilence:
		return greetingPrompt, nil
	case domain.IntentAffirmative:
		return interestPrompt, nil
	case domain.IntentAvailability:
		e.log.Info("Availability captured, scheduling lead notification",
			zap.String("caller_id", callerID),
		)
		return availabilityPrompt, &domain.LeadRecord{CallerNumber: callerID}
	case domain.IntentNegative:
		return declinePrompt, nil
	default:
		// Unclassified: silent continuation, empty envelope.
		return domain.DialoguePrompt{}, nil
	}
}
