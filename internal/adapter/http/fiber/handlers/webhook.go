package handlers

import (
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/IROMIMPULSE15/SdC-Version-64/internal/adapter/exoml"
	"github.com/IROMIMPULSE15/SdC-Version-64/internal/domain"
	"github.com/IROMIMPULSE15/SdC-Version-64/internal/observability/telemetry"
	"github.com/IROMIMPULSE15/SdC-Version-64/internal/ports"
	"github.com/IROMIMPULSE15/SdC-Version-64/internal/service/dialogue"
)

// UnknownNumber is the caller identifier used when the provider omits
// the From field.
const UnknownNumber = "Unknown Number"

// WebhookHandler drives one dialogue turn per inbound webhook request.
type WebhookHandler struct {
	classifier *dialogue.Classifier
	engine     *dialogue.Engine
	gate       ports.LeadNotifier
	log        *zap.Logger
}

// NewWebhookHandler creates the telephony webhook handler.
func NewWebhookHandler(classifier *dialogue.Classifier, engine *dialogue.Engine, gate ports.LeadNotifier, log *zap.Logger) *WebhookHandler {
	return &WebhookHandler{
		classifier: classifier,
		engine:     engine,
		gate:       gate,
		log:        log,
	}
}

// HandleTurn processes one webhook POST: classify the utterance, pick
// the next prompt, fire the lead notification when availability was
// stated, and answer with the rendered markup. The response is always
// HTTP 200 with a parseable envelope; the provider aborts the live call
// on anything else, and nothing in turn processing is allowed to do
// that.
func (h *WebhookHandler) HandleTurn(c *fiber.Ctx) (err error) {
	start := time.Now()
	turnID := uuid.NewString()

	defer func() {
		if r := recover(); r != nil {
			h.log.Error("Turn processing fault",
				zap.String("turn_id", turnID),
				zap.Any("panic", r),
			)
			c.Set(fiber.HeaderContentType, exoml.ContentType)
			err = c.Status(fiber.StatusOK).Send(exoml.Render(domain.DialoguePrompt{}))
		}
		telemetry.TurnLatency.Observe(time.Since(start).Seconds())
	}()

	utt := domain.Utterance{
		Digits:       c.FormValue("Digits"),
		SpeechResult: c.FormValue("SpeechResult"),
		From:         c.FormValue("From"),
	}
	if utt.From == "" {
		utt.From = UnknownNumber
	}
	input := strings.ToLower(utt.Input())

	intent := h.classifier.Classify(input)
	telemetry.CallTurnsTotal.WithLabelValues(string(intent)).Inc()

	prompt, lead := h.engine.NextTurn(intent, utt.From)

	notified := false
	if lead != nil {
		lead.Availability = input
		if nerr := h.gate.Notify(c.UserContext(), *lead); nerr != nil {
			// The spoken confirmation still goes out; a backend fault
			// never reaches the caller.
			h.log.Warn("Lead notification not delivered",
				zap.String("turn_id", turnID),
				zap.Error(nerr),
			)
		} else {
			notified = true
		}
	}

	h.log.Info("Turn processed",
		zap.String("turn_id", turnID),
		zap.String("intent", string(intent)),
		zap.String("from", utt.From),
		zap.Bool("notification_triggered", notified),
	)

	c.Set(fiber.HeaderContentType, exoml.ContentType)
	return c.Status(fiber.StatusOK).Send(exoml.Render(prompt))
}
