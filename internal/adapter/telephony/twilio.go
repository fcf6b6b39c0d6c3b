package telephony

import (
	"context"
	"fmt"

	"github.com/twilio/twilio-go"
	twilioapi "github.com/twilio/twilio-go/rest/api/v2010"
	"go.uber.org/zap"

	"github.com/IROMIMPULSE15/SdC-Version-64/internal/observability/telemetry"
	"github.com/IROMIMPULSE15/SdC-Version-64/internal/ports"
)

// TwilioDialer places calls via the Twilio SDK, for campaigns running
// on Twilio numbers instead of Exotel.
type TwilioDialer struct {
	client     *twilio.RestClient
	callerID   string
	webhookURL string
	log        *zap.Logger
}

var _ ports.Dialer = (*TwilioDialer)(nil)

// TwilioConfig configures the Twilio dialer.
type TwilioConfig struct {
	AccountSID string
	AuthToken  string
	CallerID   string
	WebhookURL string
}

// NewTwilioDialer creates a dialer backed by the Twilio REST client.
func NewTwilioDialer(cfg TwilioConfig, log *zap.Logger) *TwilioDialer {
	client := twilio.NewRestClientWithParams(twilio.ClientParams{
		Username: cfg.AccountSID,
		Password: cfg.AuthToken,
	})
	return &TwilioDialer{
		client:     client,
		callerID:   cfg.CallerID,
		webhookURL: cfg.WebhookURL,
		log:        log,
	}
}

// PlaceCall originates a Twilio call whose TwiML is fetched from the
// webhook URL on answer.
func (d *TwilioDialer) PlaceCall(ctx context.Context, to string) error {
	params := &twilioapi.CreateCallParams{}
	params.SetTo(to)
	params.SetFrom(d.callerID)
	params.SetUrl(d.webhookURL)
	params.SetMethod("POST")

	call, err := d.client.Api.CreateCall(params)
	if err != nil {
		telemetry.OutboundCallsTotal.WithLabelValues("twilio", "error").Inc()
		d.log.Error("Failed to place call", zap.String("to", to), zap.Error(err))
		return fmt.Errorf("twilio: create call: %w", err)
	}

	telemetry.OutboundCallsTotal.WithLabelValues("twilio", "placed").Inc()
	sid := ""
	if call.Sid != nil {
		sid = *call.Sid
	}
	d.log.Info("Call placed", zap.String("to", to), zap.String("call_sid", sid))
	return nil
}
