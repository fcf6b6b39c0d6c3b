// Package telephony places outbound campaign calls through the
// telephony provider, naming this service's webhook as the callback
// target for every dialogue turn.
package telephony

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/IROMIMPULSE15/SdC-Version-64/internal/observability/telemetry"
	"github.com/IROMIMPULSE15/SdC-Version-64/internal/ports"
)

// ExotelDialer places calls via the Exotel REST API.
type ExotelDialer struct {
	sid        string
	token      string
	callerID   string
	webhookURL string
	baseURL    string
	httpClient *http.Client
	log        *zap.Logger
}

var _ ports.Dialer = (*ExotelDialer)(nil)

// ExotelConfig configures the Exotel dialer. BaseURL is overridable for
// tests; empty means the production API.
type ExotelConfig struct {
	SID        string
	Token      string
	CallerID   string
	WebhookURL string
	BaseURL    string
}

// NewExotelDialer creates a dialer for the Exotel connect API.
func NewExotelDialer(cfg ExotelConfig, log *zap.Logger) *ExotelDialer {
	baseURL := cfg.BaseURL
	if baseURL == "" {
		baseURL = "https://api.exotel.com"
	}
	return &ExotelDialer{
		sid:        cfg.SID,
		token:      cfg.Token,
		callerID:   cfg.CallerID,
		webhookURL: cfg.WebhookURL,
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: 30 * time.Second},
		log:        log,
	}
}

// PlaceCall asks Exotel to originate a call to the given number and
// drive the conversation against the configured webhook URL.
func (d *ExotelDialer) PlaceCall(ctx context.Context, to string) error {
	if d.sid == "" || d.token == "" {
		d.log.Warn("Exotel dialer not configured, skipping call", zap.String("to", to))
		return nil
	}

	apiURL := fmt.Sprintf("%s/v1/Accounts/%s/Calls/connect.json", d.baseURL, d.sid)

	data := url.Values{}
	data.Set("From", d.callerID)
	data.Set("To", to)
	data.Set("Url", d.webhookURL)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, apiURL, strings.NewReader(data.Encode()))
	if err != nil {
		return fmt.Errorf("exotel: create request: %w", err)
	}
	req.SetBasicAuth(d.sid, d.token)
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := d.httpClient.Do(req)
	if err != nil {
		telemetry.OutboundCallsTotal.WithLabelValues("exotel", "error").Inc()
		d.log.Error("Failed to place call", zap.String("to", to), zap.Error(err))
		return fmt.Errorf("exotel: send request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		var apiErr struct {
			RestException struct {
				Message string `json:"Message"`
				Status  int    `json:"Status"`
			} `json:"RestException"`
		}
		json.NewDecoder(resp.Body).Decode(&apiErr)
		telemetry.OutboundCallsTotal.WithLabelValues("exotel", "rejected").Inc()
		d.log.Error("Exotel API error",
			zap.Int("status", resp.StatusCode),
			zap.String("message", apiErr.RestException.Message),
		)
		return fmt.Errorf("exotel: api error %d: %s", resp.StatusCode, apiErr.RestException.Message)
	}

	telemetry.OutboundCallsTotal.WithLabelValues("exotel", "placed").Inc()
	d.log.Info("Call placed", zap.String("to", to), zap.Int("status", resp.StatusCode))
	return nil
}
