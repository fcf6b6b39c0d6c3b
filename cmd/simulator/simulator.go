package main

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"go.uber.org/zap"
)

// Simulator drives scripted conversations against the webhook.
type Simulator struct {
	webhookURL string
	turnDelay  time.Duration
	client     *http.Client
	log        *zap.Logger
}

// NewSimulator creates a simulator for the given webhook URL.
func NewSimulator(webhookURL string, turnDelay time.Duration, log *zap.Logger) *Simulator {
	return &Simulator{
		webhookURL: webhookURL,
		turnDelay:  turnDelay,
		client:     &http.Client{Timeout: 10 * time.Second},
		log:        log,
	}
}

// turn posts one form-encoded webhook request, the way the telephony
// provider delivers a dialogue turn.
func (s *Simulator) turn(ctx context.Context, speech, from string) (string, error) {
	form := url.Values{}
	if speech != "" {
		form.Set("SpeechResult", speech)
	}
	if from != "" {
		form.Set("From", from)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.webhookURL, strings.NewReader(form.Encode()))
	if err != nil {
		return "", fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := s.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("execute request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("read response: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("unexpected status %d: %s", resp.StatusCode, body)
	}
	return string(body), nil
}

type check struct {
	desc   string
	speech string
	from   string
	expect string
}

func (s *Simulator) run(ctx context.Context, name string, checks []check) int {
	s.log.Info("Running scenario", zap.String("scenario", name))

	failures := 0
	for i, c := range checks {
		if i > 0 {
			select {
			case <-time.After(s.turnDelay):
			case <-ctx.Done():
				s.log.Error("Scenario cancelled", zap.String("scenario", name))
				return failures + len(checks) - i
			}
		}

		body, err := s.turn(ctx, c.speech, c.from)
		if err != nil {
			s.log.Error("Turn failed", zap.String("step", c.desc), zap.Error(err))
			failures++
			continue
		}
		if !strings.Contains(body, c.expect) {
			s.log.Error("Unexpected response",
				zap.String("step", c.desc),
				zap.String("want_substring", c.expect),
				zap.String("body", body),
			)
			failures++
			continue
		}
		s.log.Info("Turn OK", zap.String("step", c.desc))
	}
	return failures
}

// RunLead walks the happy path: silence, interest, availability. The
// last turn should trigger exactly one lead email on the server side.
func (s *Simulator) RunLead(ctx context.Context) int {
	return s.run(ctx, "lead", []check{
		{desc: "call connects (greeting)", expect: "<Say>Hello"},
		{desc: "caller says yes", speech: "yes", expect: "My owner will contact"},
		{desc: "caller states availability", speech: "I am free tomorrow at 10 AM", from: "+918055118954", expect: "Thank you"},
	})
}

// RunDecline walks the refusal path: greeting, then a polite no.
func (s *Simulator) RunDecline(ctx context.Context) int {
	return s.run(ctx, "decline", []check{
		{desc: "call connects (greeting)", expect: "<Say>Hello"},
		{desc: "caller says no", speech: "no", from: "+919812345678", expect: "No problem"},
	})
}
