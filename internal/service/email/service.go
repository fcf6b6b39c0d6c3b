package email

import (
	"bytes"
	"context"
	"fmt"
	"html/template"

	"go.uber.org/zap"

	"github.com/IROMIMPULSE15/SdC-Version-64/internal/domain"
	"github.com/IROMIMPULSE15/SdC-Version-64/internal/ports"
)

// Provider defines the interface for email providers.
type Provider interface {
	Send(ctx context.Context, to, subject, body string, isHTML bool) error
}

// Config holds email service configuration.
type Config struct {
	// Provider type: "sendgrid" or "smtp"
	Provider string

	FromEmail string
	FromName  string

	// SendGrid configuration
	SendGridAPIKey string

	// SMTP configuration (Mailhog or another relay in development)
	SMTPHost     string
	SMTPPort     int
	SMTPUsername string
	SMTPPassword string
	SMTPUseTLS   bool
}

// DefaultConfig returns a development configuration pointing at a local
// Mailhog relay.
func DefaultConfig() *Config {
	return &Config{
		Provider:  "smtp",
		FromEmail: "onboarding@sunrise-solar.dev",
		FromName:  "Solar AI",
		SMTPHost:  "localhost",
		SMTPPort:  1025,
	}
}

// Service sends the campaign's transactional mail.
type Service struct {
	config    *Config
	provider  Provider
	templates map[string]*template.Template
	log       *zap.Logger
}

var _ ports.EmailService = (*Service)(nil)

// NewService creates an email service for the configured provider.
func NewService(config *Config, log *zap.Logger) (*Service, error) {
	if config == nil {
		config = DefaultConfig()
	}

	s := &Service{
		config:    config,
		templates: make(map[string]*template.Template),
		log:       log,
	}

	switch config.Provider {
	case "sendgrid":
		if config.SendGridAPIKey == "" {
			return nil, fmt.Errorf("SendGrid API key is required")
		}
		s.provider = NewSendGridProvider(config.SendGridAPIKey, config.FromEmail, config.FromName)
	case "smtp":
		s.provider = NewSMTPProvider(
			config.SMTPHost,
			config.SMTPPort,
			config.SMTPUsername,
			config.SMTPPassword,
			config.FromEmail,
			config.FromName,
			config.SMTPUseTLS,
		)
	default:
		return nil, fmt.Errorf("unknown email provider: %s", config.Provider)
	}

	s.loadTemplates()

	return s, nil
}

func (s *Service) loadTemplates() {
	s.templates["lead_captured"] = template.Must(template.New("lead_captured").Parse(leadCapturedTemplate))
	s.templates["campaign_summary"] = template.Must(template.New("campaign_summary").Parse(campaignSummaryTemplate))
}

// SendHTML sends an HTML email.
func (s *Service) SendHTML(ctx context.Context, to, subject, htmlBody string) error {
	s.log.Info("Sending HTML email",
		zap.String("to", to),
		zap.String("subject", subject),
	)

	if err := s.provider.Send(ctx, to, subject, htmlBody, true); err != nil {
		s.log.Error("Failed to send HTML email",
			zap.String("to", to),
			zap.Error(err),
		)
		return fmt.Errorf("failed to send HTML email: %w", err)
	}

	return nil
}

// SendLeadCaptured reports a captured lead to the sales owner: resolved
// name, caller number and the availability the caller stated.
func (s *Service) SendLeadCaptured(ctx context.Context, to string, lead domain.LeadRecord) error {
	tmpl := s.templates["lead_captured"]

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, map[string]interface{}{
		"Name":   lead.Name,
		"Number": lead.CallerNumber,
		"Timing": lead.Availability,
	}); err != nil {
		return fmt.Errorf("failed to execute lead template: %w", err)
	}

	subject := fmt.Sprintf("Lead: %s - %s", lead.Name, lead.Availability)
	return s.SendHTML(ctx, to, subject, buf.String())
}

// SendCampaignSummary reports the outcome of a dialing run.
func (s *Service) SendCampaignSummary(ctx context.Context, to string, placed, failed int) error {
	tmpl := s.templates["campaign_summary"]

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, map[string]interface{}{
		"Placed": placed,
		"Failed": failed,
	}); err != nil {
		return fmt.Errorf("failed to execute summary template: %w", err)
	}

	return s.SendHTML(ctx, to, "Campaign run finished", buf.String())
}
