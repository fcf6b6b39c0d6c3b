package email

import (
	"context"
	"errors"
	"html/template"
	"strings"
	"testing"

	"go.uber.org/zap"

	"github.com/IROMIMPULSE15/SdC-Version-64/internal/domain"
)

// MockProvider is a mock email provider for testing
type MockProvider struct {
	SentEmails []MockEmail
	ShouldFail bool
	FailError  error
}

type MockEmail struct {
	To      string
	Subject string
	Body    string
	IsHTML  bool
}

func (m *MockProvider) Send(ctx context.Context, to, subject, body string, isHTML bool) error {
	if m.ShouldFail {
		if m.FailError != nil {
			return m.FailError
		}
		return errors.New("mock send failed")
	}

	m.SentEmails = append(m.SentEmails, MockEmail{
		To:      to,
		Subject: subject,
		Body:    body,
		IsHTML:  isHTML,
	})
	return nil
}

func newTestLogger() *zap.Logger {
	logger, _ := zap.NewDevelopment()
	return logger
}

func newTestService(provider *MockProvider) *Service {
	s := &Service{
		config: &Config{
			Provider:  "mock",
			FromEmail: "test@sunrise-solar.dev",
			FromName:  "Solar AI Test",
		},
		provider:  provider,
		templates: make(map[string]*template.Template),
		log:       newTestLogger(),
	}
	s.loadTemplates()
	return s
}

func TestService_SendHTML_Success(t *testing.T) {
	// Arrange
	mockProvider := &MockProvider{}
	service := newTestService(mockProvider)

	htmlBody := "<h1>Hello</h1>"

	// Act
	err := service.SendHTML(context.Background(), "owner@example.com", "HTML Subject", htmlBody)

	// Assert
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if len(mockProvider.SentEmails) != 1 {
		t.Fatalf("expected 1 email sent, got %d", len(mockProvider.SentEmails))
	}
	email := mockProvider.SentEmails[0]
	if !email.IsHTML {
		t.Error("expected HTML email, got plain text")
	}
	if email.Body != htmlBody {
		t.Errorf("expected body '%s', got '%s'", htmlBody, email.Body)
	}
}

func TestService_SendHTML_Failure(t *testing.T) {
	// Arrange
	mockProvider := &MockProvider{
		ShouldFail: true,
		FailError:  errors.New("SMTP connection failed"),
	}
	service := newTestService(mockProvider)

	// Act
	err := service.SendHTML(context.Background(), "owner@example.com", "Subject", "Body")

	// Assert
	if err == nil {
		t.Fatal("expected error, got nil")
	}
	if !strings.Contains(err.Error(), "SMTP connection failed") {
		t.Errorf("expected error to contain 'SMTP connection failed', got '%s'", err.Error())
	}
}

func TestService_SendLeadCaptured_Success(t *testing.T) {
	// Arrange
	mockProvider := &MockProvider{}
	service := newTestService(mockProvider)

	lead := domain.LeadRecord{
		CallerNumber: "+918055118954",
		Availability: "i am free tomorrow at 10 am",
		Name:         "Ravi",
	}

	// Act
	err := service.SendLeadCaptured(context.Background(), "owner@example.com", lead)

	// Assert
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if len(mockProvider.SentEmails) != 1 {
		t.Fatalf("expected 1 email sent, got %d", len(mockProvider.SentEmails))
	}
	email := mockProvider.SentEmails[0]
	if email.To != "owner@example.com" {
		t.Errorf("expected to 'owner@example.com', got '%s'", email.To)
	}
	if email.Subject != "Lead: Ravi - i am free tomorrow at 10 am" {
		t.Errorf("unexpected subject '%s'", email.Subject)
	}
	if !email.IsHTML {
		t.Error("lead notification should be HTML")
	}
	for _, want := range []string{"Ravi", "+918055118954", "i am free tomorrow at 10 am", "Interest Confirmed"} {
		if !strings.Contains(email.Body, want) {
			t.Errorf("expected body to contain %q", want)
		}
	}
}

func TestService_SendCampaignSummary_Success(t *testing.T) {
	// Arrange
	mockProvider := &MockProvider{}
	service := newTestService(mockProvider)

	// Act
	err := service.SendCampaignSummary(context.Background(), "owner@example.com", 12, 3)

	// Assert
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if len(mockProvider.SentEmails) != 1 {
		t.Fatalf("expected 1 email sent, got %d", len(mockProvider.SentEmails))
	}
	body := mockProvider.SentEmails[0].Body
	if !strings.Contains(body, "12") || !strings.Contains(body, "3") {
		t.Error("expected body to contain placed and failed counts")
	}
}

func TestNewService_SendGridProvider(t *testing.T) {
	// Arrange
	config := &Config{
		Provider:       "sendgrid",
		SendGridAPIKey: "test-api-key",
		FromEmail:      "test@example.com",
		FromName:       "Test",
	}

	// Act
	service, err := NewService(config, newTestLogger())

	// Assert
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if _, ok := service.provider.(*SendGridProvider); !ok {
		t.Error("expected SendGridProvider")
	}
}

func TestNewService_SMTPProvider(t *testing.T) {
	// Arrange
	config := &Config{
		Provider:  "smtp",
		SMTPHost:  "localhost",
		SMTPPort:  1025,
		FromEmail: "test@example.com",
		FromName:  "Test",
	}

	// Act
	service, err := NewService(config, newTestLogger())

	// Assert
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if _, ok := service.provider.(*SMTPProvider); !ok {
		t.Error("expected SMTPProvider")
	}
}

func TestNewService_UnknownProvider(t *testing.T) {
	// Act
	_, err := NewService(&Config{Provider: "unknown"}, newTestLogger())

	// Assert
	if err == nil {
		t.Fatal("expected error, got nil")
	}
	if !strings.Contains(err.Error(), "unknown email provider") {
		t.Errorf("expected 'unknown email provider' error, got '%s'", err.Error())
	}
}

func TestNewService_SendGridMissingAPIKey(t *testing.T) {
	// Act
	_, err := NewService(&Config{Provider: "sendgrid"}, newTestLogger())

	// Assert
	if err == nil {
		t.Fatal("expected error, got nil")
	}
	if !strings.Contains(err.Error(), "API key is required") {
		t.Errorf("expected 'API key is required' error, got '%s'", err.Error())
	}
}

func TestDefaultConfig(t *testing.T) {
	config := DefaultConfig()

	if config.Provider != "smtp" {
		t.Errorf("expected provider 'smtp', got '%s'", config.Provider)
	}
	if config.SMTPPort != 1025 {
		t.Errorf("expected SMTP port 1025, got %d", config.SMTPPort)
	}
}
