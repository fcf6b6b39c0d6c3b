package telephony

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"go.uber.org/zap"
)

func newTestLogger() *zap.Logger {
	logger, _ := zap.NewDevelopment()
	return logger
}

func TestExotelDialer_PlaceCall_Success(t *testing.T) {
	// Arrange
	var gotPath, gotFrom, gotTo, gotURL string
	var gotUser, gotPass string
	var authOK bool

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotUser, gotPass, authOK = r.BasicAuth()
		r.ParseForm()
		gotFrom = r.PostFormValue("From")
		gotTo = r.PostFormValue("To")
		gotURL = r.PostFormValue("Url")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"Call": {"Sid": "CAabc123"}}`))
	}))
	defer server.Close()

	dialer := NewExotelDialer(ExotelConfig{
		SID:        "sunrise42",
		Token:      "secret-token",
		CallerID:   "+918066119000",
		WebhookURL: "https://ivr.sunrise-solar.dev/exotel-webhook",
		BaseURL:    server.URL,
	}, newTestLogger())

	// Act
	err := dialer.PlaceCall(context.Background(), "+918055118954")

	// Assert
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if gotPath != "/v1/Accounts/sunrise42/Calls/connect.json" {
		t.Errorf("unexpected API path '%s'", gotPath)
	}
	if !authOK || gotUser != "sunrise42" || gotPass != "secret-token" {
		t.Error("expected basic auth with account SID and token")
	}
	if gotFrom != "+918066119000" {
		t.Errorf("expected From '+918066119000', got '%s'", gotFrom)
	}
	if gotTo != "+918055118954" {
		t.Errorf("expected To '+918055118954', got '%s'", gotTo)
	}
	if gotURL != "https://ivr.sunrise-solar.dev/exotel-webhook" {
		t.Errorf("expected webhook callback URL, got '%s'", gotURL)
	}
}

func TestExotelDialer_PlaceCall_APIError(t *testing.T) {
	// Arrange
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
		w.Write([]byte(`{"RestException": {"Message": "Insufficient balance", "Status": 403}}`))
	}))
	defer server.Close()

	dialer := NewExotelDialer(ExotelConfig{
		SID:        "sunrise42",
		Token:      "secret-token",
		CallerID:   "+918066119000",
		WebhookURL: "https://ivr.sunrise-solar.dev/exotel-webhook",
		BaseURL:    server.URL,
	}, newTestLogger())

	// Act
	err := dialer.PlaceCall(context.Background(), "+918055118954")

	// Assert
	if err == nil {
		t.Fatal("expected error, got nil")
	}
	want := "exotel: api error 403: Insufficient balance"
	if err.Error() != want {
		t.Errorf("expected '%s', got '%s'", want, err.Error())
	}
}

func TestExotelDialer_PlaceCall_Unconfigured(t *testing.T) {
	// Arrange: no credentials, e.g. a local development run.
	dialer := NewExotelDialer(ExotelConfig{}, newTestLogger())

	// Act
	err := dialer.PlaceCall(context.Background(), "+918055118954")

	// Assert: skipped, not failed.
	if err != nil {
		t.Fatalf("expected no error for unconfigured dialer, got %v", err)
	}
}

func TestExotelDialer_PlaceCall_ContextCancelled(t *testing.T) {
	// Arrange
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	dialer := NewExotelDialer(ExotelConfig{
		SID:     "sunrise42",
		Token:   "secret-token",
		BaseURL: server.URL,
	}, newTestLogger())

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	// Act
	err := dialer.PlaceCall(ctx, "+918055118954")

	// Assert
	if err == nil {
		t.Fatal("expected error for cancelled context, got nil")
	}
}
