package ports

import (
	"context"
	"time"

	"github.com/IROMIMPULSE15/SdC-Version-64/internal/domain"
)

// EmailService sends transactional email to the sales owner.
type EmailService interface {
	SendHTML(ctx context.Context, to, subject, htmlBody string) error
	SendLeadCaptured(ctx context.Context, to string, lead domain.LeadRecord) error
}

// ContactDirectory resolves a caller identifier to a display name. The
// directory is loaded once at startup and read-only afterwards.
type ContactDirectory interface {
	Resolve(callerID string) (name string, ok bool)
	Len() int
}

// LeadNotifier is the gate in front of the lead notification side
// effect. Notify attempts the notification at most once per qualifying
// request; transport failures are returned for logging but must not
// alter the caller-facing response.
type LeadNotifier interface {
	Notify(ctx context.Context, rec domain.LeadRecord) error
}

// Dialer places an outbound call that will hit this service's webhook.
type Dialer interface {
	PlaceCall(ctx context.Context, to string) error
}

// Cache is a TTL key-value store used for notification deduplication.
type Cache interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key string, value interface{}, expiration time.Duration) error
	// SetNX stores the key only if absent; reports whether it was set.
	SetNX(ctx context.Context, key string, value interface{}, expiration time.Duration) (bool, error)
	Delete(ctx context.Context, key string) error
	Ping() error
}
