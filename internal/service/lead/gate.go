// Package lead gates the "send lead email" side effect: name
// resolution, duplicate-delivery suppression and a bounded, breaker-
// protected call into the notification transport.
package lead

import (
	"context"
	"fmt"
	"time"

	"github.com/sony/gobreaker"
	"go.uber.org/zap"

	"github.com/IROMIMPULSE15/SdC-Version-64/internal/adapter/directory"
	"github.com/IROMIMPULSE15/SdC-Version-64/internal/domain"
	"github.com/IROMIMPULSE15/SdC-Version-64/internal/observability/telemetry"
	"github.com/IROMIMPULSE15/SdC-Version-64/internal/ports"
)

// ErrDuplicate is returned when a lead for the same caller was already
// reported inside the current dedup window, e.g. because the provider
// retried the webhook delivery after a timeout on its side.
var ErrDuplicate = fmt.Errorf("lead already reported in this window")

// Config holds the gate's tunables.
type Config struct {
	// OwnerEmail receives the lead notifications.
	OwnerEmail string
	// DedupWindow is the idempotency bucket: a second qualifying turn
	// from the same caller inside this window is not re-reported.
	DedupWindow time.Duration
	// NotifyTimeout bounds the transport call so a slow email backend
	// cannot hold the live phone call open.
	NotifyTimeout time.Duration
}

// DefaultConfig returns the gate defaults.
func DefaultConfig() Config {
	return Config{
		DedupWindow:   5 * time.Minute,
		NotifyTimeout: 5 * time.Second,
	}
}

// Gate implements ports.LeadNotifier.
type Gate struct {
	cfg     Config
	emails  ports.EmailService
	dir     ports.ContactDirectory
	cache   ports.Cache
	breaker *gobreaker.CircuitBreaker
	log     *zap.Logger
}

var _ ports.LeadNotifier = (*Gate)(nil)

// NewGate creates the notification gate. The circuit breaker trips when
// the email backend keeps failing, so a dead transport does not add its
// full timeout to every qualifying call turn.
func NewGate(cfg Config, emails ports.EmailService, dir ports.ContactDirectory, cache ports.Cache, log *zap.Logger) *Gate {
	if cfg.DedupWindow <= 0 {
		cfg.DedupWindow = DefaultConfig().DedupWindow
	}
	if cfg.NotifyTimeout <= 0 {
		cfg.NotifyTimeout = DefaultConfig().NotifyTimeout
	}

	breaker := gobreaker.NewCircuitBreaker(gobreaker.Settings{
		Name:        "lead-notifications",
		MaxRequests: 1,
		Interval:    time.Minute,
		Timeout:     30 * time.Second,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= 3
		},
		OnStateChange: func(name string, from gobreaker.State, to gobreaker.State) {
			log.Warn("Lead notification breaker state changed",
				zap.String("from", from.String()),
				zap.String("to", to.String()),
			)
		},
	})

	return &Gate{
		cfg:     cfg,
		emails:  emails,
		dir:     dir,
		cache:   cache,
		breaker: breaker,
		log:     log,
	}
}

// Notify resolves the caller's name and sends the lead email. At most
// one attempt is made per request, and duplicate webhook deliveries for
// the same caller inside the dedup window are suppressed. The returned
// error is informational: callers log it and still speak the scripted
// confirmation, a backend fault never disrupts the live call.
func (g *Gate) Notify(ctx context.Context, rec domain.LeadRecord) error {
	name, matched := g.dir.Resolve(rec.CallerNumber)
	rec.Name = name
	if !matched {
		g.log.Info("Caller not in contact directory, using placeholder name",
			zap.String("caller_number", rec.CallerNumber),
		)
	}

	fresh, err := g.cache.SetNX(ctx, g.dedupKey(rec.CallerNumber), rec.Availability, g.cfg.DedupWindow)
	if err != nil {
		// A broken dedup store must not swallow leads: log and send.
		g.log.Warn("Dedup store unavailable, sending without dedup", zap.Error(err))
	} else if !fresh {
		g.log.Info("Suppressing duplicate lead notification",
			zap.String("caller_number", rec.CallerNumber),
		)
		telemetry.LeadNotificationsTotal.WithLabelValues("duplicate").Inc()
		return ErrDuplicate
	}

	notifyCtx, cancel := context.WithTimeout(ctx, g.cfg.NotifyTimeout)
	defer cancel()

	_, err = g.breaker.Execute(func() (interface{}, error) {
		return nil, g.emails.SendLeadCaptured(notifyCtx, g.cfg.OwnerEmail, rec)
	})
	if err != nil {
		g.log.Error("Lead notification failed",
			zap.String("caller_number", rec.CallerNumber),
			zap.String("name", rec.Name),
			zap.Error(err),
		)
		telemetry.LeadNotificationsTotal.WithLabelValues("failed").Inc()
		return fmt.Errorf("send lead notification: %w", err)
	}

	g.log.Info("Lead notification sent",
		zap.String("caller_number", rec.CallerNumber),
		zap.String("name", rec.Name),
		zap.String("timing", rec.Availability),
	)
	telemetry.LeadNotificationsTotal.WithLabelValues("sent").Inc()
	return nil
}

// dedupKey buckets by normalized caller suffix and a coarse time window
// so provider redeliveries map to the same key. There is no call
// session id in the webhook payload to key on.
func (g *Gate) dedupKey(callerNumber string) string {
	bucket := time.Now().Unix() / int64(g.cfg.DedupWindow.Seconds())
	return fmt.Sprintf("lead:%s:%d", directory.NormalizePhone(callerNumber), bucket)
}
