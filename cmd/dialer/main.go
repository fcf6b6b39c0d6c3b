// The dialer works through the campaign contact list, placing one
// outbound call per entry with a fixed gap between calls so two live
// calls never run at once.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"github.com/IROMIMPULSE15/SdC-Version-64/internal/adapter/directory"
	"github.com/IROMIMPULSE15/SdC-Version-64/internal/adapter/telephony"
	"github.com/IROMIMPULSE15/SdC-Version-64/internal/ports"
	"github.com/IROMIMPULSE15/SdC-Version-64/pkg/config"
)

var (
	contactsPath = flag.String("contacts", "", "Contact list CSV (default: contacts.path from config)")
	callGap      = flag.Duration("gap", 0, "Delay between calls (default: telephony.call_gap from config)")
	dryRun       = flag.Bool("dry-run", false, "Log the calls that would be placed without placing them")
	verbose      = flag.Bool("verbose", false, "Enable verbose logging")
)

func main() {
	flag.Parse()

	var logger *zap.Logger
	var err error
	if *verbose {
		logger, err = zap.NewDevelopment()
	} else {
		logger, err = zap.NewProduction()
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to create logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	cfg, err := config.Load()
	if err != nil {
		logger.Fatal("Failed to load configuration", zap.Error(err))
	}

	path := *contactsPath
	if path == "" {
		path = cfg.Contacts.Path
	}
	gap := *callGap
	if gap <= 0 {
		gap = cfg.Telephony.CallGap
	}

	contacts, err := directory.ReadContacts(path)
	if err != nil {
		logger.Fatal("Failed to read contact list", zap.String("path", path), zap.Error(err))
	}
	if len(contacts) == 0 {
		logger.Warn("Contact list is empty, nothing to dial", zap.String("path", path))
		return
	}

	dialer := newDialer(cfg, logger)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigChan
		logger.Info("Interrupted, stopping after the current call")
		cancel()
	}()

	logger.Info("Starting campaign run",
		zap.Int("contacts", len(contacts)),
		zap.Duration("call_gap", gap),
		zap.String("provider", cfg.Telephony.Provider),
		zap.Bool("dry_run", *dryRun),
	)

	placed, failed := 0, 0
	for i, contact := range contacts {
		select {
		case <-ctx.Done():
			logger.Info("Campaign run cancelled", zap.Int("placed", placed), zap.Int("failed", failed))
			return
		default:
		}

		if *dryRun {
			logger.Info("Would call", zap.String("to", contact.Phone), zap.String("name", contact.Name))
			placed++
			continue
		}

		if err := dialer.PlaceCall(ctx, contact.Phone); err != nil {
			logger.Error("Call placement failed", zap.String("to", contact.Phone), zap.Error(err))
			failed++
		} else {
			placed++
		}

		// Wait out the live call before dialing the next contact.
		if i < len(contacts)-1 {
			logger.Info("Waiting before next call", zap.Duration("gap", gap))
			select {
			case <-time.After(gap):
			case <-ctx.Done():
				logger.Info("Campaign run cancelled", zap.Int("placed", placed), zap.Int("failed", failed))
				return
			}
		}
	}

	logger.Info("Campaign run finished", zap.Int("placed", placed), zap.Int("failed", failed))
}

func newDialer(cfg *config.Config, logger *zap.Logger) ports.Dialer {
	switch cfg.Telephony.Provider {
	case "twilio":
		return telephony.NewTwilioDialer(telephony.TwilioConfig{
			AccountSID: cfg.Telephony.AccountSID,
			AuthToken:  cfg.Telephony.AuthToken,
			CallerID:   cfg.Telephony.CallerID,
			WebhookURL: cfg.Telephony.WebhookURL,
		}, logger)
	default:
		return telephony.NewExotelDialer(telephony.ExotelConfig{
			SID:        cfg.Telephony.AccountSID,
			Token:      cfg.Telephony.AuthToken,
			CallerID:   cfg.Telephony.CallerID,
			WebhookURL: cfg.Telephony.WebhookURL,
		}, logger)
	}
}
