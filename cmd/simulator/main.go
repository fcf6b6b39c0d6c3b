// The simulator exercises a deployed webhook the way the telephony
// provider would: form-encoded POSTs, one per dialogue turn, checking
// the spoken markers in each XML reply.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	"go.uber.org/zap"
)

var (
	webhookURL = flag.String("url", "http://localhost:8000/exotel-webhook", "Webhook URL to exercise")
	scenario   = flag.String("scenario", "all", "Scenario to run: lead, decline or all")
	turnDelay  = flag.Duration("delay", time.Second, "Pause between simulated turns")
	verbose    = flag.Bool("verbose", false, "Enable verbose logging")
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

	sim := NewSimulator(*webhookURL, *turnDelay, logger)

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	var failures int
	switch *scenario {
	case "lead":
		failures = sim.RunLead(ctx)
	case "decline":
		failures = sim.RunDecline(ctx)
	case "all":
		failures = sim.RunLead(ctx) + sim.RunDecline(ctx)
	default:
		logger.Fatal("Unknown scenario", zap.String("scenario", *scenario))
	}

	if failures > 0 {
		logger.Error("Simulation finished with failures", zap.Int("failures", failures))
		os.Exit(1)
	}
	logger.Info("Simulation finished, all checks passed")
}
