package telemetry

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// Campaign metrics
	CallTurnsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "ivr_call_turns_total",
		Help: "Webhook turns processed, by classified intent",
	}, []string{"intent"})

	LeadNotificationsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "ivr_lead_notifications_total",
		Help: "Lead notification attempts, by outcome",
	}, []string{"status"})

	TurnLatency = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "ivr_turn_latency_seconds",
		Help:    "End-to-end webhook turn processing latency",
		Buckets: prometheus.DefBuckets,
	})

	OutboundCallsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "ivr_outbound_calls_total",
		Help: "Outbound call placements, by provider and outcome",
	}, []string{"provider", "status"})

	// Infrastructure metrics
	ContactsLoaded = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "ivr_contacts_loaded",
		Help: "Contacts available for caller name lookup",
	})
)
