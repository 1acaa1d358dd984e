package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	SettlementsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "ramp_settlements_total",
			Help: "Total number of settlement attempts by outcome",
		},
		[]string{"outcome"},
	)

	SettlementDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "ramp_settlement_duration_seconds",
		Help:    "Time from settlement submission to confirmation",
		Buckets: prometheus.ExponentialBuckets(0.5, 2, 10),
	})

	WebhookReplays = promauto.NewCounter(prometheus.CounterOpts{
		Name: "ramp_webhook_replays_total",
		Help: "Total number of redelivered deposit webhooks answered idempotently",
	})

	OnrampRequestsTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "ramp_onramp_requests_total",
		Help: "Total number of initiated onramp requests",
	})

	IndexerLastBlock = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "ramp_indexer_last_block",
		Help: "Last block number processed by the chain observer",
	})

	IndexedEventsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "ramp_indexed_events_total",
			Help: "Total number of vault events appended to the ledger",
		},
		[]string{"kind"},
	)
)
