// Package metrics exposes Prometheus instrumentation for the collection
// pipeline. Everything is registered on the default registry and served
// from the /metrics route.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// MentionsPersisted counts newly stored mentions per source.
	MentionsPersisted = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "brandtracker_mentions_persisted_total",
		Help: "Number of new mentions persisted, by source.",
	}, []string{"source"})

	// MentionsDuplicate counts candidates skipped by deduplication.
	MentionsDuplicate = promauto.NewCounter(prometheus.CounterOpts{
		Name: "brandtracker_mentions_duplicate_total",
		Help: "Number of mention candidates skipped as duplicates.",
	})

	// ScrapeErrors counts absorbed scraper failures per source.
	ScrapeErrors = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "brandtracker_scrape_errors_total",
		Help: "Number of scraper failures absorbed into empty results, by source.",
	}, []string{"source"})

	// AlertsRaised counts alerts created by the spike detector, by type.
	AlertsRaised = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "brandtracker_alerts_raised_total",
		Help: "Number of alerts raised by the spike detector, by type.",
	}, []string{"type"})

	// SweepDuration observes full collection sweep durations.
	SweepDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "brandtracker_sweep_duration_seconds",
		Help:    "Duration of full collection sweeps.",
		Buckets: prometheus.ExponentialBuckets(0.5, 2, 10),
	})
)
