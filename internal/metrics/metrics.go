// Package metrics provides Prometheus metrics for the MTG AI search backend.
// Scrape these at /metrics for Grafana dashboards and alerting.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// HTTP Metrics
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "mtg_http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "path", "status"},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "mtg_http_request_duration_seconds",
			Help:    "HTTP request latency in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "path"},
	)

	// Translation Metrics
	TranslationDecisions = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "mtg_translation_decisions_total",
			Help: "Which translation path produced the query",
		},
		[]string{"source"}, // provider name, "fallback" or "demo"
	)

	// Model Provider Metrics
	ModelRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "mtg_model_requests_total",
			Help: "Total language model API requests by provider",
		},
		[]string{"provider"},
	)

	ModelErrorsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "mtg_model_errors_total",
			Help: "Language model API errors by provider and type",
		},
		[]string{"provider", "type"}, // "network", "read", "api", "parse", "empty"
	)

	ModelAPILatency = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "mtg_model_api_latency_seconds",
			Help:    "Language model API call latency",
			Buckets: []float64{0.1, 0.25, 0.5, 1, 2, 5, 10, 30},
		},
		[]string{"provider"},
	)

	// Scryfall Metrics
	ScryfallRequestsTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "mtg_scryfall_requests_total",
			Help: "Total Scryfall API requests made",
		},
	)

	ScryfallErrorsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "mtg_scryfall_errors_total",
			Help: "Scryfall API errors by type",
		},
		[]string{"type"}, // "network", "status", "decode"
	)

	ScryfallLatency = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "mtg_scryfall_latency_seconds",
			Help:    "Scryfall API call latency",
			Buckets: []float64{0.1, 0.25, 0.5, 1, 2.5, 5, 10, 30},
		},
	)

	// Search Metrics
	SearchResultsCount = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "mtg_search_results_count",
			Help:    "Number of cards returned per search",
			Buckets: []float64{0, 1, 5, 10, 25, 50, 100, 175},
		},
	)
)
