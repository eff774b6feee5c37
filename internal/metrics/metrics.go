// Package metrics exposes Prometheus collectors for the quote path.
package metrics

import (
	"strings"
	"sync"

	"github.com/prometheus/client_golang/prometheus"
)

var (
	once sync.Once

	quotesTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "cabinet_quotes_total",
			Help: "Quotes served per configuration and pricing method.",
		},
		[]string{"configuration", "method"},
	)

	quoteErrors = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "cabinet_quote_errors_total",
			Help: "Quote failures per domain error code.",
		},
		[]string{"code"},
	)

	quoteDurationMs = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "cabinet_quote_duration_ms",
			Help:    "Quote latency distribution in milliseconds.",
			Buckets: []float64{0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10, 25, 50},
		},
		[]string{"configuration"},
	)
)

// MustRegister registers collectors with the default registry (idempotent).
func MustRegister() {
	once.Do(func() {
		prometheus.MustRegister(quotesTotal, quoteErrors, quoteDurationMs)
	})
}

func norm(s string) string { return strings.ToLower(strings.TrimSpace(s)) }

// ObserveQuote records one served quote
func ObserveQuote(configuration, method string, durationMs float64) {
	quotesTotal.WithLabelValues(norm(configuration), norm(method)).Inc()
	quoteDurationMs.WithLabelValues(norm(configuration)).Observe(durationMs)
}

// IncQuoteError records one failed quote by error code
func IncQuoteError(code string) {
	quoteErrors.WithLabelValues(norm(code)).Inc()
}
