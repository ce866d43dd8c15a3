// Package metrics exposes prometheus counters for the parse endpoints.
package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics holds the parse instrumentation behind its own registry so tests
// and multiple server instances never collide on registration.
type Metrics struct {
	registry      *prometheus.Registry
	parsesTotal   prometheus.Counter
	parseErrors   prometheus.Counter
	recordsParsed prometheus.Counter
	parseDuration prometheus.Histogram
}

func New() *Metrics {
	m := &Metrics{registry: prometheus.NewRegistry()}

	m.parsesTotal = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "zonejson",
		Name:      "parses_total",
		Help:      "Number of zonefile parse requests handled",
	})
	m.parseErrors = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "zonejson",
		Name:      "parse_errors_total",
		Help:      "Number of parse requests that failed",
	})
	m.recordsParsed = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "zonejson",
		Name:      "records_parsed_total",
		Help:      "Number of resource records produced by successful parses",
	})
	m.parseDuration = prometheus.NewHistogram(prometheus.HistogramOpts{
		Namespace: "zonejson",
		Name:      "parse_duration_seconds",
		Help:      "Wall time of zonefile parses",
		Buckets:   prometheus.ExponentialBuckets(0.0001, 4, 8),
	})

	m.registry.MustRegister(m.parsesTotal)
	m.registry.MustRegister(m.parseErrors)
	m.registry.MustRegister(m.recordsParsed)
	m.registry.MustRegister(m.parseDuration)
	return m
}

// ObserveParse records a successful parse of n records.
func (m *Metrics) ObserveParse(n int, d time.Duration) {
	m.parsesTotal.Inc()
	m.recordsParsed.Add(float64(n))
	m.parseDuration.Observe(d.Seconds())
}

// ObserveParseError records a failed parse.
func (m *Metrics) ObserveParseError() {
	m.parsesTotal.Inc()
	m.parseErrors.Inc()
}

// Handler serves the registry in the prometheus exposition format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}
