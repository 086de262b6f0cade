package httpserver

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics holds the Prometheus instruments for the search endpoint, backed by
// a private registry so tests can create servers without collector collisions.
type Metrics struct {
	registry *prometheus.Registry

	searchesTotal  *prometheus.CounterVec
	searchDuration prometheus.Histogram
	resultCount    prometheus.Histogram
}

// NewMetrics creates and registers the server's metrics.
func NewMetrics() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		searchesTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "jobsearch",
			Name:      "searches_total",
			Help:      "Search requests by outcome.",
		}, []string{"status"}),
		searchDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: "jobsearch",
			Name:      "search_duration_seconds",
			Help:      "End-to-end search handling time.",
			Buckets:   prometheus.DefBuckets,
		}),
		resultCount: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: "jobsearch",
			Name:      "search_result_count",
			Help:      "Rows returned per successful search.",
			Buckets:   []float64{0, 1, 5, 10, 25, 50, 100},
		}),
	}

	m.registry.MustRegister(m.searchesTotal, m.searchDuration, m.resultCount)
	return m
}

// Handler serves the metrics in Prometheus exposition format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

func (m *Metrics) observeSearch(status string, start time.Time, rows int) {
	m.searchesTotal.WithLabelValues(status).Inc()
	m.searchDuration.Observe(time.Since(start).Seconds())
	if status == "success" {
		m.resultCount.Observe(float64(rows))
	}
}
