package markus

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Metrics records client-side request statistics. A nil *Metrics records
// nothing.
type Metrics struct {
	requests *prometheus.CounterVec
	failures *prometheus.CounterVec
	duration *prometheus.HistogramVec
}

// NewMetrics creates request metrics and registers them with reg. A nil reg
// leaves the collectors unregistered.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		requests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "markus",
			Subsystem: "client",
			Name:      "requests_total",
			Help:      "API requests that received a response, by method and status code.",
		}, []string{"method", "code"}),
		failures: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "markus",
			Subsystem: "client",
			Name:      "transport_failures_total",
			Help:      "API requests that failed before a response was read.",
		}, []string{"method"}),
		duration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "markus",
			Subsystem: "client",
			Name:      "request_duration_seconds",
			Help:      "Round-trip time of API requests.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"method"}),
	}

	if reg != nil {
		reg.MustRegister(m.requests, m.failures, m.duration)
	}
	return m
}

func (m *Metrics) observe(method string, status int, elapsed time.Duration) {
	if m == nil {
		return
	}
	m.requests.WithLabelValues(method, strconv.Itoa(status)).Inc()
	m.duration.WithLabelValues(method).Observe(elapsed.Seconds())
}

func (m *Metrics) observeFailure(method string) {
	if m == nil {
		return
	}
	m.failures.WithLabelValues(method).Inc()
}
