package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Metrics groups the Prometheus instruments used across the application.
// Registered once at startup via New(); passed by pointer wherever needed.
type Metrics struct {
	ProbesTotal  *prometheus.CounterVec
	ProbeLatency *prometheus.HistogramVec
}

// New registers all instruments with the given registerer and returns the
// populated Metrics struct. Using a caller-supplied registry instead of
// prometheus.DefaultRegisterer keeps tests isolated from global state.
func New(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		ProbesTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "storepulse_probes_total",
			Help: "Total number of dependency probes by outcome.",
		}, []string{"dependency", "outcome"}),

		ProbeLatency: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "storepulse_probe_duration_seconds",
			Help:    "Round-trip latency of dependency probes.",
			Buckets: prometheus.DefBuckets,
		}, []string{"dependency"}),
	}

	reg.MustRegister(
		m.ProbesTotal,
		m.ProbeLatency,
	)

	return m
}

// ObserveProbe records one probe attempt against the named dependency.
func (m *Metrics) ObserveProbe(dependency string, err error, elapsed time.Duration) {
	outcome := "success"
	if err != nil {
		outcome = "failure"
	}
	m.ProbesTotal.WithLabelValues(dependency, outcome).Inc()
	m.ProbeLatency.WithLabelValues(dependency).Observe(elapsed.Seconds())
}
