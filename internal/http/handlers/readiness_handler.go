package handlers

import (
	"context"
	"net/http"
	"time"

	"go.uber.org/zap"

	"storepulse/internal/metrics"
)

// Probe is one named dependency check surfaced on the readiness endpoint.
type Probe interface {
	Name() string
	Ping(ctx context.Context) error
}

// NewReadinessHandler handles GET /ready. Probes run sequentially; 200 when
// every dependency answers, 503 otherwise, with per-dependency status either way.
func NewReadinessHandler(probes []Probe, m *metrics.Metrics, logger *zap.Logger) http.HandlerFunc {
	type response struct {
		Status       string            `json:"status"`
		Timestamp    string            `json:"timestamp"`
		Dependencies map[string]string `json:"dependencies"`
	}

	return func(w http.ResponseWriter, r *http.Request) {
		deps := make(map[string]string, len(probes))
		ready := true

		for _, probe := range probes {
			start := time.Now()
			err := probe.Ping(r.Context())
			m.ObserveProbe(probe.Name(), err, time.Since(start))
			if err != nil {
				logger.Warn("readiness probe failed",
					zap.String("dependency", probe.Name()),
					zap.Error(err))
				deps[probe.Name()] = "unavailable"
				ready = false
				continue
			}
			deps[probe.Name()] = "ok"
		}

		status := http.StatusOK
		body := response{Status: "ready", Timestamp: timestamp(), Dependencies: deps}
		if !ready {
			status = http.StatusServiceUnavailable
			body.Status = "not ready"
		}
		writeJSON(w, status, body)
	}
}
