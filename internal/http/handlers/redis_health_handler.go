package handlers

import (
	"context"
	"net/http"
	"time"

	"go.uber.org/zap"

	"storepulse/internal/metrics"
	"storepulse/internal/redis"
)

// RedisChecker runs the Redis connectivity probe.
type RedisChecker interface {
	CheckHealth(ctx context.Context) (*redis.Report, error)
}

// Environment carries the runtime facts reported alongside the probe result.
// Computed once from configuration at wiring time, never read from the process
// environment per request.
type Environment struct {
	Mode            string
	RedisConfigured bool
}

func (e Environment) redisURL() string {
	if e.RedisConfigured {
		return "configured"
	}
	return "not configured"
}

// NewRedisHealthHandler handles GET /health/redis. Any checker error, whatever
// its cause, maps to the same 500 body; callers never see an unhandled fault.
func NewRedisHealthHandler(checker RedisChecker, env Environment, m *metrics.Metrics, logger *zap.Logger) http.HandlerFunc {
	type environment struct {
		NodeEnv  string `json:"nodeEnv"`
		RedisURL string `json:"redisUrl"`
	}
	type response struct {
		Timestamp   string        `json:"timestamp"`
		Redis       *redis.Report `json:"redis"`
		Environment environment   `json:"environment"`
	}
	type errorResponse struct {
		Error     string `json:"error"`
		Timestamp string `json:"timestamp"`
	}

	return func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		report, err := checker.CheckHealth(r.Context())
		m.ObserveProbe("redis", err, time.Since(start))
		if err != nil {
			logger.Error("redis health check failed", zap.Error(err))
			writeJSON(w, http.StatusInternalServerError, errorResponse{
				Error:     "Health check failed",
				Timestamp: timestamp(),
			})
			return
		}

		writeJSON(w, http.StatusOK, response{
			Timestamp: timestamp(),
			Redis:     report,
			Environment: environment{
				NodeEnv:  env.Mode,
				RedisURL: env.redisURL(),
			},
		})
	}
}
