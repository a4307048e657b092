package handlers

import (
	"context"
	"net/http"
	"time"

	"go.uber.org/zap"

	"storepulse/internal/metrics"
	"storepulse/internal/redis"
)

// MemoryReader retrieves Redis memory statistics.
type MemoryReader interface {
	MemoryInfo(ctx context.Context) (*redis.MemoryInfo, error)
}

// NewRedisMemoryHandler handles GET /health/redis/memory. Same error
// convention as the main redis endpoint.
func NewRedisMemoryHandler(reader MemoryReader, m *metrics.Metrics, logger *zap.Logger) http.HandlerFunc {
	type response struct {
		Timestamp string            `json:"timestamp"`
		Memory    *redis.MemoryInfo `json:"memory"`
	}
	type errorResponse struct {
		Error     string `json:"error"`
		Timestamp string `json:"timestamp"`
	}

	return func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		info, err := reader.MemoryInfo(r.Context())
		m.ObserveProbe("redis_memory", err, time.Since(start))
		if err != nil {
			logger.Error("redis memory info failed", zap.Error(err))
			writeJSON(w, http.StatusInternalServerError, errorResponse{
				Error:     "Health check failed",
				Timestamp: timestamp(),
			})
			return
		}

		writeJSON(w, http.StatusOK, response{
			Timestamp: timestamp(),
			Memory:    info,
		})
	}
}
