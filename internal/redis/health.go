package redis

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"
)

// Report describes the outcome of a successful connectivity probe.
type Report struct {
	Status    string `json:"status"`
	LatencyMs int64  `json:"latencyMs"`
}

// MemoryInfo carries the subset of INFO memory fields we surface.
type MemoryInfo struct {
	UsedMemory         int64   `json:"usedMemory"`
	UsedMemoryHuman    string  `json:"usedMemoryHuman"`
	UsedMemoryPeak     int64   `json:"usedMemoryPeak"`
	MaxMemory          int64   `json:"maxMemory"`
	FragmentationRatio float64 `json:"memFragmentationRatio"`
}

// HealthService probes a Redis server. All commands run under the configured
// timeout; callers do not add their own.
type HealthService struct {
	client  *redis.Client
	timeout time.Duration
}

// NewHealthService returns a probe service bound to the given client.
func NewHealthService(client *redis.Client, timeout time.Duration) *HealthService {
	if timeout <= 0 {
		timeout = 5 * time.Second
	}
	return &HealthService{client: client, timeout: timeout}
}

// CheckHealth runs PING and reports round-trip latency.
func (s *HealthService) CheckHealth(ctx context.Context) (*Report, error) {
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	start := time.Now()
	if err := s.client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("redis: ping: %w", err)
	}

	return &Report{
		Status:    "ok",
		LatencyMs: time.Since(start).Milliseconds(),
	}, nil
}

// MemoryInfo runs INFO memory and parses the fields we care about.
func (s *HealthService) MemoryInfo(ctx context.Context) (*MemoryInfo, error) {
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	raw, err := s.client.Info(ctx, "memory").Result()
	if err != nil {
		return nil, fmt.Errorf("redis: info memory: %w", err)
	}

	return parseMemoryInfo(raw), nil
}

// Name identifies this probe on the readiness endpoint.
func (s *HealthService) Name() string {
	return "redis"
}

// Ping checks connectivity without building a report.
func (s *HealthService) Ping(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()
	return s.client.Ping(ctx).Err()
}

// parseMemoryInfo extracts known keys from INFO section output. Lines look like
// "used_memory:1024"; comment lines start with '#'. Unknown keys are ignored,
// malformed values are left at their zero value.
func parseMemoryInfo(raw string) *MemoryInfo {
	info := &MemoryInfo{}
	for _, line := range strings.Split(raw, "\n") {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		key, value, ok := strings.Cut(line, ":")
		if !ok {
			continue
		}
		switch key {
		case "used_memory":
			info.UsedMemory, _ = strconv.ParseInt(value, 10, 64)
		case "used_memory_human":
			info.UsedMemoryHuman = value
		case "used_memory_peak":
			info.UsedMemoryPeak, _ = strconv.ParseInt(value, 10, 64)
		case "maxmemory":
			info.MaxMemory, _ = strconv.ParseInt(value, 10, 64)
		case "mem_fragmentation_ratio":
			info.FragmentationRatio, _ = strconv.ParseFloat(value, 64)
		}
	}
	return info
}
