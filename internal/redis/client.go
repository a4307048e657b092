package redis

import (
	"strings"
	"time"

	"github.com/redis/go-redis/v9"
)

const (
	defaultAddr         = "localhost:6379"
	defaultDialTimeout  = 5 * time.Second
	defaultReadTimeout  = 3 * time.Second
	defaultWriteTimeout = 3 * time.Second
)

// NewClient returns a configured go-redis client. The url form (redis://...)
// wins over addr when both are provided; with neither set the client targets
// localhost, matching the probe's "not configured" environment report. The
// connection is not validated here: the service must come up and report an
// unhealthy Redis rather than refuse to start.
func NewClient(url, addr, password string, db int) (*redis.Client, error) {
	url = strings.TrimSpace(url)
	addr = strings.TrimSpace(addr)

	if url != "" {
		opts, err := redis.ParseURL(url)
		if err != nil {
			return nil, err
		}
		opts.DialTimeout = defaultDialTimeout
		opts.ReadTimeout = defaultReadTimeout
		opts.WriteTimeout = defaultWriteTimeout
		return redis.NewClient(opts), nil
	}

	if addr == "" {
		addr = defaultAddr
	}

	return redis.NewClient(&redis.Options{
		Addr:         addr,
		Password:     password,
		DB:           db,
		DialTimeout:  defaultDialTimeout,
		ReadTimeout:  defaultReadTimeout,
		WriteTimeout: defaultWriteTimeout,
	}), nil
}
